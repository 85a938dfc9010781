package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/reporting"
	"golang.org/x/sync/errgroup"
)

// DashboardFunction builds the dashboard view model from a store snapshot.
type DashboardFunction struct {
	records   RecordReader
	customers CustomerReader
	now       func() time.Time
}

// NewDashboard creates a DashboardFunction backed by Firestore.
func NewDashboard(ctx context.Context) (*DashboardFunction, error) {
	config, err := loadStoreConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	st, err := newFirestoreStore(ctx, config)
	if err != nil {
		return nil, err
	}
	slog.Info("Dashboard logic initialized.", "recordsCollection", config.Collections.Records)
	return newDashboard(st, st, time.Now), nil
}

func newDashboard(records RecordReader, customers CustomerReader, now func() time.Time) *DashboardFunction {
	return &DashboardFunction{records: records, customers: customers, now: now}
}

// Process validates the filter selection, reads the snapshot and aggregates it.
func (f *DashboardFunction) Process(ctx context.Context, req *models.DashboardRequest) (*models.DashboardResponse, error) {
	executionID := req.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}
	logCtx := slog.With("executionId", executionID)

	filter, err := buildFilter(req)
	if err != nil {
		logCtx.Warn("Rejected dashboard request.", "error", err)
		return nil, err
	}

	records, customers, err := loadSnapshot(ctx, f.records, f.customers)
	if err != nil {
		logCtx.Error("Failed to load snapshot", "error", err)
		return nil, err
	}

	now := f.now()
	dashboard := reporting.BuildDashboard(reporting.DashboardInput{
		Records:   records,
		Customers: customers,
		Filter:    filter,
		Now:       now,
	})
	logCtx.Info("Dashboard built.", "recordCount", len(records), "filteredJobs", dashboard.TotalJobs, "filtered", !filter.IsEmpty())

	return &models.DashboardResponse{
		Dashboard:   dashboard,
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}, nil
}

// loadSnapshot reads records and customers concurrently. The first failure
// cancels the other read.
func loadSnapshot(ctx context.Context, records RecordReader, customers CustomerReader) ([]models.ServiceRecord, []models.Customer, error) {
	var (
		recs  []models.ServiceRecord
		custs []models.Customer
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if recs, err = records.ListServiceRecords(gctx); err != nil {
			return fmt.Errorf("failed to read service records: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if custs, err = customers.ListCustomers(gctx); err != nil {
			return fmt.Errorf("failed to read customers: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return recs, custs, nil
}
