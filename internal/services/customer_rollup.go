package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/reporting"
)

// CustomerRollupFunction groups every record by customer and optionally
// stores the result as customer profiles.
type CustomerRollupFunction struct {
	records  RecordReader
	profiles ProfileWriter
	now      func() time.Time
}

func NewCustomerRollup(ctx context.Context) (*CustomerRollupFunction, error) {
	config, err := loadStoreConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	st, err := newFirestoreStore(ctx, config)
	if err != nil {
		return nil, err
	}
	slog.Info("Customer rollup logic initialized.", "profilesCollection", config.Collections.Profiles)
	return newCustomerRollup(st, st, time.Now), nil
}

func newCustomerRollup(records RecordReader, profiles ProfileWriter, now func() time.Time) *CustomerRollupFunction {
	return &CustomerRollupFunction{records: records, profiles: profiles, now: now}
}

// Process computes the rollups over the whole record set. Limit and
// SummaryOnly only shape the response; persisted profiles always cover every
// customer.
func (f *CustomerRollupFunction) Process(ctx context.Context, req *models.CustomerRollupRequest) (*models.CustomerRollupResponse, error) {
	if req.Limit < 0 {
		return nil, ErrInvalidLimit
	}
	executionID := req.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}
	logCtx := slog.With("executionId", executionID)

	records, err := f.records.ListServiceRecords(ctx)
	if err != nil {
		logCtx.Error("Failed to read service records", "error", err)
		return nil, fmt.Errorf("failed to read service records: %w", err)
	}

	rollups := reporting.BuildCustomerRollups(records)

	persisted := 0
	if req.PersistProfiles {
		persisted, err = f.profiles.SaveCustomerProfiles(ctx, rollups, f.now().UTC())
		if err != nil {
			logCtx.Error("Failed to persist customer profiles", "error", err, "persisted", persisted)
			return nil, fmt.Errorf("failed to persist customer profiles: %w", err)
		}
		logCtx.Info("Customer profiles persisted.", "persisted", persisted)
	}

	count := len(rollups)
	switch {
	case req.SummaryOnly:
		rollups = []models.CustomerRollup{}
	case req.Limit > 0 && req.Limit < len(rollups):
		rollups = rollups[:req.Limit]
	}
	logCtx.Info("Customer rollups built.", "recordCount", len(records), "customerCount", count)

	return &models.CustomerRollupResponse{
		Customers: rollups,
		Count:     count,
		Persisted: persisted,
	}, nil
}
