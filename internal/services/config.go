package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joesexpress/studio-sub000/internal/gcp"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/reporting"
	"github.com/joesexpress/studio-sub000/internal/store"
)

const requestDateLayout = "2006-01-02"

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("from date is after to date")
	ErrInvalidLimit     = errors.New("limit must not be negative")
)

// StoreConfig holds the Firestore settings shared by every function.
type StoreConfig struct {
	ProjectID   string
	DatabaseID  string
	Collections store.Collections
}

// loadStoreConfig loads and validates the Firestore environment variables.
func loadStoreConfig() (*StoreConfig, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}
	defaults := store.DefaultCollections()
	return &StoreConfig{
		ProjectID:  projectID,
		DatabaseID: gcp.GetEnv("FIRESTORE_DATABASE", ""),
		Collections: store.Collections{
			Records:    gcp.GetEnv("RECORDS_COLLECTION", defaults.Records),
			Customers:  gcp.GetEnv("CUSTOMERS_COLLECTION", defaults.Customers),
			Expenses:   gcp.GetEnv("EXPENSES_COLLECTION", defaults.Expenses),
			Profiles:   gcp.GetEnv("PROFILES_COLLECTION", defaults.Profiles),
			Ingestions: gcp.GetEnv("INGESTIONS_COLLECTION", defaults.Ingestions),
		},
	}, nil
}

func newFirestoreStore(ctx context.Context, cfg *StoreConfig) (*store.FirestoreStore, error) {
	client, err := gcp.NewFirestoreClient(ctx, cfg.ProjectID, cfg.DatabaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return store.NewFirestoreStore(client, cfg.Collections), nil
}

// parseDateRange parses optional YYYY-MM-DD bounds. The upper bound covers
// the whole day.
func parseDateRange(from, to string) (*time.Time, *time.Time, error) {
	var fromT, toT *time.Time
	if from != "" {
		t, err := time.Parse(requestDateLayout, from)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: from %q", ErrInvalidDate, from)
		}
		fromT = &t
	}
	if to != "" {
		t, err := time.Parse(requestDateLayout, to)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: to %q", ErrInvalidDate, to)
		}
		t = t.Add(24*time.Hour - time.Nanosecond)
		toT = &t
	}
	if fromT != nil && toT != nil && fromT.After(*toT) {
		return nil, nil, ErrInvalidDateRange
	}
	return fromT, toT, nil
}

// buildFilter turns a dashboard request into a reporting filter.
func buildFilter(req *models.DashboardRequest) (reporting.Filter, error) {
	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		return reporting.Filter{}, err
	}
	return reporting.Filter{
		From:       from,
		To:         to,
		Technician: req.Technician,
		Status:     models.Status(strings.TrimSpace(req.Status)),
	}, nil
}
