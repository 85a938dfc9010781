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

// FinanceReportFunction reports receivables and expenses.
type FinanceReportFunction struct {
	records  RecordReader
	expenses ExpenseReader
	now      func() time.Time
}

func NewFinanceReport(ctx context.Context) (*FinanceReportFunction, error) {
	config, err := loadStoreConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	st, err := newFirestoreStore(ctx, config)
	if err != nil {
		return nil, err
	}
	slog.Info("Finance report logic initialized.", "expensesCollection", config.Collections.Expenses)
	return newFinanceReport(st, st, time.Now), nil
}

func newFinanceReport(records RecordReader, expenses ExpenseReader, now func() time.Time) *FinanceReportFunction {
	return &FinanceReportFunction{records: records, expenses: expenses, now: now}
}

// Process builds the receivables over every Owed record and the expense
// summary for the requested range.
func (f *FinanceReportFunction) Process(ctx context.Context, req *models.FinanceReportRequest) (*models.FinanceReportResponse, error) {
	executionID := req.ExecutionID
	if executionID == "" {
		executionID = uuid.NewString()
	}
	logCtx := slog.With("executionId", executionID)

	from, to, err := parseDateRange(req.From, req.To)
	if err != nil {
		logCtx.Warn("Rejected finance report request.", "error", err)
		return nil, err
	}

	var (
		records  []models.ServiceRecord
		expenses []models.Expense
	)
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if records, err = f.records.ListServiceRecords(gctx); err != nil {
			return fmt.Errorf("failed to read service records: %w", err)
		}
		return nil
	})
	eg.Go(func() error {
		var err error
		if expenses, err = f.expenses.ListExpenses(gctx); err != nil {
			return fmt.Errorf("failed to read expenses: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		logCtx.Error("Failed to load snapshot", "error", err)
		return nil, err
	}

	now := f.now()
	resp := &models.FinanceReportResponse{
		Receivables: reporting.BuildReceivables(records, now),
		Expenses:    reporting.SummarizeExpenses(expenses, from, to, now),
		GeneratedAt: now.UTC().Format(time.RFC3339),
	}
	logCtx.Info("Finance report built.",
		"openInvoices", resp.Receivables.OpenInvoices,
		"expenseCount", resp.Expenses.Count,
	)
	return resp, nil
}
