package services

import (
	"context"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

//go:generate mockgen -source=ports.go -destination=mocks/mock_ports.go -package=mocks

// RecordReader lists service records.
type RecordReader interface {
	ListServiceRecords(ctx context.Context) ([]models.ServiceRecord, error)
}

// CustomerReader lists the authoritative customer list.
type CustomerReader interface {
	ListCustomers(ctx context.Context) ([]models.Customer, error)
}

// ExpenseReader lists expenses.
type ExpenseReader interface {
	ListExpenses(ctx context.Context) ([]models.Expense, error)
}

// ProfileWriter persists denormalized customer profiles.
type ProfileWriter interface {
	SaveCustomerProfiles(ctx context.Context, rollups []models.CustomerRollup, updatedAt time.Time) (int, error)
}

// IngestionStore records uploaded documents and the results extracted from them.
type IngestionStore interface {
	FindIngestionBySourceHash(ctx context.Context, hash string) (*models.Ingestion, error)
	CreateIngestion(ctx context.Context, ing models.Ingestion) (string, error)
	UpdateIngestion(ctx context.Context, id string, fields map[string]interface{}) error
	CreateServiceRecord(ctx context.Context, rec models.ServiceRecord) (string, error)
	CreateExpense(ctx context.Context, exp models.Expense) (string, error)
}

// DocumentSource downloads uploaded objects.
type DocumentSource interface {
	Download(ctx context.Context, bucket, object, destPath string) error
}

// FieldExtractor asks a model for the JSON fields of a stored document.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, kind models.DocumentKind, gcsURI, mimeType string) ([]byte, error)
}

// ExtractionArchive keeps the raw model output of every ingestion.
type ExtractionArchive interface {
	Archive(ctx context.Context, objectName string, content []byte) (string, error)
}

// WorkflowLauncher starts a workflow execution and returns its name.
type WorkflowLauncher interface {
	Launch(ctx context.Context, argument []byte) (string, error)
}
