// Package store reads and writes business documents in Firestore. Every value
// leaving this package has been normalized: dates are time.Time and amounts
// are float64.
package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/joesexpress/studio-sub000/internal/models"
	"google.golang.org/api/iterator"
)

// Collections names the Firestore collections used by the app.
type Collections struct {
	Records    string
	Customers  string
	Expenses   string
	Profiles   string
	Ingestions string
}

// DefaultCollections returns the collection names used in production.
func DefaultCollections() Collections {
	return Collections{
		Records:    "serviceRecords",
		Customers:  "customers",
		Expenses:   "expenses",
		Profiles:   "customerProfiles",
		Ingestions: "ingestions",
	}
}

// FirestoreStore implements the repository ports on top of a Firestore client.
type FirestoreStore struct {
	client      *firestore.Client
	collections Collections
}

func NewFirestoreStore(client *firestore.Client, collections Collections) *FirestoreStore {
	return &FirestoreStore{client: client, collections: collections}
}

// ListServiceRecords returns every service record.
func (s *FirestoreStore) ListServiceRecords(ctx context.Context) ([]models.ServiceRecord, error) {
	var out []models.ServiceRecord
	err := s.each(ctx, s.collections.Records, func(doc *firestore.DocumentSnapshot) {
		out = append(out, RecordFromData(doc.Ref.ID, doc.Data()))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list service records: %w", err)
	}
	return out, nil
}

// ListCustomers returns the authoritative customer list.
func (s *FirestoreStore) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := s.each(ctx, s.collections.Customers, func(doc *firestore.DocumentSnapshot) {
		out = append(out, customerFromData(doc.Ref.ID, doc.Data()))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return out, nil
}

// ListExpenses returns every expense.
func (s *FirestoreStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	var out []models.Expense
	err := s.each(ctx, s.collections.Expenses, func(doc *firestore.DocumentSnapshot) {
		out = append(out, ExpenseFromData(doc.Ref.ID, doc.Data()))
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return out, nil
}

func (s *FirestoreStore) each(ctx context.Context, collection string, fn func(*firestore.DocumentSnapshot)) error {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return err
		}
		fn(doc)
	}
}

// CreateServiceRecord adds a record and returns its document id.
func (s *FirestoreStore) CreateServiceRecord(ctx context.Context, rec models.ServiceRecord) (string, error) {
	ref, _, err := s.client.Collection(s.collections.Records).Add(ctx, rec)
	if err != nil {
		return "", fmt.Errorf("failed to create service record: %w", err)
	}
	return ref.ID, nil
}

// CreateExpense adds an expense and returns its document id.
func (s *FirestoreStore) CreateExpense(ctx context.Context, exp models.Expense) (string, error) {
	ref, _, err := s.client.Collection(s.collections.Expenses).Add(ctx, exp)
	if err != nil {
		return "", fmt.Errorf("failed to create expense: %w", err)
	}
	return ref.ID, nil
}

// SaveCustomerProfiles upserts one denormalized profile per rollup, keyed by
// customer id, and returns the number written.
func (s *FirestoreStore) SaveCustomerProfiles(ctx context.Context, rollups []models.CustomerRollup, updatedAt time.Time) (int, error) {
	if len(rollups) == 0 {
		return 0, nil
	}
	bw := s.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(rollups))
	for _, r := range rollups {
		recordIDs := make([]string, 0, len(r.Records))
		for _, rec := range r.Records {
			recordIDs = append(recordIDs, rec.ID)
		}
		doc := map[string]interface{}{
			"customerId":  r.CustomerID,
			"name":        r.Name,
			"address":     r.Address,
			"phone":       r.Phone,
			"totalJobs":   r.TotalJobs,
			"totalBilled": r.TotalBilled,
			"recordIds":   recordIDs,
			"updatedAt":   updatedAt,
		}
		if !r.LastServiceDate.IsZero() {
			doc["lastServiceDate"] = r.LastServiceDate
		}
		job, err := bw.Set(s.client.Collection(s.collections.Profiles).Doc(r.CustomerID), doc)
		if err != nil {
			bw.End()
			return 0, fmt.Errorf("failed to enqueue profile %s: %w", r.CustomerID, err)
		}
		jobs = append(jobs, job)
	}
	bw.End()

	written := 0
	var firstErr error
	for i, job := range jobs {
		if _, err := job.Results(); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("failed to write profile %s: %w", rollups[i].CustomerID, err)
			}
			continue
		}
		written++
	}
	return written, firstErr
}

// FindIngestionBySourceHash returns the ingestion already created for hash,
// or nil when the file has never been seen.
func (s *FirestoreStore) FindIngestionBySourceHash(ctx context.Context, hash string) (*models.Ingestion, error) {
	docs, err := s.client.Collection(s.collections.Ingestions).Where("sourceHash", "==", hash).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to query for duplicates: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}
	var ing models.Ingestion
	if err := docs[0].DataTo(&ing); err != nil {
		return nil, fmt.Errorf("failed to decode ingestion %s: %w", docs[0].Ref.ID, err)
	}
	ing.ID = docs[0].Ref.ID
	return &ing, nil
}

// CreateIngestion adds an ingestion tracking document.
func (s *FirestoreStore) CreateIngestion(ctx context.Context, ing models.Ingestion) (string, error) {
	ref, _, err := s.client.Collection(s.collections.Ingestions).Add(ctx, ing)
	if err != nil {
		return "", fmt.Errorf("failed to create ingestion document: %w", err)
	}
	return ref.ID, nil
}

// UpdateIngestion sets the given fields on an ingestion document.
func (s *FirestoreStore) UpdateIngestion(ctx context.Context, id string, fields map[string]interface{}) error {
	updates := make([]firestore.Update, 0, len(fields))
	for path, value := range fields {
		updates = append(updates, firestore.Update{Path: path, Value: value})
	}
	if _, err := s.client.Collection(s.collections.Ingestions).Doc(id).Update(ctx, updates); err != nil {
		return fmt.Errorf("failed to update ingestion %s: %w", id, err)
	}
	return nil
}
