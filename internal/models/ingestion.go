package models

import "time"

// DocumentKind selects how an uploaded document is extracted.
type DocumentKind string

const (
	KindServiceRecord DocumentKind = "serviceRecord"
	KindReceipt       DocumentKind = "receipt"
)

// Ingestion statuses.
const (
	IngestionValidating = "VALIDATING"
	IngestionExtracting = "EXTRACTING"
	IngestionCompleted  = "COMPLETED"
	IngestionFailed     = "FAILED"
)

// Ingestion tracks the processing of one uploaded document in Firestore.
type Ingestion struct {
	ID                  string       `firestore:"-"`
	SourceHash          string       `firestore:"sourceHash,omitempty"`
	ObjectName          string       `firestore:"objectName,omitempty"`
	Kind                DocumentKind `firestore:"kind,omitempty"`
	Status              string       `firestore:"status,omitempty"`
	ErrorDetails        string       `firestore:"errorDetails,omitempty"`
	PageCount           int          `firestore:"pageCount,omitempty"`
	ResultID            string       `firestore:"resultId,omitempty"`
	ExecutionID         string       `firestore:"executionId,omitempty"`
	WorkflowExecutionID string       `firestore:"workflowExecutionId,omitempty"`
	CreatedBy           string       `firestore:"createdBy,omitempty"`
	CreatedAt           time.Time    `firestore:"createdAt,omitempty"`
}
