package models

import "time"

// Status is the billing/scheduling state of a service record.
type Status string

const (
	StatusScheduled Status = "Scheduled"
	StatusCompleted Status = "Completed"
	StatusPaid      Status = "Paid"
	StatusOwed      Status = "Owed"
	StatusEstimate  Status = "Estimate"
	StatusNoCharge  Status = "No Charge"
)

// UnknownStatusLabel is used in status breakdowns for records without a status.
const UnknownStatusLabel = "Unknown"

var knownStatuses = []Status{
	StatusScheduled,
	StatusCompleted,
	StatusPaid,
	StatusOwed,
	StatusEstimate,
	StatusNoCharge,
}

// IsBilled reports whether the status contributes to billed revenue.
func (s Status) IsBilled() bool {
	return s == StatusPaid || s == StatusOwed
}

// Known reports whether s is one of the recognized statuses.
func (s Status) Known() bool {
	for _, k := range knownStatuses {
		if s == k {
			return true
		}
	}
	return false
}

// Equipment describes the unit serviced on a job.
type Equipment struct {
	Model           string `firestore:"model,omitempty" json:"model,omitempty"`
	Serial          string `firestore:"serialNumber,omitempty" json:"serialNumber,omitempty"`
	FilterSize      string `firestore:"filterSize,omitempty" json:"filterSize,omitempty"`
	RefrigerantType string `firestore:"refrigerantType,omitempty" json:"refrigerantType,omitempty"`
}

// ServiceRecord is one unit of billable or schedulable HVAC work.
// Date is the zero time when the stored value was missing or unparseable.
type ServiceRecord struct {
	ID             string    `firestore:"-" json:"id"`
	Date           time.Time `firestore:"date" json:"date"`
	TechnicianName string    `firestore:"technician,omitempty" json:"technician,omitempty"`
	TechnicianID   string    `firestore:"technicianId,omitempty" json:"technicianId,omitempty"`
	CustomerName   string    `firestore:"customerName,omitempty" json:"customerName,omitempty"`
	CustomerID     string    `firestore:"customerId,omitempty" json:"customerId,omitempty"`
	Address        string    `firestore:"address,omitempty" json:"address,omitempty"`
	Phone          string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	Equipment      Equipment `firestore:"equipment" json:"equipment"`
	LaborHours     string    `firestore:"laborHours,omitempty" json:"laborHours,omitempty"`
	CostBreakdown  string    `firestore:"costBreakdown,omitempty" json:"costBreakdown,omitempty"`
	Description    string    `firestore:"description,omitempty" json:"description,omitempty"`
	Total          float64   `firestore:"total" json:"total"`
	Status         Status    `firestore:"status,omitempty" json:"status,omitempty"`
	DocumentURL    string    `firestore:"documentUrl,omitempty" json:"documentUrl,omitempty"`
	SourceHash     string    `firestore:"sourceHash,omitempty" json:"-"`
	CreatedBy      string    `firestore:"createdBy,omitempty" json:"-"`
	CreatedAt      time.Time `firestore:"createdAt,omitempty" json:"-"`
}

// Customer is an entry in the authoritative customer list.
type Customer struct {
	ID        string    `firestore:"-" json:"id"`
	Name      string    `firestore:"name,omitempty" json:"name"`
	Address   string    `firestore:"address,omitempty" json:"address,omitempty"`
	Phone     string    `firestore:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt"`
}

// Expense is a business expense, usually captured from a scanned receipt.
type Expense struct {
	ID            string    `firestore:"-" json:"id"`
	Date          time.Time `firestore:"date" json:"date"`
	Vendor        string    `firestore:"vendor,omitempty" json:"vendor,omitempty"`
	Category      string    `firestore:"category,omitempty" json:"category,omitempty"`
	Description   string    `firestore:"description,omitempty" json:"description,omitempty"`
	Amount        float64   `firestore:"amount" json:"amount"`
	PaymentMethod string    `firestore:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	ReceiptURL    string    `firestore:"receiptUrl,omitempty" json:"receiptUrl,omitempty"`
	SourceHash    string    `firestore:"sourceHash,omitempty" json:"-"`
	CreatedBy     string    `firestore:"createdBy,omitempty" json:"-"`
	CreatedAt     time.Time `firestore:"createdAt,omitempty" json:"-"`
}

// IngestionContext carries the identity that new documents are attributed to.
type IngestionContext struct {
	CreatedBy    string
	TechnicianID string
}
