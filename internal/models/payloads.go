package models

// These structs define the JSON payloads of the HTTP functions and the
// storage notification consumed by the document extractor.

// DashboardRequest is the input of the dashboard-report function.
// Dates are YYYY-MM-DD; To covers the whole day.
type DashboardRequest struct {
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	Technician  string `json:"technician,omitempty"`
	Status      string `json:"status,omitempty"`
	ExecutionID string `json:"executionId,omitempty"`
}

// DashboardResponse is the output of the dashboard-report function.
type DashboardResponse struct {
	Dashboard
	GeneratedAt string `json:"generatedAt"`
}

// CustomerRollupRequest is the input of the customer-rollup function.
type CustomerRollupRequest struct {
	PersistProfiles bool   `json:"persistProfiles,omitempty"`
	Limit           int    `json:"limit,omitempty"`
	SummaryOnly     bool   `json:"summaryOnly,omitempty"` // leave customers out of the response
	ExecutionID     string `json:"executionId,omitempty"`
}

// CustomerRollupResponse is the output of the customer-rollup function.
type CustomerRollupResponse struct {
	Customers []CustomerRollup `json:"customers"`
	Count     int              `json:"count"`
	Persisted int              `json:"persisted"`
}

// FinanceReportRequest is the input of the finance-report function.
type FinanceReportRequest struct {
	From        string `json:"from,omitempty"`
	To          string `json:"to,omitempty"`
	ExecutionID string `json:"executionId,omitempty"`
}

// FinanceReportResponse is the output of the finance-report function.
type FinanceReportResponse struct {
	Receivables Receivables    `json:"receivables"`
	Expenses    ExpenseSummary `json:"expenses"`
	GeneratedAt string         `json:"generatedAt"`
}

// GCSEvent is the data payload of a storage object-finalized CloudEvent.
type GCSEvent struct {
	Bucket      string `json:"bucket"`
	Name        string `json:"name"`
	ContentType string `json:"contentType,omitempty"`
}
