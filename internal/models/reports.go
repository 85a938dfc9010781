package models

import "time"

// TechnicianPerformance is the per-technician job count and unconditional revenue.
type TechnicianPerformance struct {
	Technician   string  `json:"technician"`
	TotalJobs    int     `json:"totalJobs"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// RevenueDataPoint is the Paid revenue for one calendar month ("2006-01").
type RevenueDataPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// StatusCount is the number of records carrying a status.
type StatusCount struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CustomerRollup aggregates every record of one customer.
type CustomerRollup struct {
	CustomerID      string          `firestore:"customerId" json:"customerId"`
	Name            string          `firestore:"name,omitempty" json:"name"`
	Address         string          `firestore:"address,omitempty" json:"address,omitempty"`
	Phone           string          `firestore:"phone,omitempty" json:"phone,omitempty"`
	TotalJobs       int             `firestore:"totalJobs" json:"totalJobs"`
	TotalBilled     float64         `firestore:"totalBilled" json:"totalBilled"`
	LastServiceDate time.Time       `firestore:"lastServiceDate,omitempty" json:"lastServiceDate"`
	Records         []ServiceRecord `firestore:"-" json:"records"`
}

// Dashboard is the view model produced for a filter selection.
type Dashboard struct {
	TechnicianPerformance []TechnicianPerformance `json:"technicianPerformance"`
	RevenueData           []RevenueDataPoint      `json:"revenueData"`
	StatusData            []StatusCount           `json:"statusData"`
	TotalRevenue          float64                 `json:"totalRevenue"`
	TotalCustomers        int                     `json:"totalCustomers"`
	TotalJobs             int                     `json:"totalJobs"`
	UniqueTechnicians     []string                `json:"uniqueTechnicians"`
	InactiveCustomers     int                     `json:"inactiveCustomers"`
	TotalCustomerCount    int                     `json:"totalCustomerCount"`
}

// AgingBuckets splits outstanding balances by days since service.
type AgingBuckets struct {
	Current    float64 `json:"0-30"`
	Days31To60 float64 `json:"31-60"`
	Days61To90 float64 `json:"61-90"`
	Over90     float64 `json:"90+"`
}

// CustomerBalance is the outstanding (Owed) balance of one customer.
type CustomerBalance struct {
	CustomerID   string    `json:"customerId,omitempty"`
	Name         string    `json:"name"`
	Outstanding  float64   `json:"outstanding"`
	OpenInvoices int       `json:"openInvoices"`
	OldestOwed   time.Time `json:"oldestOwed"`
}

// Receivables summarizes all Owed records.
type Receivables struct {
	TotalOutstanding float64           `json:"totalOutstanding"`
	OpenInvoices     int               `json:"openInvoices"`
	Aging            AgingBuckets      `json:"aging"`
	Customers        []CustomerBalance `json:"customers"`
}

// CategoryTotal is the expense total of one category.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// MonthTotal is the expense total of one calendar month ("2006-01").
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// ExpenseSummary summarizes expenses inside a date range.
type ExpenseSummary struct {
	Total      float64         `json:"total"`
	Count      int             `json:"count"`
	ByCategory []CategoryTotal `json:"byCategory"`
	ByMonth    []MonthTotal    `json:"byMonth"`
}
