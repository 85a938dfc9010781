package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/shopspring/decimal"
)

// Layouts accepted for dates stored as strings, most specific first.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// normalizeTime converts any persisted temporal value into a time.Time.
// Firestore timestamps arrive as time.Time, legacy rows as strings and
// exported rows as {seconds, nanoseconds} maps. Anything else is the zero time.
func normalizeTime(v interface{}) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case *time.Time:
		if t == nil {
			return time.Time{}
		}
		return t.UTC()
	case string:
		return parseDate(t)
	case map[string]interface{}:
		secs, ok := toInt64(firstOf(t, "seconds", "_seconds"))
		if !ok {
			return time.Time{}
		}
		nanos, _ := toInt64(firstOf(t, "nanoseconds", "_nanoseconds"))
		return time.Unix(secs, nanos).UTC()
	default:
		return time.Time{}
	}
}

// parseDate tries every known layout and returns the zero time when none matches.
func parseDate(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// normalizeAmount converts a persisted monetary value into a float64. Strings
// may carry currency symbols, thousands separators and accounting negatives.
// Unparseable values are zero.
func normalizeAmount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		d, err := parseCurrency(n)
		if err != nil {
			return 0
		}
		return d.InexactFloat64()
	default:
		return 0
	}
}

// parseCurrency parses strings like "$1,234.50" or "(45.00)".
func parseCurrency(s string) (decimal.Decimal, error) {
	s = cleanCurrency(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// cleanCurrency removes $ and commas from currency strings.
// Accounting notation is turned into a sign: (123.45) -> -123.45
func cleanCurrency(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
	}
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}

func toInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case float64:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func firstOf(data map[string]interface{}, keys ...string) interface{} {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// str reads the first non-empty string among keys.
func str(data map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		switch v := data[k].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case int64:
			return strconv.FormatInt(v, 10)
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// RecordFromData builds a ServiceRecord from raw document fields.
func RecordFromData(id string, data map[string]interface{}) models.ServiceRecord {
	rec := models.ServiceRecord{
		ID:             id,
		Date:           normalizeTime(firstOf(data, "date", "serviceDate")),
		TechnicianName: str(data, "technician", "technicianName"),
		TechnicianID:   str(data, "technicianId"),
		CustomerName:   str(data, "customerName", "customer"),
		CustomerID:     str(data, "customerId"),
		Address:        str(data, "address"),
		Phone:          str(data, "phone"),
		LaborHours:     str(data, "laborHours"),
		CostBreakdown:  str(data, "costBreakdown"),
		Description:    str(data, "description"),
		Total:          normalizeAmount(data["total"]),
		Status:         models.Status(str(data, "status")),
		DocumentURL:    str(data, "documentUrl"),
		SourceHash:     str(data, "sourceHash"),
		CreatedBy:      str(data, "createdBy"),
		CreatedAt:      normalizeTime(data["createdAt"]),
	}
	if eq, ok := data["equipment"].(map[string]interface{}); ok {
		rec.Equipment = models.Equipment{
			Model:           str(eq, "model"),
			Serial:          str(eq, "serialNumber", "serial"),
			FilterSize:      str(eq, "filterSize"),
			RefrigerantType: str(eq, "refrigerantType"),
		}
	}
	return rec
}

func customerFromData(id string, data map[string]interface{}) models.Customer {
	return models.Customer{
		ID:        id,
		Name:      str(data, "name", "customerName"),
		Address:   str(data, "address"),
		Phone:     str(data, "phone"),
		CreatedAt: normalizeTime(data["createdAt"]),
	}
}

// ExpenseFromData builds an Expense from raw document fields.
func ExpenseFromData(id string, data map[string]interface{}) models.Expense {
	return models.Expense{
		ID:            id,
		Date:          normalizeTime(data["date"]),
		Vendor:        str(data, "vendor"),
		Category:      str(data, "category"),
		Description:   str(data, "description"),
		Amount:        normalizeAmount(data["amount"]),
		PaymentMethod: str(data, "paymentMethod"),
		ReceiptURL:    str(data, "receiptUrl"),
		SourceHash:    str(data, "sourceHash"),
		CreatedBy:     str(data, "createdBy"),
		CreatedAt:     normalizeTime(data["createdAt"]),
	}
}
