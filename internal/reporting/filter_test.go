package reporting

import (
	"testing"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
)

func ids(records []models.ServiceRecord) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	records := sampleRecords()
	from := day(2024, 2, 5)
	to := day(2024, 3, 1)
	endOfDay := day(2024, 3, 1).Add(24*time.Hour - time.Nanosecond)
	future := day(2024, 10, 1)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"empty filter keeps everything", Filter{}, []string{"r1", "r2", "r3", "r4", "r5", "r6", "r7"}},
		{"inclusive date bounds", Filter{From: &from, To: &to}, []string{"r2", "r3", "r4"}},
		{"end of day bound", Filter{From: &from, To: &endOfDay}, []string{"r2", "r3", "r4"}},
		{"undated records fall on now", Filter{From: &future}, []string{}},
		{"undated records included up to now", Filter{From: &to}, []string{"r4", "r5", "r6"}},
		{"technician", Filter{Technician: "Sam"}, []string{"r3", "r4"}},
		{"status", Filter{Status: models.StatusPaid}, []string{"r1", "r4", "r5"}},
		{"constraints combine", Filter{Technician: "Sam", Status: models.StatusPaid}, []string{"r4"}},
		{"missing status fails status filter", Filter{Status: models.UnknownStatusLabel}, []string{}},
		{"status outside the known set", Filter{Status: "Warranty"}, []string{}},
		{"missing technician fails technician filter", Filter{Technician: "Nobody"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(tt.filter.Apply(records, testNow))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, got)
				}
			}
		})
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	if !(Filter{}).IsEmpty() {
		t.Fatalf("expected zero filter to be empty")
	}
	if (Filter{Status: models.StatusOwed}).IsEmpty() {
		t.Fatalf("expected status filter not to be empty")
	}
}
