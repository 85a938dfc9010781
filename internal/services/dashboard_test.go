package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/services/mocks"

	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func nowFn() time.Time { return fixedNow }

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func snapshotRecords() []models.ServiceRecord {
	return []models.ServiceRecord{
		{ID: "r1", Date: date(2024, 8, 10), TechnicianName: "Joe", CustomerID: "c1", CustomerName: "Acme", Total: 100, Status: models.StatusPaid},
		{ID: "r2", Date: date(2024, 8, 20), TechnicianName: "Joe", CustomerID: "c1", CustomerName: "Acme", Total: 50, Status: models.StatusOwed},
		{ID: "r3", Date: date(2024, 8, 31), TechnicianName: "Sam", CustomerID: "c2", CustomerName: "Beta", Total: 400, Status: models.StatusEstimate},
	}
}

func TestDashboardFunction_Process(t *testing.T) {
	t.Run("aggregates the filtered snapshot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mocks.NewMockRecordReader(ctrl)
		customers := mocks.NewMockCustomerReader(ctrl)
		records.EXPECT().ListServiceRecords(gomock.Any()).Return(snapshotRecords(), nil)
		customers.EXPECT().ListCustomers(gomock.Any()).Return([]models.Customer{{ID: "c1"}, {ID: "c3"}}, nil)

		f := newDashboard(records, customers, nowFn)
		resp, err := f.Process(context.Background(), &models.DashboardRequest{
			From:       "2024-08-01",
			To:         "2024-08-20",
			Technician: "Joe",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.TotalJobs != 2 || resp.TotalRevenue != 150 || resp.TotalCustomers != 1 {
			t.Fatalf("unexpected dashboard %+v", resp.Dashboard)
		}
		if len(resp.UniqueTechnicians) != 2 {
			t.Fatalf("expected both technicians offered, got %v", resp.UniqueTechnicians)
		}
		if resp.InactiveCustomers != 1 || resp.TotalCustomerCount != 2 {
			t.Fatalf("expected c3 inactive, got %d of %d", resp.InactiveCustomers, resp.TotalCustomerCount)
		}
		if resp.GeneratedAt != "2024-09-01T12:00:00Z" {
			t.Fatalf("unexpected generatedAt %q", resp.GeneratedAt)
		}
	})

	t.Run("to date covers the whole day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mocks.NewMockRecordReader(ctrl)
		customers := mocks.NewMockCustomerReader(ctrl)
		recs := snapshotRecords()
		recs[1].Date = date(2024, 8, 20).Add(17 * time.Hour)
		records.EXPECT().ListServiceRecords(gomock.Any()).Return(recs, nil)
		customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil)

		resp, err := newDashboard(records, customers, nowFn).Process(context.Background(), &models.DashboardRequest{To: "2024-08-20"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.TotalJobs != 2 {
			t.Fatalf("expected 2 jobs, got %d", resp.TotalJobs)
		}
	})

	validation := []struct {
		name string
		req  models.DashboardRequest
		want error
	}{
		{"malformed date", models.DashboardRequest{From: "08/01/2024"}, ErrInvalidDate},
		{"inverted range", models.DashboardRequest{From: "2024-09-01", To: "2024-08-01"}, ErrInvalidDateRange},
	}
	for _, tt := range validation {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newDashboard(mocks.NewMockRecordReader(ctrl), mocks.NewMockCustomerReader(ctrl), nowFn)

			_, err := f.Process(context.Background(), &tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	t.Run("status outside the known set is an exact match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mocks.NewMockRecordReader(ctrl)
		customers := mocks.NewMockCustomerReader(ctrl)
		recs := append(snapshotRecords(),
			models.ServiceRecord{ID: "r4", Date: date(2024, 8, 5), TechnicianName: "Sam", Status: "Warranty"},
			models.ServiceRecord{ID: "r5", Date: date(2024, 8, 6), TechnicianName: "Sam", Total: 20},
		)
		records.EXPECT().ListServiceRecords(gomock.Any()).Return(recs, nil)
		customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil)

		resp, err := newDashboard(records, customers, nowFn).Process(context.Background(), &models.DashboardRequest{Status: " Warranty "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.TotalJobs != 1 || len(resp.StatusData) != 1 || resp.StatusData[0].Name != "Warranty" {
			t.Fatalf("expected only the Warranty job, got %+v", resp.Dashboard)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		records := mocks.NewMockRecordReader(ctrl)
		customers := mocks.NewMockCustomerReader(ctrl)
		dbErr := errors.New("unavailable")
		records.EXPECT().ListServiceRecords(gomock.Any()).Return(nil, dbErr)
		customers.EXPECT().ListCustomers(gomock.Any()).Return(nil, nil).AnyTimes()

		_, err := newDashboard(records, customers, nowFn).Process(context.Background(), &models.DashboardRequest{})
		if !errors.Is(err, dbErr) {
			t.Fatalf("expected wrapped store error, got %v", err)
		}
	})
}
