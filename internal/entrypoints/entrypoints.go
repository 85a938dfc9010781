// Package entrypoints registers the Cloud Functions of the app with the
// functions framework. Services are built on first use so a cold start
// that fails to initialize reports the error on every invocation.
package entrypoints

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"
	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/joesexpress/studio-sub000/internal/gcp"
	"github.com/joesexpress/studio-sub000/internal/handlers"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/services"
)

// Function names as deployed.
const (
	DashboardFunctionName      = "HandleDashboard"
	CustomerRollupFunctionName = "HandleCustomerRollups"
	FinanceReportFunctionName  = "HandleFinanceReport"
	ExtractorFunctionName      = "ExtractDocument"
)

type lazy[T any] struct {
	once  sync.Once
	build func(context.Context) (T, error)
	value T
	err   error
}

func (l *lazy[T]) get() (T, error) {
	l.once.Do(func() {
		l.value, l.err = l.build(context.Background())
	})
	return l.value, l.err
}

var (
	dashboard      = &lazy[*services.DashboardFunction]{build: services.NewDashboard}
	customerRollup = &lazy[*services.CustomerRollupFunction]{build: services.NewCustomerRollup}
	financeReport  = &lazy[*services.FinanceReportFunction]{build: services.NewFinanceReport}
	extractor      = &lazy[*services.ExtractorFunction]{build: services.NewExtractor}
)

func RegisterDashboard() {
	functions.HTTP(DashboardFunctionName, func(w http.ResponseWriter, r *http.Request) {
		svc, err := dashboard.get()
		if err != nil {
			initFailed(w, DashboardFunctionName, err)
			return
		}
		handlers.Dashboard(svc).ServeHTTP(w, r)
	})
}

func RegisterCustomerRollup() {
	functions.HTTP(CustomerRollupFunctionName, func(w http.ResponseWriter, r *http.Request) {
		svc, err := customerRollup.get()
		if err != nil {
			initFailed(w, CustomerRollupFunctionName, err)
			return
		}
		handlers.CustomerRollups(svc).ServeHTTP(w, r)
	})
}

func RegisterFinanceReport() {
	functions.HTTP(FinanceReportFunctionName, func(w http.ResponseWriter, r *http.Request) {
		svc, err := financeReport.get()
		if err != nil {
			initFailed(w, FinanceReportFunctionName, err)
			return
		}
		handlers.FinanceReport(svc).ServeHTTP(w, r)
	})
}

func RegisterExtractor() {
	ictx := IngestionContextFromEnv()
	functions.CloudEvent(ExtractorFunctionName, func(ctx context.Context, e cloudevents.Event) error {
		svc, err := extractor.get()
		if err != nil {
			slog.Error("Critical error during function initialization", "function", ExtractorFunctionName, "error", err)
			return err
		}
		return handlers.Extraction(svc, ictx)(ctx, e)
	})
}

// RegisterAll registers every function, for local serving.
func RegisterAll() {
	RegisterDashboard()
	RegisterCustomerRollup()
	RegisterFinanceReport()
	RegisterExtractor()
}

// IngestionContextFromEnv reads the identity that extracted documents are attributed to.
func IngestionContextFromEnv() models.IngestionContext {
	return models.IngestionContext{
		CreatedBy:    gcp.GetEnv("INGEST_CREATED_BY", "document-extractor"),
		TechnicianID: gcp.GetEnv("INGEST_TECHNICIAN_ID", ""),
	}
}

func initFailed(w http.ResponseWriter, name string, err error) {
	slog.Error("Critical error during function initialization", "function", name, "error", err)
	http.Error(w, "Internal Server Error: failed to initialize service", http.StatusInternalServerError)
}
