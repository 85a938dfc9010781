// Package handlers adapts the report and ingestion services to HTTP and
// CloudEvent entry points.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/services"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock_handlers.go -package=mocks

type DashboardProcessor interface {
	Process(ctx context.Context, req *models.DashboardRequest) (*models.DashboardResponse, error)
}

type CustomerRollupProcessor interface {
	Process(ctx context.Context, req *models.CustomerRollupRequest) (*models.CustomerRollupResponse, error)
}

type FinanceReportProcessor interface {
	Process(ctx context.Context, req *models.FinanceReportRequest) (*models.FinanceReportResponse, error)
}

type ExtractionProcessor interface {
	Process(ctx context.Context, ictx models.IngestionContext, e models.GCSEvent) error
}

// Dashboard serves the dashboard view model. GET reads the filter from the
// query string, POST from a JSON body.
func Dashboard(p DashboardProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.DashboardRequest
		if r.Method == http.MethodGet {
			q := r.URL.Query()
			req = models.DashboardRequest{
				From:       q.Get("from"),
				To:         q.Get("to"),
				Technician: q.Get("technician"),
				Status:     q.Get("status"),
			}
		} else if err := decodeBody(r, &req); err != nil {
			slog.Warn("Could not decode request body", "error", err)
			http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
			return
		}

		res, err := p.Process(r.Context(), &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// CustomerRollups serves per-customer rollups.
func CustomerRollups(p CustomerRollupProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CustomerRollupRequest
		if r.Method == http.MethodGet {
			if limit := r.URL.Query().Get("limit"); limit != "" {
				n, err := strconv.Atoi(limit)
				if err != nil {
					http.Error(w, "Bad Request: limit must be a number", http.StatusBadRequest)
					return
				}
				req.Limit = n
			}
		} else if err := decodeBody(r, &req); err != nil {
			slog.Warn("Could not decode request body", "error", err)
			http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
			return
		}

		res, err := p.Process(r.Context(), &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// FinanceReport serves receivables and the expense summary.
func FinanceReport(p FinanceReportProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.FinanceReportRequest
		if r.Method == http.MethodGet {
			req.From = r.URL.Query().Get("from")
			req.To = r.URL.Query().Get("to")
		} else if err := decodeBody(r, &req); err != nil {
			slog.Warn("Could not decode request body", "error", err)
			http.Error(w, "Bad Request: could not parse JSON", http.StatusBadRequest)
			return
		}

		res, err := p.Process(r.Context(), &req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, res)
	}
}

// Extraction unwraps a storage CloudEvent and hands it to the extractor with
// the configured ingestion identity.
func Extraction(p ExtractionProcessor, ictx models.IngestionContext) func(context.Context, cloudevents.Event) error {
	return func(ctx context.Context, e cloudevents.Event) error {
		var gcsEvent models.GCSEvent
		if err := json.Unmarshal(e.Data(), &gcsEvent); err != nil {
			slog.Error("Failed to unmarshal event data", "error", err, "data", string(e.Data()))
			return fmt.Errorf("json.Unmarshal: %w", err)
		}
		if gcsEvent.Bucket == "" || gcsEvent.Name == "" {
			slog.Warn("Event without bucket or object name. Ignoring.", "eventId", e.ID())
			return nil
		}
		return p.Process(ctx, ictx, gcsEvent)
	}
}

// decodeBody decodes a JSON body. An empty body leaves v untouched.
func decodeBody(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidLimit):
		http.Error(w, "Bad Request: "+err.Error(), http.StatusBadRequest)
	default:
		// The specific error is already logged inside the service.
		http.Error(w, "Internal Server Error: processing failed", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to write response", "error", err)
	}
}
