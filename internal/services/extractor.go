package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/joesexpress/studio-sub000/internal/gcp"
	"github.com/joesexpress/studio-sub000/internal/models"
	"github.com/joesexpress/studio-sub000/internal/store"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Object prefixes that select the extraction model.
const (
	ServiceRecordPrefix = "service-records/"
	ReceiptPrefix       = "receipts/"
)

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".heic": "image/heic",
}

// ExtractorConfig holds configuration for the document extractor.
type ExtractorConfig struct {
	Store             StoreConfig
	VertexAIRegion    string
	VertexAIModel     string
	ExtractionsBucket string
	WorkflowID        string
	WorkflowLocation  string
	MaxPages          int
}

// ExtractorFunction turns uploaded service tickets and receipts into records.
type ExtractorFunction struct {
	store       IngestionStore
	customers   CustomerReader
	source      DocumentSource
	extractor   FieldExtractor
	archive     ExtractionArchive
	launcher    WorkflowLauncher
	maxPages    int
	backoff     time.Duration
	validatePDF func(pdfPath string) (int, error)
	now         func() time.Time
}

func loadExtractorConfig() (*ExtractorConfig, error) {
	storeConfig, err := loadStoreConfig()
	if err != nil {
		return nil, err
	}
	config := &ExtractorConfig{
		Store:             *storeConfig,
		VertexAIRegion:    gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
		VertexAIModel:     gcp.GetEnv("VERTEX_AI_MODEL", "gemini-1.5-pro"),
		ExtractionsBucket: gcp.GetEnv("EXTRACTIONS_BUCKET", ""),
		WorkflowID:        gcp.GetEnv("WORKFLOW_ID", ""),
		WorkflowLocation:  gcp.GetEnv("WORKFLOW_LOCATION", "us-central1"),
		MaxPages:          gcp.GetEnvInt("MAX_DOCUMENT_PAGES", 5),
	}
	if config.ExtractionsBucket == "" {
		return nil, fmt.Errorf("EXTRACTIONS_BUCKET environment variable must be set")
	}
	if config.MaxPages <= 0 {
		return nil, fmt.Errorf("MAX_DOCUMENT_PAGES must be positive, got %d", config.MaxPages)
	}
	return config, nil
}

// NewExtractor creates an ExtractorFunction wired to Firestore, Cloud Storage,
// Vertex AI and, when WORKFLOW_ID is set, Cloud Workflows.
func NewExtractor(ctx context.Context) (*ExtractorFunction, error) {
	config, err := loadExtractorConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	st, err := newFirestoreStore(ctx, &config.Store)
	if err != nil {
		return nil, err
	}
	storageClient, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create Storage client: %w", err)
	}
	vertexClient, err := gcp.NewVertexClient(ctx, config.Store.ProjectID, config.VertexAIRegion, config.VertexAIModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex client: %w", err)
	}

	f := &ExtractorFunction{
		store:       st,
		customers:   st,
		source:      gcp.NewStorageDownloader(storageClient),
		extractor:   vertexClient,
		archive:     gcp.NewBucketArchive(storageClient, config.ExtractionsBucket),
		maxPages:    config.MaxPages,
		backoff:     time.Second,
		validatePDF: validatePDF,
		now:         time.Now,
	}
	if config.WorkflowID != "" {
		launcher, err := gcp.NewWorkflowLauncher(ctx, config.Store.ProjectID, config.WorkflowLocation, config.WorkflowID)
		if err != nil {
			return nil, err
		}
		f.launcher = launcher
	}
	slog.Info("Document extractor logic initialized.", "workflowId", config.WorkflowID, "maxPages", config.MaxPages)
	return f, nil
}

// Process ingests one uploaded object. Objects outside the known prefixes,
// unsupported file types and already ingested files are skipped without error.
func (f *ExtractorFunction) Process(ctx context.Context, ictx models.IngestionContext, e models.GCSEvent) error {
	executionID := uuid.NewString()
	logCtx := slog.With("gcsBucket", e.Bucket, "gcsObject", e.Name, "executionId", executionID)

	kind, ok := kindForObject(e.Name)
	if !ok {
		logCtx.Info("Object is outside the ingestion prefixes. Skipping.")
		return nil
	}
	mimeType, ok := mimeTypeFor(e)
	if !ok {
		logCtx.Info("Unsupported file type. Skipping.")
		return nil
	}
	logCtx = logCtx.With("kind", kind)
	logCtx.Info("Processing new upload.")

	tempDir, err := os.MkdirTemp("", "document-extractor-*")
	if err != nil {
		return fmt.Errorf("failed to create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	localPath := filepath.Join(tempDir, "source"+path.Ext(e.Name))
	download := func(ctx context.Context) error {
		return f.source.Download(ctx, e.Bucket, e.Name, localPath)
	}
	if err := withRetry(ctx, "download "+e.Name, f.backoff, download); err != nil {
		logCtx.Error("Failed to download upload", "error", err)
		return err
	}

	fileHash, err := calculateFileHash(localPath)
	if err != nil {
		logCtx.Error("Failed to calculate file hash", "error", err)
		return fmt.Errorf("failed to calculate file hash: %w", err)
	}
	logCtx = logCtx.With("fileHash", fileHash)

	existing, err := f.store.FindIngestionBySourceHash(ctx, fileHash)
	if err != nil {
		logCtx.Error("Failed to check for duplicate", "error", err)
		return err
	}
	if existing != nil && existing.Status != models.IngestionFailed {
		logCtx.Info("Duplicate file detected. Skipping.", "existingIngestionId", existing.ID, "existingStatus", existing.Status)
		return nil
	}

	ingestionID, err := f.startIngestion(ctx, existing, models.Ingestion{
		SourceHash:  fileHash,
		ObjectName:  e.Name,
		Kind:        kind,
		Status:      models.IngestionValidating,
		ExecutionID: executionID,
		CreatedBy:   ictx.CreatedBy,
		CreatedAt:   f.now().UTC(),
	})
	if err != nil {
		logCtx.Error("Failed to start ingestion", "error", err)
		return err
	}
	logCtx = logCtx.With("ingestionId", ingestionID)

	pageCount := 1
	if mimeType == "application/pdf" {
		pageCount, err = f.validatePDF(localPath)
		if err != nil {
			return f.handleError(ctx, logCtx, ingestionID, "failed to validate PDF", err)
		}
		if pageCount > f.maxPages {
			return f.handleError(ctx, logCtx, ingestionID, "document rejected",
				fmt.Errorf("%d pages exceeds the limit of %d", pageCount, f.maxPages))
		}
	}
	if err := f.store.UpdateIngestion(ctx, ingestionID, map[string]interface{}{
		"status":    models.IngestionExtracting,
		"pageCount": pageCount,
	}); err != nil {
		return f.handleError(ctx, logCtx, ingestionID, "failed to update status to EXTRACTING", err)
	}

	sourceURI := gcp.GCSURI(e.Bucket, e.Name)
	raw, err := f.extractor.ExtractFields(ctx, kind, sourceURI, mimeType)
	if err != nil {
		return f.handleError(ctx, logCtx, ingestionID, "failed to extract fields", err)
	}
	fields, err := decodeFields(raw)
	if err != nil {
		return f.handleError(ctx, logCtx, ingestionID, "failed to parse extracted fields", err)
	}

	if _, err := f.archive.Archive(ctx, fmt.Sprintf("%s/%s.json", kind, ingestionID), raw); err != nil {
		return f.handleError(ctx, logCtx, ingestionID, "failed to archive extraction", err)
	}

	var (
		resultID  string
		workflow  string
		createdAt = f.now().UTC()
	)
	switch kind {
	case models.KindServiceRecord:
		rec := f.buildRecord(ctx, logCtx, ictx, fields, sourceURI, fileHash, createdAt)
		if resultID, err = f.store.CreateServiceRecord(ctx, rec); err != nil {
			return f.handleError(ctx, logCtx, ingestionID, "failed to save service record", err)
		}
		if workflow, err = f.triggerWorkflow(ctx, rec, resultID, ingestionID, executionID); err != nil {
			return f.handleError(ctx, logCtx, ingestionID, "failed to trigger workflow execution", err)
		}
	case models.KindReceipt:
		exp := store.ExpenseFromData("", fields)
		exp.ReceiptURL = sourceURI
		exp.SourceHash = fileHash
		exp.CreatedBy = ictx.CreatedBy
		exp.CreatedAt = createdAt
		if resultID, err = f.store.CreateExpense(ctx, exp); err != nil {
			return f.handleError(ctx, logCtx, ingestionID, "failed to save expense", err)
		}
	}

	updates := map[string]interface{}{
		"status":   models.IngestionCompleted,
		"resultId": resultID,
	}
	if workflow != "" {
		updates["workflowExecutionId"] = workflow
	}
	if err := f.store.UpdateIngestion(ctx, ingestionID, updates); err != nil {
		logCtx.Error("Failed to mark ingestion completed", "error", err)
		return fmt.Errorf("failed to mark ingestion completed: %w", err)
	}
	logCtx.Info("Ingestion complete.", "resultId", resultID, "pageCount", pageCount)
	return nil
}

func (f *ExtractorFunction) buildRecord(ctx context.Context, logCtx *slog.Logger, ictx models.IngestionContext, fields map[string]interface{}, sourceURI, fileHash string, createdAt time.Time) models.ServiceRecord {
	rec := store.RecordFromData("", fields)
	if !rec.Status.Known() {
		rec.Status = models.StatusCompleted
	}
	if rec.TechnicianID == "" {
		rec.TechnicianID = ictx.TechnicianID
	}
	rec.DocumentURL = sourceURI
	rec.SourceHash = fileHash
	rec.CreatedBy = ictx.CreatedBy
	rec.CreatedAt = createdAt

	if rec.CustomerName == "" || f.customers == nil {
		return rec
	}
	customers, err := f.customers.ListCustomers(ctx)
	if err != nil {
		logCtx.Warn("Could not load customers to link record.", "error", err)
		return rec
	}
	if c, ok := matchCustomer(customers, rec.CustomerName); ok {
		rec.CustomerID = c.ID
		logCtx.Info("Linked record to customer.", "customerId", c.ID)
	}
	return rec
}

func (f *ExtractorFunction) triggerWorkflow(ctx context.Context, rec models.ServiceRecord, recordID, ingestionID, executionID string) (string, error) {
	if f.launcher == nil {
		return "", nil
	}
	payload, err := json.Marshal(map[string]interface{}{
		"recordId":    recordID,
		"customerId":  rec.CustomerID,
		"ingestionId": ingestionID,
		"executionId": executionID,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal workflow payload: %w", err)
	}
	return f.launcher.Launch(ctx, payload)
}

// startIngestion creates the tracking document, or reopens a FAILED one for
// the same file so a retried upload keeps a single ingestion per hash.
func (f *ExtractorFunction) startIngestion(ctx context.Context, failed *models.Ingestion, ing models.Ingestion) (string, error) {
	if failed == nil {
		return f.store.CreateIngestion(ctx, ing)
	}
	if err := f.store.UpdateIngestion(ctx, failed.ID, map[string]interface{}{
		"status":       ing.Status,
		"objectName":   ing.ObjectName,
		"kind":         ing.Kind,
		"executionId":  ing.ExecutionID,
		"errorDetails": "",
	}); err != nil {
		return "", err
	}
	slog.Info("Retrying previously failed ingestion.", "ingestionId", failed.ID, "previousError", failed.ErrorDetails)
	return failed.ID, nil
}

func (f *ExtractorFunction) handleError(ctx context.Context, logCtx *slog.Logger, ingestionID, message string, originalErr error) error {
	fullError := fmt.Sprintf("%s: %v", message, originalErr)
	logCtx.Error(message, "error", originalErr)
	if err := f.store.UpdateIngestion(ctx, ingestionID, map[string]interface{}{
		"status":       models.IngestionFailed,
		"errorDetails": fullError,
	}); err != nil {
		logCtx.Error("CRITICAL: Failed to update Firestore status to FAILED after a processing error.", "updateError", err)
	}
	return fmt.Errorf("%s: %w", message, originalErr)
}

func kindForObject(name string) (models.DocumentKind, bool) {
	switch {
	case strings.HasPrefix(name, ServiceRecordPrefix):
		return models.KindServiceRecord, true
	case strings.HasPrefix(name, ReceiptPrefix):
		return models.KindReceipt, true
	default:
		return "", false
	}
}

// mimeTypeFor picks the MIME type from the object extension, falling back to
// the content type recorded on the object.
func mimeTypeFor(e models.GCSEvent) (string, bool) {
	if mt, ok := mimeTypes[strings.ToLower(path.Ext(e.Name))]; ok {
		return mt, true
	}
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(e.ContentType, ";", 2)[0]))
	for _, mt := range mimeTypes {
		if mt == ct {
			return mt, true
		}
	}
	return "", false
}

// decodeFields parses the model output into raw document fields.
func decodeFields(raw []byte) (map[string]interface{}, error) {
	var fields map[string]interface{}
	if err := json.Unmarshal([]byte(gcp.StripCodeFence(string(raw))), &fields); err != nil {
		return nil, fmt.Errorf("model output is not a JSON object: %w", err)
	}
	return fields, nil
}

// matchCustomer finds a customer by case-insensitive name.
func matchCustomer(customers []models.Customer, name string) (models.Customer, bool) {
	name = strings.TrimSpace(name)
	for _, c := range customers {
		if strings.EqualFold(strings.TrimSpace(c.Name), name) {
			return c, true
		}
	}
	return models.Customer{}, false
}

// validatePDF validates the PDF in relaxed mode and returns its page count.
func validatePDF(pdfPath string) (int, error) {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(pdfPath, cfg); err != nil {
		return 0, fmt.Errorf("failed to validate PDF: %w", err)
	}
	pageCount, err := api.PageCountFile(pdfPath)
	if err != nil {
		return 0, fmt.Errorf("failed to get page count: %w", err)
	}
	return pageCount, nil
}

func calculateFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()
	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", err
	}
	return hex.EncodeToString(hash.Sum(nil)), nil
}
