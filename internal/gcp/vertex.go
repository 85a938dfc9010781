package gcp

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
	"github.com/joesexpress/studio-sub000/internal/models"
)

// --- Service record extraction prompts ---
const ServiceRecordSystemPrompt = "You are a data entry assistant for an HVAC service company. You read scanned service tickets and invoices and return their contents as a single JSON object. You never invent values that are not on the document."
const ServiceRecordUserPrompt = `You will be provided with a scanned HVAC service ticket.

Return ONE JSON object with exactly these keys:
- "date": the service date as YYYY-MM-DD, or "" if not legible.
- "technician": the technician's name.
- "customerName", "address", "phone": the customer's contact details.
- "equipment": an object with "model", "serialNumber", "filterSize", "refrigerantType".
- "laborHours": labor time as written on the ticket.
- "costBreakdown": the parts and labor lines as written, one per line.
- "description": the work performed.
- "total": the invoice total as a number without currency symbols, or 0 if absent.
- "status": one of "Scheduled", "Completed", "Paid", "Owed", "Estimate", "No Charge". Use "Paid" only when the ticket is marked paid, "Owed" when a balance is due, "Estimate" for quotes.

Use "" for any text field that is missing. Do not include any text before or after the JSON object.`

// --- Receipt extraction prompts ---
const ReceiptSystemPrompt = "You are a bookkeeping assistant. You read purchase receipts and return their contents as a single JSON object. You never invent values that are not on the receipt."
const ReceiptUserPrompt = `You will be provided with a purchase receipt.

Return ONE JSON object with exactly these keys:
- "date": the purchase date as YYYY-MM-DD, or "" if not legible.
- "vendor": the store or supplier name.
- "category": one of "Parts", "Equipment", "Tools", "Fuel", "Vehicle", "Office", "Meals", "Other".
- "description": a short summary of what was bought.
- "amount": the grand total paid as a number without currency symbols.
- "paymentMethod": e.g. "Cash", "Card", "Check", or "".

Do not include any text before or after the JSON object.`

// VertexClient holds the pre-configured extraction models.
type VertexClient struct {
	ServiceRecordModel *genai.GenerativeModel
	ReceiptModel       *genai.GenerativeModel
	baseClient         *genai.Client
}

// NewVertexClient creates a client holding one JSON extraction model per document kind.
func NewVertexClient(ctx context.Context, projectID, region, modelName string) (*VertexClient, error) {
	if projectID == "" || region == "" {
		return nil, fmt.Errorf("NewVertexClient: projectID and region cannot be empty")
	}
	if modelName == "" {
		modelName = "gemini-1.5-pro"
	}

	baseClient, err := genai.NewClient(ctx, projectID, region)
	if err != nil {
		return nil, fmt.Errorf("genai.NewClient: %w", err)
	}

	return &VertexClient{
		ServiceRecordModel: newExtractionModel(baseClient, modelName, ServiceRecordSystemPrompt),
		ReceiptModel:       newExtractionModel(baseClient, modelName, ReceiptSystemPrompt),
		baseClient:         baseClient,
	}, nil
}

func newExtractionModel(client *genai.Client, name, systemPrompt string) *genai.GenerativeModel {
	model := client.GenerativeModel(name)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	model.GenerationConfig = genai.GenerationConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0.0),
	}
	model.SafetySettings = []*genai.SafetySetting{
		{Category: genai.HarmCategoryHateSpeech, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryDangerousContent, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategorySexuallyExplicit, Threshold: genai.HarmBlockNone},
		{Category: genai.HarmCategoryHarassment, Threshold: genai.HarmBlockNone},
	}
	return model
}

func (c *VertexClient) Close() error {
	if c.baseClient != nil {
		return c.baseClient.Close()
	}
	return nil
}

// ExtractFields sends the stored document to the model matching kind and
// returns the JSON text of its answer.
func (c *VertexClient) ExtractFields(ctx context.Context, kind models.DocumentKind, gcsURI, mimeType string) ([]byte, error) {
	var (
		model  *genai.GenerativeModel
		prompt string
	)
	switch kind {
	case models.KindServiceRecord:
		model, prompt = c.ServiceRecordModel, ServiceRecordUserPrompt
	case models.KindReceipt:
		model, prompt = c.ReceiptModel, ReceiptUserPrompt
	default:
		return nil, fmt.Errorf("no extraction model for document kind %q", kind)
	}

	filePart := genai.FileData{MIMEType: mimeType, FileURI: gcsURI}
	resp, err := model.GenerateContent(ctx, filePart, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content from gemini: %w", err)
	}
	text := responseText(resp)
	if text == "" {
		return nil, fmt.Errorf("gemini returned no content for %s", gcsURI)
	}
	return []byte(text), nil
}

// responseText concatenates the text parts of the first candidate and strips
// any code fence the model wrapped around it.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	return StripCodeFence(b.String())
}

// StripCodeFence removes a surrounding ``` or ```json fence.
func StripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
