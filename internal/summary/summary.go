package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/abdulrehmanumairferoze-web/Swiss-dash/internal/model"
)

// maxPayloadRecords caps how many Sales rows are sent to the model; larger
// datasets are truncated with a marker entry.
const maxPayloadRecords = 300

// maxReadingTime upper bound the model is asked to honor, enforced locally.
const maxReadingTime = 5

// Result executive summary of the current Sales dataset
type Result struct {
	ID                 string    `json:"id"`
	Timestamp          time.Time `json:"timestamp"`
	ExecutiveSummary   string    `json:"executiveSummary"`
	DetailedAnalysis   string    `json:"detailedAnalysis"`
	Actions            []string  `json:"actions"`
	ReadingTimeMinutes float64   `json:"readingTimeMinutes"`
}

// Service calls a Gemini-style generateContent endpoint. Summarize never
// returns an error: any failure degrades to a static fallback result.
type Service struct {
	Endpoint string
	Model    string
	APIKey   string
	Client   *http.Client
}

// New builds a Service. An empty endpoint falls back to the public API host.
func New(endpoint, modelName, apiKey string, timeout time.Duration) *Service {
	if endpoint == "" {
		endpoint = "https://generativelanguage.googleapis.com"
	}
	if modelName == "" {
		modelName = "gemini-3-flash-preview"
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Service{
		Endpoint: endpoint,
		Model:    modelName,
		APIKey:   apiKey,
		Client:   &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var resultSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"executiveSummary": {"type": "STRING"},
		"detailedAnalysis": {"type": "STRING", "description": "Markdown formatted detailed report"},
		"actions": {"type": "ARRAY", "items": {"type": "STRING"}},
		"readingTimeMinutes": {"type": "NUMBER"}
	},
	"required": ["executiveSummary", "detailedAnalysis", "actions", "readingTimeMinutes"]
}`)

// Summarize produces an executive summary of the Sales records.
func (s *Service) Summarize(ctx context.Context, records []model.Record) Result {
	payload := salesPayload(records)

	res, err := s.call(ctx, payload)
	if err != nil {
		log.Printf("summary service error: %v", err)
		res = fallback()
	}
	res.ID = uuid.NewString()
	res.Timestamp = time.Now()
	if res.ReadingTimeMinutes > maxReadingTime {
		res.ReadingTimeMinutes = maxReadingTime
	}
	return res
}

// salesPayload keeps Sales rows only, truncating oversized datasets.
func salesPayload(records []model.Record) []model.Record {
	var sales []model.Record
	for _, rec := range records {
		if rec.Department == model.DepartmentSales {
			sales = append(sales, rec)
		}
	}
	if len(sales) > maxPayloadRecords {
		sales = append(sales[:maxPayloadRecords], model.Record{
			Metric: "... (data truncated for summary)",
		})
	}
	return sales
}

func (s *Service) call(ctx context.Context, payload []model.Record) (Result, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return Result{}, fmt.Errorf("encode payload: %w", err)
	}

	prompt := fmt.Sprintf(`You are a world-class Executive Auditor.
Analyze the provided pharmaceutical sales data for Swiss Pharmaceuticals.

The user requires a summary that takes NO MORE THAN 5 MINUTES to read (approx 750-1000 words max).

TASK:
1. Provide a high-level "Executive Summary" (2-3 sentences).
2. Provide a "Detailed Analysis" section that breaks down performance by teams (Achievers, Passionate, Concord, Dynamic).
   - Highlight specific products with major shortfalls.
   - Use markdown for bolding and structure.
3. List 5 high-impact "Strategic Action Points".

DATA (Sales Only):
%s`, data)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   resultSchema,
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", s.Endpoint, s.Model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", s.APIKey)

	resp, err := s.Client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("call model: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("model returned status %d", resp.StatusCode)
	}

	var raw generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return Result{}, fmt.Errorf("decode response: %w", err)
	}
	if len(raw.Candidates) == 0 || len(raw.Candidates[0].Content.Parts) == 0 {
		return Result{}, fmt.Errorf("empty model response")
	}

	var res Result
	if err := json.Unmarshal([]byte(raw.Candidates[0].Content.Parts[0].Text), &res); err != nil {
		return Result{}, fmt.Errorf("decode summary: %w", err)
	}
	return res, nil
}

func fallback() Result {
	return Result{
		ExecutiveSummary: "Strategic overview unavailable due to an analysis error.",
		DetailedAnalysis: "The dataset provided was too large or improperly formatted for the current AI context window. Please verify 'Sales' sheet columns.",
		Actions: []string{
			"Check API Key configuration",
			"Ensure 'Target' and 'Actual' columns are numeric",
			"Try uploading a smaller date range",
		},
		ReadingTimeMinutes: 1,
	}
}
