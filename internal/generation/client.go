package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/domain"
)

const summarySystemInstruction = "You are an expert legal assistant AI. Your task is to extract key information from the provided text " +
	"and structure it into a JSON format. You must return ONLY a valid JSON object that strictly adheres to the schema provided. " +
	"Do not include markdown, comments, or any text outside the JSON object. " +
	"Fill every field of the schema with accurate and detailed information extracted from the text."

// summaryPromptDetails selects the register of the generated summary.
var summaryPromptDetails = map[domain.SummaryType]string{
	domain.SummaryConcise:   "a brief, high-level summary suitable for a quick overview.",
	domain.SummaryDetailed:  "a comprehensive, in-depth summary covering all aspects of the case.",
	domain.SummaryExecutive: "a summary focused on the business implications and key outcomes for stakeholders.",
	domain.SummaryDigest:    "a condensed digest summary suitable for publication in a law journal, focusing on the core legal reasoning and outcome.",
}

// Client communicates with the external generation service over HTTP.
// The service is an opaque collaborator: failures come back as errors
// and the caller decides how to render them.
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

// New creates a Client targeting the given generation service base URL.
func New(baseURL, apiKey, model string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// generateRequest is the wire contract of the generation endpoint.
type generateRequest struct {
	Model             string `json:"model,omitempty"`
	SystemInstruction string `json:"systemInstruction,omitempty"`
	PrimaryContext    string `json:"primaryContext"`
	Question          string `json:"question"`
	RetrievedContext  string `json:"retrievedContext,omitempty"`
}

// generateResponse is the success payload; errorResponse the non-2xx one.
type generateResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Generate sends the assembled prompt and returns the model's answer.
func (c *Client) Generate(ctx context.Context, prompt composer.Prompt) (string, error) {
	resp, err := c.post(ctx, "/generate", generateRequest{
		Model:             c.model,
		SystemInstruction: prompt.SystemInstruction,
		PrimaryContext:    prompt.PrimaryContext,
		Question:          prompt.Question,
		RetrievedContext:  prompt.RetrievedContext,
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.Response), nil
}

// Summarize asks the model for a structured summary of documentText.
// An unparseable reply is a boundary error, not a panic: the model may
// fail to honor the schema.
func (c *Client) Summarize(ctx context.Context, documentText string, summaryType domain.SummaryType) (domain.CaseSummary, error) {
	detail, ok := summaryPromptDetails[summaryType]
	if !ok {
		detail = summaryPromptDetails[domain.SummaryConcise]
	}
	question := fmt.Sprintf("Based on the following legal document text, please provide a structured, %s", detail)

	resp, err := c.post(ctx, "/generate", generateRequest{
		Model:             c.model,
		SystemInstruction: summarySystemInstruction,
		PrimaryContext:    documentText,
		Question:          question,
	})
	if err != nil {
		return domain.CaseSummary{}, err
	}

	var summary domain.CaseSummary
	if err := json.Unmarshal([]byte(resp.Response), &summary); err != nil {
		return domain.CaseSummary{}, fmt.Errorf("model returned unparseable summary: %w", err)
	}
	return summary, nil
}

func (c *Client) post(ctx context.Context, path string, body generateRequest) (*generateResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("calling generation service: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("generation service: %s", errResp.Error)
		}
		return nil, fmt.Errorf("generation service: unexpected status %d", httpResp.StatusCode)
	}

	var resp generateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}
