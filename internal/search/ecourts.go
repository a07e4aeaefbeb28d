package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ECourtsClient fetches live district-court case status by CNR.
type ECourtsClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewECourtsClient creates a client targeting the given API base URL.
func NewECourtsClient(baseURL string, timeout time.Duration) *ECourtsClient {
	return &ECourtsClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// statusPayload mirrors the upstream district-court response.
type statusPayload struct {
	Error            string `json:"error,omitempty"`
	CaseType         string `json:"case_type"`
	CaseStatus       string `json:"case_status"`
	FirstHearingDate string `json:"first_hearing_date"`
	NextHearingDate  string `json:"next_hearing_date"`
	CourtNo          string `json:"court_no"`
	JudgeName        string `json:"judge_name"`
}

// FetchStatus queries the upstream API for cnr. A response with no case
// data is reported as not found, other failures as transient errors.
func (c *ECourtsClient) FetchStatus(ctx context.Context, cnr string) (statusPayload, error) {
	body, err := json.Marshal(map[string]string{"cnr": cnr})
	if err != nil {
		return statusPayload{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/district-court/case", bytes.NewReader(body))
	if err != nil {
		return statusPayload{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return statusPayload{}, fmt.Errorf("calling ecourts api: %w", err)
	}
	defer resp.Body.Close()

	var payload statusPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return statusPayload{}, fmt.Errorf("decoding ecourts response: %w", err)
	}
	return payload, nil
}

// empty reports whether the upstream returned no usable case record.
func (p statusPayload) empty() bool {
	return p.CaseType == "" && p.CaseStatus == "" && p.JudgeName == "" && p.CourtNo == ""
}

// orNA substitutes a placeholder for absent upstream fields.
func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
