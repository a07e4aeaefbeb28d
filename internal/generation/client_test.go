package generation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		require.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(generateResponse{Response: "  the answer \n"})
	}))
	defer srv.Close()

	c := New(srv.URL, "secret", "test-model", 5*time.Second)
	answer, err := c.Generate(context.Background(), composer.Prompt{
		SystemInstruction: "sys",
		PrimaryContext:    "primary",
		RetrievedContext:  "retrieved",
		Question:          "q?",
	})
	require.NoError(t, err)
	assert.Equal(t, "the answer", answer)
	assert.Equal(t, "primary", got.PrimaryContext)
	assert.Equal(t, "retrieved", got.RetrievedContext)
	assert.Equal(t, "q?", got.Question)
	assert.Equal(t, "test-model", got.Model)
}

func TestGenerateServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(errorResponse{Error: "model overloaded"})
	}))
	defer srv.Close()

	c := New(srv.URL, "", "m", 5*time.Second)
	_, err := c.Generate(context.Background(), composer.Prompt{Question: "q"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestGenerateUnreachable(t *testing.T) {
	c := New("http://127.0.0.1:1", "", "m", 500*time.Millisecond)
	_, err := c.Generate(context.Background(), composer.Prompt{Question: "q"})
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Contains(t, req.Question, "law journal")
		summary, _ := json.Marshal(domain.CaseSummary{CaseName: "A vs B", Conclusion: "done"})
		json.NewEncoder(w).Encode(generateResponse{Response: string(summary)})
	}))
	defer srv.Close()

	c := New(srv.URL, "", "m", 5*time.Second)
	summary, err := c.Summarize(context.Background(), "document text", domain.SummaryDigest)
	require.NoError(t, err)
	assert.Equal(t, "A vs B", summary.CaseName)
}

func TestSummarizeUnparseableReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{Response: "sorry, I cannot do that"})
	}))
	defer srv.Close()

	c := New(srv.URL, "", "m", 5*time.Second)
	_, err := c.Summarize(context.Background(), "doc", domain.SummaryConcise)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unparseable")
}
