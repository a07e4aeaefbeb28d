package api_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lexhaven/lexai/internal/api"
	"github.com/lexhaven/lexai/internal/auth"
	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/domain"
	"github.com/lexhaven/lexai/internal/generation"
	"github.com/lexhaven/lexai/internal/repository"
	"github.com/lexhaven/lexai/internal/retrieval"
	"github.com/lexhaven/lexai/internal/search"
	"github.com/lexhaven/lexai/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newTestRouter wires the full stack against a temp database and a stub
// generation endpoint that always answers with a fixed response.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	genServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": "stub answer"})
	}))
	t.Cleanup(genServer.Close)

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "lexai.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	ids := repository.UUIDGenerator{}

	authService := auth.NewService(repository.NewUserRepository(db, ids), "test-secret", time.Hour)
	generator := generation.New(genServer.URL, "", "test-model", 5*time.Second)
	comp := composer.New(retrieval.New())

	workspaces := service.NewWorkspaceManager(db, ids, comp, generator, logger)
	caseService := service.NewCaseService(workspaces, generator)
	chatService := service.NewChatService(workspaces)
	requestService := service.NewRequestService(workspaces)

	ecourts := search.NewECourtsClient("http://127.0.0.1:0", time.Second)
	searchService := search.NewService(ecourts, search.NewLookupCache(), logger)

	return api.SetupRouter(
		authService, caseService, chatService, requestService, searchService,
		api.RouterConfig{AllowOrigins: []string{"*"}},
	)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func signup(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/auth/signup", "", domain.SignupRequest{
		Email:    email,
		Password: "hunter2hunter2",
		Role:     domain.RoleAssociate,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp domain.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPortalRequiresToken(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/cases", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cases", "not-a-real-token", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCaseLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "associate@lexhaven.test")

	w := doJSON(t, router, http.MethodPost, "/api/cases", token, domain.CreateCaseRequest{
		DocumentName: "judgment.pdf",
		DocumentText: "full judgment text",
		Summary: domain.CaseSummary{
			CaseName:    "Shah v. Mehta",
			FactsOfCase: "A dispute over delivery terms.",
			Conclusion:  "Appeal dismissed.",
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.Case
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	w = doJSON(t, router, http.MethodGet, "/api/cases", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Cases []domain.Case `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	require.Len(t, listing.Cases, 1)
	assert.Equal(t, "Shah v. Mehta", listing.Cases[0].Summary.CaseName)

	w = doJSON(t, router, http.MethodDelete, "/api/cases/"+created.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cases", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Cases)
}

func TestChatActivation(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "chat@lexhaven.test")

	w := doJSON(t, router, http.MethodPost, "/api/cases", token, domain.CreateCaseRequest{
		DocumentName: "order.pdf",
		DocumentText: "order text",
		Summary:      domain.CaseSummary{CaseName: "In re Arbitration Act"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created domain.Case
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doJSON(t, router, http.MethodPost, "/api/chat/activate", token, domain.ActivateRequest{CaseID: created.ID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var transcript domain.TranscriptResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &transcript))
	require.Len(t, transcript.Messages, 1)
	assert.Equal(t, domain.SenderAI, transcript.Messages[0].Sender)
	assert.Contains(t, transcript.Messages[0].Text, "**In re Arbitration Act**")

	// Unknown case ids must not disturb the session.
	w = doJSON(t, router, http.MethodPost, "/api/chat/activate", token, domain.ActivateRequest{CaseID: "case-missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClientRequestBoard(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "board@lexhaven.test")

	w := doJSON(t, router, http.MethodPost, "/api/requests", token, domain.CreateRequestRequest{
		ClientName:     "Acme Traders",
		RequestDetails: "Draft a supply agreement",
		Priority:       domain.PriorityHigh,
		DueDate:        "2026-09-15",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created domain.ClientRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, domain.StatusPending, created.Status)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/requests/%s/status", created.ID), token,
		domain.UpdateStatusRequest{Status: domain.StatusInProgress})
	require.Equal(t, http.StatusOK, w.Code)

	var updated domain.ClientRequest
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, domain.StatusInProgress, updated.Status)

	w = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/requests/%s/status", created.ID), token,
		domain.UpdateStatusRequest{Status: "Archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOwnersAreIsolated(t *testing.T) {
	router := newTestRouter(t)
	alice := signup(t, router, "alice@lexhaven.test")
	bob := signup(t, router, "bob@lexhaven.test")

	w := doJSON(t, router, http.MethodPost, "/api/cases", alice, domain.CreateCaseRequest{
		DocumentName: "private.pdf",
		DocumentText: "text",
		Summary:      domain.CaseSummary{CaseName: "Alice's Case"},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/cases", bob, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Cases []domain.Case `json:"cases"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.Empty(t, listing.Cases)
}

func TestSearchEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := signup(t, router, "research@lexhaven.test")

	w := doJSON(t, router, http.MethodPost, "/api/search/kanoon", token,
		domain.CaseLawSearchRequest{Query: "basic structure"})
	require.Equal(t, http.StatusOK, w.Code)
	var results struct {
		Results []domain.CaseLawEntry `json:"results"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
	require.Len(t, results.Results, 1)
	assert.Contains(t, results.Results[0].CaseName, "Kesavananda")

	// Malformed registry numbers are rejected before any network call.
	w = doJSON(t, router, http.MethodPost, "/api/search/status", token,
		domain.StatusLookupRequest{CNR: "TOOSHORT"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
