package portal

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lexhaven/lexai/internal/api/middleware"
	"github.com/lexhaven/lexai/internal/domain"
	"github.com/lexhaven/lexai/internal/search"
	"github.com/lexhaven/lexai/internal/service"
)

// Handler handles the authenticated portal API: saved cases, the case
// chat, the client-request board and legal research.
type Handler struct {
	caseService    *service.CaseService
	chatService    *service.ChatService
	requestService *service.RequestService
	searchService  *search.Service
}

// NewHandler creates a new portal handler
func NewHandler(
	caseService *service.CaseService,
	chatService *service.ChatService,
	requestService *service.RequestService,
	searchService *search.Service,
) *Handler {
	return &Handler{
		caseService:    caseService,
		chatService:    chatService,
		requestService: requestService,
		searchService:  searchService,
	}
}

// RegisterRoutes registers portal routes
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	cases := r.Group("/cases")
	{
		cases.GET("", h.ListCases)
		cases.POST("", h.CreateCase)
		cases.POST("/summarize", h.Summarize)
		cases.DELETE("/:id", h.DeleteCase)
	}

	chat := r.Group("/chat")
	{
		chat.POST("/activate", h.ActivateChat)
		chat.POST("/ask", h.Ask)
		chat.GET("/messages", h.Messages)
	}

	requests := r.Group("/requests")
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.CreateRequest)
		requests.PUT("/:id", h.UpdateRequest)
		requests.PATCH("/:id/status", h.UpdateRequestStatus)
		requests.DELETE("/:id", h.DeleteRequest)
	}

	searchGroup := r.Group("/search")
	{
		searchGroup.POST("/kanoon", h.SearchCaseLaw)
		searchGroup.POST("/status", h.LookupStatus)
	}
}

// Case handlers

func (h *Handler) ListCases(c *gin.Context) {
	cases, err := h.caseService.List(middleware.OwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases})
}

func (h *Handler) CreateCase(c *gin.Context) {
	var req domain.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.caseService.Create(middleware.OwnerID(c), &req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) Summarize(c *gin.Context) {
	var req domain.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.caseService.Summarize(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate AI summary, the model may have been unable to process the document text"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

func (h *Handler) DeleteCase(c *gin.Context) {
	if err := h.caseService.Delete(middleware.OwnerID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Chat handlers

func (h *Handler) ActivateChat(c *gin.Context) {
	var req domain.ActivateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transcript, err := h.chatService.Activate(middleware.OwnerID(c), req.CaseID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "case not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// Ask accepts a question for the active case. The assistant turn lands
// asynchronously; callers poll Messages. A rejected ask (busy session,
// no active case) returns 202 with the unchanged transcript.
func (h *Handler) Ask(c *gin.Context) {
	var req domain.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	transcript, accepted, err := h.chatService.Ask(middleware.OwnerID(c), req.Question)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !accepted {
		c.JSON(http.StatusAccepted, transcript)
		return
	}
	c.JSON(http.StatusOK, transcript)
}

func (h *Handler) Messages(c *gin.Context) {
	transcript, err := h.chatService.Transcript(middleware.OwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, transcript)
}

// Client request handlers

func (h *Handler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.List(middleware.OwnerID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *Handler) CreateRequest(c *gin.Context) {
	var req domain.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.requestService.Create(middleware.OwnerID(c), &req)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateRequest(c *gin.Context) {
	var req domain.UpdateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.requestService.Update(middleware.OwnerID(c), c.Param("id"), &req)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) UpdateRequestStatus(c *gin.Context) {
	var req domain.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.requestService.UpdateStatus(middleware.OwnerID(c), c.Param("id"), req.Status)
	if err != nil {
		h.writeRequestError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.Delete(middleware.OwnerID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) writeRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "request not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Search handlers

func (h *Handler) SearchCaseLaw(c *gin.Context) {
	var req domain.CaseLawSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	results, err := h.searchService.CaseLaw(req.Query)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": results})
}

func (h *Handler) LookupStatus(c *gin.Context) {
	var req domain.StatusLookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.searchService.Status(c.Request.Context(), req.CNR)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRequest):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no case found for this CNR"})
		default:
			c.JSON(http.StatusBadGateway, gin.H{"error": "court servers are busy, try again in a moment"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
