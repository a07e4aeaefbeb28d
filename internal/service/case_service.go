package service

import (
	"context"

	"github.com/lexhaven/lexai/internal/domain"
)

// Summarizer produces a structured CaseSummary from raw document text.
type Summarizer interface {
	Summarize(ctx context.Context, documentText string, summaryType domain.SummaryType) (domain.CaseSummary, error)
}

// CaseService handles the saved-case operations of one owner at a time.
type CaseService struct {
	workspaces *WorkspaceManager
	summarizer Summarizer
}

// NewCaseService creates a case service.
func NewCaseService(workspaces *WorkspaceManager, summarizer Summarizer) *CaseService {
	return &CaseService{workspaces: workspaces, summarizer: summarizer}
}

// List returns the owner's cases newest-first.
func (s *CaseService) List(ownerID string) ([]domain.Case, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return nil, err
	}
	return ws.Cases.All(), nil
}

// Create saves an already-summarized document as a new case.
func (s *CaseService) Create(ownerID string, req *domain.CreateCaseRequest) (domain.Case, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.Case{}, err
	}
	return ws.Cases.Add(req.DocumentName, req.DocumentText, req.Summary)
}

// Summarize asks the generation service for a structured summary of the
// given document text. Nothing is persisted; the caller decides whether
// to save the result as a case.
func (s *CaseService) Summarize(ctx context.Context, req *domain.SummarizeRequest) (domain.CaseSummary, error) {
	summaryType := req.SummaryType
	if summaryType == "" {
		summaryType = domain.SummaryConcise
	}
	if !summaryType.Valid() {
		return domain.CaseSummary{}, domain.ErrInvalidRequest
	}
	return s.summarizer.Summarize(ctx, req.DocumentText, summaryType)
}

// Delete removes the case with the given id; unknown ids are a no-op.
func (s *CaseService) Delete(ownerID, caseID string) error {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return err
	}
	return ws.Cases.Delete(caseID)
}
