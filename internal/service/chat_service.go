package service

import (
	"github.com/lexhaven/lexai/internal/domain"
)

// ChatService exposes the per-owner chat session over the workspace
// manager: one active case, one transcript, one in-flight request.
type ChatService struct {
	workspaces *WorkspaceManager
}

// NewChatService creates a chat service.
func NewChatService(workspaces *WorkspaceManager) *ChatService {
	return &ChatService{workspaces: workspaces}
}

// Activate puts the given case in focus and returns the reset
// transcript, seeded with the greeting.
func (s *ChatService) Activate(ownerID, caseID string) (domain.TranscriptResponse, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.TranscriptResponse{}, err
	}

	c, found := ws.Cases.Get(caseID)
	if !found {
		return domain.TranscriptResponse{}, domain.ErrNotFound
	}

	ws.Chat.ActivateCase(c)
	return s.transcript(ws), nil
}

// Ask submits a question about the active case. The second return value
// reports whether the question was accepted; a rejected ask (blank
// question, no active case, request already in flight) changes nothing.
func (s *ChatService) Ask(ownerID, question string) (domain.TranscriptResponse, bool, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.TranscriptResponse{}, false, err
	}

	accepted := ws.Chat.Ask(question)
	return s.transcript(ws), accepted, nil
}

// Transcript returns the current transcript of the owner's session.
func (s *ChatService) Transcript(ownerID string) (domain.TranscriptResponse, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.TranscriptResponse{}, err
	}
	return s.transcript(ws), nil
}

func (s *ChatService) transcript(ws *Workspace) domain.TranscriptResponse {
	return domain.TranscriptResponse{
		CaseID:   ws.Chat.ActiveCaseID(),
		Messages: ws.Chat.Transcript(),
	}
}
