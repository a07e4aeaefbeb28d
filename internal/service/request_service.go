package service

import (
	"fmt"

	"github.com/lexhaven/lexai/internal/domain"
)

// RequestService handles the client-request board of one owner.
type RequestService struct {
	workspaces *WorkspaceManager
}

// NewRequestService creates a request service.
func NewRequestService(workspaces *WorkspaceManager) *RequestService {
	return &RequestService{workspaces: workspaces}
}

// List returns the owner's client requests newest-first.
func (s *RequestService) List(ownerID string) ([]domain.ClientRequest, error) {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return nil, err
	}
	return ws.Requests.All(), nil
}

// Create adds a new client request; status starts Pending.
func (s *RequestService) Create(ownerID string, req *domain.CreateRequestRequest) (domain.ClientRequest, error) {
	if !domain.ValidRequestPriority(req.Priority) {
		return domain.ClientRequest{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidRequest, req.Priority)
	}

	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.ClientRequest{}, err
	}
	return ws.Requests.Add(req.ClientName, req.RequestDetails, req.Priority, req.DueDate)
}

// Update fully replaces an existing request's editable fields.
func (s *RequestService) Update(ownerID, requestID string, req *domain.UpdateRequestRequest) (domain.ClientRequest, error) {
	if !domain.ValidRequestStatus(req.Status) {
		return domain.ClientRequest{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidRequest, req.Status)
	}
	if !domain.ValidRequestPriority(req.Priority) {
		return domain.ClientRequest{}, fmt.Errorf("%w: unknown priority %q", domain.ErrInvalidRequest, req.Priority)
	}

	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.ClientRequest{}, err
	}
	return ws.Requests.Update(domain.ClientRequest{
		ID:             requestID,
		ClientName:     req.ClientName,
		RequestDetails: req.RequestDetails,
		Status:         req.Status,
		Priority:       req.Priority,
		DueDate:        req.DueDate,
	})
}

// UpdateStatus moves a request to another kanban column.
func (s *RequestService) UpdateStatus(ownerID, requestID, status string) (domain.ClientRequest, error) {
	if !domain.ValidRequestStatus(status) {
		return domain.ClientRequest{}, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidRequest, status)
	}

	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return domain.ClientRequest{}, err
	}
	return ws.Requests.UpdateStatus(requestID, status)
}

// Delete removes a request; unknown ids are a no-op.
func (s *RequestService) Delete(ownerID, requestID string) error {
	ws, err := s.workspaces.For(ownerID)
	if err != nil {
		return err
	}
	return ws.Requests.Delete(requestID)
}
