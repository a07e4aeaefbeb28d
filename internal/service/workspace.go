package service

import (
	"sync"

	"github.com/lexhaven/lexai/internal/chat"
	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/repository"
	"go.uber.org/zap"
)

// Workspace is the per-owner session state: the owner's repositories and
// chat session. Repositories are constructed and loaded per owner, so
// a workspace can never see another owner's data.
type Workspace struct {
	Cases    *repository.CaseRepository
	Requests *repository.RequestRepository
	Chat     *chat.Session
}

// WorkspaceManager hands out workspaces by owner id, creating and
// loading them on first use.
type WorkspaceManager struct {
	db        *repository.DB
	ids       repository.IDGenerator
	composer  *composer.Composer
	generator chat.Generator
	logger    *zap.Logger

	mu         sync.Mutex
	workspaces map[string]*Workspace
}

// NewWorkspaceManager creates an empty workspace manager.
func NewWorkspaceManager(
	db *repository.DB,
	ids repository.IDGenerator,
	comp *composer.Composer,
	gen chat.Generator,
	logger *zap.Logger,
) *WorkspaceManager {
	return &WorkspaceManager{
		db:         db,
		ids:        ids,
		composer:   comp,
		generator:  gen,
		logger:     logger,
		workspaces: make(map[string]*Workspace),
	}
}

// For returns the workspace for ownerID, loading its stored state on
// first access.
func (m *WorkspaceManager) For(ownerID string) (*Workspace, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if ws, ok := m.workspaces[ownerID]; ok {
		return ws, nil
	}

	cases := repository.NewCaseRepository(m.db, m.ids, m.logger)
	if err := cases.LoadForOwner(ownerID); err != nil {
		return nil, err
	}
	requests := repository.NewRequestRepository(m.db, m.ids, m.logger)
	if err := requests.LoadForOwner(ownerID); err != nil {
		return nil, err
	}

	ws := &Workspace{
		Cases:    cases,
		Requests: requests,
		Chat:     chat.NewSession(m.composer, m.generator, cases.All, m.logger),
	}
	m.workspaces[ownerID] = ws
	return ws, nil
}
