package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/lexhaven/lexai/internal/domain"
	"go.uber.org/zap"
)

const caseNamespace = "lex-ai-cases"

// CaseRepository holds the saved cases of one owner at a time. Switching
// owners atomically discards the in-memory set and reloads from storage,
// so a case list can never mix owners. Every mutation re-persists the
// whole owner-scoped set as a single JSON payload.
type CaseRepository struct {
	mu     sync.Mutex
	db     *DB
	ids    IDGenerator
	logger *zap.Logger

	ownerID string
	cases   []domain.Case
}

// NewCaseRepository creates a case repository with no active owner.
func NewCaseRepository(db *DB, ids IDGenerator, logger *zap.Logger) *CaseRepository {
	return &CaseRepository{db: db, ids: ids, logger: logger}
}

func caseKey(ownerID string) string {
	return caseNamespace + "-" + ownerID
}

// LoadForOwner replaces the in-memory set with the stored set for ownerID.
// A missing or unparseable payload yields an empty set; corruption is
// logged and recovered from, never surfaced to the caller.
func (r *CaseRepository) LoadForOwner(ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ownerID = ownerID
	r.cases = nil

	payload, found, err := r.db.Get(caseKey(ownerID))
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var cases []domain.Case
	if err := json.Unmarshal([]byte(payload), &cases); err != nil {
		r.logger.Warn("discarding unparseable case payload",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return nil
	}
	r.cases = cases
	return nil
}

// Add creates a new case for the active owner, prepends it to the set
// and persists. Returns domain.ErrNoOwner when no owner is loaded.
func (r *CaseRepository) Add(documentName, documentText string, summary domain.CaseSummary) (domain.Case, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ownerID == "" {
		return domain.Case{}, domain.ErrNoOwner
	}

	c := domain.Case{
		ID:           r.ids.NewID("case"),
		OwnerID:      r.ownerID,
		DocumentName: documentName,
		DocumentText: documentText,
		Summary:      summary,
		CreatedAt:    time.Now(),
	}

	r.cases = append([]domain.Case{c}, r.cases...)
	if err := r.persist(); err != nil {
		return domain.Case{}, err
	}
	return c, nil
}

// Delete removes the case with the given id if present. Deleting an
// unknown id is a no-op, not an error.
func (r *CaseRepository) Delete(caseID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ownerID == "" {
		return domain.ErrNoOwner
	}

	kept := r.cases[:0]
	removed := false
	for _, c := range r.cases {
		if c.ID == caseID {
			removed = true
			continue
		}
		kept = append(kept, c)
	}
	r.cases = kept

	if !removed {
		return nil
	}
	return r.persist()
}

// All returns the owner's cases newest-first. Insertion order breaks
// ties between equal timestamps, so the slice is returned as stored.
func (r *CaseRepository) All() []domain.Case {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Case, len(r.cases))
	copy(out, r.cases)
	return out
}

// Get returns the case with the given id, if present.
func (r *CaseRepository) Get(caseID string) (domain.Case, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.cases {
		if c.ID == caseID {
			return c, true
		}
	}
	return domain.Case{}, false
}

// OwnerID returns the currently active owner, or empty.
func (r *CaseRepository) OwnerID() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ownerID
}

func (r *CaseRepository) persist() error {
	payload, err := json.Marshal(r.cases)
	if err != nil {
		return err
	}
	return r.db.Put(caseKey(r.ownerID), string(payload))
}
