package repository

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/lexhaven/lexai/internal/domain"
	"go.uber.org/zap"
)

const requestNamespace = "lex-ai-requests"

// RequestRepository holds the client requests of one owner at a time,
// with the same load/discard and persist-on-mutation discipline as the
// case repository.
type RequestRepository struct {
	mu     sync.Mutex
	db     *DB
	ids    IDGenerator
	logger *zap.Logger

	ownerID  string
	requests []domain.ClientRequest
}

// NewRequestRepository creates a request repository with no active owner.
func NewRequestRepository(db *DB, ids IDGenerator, logger *zap.Logger) *RequestRepository {
	return &RequestRepository{db: db, ids: ids, logger: logger}
}

func requestKey(ownerID string) string {
	return requestNamespace + "-" + ownerID
}

// LoadForOwner replaces the in-memory set with the stored set for ownerID.
func (r *RequestRepository) LoadForOwner(ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ownerID = ownerID
	r.requests = nil

	payload, found, err := r.db.Get(requestKey(ownerID))
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	var requests []domain.ClientRequest
	if err := json.Unmarshal([]byte(payload), &requests); err != nil {
		r.logger.Warn("discarding unparseable request payload",
			zap.String("owner_id", ownerID),
			zap.Error(err),
		)
		return nil
	}
	r.requests = requests
	return nil
}

// Add creates a new client request in Pending status and prepends it.
func (r *RequestRepository) Add(clientName, details, priority, dueDate string) (domain.ClientRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ownerID == "" {
		return domain.ClientRequest{}, domain.ErrNoOwner
	}

	req := domain.ClientRequest{
		ID:             r.ids.NewID("req"),
		OwnerID:        r.ownerID,
		ClientName:     clientName,
		RequestDetails: details,
		Status:         domain.StatusPending,
		Priority:       priority,
		DueDate:        dueDate,
		CreatedAt:      time.Now(),
	}

	r.requests = append([]domain.ClientRequest{req}, r.requests...)
	if err := r.persist(); err != nil {
		return domain.ClientRequest{}, err
	}
	return req, nil
}

// Update replaces the stored request with the same id.
func (r *RequestRepository) Update(updated domain.ClientRequest) (domain.ClientRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.ID == updated.ID {
			// Identity and provenance are immutable.
			updated.OwnerID = req.OwnerID
			updated.CreatedAt = req.CreatedAt
			r.requests[i] = updated
			if err := r.persist(); err != nil {
				return domain.ClientRequest{}, err
			}
			return updated, nil
		}
	}
	return domain.ClientRequest{}, domain.ErrNotFound
}

// UpdateStatus moves the request with the given id to a new status.
func (r *RequestRepository) UpdateStatus(requestID, status string) (domain.ClientRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, req := range r.requests {
		if req.ID == requestID {
			r.requests[i].Status = status
			if err := r.persist(); err != nil {
				return domain.ClientRequest{}, err
			}
			return r.requests[i], nil
		}
	}
	return domain.ClientRequest{}, domain.ErrNotFound
}

// Delete removes the request with the given id if present; unknown ids
// are a no-op.
func (r *RequestRepository) Delete(requestID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.ownerID == "" {
		return domain.ErrNoOwner
	}

	kept := r.requests[:0]
	removed := false
	for _, req := range r.requests {
		if req.ID == requestID {
			removed = true
			continue
		}
		kept = append(kept, req)
	}
	r.requests = kept

	if !removed {
		return nil
	}
	return r.persist()
}

// All returns the owner's requests newest-first.
func (r *RequestRepository) All() []domain.ClientRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.ClientRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

func (r *RequestRepository) persist() error {
	payload, err := json.Marshal(r.requests)
	if err != nil {
		return err
	}
	return r.db.Put(requestKey(r.ownerID), string(payload))
}
