package domain

import "time"

// Client request statuses (kanban columns).
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// Client request priorities.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// ClientRequest is one tracked item of client work, owned by a single user.
type ClientRequest struct {
	ID             string    `json:"id"`
	OwnerID        string    `json:"owner_id"`
	ClientName     string    `json:"client_name"`
	RequestDetails string    `json:"request_details"`
	Status         string    `json:"status"`
	Priority       string    `json:"priority"`
	DueDate        string    `json:"due_date"` // YYYY-MM-DD
	CreatedAt      time.Time `json:"created_at"`
}

// ValidRequestStatus reports whether s is a known kanban status.
func ValidRequestStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusCompleted
}

// ValidRequestPriority reports whether p is a known priority.
func ValidRequestPriority(p string) bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// CreateRequestRequest creates a new client request; status starts Pending.
type CreateRequestRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	RequestDetails string `json:"request_details" binding:"required"`
	Priority       string `json:"priority" binding:"required"`
	DueDate        string `json:"due_date" binding:"required"`
}

// UpdateRequestRequest is a full update of an existing client request.
type UpdateRequestRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	RequestDetails string `json:"request_details" binding:"required"`
	Status         string `json:"status" binding:"required"`
	Priority       string `json:"priority" binding:"required"`
	DueDate        string `json:"due_date" binding:"required"`
}

// UpdateStatusRequest moves a request to another kanban column.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
