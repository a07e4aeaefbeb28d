package repository

import "github.com/google/uuid"

// IDGenerator produces collision-free identifiers for stored records.
// Injected so repositories never depend on wall-clock time for identity.
type IDGenerator interface {
	NewID(prefix string) string
}

// UUIDGenerator generates "<prefix>-<uuid>" identifiers.
type UUIDGenerator struct{}

// NewID returns a fresh identifier with the given prefix.
func (UUIDGenerator) NewID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}
