package search

import (
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/lexhaven/lexai/internal/domain"
)

// LookupCache memoizes case-status lookups for the lifetime of the
// process. Entries never expire: a registry number's status is treated
// as valid until restart, a documented policy rather than an accident.
// Keys are normalized (trim + uppercase) on every read and write so the
// same registry number in different casing hits the same entry.
type LookupCache struct {
	entries *gocache.Cache
}

// NewLookupCache creates an empty cache.
func NewLookupCache() *LookupCache {
	return &LookupCache{
		entries: gocache.New(gocache.NoExpiration, 0),
	}
}

// NormalizeCNR canonicalizes a registry number for storage and lookup.
func NormalizeCNR(cnr string) string {
	return strings.ToUpper(strings.TrimSpace(cnr))
}

// Get returns the cached status for cnr, if present.
func (c *LookupCache) Get(cnr string) (domain.CaseStatus, bool) {
	v, found := c.entries.Get(NormalizeCNR(cnr))
	if !found {
		return domain.CaseStatus{}, false
	}
	return v.(domain.CaseStatus), true
}

// Put stores the status for cnr.
func (c *LookupCache) Put(cnr string, status domain.CaseStatus) {
	c.entries.Set(NormalizeCNR(cnr), status, gocache.NoExpiration)
}
