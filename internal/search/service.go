package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/lexhaven/lexai/internal/domain"
	"go.uber.org/zap"
)

// Service fronts the two external research collaborators: keyword
// case-law search (uncached) and case-status lookup (memoized in
// LookupCache for the process lifetime).
type Service struct {
	ecourts *ECourtsClient
	cache   *LookupCache
	logger  *zap.Logger
}

// NewService creates a search service.
func NewService(ecourts *ECourtsClient, cache *LookupCache, logger *zap.Logger) *Service {
	return &Service{ecourts: ecourts, cache: cache, logger: logger}
}

// CaseLaw runs the keyword case-law search. Blank queries are rejected
// before any work happens.
func (s *Service) CaseLaw(query string) ([]domain.CaseLawEntry, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query cannot be empty", domain.ErrInvalidRequest)
	}
	return SearchCaseLaw(query), nil
}

// Status resolves a registry number to its case status, consulting the
// cache before the network. The returned source labels the provenance.
func (s *Service) Status(ctx context.Context, cnr string) (domain.StatusLookupResponse, error) {
	cnr = NormalizeCNR(cnr)
	if len(cnr) != domain.CNRLength {
		return domain.StatusLookupResponse{}, fmt.Errorf(
			"%w: CNR must be exactly %d characters (e.g., MHMC070004752022)",
			domain.ErrInvalidRequest, domain.CNRLength)
	}

	if status, found := s.cache.Get(cnr); found {
		return domain.StatusLookupResponse{Result: status, Source: domain.SourceCache}, nil
	}

	payload, err := s.ecourts.FetchStatus(ctx, cnr)
	if err != nil {
		s.logger.Warn("ecourts lookup failed", zap.String("cnr", cnr), zap.Error(err))
		return domain.StatusLookupResponse{}, fmt.Errorf("court servers are busy, try again in a moment: %w", err)
	}
	if payload.Error != "" || payload.empty() {
		return domain.StatusLookupResponse{}, fmt.Errorf("%w: no case found for this CNR", domain.ErrNotFound)
	}

	status := domain.CaseStatus{
		CaseType:     orNA(payload.CaseType),
		CaseStatus:   orNA(payload.CaseStatus),
		FirstHearing: orNA(payload.FirstHearingDate),
		NextHearing:  orNA(payload.NextHearingDate),
		CourtNumber:  orNA(payload.CourtNo),
		Judge:        orNA(payload.JudgeName),
	}
	s.cache.Put(cnr, status)

	return domain.StatusLookupResponse{Result: status, Source: domain.SourceLive}, nil
}
