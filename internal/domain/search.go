package domain

// CNRLength is the fixed length of a case-registry (CNR) number,
// e.g. "MHMC070004752022".
const CNRLength = 16

// Result provenance for case-status lookups.
const (
	SourceCache = "cache"
	SourceLive  = "live"
)

// CaseLawEntry is one entry returned by the keyword case-law search.
type CaseLawEntry struct {
	CaseName string `json:"case_name"`
	Court    string `json:"court"`
	Date     string `json:"date"`
	Issue    string `json:"issue"`
	Summary  string `json:"summary"`
}

// CaseStatus is the structured status record for a registry number.
type CaseStatus struct {
	CaseType     string `json:"case_type"`
	CaseStatus   string `json:"case_status"`
	FirstHearing string `json:"first_hearing"`
	NextHearing  string `json:"next_hearing"`
	CourtNumber  string `json:"court_number"`
	Judge        string `json:"judge"`
}

// CaseLawSearchRequest is a free-text case-law query.
type CaseLawSearchRequest struct {
	Query string `json:"query" binding:"required"`
}

// StatusLookupRequest asks for the live status of a registry number.
type StatusLookupRequest struct {
	CNR string `json:"cnr" binding:"required"`
}

// StatusLookupResponse annotates the status record with its provenance.
type StatusLookupResponse struct {
	Result CaseStatus `json:"result"`
	Source string     `json:"source"` // cache, live
}
