package domain

import "time"

// Case categories, matching the summary schema the generation service fills.
const (
	CategoryCivil          = "Civil"
	CategoryCriminal       = "Criminal"
	CategoryConstitutional = "Constitutional"
	CategoryCorporate      = "Corporate"
	CategoryOther          = "Other"
)

// Case is one user-saved summarized legal document. Cases are immutable
// after creation except for deletion; there are no in-place summary edits.
type Case struct {
	ID           string      `json:"id"`
	OwnerID      string      `json:"owner_id"`
	DocumentName string      `json:"document_name"`
	DocumentText string      `json:"document_text"`
	Summary      CaseSummary `json:"summary"`
	CreatedAt    time.Time   `json:"created_at"`
}

// TimelineEvent is one dated entry in a case timeline.
type TimelineEvent struct {
	Date  string `json:"date"`
	Event string `json:"event"`
}

// Witness is a witness named in the judgment with a testimony summary.
type Witness struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// CitedPrecedent is a precedent cited in the judgment.
type CitedPrecedent struct {
	Citation string `json:"citation"`
	Summary  string `json:"summary"`
}

// Arguments holds the main contentions of each side.
type Arguments struct {
	Petitioner []string `json:"petitioner"`
	Respondent []string `json:"respondent"`
}

// SentimentAnalysis captures the judgment's overall tone.
type SentimentAnalysis struct {
	OverallTone string  `json:"overall_tone"` // Positive, Negative, Neutral
	Score       float64 `json:"score"`        // -1 to 1
}

// CaseFAQ is one generated question/answer pair about the case.
type CaseFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// CaseSummary is the structured summary produced by the generation service.
// Retrieval only ever inspects CaseName, FactsOfCase and Conclusion; the
// rest is carried opaquely for display and prompt serialization.
type CaseSummary struct {
	CaseName              string            `json:"case_name"`
	Citation              string            `json:"citation"`
	Jurisdiction          string            `json:"jurisdiction"`
	Parties               []string          `json:"parties"`
	FactsOfCase           string            `json:"facts_of_case"`
	LegalIssues           []string          `json:"legal_issues"`
	JudgmentAndReasoning  string            `json:"judgment_and_reasoning"`
	Conclusion            string            `json:"conclusion"`
	CaseCategory          string            `json:"case_category"`
	JudgmentRatio         string            `json:"judgment_ratio"`
	LegalMaxims           []string          `json:"legal_maxims"`
	GroundsForAppeal      []string          `json:"grounds_for_appeal"`
	BiasIndicators        string            `json:"bias_indicators"`
	BailProbability       string            `json:"bail_probability_analysis,omitempty"`
	PrecedentAnalysis     string            `json:"precedent_analysis"`
	OutcomeClassification string            `json:"outcome_classification"`
	LegalWeight           string            `json:"legal_weight"`
	AIConfidenceScore     float64           `json:"ai_confidence_score"`
	TimelineOfEvents      []TimelineEvent   `json:"timeline_of_events"`
	CauseOfAction         string            `json:"cause_of_action"`
	Arguments             Arguments         `json:"arguments"`
	RelevantSections      []string          `json:"suggested_relevant_sections"`
	NextLegalSteps        []string          `json:"next_legal_steps"`
	Witnesses             []Witness         `json:"witnesses,omitempty"`
	CitedPrecedents       []CitedPrecedent  `json:"cited_precedents"`
	RatioDecidendi        string            `json:"ratio_decidendi"`
	ObiterDicta           string            `json:"obiter_dicta"`
	TableOfContents       []string          `json:"table_of_contents,omitempty"`
	Sentiment             SentimentAnalysis `json:"sentiment_analysis"`
	CaseFAQs              []CaseFAQ         `json:"case_faqs"`
}

// SummaryType selects the register of a generated summary.
type SummaryType string

const (
	SummaryConcise   SummaryType = "Concise"
	SummaryDetailed  SummaryType = "Detailed"
	SummaryExecutive SummaryType = "Executive"
	SummaryDigest    SummaryType = "Journal Digest"
)

// Valid reports whether t is one of the supported summary types.
func (t SummaryType) Valid() bool {
	switch t {
	case SummaryConcise, SummaryDetailed, SummaryExecutive, SummaryDigest:
		return true
	}
	return false
}

// CreateCaseRequest is the request to save an already-summarized case.
type CreateCaseRequest struct {
	DocumentName string      `json:"document_name" binding:"required"`
	DocumentText string      `json:"document_text" binding:"required"`
	Summary      CaseSummary `json:"summary" binding:"required"`
}

// SummarizeRequest is the request to generate a structured summary.
type SummarizeRequest struct {
	DocumentText string      `json:"document_text" binding:"required"`
	SummaryType  SummaryType `json:"summary_type"`
}
