package retrieval

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/lexhaven/lexai/internal/domain"
)

const (
	// minKeywordLen filters stopword-length tokens out of the question.
	minKeywordLen = 4
	// minScore rejects candidates with a single incidental keyword hit;
	// one match is not relevance.
	minScore = 2
	// maxSnippets caps how many other cases get quoted in the prompt.
	maxSnippets = 2
	// snippetLen bounds each quoted narrative, cut mid-word.
	snippetLen = 200

	contextHeader = "ADDITIONAL CONTEXT FROM OTHER RELEVANT CASES:\n"
)

// Candidate is a scored case during retrieval. The score is the number
// of distinct question keywords contained in the case's searchable text.
type Candidate struct {
	Case  domain.Case
	Score int
}

// Retriever ranks a case corpus against a question by keyword overlap
// and extracts bounded snippets from the best matches. It is a cheap,
// deterministic stand-in for a vector-similarity search: no state, no
// I/O, unit-testable without a model.
type Retriever struct{}

// New creates a Retriever.
func New() *Retriever {
	return &Retriever{}
}

// Keywords extracts the deduplicated question keywords: whitespace
// tokens, lowercased, stripped of surrounding punctuation, longer than
// three characters. Without the punctuation strip a trailing "?" would
// defeat substring containment for the last word of every question.
func Keywords(question string) map[string]struct{} {
	keywords := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(question)) {
		tok = strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if len(tok) >= minKeywordLen {
			keywords[tok] = struct{}{}
		}
	}
	return keywords
}

// searchableText is the lowercased concatenation of the three summary
// fields retrieval is allowed to inspect.
func searchableText(c domain.Case) string {
	return strings.ToLower(c.Summary.CaseName + " " + c.Summary.FactsOfCase + " " + c.Summary.Conclusion)
}

// Score returns how many distinct keywords are substring-contained in
// the candidate's searchable text.
func Score(c domain.Case, keywords map[string]struct{}) int {
	text := searchableText(c)
	score := 0
	for kw := range keywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}

// Retrieve scores every case in corpus except excludeID against the
// question and returns a snippet block from the top matches, or the
// empty string when nothing is relevant enough.
func (r *Retriever) Retrieve(corpus []domain.Case, excludeID, question string) string {
	keywords := Keywords(question)
	if len(keywords) == 0 {
		return ""
	}

	var candidates []Candidate
	for _, c := range corpus {
		if c.ID == excludeID {
			continue
		}
		if score := Score(c, keywords); score >= minScore {
			candidates = append(candidates, Candidate{Case: c, Score: score})
		}
	}
	if len(candidates) == 0 {
		return ""
	}

	// Ties keep their corpus order.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > maxSnippets {
		candidates = candidates[:maxSnippets]
	}

	snippets := make([]string, len(candidates))
	for i, cand := range candidates {
		snippets[i] = fmt.Sprintf("From case %q:\n...%s...\n...%s...",
			cand.Case.Summary.CaseName,
			truncate(cand.Case.Summary.FactsOfCase, snippetLen),
			truncate(cand.Case.Summary.Conclusion, snippetLen),
		)
	}

	return contextHeader + strings.Join(snippets, "\n\n")
}

// truncate keeps the first n characters of s without splitting a
// multibyte rune, so snippets stay valid UTF-8.
func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
