package search

import (
	"strings"

	"github.com/lexhaven/lexai/internal/domain"
)

// caseLawCorpus is the seeded case-law index served by the keyword
// search. Every query term must appear in a candidate's combined name,
// summary and issue text for it to match.
var caseLawCorpus = []domain.CaseLawEntry{
	{
		CaseName: "Kesavananda Bharati vs State Of Kerala And Anr",
		Court:    "Supreme Court of India",
		Date:     "24/04/1973",
		Issue:    "Basic Structure Doctrine",
		Summary:  "The Supreme Court held that Parliament cannot alter the basic structure of the Constitution.",
	},
	{
		CaseName: "Maneka Gandhi vs Union Of India",
		Court:    "Supreme Court of India",
		Date:     "25/01/1978",
		Issue:    "Article 21 - Right to Life & Liberty",
		Summary:  "The Court ruled that any law affecting life and liberty must be fair, just, and reasonable.",
	},
}

// SearchCaseLaw returns entries matching every term of the free-text
// query, in corpus order. An empty result slice is a valid answer, not
// an error.
func SearchCaseLaw(query string) []domain.CaseLawEntry {
	terms := strings.Fields(strings.ToLower(query))

	results := make([]domain.CaseLawEntry, 0)
	for _, entry := range caseLawCorpus {
		text := strings.ToLower(entry.CaseName + " " + entry.Summary + " " + entry.Issue)
		matched := true
		for _, term := range terms {
			if !strings.Contains(text, term) {
				matched = false
				break
			}
		}
		if matched {
			results = append(results, entry)
		}
	}
	return results
}
