package composer

import (
	"testing"

	"github.com/lexhaven/lexai/internal/domain"
	"github.com/lexhaven/lexai/internal/retrieval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposer() *Composer {
	return New(retrieval.New())
}

func TestAssemblePrimaryContext(t *testing.T) {
	c := testComposer()
	summary := domain.CaseSummary{CaseName: "A vs B", FactsOfCase: "the facts", Conclusion: "the end"}

	p := c.Assemble("full document text", summary, "What happened?", nil, "active")

	assert.Contains(t, p.PrimaryContext, "DOCUMENT TEXT:\nfull document text")
	assert.Contains(t, p.PrimaryContext, "SUMMARY:\n")
	assert.Contains(t, p.PrimaryContext, `"A vs B"`)
	assert.Equal(t, "What happened?", p.Question)
	assert.Empty(t, p.RetrievedContext)
	assert.Contains(t, p.SystemInstruction, "Primary Document Context")
}

func TestAssembleIncludesRetrievedContext(t *testing.T) {
	c := testComposer()
	corpus := []domain.Case{
		{
			ID: "other",
			Summary: domain.CaseSummary{
				CaseName:    "Contract Breach Damages",
				FactsOfCase: "breach of contract with damages claimed",
				Conclusion:  "damages awarded for the breach",
			},
		},
	}

	p := c.Assemble("doc", domain.CaseSummary{CaseName: "Active"}, "What about the breach damages?", corpus, "active")

	require.NotEmpty(t, p.RetrievedContext)
	assert.Contains(t, p.RetrievedContext, "Contract Breach Damages")
}
