package composer

import (
	"encoding/json"
	"fmt"

	"github.com/lexhaven/lexai/internal/domain"
	"github.com/lexhaven/lexai/internal/retrieval"
)

// systemInstruction pins the answer priority: primary context first,
// retrieved context second, explicit fallback when neither suffices.
const systemInstruction = "You are a helpful legal AI assistant. Your role is to answer questions based on the provided context. " +
	"First, use the 'Primary Document Context'. If it's insufficient, use the 'Additional Retrieved Context' from other documents " +
	"to provide a more comprehensive answer. If the answer cannot be found in any of the provided text, state that clearly. " +
	"Be concise and direct."

// Prompt is the assembled payload handed to the generation service,
// field for field. It is built fresh per question and never persisted.
type Prompt struct {
	SystemInstruction string
	PrimaryContext    string
	RetrievedContext  string
	Question          string
}

// Composer assembles bounded prompts from the active case, the question
// and cross-case context supplied by the retriever. It performs no I/O;
// the returned Prompt is the whole of its output.
type Composer struct {
	retriever *retrieval.Retriever
}

// New creates a Composer over the given retriever.
func New(retriever *retrieval.Retriever) *Composer {
	return &Composer{retriever: retriever}
}

// Assemble builds the outbound prompt for one question. corpus is the
// owner's full case set; activeCaseID is excluded from retrieval.
func (c *Composer) Assemble(documentText string, summary domain.CaseSummary, question string, corpus []domain.Case, activeCaseID string) Prompt {
	retrieved := c.retriever.Retrieve(corpus, activeCaseID, question)

	summaryJSON, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		// CaseSummary contains no unmarshalable types; keep the prompt
		// usable if that ever changes.
		summaryJSON = []byte("{}")
	}

	return Prompt{
		SystemInstruction: systemInstruction,
		PrimaryContext:    fmt.Sprintf("DOCUMENT TEXT:\n%s\n\nSUMMARY:\n%s", documentText, summaryJSON),
		RetrievedContext:  retrieved,
		Question:          question,
	}
}
