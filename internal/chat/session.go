package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/lexhaven/lexai/internal/composer"
	"github.com/lexhaven/lexai/internal/domain"
	"go.uber.org/zap"
)

// failureReply is what the transcript shows when generation fails; the
// failure never propagates to the caller.
const failureReply = "Sorry, I encountered an error trying to respond. Please try again."

// State of a session; transitions are
// Idle → Greeting → AwaitingInput ⇄ InFlight.
type State int

const (
	StateIdle State = iota
	StateGreeting
	StateAwaitingInput
	StateInFlight
)

// Generator produces an answer for an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt composer.Prompt) (string, error)
}

// CorpusFunc returns the owner's full case set at ask time.
type CorpusFunc func() []domain.Case

// Session holds the transcript for one active case and drives at most
// one in-flight generation request at a time. A second Ask while a
// request is in flight is dropped, not queued. If the active case
// changes while a request is in flight, the eventual reply is discarded
// instead of landing in the wrong transcript.
type Session struct {
	composer  *composer.Composer
	generator Generator
	corpus    CorpusFunc
	logger    *zap.Logger

	mu         sync.Mutex
	state      State
	active     domain.Case
	epoch      uint64
	transcript []domain.ChatMessage
}

// NewSession creates an idle session.
func NewSession(comp *composer.Composer, gen Generator, corpus CorpusFunc, logger *zap.Logger) *Session {
	return &Session{
		composer:  comp,
		generator: gen,
		corpus:    corpus,
		logger:    logger,
	}
}

// ActivateCase makes c the case in focus, replacing the transcript with
// a single greeting. Any in-flight request is orphaned: its reply will
// fail the epoch check and be dropped.
func (s *Session) ActivateCase(c domain.Case) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.active = c
	s.epoch++
	s.state = StateGreeting
	s.transcript = []domain.ChatMessage{{
		Sender: domain.SenderAI,
		Text: fmt.Sprintf("I have loaded the context for **%s**. What would you like to know? "+
			"I can also draw connections from your other saved cases.", c.Summary.CaseName),
	}}
}

// Ask submits a question about the active case. It returns false, doing
// nothing, when the question is blank, no case is active, or a request
// is already in flight. On acceptance the user turn is appended
// immediately and the assistant turn arrives asynchronously.
func (s *Session) Ask(question string) bool {
	question = strings.TrimSpace(question)

	s.mu.Lock()
	if question == "" || s.state == StateIdle || s.state == StateInFlight {
		s.mu.Unlock()
		return false
	}

	s.transcript = append(s.transcript, domain.ChatMessage{Sender: domain.SenderUser, Text: question})
	s.state = StateInFlight

	active := s.active
	epoch := s.epoch
	s.mu.Unlock()

	go s.answer(active, epoch, question)
	return true
}

// answer runs the retrieval + assembly + generation pipeline and lands
// the assistant turn, unless the session has moved on to another case.
func (s *Session) answer(active domain.Case, epoch uint64, question string) {
	prompt := s.composer.Assemble(active.DocumentText, active.Summary, question, s.corpus(), active.ID)

	// No cancellation primitive: an abandoned request runs to the
	// client's own timeout and its reply is discarded below.
	text, err := s.generator.Generate(context.Background(), prompt)
	if err != nil {
		s.logger.Warn("generation failed",
			zap.String("case_id", active.ID),
			zap.Error(err),
		)
		text = failureReply
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.epoch != epoch {
		// The user left this case while the request was in flight.
		s.logger.Debug("dropping stale generation reply", zap.String("case_id", active.ID))
		return
	}

	s.transcript = append(s.transcript, domain.ChatMessage{Sender: domain.SenderAI, Text: text})
	s.state = StateAwaitingInput
}

// Transcript returns a copy of the ordered transcript.
func (s *Session) Transcript() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ChatMessage, len(s.transcript))
	copy(out, s.transcript)
	return out
}

// ActiveCaseID returns the id of the case in focus, or empty when idle.
func (s *Session) ActiveCaseID() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return ""
	}
	return s.active.ID
}

// State returns the session state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}
