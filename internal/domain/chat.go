package domain

// Message senders.
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one turn of a case chat transcript.
type ChatMessage struct {
	Sender string `json:"sender"` // user, ai
	Text   string `json:"text"`
}

// ActivateRequest sets the active case for the caller's chat session.
type ActivateRequest struct {
	CaseID string `json:"case_id" binding:"required"`
}

// AskRequest submits a question about the active case.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// TranscriptResponse returns the ordered transcript of the active session.
type TranscriptResponse struct {
	CaseID   string        `json:"case_id,omitempty"`
	Messages []ChatMessage `json:"messages"`
}
