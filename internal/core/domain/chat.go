package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyMessage = errors.New("message cannot be empty")
	ErrChatBusy     = errors.New("a reply is already pending for this session")
)

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"

	MaxTranscriptEntries = 10
	ContextEntries       = 4
)

const SystemPrompt = `You are MoveWell's AI assistant, a helpful digital coach specializing in posture, ergonomics,
and physical wellness. Provide advice about exercises, posture improvement, ergonomics, and general physical wellness.
Keep responses friendly, helpful, and focused on evidence-based information. If asked about topics outside your scope
(like medical diagnoses, treatment plans, or non-wellness topics), politely redirect the conversation to posture
and exercise topics you can assist with.`

const (
	ReplyAPIKeyError      = "API key error. Please check your Gemini API configuration."
	ReplyQuotaExceeded    = "API quota exceeded. Please try again later."
	ReplyModelUnavailable = "The requested AI model is currently unavailable. Please try again later."
	ReplyGenericFailure   = "I'm having trouble connecting right now. Please check your console for more details and try again."
)

const ChatGreeting = "Hi there! I'm your MoveWell AI assistant. How can I help you with your posture and ergonomics today?"

var ConversationStarters = []string{
	"How can I improve my posture?",
	"What exercises help with lower back pain?",
	"How often should I take breaks when sitting?",
	"What are signs of poor ergonomics?",
}

type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Transcript is the bounded chat history used to build prompt context.
type Transcript []ChatMessage

// BuildPrompt renders the outbound prompt for message. An empty transcript
// means a new conversation, which is prefixed with the system instruction.
func (t Transcript) BuildPrompt(message string) string {
	if len(t) == 0 {
		return fmt.Sprintf("%s\n\nUser question: %s", SystemPrompt, message)
	}

	recent := t
	if len(recent) > ContextEntries {
		recent = recent[len(recent)-ContextEntries:]
	}

	lines := make([]string, 0, len(recent))
	for _, m := range recent {
		lines = append(lines, fmt.Sprintf("%s: %s", m.Role, m.Text))
	}

	return fmt.Sprintf("Previous conversation:\n%s\n\nCurrent question: %s", strings.Join(lines, "\n"), message)
}

// Record appends one exchange and keeps only the most recent entries.
func (t Transcript) Record(question, reply string) Transcript {
	next := append(t, ChatMessage{Role: RoleUser, Text: question}, ChatMessage{Role: RoleAssistant, Text: reply})
	if len(next) > MaxTranscriptEntries {
		next = next[len(next)-MaxTranscriptEntries:]
	}
	out := make(Transcript, len(next))
	copy(out, next)
	return out
}

// ReplyForError turns a generator failure into the message shown to the user.
func ReplyForError(err error) string {
	if err == nil {
		return ReplyGenericFailure
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key"):
		return ReplyAPIKeyError
	case strings.Contains(msg, "quota"):
		return ReplyQuotaExceeded
	case strings.Contains(msg, "model"):
		return ReplyModelUnavailable
	default:
		return ReplyGenericFailure
	}
}
