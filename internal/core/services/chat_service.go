package services

import (
	"context"
	"log"
	"strings"
	"sync"

	"github.com/comitanigiacomo/movewell-api/internal/core/domain"
)

// ReplyGenerator is the external text-generation collaborator.
type ReplyGenerator interface {
	GenerateReply(ctx context.Context, prompt string) (string, error)
}

// ChatService assembles prompts from each user's bounded transcript and
// relays them to the generator, one request per user at a time.
type ChatService struct {
	generator ReplyGenerator

	mu          sync.Mutex
	transcripts map[string]domain.Transcript
	pending     map[string]bool
}

func NewChatService(generator ReplyGenerator) *ChatService {
	return &ChatService{
		generator:   generator,
		transcripts: make(map[string]domain.Transcript),
		pending:     make(map[string]bool),
	}
}

type ChatStarters struct {
	Greeting  string   `json:"greeting"`
	Questions []string `json:"questions"`
}

func (s *ChatService) Starters() ChatStarters {
	questions := make([]string, len(domain.ConversationStarters))
	copy(questions, domain.ConversationStarters)
	return ChatStarters{Greeting: domain.ChatGreeting, Questions: questions}
}

// Send returns the assistant's reply. Generator failures are not errors: they
// come back as a user-facing message and leave the transcript untouched.
func (s *ChatService) Send(ctx context.Context, userID, message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", domain.ErrEmptyMessage
	}

	s.mu.Lock()
	if s.pending[userID] {
		s.mu.Unlock()
		return "", domain.ErrChatBusy
	}
	s.pending[userID] = true
	prompt := s.transcripts[userID].BuildPrompt(message)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.pending, userID)
		s.mu.Unlock()
	}()

	reply, err := s.generator.GenerateReply(ctx, prompt)
	if err != nil {
		log.Printf("[CHAT] Reply generation failed for user %s: %v", userID, err)
		return domain.ReplyForError(err), nil
	}

	s.mu.Lock()
	s.transcripts[userID] = s.transcripts[userID].Record(message, reply)
	s.mu.Unlock()

	return reply, nil
}

func (s *ChatService) Transcript(userID string) domain.Transcript {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(domain.Transcript, len(s.transcripts[userID]))
	copy(out, s.transcripts[userID])
	return out
}

func (s *ChatService) Reset(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.transcripts, userID)
}
