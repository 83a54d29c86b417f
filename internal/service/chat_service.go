package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/swiftmove/backend/internal/chatbot"
	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
)

const (
	maxChatMessageLen = 2000
	maxSessionIDLen   = 128
	historyLimit      = 200
)

// Responder produces the bot's answer to a user message.
type Responder interface {
	Reply(msg string) string
}

// ChatService defines the business logic for the chat widget.
type ChatService interface {
	// Send stores the user's message and the bot's reply, and returns the reply.
	// An empty sessionID starts a new session.
	Send(ctx context.Context, sessionID, message string) (*model.ChatMessage, error)
	// History returns a session's transcript, oldest first.
	History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error)
}

type chatService struct {
	repo      repository.ChatRepository
	responder Responder
	quotes    ContactService
	now       func() time.Time
}

// NewChatService creates a ChatService. quotes may be nil, in which case
// leads found in messages are not recorded.
func NewChatService(repo repository.ChatRepository, responder Responder, quotes ContactService) ChatService {
	return &chatService{repo: repo, responder: responder, quotes: quotes, now: time.Now}
}

// NewSessionID returns a fresh chat session identifier.
func NewSessionID() string {
	return "session_" + strings.ToLower(ulid.Make().String())
}

func (s *chatService) Send(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
	message = strings.TrimSpace(message)
	if err := required("message", message); err != nil {
		return nil, err
	}
	if len(message) > maxChatMessageLen {
		return nil, &ValidationError{Field: "message", Reason: "is too long"}
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		sessionID = NewSessionID()
	}
	if len(sessionID) > maxSessionIDLen {
		return nil, &ValidationError{Field: "sessionId", Reason: "is too long"}
	}

	now := s.now().UTC()
	in := &model.ChatMessage{
		ID:        ulid.Make().String(),
		SessionID: sessionID,
		Message:   message,
		Sender:    model.SenderUser,
		Timestamp: now,
	}
	if err := s.repo.Save(ctx, in); err != nil {
		return nil, err
	}

	out := &model.ChatMessage{
		ID:        ulid.Make().String(),
		SessionID: sessionID,
		Message:   s.responder.Reply(message),
		Sender:    model.SenderBot,
		Timestamp: now.Add(time.Millisecond),
	}
	if err := s.repo.Save(ctx, out); err != nil {
		return nil, err
	}

	s.captureLead(ctx, sessionID, message)
	return out, nil
}

// captureLead records a chatbot quote when message carries a phone or email.
// Failures are logged; the visitor still gets the reply.
func (s *chatService) captureLead(ctx context.Context, sessionID, message string) {
	if s.quotes == nil {
		return
	}
	lead := chatbot.ExtractLead(message)
	if !lead.Found() {
		return
	}
	quote := &model.Contact{
		Name:      lead.Name,
		Email:     lead.Email,
		Phone:     lead.Phone,
		Message:   message,
		SessionID: sessionID,
	}
	if err := s.quotes.SubmitChatbotQuote(ctx, quote); err != nil {
		slog.Error("failed to record chatbot quote", "session_id", sessionID, "error", err)
	}
}

func (s *chatService) History(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
	sessionID = strings.TrimSpace(sessionID)
	if err := required("sessionId", sessionID); err != nil {
		return nil, err
	}
	return s.repo.ListBySession(ctx, sessionID, historyLimit)
}
