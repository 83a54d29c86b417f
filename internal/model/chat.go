package model

import "time"

// Chat message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatMessage is one line of a chat widget conversation.
type ChatMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Message   string    `json:"message"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
