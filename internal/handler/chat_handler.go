package handler

import (
	"net/http"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

// ChatHandler serves the chat widget.
type ChatHandler struct {
	chatService service.ChatService
	metrics     *Metrics
}

func NewChatHandler(chatService service.ChatService, metrics *Metrics) *ChatHandler {
	return &ChatHandler{chatService: chatService, metrics: metrics}
}

type chatRequest struct {
	SessionID string `json:"sessionId"`
	Message   string `json:"message"`
}

// chatReply is the bot's answer as the widget reads it.
type chatReply struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"sessionId"`
}

// Send handles POST /api/chat/message.
func (h *ChatHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	reply, err := h.chatService.Send(r.Context(), req.SessionID, req.Message)
	if err != nil {
		writeServiceError(w, r, err, "Session")
		return
	}

	h.metrics.RecordSubmission("chat_message")
	writeJSON(w, http.StatusOK, chatReply{
		ID:        reply.ID,
		Message:   reply.Message,
		Timestamp: reply.Timestamp,
		SessionID: reply.SessionID,
	})
}

// History handles GET /api/admin/chat/sessions/{sessionId}/messages.
func (h *ChatHandler) History(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.chatService.History(r.Context(), r.PathValue("sessionId"))
	if err != nil {
		writeServiceError(w, r, err, "Session")
		return
	}
	if msgs == nil {
		msgs = []*model.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, msgs)
}
