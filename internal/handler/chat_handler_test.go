package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

func TestChatHandler_Send(t *testing.T) {
	ts := time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)
	var gotSession, gotMessage string
	mock := &mockChatService{
		sendFunc: func(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
			gotSession, gotMessage = sessionID, message
			return &model.ChatMessage{ID: "01J", SessionID: "session_1", Message: "Hi there", Sender: model.SenderBot, Timestamp: ts}, nil
		},
	}
	h := NewChatHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.Send(rec, jsonRequest("POST", "/api/chat/message", `{"sessionId":"session_1","message":"hello"}`))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSession != "session_1" || gotMessage != "hello" {
		t.Errorf("service got session=%q message=%q", gotSession, gotMessage)
	}

	var got map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, key := range []string{"id", "message", "timestamp", "sessionId"} {
		if _, ok := got[key]; !ok {
			t.Errorf("response missing %q: %v", key, got)
		}
	}
	if got["message"] != "Hi there" {
		t.Errorf("unexpected message %v", got["message"])
	}
}

func TestChatHandler_Send_EmptyMessage(t *testing.T) {
	mock := &mockChatService{
		sendFunc: func(ctx context.Context, sessionID, message string) (*model.ChatMessage, error) {
			return nil, &service.ValidationError{Field: "message", Reason: "is required"}
		},
	}
	h := NewChatHandler(mock, nil)

	rec := httptest.NewRecorder()
	h.Send(rec, jsonRequest("POST", "/api/chat/message", `{"message":""}`))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if got := decodeDetail(t, rec); got != "message is required" {
		t.Errorf("unexpected detail %q", got)
	}
}

func TestChatHandler_History(t *testing.T) {
	var gotSession string
	mock := &mockChatService{
		historyFunc: func(ctx context.Context, sessionID string) ([]*model.ChatMessage, error) {
			gotSession = sessionID
			return nil, nil
		},
	}
	h := NewChatHandler(mock, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/admin/chat/sessions/{sessionId}/messages", h.History)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/chat/sessions/session_9/messages", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotSession != "session_9" {
		t.Errorf("expected session_9, got %q", gotSession)
	}
	if rec.Body.String() != "[]\n" {
		t.Errorf("expected [], got %q", rec.Body.String())
	}
}
