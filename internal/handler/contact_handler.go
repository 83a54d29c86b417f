package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/service"
)

const maxMessageLength = 5000

// ContactHandler handles contact form submissions and the admin inquiry views.
type ContactHandler struct {
	contactService service.ContactService
	metrics        *Metrics
}

// NewContactHandler creates a ContactHandler. metrics may be nil.
func NewContactHandler(contactService service.ContactService, metrics *Metrics) *ContactHandler {
	return &ContactHandler{contactService: contactService, metrics: metrics}
}

// contactRequest is the JSON body for POST /api/contacts/.
type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Submit handles POST /api/contacts/.
// name, email and message are required; the stored contact is returned.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message is too long")
		return
	}

	c := &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := h.contactService.Submit(r.Context(), c); err != nil {
		writeServiceError(w, r, err, "Contact")
		return
	}

	h.metrics.RecordSubmission("contact")
	writeJSON(w, http.StatusOK, c)
}

// AdminList handles GET /api/admin/contacts.
// Query params: status (all/new/read/replied), limit, offset.
func (h *ContactHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.contactService.List)
}

// ChatbotQuotes handles GET /api/admin/chatbot-quotes.
func (h *ContactHandler) ChatbotQuotes(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.contactService.ListChatbotQuotes)
}

type contactLister func(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)

func (h *ContactHandler) list(w http.ResponseWriter, r *http.Request, fetch contactLister) {
	limit, offset := pageParams(r, 100, 500)
	opts := model.ContactListOptions{
		Status: strings.TrimSpace(r.URL.Query().Get("status")),
		Limit:  limit,
		Offset: offset,
	}
	if opts.Status != "" && opts.Status != "all" && !model.ValidContactStatus(opts.Status) {
		writeError(w, http.StatusBadRequest, "Invalid status filter")
		return
	}

	contacts, err := fetch(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "Contact")
		return
	}
	// Return [] not null for empty lists
	if contacts == nil {
		contacts = []*model.Contact{}
	}
	writeJSON(w, http.StatusOK, contacts)
}

// UpdateStatus handles PUT /api/admin/contacts/{id}/status.
// Chatbot quotes share this endpoint.
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	status := strings.TrimSpace(req.Status)
	if err := h.contactService.UpdateStatus(r.Context(), id, status); err != nil {
		writeServiceError(w, r, err, "Contact")
		return
	}
	writeJSON(w, http.StatusOK, statusResponse{OK: true, Status: status})
}
