package model

import "time"

// Contact statuses.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact sources. Contacts captured by the chat widget are "chatbot quotes".
const (
	ContactSourceForm    = "contact_form"
	ContactSourceChatbot = "chatbot"
)

// Contact is an inquiry submitted through the contact form or captured by the chat widget.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	Source    string    `json:"source"`
	SessionID string    `json:"sessionId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContactListOptions carries filter and pagination parameters for listing contacts.
type ContactListOptions struct {
	// Status filters by status; "" and "all" return every status.
	Status string
	// Source filters by source; "" returns every source.
	Source string
	Limit  int
	Offset int
}

var contactStatuses = map[string]bool{
	ContactStatusNew:     true,
	ContactStatusRead:    true,
	ContactStatusReplied: true,
}

var contactSubjects = map[string]bool{
	"":           true,
	"quote":      true,
	"booking":    true,
	"question":   true,
	"complaint":  true,
	"compliment": true,
	"other":      true,
}

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s string) bool { return contactStatuses[s] }

// ValidContactSubject reports whether s is one of the contact form's subject options.
func ValidContactSubject(s string) bool { return contactSubjects[s] }
