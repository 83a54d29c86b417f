package service

import (
	"context"

	"github.com/swiftmove/backend/internal/model"
)

// ContactService defines the business logic for contact form inquiries and chatbot quotes.
type ContactService interface {
	// Submit validates and stores a contact form inquiry. ID and timestamps are
	// populated by the implementation.
	Submit(ctx context.Context, c *model.Contact) error

	// List returns contact form inquiries according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)

	// UpdateStatus changes the status of any contact, chatbot quotes included.
	UpdateStatus(ctx context.Context, id, status string) error

	// SubmitChatbotQuote stores a lead captured by the chat widget.
	SubmitChatbotQuote(ctx context.Context, c *model.Contact) error

	// ListChatbotQuotes returns chatbot-sourced contacts.
	ListChatbotQuotes(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error)
}
