package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/swiftmove/backend/internal/model"
	"github.com/swiftmove/backend/internal/repository"
	"github.com/swiftmove/backend/pkg/notify"
)

type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier notify.Notifier
}

// NewContactService creates a ContactService backed by the given repository.
// notifier may be nil.
func NewContactService(repo repository.ContactRepository, notifier notify.Notifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit trims the input, checks required fields and the subject option, then
// stores the inquiry with status "new" and source "contact_form".
func (s *contactServiceImpl) Submit(ctx context.Context, c *model.Contact) error {
	trimContact(c)
	for _, err := range []error{
		required("name", c.Name),
		required("email", c.Email),
		required("message", c.Message),
	} {
		if err != nil {
			return err
		}
	}
	if !model.ValidContactSubject(c.Subject) {
		return invalid("subject")
	}

	c.Status = model.ContactStatusNew
	c.Source = model.ContactSourceForm
	c.SessionID = ""
	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}

	subject := c.Subject
	if subject == "" {
		subject = "general"
	}
	alert(s.notifier, fmt.Sprintf("New contact (%s) from %s <%s>", subject, c.Name, c.Email))
	return nil
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	opts.Source = model.ContactSourceForm
	return s.repo.List(ctx, opts)
}

func (s *contactServiceImpl) UpdateStatus(ctx context.Context, id, status string) error {
	if !model.ValidContactStatus(status) {
		return ErrInvalidStatus
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// SubmitChatbotQuote stores a chat lead. A lead needs a phone or an email;
// the name defaults to "Chat visitor". A lead already recorded for the same
// session with the same phone or email is not stored again: c is filled from
// the existing quote and no alert is sent.
func (s *contactServiceImpl) SubmitChatbotQuote(ctx context.Context, c *model.Contact) error {
	trimContact(c)
	if c.Phone == "" && c.Email == "" {
		return required("phone or email", "")
	}
	if c.Name == "" {
		c.Name = "Chat visitor"
	}
	if c.SessionID != "" {
		existing, err := s.repo.ListBySession(ctx, c.SessionID)
		if err != nil {
			return err
		}
		for _, q := range existing {
			if sameLead(q, c) {
				*c = *q
				return nil
			}
		}
	}
	c.Subject = "quote"
	c.Status = model.ContactStatusNew
	c.Source = model.ContactSourceChatbot
	if err := s.repo.Save(ctx, c); err != nil {
		return err
	}

	reach := c.Phone
	if reach == "" {
		reach = c.Email
	}
	alert(s.notifier, fmt.Sprintf("New chatbot quote request from %s (%s)", c.Name, reach))
	return nil
}

func (s *contactServiceImpl) ListChatbotQuotes(ctx context.Context, opts model.ContactListOptions) ([]*model.Contact, error) {
	opts.Source = model.ContactSourceChatbot
	return s.repo.List(ctx, opts)
}

// sameLead reports whether a and b share a non-empty phone or email.
// Phones compare by digits only.
func sameLead(a, b *model.Contact) bool {
	if p := digits(a.Phone); p != "" && p == digits(b.Phone) {
		return true
	}
	return a.Email != "" && strings.EqualFold(a.Email, b.Email)
}

func digits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
}

func trimContact(c *model.Contact) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Subject = strings.TrimSpace(c.Subject)
	c.Message = strings.TrimSpace(c.Message)
}
