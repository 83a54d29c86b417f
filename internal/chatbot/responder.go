// Package chatbot implements the site's scripted chat assistant.
package chatbot

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// Fallback is the reply when no rule matches.
const Fallback = "Thanks for your message! I can help with moving, cleaning, pricing, and booking questions. " +
	"For anything else, call us at (501) 575-5189 or leave your phone number and we'll call you back."

// Lead is contact information volunteered in a chat message.
type Lead struct {
	Name  string
	Phone string
	Email string
}

// Found reports whether the message carried a way to reach the customer.
func (l Lead) Found() bool { return l.Phone != "" || l.Email != "" }

type rule struct {
	name     string
	keywords []string
	reply    string
}

// Responder picks a canned reply for a message. It is stateless and safe for concurrent use.
type Responder struct {
	rules []rule
}

// New returns a Responder with the default rule set.
func New() *Responder {
	return &Responder{rules: defaultRules}
}

var (
	phoneRe = regexp.MustCompile(`(?:\+?1[\s.-]?)?\(?\d{3}\)?[\s.-]?\d{3}[\s.-]?\d{4}`)
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	nameRe  = regexp.MustCompile(`(?i)\b(?:my name is|this is|i am|i'm)\s+([A-Za-z][A-Za-z'-]*(?:\s+[A-Za-z][A-Za-z'-]*)?)`)
)

// ExtractLead pulls the first phone number, email address, and self-introduced name out of msg.
func ExtractLead(msg string) Lead {
	var l Lead
	l.Phone = strings.TrimSpace(phoneRe.FindString(msg))
	l.Email = emailRe.FindString(msg)
	if m := nameRe.FindStringSubmatch(msg); m != nil {
		l.Name = strings.TrimSpace(m[1])
	}
	return l
}

// Reply returns the scripted answer for msg. The lead acknowledgement wins
// over keyword rules so a customer who leaves a number always hears back.
func (r *Responder) Reply(msg string) string {
	if ExtractLead(msg).Found() {
		return leadReply
	}
	if rl := r.match(msg); rl != nil {
		return rl.reply
	}
	return Fallback
}

// intent returns the name of the rule that matches msg, "lead", or "fallback".
func (r *Responder) intent(msg string) string {
	if ExtractLead(msg).Found() {
		return "lead"
	}
	if rl := r.match(msg); rl != nil {
		return rl.name
	}
	return "fallback"
}

func (r *Responder) match(msg string) *rule {
	// Caser は状態を持つので呼び出しごとに作る
	text := cases.Fold().String(msg)
	for i := range r.rules {
		for _, kw := range r.rules[i].keywords {
			if containsWord(text, kw) {
				return &r.rules[i]
			}
		}
	}
	return nil
}

// containsWord matches kw at word boundaries so "hi" does not match "this".
func containsWord(text, kw string) bool {
	for i := 0; ; {
		j := strings.Index(text[i:], kw)
		if j < 0 {
			return false
		}
		start := i + j
		end := start + len(kw)
		if (start == 0 || !isWordByte(text[start-1])) && (end == len(text) || !isWordByte(text[end])) {
			return true
		}
		i = start + 1
	}
}

func isWordByte(b byte) bool {
	return b == '_' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
