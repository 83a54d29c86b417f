// Package notify posts short operator alerts (new bookings, contacts, chat
// leads) to an incoming-webhook URL such as a Slack or Discord channel.
// Uses raw HTTP calls (no SDK).
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Notifier delivers a plain-text alert.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Nop discards every alert. Used when no webhook is configured.
type Nop struct{}

func (Nop) Notify(context.Context, string) error { return nil }

// WebhookClient posts {"text": ...} JSON to a webhook URL.
type WebhookClient struct {
	url        string
	httpClient *http.Client
}

// New returns a WebhookClient for url, or Nop when url is empty.
func New(url string) Notifier {
	if url == "" {
		return Nop{}
	}
	return &WebhookClient{
		url:        url,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Notify sends text to the webhook. Any non-2xx response is an error.
func (c *WebhookClient) Notify(ctx context.Context, text string) error {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notify: webhook returned %d: %s", resp.StatusCode, bytes.TrimSpace(snippet))
	}
	return nil
}
