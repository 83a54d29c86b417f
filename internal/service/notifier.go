package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/swiftmove/backend/pkg/notify"
)

const notifyTimeout = 10 * time.Second

// alert sends text in the background. Delivery failures are logged only;
// the caller's request has already succeeded.
func alert(n notify.Notifier, text string) {
	if n == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := n.Notify(ctx, text); err != nil {
			slog.Warn("notification failed", "error", err)
		}
	}()
}
