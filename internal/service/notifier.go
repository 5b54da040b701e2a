package service

import (
	"context"
	"errors"

	"wallet-engine/internal/core/domain"
	"wallet-engine/internal/core/ports"

	"github.com/rs/zerolog"
)

// LogNotifier writes notifications to the structured log.
type LogNotifier struct {
	log zerolog.Logger
}

// NewLogNotifier creates a notifier backed by log.
func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log.With().Str("component", "notifier").Logger()}
}

// Notify implements ports.Notifier.
func (n *LogNotifier) Notify(_ context.Context, note domain.Notification) error {
	ev := n.log.Info()
	if !note.Success {
		ev = n.log.Warn().Str("code", note.Code)
	}
	ev.Str("account_id", note.AccountID).
		Str("operation", note.Operation).
		Str("reference", note.Reference).
		Bool("success", note.Success).
		Msg(note.Message)
	return nil
}

// MultiNotifier fans a notification out to several notifiers.
type MultiNotifier []ports.Notifier

// Notify delivers to every notifier and joins their errors.
func (m MultiNotifier) Notify(ctx context.Context, note domain.Notification) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, note); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
