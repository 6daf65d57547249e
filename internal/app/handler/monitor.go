package handler

import (
	"context"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/pkg/watch"
)

// monitor forwards m to the target when it comes from a watched chat and
// contains a keyword. Only the first matching keyword is reported.
func (h *Handler) monitor(ctx context.Context, m event.Message) error {
	if m.Text == "" {
		return nil
	}
	chats, err := h.store.Chats(ctx)
	if err != nil {
		return err
	}
	if !watch.NewFilter(chats).Matches(m.ChatID, m.ChatHandle) {
		return nil
	}
	keywords, err := h.store.Keywords(ctx)
	if err != nil {
		return err
	}
	keyword, ok := watch.First(m.Text, keywords)
	if !ok {
		return nil
	}

	h.logger.Info("keyword detected", "keyword", keyword, "chat", chatName(m), "message", m.ID)
	if err := h.transport.Send(ctx, h.target, notification(keyword, m), nil); err != nil {
		h.logger.Error("failed to forward notification", "target", h.target.String(), "error", err)
		return nil
	}
	h.logger.Debug("notification forwarded", "target", h.target.String())
	return nil
}
