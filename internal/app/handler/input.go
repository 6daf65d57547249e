package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/app/state"
)

// consumeInput answers a pending prompt with m. It reports false when the
// sender owes the bot nothing, leaving m to the monitor.
func (h *Handler) consumeInput(ctx context.Context, m event.Message) (bool, error) {
	if m.UserID == 0 {
		return false, nil
	}
	s := h.states.Take(m.UserID)
	if s == state.None {
		return false, nil
	}

	value := strings.TrimSpace(m.Text)
	var text string
	switch {
	case value == "":
		text = textMissingArgument
	case s == state.AwaitingChat:
		if err := h.store.AddChat(ctx, value); err != nil {
			return true, err
		}
		text = fmt.Sprintf(textChatAdded, value)
	case s == state.AwaitingKeyword:
		if err := h.store.AddKeyword(ctx, value); err != nil {
			return true, err
		}
		text = fmt.Sprintf(textKeywordAdded, value)
	default:
		h.logger.Warn("unknown pending state", "state", s, "user", m.UserID)
		return false, nil
	}

	h.logger.Debug("pending input consumed", "state", s, "user", m.UserID)
	if err := h.reply(ctx, m, text); err != nil {
		return true, err
	}
	return true, h.showMenu(ctx, m.ChatID)
}
