package handler

import (
	"context"
	"fmt"

	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
)

// showMenu sends the main menu as a new message to chatID.
func (h *Handler) showMenu(ctx context.Context, chatID int64) error {
	if err := h.transport.Send(ctx, config.Target{ID: chatID}, textMenu, menu.Main()); err != nil {
		return fmt.Errorf("send menu: %w", err)
	}
	return nil
}
