package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/damonto/telegram-monitor/internal/app/state"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
)

// Store is the watch-list.
type Store interface {
	AddChat(ctx context.Context, chat string) error
	RemoveChat(ctx context.Context, chat string) error
	Chats(ctx context.Context) ([]string, error)
	AddKeyword(ctx context.Context, keyword string) error
	RemoveKeyword(ctx context.Context, keyword string) error
	Keywords(ctx context.Context) ([]string, error)
}

// Transport sends the bot's responses.
type Transport interface {
	Reply(ctx context.Context, chatID int64, messageID int, text string) error
	Send(ctx context.Context, to config.Target, text string, keyboard menu.Keyboard) error
	// Edit returns ErrNotModified when the message already has this content.
	Edit(ctx context.Context, chatID int64, messageID int, text string, keyboard menu.Keyboard) error
	Answer(ctx context.Context, queryID string, text string, alert bool) error
}

var ErrNotModified = errors.New("message is not modified")

type Handler struct {
	store     Store
	states    *state.Manager
	transport Transport
	target    config.Target
	logger    *slog.Logger
}

func New(store Store, states *state.Manager, transport Transport, target config.Target, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:     store,
		states:    states,
		transport: transport,
		target:    target,
		logger:    logger,
	}
}

// Dispatch handles one inbound event. Failures to forward a notification are
// logged and never returned.
func (h *Handler) Dispatch(ctx context.Context, ev event.Event) error {
	switch ev := ev.(type) {
	case event.Command:
		h.logger.Info("command received", "command", ev.Name, "arg", ev.Arg, "user", ev.Message.UserID)
		return h.handleCommand(ctx, ev)
	case event.MenuOpen:
		return h.showMenu(ctx, ev.Message.ChatID)
	case event.ButtonPress:
		h.logger.Info("button pressed", "data", ev.Payload.String(), "user", ev.UserID)
		return h.handleButton(ctx, ev)
	case event.Text:
		consumed, err := h.consumeInput(ctx, ev.Message)
		if consumed || err != nil {
			return err
		}
		return h.monitor(ctx, ev.Message)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

func (h *Handler) reply(ctx context.Context, m event.Message, text string) error {
	if err := h.transport.Reply(ctx, m.ChatID, m.ID, text); err != nil {
		return fmt.Errorf("reply to message %d: %w", m.ID, err)
	}
	return nil
}
