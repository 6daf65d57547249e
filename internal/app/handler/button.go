package handler

import (
	"context"
	"errors"
	"fmt"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/damonto/telegram-monitor/internal/app/state"
	"github.com/damonto/telegram-monitor/internal/pkg/util"
)

func (h *Handler) handleButton(ctx context.Context, b event.ButtonPress) error {
	p := b.Payload
	switch p.Kind {
	case menu.KindMenu:
		switch p.Action {
		case menu.ActionAddChat:
			h.states.Enter(b.UserID, state.AwaitingChat)
			return h.edit(ctx, b, textPromptChat, nil)
		case menu.ActionAddKeyword:
			h.states.Enter(b.UserID, state.AwaitingKeyword)
			return h.edit(ctx, b, textPromptKeyword, nil)
		case menu.ActionRemoveChat:
			chats, err := h.store.Chats(ctx)
			if err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.edit(ctx, b, textSelectChat, menu.Selection(menu.ActionRemoveChat, chats, placeholderNoChats))
		case menu.ActionRemoveKeyword:
			keywords, err := h.store.Keywords(ctx)
			if err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.edit(ctx, b, textSelectKeyword, menu.Selection(menu.ActionRemoveKeyword, sorted(keywords), placeholderNoKeywords))
		case menu.ActionListChats:
			chats, err := h.store.Chats(ctx)
			if err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.answer(ctx, b, listChats(chats), true)
		case menu.ActionListKeywords:
			keywords, err := h.store.Keywords(ctx)
			if err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.answer(ctx, b, listKeywords(keywords), true)
		}
	case menu.KindSelect:
		switch p.Action {
		case menu.ActionRemoveChat:
			if err := h.store.RemoveChat(ctx, p.Item); err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.edit(ctx, b, fmt.Sprintf(textRemovedChat, p.Item), nil)
		case menu.ActionRemoveKeyword:
			if err := h.store.RemoveKeyword(ctx, p.Item); err != nil {
				return errors.Join(err, h.answer(ctx, b, "", false))
			}
			return h.edit(ctx, b, fmt.Sprintf(textRemovedKeyword, p.Item), nil)
		}
	}
	return h.answer(ctx, b, "", false)
}

// edit replaces the message the button belongs to and acknowledges the press.
// Editing a message to its current content is not an error.
func (h *Handler) edit(ctx context.Context, b event.ButtonPress, text string, keyboard menu.Keyboard) error {
	var err error
	if b.MessageID != 0 {
		err = h.transport.Edit(ctx, b.ChatID, b.MessageID, text, keyboard)
		if errors.Is(err, ErrNotModified) {
			h.logger.Debug("message not modified", "chat", b.ChatID, "message", b.MessageID)
			err = nil
		}
		if err != nil {
			err = fmt.Errorf("edit message %d: %w", b.MessageID, err)
		}
	}
	return errors.Join(err, h.answer(ctx, b, "", false))
}

func (h *Handler) answer(ctx context.Context, b event.ButtonPress, text string, alert bool) error {
	if err := h.transport.Answer(ctx, b.QueryID, util.Truncate(text, maxAlertLength), alert); err != nil {
		return fmt.Errorf("answer callback query: %w", err)
	}
	return nil
}
