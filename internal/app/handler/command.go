package handler

import (
	"context"
	"fmt"

	"github.com/damonto/telegram-monitor/internal/app/event"
)

func (h *Handler) handleCommand(ctx context.Context, c event.Command) error {
	m := c.Message
	switch c.Name {
	case event.CommandListChats:
		chats, err := h.store.Chats(ctx)
		if err != nil {
			return err
		}
		return h.reply(ctx, m, listChats(chats))
	case event.CommandListKeywords:
		keywords, err := h.store.Keywords(ctx)
		if err != nil {
			return err
		}
		return h.reply(ctx, m, listKeywords(keywords))
	}

	if c.Arg == "" {
		return h.reply(ctx, m, textMissingArgument)
	}
	switch c.Name {
	case event.CommandAddChat:
		if err := h.store.AddChat(ctx, c.Arg); err != nil {
			return err
		}
		return h.reply(ctx, m, fmt.Sprintf(textChatAdded, c.Arg))
	case event.CommandRemoveChat:
		if err := h.store.RemoveChat(ctx, c.Arg); err != nil {
			return err
		}
		return h.reply(ctx, m, fmt.Sprintf(textChatRemoved, c.Arg))
	case event.CommandAddKeyword:
		if err := h.store.AddKeyword(ctx, c.Arg); err != nil {
			return err
		}
		return h.reply(ctx, m, fmt.Sprintf(textKeywordAdded, c.Arg))
	case event.CommandRemoveKeyword:
		if err := h.store.RemoveKeyword(ctx, c.Arg); err != nil {
			return err
		}
		return h.reply(ctx, m, fmt.Sprintf(textKeywordRemoved, c.Arg))
	default:
		return h.reply(ctx, m, textMissingArgument)
	}
}
