package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/damonto/telegram-monitor/internal/app/handler"
	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// Transport delivers handler responses through the Bot API.
type Transport struct {
	bot *telego.Bot
}

func NewTransport(bot *telego.Bot) *Transport {
	return &Transport{bot: bot}
}

func (t *Transport) Reply(ctx context.Context, chatID int64, messageID int, text string) error {
	params := tu.Message(tu.ID(chatID), text).
		WithReplyParameters(&telego.ReplyParameters{MessageID: messageID, AllowSendingWithoutReply: true})
	_, err := t.bot.SendMessage(ctx, params)
	return err
}

func (t *Transport) Send(ctx context.Context, to config.Target, text string, keyboard menu.Keyboard) error {
	params := tu.Message(ChatID(to), text)
	if keyboard != nil {
		params = params.WithReplyMarkup(InlineKeyboard(keyboard))
	}
	_, err := t.bot.SendMessage(ctx, params)
	return err
}

func (t *Transport) Edit(ctx context.Context, chatID int64, messageID int, text string, keyboard menu.Keyboard) error {
	params := &telego.EditMessageTextParams{
		ChatID:    tu.ID(chatID),
		MessageID: messageID,
		Text:      text,
	}
	if keyboard != nil {
		params.ReplyMarkup = InlineKeyboard(keyboard)
	}
	_, err := t.bot.EditMessageText(ctx, params)
	if IsNotModified(err) {
		return fmt.Errorf("%w: %w", handler.ErrNotModified, err)
	}
	return err
}

func (t *Transport) Answer(ctx context.Context, queryID string, text string, alert bool) error {
	return t.bot.AnswerCallbackQuery(ctx, &telego.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
		Text:            text,
		ShowAlert:       alert,
	})
}

// IsNotModified reports whether err is Telegram refusing an edit that would
// leave the message unchanged.
func IsNotModified(err error) bool {
	return err != nil && strings.Contains(err.Error(), "message is not modified")
}

func ChatID(to config.Target) telego.ChatID {
	if to.Username != "" {
		return tu.Username("@" + to.Username)
	}
	return tu.ID(to.ID)
}

func InlineKeyboard(keyboard menu.Keyboard) *telego.InlineKeyboardMarkup {
	rows := make([][]telego.InlineKeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]telego.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			buttons = append(buttons, tu.InlineKeyboardButton(btn.Text).WithCallbackData(btn.Payload.String()))
		}
		rows = append(rows, tu.InlineKeyboardRow(buttons...))
	}
	return tu.InlineKeyboard(rows...)
}
