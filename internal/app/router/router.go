package router

import (
	"context"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, ev event.Event) error
}

type router struct {
	*th.BotHandler
	bot        *telego.Bot
	dispatcher Dispatcher
}

func NewRouter(bot *telego.Bot, handler *th.BotHandler, dispatcher Dispatcher) *router {
	return &router{BotHandler: handler, bot: bot, dispatcher: dispatcher}
}

// Commands is the command list shown by Telegram clients.
var Commands = []telego.BotCommand{
	{Command: event.CommandMenu, Description: "Show the management menu"},
	{Command: event.CommandAddChat, Description: "Watch a chat: /addchat <id or username>"},
	{Command: event.CommandRemoveChat, Description: "Stop watching a chat: /rmchat <id or username>"},
	{Command: event.CommandAddKeyword, Description: "Watch a keyword: /addkw <word>"},
	{Command: event.CommandRemoveKeyword, Description: "Stop watching a keyword: /rmkw <word>"},
	{Command: event.CommandListChats, Description: "List watched chats"},
	{Command: event.CommandListKeywords, Description: "List watched keywords"},
}

// Register routes button presses, messages and channel posts to the
// dispatcher. Every update ends up on exactly one path.
func (r *router) Register() {
	r.HandleCallbackQuery(func(ctx *th.Context, query telego.CallbackQuery) error {
		return r.dispatcher.Dispatch(ctx, ButtonPress(query))
	})
	r.HandleMessage(func(ctx *th.Context, message telego.Message) error {
		return r.dispatcher.Dispatch(ctx, event.Classify(Message(message)))
	})
	r.HandleChannelPost(func(ctx *th.Context, message telego.Message) error {
		return r.dispatcher.Dispatch(ctx, event.Classify(Message(message)))
	})
}

func (r *router) PublishCommands(ctx context.Context) error {
	return r.bot.SetMyCommands(ctx, &telego.SetMyCommandsParams{Commands: Commands})
}

// Message converts a Bot API message. Media messages are represented by
// their caption.
func Message(msg telego.Message) event.Message {
	m := event.Message{
		ID:         msg.MessageID,
		ChatID:     msg.Chat.ID,
		ChatHandle: msg.Chat.Username,
		ChatTitle:  msg.Chat.Title,
		Text:       msg.Text,
	}
	if m.Text == "" {
		m.Text = msg.Caption
	}
	if msg.From != nil {
		m.UserID = msg.From.ID
	}
	return m
}

func ButtonPress(query telego.CallbackQuery) event.ButtonPress {
	b := event.ButtonPress{
		QueryID: query.ID,
		UserID:  query.From.ID,
		Payload: menu.ParsePayload(query.Data),
	}
	if query.Message != nil {
		b.ChatID = query.Message.GetChat().ID
		b.MessageID = query.Message.GetMessageID()
	}
	return b
}
