package router

import (
	"testing"

	"github.com/damonto/telegram-monitor/internal/app/event"
	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/mymmrac/telego"
)

func TestMessage(t *testing.T) {
	msg := telego.Message{
		MessageID: 10,
		From:      &telego.User{ID: 42},
		Chat:      telego.Chat{ID: -100123, Type: "supergroup", Title: "News", Username: "NewsChannel"},
		Text:      "We Launch today",
	}
	want := event.Message{ID: 10, UserID: 42, ChatID: -100123, ChatHandle: "NewsChannel", ChatTitle: "News", Text: "We Launch today"}
	if got := Message(msg); got != want {
		t.Errorf("Message = %+v, want %+v", got, want)
	}
}

func TestChannelPostWithCaption(t *testing.T) {
	msg := telego.Message{
		MessageID: 3,
		Chat:      telego.Chat{ID: -100555, Type: "channel"},
		Caption:   "launch photo",
	}
	got := Message(msg)
	if got.UserID != 0 || got.Text != "launch photo" || got.ChatHandle != "" {
		t.Errorf("Message = %+v", got)
	}
}

func TestMessageIsClassified(t *testing.T) {
	ev := event.Classify(Message(telego.Message{Chat: telego.Chat{ID: 1}, Text: "/addkw Launch"}))
	c, ok := ev.(event.Command)
	if !ok || c.Name != event.CommandAddKeyword || c.Arg != "Launch" {
		t.Errorf("event = %#v", ev)
	}
}

func TestButtonPressWithoutMessage(t *testing.T) {
	got := ButtonPress(telego.CallbackQuery{ID: "q", From: telego.User{ID: 42}, Data: "menu:add_chat"})
	if got.QueryID != "q" || got.UserID != 42 || got.MessageID != 0 {
		t.Errorf("ButtonPress = %+v", got)
	}
	if got.Payload.Kind != menu.KindMenu || got.Payload.Action != menu.ActionAddChat {
		t.Errorf("payload = %+v", got.Payload)
	}
}

func TestCommandsCoverEveryCommand(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range Commands {
		seen[c.Command] = true
	}
	for _, name := range []string{
		event.CommandAddChat, event.CommandRemoveChat,
		event.CommandAddKeyword, event.CommandRemoveKeyword,
		event.CommandListChats, event.CommandListKeywords,
		event.CommandMenu,
	} {
		if !seen[name] {
			t.Errorf("command %q is not published", name)
		}
	}
}
