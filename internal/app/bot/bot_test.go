package bot

import (
	"errors"
	"testing"

	"github.com/damonto/telegram-monitor/internal/app/menu"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
)

func TestChatID(t *testing.T) {
	if got := ChatID(config.Target{ID: -100}); got.ID != -100 || got.Username != "" {
		t.Errorf("ChatID = %+v", got)
	}
	if got := ChatID(config.Target{Username: "alerts"}); got.Username != "@alerts" {
		t.Errorf("ChatID = %+v", got)
	}
}

func TestInlineKeyboard(t *testing.T) {
	markup := InlineKeyboard(menu.Main())
	if len(markup.InlineKeyboard) != 3 {
		t.Fatalf("rows = %d", len(markup.InlineKeyboard))
	}
	want := [][]string{
		{"menu:add_chat", "menu:rm_chat"},
		{"menu:add_kw", "menu:rm_kw"},
		{"menu:list_chats", "menu:list_kw"},
	}
	for i, row := range markup.InlineKeyboard {
		for j, btn := range row {
			if btn.CallbackData != want[i][j] {
				t.Errorf("button %d/%d = %q, want %q", i, j, btn.CallbackData, want[i][j])
			}
		}
	}

	sel := InlineKeyboard(menu.Selection(menu.ActionRemoveChat, []string{"@foo"}, "No chats"))
	if got := sel.InlineKeyboard[0][0]; got.Text != "@foo" || got.CallbackData != "select:rm_chat:@foo" {
		t.Errorf("button = %+v", got)
	}
}

func TestIsNotModified(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("telego: editMessageText: api: 400 \"Bad Request: message is not modified: specified new message content and reply markup are exactly the same\""), true},
		{errors.New("telego: editMessageText: api: 400 \"Bad Request: message to edit not found\""), false},
	}
	for _, tt := range tests {
		if got := IsNotModified(tt.err); got != tt.want {
			t.Errorf("IsNotModified(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}
