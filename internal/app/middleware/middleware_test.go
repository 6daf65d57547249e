package middleware

import (
	"testing"

	"github.com/mymmrac/telego"
)

func TestKind(t *testing.T) {
	tests := []struct {
		update telego.Update
		want   string
	}{
		{telego.Update{Message: &telego.Message{}}, "message"},
		{telego.Update{ChannelPost: &telego.Message{}}, "channel_post"},
		{telego.Update{EditedMessage: &telego.Message{}}, "edited_message"},
		{telego.Update{CallbackQuery: &telego.CallbackQuery{}}, "callback_query"},
		{telego.Update{}, "other"},
	}
	for _, tt := range tests {
		if got := Kind(tt.update); got != tt.want {
			t.Errorf("Kind = %q, want %q", got, tt.want)
		}
	}
}
