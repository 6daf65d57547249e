package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

// Logger logs every update passing through the bot handler.
func Logger(logger *slog.Logger) th.Handler {
	return func(ctx *th.Context, update telego.Update) error {
		log := logger.With("request", uuid.NewString(), "update", update.UpdateID, "kind", Kind(update))
		log.Debug("update received")
		started := time.Now()
		err := ctx.Next(update)
		if err != nil {
			log.Error("failed to handle update", "error", err, "elapsed", time.Since(started))
			return err
		}
		log.Debug("update handled", "elapsed", time.Since(started))
		return nil
	}
}

// Kind names the payload an update carries.
func Kind(update telego.Update) string {
	switch {
	case update.Message != nil:
		return "message"
	case update.EditedMessage != nil:
		return "edited_message"
	case update.ChannelPost != nil:
		return "channel_post"
	case update.EditedChannelPost != nil:
		return "edited_channel_post"
	case update.CallbackQuery != nil:
		return "callback_query"
	default:
		return "other"
	}
}
