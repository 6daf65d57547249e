package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/damonto/telegram-monitor/internal/app/bot"
	"github.com/damonto/telegram-monitor/internal/app/handler"
	"github.com/damonto/telegram-monitor/internal/app/middleware"
	"github.com/damonto/telegram-monitor/internal/app/router"
	"github.com/damonto/telegram-monitor/internal/app/state"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"
)

type application struct {
	Bot     *telego.Bot
	handler *th.BotHandler
	updates <-chan telego.Update
	ctx     context.Context
	store   handler.Store
	cfg     *config.Config
	logger  *slog.Logger
}

func NewApp(ctx context.Context, b *telego.Bot, store handler.Store, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		Bot:    b,
		ctx:    ctx,
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
	var err error
	app.updates, err = b.UpdatesViaLongPolling(ctx, &telego.GetUpdatesParams{
		Timeout:        30,
		AllowedUpdates: []string{"message", "channel_post", "callback_query"},
	})
	if err != nil {
		return nil, err
	}
	app.handler, err = th.NewBotHandler(b, app.updates)
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (app *application) Start() error {
	app.registerMiddleware()
	app.registerRouter()
	app.logger.Info("bot started and monitoring chats", "target", app.cfg.Target.String())
	return app.handler.Start()
}

func (app *application) registerRouter() {
	states := state.NewManager(state.WithTTL(app.cfg.StateTTL))
	h := handler.New(app.store, states, bot.NewTransport(app.Bot), app.cfg.Target, app.logger)
	r := router.NewRouter(app.Bot, app.handler, h)
	r.Register()
	if err := r.PublishCommands(app.ctx); err != nil {
		app.logger.Warn("failed to publish bot commands", "error", err)
	}
}

func (app *application) registerMiddleware() {
	app.handler.Use(th.PanicRecovery())
	app.handler.Use(middleware.Logger(app.logger))
}

func (app *application) Shutdown() {
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Second*30)
	defer stopCancel()

outer:
	for len(app.updates) > 0 {
		select {
		case <-stopCtx.Done():
			break outer
		case <-time.After(100 * time.Microsecond):
			//
		}
	}
	app.handler.StopWithContext(stopCtx)
}
