package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/damonto/telegram-monitor/internal/app"
	"github.com/damonto/telegram-monitor/internal/pkg/config"
	"github.com/damonto/telegram-monitor/internal/pkg/logutil"
	"github.com/damonto/telegram-monitor/internal/pkg/store"
	"github.com/mymmrac/telego"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd(viper.New()).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "telegram-monitor",
		Short:        "Forward keyword matches from watched Telegram chats to a target chat",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), config.FromViper(v))
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file path (optional).")
	cmd.PersistentFlags().String("env-file", ".env", "Dotenv file to load before reading the environment.")
	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("env_file", cmd.PersistentFlags().Lookup("env-file"))

	cmd.Flags().String("token", "", "Telegram bot token.")
	cmd.Flags().String("target", "", "Chat ID or username notifications are sent to.")
	cmd.Flags().String("db", config.DefaultDBPath, "Path of the sqlite database.")
	cmd.Flags().String("session", config.DefaultSessionName, "Name of this bot session, used in logs.")
	cmd.Flags().Duration("state-ttl", 0, "Forget unanswered prompts after this long (0 keeps them).")
	cmd.Flags().String("log-level", "info", "Logging level: debug|info|warn|error.")
	cmd.Flags().String("log-format", "text", "Logging format: text|json.")
	cmd.Flags().Bool("verbose", false, "Show verbose info.")

	_ = v.BindPFlag("bot_token", cmd.Flags().Lookup("token"))
	_ = v.BindPFlag("target", cmd.Flags().Lookup("target"))
	_ = v.BindPFlag("db_path", cmd.Flags().Lookup("db"))
	_ = v.BindPFlag("session_name", cmd.Flags().Lookup("session"))
	_ = v.BindPFlag("state_ttl", cmd.Flags().Lookup("state-ttl"))
	_ = v.BindPFlag("log_level", cmd.Flags().Lookup("log-level"))
	_ = v.BindPFlag("log_format", cmd.Flags().Lookup("log-format"))
	_ = v.BindPFlag("verbose", cmd.Flags().Lookup("verbose"))

	config.SetDefaults(v)
	return cmd
}

func initConfig(v *viper.Viper) error {
	if err := config.LoadEnvFile(v.GetString("env_file")); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	if err := config.BindEnv(v); err != nil {
		return err
	}
	cfgFile := strings.TrimSpace(v.GetString("config"))
	if cfgFile == "" {
		return nil
	}
	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func run(ctx context.Context, cfg *config.Config) error {
	if err := cfg.IsValid(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return err
	}

	level := cfg.LogLevel
	if cfg.Verbose {
		level = "debug"
	}
	logger, err := logutil.New(os.Stderr, level, cfg.LogFormat)
	if err != nil {
		slog.Error("invalid logging configuration", "error", err)
		return err
	}
	logger = logger.With("session", cfg.SessionName)
	slog.SetDefault(logger)

	storeCfg := store.DefaultConfig(cfg.DBPath)
	storeCfg.Verbose = cfg.Verbose
	s, err := store.Open(storeCfg)
	if err != nil {
		slog.Error("failed to open database", "path", cfg.DBPath, "error", err)
		return err
	}
	defer s.Close()

	var opts []telego.BotOption
	if cfg.Verbose {
		opts = append(opts, telego.WithDefaultDebugLogger())
	}
	bot, err := telego.NewBot(cfg.BotToken, opts...)
	if err != nil {
		slog.Error("failed to connect to telegram bot", "error", err)
		return err
	}

	application, err := app.NewApp(ctx, bot, s, cfg, logger)
	if err != nil {
		slog.Error("failed to start long polling", "error", err)
		return err
	}
	go func() {
		<-ctx.Done()
		slog.Info("shutting down")
		application.Shutdown()
	}()
	return application.Start()
}
