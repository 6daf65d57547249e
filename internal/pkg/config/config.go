package config

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/damonto/telegram-monitor/internal/pkg/watch"
	"github.com/spf13/viper"
)

// Target is the chat notifications are sent to, either by ID or by username.
type Target struct {
	ID       int64
	Username string
}

func ParseTarget(raw string) Target {
	id := watch.Normalize(strings.TrimSpace(raw))
	if id.Numeric {
		return Target{ID: id.ID}
	}
	return Target{Username: id.Handle}
}

func (t Target) IsZero() bool {
	return t.ID == 0 && t.Username == ""
}

func (t Target) String() string {
	if t.Username != "" {
		return "@" + t.Username
	}
	return strconv.FormatInt(t.ID, 10)
}

type Config struct {
	BotToken    string
	SessionName string
	Target      Target
	DBPath      string
	StateTTL    time.Duration
	LogLevel    string
	LogFormat   string
	Verbose     bool
}

var (
	ErrBotTokenRequired = errors.New("bot token is required")
	ErrTargetRequired   = errors.New("target is required")
	ErrDBPathRequired   = errors.New("db path is required")
	ErrInvalidStateTTL  = errors.New("state ttl must not be negative")
)

const (
	DefaultSessionName = "session_monitor"
	DefaultDBPath      = "monitor.db"
)

// SetDefaults registers the defaults of every optional setting.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("session_name", DefaultSessionName)
	v.SetDefault("db_path", DefaultDBPath)
	v.SetDefault("state_ttl", time.Duration(0))
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("verbose", false)
}

func FromViper(v *viper.Viper) *Config {
	return &Config{
		BotToken:    strings.TrimSpace(v.GetString("bot_token")),
		SessionName: strings.TrimSpace(v.GetString("session_name")),
		Target:      ParseTarget(v.GetString("target")),
		DBPath:      strings.TrimSpace(v.GetString("db_path")),
		StateTTL:    v.GetDuration("state_ttl"),
		LogLevel:    v.GetString("log_level"),
		LogFormat:   v.GetString("log_format"),
		Verbose:     v.GetBool("verbose"),
	}
}

func (c *Config) IsValid() error {
	if c.BotToken == "" {
		return ErrBotTokenRequired
	}
	if c.Target.IsZero() {
		return ErrTargetRequired
	}
	if c.DBPath == "" {
		return ErrDBPathRequired
	}
	if c.StateTTL < 0 {
		return ErrInvalidStateTTL
	}
	return nil
}
