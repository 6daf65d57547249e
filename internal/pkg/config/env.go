package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var envKeys = map[string]string{
	"bot_token":    "BOT_TOKEN",
	"session_name": "SESSION_NAME",
	"target":       "TARGET",
	"db_path":      "DB_PATH",
	"state_ttl":    "STATE_TTL",
	"log_level":    "LOG_LEVEL",
	"log_format":   "LOG_FORMAT",
	"verbose":      "VERBOSE",
}

// BindEnv maps every setting to its environment variable.
func BindEnv(v *viper.Viper) error {
	for key, env := range envKeys {
		if err := v.BindEnv(key, env); err != nil {
			return err
		}
	}
	return nil
}

// LoadEnvFile loads variables from a dotenv file into the process
// environment. Variables that are already set win. A missing file is fine.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
