package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix は設定を上書きする環境変数の接頭辞。例: TRACKER_HTTP_ADDR
const EnvPrefix = "TRACKER"

// LoadDotEnv は .env ファイルを環境変数に読み込む。ファイルがなければ何もしない。
// 既に設定されている環境変数は上書きしない。
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// Load は設定を読み込む。path が空ならデフォルト値と環境変数のみを使う。
// APP_ENV は TRACKER_APP_ENV が未設定の場合のフォールバックとして参照する。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if os.Getenv(EnvPrefix+"_APP_ENV") == "" && !v.InConfig("app_env") {
		if appEnv := os.Getenv("APP_ENV"); appEnv != "" {
			cfg.AppEnv = appEnv
		}
	}

	level, err := resolveLogLevel(cfg.AppEnv, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	cfg.Log.Level = level

	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("app_env", d.AppEnv)
	v.SetDefault("seed_file", d.SeedFile)

	v.SetDefault("http.addr", d.HTTP.Addr)
	v.SetDefault("http.read_timeout", d.HTTP.ReadTimeout)
	v.SetDefault("http.write_timeout", d.HTTP.WriteTimeout)
	v.SetDefault("http.shutdown_timeout", d.HTTP.ShutdownTimeout)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size", d.Log.MaxSize)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age", d.Log.MaxAge)
	v.SetDefault("log.compress", d.Log.Compress)
}
