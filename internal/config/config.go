// Package config はトラッカーの設定を読み込む。
// 優先順位: 環境変数 (TRACKER_*) > 設定ファイル (YAML) > デフォルト値。
package config

import "time"

// Config はアプリケーション全体の設定。
type Config struct {
	AppEnv   string     `mapstructure:"app_env"`
	HTTP     HTTPConfig `mapstructure:"http"`
	Log      LogConfig  `mapstructure:"log"`
	SeedFile string     `mapstructure:"seed_file"`
}

// HTTPConfig は API サーバーの設定。
type HTTPConfig struct {
	Addr            string        `mapstructure:"addr"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LogConfig はログ出力の設定。File が空ならファイル出力しない。
type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"` // megabytes
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

// IsProduction は本番環境かどうかを返す。
func (c *Config) IsProduction() bool {
	return c.AppEnv == EnvProduction
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// DefaultConfig はデフォルト設定を返す。
func DefaultConfig() *Config {
	return &Config{
		AppEnv: EnvDevelopment,
		HTTP: HTTPConfig{
			Addr:            ":8081",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Log: LogConfig{
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
			Compress:   true,
		},
	}
}
