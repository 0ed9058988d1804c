package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string `mapstructure:"PORT"`
	DBPath    string `mapstructure:"DB_PATH"`
	SecretKey string `mapstructure:"SECRET_KEY"`

	OTPTTLSeconds           int `mapstructure:"OTP_TTL_SECONDS"`
	OTPAttemptLimit         int `mapstructure:"OTP_ATTEMPT_LIMIT"`
	OTPAttemptWindowSeconds int `mapstructure:"OTP_ATTEMPT_WINDOW_SECONDS"`

	AccessTokenTTLMinutes int `mapstructure:"ACCESS_TOKEN_TTL_MINUTES"`
	RefreshTokenTTLHours  int `mapstructure:"REFRESH_TOKEN_TTL_HOURS"`

	DefaultPageSize int `mapstructure:"DEFAULT_PAGE_SIZE"`
	MaxPageSize     int `mapstructure:"MAX_PAGE_SIZE"`

	SearchRankThreshold       float64 `mapstructure:"SEARCH_RANK_THRESHOLD"`
	SearchSimilarityThreshold float64 `mapstructure:"SEARCH_SIMILARITY_THRESHOLD"`

	MailAPIKey    string `mapstructure:"MAIL_API_KEY"`
	MailFromEmail string `mapstructure:"MAIL_FROM_EMAIL"`
	MailFromName  string `mapstructure:"MAIL_FROM_NAME"`
}

func Load() (Config, error) {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_PATH", "data/carty.db")
	viper.SetDefault("SECRET_KEY", "change_me_in_production")
	viper.SetDefault("OTP_TTL_SECONDS", 120)
	viper.SetDefault("OTP_ATTEMPT_LIMIT", 5)
	viper.SetDefault("OTP_ATTEMPT_WINDOW_SECONDS", 300)
	viper.SetDefault("ACCESS_TOKEN_TTL_MINUTES", 15)
	viper.SetDefault("REFRESH_TOKEN_TTL_HOURS", 168)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 5)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("SEARCH_RANK_THRESHOLD", 0.3)
	viper.SetDefault("SEARCH_SIMILARITY_THRESHOLD", 0.3)
	viper.SetDefault("MAIL_API_KEY", "")
	viper.SetDefault("MAIL_FROM_EMAIL", "")
	viper.SetDefault("MAIL_FROM_NAME", "Carty")

	viper.AutomaticEnv()

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

func (cfg Config) OTPTTL() time.Duration {
	return time.Duration(cfg.OTPTTLSeconds) * time.Second
}

func (cfg Config) OTPAttemptWindow() time.Duration {
	return time.Duration(cfg.OTPAttemptWindowSeconds) * time.Second
}

func (cfg Config) AccessTokenTTL() time.Duration {
	return time.Duration(cfg.AccessTokenTTLMinutes) * time.Minute
}

func (cfg Config) RefreshTokenTTL() time.Duration {
	return time.Duration(cfg.RefreshTokenTTLHours) * time.Hour
}
