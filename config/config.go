package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Collaborators
	Inbox          InboxConfig
	Storage        StorageConfig
	GoogleCalendar GoogleCalendarConfig
	Telegram       TelegramConfig
	Email          EmailConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// InboxConfig points at the exported SMS list (.json, .yaml or .yml).
type InboxConfig struct {
	Path string
}

type StorageConfig struct {
	Path string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string // OAuth desktop token, unused for service accounts
	CalendarID      string
	Timezone        string
}

type TelegramConfig struct {
	BotToken        string
	ChatID          int64
	RateLimitPerMin int
}

// EmailConfig holds SMTP settings. Enabled is derived, not read.
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	ToEmail    string
	Enabled    bool
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/expresssms/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/expresssms/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Inbox.Path = viper.GetString("inbox.path")
	cfg.Storage.Path = viper.GetString("storage.path")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.Timezone = viper.GetString("google_calendar.timezone")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = viper.GetInt64("telegram.chat_id")
	cfg.Telegram.RateLimitPerMin = viper.GetInt("telegram.rate_limit_per_min")
	if tgToken := viper.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.Email.SMTPServer = viper.GetString("email.smtp_server")
	cfg.Email.SMTPPort = viper.GetInt("email.smtp_port")
	cfg.Email.SMTPUser = viper.GetString("email.smtp_user")
	cfg.Email.SMTPPass = viper.GetString("email.smtp_pass")
	cfg.Email.FromEmail = viper.GetString("email.from_email")
	cfg.Email.ToEmail = viper.GetString("email.to_email")
	if smtpPass := viper.GetString("smtp_pass"); smtpPass != "" {
		cfg.Email.SMTPPass = smtpPass
	}
	cfg.Email.Enabled = cfg.Email.SMTPServer != "" && cfg.Email.SMTPUser != "" &&
		cfg.Email.SMTPPass != "" && cfg.Email.FromEmail != "" && cfg.Email.ToEmail != ""

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("inbox.path", "./data/sms.json")
	viper.SetDefault("storage.path", "./data/expresssms.db")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.timezone", "Asia/Shanghai")
	viper.SetDefault("telegram.rate_limit_per_min", 20)
	viper.SetDefault("email.smtp_port", 587)
}

func validate(cfg *Config) error {
	if cfg.Inbox.Path == "" {
		return fmt.Errorf("inbox.path is required")
	}
	if cfg.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID == 0 {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if cfg.Telegram.RateLimitPerMin <= 0 {
		return fmt.Errorf("telegram.rate_limit_per_min must be positive")
	}
	return nil
}
