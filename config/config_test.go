package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		viper.Reset()
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.GoogleCalendar.CalendarID != "primary" {
			t.Errorf("unexpected calendar id: %s", cfg.GoogleCalendar.CalendarID)
		}
		if cfg.Telegram.RateLimitPerMin != 20 {
			t.Errorf("unexpected rate limit: %d", cfg.Telegram.RateLimitPerMin)
		}
		if cfg.Email.Enabled {
			t.Errorf("email should be disabled without SMTP settings")
		}
	})

	t.Run("Env overrides", func(t *testing.T) {
		viper.Reset()
		t.Setenv("INBOX_PATH", "/tmp/inbox.yaml")
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")
		t.Setenv("TELEGRAM_CHAT_ID", "42")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Inbox.Path != "/tmp/inbox.yaml" {
			t.Errorf("unexpected inbox path: %s", cfg.Inbox.Path)
		}
		if cfg.Telegram.BotToken != "token" || cfg.Telegram.ChatID != 42 {
			t.Errorf("unexpected telegram config: %+v", cfg.Telegram)
		}
	})

	t.Run("Telegram token without chat", func(t *testing.T) {
		viper.Reset()
		t.Setenv("TELEGRAM_BOT_TOKEN", "token")

		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}
	})
}
