package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"express-sms/config"
	"express-sms/internal/notify"
	"express-sms/internal/pickup/matcher"
	"express-sms/internal/pickup/repository"
	"express-sms/internal/pickup/repository/gcal"
	"express-sms/internal/pickup/repository/inbox"
	"express-sms/internal/pickup/repository/sqlite"
	"express-sms/internal/pickup/usecase"
	"express-sms/pkg/gcalendar"
	"express-sms/pkg/log"
	"express-sms/pkg/mailer"
	"express-sms/pkg/telegram"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting express-sms (%s)", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Run failed: %v", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Processed-code store
	if dir := filepath.Dir(cfg.Storage.Path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create storage dir: %w", err)
		}
	}
	store, err := sqlite.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	// 4. Reminders (Google Calendar)
	if cfg.GoogleCalendar.CredentialsPath == "" {
		return fmt.Errorf("google_calendar.credentials_path is required")
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath, cfg.GoogleCalendar.TokenPath)
	if err != nil {
		return fmt.Errorf("init google calendar: %w", err)
	}
	reminders := gcal.New(calendarClient, cfg.GoogleCalendar.CalendarID, cfg.GoogleCalendar.Timezone, logger)
	logger.Infof(ctx, "Google Calendar ready (calendar %s)", cfg.GoogleCalendar.CalendarID)

	// 5. Notification channels
	notifier := buildNotifier(ctx, cfg, logger)

	uc := usecase.New(
		logger,
		matcher.New(),
		inbox.New(cfg.Inbox.Path, logger),
		reminders,
		notifier,
		store,
	)

	out, err := uc.Run(ctx)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Run %s done: read=%d matched=%d processed=%d cached=%d reminder=%d backfilled=%d",
		out.RunID, out.MessagesRead, out.Matched, out.Processed, out.SkippedCached, out.SkippedReminder, out.Backfilled)
	if len(out.ProcessedCodes) > 0 {
		logger.Infof(ctx, "New pickup codes: %s", strings.Join(out.ProcessedCodes, ", "))
	}
	return nil
}

func buildNotifier(ctx context.Context, cfg *config.Config, logger log.Logger) repository.Notifier {
	var channels []repository.Notifier

	if cfg.Telegram.BotToken != "" {
		bot := telegram.NewBot(cfg.Telegram.BotToken)
		channels = append(channels, notify.NewTelegram(bot, cfg.Telegram.ChatID, cfg.Telegram.RateLimitPerMin, logger))
		logger.Info(ctx, "Notification channel enabled: telegram")
	}

	if cfg.Email.Enabled {
		sender := mailer.New(mailer.Config{
			SMTPServer: cfg.Email.SMTPServer,
			SMTPPort:   cfg.Email.SMTPPort,
			SMTPUser:   cfg.Email.SMTPUser,
			SMTPPass:   cfg.Email.SMTPPass,
			FromEmail:  cfg.Email.FromEmail,
			ToEmail:    cfg.Email.ToEmail,
		})
		channels = append(channels, notify.NewEmail(sender, logger))
		logger.Info(ctx, "Notification channel enabled: email")
	}

	if len(channels) == 0 {
		logger.Warn(ctx, "No notification channel configured, notifications go to the log")
		channels = append(channels, notify.NewLog(logger))
	}

	return notify.NewMulti(channels...)
}
