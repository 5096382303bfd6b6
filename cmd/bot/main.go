package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"homework_status_bot/internal/app"
	"homework_status_bot/internal/infra/config"
	"homework_status_bot/internal/infra/logger"
	"homework_status_bot/internal/infra/practicum"
	"homework_status_bot/internal/infra/scheduler"
	"homework_status_bot/internal/infra/telegram"

	"github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("Homework Status Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		// Nothing is sent to Telegram here: the bot token may be the missing piece.
		logrus.WithError(err).Fatal("Could not load application configuration")
	}

	log := logger.New(cfg, nil)
	mainLogger := log.WithField("component", "main")
	mainLogger.WithFields(logrus.Fields{
		"log_level":     cfg.LogLevel,
		"environment":   cfg.Environment,
		"poll_interval": cfg.PollInterval.String(),
		"endpoint":      cfg.PracticumEndpoint,
	}).Info("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize Telegram Bot (send-only, no update polling)
	bot, err := telegram.NewSendOnlyBot(cfg.TelegramToken, "", cfg.HTTPTimeout)
	if err != nil {
		mainLogger.WithError(err).Fatal("Could not create Telegram bot")
	}
	notifier := app.NewNotifier(telegram.NewTelebotAdapter(bot), cfg.TelegramChatID, log.WithField("component", "notifier"))
	mainLogger.Info("Telegram notifier initialized")

	practicumClient := practicum.NewClient(cfg.PracticumEndpoint, cfg.PracticumToken, cfg.HTTPTimeout, log.WithField("component", "practicum_client"))

	poller := app.NewStatusPoller(practicumClient, notifier, log.WithField("component", "status_poller"))

	pollScheduler := scheduler.NewPollScheduler(poller, cfg.PollInterval, log.WithField("component", "scheduler"))
	pollScheduler.Start(ctx)
	mainLogger.WithField("next_poll", pollScheduler.NextRun()).Info("Bot started")

	<-ctx.Done() // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	pollScheduler.Stop()
	mainLogger.Info("Application shut down gracefully.")
}
