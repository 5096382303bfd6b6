// internal/app/notifier.go
package app

import (
	"homework_status_bot/internal/domain/homework"
	domainTelegram "homework_status_bot/internal/domain/telegram"

	"github.com/sirupsen/logrus"
)

// Notifier sends messages to the single configured chat.
type Notifier struct {
	telegramClient domainTelegram.Client
	chatID         string
	logger         *logrus.Entry
}

func NewNotifier(tc domainTelegram.Client, chatID string, logger *logrus.Entry) *Notifier {
	return &Notifier{
		telegramClient: tc,
		chatID:         chatID,
		logger:         logger,
	}
}

// Notify sends exactly one message. Failures are returned as *homework.NotifyError.
func (n *Notifier) Notify(message string) error {
	if err := n.telegramClient.SendMessage(n.chatID, message); err != nil {
		return &homework.NotifyError{Err: err}
	}
	n.logger.WithField("chat_id", n.chatID).Info("Message sent to chat")
	return nil
}
