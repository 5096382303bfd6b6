// internal/infra/telegram/client.go
package telegram

import (
	"fmt"
	"net/http"
	"time"

	"gopkg.in/telebot.v3"
)

// chatRecipient lets an opaque chat identifier (numeric ID or @username) be used as a telebot.Recipient.
type chatRecipient string

func (c chatRecipient) Recipient() string { return string(c) }

// TelebotAdapter implements the Client interface using the gopkg.in/telebot.v3 library.
type TelebotAdapter struct {
	bot *telebot.Bot
}

func NewTelebotAdapter(b *telebot.Bot) *TelebotAdapter {
	return &TelebotAdapter{bot: b}
}

// NewSendOnlyBot creates a bot that is only used to send messages.
// It runs in offline mode, so no getMe request is made and no updates are polled.
// apiURL may be empty to use the public Bot API.
func NewSendOnlyBot(token string, apiURL string, timeout time.Duration) (*telebot.Bot, error) {
	bot, err := telebot.NewBot(telebot.Settings{
		URL:     apiURL,
		Token:   token,
		Client:  &http.Client{Timeout: timeout},
		Offline: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	return bot, nil
}

// SendMessage sends a text message to the specified chat.
func (tba *TelebotAdapter) SendMessage(chatID string, text string) error {
	_, err := tba.bot.Send(chatRecipient(chatID), text)
	return err
}
