package telegram

//go:generate mockgen -source=client.go -destination=../../mocks/telegram/client_mock.go -package=mocks

// Client defines an interface for sending messages via a Telegram bot.
// This keeps the polling logic independent of the bot library.
type Client interface {
	// SendMessage delivers a plain text message to the given chat.
	// chatID may be a numeric ID or an @channel username.
	SendMessage(chatID string, text string) error
}
