package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

func domainMessage(message *tgbotapi.Message) domain.IncomingMessage {
	username := ""
	if message.From != nil {
		username = message.From.UserName
	}

	return domain.IncomingMessage{
		ChatID:   message.Chat.ID,
		Username: username,
		Text:     message.Text,
	}
}
