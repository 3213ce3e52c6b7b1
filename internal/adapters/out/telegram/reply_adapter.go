package telegram

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// ReplyAdapter отправляет ответы диалога через телеграм. Реализует ReplyPort.
type ReplyAdapter struct {
	bot    *tgbotapi.BotAPI
	logger out.LoggerPort
}

func NewReplyAdapter(bot *tgbotapi.BotAPI, logger out.LoggerPort) *ReplyAdapter {
	return &ReplyAdapter{
		bot:    bot,
		logger: logger.WithModule("ReplyAdapter"),
	}
}

func (a *ReplyAdapter) SendText(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := a.bot.Send(msg)
	return err
}

func (a *ReplyAdapter) SendTextWithKeyboard(ctx context.Context, chatID int64, text string, keyboard [][]string) error {
	rows := make([][]tgbotapi.KeyboardButton, 0, len(keyboard))
	for _, row := range keyboard {
		buttons := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(label))
		}
		rows = append(rows, buttons)
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewReplyKeyboard(rows...)

	_, err := a.bot.Send(msg)
	return err
}

func (a *ReplyAdapter) SendTextRemoveKeyboard(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.ReplyKeyboardRemove{RemoveKeyboard: true}

	_, err := a.bot.Send(msg)
	return err
}

func (a *ReplyAdapter) SendPhoto(ctx context.Context, chatID int64, image []byte) error {
	photo := tgbotapi.NewPhotoUpload(chatID, tgbotapi.FileBytes{
		Name:  "captcha.png",
		Bytes: image,
	})

	_, err := a.bot.Send(photo)
	return err
}

func (a *ReplyAdapter) SendAndPin(ctx context.Context, chatID int64, text string) error {
	sent, err := a.bot.Send(tgbotapi.NewMessage(chatID, text))
	if err != nil {
		return err
	}

	_, err = a.bot.PinChatMessage(tgbotapi.PinChatMessageConfig{
		ChatID:              chatID,
		MessageID:           sent.MessageID,
		DisableNotification: true,
	})
	if err != nil {
		// Сообщение уже доставлено, закреп не критичен
		a.logger.Warn("telegram.pin.failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
	}

	return nil
}
