package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/in"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// TelegramBot - входной транспорт диалога. Сообщения разных чатов
// обрабатываются параллельно, сообщения одного чата - строго по одному,
// иначе два апдейта могут прочитать одно состояние диалога.
type TelegramBot struct {
	bot         *tgbotapi.BotAPI
	dialogue    in.DialogueUseCase
	pollTimeout int
	logger      out.LoggerPort

	mu        sync.Mutex
	chatLocks map[int64]*sync.Mutex
}

func NewTelegramBot(cfg *config.Config, bot *tgbotapi.BotAPI, dialogue in.DialogueUseCase, logger out.LoggerPort) *TelegramBot {
	log := logger.WithModule("TelegramBot")
	log.Info("telegram.authorized", out.LogFields{
		"username": bot.Self.UserName,
	})

	return &TelegramBot{
		bot:         bot,
		dialogue:    dialogue,
		pollTimeout: cfg.Telegram.PollTimeout,
		logger:      log,
		chatLocks:   make(map[int64]*sync.Mutex),
	}
}

// Run читает апдейты long poll-ом до закрытия контекста
func (t *TelegramBot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = t.pollTimeout

	updates, err := t.bot.GetUpdatesChan(u)
	if err != nil {
		return err
	}

	t.logger.Info("telegram.polling.started", out.LogFields{
		"timeout": t.pollTimeout,
	})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}

			go t.handleUpdate(ctx, update.Message)
		}
	}
}

func (t *TelegramBot) handleUpdate(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID

	lock := t.chatLock(chatID)
	lock.Lock()
	defer lock.Unlock()

	incoming := domainMessage(message)

	t.logger.Debug("telegram.message.received", out.LogFields{
		"chatId": chatID,
		"text":   incoming.Text,
	})

	if err := t.dialogue.HandleMessage(ctx, incoming); err != nil {
		t.logger.Error("telegram.message.handle_failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
	}
}

func (t *TelegramBot) chatLock(chatID int64) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	lock, ok := t.chatLocks[chatID]
	if !ok {
		lock = &sync.Mutex{}
		t.chatLocks[chatID] = lock
	}

	return lock
}
