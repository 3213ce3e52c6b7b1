package dialogue_service

import (
	"context"
	"strings"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/in"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/services"
)

// Глобальные команды, распознаются поверх любого состояния
const (
	commandRestart = "/restart"
	commandNotify  = "/notify"
)

// DialogueService - машина состояний диалога. На каждое входящее сообщение
// ровно один переход; ошибки внешних сервисов гасятся на границе хендлера
// и превращаются в локализованный ответ, состояние при этом не теряется.
type DialogueService struct {
	queuePort    out.QueuePort
	enrolleePort out.EnrolleePort
	storagePort  out.DialogueStoragePort
	replyPort    out.ReplyPort
	rosterCache  out.RosterCachePort
	captcha      *services.CaptchaService
	allocator    in.SlotAllocatorUseCase
	schedule     *domain.ScheduleTable
	logger       out.LoggerPort

	// Закрепляемое сообщение после регистрации, из файла расписания
	post string

	now func() time.Time
}

func NewDialogueService(
	queuePort out.QueuePort,
	enrolleePort out.EnrolleePort,
	storagePort out.DialogueStoragePort,
	replyPort out.ReplyPort,
	rosterCache out.RosterCachePort,
	captcha *services.CaptchaService,
	allocator in.SlotAllocatorUseCase,
	schedule *domain.ScheduleTable,
	post string,
	logger out.LoggerPort,
) *DialogueService {
	return &DialogueService{
		queuePort:    queuePort,
		enrolleePort: enrolleePort,
		storagePort:  storagePort,
		replyPort:    replyPort,
		rosterCache:  rosterCache,
		captcha:      captcha,
		allocator:    allocator,
		schedule:     schedule,
		post:         post,
		logger:       logger.WithModule("DialogueService"),
		now:          time.Now,
	}
}

func (s *DialogueService) HandleMessage(ctx context.Context, message domain.IncomingMessage) error {
	state, err := s.storagePort.GetDialogue(ctx, message.ChatID)
	if err != nil {
		s.logger.Error("dialogue.load.failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		state = nil
	}
	if state == nil {
		state = domain.DefaultDialogueState()
	}

	next := s.dispatch(ctx, message, state)

	if err := s.storagePort.UpdateDialogue(ctx, message.ChatID, next); err != nil {
		s.logger.Error("dialogue.save.failed", out.LogFields{
			"chatId": message.ChatID,
			"state":  string(next.StateKind()),
			"error":  err.Error(),
		})
	}
	return nil
}

func (s *DialogueService) dispatch(ctx context.Context, message domain.IncomingMessage, state domain.DialogueState) domain.DialogueState {
	text := strings.TrimSpace(message.Text)

	// Переключение подписки не меняет состояние диалога
	if text == commandNotify {
		s.toggleNotifications(ctx, message.ChatID)
		return state
	}

	if _, banned := state.(domain.BannedState); banned {
		return s.handleBanned(ctx, message)
	}

	// Перезапуск сбрасывает диалог, но не записи в очереди
	if text == commandRestart {
		s.send(ctx, message.ChatID, msgConsentPrompt, s.agreeKeyboard())
		return domain.ConsentState{}
	}

	switch st := state.(type) {
	case domain.ConsentState:
		return s.handleConsent(ctx, message, st)
	case domain.CaptchaState:
		return s.handleCaptcha(ctx, message, st)
	case domain.FullNameState:
		return s.handleFullName(ctx, message, st)
	case domain.PhoneState:
		return s.handlePhone(ctx, message, st)
	case domain.DayState:
		return s.handleDay(ctx, message, st)
	case domain.IntervalState:
		return s.handleInterval(ctx, message, st)
	case domain.TimeState:
		return s.handleTime(ctx, message, st)
	default:
		s.logger.Warn("dialogue.state.unknown", out.LogFields{
			"chatId": message.ChatID,
			"state":  string(state.StateKind()),
		})
		s.send(ctx, message.ChatID, msgConsentPrompt, s.agreeKeyboard())
		return domain.ConsentState{}
	}
}

func (s *DialogueService) toggleNotifications(ctx context.Context, chatID int64) {
	enabled, err := s.enrolleePort.ToggleNotifications(ctx, chatID)
	if err != nil {
		s.logger.Error("dialogue.notifications.toggle_failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, chatID, msgGenericError)
		return
	}
	if enabled {
		s.sendText(ctx, chatID, msgNotificationsOn)
	} else {
		s.sendText(ctx, chatID, msgNotificationsOff)
	}
}

func (s *DialogueService) sendText(ctx context.Context, chatID int64, text string) {
	if err := s.replyPort.SendText(ctx, chatID, text); err != nil {
		s.logger.Error("dialogue.reply.failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
	}
}

func (s *DialogueService) send(ctx context.Context, chatID int64, text string, keyboard [][]string) {
	if err := s.replyPort.SendTextWithKeyboard(ctx, chatID, text, keyboard); err != nil {
		s.logger.Error("dialogue.reply.failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
	}
}
