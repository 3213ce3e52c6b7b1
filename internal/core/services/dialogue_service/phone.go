package dialogue_service

import (
	"context"
	"fmt"
	"regexp"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// Международный или локальный префикс плюс 9 цифр
var phoneRegex = regexp.MustCompile(`^\+?3?8?(0\d{9})$`)

func (s *DialogueService) handlePhone(ctx context.Context, message domain.IncomingMessage, state domain.PhoneState) domain.DialogueState {
	if !phoneRegex.MatchString(message.Text) {
		s.sendText(ctx, message.ChatID, msgPhoneInvalid)
		return state
	}

	enrollee := domain.Enrollee{
		ChatID:        message.ChatID,
		Username:      message.Username,
		Name:          state.Name,
		Patronymic:    state.Patronymic,
		LastName:      state.LastName,
		PhoneNumber:   message.Text,
		Notifications: true,
	}

	number, err := s.enrolleePort.UpsertEnrollee(ctx, enrollee)
	if err != nil {
		s.logger.Error("dialogue.enrollee.upsert_failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgRegisterError)
		return domain.FullNameState{}
	}

	s.sendText(ctx, message.ChatID, fmt.Sprintf(
		"Підсумкові дані:\n"+
			"Прізвище: %s\n"+
			"Ім'я: %s\n"+
			"По батькові: %s\n"+
			"Телефон: %s\n"+
			"Порядковий номер для виклику: %d",
		state.LastName, state.Name, state.Patronymic, message.Text, number,
	))

	if s.post != "" {
		if err := s.replyPort.SendAndPin(ctx, message.ChatID, s.post); err != nil {
			s.logger.Error("dialogue.post.pin_failed", out.LogFields{
				"chatId": message.ChatID,
				"error":  err.Error(),
			})
		}
	}

	s.send(ctx, message.ChatID, msgChooseDay, s.daysKeyboard())
	return domain.DayState{}
}
