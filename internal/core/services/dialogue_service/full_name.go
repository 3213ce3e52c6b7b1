package dialogue_service

import (
	"context"
	"strings"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (s *DialogueService) handleFullName(ctx context.Context, message domain.IncomingMessage, state domain.FullNameState) domain.DialogueState {
	fields := strings.Fields(message.Text)
	if len(fields) != 3 {
		s.sendText(ctx, message.ChatID, msgFullNameInvalid)
		return state
	}

	lastName, name, patronymic := fields[0], fields[1], fields[2]

	valid, err := s.checkRoster(ctx, lastName, name, patronymic)
	if err != nil {
		s.logger.Error("dialogue.roster.check_failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgRosterError)
		return state
	}
	if !valid {
		s.sendText(ctx, message.ChatID, msgFullNameUnknown)
		return state
	}

	s.sendText(ctx, message.ChatID, msgPhonePrompt)
	return domain.PhoneState{
		Name:       name,
		Patronymic: patronymic,
		LastName:   lastName,
	}
}

// checkRoster проверяет ФИО по спискам, результат оседает в кэше
func (s *DialogueService) checkRoster(ctx context.Context, lastName, name, patronymic string) (bool, error) {
	key := strings.ToLower(lastName + "|" + name + "|" + patronymic)

	if s.rosterCache != nil {
		if valid, exists := s.rosterCache.GetRosterCheck(ctx, key); exists {
			return valid, nil
		}
	}

	valid, err := s.enrolleePort.IsValidEnrollee(ctx, lastName, name, patronymic)
	if err != nil {
		return false, err
	}

	if s.rosterCache != nil {
		s.rosterCache.StoreRosterCheck(ctx, key, valid)
	}
	return valid, nil
}
