package dialogue_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (s *DialogueService) handleDay(ctx context.Context, message domain.IncomingMessage, state domain.DayState) domain.DialogueState {
	// Кнопка дня несет "02.01", год подставляется текущий
	date, err := time.ParseInLocation(dateLayout,
		fmt.Sprintf("%s.%d", message.Text, s.now().Year()), s.now().Location())
	if err != nil {
		s.sendText(ctx, message.ChatID, msgDayInvalidFormat)
		return state
	}

	keyboard, err := s.intervalsKeyboard(ctx, date)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			s.sendText(ctx, message.ChatID, msgDayNotFound)
			return state
		}
		s.logger.Error("dialogue.intervals.fetch_failed", out.LogFields{
			"chatId": message.ChatID,
			"date":   date.Format("2006-01-02"),
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgGenericError)
		return state
	}

	s.send(ctx, message.ChatID, msgChooseInterval, keyboard)
	return domain.IntervalState{Date: date}
}
