package dialogue_service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (s *DialogueService) handleInterval(ctx context.Context, message domain.IncomingMessage, state domain.IntervalState) domain.DialogueState {
	if message.Text == buttonBack {
		s.send(ctx, message.ChatID, msgChooseDay, s.daysKeyboard())
		return domain.DayState{}
	}

	firstTime, lastTime, ok := parseInterval(message.Text)
	if !ok {
		s.sendText(ctx, message.ChatID, msgTimeInvalid)
		return state
	}

	keyboard, err := s.timesKeyboard(ctx, state.Date, firstTime, lastTime)
	if err != nil {
		if errors.Is(err, domain.ErrScheduleNotFound) {
			s.sendText(ctx, message.ChatID, msgDayNotFound)
			return state
		}
		s.logger.Error("dialogue.times.fetch_failed", out.LogFields{
			"chatId": message.ChatID,
			"date":   state.Date.Format("2006-01-02"),
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgGenericError)
		return state
	}

	s.send(ctx, message.ChatID, msgChooseTime, keyboard)
	return domain.TimeState{
		Date:      state.Date,
		FirstTime: firstTime,
		LastTime:  lastTime,
	}
}

// parseInterval разбирает кнопку промежутка "10:00-11:30"
func parseInterval(text string) (time.Time, time.Time, bool) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return time.Time{}, time.Time{}, false
	}

	firstTime, err := time.Parse(timeLayout, strings.TrimSpace(parts[0]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	lastTime, err := time.Parse(timeLayout, strings.TrimSpace(parts[1]))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return firstTime, lastTime, true
}
