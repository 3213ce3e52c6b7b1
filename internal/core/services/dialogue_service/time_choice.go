package dialogue_service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (s *DialogueService) handleTime(ctx context.Context, message domain.IncomingMessage, state domain.TimeState) domain.DialogueState {
	switch message.Text {
	case buttonBack:
		keyboard, err := s.intervalsKeyboard(ctx, state.Date)
		if err != nil {
			s.sendText(ctx, message.ChatID, msgGenericError)
			return state
		}
		s.send(ctx, message.ChatID, msgChooseInterval, keyboard)
		return domain.IntervalState{Date: state.Date}

	case buttonOtherDate:
		s.send(ctx, message.ChatID, msgChooseDay, s.daysKeyboard())
		return domain.DayState{}
	}

	slotTime, err := time.Parse(timeLayout, message.Text)
	if err != nil {
		s.sendText(ctx, message.ChatID, msgTimeInvalid)
		return state
	}

	// Запись на прошедший день невозможна - обратно к выбору даты
	now := s.now()
	currentDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if state.Date.Before(currentDay) {
		s.send(ctx, message.ChatID, msgDayIsOver, s.daysKeyboard())
		return domain.DayState{}
	}

	entry, err := s.schedule.Entry(state.Date)
	if err != nil {
		s.send(ctx, message.ChatID, msgDayNotFound, s.daysKeyboard())
		return domain.DayState{}
	}

	occupied, err := s.queuePort.CheckOccupied(ctx, state.Date, slotTime, entry.MaxEnrollee)
	if err != nil {
		s.logger.Error("dialogue.occupied.check_failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgTimeCheckError)
		return state
	}
	if occupied {
		return s.slotTaken(ctx, message.ChatID, state)
	}

	replaced, err := s.queuePort.RegisterBooking(ctx, message.ChatID, state.Date, slotTime, entry.MaxEnrollee)
	switch {
	case errors.Is(err, domain.ErrSlotFull):
		// Гонку за последнее место выиграл другой абитуриент
		return s.slotTaken(ctx, message.ChatID, state)
	case errors.Is(err, domain.ErrInvalidSlot):
		s.send(ctx, message.ChatID, msgDayIsOver, s.daysKeyboard())
		return domain.DayState{}
	case err != nil:
		s.logger.Error("dialogue.queue.register_failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgQueueError)
		return state
	}

	if replaced {
		s.sendText(ctx, message.ChatID, fmt.Sprintf(
			"Вас зареєстровано в черзі на новий час: %s %s (старий запис не актуальний)",
			state.Date.Format(dateLayout), slotTime.Format(timeLayout)))
	} else {
		s.sendText(ctx, message.ChatID, fmt.Sprintf(
			"Вас зареєстровано в черзі на: %s %s",
			state.Date.Format(dateLayout), slotTime.Format(timeLayout)))
	}

	// Состояние не меняется - можно перезаписаться на другое время
	return state
}

// slotTaken перерисовывает оставшиеся времена промежутка с пометкой о занятости
func (s *DialogueService) slotTaken(ctx context.Context, chatID int64, state domain.TimeState) domain.DialogueState {
	keyboard, err := s.timesKeyboard(ctx, state.Date, state.FirstTime, state.LastTime)
	if err != nil {
		s.sendText(ctx, chatID, msgGenericError)
		return state
	}
	s.send(ctx, chatID, msgTimeTaken, keyboard)
	return state
}
