package dialogue_service

import (
	"context"
	"time"
)

// twoColumnsKeyboard раскладывает кнопки в два столбца
func twoColumnsKeyboard(buttons []string) [][]string {
	keyboard := make([][]string, 0, (len(buttons)+1)/2)
	for i := 0; i < len(buttons); i += 2 {
		end := i + 2
		if end > len(buttons) {
			end = len(buttons)
		}
		keyboard = append(keyboard, buttons[i:end])
	}
	return keyboard
}

func (s *DialogueService) agreeKeyboard() [][]string {
	return [][]string{{buttonAgree, buttonDisagree}}
}

// daysKeyboard - даты расписания начиная с текущей, в формате "02.01"
func (s *DialogueService) daysKeyboard() [][]string {
	dates := s.schedule.BookableDates(s.now())
	buttons := make([]string, 0, len(dates))
	for _, date := range dates {
		buttons = append(buttons, date.Format(dayButtonLayout))
	}
	return twoColumnsKeyboard(buttons)
}

func (s *DialogueService) intervalsKeyboard(ctx context.Context, date time.Time) ([][]string, error) {
	intervals, err := s.allocator.Intervals(ctx, date)
	if err != nil {
		return nil, err
	}
	keyboard := twoColumnsKeyboard(intervals)
	return append(keyboard, []string{buttonBack}), nil
}

func (s *DialogueService) timesKeyboard(ctx context.Context, date time.Time, firstTime, lastTime time.Time) ([][]string, error) {
	times, err := s.allocator.TimesBetween(ctx, date, firstTime, lastTime)
	if err != nil {
		return nil, err
	}
	keyboard := twoColumnsKeyboard(times)
	return append(keyboard, []string{buttonBack, buttonOtherDate}), nil
}
