package slot_allocator_service

import (
	"context"
	"fmt"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// SlotAllocatorService превращает расписание дня и занятость ячеек
// в списки доступных времен. Сама занятость живет в QueuePort.
type SlotAllocatorService struct {
	schedule  *domain.ScheduleTable
	queuePort out.QueuePort
	logger    out.LoggerPort
}

func NewSlotAllocatorService(
	schedule *domain.ScheduleTable,
	queuePort out.QueuePort,
	logger out.LoggerPort,
) *SlotAllocatorService {
	return &SlotAllocatorService{
		schedule:  schedule,
		queuePort: queuePort,
		logger:    logger.WithModule("SlotAllocatorService"),
	}
}

// AvailableTimes возвращает упорядоченные по возрастанию времена дня,
// в которых занятость меньше maxEnrollee
func (s *SlotAllocatorService) AvailableTimes(ctx context.Context, date time.Time) ([]string, error) {
	entry, occupied, err := s.dayState(ctx, date)
	if err != nil {
		return nil, err
	}
	return generateLabels(entry, occupied), nil
}

// TimesBetween сужает ту же последовательность до [firstTime, lastTime] включительно
func (s *SlotAllocatorService) TimesBetween(ctx context.Context, date time.Time, firstTime, lastTime time.Time) ([]string, error) {
	entry, occupied, err := s.dayState(ctx, date)
	if err != nil {
		return nil, err
	}
	return labelsBetween(generateLabels(entry, occupied), firstTime, lastTime), nil
}

// Intervals возвращает крупные промежутки дня для клавиатуры выбора интервала
func (s *SlotAllocatorService) Intervals(ctx context.Context, date time.Time) ([]string, error) {
	entry, occupied, err := s.dayState(ctx, date)
	if err != nil {
		return nil, err
	}
	return generateIntervals(entry, occupied), nil
}

func (s *SlotAllocatorService) dayState(ctx context.Context, date time.Time) (domain.ScheduleEntry, map[string]int, error) {
	entry, err := s.schedule.Entry(date)
	if err != nil {
		return domain.ScheduleEntry{}, nil, fmt.Errorf("slots.schedule.lookup_failed: %w", err)
	}

	occupied, err := s.queuePort.OccupiedCounts(ctx, date)
	if err != nil {
		s.logger.Error("slots.occupied.fetch_failed", out.LogFields{
			"date":  date.Format("2006-01-02"),
			"error": err.Error(),
		})
		return domain.ScheduleEntry{}, nil, fmt.Errorf("slots.occupied.fetch_failed: %w", err)
	}

	return entry, occupied, nil
}
