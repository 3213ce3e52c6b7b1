package in

import (
	"context"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

type DialogueUseCase interface {
	// Обработка одного входящего сообщения: ровно один переход состояния
	HandleMessage(ctx context.Context, message domain.IncomingMessage) error
}

type SlotAllocatorUseCase interface {
	// Доступные времена дня с учетом занятости
	AvailableTimes(ctx context.Context, date time.Time) ([]string, error)

	// Доступные времена внутри промежутка [firstTime, lastTime]
	TimesBetween(ctx context.Context, date time.Time, firstTime, lastTime time.Time) ([]string, error)

	// Крупные промежутки дня для клавиатуры выбора интервала
	Intervals(ctx context.Context, date time.Time) ([]string, error)
}

type QueueStatusUseCase interface {
	// Позиция абитуриента в общем порядке очереди
	QueuePosition(ctx context.Context, enrolleeID int64) (int, error)
}
