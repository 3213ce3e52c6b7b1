package out

import (
	"context"
	"time"
)

// QueuePort - граница хранилища очереди. Проверка вместимости и вставка
// выполняются хранилищем атомарно, параллельные регистрации не могут
// переполнить ячейку.
type QueuePort interface {
	// CheckOccupied - true, если в ячейке (date, time) уже maxEnrollee записей
	CheckOccupied(ctx context.Context, date, slotTime time.Time, maxEnrollee int) (bool, error)

	// RegisterBooking атомарно регистрирует абитуриента в ячейке.
	// Прежняя запись абитуриента вытесняется тем же действием,
	// replaced = true если она существовала.
	// Возвращает ErrSlotFull при переполнении и ErrInvalidSlot для прошедших дат.
	RegisterBooking(ctx context.Context, enrolleeID int64, date, slotTime time.Time, maxEnrollee int) (replaced bool, err error)

	// QueuePosition - сколько абитуриентов стоит впереди в общем порядке
	// (date, time, порядок регистрации). ErrNotBooked если активной записи нет.
	QueuePosition(ctx context.Context, enrolleeID int64) (int, error)

	// OccupiedCounts - количество записей по каждому времени дня, ключ "15:04"
	OccupiedCounts(ctx context.Context, date time.Time) (map[string]int, error)
}
