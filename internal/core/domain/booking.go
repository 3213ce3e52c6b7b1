package domain

import (
	"time"

	"github.com/google/uuid"
)

// Booking - активная запись абитуриента в очереди. У абитуриента в каждый
// момент времени не больше одной активной записи, повторная регистрация
// вытесняет предыдущую.
type Booking struct {
	ID         int64     `db:"id" json:"id"`
	EnrolleeID int64     `db:"enrollee_id" json:"enrolleeId"`
	Date       time.Time `db:"date" json:"date"`
	Time       time.Time `db:"time" json:"time"`
}

// QueueEvent - событие изменения позиции абитуриента в очереди.
// Seq монотонно растет в пределах одного абитуриента, устаревшие
// события с меньшим Seq отбрасываются при доставке.
type QueueEvent struct {
	ID         uuid.UUID `json:"id"`
	EnrolleeID int64     `json:"enrolleeId"`
	Position   int       `json:"position"`
	Seq        int64     `json:"seq"`
}
