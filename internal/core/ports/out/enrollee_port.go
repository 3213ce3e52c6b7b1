package out

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

// EnrolleePort - хранилище абитуриентов и списков приемной комиссии
type EnrolleePort interface {
	// IsValidEnrollee проверяет ФИО по спискам заявок на поступление
	IsValidEnrollee(ctx context.Context, lastName, name, patronymic string) (bool, error)

	// UpsertEnrollee сохраняет абитуриента, возвращает порядковый номер для вызова
	UpsertEnrollee(ctx context.Context, enrollee domain.Enrollee) (int64, error)

	GetEnrollee(ctx context.Context, chatID int64) (*domain.Enrollee, error)

	SetBanned(ctx context.Context, chatID int64, banned bool) error

	// ToggleNotifications переключает флаг подписки, возвращает новое значение
	ToggleNotifications(ctx context.Context, chatID int64) (bool, error)
}
