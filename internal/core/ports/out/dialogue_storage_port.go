package out

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

// DialogueStoragePort - персистентное хранилище состояний диалога,
// одно состояние на чат, перезаписывается после каждого перехода
type DialogueStoragePort interface {
	// GetDialogue возвращает nil без ошибки, если состояния еще нет
	GetDialogue(ctx context.Context, chatID int64) (domain.DialogueState, error)

	UpdateDialogue(ctx context.Context, chatID int64, state domain.DialogueState) error

	RemoveDialogue(ctx context.Context, chatID int64) error
}
