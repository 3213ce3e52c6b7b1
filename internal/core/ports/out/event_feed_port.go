package out

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

// EventFeedPort - лента изменений очереди. Подписчик получает событие
// на каждую мутацию таблицы очереди, затрагивающую позицию абитуриента.
type EventFeedPort interface {
	// Subscribe блокируется до закрытия контекста, события уходят в канал.
	// Канал закрывается при завершении подписки.
	Subscribe(ctx context.Context) (<-chan domain.QueueEvent, error)
}
