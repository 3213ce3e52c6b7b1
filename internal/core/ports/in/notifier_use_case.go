package in

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

type NotifierUseCase interface {
	// Run блокируется на ленте изменений до закрытия контекста
	Run(ctx context.Context) error

	// HandleQueueEvent принимает событие из внешнего источника
	// (например, из очереди RabbitMQ от админ-панели)
	HandleQueueEvent(ctx context.Context, event domain.QueueEvent)
}
