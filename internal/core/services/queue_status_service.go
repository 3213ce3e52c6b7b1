package services

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// QueueStatusService - операционные запросы о состоянии очереди
type QueueStatusService struct {
	queuePort out.QueuePort
	logger    out.LoggerPort
}

func NewQueueStatusService(queuePort out.QueuePort, logger out.LoggerPort) *QueueStatusService {
	return &QueueStatusService{
		queuePort: queuePort,
		logger:    logger.WithModule("QueueStatusService"),
	}
}

// QueuePosition - сколько абитуриентов стоит впереди в общем порядке очереди
func (s *QueueStatusService) QueuePosition(ctx context.Context, enrolleeID int64) (int, error) {
	position, err := s.queuePort.QueuePosition(ctx, enrolleeID)
	if err != nil {
		s.logger.Debug("queue.position.fetch_failed", out.LogFields{
			"enrolleeId": enrolleeID,
			"error":      err.Error(),
		})
		return 0, err
	}
	return position, nil
}
