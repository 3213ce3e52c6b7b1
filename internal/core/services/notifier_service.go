package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// NotifierService слушает ленту изменений очереди и доставляет абитуриентам
// их новую позицию. Доставка не блокирует регистрацию: каждое событие уходит
// в своей горутине, внутри одного абитуриента доставка сериализована,
// устаревшие события отбрасываются по Seq.
type NotifierService struct {
	feedPort     out.EventFeedPort
	enrolleePort out.EnrolleePort
	replyPort    out.ReplyPort
	logger       out.LoggerPort

	// Попыток доставки на одно событие, дальше событие теряется:
	// позиция пересчитается и уедет со следующей мутацией очереди
	maxAttempts int

	mu      sync.Mutex
	streams map[int64]*deliveryStream
}

type deliveryStream struct {
	mu      sync.Mutex
	lastSeq int64
}

func NewNotifierService(
	feedPort out.EventFeedPort,
	enrolleePort out.EnrolleePort,
	replyPort out.ReplyPort,
	maxAttempts int,
	logger out.LoggerPort,
) *NotifierService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &NotifierService{
		feedPort:     feedPort,
		enrolleePort: enrolleePort,
		replyPort:    replyPort,
		logger:       logger.WithModule("NotifierService"),
		maxAttempts:  maxAttempts,
		streams:      make(map[int64]*deliveryStream),
	}
}

// Run блокируется на ленте изменений до закрытия контекста
func (s *NotifierService) Run(ctx context.Context) error {
	events, err := s.feedPort.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("notifier.subscribe.failed: %w", err)
	}

	s.logger.Info("notifier.started", out.LogFields{})

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, open := <-events:
			if !open {
				return nil
			}
			go s.HandleQueueEvent(ctx, event)
		}
	}
}

func (s *NotifierService) HandleQueueEvent(ctx context.Context, event domain.QueueEvent) {
	enrollee, err := s.enrolleePort.GetEnrollee(ctx, event.EnrolleeID)
	if err != nil {
		s.logger.Error("notifier.enrollee.fetch_failed", out.LogFields{
			"enrolleeId": event.EnrolleeID,
			"error":      err.Error(),
		})
		return
	}
	if enrollee == nil || !enrollee.Notifications || enrollee.Banned {
		return
	}

	stream := s.stream(event.EnrolleeID)
	stream.mu.Lock()
	defer stream.mu.Unlock()

	// Более свежая позиция уже доставлена
	if event.Seq != 0 && event.Seq <= stream.lastSeq {
		s.logger.Debug("notifier.event.stale", out.LogFields{
			"enrolleeId": event.EnrolleeID,
			"seq":        event.Seq,
			"lastSeq":    stream.lastSeq,
		})
		return
	}

	s.deliver(ctx, event)

	if event.Seq > stream.lastSeq {
		stream.lastSeq = event.Seq
	}
}

func (s *NotifierService) deliver(ctx context.Context, event domain.QueueEvent) {
	message := positionMessage(event.Position)

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		err := s.replyPort.SendText(ctx, event.EnrolleeID, message)
		if err == nil {
			s.logger.Debug("notifier.event.delivered", out.LogFields{
				"enrolleeId": event.EnrolleeID,
				"position":   event.Position,
				"eventId":    event.ID.String(),
			})
			return
		}
		s.logger.Warn("notifier.delivery.failed", out.LogFields{
			"enrolleeId": event.EnrolleeID,
			"attempt":    attempt,
			"error":      err.Error(),
		})
	}

	// Канал ненадежен: событие теряется, позиция уедет со следующей мутацией
	s.logger.Error("notifier.delivery.dropped", out.LogFields{
		"enrolleeId": event.EnrolleeID,
		"eventId":    event.ID.String(),
	})
}

func (s *NotifierService) stream(enrolleeID int64) *deliveryStream {
	s.mu.Lock()
	defer s.mu.Unlock()

	stream, exists := s.streams[enrolleeID]
	if !exists {
		stream = &deliveryStream{}
		s.streams[enrolleeID] = stream
	}
	return stream
}

func positionMessage(position int) string {
	if position == 0 {
		return "Підійшла ваша черга!"
	}
	return fmt.Sprintf("Перед вами в черзі перебуває %d людина(-и, -ей)", position)
}
