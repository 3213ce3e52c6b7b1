package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/in"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// QueueEventListener принимает события изменения очереди из RabbitMQ.
// Источник - внешние системы (админ-панель приемной комиссии), которые
// меняют очередь в обход бота и публикуют пересчитанные позиции.
type QueueEventListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.NotifierUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

func NewQueueEventListener(useCase in.NotifierUseCase, cfg *config.Config, logger out.LoggerPort) (*QueueEventListener, error) {
	if !cfg.RabbitMq.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMq.AmqpUri)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMq.AmqpUri,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &QueueEventListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger.WithModule("QueueEventListener"),
	}, nil
}

func (l *QueueEventListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	l.logger.Info("rabbitmq.queue.started", out.LogFields{
		"queue": queue.Name,
	})

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"error": err.Error(),
					})
					// Битое сообщение не вернется в очередь
					msg.Nack(false, false)
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *QueueEventListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event domain.QueueEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	l.logger.Debug("rabbitmq.event.received", out.LogFields{
		"eventId":    event.ID,
		"enrolleeId": event.EnrolleeID,
		"position":   event.Position,
	})

	l.useCase.HandleQueueEvent(ctx, event)
	return nil
}

func (l *QueueEventListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
