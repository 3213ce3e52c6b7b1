package postgres

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

const queueStatusChannel = "queue_status"

// QueueListener слушает канал queue_status через LISTEN/NOTIFY и на каждую
// мутацию таблицы очереди пересчитывает позиции всех записанных абитуриентов.
// Реализует EventFeedPort.
type QueueListener struct {
	adapter  *PostgresAdapter
	conninfo string
	logger   out.LoggerPort
	seq      atomic.Int64
}

func NewQueueListener(cfg *config.Config, adapter *PostgresAdapter, logger out.LoggerPort) *QueueListener {
	return &QueueListener{
		adapter:  adapter,
		conninfo: cfg.Database.URL,
		logger:   logger.WithModule("QueueListener"),
	}
}

func (l *QueueListener) Subscribe(ctx context.Context) (<-chan domain.QueueEvent, error) {
	listener := pq.NewListener(l.conninfo, 10*time.Second, time.Minute,
		func(ev pq.ListenerEventType, err error) {
			if err != nil {
				l.logger.Error("listener.connection.error", out.LogFields{
					"error": err.Error(),
				})
			}
		})

	if err := listener.Listen(queueStatusChannel); err != nil {
		listener.Close()
		return nil, err
	}

	l.logger.Info("listener.subscribed", out.LogFields{
		"channel": queueStatusChannel,
	})

	events := make(chan domain.QueueEvent)

	go func() {
		defer close(events)
		defer listener.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case n := <-listener.Notify:
				// nil приходит при переподключении, состояние могло измениться
				if n != nil {
					l.logger.Debug("listener.notification", out.LogFields{
						"channel": n.Channel,
					})
				}
				l.emitPositions(ctx, events)
			case <-time.After(90 * time.Second):
				if err := listener.Ping(); err != nil {
					l.logger.Error("listener.ping.failed", out.LogFields{
						"error": err.Error(),
					})
					return
				}
			}
		}
	}()

	return events, nil
}

func (l *QueueListener) emitPositions(ctx context.Context, events chan<- domain.QueueEvent) {
	rows, err := l.adapter.db.QueryxContext(ctx,
		`SELECT enrollee_id FROM queue ORDER BY date, time, id`)
	if err != nil {
		l.logger.Error("listener.positions.fetch_failed", out.LogFields{
			"error": err.Error(),
		})
		return
	}
	defer rows.Close()

	position := 0
	for rows.Next() {
		var enrolleeID int64
		if err := rows.Scan(&enrolleeID); err != nil {
			l.logger.Error("listener.positions.scan_failed", out.LogFields{
				"error": err.Error(),
			})
			return
		}

		event := domain.QueueEvent{
			ID:         uuid.New(),
			EnrolleeID: enrolleeID,
			Position:   position,
			Seq:        l.seq.Add(1),
		}
		position++

		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
	}
}
