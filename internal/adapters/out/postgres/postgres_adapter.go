package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/suchimauz/enrollee-queue-bot/internal/config"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

// PostgresAdapter - хранилище абитуриентов, очереди и состояний диалога.
// Реализует QueuePort, EnrolleePort и DialogueStoragePort.
type PostgresAdapter struct {
	db     *sqlx.DB
	logger out.LoggerPort
}

const schema = `
CREATE TABLE IF NOT EXISTS enrollee (
	chat_id       bigint PRIMARY KEY,
	call_number   bigserial,
	username      text NOT NULL DEFAULT '',
	name          text NOT NULL,
	patronymic    text NOT NULL,
	last_name     text NOT NULL,
	phone_number  text NOT NULL,
	banned        boolean NOT NULL DEFAULT false,
	notifications boolean NOT NULL DEFAULT true
);

CREATE TABLE IF NOT EXISTS abit (
	id         bigserial PRIMARY KEY,
	last_name  text NOT NULL,
	name       text NOT NULL,
	patronymic text NOT NULL
);

CREATE TABLE IF NOT EXISTS queue (
	id          bigserial PRIMARY KEY,
	enrollee_id bigint NOT NULL UNIQUE,
	date        date NOT NULL,
	time        time NOT NULL
);

CREATE TABLE IF NOT EXISTS dialogue (
	chat_id    bigint PRIMARY KEY,
	state      jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
);

CREATE OR REPLACE FUNCTION notify_queue_status() RETURNS trigger AS $$
BEGIN
	PERFORM pg_notify('queue_status', '');
	RETURN NULL;
END;
$$ LANGUAGE plpgsql;

DROP TRIGGER IF EXISTS queue_status_trigger ON queue;
CREATE TRIGGER queue_status_trigger
	AFTER INSERT OR UPDATE OR DELETE ON queue
	FOR EACH STATEMENT EXECUTE FUNCTION notify_queue_status();
`

func NewPostgresAdapter(cfg *config.Config, logger out.LoggerPort) (*PostgresAdapter, error) {
	log := logger.WithModule("PostgresAdapter")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Error("postgres.connect.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxConnections)

	if _, err := db.Exec(schema); err != nil {
		log.Error("postgres.schema.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	log.Info("postgres.connected", out.LogFields{
		"maxConnections": cfg.Database.MaxConnections,
	})

	return &PostgresAdapter{
		db:     db,
		logger: log,
	}, nil
}

func (a *PostgresAdapter) Close() error {
	return a.db.Close()
}

// Ping - проверка соединения для health-эндпоинта
func (a *PostgresAdapter) Ping(ctx context.Context) error {
	return a.db.PingContext(ctx)
}
