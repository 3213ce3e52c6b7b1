package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
	"github.com/suchimauz/enrollee-queue-bot/internal/utils"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

func (a *PostgresAdapter) CheckOccupied(ctx context.Context, date, slotTime time.Time, maxEnrollee int) (bool, error) {
	var count int
	err := a.db.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM queue WHERE date = $1 AND time = $2`,
		date.Format(dateLayout), slotTime.Format(timeLayout))
	if err != nil {
		return false, err
	}

	return count >= maxEnrollee, nil
}

// RegisterBooking выполняет вытеснение старой записи и вставку новой в одной
// транзакции. Advisory-лок на ячейку сериализует параллельные регистрации,
// проверка вместимости и вставка видят одно и то же состояние.
func (a *PostgresAdapter) RegisterBooking(ctx context.Context, enrolleeID int64, date, slotTime time.Time, maxEnrollee int) (bool, error) {
	today := utils.StartCurrentDay(time.Now())
	if date.Before(today) {
		return false, domain.ErrInvalidSlot
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	bucket := fmt.Sprintf("%s %s", date.Format(dateLayout), slotTime.Format(timeLayout))
	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, bucket); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM queue WHERE enrollee_id = $1`, enrolleeID)
	if err != nil {
		return false, err
	}
	deleted, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	var count int
	err = tx.GetContext(ctx, &count,
		`SELECT COUNT(*) FROM queue WHERE date = $1 AND time = $2`,
		date.Format(dateLayout), slotTime.Format(timeLayout))
	if err != nil {
		return false, err
	}
	if count >= maxEnrollee {
		// Откат вернет и вытесненную запись
		return false, domain.ErrSlotFull
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO queue (enrollee_id, date, time) VALUES ($1, $2, $3)`,
		enrolleeID, date.Format(dateLayout), slotTime.Format(timeLayout))
	if err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	a.logger.Info("postgres.queue.registered", out.LogFields{
		"enrolleeId": enrolleeID,
		"date":       date.Format(dateLayout),
		"time":       slotTime.Format(timeLayout),
		"replaced":   deleted > 0,
	})

	return deleted > 0, nil
}

func (a *PostgresAdapter) QueuePosition(ctx context.Context, enrolleeID int64) (int, error) {
	var booking domain.Booking
	err := a.db.GetContext(ctx, &booking,
		`SELECT id, enrollee_id, date, time FROM queue WHERE enrollee_id = $1`,
		enrolleeID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, domain.ErrNotBooked
	}
	if err != nil {
		return 0, err
	}

	var position int
	err = a.db.GetContext(ctx, &position, `
		SELECT COUNT(*) FROM queue
		WHERE (date, time, id) < ($1::date, $2::time, $3::bigint)`,
		booking.Date.Format(dateLayout), booking.Time.Format(timeLayout), booking.ID)
	if err != nil {
		return 0, err
	}

	return position, nil
}

func (a *PostgresAdapter) OccupiedCounts(ctx context.Context, date time.Time) (map[string]int, error) {
	rows, err := a.db.QueryxContext(ctx,
		`SELECT to_char(time, 'HH24:MI'), COUNT(*) FROM queue WHERE date = $1 GROUP BY time`,
		date.Format(dateLayout))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var count int
		if err := rows.Scan(&label, &count); err != nil {
			return nil, err
		}
		counts[label] = count
	}

	return counts, rows.Err()
}
