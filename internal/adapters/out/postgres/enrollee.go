package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (a *PostgresAdapter) IsValidEnrollee(ctx context.Context, lastName, name, patronymic string) (bool, error) {
	var exists bool
	err := a.db.GetContext(ctx, &exists, `
		SELECT EXISTS (
			SELECT 1 FROM abit
			WHERE lower(last_name) = $1 AND lower(name) = $2 AND lower(patronymic) = $3
		)`,
		strings.ToLower(lastName), strings.ToLower(name), strings.ToLower(patronymic))
	if err != nil {
		return false, err
	}

	return exists, nil
}

func (a *PostgresAdapter) UpsertEnrollee(ctx context.Context, enrollee domain.Enrollee) (int64, error) {
	var callNumber int64
	err := a.db.GetContext(ctx, &callNumber, `
		INSERT INTO enrollee (chat_id, username, name, patronymic, last_name, phone_number, banned, notifications)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (chat_id) DO UPDATE SET
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			patronymic = EXCLUDED.patronymic,
			last_name = EXCLUDED.last_name,
			phone_number = EXCLUDED.phone_number
		RETURNING call_number`,
		enrollee.ChatID, enrollee.Username, enrollee.Name, enrollee.Patronymic,
		enrollee.LastName, enrollee.PhoneNumber, enrollee.Banned, enrollee.Notifications)
	if err != nil {
		return 0, err
	}

	a.logger.Info("postgres.enrollee.upserted", out.LogFields{
		"chatId":     enrollee.ChatID,
		"callNumber": callNumber,
	})

	return callNumber, nil
}

func (a *PostgresAdapter) GetEnrollee(ctx context.Context, chatID int64) (*domain.Enrollee, error) {
	enrollee := &domain.Enrollee{}
	err := a.db.GetContext(ctx, enrollee, `
		SELECT chat_id, username, name, patronymic, last_name, phone_number, banned, notifications
		FROM enrollee WHERE chat_id = $1`,
		chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrEnrolleeNotFound
	}
	if err != nil {
		return nil, err
	}

	return enrollee, nil
}

func (a *PostgresAdapter) SetBanned(ctx context.Context, chatID int64, banned bool) error {
	// Абитуриент может быть забанен до регистрации, создаем запись-заглушку
	_, err := a.db.ExecContext(ctx, `
		INSERT INTO enrollee (chat_id, name, patronymic, last_name, phone_number, banned)
		VALUES ($1, '', '', '', '', $2)
		ON CONFLICT (chat_id) DO UPDATE SET banned = EXCLUDED.banned`,
		chatID, banned)
	if err != nil {
		return err
	}

	a.logger.Warn("postgres.enrollee.banned_changed", out.LogFields{
		"chatId": chatID,
		"banned": banned,
	})

	return nil
}

func (a *PostgresAdapter) ToggleNotifications(ctx context.Context, chatID int64) (bool, error) {
	var notifications bool
	err := a.db.GetContext(ctx, &notifications, `
		UPDATE enrollee SET notifications = NOT notifications
		WHERE chat_id = $1
		RETURNING notifications`,
		chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, domain.ErrEnrolleeNotFound
	}
	if err != nil {
		return false, err
	}

	return notifications, nil
}
