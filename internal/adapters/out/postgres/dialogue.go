package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (a *PostgresAdapter) GetDialogue(ctx context.Context, chatID int64) (domain.DialogueState, error) {
	var raw []byte
	err := a.db.GetContext(ctx, &raw, `SELECT state FROM dialogue WHERE chat_id = $1`, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	state, err := domain.DecodeDialogueState(raw)
	if err != nil {
		// Битое состояние равносильно отсутствию, диалог начнется заново
		a.logger.Warn("postgres.dialogue.decode_failed", out.LogFields{
			"chatId": chatID,
			"error":  err.Error(),
		})
		return nil, nil
	}

	return state, nil
}

func (a *PostgresAdapter) UpdateDialogue(ctx context.Context, chatID int64, state domain.DialogueState) error {
	raw, err := domain.EncodeDialogueState(state)
	if err != nil {
		return err
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO dialogue (chat_id, state, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (chat_id) DO UPDATE SET state = EXCLUDED.state, updated_at = now()`,
		chatID, raw)
	return err
}

func (a *PostgresAdapter) RemoveDialogue(ctx context.Context, chatID int64) error {
	_, err := a.db.ExecContext(ctx, `DELETE FROM dialogue WHERE chat_id = $1`, chatID)
	return err
}
