package out

import "context"

// ReplyPort - исходящая сторона транспорта диалога.
// Клавиатура передается строками кнопок, транспорт сам решает как их отрисовать.
type ReplyPort interface {
	SendText(ctx context.Context, chatID int64, text string) error

	SendTextWithKeyboard(ctx context.Context, chatID int64, text string, keyboard [][]string) error

	// SendTextRemoveKeyboard отправляет текст и убирает клавиатуру у пользователя
	SendTextRemoveKeyboard(ctx context.Context, chatID int64, text string) error

	SendPhoto(ctx context.Context, chatID int64, image []byte) error

	// SendAndPin отправляет сообщение и закрепляет его в чате
	SendAndPin(ctx context.Context, chatID int64, text string) error
}
