package out

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

// CaptchaPort - генератор капчи. Ошибка генерации не фатальна для процесса,
// но сбрасывает диалог в начальное состояние.
type CaptchaPort interface {
	Generate(ctx context.Context) (domain.CaptchaPuzzle, error)
}
