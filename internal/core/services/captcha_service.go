package services

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

type CaptchaCheckResult string

const (
	CaptchaCheckCorrect   CaptchaCheckResult = "correct"
	CaptchaCheckIncorrect CaptchaCheckResult = "incorrect"
	CaptchaCheckUpdate    CaptchaCheckResult = "update"
	CaptchaCheckBlock     CaptchaCheckResult = "block"
)

const (
	// Попыток до перманентной блокировки
	captchaBlockThreshold = 30
	// Каждая кратная попытка перегенерирует картинку, счетчик не сбрасывается
	captchaUpdateEvery = 10
)

// CaptchaService - проверка человечности с эскалацией:
// повтор -> перегенерация картинки -> блокировка.
type CaptchaService struct {
	captchaPort out.CaptchaPort
	logger      out.LoggerPort
}

func NewCaptchaService(captchaPort out.CaptchaPort, logger out.LoggerPort) *CaptchaService {
	return &CaptchaService{
		captchaPort: captchaPort,
		logger:      logger.WithModule("CaptchaService"),
	}
}

func (s *CaptchaService) NewPuzzle(ctx context.Context) (domain.CaptchaPuzzle, error) {
	puzzle, err := s.captchaPort.Generate(ctx)
	if err != nil {
		s.logger.Error("captcha.generate.failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.CaptchaPuzzle{}, err
	}
	return puzzle, nil
}

// CheckAnswer увеличивает счетчик попыток и классифицирует ответ.
// Блокировка проверяется раньше перегенерации: на 30-й попытке оба условия
// истинны, но заблокированный не должен получить еще одну капчу.
func (s *CaptchaService) CheckAnswer(state *domain.CaptchaState, answer string) CaptchaCheckResult {
	state.AttemptCount++

	if state.Answer == answer {
		return CaptchaCheckCorrect
	}

	switch {
	case state.AttemptCount >= captchaBlockThreshold:
		return CaptchaCheckBlock
	case state.AttemptCount%captchaUpdateEvery == 0:
		return CaptchaCheckUpdate
	default:
		return CaptchaCheckIncorrect
	}
}
