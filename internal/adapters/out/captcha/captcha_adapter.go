package captcha

import (
	"bytes"
	"context"

	"github.com/steambap/captcha"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

const (
	imageWidth  = 150
	imageHeight = 50
)

// CaptchaAdapter генерирует png-картинку с кодом для проверки на бота
type CaptchaAdapter struct {
	logger out.LoggerPort
}

func NewCaptchaAdapter(logger out.LoggerPort) *CaptchaAdapter {
	return &CaptchaAdapter{
		logger: logger.WithModule("CaptchaAdapter"),
	}
}

func (a *CaptchaAdapter) Generate(ctx context.Context) (domain.CaptchaPuzzle, error) {
	data, err := captcha.New(imageWidth, imageHeight)
	if err != nil {
		a.logger.Error("captcha.generate.failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.CaptchaPuzzle{}, err
	}

	var buf bytes.Buffer
	if err := data.WriteImage(&buf); err != nil {
		a.logger.Error("captcha.encode.failed", out.LogFields{
			"error": err.Error(),
		})
		return domain.CaptchaPuzzle{}, err
	}

	return domain.CaptchaPuzzle{
		Answer: data.Text,
		Image:  buf.Bytes(),
	}, nil
}
