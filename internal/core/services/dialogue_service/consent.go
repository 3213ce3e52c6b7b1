package dialogue_service

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

func (s *DialogueService) handleConsent(ctx context.Context, message domain.IncomingMessage, state domain.ConsentState) domain.DialogueState {
	if message.Text != buttonAgree {
		s.send(ctx, message.ChatID, msgConsentPrompt, s.agreeKeyboard())
		return state
	}

	if err := s.replyPort.SendTextRemoveKeyboard(ctx, message.ChatID, msgCaptchaEnter); err != nil {
		s.logger.Error("dialogue.reply.failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
	}

	puzzle, err := s.captcha.NewPuzzle(ctx)
	if err != nil {
		// Сломанный генератор капчи бессмысленно ретраить - возврат в начало
		s.sendText(ctx, message.ChatID, msgCaptchaFailed)
		return state
	}

	if err := s.replyPort.SendPhoto(ctx, message.ChatID, puzzle.Image); err != nil {
		s.logger.Error("dialogue.captcha.send_failed", out.LogFields{
			"chatId": message.ChatID,
			"error":  err.Error(),
		})
		s.sendText(ctx, message.ChatID, msgCaptchaFailed)
		return state
	}

	return domain.CaptchaState{Answer: puzzle.Answer}
}
