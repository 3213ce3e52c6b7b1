package dialogue_service

import (
	"context"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/services"
)

func (s *DialogueService) handleCaptcha(ctx context.Context, message domain.IncomingMessage, state domain.CaptchaState) domain.DialogueState {
	switch s.captcha.CheckAnswer(&state, message.Text) {
	case services.CaptchaCheckCorrect:
		s.sendText(ctx, message.ChatID, msgCaptchaCorrect)
		s.sendText(ctx, message.ChatID, msgFullNamePrompt)
		return domain.FullNameState{}

	case services.CaptchaCheckIncorrect:
		s.sendText(ctx, message.ChatID, msgCaptchaIncorrect)
		return state

	case services.CaptchaCheckUpdate:
		s.sendText(ctx, message.ChatID, msgCaptchaRegenerate)

		puzzle, err := s.captcha.NewPuzzle(ctx)
		if err != nil {
			s.sendText(ctx, message.ChatID, msgCaptchaFailed)
			return domain.ConsentState{}
		}
		if err := s.replyPort.SendPhoto(ctx, message.ChatID, puzzle.Image); err != nil {
			s.logger.Error("dialogue.captcha.send_failed", out.LogFields{
				"chatId": message.ChatID,
				"error":  err.Error(),
			})
			s.sendText(ctx, message.ChatID, msgCaptchaFailed)
			return domain.ConsentState{}
		}

		// Картинка новая, счетчик попыток сохраняется
		state.Answer = puzzle.Answer
		return state

	default: // services.CaptchaCheckBlock
		if err := s.enrolleePort.SetBanned(ctx, message.ChatID, true); err != nil {
			s.logger.Error("dialogue.ban.persist_failed", out.LogFields{
				"chatId": message.ChatID,
				"error":  err.Error(),
			})
		}
		s.logger.Warn("dialogue.enrollee.banned", out.LogFields{
			"chatId":   message.ChatID,
			"attempts": state.AttemptCount,
		})
		s.sendText(ctx, message.ChatID, msgBanned)
		return domain.BannedState{}
	}
}

func (s *DialogueService) handleBanned(ctx context.Context, message domain.IncomingMessage) domain.DialogueState {
	s.sendText(ctx, message.ChatID, msgBanned)
	return domain.BannedState{}
}
