package services

import (
	"testing"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/ports/out"
)

type nopLogger struct{}

func (nopLogger) Debug(string, out.LogFields)               {}
func (nopLogger) Info(string, out.LogFields)                {}
func (nopLogger) Warn(string, out.LogFields)                {}
func (nopLogger) Error(string, out.LogFields)               {}
func (l nopLogger) WithFields(out.LogFields) out.LoggerPort { return l }
func (l nopLogger) WithModule(string) out.LoggerPort        { return l }

func TestCheckAnswerCorrect(t *testing.T) {
	t.Parallel()

	service := NewCaptchaService(nil, nopLogger{})
	state := domain.CaptchaState{Answer: "x7kq", AttemptCount: 4}

	if got := service.CheckAnswer(&state, "x7kq"); got != CaptchaCheckCorrect {
		t.Fatalf("got %q, want %q", got, CaptchaCheckCorrect)
	}
	if state.AttemptCount != 5 {
		t.Errorf("got attempt count %d, want 5", state.AttemptCount)
	}
}

func TestCheckAnswerEscalation(t *testing.T) {
	t.Parallel()

	service := NewCaptchaService(nil, nopLogger{})
	state := domain.CaptchaState{Answer: "x7kq"}

	// Попытки 1-29: каждая десятая дает перегенерацию, остальные - повтор
	for attempt := 1; attempt < 30; attempt++ {
		got := service.CheckAnswer(&state, "wrong")

		want := CaptchaCheckIncorrect
		if attempt%10 == 0 {
			want = CaptchaCheckUpdate
		}
		if got != want {
			t.Fatalf("attempt %d: got %q, want %q", attempt, got, want)
		}
	}

	// Тридцатая попытка кратна десяти, но блокировка важнее перегенерации
	if got := service.CheckAnswer(&state, "wrong"); got != CaptchaCheckBlock {
		t.Fatalf("attempt 30: got %q, want %q", got, CaptchaCheckBlock)
	}
	if state.AttemptCount != 30 {
		t.Errorf("got attempt count %d, want 30", state.AttemptCount)
	}
}

func TestCheckAnswerCounterSurvivesRegeneration(t *testing.T) {
	t.Parallel()

	service := NewCaptchaService(nil, nopLogger{})
	state := domain.CaptchaState{Answer: "old"}

	for attempt := 1; attempt <= 10; attempt++ {
		service.CheckAnswer(&state, "wrong")
	}

	// Новая картинка, но счетчик не обнуляется
	state.Answer = "new"
	if state.AttemptCount != 10 {
		t.Fatalf("got attempt count %d, want 10", state.AttemptCount)
	}

	if got := service.CheckAnswer(&state, "new"); got != CaptchaCheckCorrect {
		t.Fatalf("got %q, want %q", got, CaptchaCheckCorrect)
	}
}
