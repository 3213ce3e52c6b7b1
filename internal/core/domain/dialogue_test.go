package domain

import (
	"testing"
	"time"
)

func TestDialogueStateRoundTrip(t *testing.T) {
	t.Parallel()

	date := time.Date(2021, 8, 2, 0, 0, 0, 0, time.UTC)
	first := time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC)
	last := time.Date(0, 1, 1, 11, 30, 0, 0, time.UTC)

	states := []DialogueState{
		BannedState{},
		ConsentState{},
		CaptchaState{Answer: "x7kq", AttemptCount: 13},
		FullNameState{},
		PhoneState{Name: "Іван", Patronymic: "Іванович", LastName: "Іванов"},
		DayState{},
		IntervalState{Date: date},
		TimeState{Date: date, FirstTime: first, LastTime: last},
	}

	for _, state := range states {
		state := state
		t.Run(string(state.StateKind()), func(t *testing.T) {
			t.Parallel()

			raw, err := EncodeDialogueState(state)
			if err != nil {
				t.Fatalf("EncodeDialogueState() error: %v", err)
			}

			decoded, err := DecodeDialogueState(raw)
			if err != nil {
				t.Fatalf("DecodeDialogueState() error: %v", err)
			}

			if decoded.StateKind() != state.StateKind() {
				t.Fatalf("got kind %q, want %q", decoded.StateKind(), state.StateKind())
			}
		})
	}
}

func TestDialogueStateRoundTripKeepsData(t *testing.T) {
	t.Parallel()

	raw, err := EncodeDialogueState(CaptchaState{Answer: "abcd", AttemptCount: 9})
	if err != nil {
		t.Fatalf("EncodeDialogueState() error: %v", err)
	}

	decoded, err := DecodeDialogueState(raw)
	if err != nil {
		t.Fatalf("DecodeDialogueState() error: %v", err)
	}

	captcha, ok := decoded.(CaptchaState)
	if !ok {
		t.Fatalf("got %T, want CaptchaState", decoded)
	}
	if captcha.Answer != "abcd" {
		t.Errorf("got answer %q, want %q", captcha.Answer, "abcd")
	}
	if captcha.AttemptCount != 9 {
		t.Errorf("got attempt count %d, want 9", captcha.AttemptCount)
	}
}

func TestDecodeDialogueStateUnknownKind(t *testing.T) {
	t.Parallel()

	if _, err := DecodeDialogueState([]byte(`{"kind":"teleport","data":{}}`)); err == nil {
		t.Fatal("DecodeDialogueState() expected error for unknown kind")
	}
}

func TestDefaultDialogueState(t *testing.T) {
	t.Parallel()

	if kind := DefaultDialogueState().StateKind(); kind != DialogueKindConsent {
		t.Fatalf("got default kind %q, want %q", kind, DialogueKindConsent)
	}
}
