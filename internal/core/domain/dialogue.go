package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// DialogueState - закрытый набор состояний диалога с абитуриентом.
// На один чат в каждый момент существует ровно одно состояние,
// каждое хранит только свои данные.
type DialogueState interface {
	StateKind() DialogueKind
}

type DialogueKind string

const (
	DialogueKindBanned   DialogueKind = "banned"
	DialogueKindConsent  DialogueKind = "consent"
	DialogueKindCaptcha  DialogueKind = "captcha"
	DialogueKindFullName DialogueKind = "full_name"
	DialogueKindPhone    DialogueKind = "phone"
	DialogueKindDay      DialogueKind = "day"
	DialogueKindInterval DialogueKind = "interval"
	DialogueKindTime     DialogueKind = "time"
)

// BannedState - терминальное состояние, все сообщения получают фиксированный ответ
type BannedState struct{}

// ConsentState - начальное состояние, ожидание согласия на обработку данных
type ConsentState struct{}

// CaptchaState - ожидание ответа на капчу. AttemptCount растет монотонно
// и не сбрасывается при перегенерации картинки.
type CaptchaState struct {
	Answer       string `json:"answer"`
	AttemptCount int    `json:"attemptCount"`
}

// FullNameState - ожидание ФИО из трех слов
type FullNameState struct{}

// PhoneState - ожидание номера телефона, ФИО уже проверено по спискам
type PhoneState struct {
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	LastName   string `json:"lastName"`
}

// DayState - ожидание выбора дня записи
type DayState struct{}

// IntervalState - ожидание выбора промежутка времени внутри дня
type IntervalState struct {
	Date time.Time `json:"date"`
}

// TimeState - ожидание выбора конкретного времени внутри промежутка
type TimeState struct {
	Date      time.Time `json:"date"`
	FirstTime time.Time `json:"firstTime"`
	LastTime  time.Time `json:"lastTime"`
}

func (BannedState) StateKind() DialogueKind   { return DialogueKindBanned }
func (ConsentState) StateKind() DialogueKind  { return DialogueKindConsent }
func (CaptchaState) StateKind() DialogueKind  { return DialogueKindCaptcha }
func (FullNameState) StateKind() DialogueKind { return DialogueKindFullName }
func (PhoneState) StateKind() DialogueKind    { return DialogueKindPhone }
func (DayState) StateKind() DialogueKind      { return DialogueKindDay }
func (IntervalState) StateKind() DialogueKind { return DialogueKindInterval }
func (TimeState) StateKind() DialogueKind     { return DialogueKindTime }

// DefaultDialogueState - состояние нового чата и состояние после /restart
func DefaultDialogueState() DialogueState {
	return ConsentState{}
}

type dialogueEnvelope struct {
	Kind DialogueKind    `json:"kind"`
	Data json.RawMessage `json:"data,omitempty"`
}

// EncodeDialogueState сериализует состояние в конверт с тегом типа
func EncodeDialogueState(state DialogueState) ([]byte, error) {
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dialogue state: %w", err)
	}
	return json.Marshal(dialogueEnvelope{
		Kind: state.StateKind(),
		Data: data,
	})
}

// DecodeDialogueState восстанавливает состояние из конверта
func DecodeDialogueState(raw []byte) (DialogueState, error) {
	var envelope dialogueEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue envelope: %w", err)
	}

	switch envelope.Kind {
	case DialogueKindBanned:
		return BannedState{}, nil
	case DialogueKindConsent:
		return ConsentState{}, nil
	case DialogueKindCaptcha:
		state := CaptchaState{}
		if err := json.Unmarshal(envelope.Data, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dialogue state %q: %w", envelope.Kind, err)
		}
		return state, nil
	case DialogueKindFullName:
		return FullNameState{}, nil
	case DialogueKindPhone:
		state := PhoneState{}
		if err := json.Unmarshal(envelope.Data, &state); err != nil {
			return nil, fmt.Errorf("failed to unmarshal dialogue state %q: %w", envelope.Kind, err)
		}
		return state, nil
	case DialogueKindDay:
		return DayState{}, nil
	case DialogueKindInterval:
		return decodeInterval(envelope.Data)
	case DialogueKindTime:
		return decodeTime(envelope.Data)
	default:
		return nil, fmt.Errorf("unknown dialogue state kind: %q", envelope.Kind)
	}
}

func decodeInterval(data []byte) (DialogueState, error) {
	state := IntervalState{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue state %q: %w", DialogueKindInterval, err)
	}
	return state, nil
}

func decodeTime(data []byte) (DialogueState, error) {
	state := TimeState{}
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dialogue state %q: %w", DialogueKindTime, err)
	}
	return state, nil
}
