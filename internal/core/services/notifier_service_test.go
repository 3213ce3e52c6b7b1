package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

type fakeEnrolleePort struct {
	enrollees map[int64]*domain.Enrollee
}

func (f *fakeEnrolleePort) IsValidEnrollee(context.Context, string, string, string) (bool, error) {
	return false, nil
}

func (f *fakeEnrolleePort) UpsertEnrollee(context.Context, domain.Enrollee) (int64, error) {
	return 0, nil
}

func (f *fakeEnrolleePort) GetEnrollee(_ context.Context, chatID int64) (*domain.Enrollee, error) {
	enrollee, ok := f.enrollees[chatID]
	if !ok {
		return nil, domain.ErrEnrolleeNotFound
	}
	return enrollee, nil
}

func (f *fakeEnrolleePort) SetBanned(context.Context, int64, bool) error { return nil }

func (f *fakeEnrolleePort) ToggleNotifications(context.Context, int64) (bool, error) {
	return false, nil
}

type fakeReplyPort struct {
	mu       sync.Mutex
	sent     []string
	failures int
}

func (f *fakeReplyPort) SendText(_ context.Context, _ int64, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failures > 0 {
		f.failures--
		return errors.New("telegram unavailable")
	}
	f.sent = append(f.sent, text)
	return nil
}

func (f *fakeReplyPort) SendTextWithKeyboard(context.Context, int64, string, [][]string) error {
	return nil
}

func (f *fakeReplyPort) SendTextRemoveKeyboard(context.Context, int64, string) error { return nil }
func (f *fakeReplyPort) SendPhoto(context.Context, int64, []byte) error              { return nil }
func (f *fakeReplyPort) SendAndPin(context.Context, int64, string) error             { return nil }

func (f *fakeReplyPort) sentMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

func subscribedEnrollee(chatID int64) *domain.Enrollee {
	return &domain.Enrollee{ChatID: chatID, Notifications: true}
}

func event(enrolleeID int64, position int, seq int64) domain.QueueEvent {
	return domain.QueueEvent{
		ID:         uuid.New(),
		EnrolleeID: enrolleeID,
		Position:   position,
		Seq:        seq,
	}
}

func TestHandleQueueEventDelivers(t *testing.T) {
	t.Parallel()

	enrollees := &fakeEnrolleePort{enrollees: map[int64]*domain.Enrollee{
		42: subscribedEnrollee(42),
	}}
	reply := &fakeReplyPort{}
	service := NewNotifierService(nil, enrollees, reply, 3, nopLogger{})

	service.HandleQueueEvent(context.Background(), event(42, 3, 1))
	service.HandleQueueEvent(context.Background(), event(42, 0, 2))

	sent := reply.sentMessages()
	if len(sent) != 2 {
		t.Fatalf("got %d messages, want 2: %v", len(sent), sent)
	}
	if sent[0] != "Перед вами в черзі перебуває 3 людина(-и, -ей)" {
		t.Errorf("unexpected rank message: %q", sent[0])
	}
	if sent[1] != "Підійшла ваша черга!" {
		t.Errorf("unexpected head-of-queue message: %q", sent[1])
	}
}

func TestHandleQueueEventSkipsStale(t *testing.T) {
	t.Parallel()

	enrollees := &fakeEnrolleePort{enrollees: map[int64]*domain.Enrollee{
		42: subscribedEnrollee(42),
	}}
	reply := &fakeReplyPort{}
	service := NewNotifierService(nil, enrollees, reply, 3, nopLogger{})

	service.HandleQueueEvent(context.Background(), event(42, 1, 5))
	// Событие с меньшим Seq пришло с опозданием
	service.HandleQueueEvent(context.Background(), event(42, 7, 3))

	if sent := reply.sentMessages(); len(sent) != 1 {
		t.Fatalf("got %d messages, want 1: %v", len(sent), sent)
	}
}

func TestHandleQueueEventSkipsUnsubscribed(t *testing.T) {
	t.Parallel()

	enrollees := &fakeEnrolleePort{enrollees: map[int64]*domain.Enrollee{
		42: {ChatID: 42, Notifications: false},
		43: {ChatID: 43, Notifications: true, Banned: true},
	}}
	reply := &fakeReplyPort{}
	service := NewNotifierService(nil, enrollees, reply, 3, nopLogger{})

	service.HandleQueueEvent(context.Background(), event(42, 1, 1))
	service.HandleQueueEvent(context.Background(), event(43, 1, 1))
	// Неизвестный абитуриент тоже не получает сообщений
	service.HandleQueueEvent(context.Background(), event(99, 1, 1))

	if sent := reply.sentMessages(); len(sent) != 0 {
		t.Fatalf("got %d messages, want 0: %v", len(sent), sent)
	}
}

func TestHandleQueueEventRetriesDelivery(t *testing.T) {
	t.Parallel()

	enrollees := &fakeEnrolleePort{enrollees: map[int64]*domain.Enrollee{
		42: subscribedEnrollee(42),
	}}
	reply := &fakeReplyPort{failures: 2}
	service := NewNotifierService(nil, enrollees, reply, 3, nopLogger{})

	service.HandleQueueEvent(context.Background(), event(42, 1, 1))

	if sent := reply.sentMessages(); len(sent) != 1 {
		t.Fatalf("got %d messages after retries, want 1: %v", len(sent), sent)
	}
}

func TestHandleQueueEventDropsAfterMaxAttempts(t *testing.T) {
	t.Parallel()

	enrollees := &fakeEnrolleePort{enrollees: map[int64]*domain.Enrollee{
		42: subscribedEnrollee(42),
	}}
	reply := &fakeReplyPort{failures: 3}
	service := NewNotifierService(nil, enrollees, reply, 3, nopLogger{})

	service.HandleQueueEvent(context.Background(), event(42, 1, 1))

	if sent := reply.sentMessages(); len(sent) != 0 {
		t.Fatalf("got %d messages, want 0: %v", len(sent), sent)
	}

	// Потерянное событие не должно блокировать следующие
	service.HandleQueueEvent(context.Background(), event(42, 2, 2))
	if sent := reply.sentMessages(); len(sent) != 1 {
		t.Fatalf("got %d messages, want 1: %v", len(sent), sent)
	}
}
