package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/utils"
)

// MemoryAdapter - хранилище в памяти процесса для локальной разработки
// и тестов. Контракты идентичны postgres-адаптеру: та же атомарность
// регистрации и тот же порядок очереди (дата, время, порядок вставки).
type MemoryAdapter struct {
	mu sync.Mutex

	enrollees   map[int64]*domain.Enrollee
	callNumbers map[int64]int64
	roster      map[string]struct{}
	bookings    []domain.Booking
	dialogues   map[int64][]byte
	nextCall    int64
	nextBookID  int64

	seq         int64
	subscribers []chan domain.QueueEvent
}

func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{
		enrollees:   make(map[int64]*domain.Enrollee),
		callNumbers: make(map[int64]int64),
		roster:      make(map[string]struct{}),
		dialogues:   make(map[int64][]byte),
	}
}

// AddToRoster пополняет список заявок приемной комиссии
func (m *MemoryAdapter) AddToRoster(lastName, name, patronymic string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.roster[rosterKey(lastName, name, patronymic)] = struct{}{}
}

func rosterKey(lastName, name, patronymic string) string {
	return strings.ToLower(fmt.Sprintf("%s|%s|%s", lastName, name, patronymic))
}

func (m *MemoryAdapter) IsValidEnrollee(ctx context.Context, lastName, name, patronymic string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.roster[rosterKey(lastName, name, patronymic)]
	return ok, nil
}

func (m *MemoryAdapter) UpsertEnrollee(ctx context.Context, enrollee domain.Enrollee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.enrollees[enrollee.ChatID]; ok {
		existing.Username = enrollee.Username
		existing.Name = enrollee.Name
		existing.Patronymic = enrollee.Patronymic
		existing.LastName = enrollee.LastName
		existing.PhoneNumber = enrollee.PhoneNumber
		return m.callNumbers[enrollee.ChatID], nil
	}

	m.nextCall++
	stored := enrollee
	m.enrollees[enrollee.ChatID] = &stored
	m.callNumbers[enrollee.ChatID] = m.nextCall

	return m.nextCall, nil
}

func (m *MemoryAdapter) GetEnrollee(ctx context.Context, chatID int64) (*domain.Enrollee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	enrollee, ok := m.enrollees[chatID]
	if !ok {
		return nil, domain.ErrEnrolleeNotFound
	}

	copied := *enrollee
	return &copied, nil
}

func (m *MemoryAdapter) SetBanned(ctx context.Context, chatID int64, banned bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	enrollee, ok := m.enrollees[chatID]
	if !ok {
		enrollee = &domain.Enrollee{ChatID: chatID}
		m.enrollees[chatID] = enrollee
	}
	enrollee.Banned = banned

	return nil
}

func (m *MemoryAdapter) ToggleNotifications(ctx context.Context, chatID int64) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	enrollee, ok := m.enrollees[chatID]
	if !ok {
		return false, domain.ErrEnrolleeNotFound
	}
	enrollee.Notifications = !enrollee.Notifications

	return enrollee.Notifications, nil
}

func (m *MemoryAdapter) CheckOccupied(ctx context.Context, date, slotTime time.Time, maxEnrollee int) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.bucketCount(date, slotTime) >= maxEnrollee, nil
}

func (m *MemoryAdapter) RegisterBooking(ctx context.Context, enrolleeID int64, date, slotTime time.Time, maxEnrollee int) (bool, error) {
	today := utils.StartCurrentDay(time.Now())
	if date.Before(today) {
		return false, domain.ErrInvalidSlot
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	replacedIdx := -1
	for i, b := range m.bookings {
		if b.EnrolleeID == enrolleeID {
			replacedIdx = i
			break
		}
	}

	// Своя запись в той же ячейке не считается при проверке вместимости
	count := 0
	for i, b := range m.bookings {
		if i != replacedIdx && sameDay(b.Date, date) && sameClock(b.Time, slotTime) {
			count++
		}
	}
	if count >= maxEnrollee {
		return false, domain.ErrSlotFull
	}

	if replacedIdx >= 0 {
		m.bookings = append(m.bookings[:replacedIdx], m.bookings[replacedIdx+1:]...)
	}

	m.nextBookID++
	m.bookings = append(m.bookings, domain.Booking{
		ID:         m.nextBookID,
		EnrolleeID: enrolleeID,
		Date:       date,
		Time:       slotTime,
	})

	m.broadcastLocked()

	return replacedIdx >= 0, nil
}

func (m *MemoryAdapter) QueuePosition(ctx context.Context, enrolleeID int64) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ordered := m.orderedLocked()
	for i, b := range ordered {
		if b.EnrolleeID == enrolleeID {
			return i, nil
		}
	}

	return 0, domain.ErrNotBooked
}

func (m *MemoryAdapter) OccupiedCounts(ctx context.Context, date time.Time) (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	counts := make(map[string]int)
	for _, b := range m.bookings {
		if sameDay(b.Date, date) {
			counts[b.Time.Format("15:04")]++
		}
	}

	return counts, nil
}

func (m *MemoryAdapter) GetDialogue(ctx context.Context, chatID int64) (domain.DialogueState, error) {
	m.mu.Lock()
	raw, ok := m.dialogues[chatID]
	m.mu.Unlock()

	if !ok {
		return nil, nil
	}

	return domain.DecodeDialogueState(raw)
}

func (m *MemoryAdapter) UpdateDialogue(ctx context.Context, chatID int64, state domain.DialogueState) error {
	raw, err := domain.EncodeDialogueState(state)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.dialogues[chatID] = raw
	m.mu.Unlock()

	return nil
}

func (m *MemoryAdapter) RemoveDialogue(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	delete(m.dialogues, chatID)
	m.mu.Unlock()

	return nil
}

func (m *MemoryAdapter) Subscribe(ctx context.Context) (<-chan domain.QueueEvent, error) {
	events := make(chan domain.QueueEvent, 64)

	m.mu.Lock()
	m.subscribers = append(m.subscribers, events)
	m.mu.Unlock()

	go func() {
		<-ctx.Done()

		m.mu.Lock()
		for i, sub := range m.subscribers {
			if sub == events {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				break
			}
		}
		m.mu.Unlock()

		close(events)
	}()

	return events, nil
}

func (m *MemoryAdapter) broadcastLocked() {
	ordered := m.orderedLocked()
	for position, b := range ordered {
		m.seq++
		event := domain.QueueEvent{
			ID:         uuid.New(),
			EnrolleeID: b.EnrolleeID,
			Position:   position,
			Seq:        m.seq,
		}

		for _, sub := range m.subscribers {
			select {
			case sub <- event:
			default:
				// Подписчик не успевает, событие устареет и так
			}
		}
	}
}

func (m *MemoryAdapter) orderedLocked() []domain.Booking {
	ordered := make([]domain.Booking, len(m.bookings))
	copy(ordered, m.bookings)

	sort.SliceStable(ordered, func(i, j int) bool {
		di, dj := dayOf(ordered[i].Date), dayOf(ordered[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		ci, cj := clockOf(ordered[i].Time), clockOf(ordered[j].Time)
		if ci != cj {
			return ci < cj
		}
		return ordered[i].ID < ordered[j].ID
	})

	return ordered
}

func (m *MemoryAdapter) bucketCount(date, slotTime time.Time) int {
	count := 0
	for _, b := range m.bookings {
		if sameDay(b.Date, date) && sameClock(b.Time, slotTime) {
			count++
		}
	}
	return count
}

func sameDay(a, b time.Time) bool {
	return dayOf(a).Equal(dayOf(b))
}

func sameClock(a, b time.Time) bool {
	return clockOf(a) == clockOf(b)
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clockOf(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
