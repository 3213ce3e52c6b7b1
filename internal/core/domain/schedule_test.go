package domain

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleTableEntry(t *testing.T) {
	t.Parallel()

	table := NewScheduleTable(map[time.Time]ScheduleEntry{
		day(2021, 8, 2): {Interval: 30, MaxEnrollee: 50},
	})

	entry, err := table.Entry(day(2021, 8, 2))
	if err != nil {
		t.Fatalf("Entry() error: %v", err)
	}
	if entry.MaxEnrollee != 50 {
		t.Errorf("got maxEnrollee %d, want 50", entry.MaxEnrollee)
	}

	// Время внутри даты не влияет на поиск дня
	if _, err := table.Entry(time.Date(2021, 8, 2, 15, 30, 0, 0, time.UTC)); err != nil {
		t.Errorf("Entry() with clock error: %v", err)
	}

	if _, err := table.Entry(day(2021, 8, 3)); !errors.Is(err, ErrScheduleNotFound) {
		t.Fatalf("got error %v, want ErrScheduleNotFound", err)
	}
}

func TestScheduleTableBookableDates(t *testing.T) {
	t.Parallel()

	table := NewScheduleTable(map[time.Time]ScheduleEntry{
		day(2021, 8, 1): {},
		day(2021, 8, 2): {},
		day(2021, 8, 5): {},
	})

	// Прошедшие дни выпадают, текущий день остается даже вечером
	now := time.Date(2021, 8, 2, 23, 30, 0, 0, time.UTC)
	dates := table.BookableDates(now)

	want := []time.Time{day(2021, 8, 2), day(2021, 8, 5)}
	if len(dates) != len(want) {
		t.Fatalf("got %d dates, want %d: %v", len(dates), len(want), dates)
	}
	for i := range want {
		if !dates[i].Equal(want[i]) {
			t.Errorf("dates[%d] = %v, want %v", i, dates[i], want[i])
		}
	}
}
