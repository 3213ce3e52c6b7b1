package slot_allocator_service

import (
	"testing"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

func clock(h, m int) time.Time {
	return time.Date(0, 1, 1, h, m, 0, 0, time.UTC)
}

func testEntry() domain.ScheduleEntry {
	return domain.ScheduleEntry{
		StartTime:   clock(10, 0),
		Interval:    30,
		MaxEnrollee: 2,
	}
}

func TestGenerateLabelsEmptyDay(t *testing.T) {
	t.Parallel()

	// Пустой день - одна свободная ячейка на старте
	labels := generateLabels(testEntry(), map[string]int{})

	want := []string{"10:00"}
	if len(labels) != 1 || labels[0] != want[0] {
		t.Fatalf("got %v, want %v", labels, want)
	}
}

func TestGenerateLabelsGrowsPastLastOccupied(t *testing.T) {
	t.Parallel()

	// Последняя занятая ячейка 11:00 - сетка тянется до 11:30
	labels := generateLabels(testEntry(), map[string]int{
		"10:00": 1,
		"11:00": 1,
	})

	want := []string{"10:00", "10:30", "11:00", "11:30"}
	if len(labels) != len(want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}
}

func TestGenerateLabelsSkipsFullCells(t *testing.T) {
	t.Parallel()

	entry := testEntry()
	labels := generateLabels(entry, map[string]int{
		"10:00": 2, // заполнена до maxEnrollee
		"10:30": 1,
	})

	for _, label := range labels {
		if label == "10:00" {
			t.Fatalf("full cell 10:00 present in %v", labels)
		}
	}

	want := []string{"10:30", "11:00"}
	if len(labels) != len(want) {
		t.Fatalf("got %v, want %v", labels, want)
	}
}

func TestGridLimitIgnoresOffGridLabels(t *testing.T) {
	t.Parallel()

	// Метки раньше старта и не кратные интервалу не расширяют сетку
	limit := gridLimit(testEntry(), map[string]int{
		"09:00": 3,
		"10:17": 2,
		"10:30": 1,
	})

	if limit != 2 {
		t.Fatalf("got limit %d, want 2", limit)
	}
}

func TestLabelsBetweenInclusive(t *testing.T) {
	t.Parallel()

	labels := []string{"10:00", "10:30", "11:00", "11:30", "12:00"}
	filtered := labelsBetween(labels, clock(10, 30), clock(11, 30))

	want := []string{"10:30", "11:00", "11:30"}
	if len(filtered) != len(want) {
		t.Fatalf("got %v, want %v", filtered, want)
	}
	for i := range want {
		if filtered[i] != want[i] {
			t.Errorf("filtered[%d] = %q, want %q", i, filtered[i], want[i])
		}
	}
}

func TestGenerateIntervals(t *testing.T) {
	t.Parallel()

	// Занятость до 12:30 дает сетку из семи ячеек: 10:00..13:00.
	// Первая четверка вся занята и выпадает из списка.
	entry := testEntry()
	occupied := map[string]int{
		"10:00": 2, "10:30": 2, "11:00": 2, "11:30": 2,
		"12:30": 1,
	}

	intervals := generateIntervals(entry, occupied)

	want := []string{"12:00-13:00"}
	if len(intervals) != len(want) {
		t.Fatalf("got %v, want %v", intervals, want)
	}
	if intervals[0] != want[0] {
		t.Errorf("got %q, want %q", intervals[0], want[0])
	}
}

func TestGenerateIntervalsChunksOfFour(t *testing.T) {
	t.Parallel()

	// Девять ячеек: две полные четверки и хвост из одной
	entry := testEntry()
	occupied := map[string]int{"14:00": 1}

	intervals := generateIntervals(entry, occupied)

	want := []string{"10:00-11:30", "12:00-13:30", "14:00-14:00"}
	if len(intervals) != len(want) {
		t.Fatalf("got %v, want %v", intervals, want)
	}
	for i := range want {
		if intervals[i] != want[i] {
			t.Errorf("intervals[%d] = %q, want %q", i, intervals[i], want[i])
		}
	}
}
