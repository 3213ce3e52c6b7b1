package domain

import (
	"sort"
	"time"
)

// ScheduleEntry - настройка одного дня записи: время начала,
// длина интервала в минутах и вместимость одной ячейки.
// После загрузки из конфигурации не меняется.
type ScheduleEntry struct {
	StartTime   time.Time
	Interval    int
	MaxEnrollee int
}

// ScheduleTable - расписание по дням, загружается один раз при старте.
type ScheduleTable struct {
	entries map[string]ScheduleEntry
}

const dateKeyLayout = "2006-01-02"

func NewScheduleTable(entries map[time.Time]ScheduleEntry) *ScheduleTable {
	table := &ScheduleTable{
		entries: make(map[string]ScheduleEntry, len(entries)),
	}
	for date, entry := range entries {
		table.entries[date.Format(dateKeyLayout)] = entry
	}
	return table
}

// Entry возвращает настройку дня или ErrScheduleNotFound,
// чтобы вызывающий мог отличить "нет расписания" от "все занято"
func (t *ScheduleTable) Entry(date time.Time) (ScheduleEntry, error) {
	entry, exists := t.entries[date.Format(dateKeyLayout)]
	if !exists {
		return ScheduleEntry{}, ErrScheduleNotFound
	}
	return entry, nil
}

// BookableDates возвращает отсортированные даты расписания начиная с текущей
func (t *ScheduleTable) BookableDates(now time.Time) []time.Time {
	currentDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	dates := make([]time.Time, 0, len(t.entries))
	for key := range t.entries {
		date, err := time.ParseInLocation(dateKeyLayout, key, now.Location())
		if err != nil {
			continue
		}
		if !date.Before(currentDay) {
			dates = append(dates, date)
		}
	}

	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

func (t *ScheduleTable) Len() int {
	return len(t.entries)
}
