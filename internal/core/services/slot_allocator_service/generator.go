package slot_allocator_service

import (
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
)

const timeLabelLayout = "15:04"

// Сколько ячеек сетки склеивается в один крупный промежуток
// на клавиатуре выбора интервала
const labelsPerInterval = 4

// gridLimit возвращает индекс последней генерируемой ячейки сетки.
// Расписание дня не имеет явного конца: сетка тянется до последней занятой
// ячейки плюс одна свободная за ней, чтобы хвост очереди всегда было куда расти.
func gridLimit(entry domain.ScheduleEntry, occupied map[string]int) int {
	if entry.Interval <= 0 {
		return 0
	}

	startMinutes := entry.StartTime.Hour()*60 + entry.StartTime.Minute()

	limit := 0
	for label, count := range occupied {
		if count <= 0 {
			continue
		}
		labelTime, err := time.Parse(timeLabelLayout, label)
		if err != nil {
			continue
		}
		// Метки вне сетки дня занятость не расширяют
		offset := labelTime.Hour()*60 + labelTime.Minute() - startMinutes
		if offset < 0 || offset%entry.Interval != 0 {
			continue
		}
		if k := offset/entry.Interval + 1; k > limit {
			limit = k
		}
	}
	return limit
}

func gridLabel(entry domain.ScheduleEntry, k int) string {
	return entry.StartTime.
		Add(time.Duration(k*entry.Interval) * time.Minute).
		Format(timeLabelLayout)
}

// generateLabels строит упорядоченный список доступных времен дня:
// все ячейки сетки с занятостью меньше maxEnrollee
func generateLabels(entry domain.ScheduleEntry, occupied map[string]int) []string {
	limit := gridLimit(entry, occupied)

	labels := make([]string, 0, limit+1)
	for k := 0; k <= limit; k++ {
		label := gridLabel(entry, k)
		if occupied[label] < entry.MaxEnrollee {
			labels = append(labels, label)
		}
	}
	return labels
}

// labelsBetween фильтрует сгенерированную последовательность до меток,
// лежащих в [firstTime, lastTime] включительно
func labelsBetween(labels []string, firstTime, lastTime time.Time) []string {
	filtered := make([]string, 0, len(labels))
	for _, label := range labels {
		labelTime, err := time.Parse(timeLabelLayout, label)
		if err != nil {
			continue
		}
		if labelTime.Before(firstTime) || labelTime.After(lastTime) {
			continue
		}
		filtered = append(filtered, label)
	}
	return filtered
}

// generateIntervals режет сетку дня на крупные промежутки для клавиатуры.
// Промежуток попадает в список, только если внутри есть хотя бы одна
// свободная ячейка.
func generateIntervals(entry domain.ScheduleEntry, occupied map[string]int) []string {
	limit := gridLimit(entry, occupied)

	intervals := make([]string, 0, limit/labelsPerInterval+1)
	for first := 0; first <= limit; first += labelsPerInterval {
		last := first + labelsPerInterval - 1
		if last > limit {
			last = limit
		}

		free := false
		for k := first; k <= last; k++ {
			if occupied[gridLabel(entry, k)] < entry.MaxEnrollee {
				free = true
				break
			}
		}
		if free {
			intervals = append(intervals, gridLabel(entry, first)+"-"+gridLabel(entry, last))
		}
	}
	return intervals
}
