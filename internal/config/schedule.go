package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/suchimauz/enrollee-queue-bot/internal/core/domain"
	"github.com/suchimauz/enrollee-queue-bot/internal/core/json_types"
)

// ScheduleFileEntry - одна дата приёма абитуриентов
type ScheduleFileEntry struct {
	Date        json_types.Date `json:"date"`
	StartTime   json_types.Time `json:"start_time"`
	Interval    int             `json:"interval"`
	MaxEnrollee int             `json:"max_enrollee"`
}

// ScheduleFile - файл конфигурации расписания приёма
// Post - текст закреплённого сообщения после регистрации (может быть пустым)
type ScheduleFile struct {
	Post     string              `json:"post"`
	Schedule []ScheduleFileEntry `json:"schedule"`
}

// LoadScheduleFile читает расписание из json-файла
// Если файла нет - создаёт его с расписанием по умолчанию
func LoadScheduleFile(path string) (*ScheduleFile, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return writeDefaultScheduleFile(path)
	}
	if err != nil {
		return nil, err
	}

	file := &ScheduleFile{}
	if err := json.Unmarshal(data, file); err != nil {
		return nil, err
	}

	return file, nil
}

func writeDefaultScheduleFile(path string) (*ScheduleFile, error) {
	file := defaultScheduleFile()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, err
	}

	return file, nil
}

func defaultScheduleFile() *ScheduleFile {
	date, _ := time.Parse("2006-01-02", "2021-08-01")
	startTime, _ := time.Parse("15:04:05", "10:00:00")

	return &ScheduleFile{
		Schedule: []ScheduleFileEntry{
			{
				Date:        json_types.Date{Date: date},
				StartTime:   json_types.Time{Time: startTime},
				Interval:    30,
				MaxEnrollee: 50,
			},
		},
	}
}

// Table собирает доменное расписание из файла конфигурации
func (f *ScheduleFile) Table() *domain.ScheduleTable {
	entries := make(map[time.Time]domain.ScheduleEntry, len(f.Schedule))
	for _, e := range f.Schedule {
		entries[e.Date.Date] = domain.ScheduleEntry{
			StartTime:   e.StartTime.Time,
			Interval:    e.Interval,
			MaxEnrollee: e.MaxEnrollee,
		}
	}

	return domain.NewScheduleTable(entries)
}
