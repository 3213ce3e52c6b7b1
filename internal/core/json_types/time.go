package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Time - время суток в файле расписания, "10:00:00" или "10:00"
type Time struct {
	Time time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04:05", str)
	if err != nil {
		// Пробуем формат без секунд, им пользуются кнопки клавиатуры
		parsedTime, err = time.Parse("15:04", str)
		if err != nil {
			return fmt.Errorf("failed to parse time: %v", err)
		}
	}
	*t = Time{Time: parsedTime}
	return nil
}

func (t Time) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04:05"))
}
