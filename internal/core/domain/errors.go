package domain

import "errors"

// Ошибки ядра. Проверяются через errors.Is на границе хендлеров диалога,
// наружу до пользователя доходят только локализованные сообщения.
var (
	// ErrScheduleNotFound - на запрошенную дату нет расписания
	ErrScheduleNotFound = errors.New("schedule entry not found")

	// ErrSlotFull - в выбранной ячейке уже max_enrollee записей
	ErrSlotFull = errors.New("slot is full")

	// ErrInvalidSlot - запись на прошедшую дату или время
	ErrInvalidSlot = errors.New("slot is in the past")

	// ErrNotBooked - у абитуриента нет активной записи в очереди
	ErrNotBooked = errors.New("enrollee is not booked")

	// ErrEnrolleeNotFound - абитуриент не найден
	ErrEnrolleeNotFound = errors.New("enrollee not found")
)
