package timeslots

import "errors"

var (
	// ErrTimeSlotNotFound возвращается, когда шаблон слота не найден
	ErrTimeSlotNotFound = errors.New("time slot not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("timeslots: internal error")
)
