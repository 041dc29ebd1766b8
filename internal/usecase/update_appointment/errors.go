package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrSlotNotAvailable возвращается, когда новый интервал пересекается с другой записью
	ErrSlotNotAvailable = errors.New("update_appointment: slot is not available")

	// ErrConcurrentUpdate возвращается, когда запись перенесли параллельным запросом
	ErrConcurrentUpdate = errors.New("update_appointment: appointment was modified concurrently")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
