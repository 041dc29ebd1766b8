package delete_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = errors.New("delete_appointment: appointment not found")

	// ErrInvalidInput возвращается при некорректном id
	ErrInvalidInput = errors.New("delete_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_appointment: internal error")
)
