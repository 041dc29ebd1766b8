package create_appointment

import "errors"

var (
	// ErrSlotNotAvailable возвращается, когда интервал пересекается с блокирующей записью
	ErrSlotNotAvailable = errors.New("create_appointment: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
