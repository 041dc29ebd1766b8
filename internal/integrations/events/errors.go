package events

import "errors"

var (
	// ErrInvalidEvent возвращается для события без записи
	ErrInvalidEvent = errors.New("events: invalid event")

	// ErrPublish возвращается при ошибке отправки в брокер
	ErrPublish = errors.New("events: publish failed")
)
