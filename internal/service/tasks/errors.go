package tasks

import "errors"

var (
	// ErrTaskNotFound возвращается, когда задача не найдена
	ErrTaskNotFound = errors.New("task not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tasks: internal error")
)
