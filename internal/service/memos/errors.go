package memos

import "errors"

var (
	// ErrMemoNotFound возвращается, когда заметка не найдена
	ErrMemoNotFound = errors.New("memo not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("memos: internal error")
)
