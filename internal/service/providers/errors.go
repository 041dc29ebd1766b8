package providers

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("provider not found")

	// ErrEmailTaken возвращается при регистрации с занятым email
	ErrEmailTaken = errors.New("provider with this email already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("providers: internal error")
)
