package reviews

import "errors"

var (
	// ErrProviderNotFound возвращается при пересчете рейтинга несуществующего провайдера
	ErrProviderNotFound = errors.New("provider not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reviews: internal error")
)
