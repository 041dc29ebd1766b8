package delete_appointment

// Request модель запроса на удаление записи
type Request struct {
	ID int64
}
