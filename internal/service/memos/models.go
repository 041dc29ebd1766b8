package memos

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// CreateRequest данные новой заметки
type CreateRequest struct {
	ProviderID  int64
	Title       string
	Content     string
	Category    *string // по умолчанию general
	IsImportant bool
}

func (r *CreateRequest) validate() error {
	v := domain.NewValidationError()

	if r.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	if domain.Blank(r.Title) {
		v.Add("title", "is required")
	}
	if domain.Blank(r.Content) {
		v.Add("content", "is required")
	}
	if r.Category != nil && !domain.MemoCategory(*r.Category).IsValid() {
		v.Add("category", "must be one of general, appointment, client, personal")
	}

	return v.OrNil()
}

func validateUpdate(u *domain.MemoUpdate) error {
	v := domain.NewValidationError()

	if u.Title != nil && domain.Blank(*u.Title) {
		v.Add("title", "must not be empty")
	}
	if u.Content != nil && domain.Blank(*u.Content) {
		v.Add("content", "must not be empty")
	}
	if u.Category != nil && !u.Category.IsValid() {
		v.Add("category", "must be one of general, appointment, client, personal")
	}

	return v.OrNil()
}
