package providers

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// RegisterRequest данные регистрации провайдера
type RegisterRequest struct {
	Name         string
	Title        string
	Specialty    string
	Email        string
	Phone        string
	Bio          *string
	WorkingHours *domain.WorkingHours // если не указано - domain.DefaultWorkingHours()
	SocialLinks  domain.SocialLinks
}

// validate проверяет обязательные поля
func (r *RegisterRequest) validate() error {
	v := domain.NewValidationError()

	if domain.Blank(r.Name) {
		v.Add("name", "is required")
	} else if len(r.Name) > domain.MaxNameLength {
		v.Add("name", "is too long")
	}
	if domain.Blank(r.Title) {
		v.Add("title", "is required")
	}
	if domain.Blank(r.Specialty) {
		v.Add("specialty", "is required")
	}
	if domain.Blank(r.Email) {
		v.Add("email", "is required")
	} else if !domain.ValidEmail(r.Email) {
		v.Add("email", "must be a valid email")
	}
	if domain.Blank(r.Phone) {
		v.Add("phone", "is required")
	}
	if r.Bio != nil && len(*r.Bio) > domain.MaxDescriptionLength {
		v.Add("bio", "is too long")
	}
	domain.ValidateWorkingHours(r.WorkingHours, "workingHours", v)

	return v.OrNil()
}

// validateUpdate проверяет переданные поля настроек; рейтинг меняется только через отзывы
func validateUpdate(u *domain.ProviderUpdate) error {
	v := domain.NewValidationError()

	if u.Name != nil && domain.Blank(*u.Name) {
		v.Add("name", "must not be empty")
	}
	if u.Email != nil && !domain.ValidEmail(*u.Email) {
		v.Add("email", "must be a valid email")
	}
	if u.Phone != nil && domain.Blank(*u.Phone) {
		v.Add("phone", "must not be empty")
	}
	if u.Rating != nil {
		v.Add("rating", "is computed from reviews")
	}
	if u.ReviewCount != nil {
		v.Add("reviewCount", "is computed from reviews")
	}
	domain.ValidateWorkingHours(u.WorkingHours, "workingHours", v)

	return v.OrNil()
}
