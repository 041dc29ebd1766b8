package catalog

import "github.com/m04kA/SMC-AppointmentService/internal/domain"

// CreateRequest данные новой услуги
type CreateRequest struct {
	ProviderID  int64
	Name        string
	Description *string
	Duration    int
	Price       string
}

func (r *CreateRequest) validate() error {
	v := domain.NewValidationError()

	if r.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	if domain.Blank(r.Name) {
		v.Add("name", "is required")
	} else if len(r.Name) > domain.MaxNameLength {
		v.Add("name", "is too long")
	}
	validateDuration(r.Duration, v)
	if _, ok := domain.NormalizePrice(r.Price); !ok {
		v.Add("price", "must be a non-negative decimal with up to 2 fraction digits")
	}
	if r.Description != nil && len(*r.Description) > domain.MaxDescriptionLength {
		v.Add("description", "is too long")
	}

	return v.OrNil()
}

func validateUpdate(u *domain.ServiceUpdate) error {
	v := domain.NewValidationError()

	if u.Name != nil && domain.Blank(*u.Name) {
		v.Add("name", "must not be empty")
	}
	if u.Duration != nil {
		validateDuration(*u.Duration, v)
	}
	if u.Price != nil {
		if _, ok := domain.NormalizePrice(*u.Price); !ok {
			v.Add("price", "must be a non-negative decimal with up to 2 fraction digits")
		}
	}

	return v.OrNil()
}

func validateDuration(d int, v *domain.ValidationError) {
	if d <= 0 {
		v.Add("duration", "must be positive")
	} else if d > domain.MaxServiceDuration {
		v.Add("duration", "must fit in a day")
	}
}
