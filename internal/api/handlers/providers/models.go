package providers

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	providersService "github.com/m04kA/SMC-AppointmentService/internal/service/providers"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WorkingHoursJSON рабочие часы в формате API
type WorkingHoursJSON struct {
	Start string `json:"start"`
	End   string `json:"end"`
	Days  []int  `json:"days"`
}

// SocialLinksJSON ссылки на профили
type SocialLinksJSON struct {
	Website   *string `json:"website,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Twitter   *string `json:"twitter,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
}

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Specialty    string            `json:"specialty"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Bio          *string           `json:"bio"`
	Rating       string            `json:"rating"`
	ReviewCount  int               `json:"reviewCount"`
	IsActive     bool              `json:"isActive"`
	WorkingHours *WorkingHoursJSON `json:"workingHours"`
	SocialLinks  SocialLinksJSON   `json:"socialLinks"`
}

// RegisterProviderRequest HTTP request model
type RegisterProviderRequest struct {
	Name         string            `json:"name"`
	Title        string            `json:"title"`
	Specialty    string            `json:"specialty"`
	Email        string            `json:"email"`
	Phone        string            `json:"phone"`
	Bio          *string           `json:"bio,omitempty"`
	WorkingHours *WorkingHoursJSON `json:"workingHours,omitempty"`
	SocialLinks  *SocialLinksJSON  `json:"socialLinks,omitempty"`
}

// UpdateProviderRequest HTTP request model; отсутствующие поля не меняются
type UpdateProviderRequest struct {
	Name         *string           `json:"name,omitempty"`
	Title        *string           `json:"title,omitempty"`
	Specialty    *string           `json:"specialty,omitempty"`
	Email        *string           `json:"email,omitempty"`
	Phone        *string           `json:"phone,omitempty"`
	Bio          *string           `json:"bio,omitempty"`
	WorkingHours *WorkingHoursJSON `json:"workingHours,omitempty"`
	SocialLinks  *SocialLinksJSON  `json:"socialLinks,omitempty"`
	IsActive     *bool             `json:"isActive,omitempty"`
	Rating       *string           `json:"rating,omitempty"`
	ReviewCount  *int              `json:"reviewCount,omitempty"`
}

func (w *WorkingHoursJSON) toDomain() *domain.WorkingHours {
	if w == nil {
		return nil
	}
	return &domain.WorkingHours{
		Start: types.TimeString(w.Start),
		End:   types.TimeString(w.End),
		Days:  w.Days,
	}
}

func (s *SocialLinksJSON) toDomain() domain.SocialLinks {
	if s == nil {
		return domain.SocialLinks{}
	}
	return domain.SocialLinks{
		Website:   s.Website,
		Instagram: s.Instagram,
		Twitter:   s.Twitter,
		LinkedIn:  s.LinkedIn,
		Facebook:  s.Facebook,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterProviderRequest) ToServiceRequest() *providersService.RegisterRequest {
	return &providersService.RegisterRequest{
		Name:         r.Name,
		Title:        r.Title,
		Specialty:    r.Specialty,
		Email:        r.Email,
		Phone:        r.Phone,
		Bio:          r.Bio,
		WorkingHours: r.WorkingHours.toDomain(),
		SocialLinks:  r.SocialLinks.toDomain(),
	}
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateProviderRequest) ToDomainUpdate() *domain.ProviderUpdate {
	u := &domain.ProviderUpdate{
		Name:         r.Name,
		Title:        r.Title,
		Specialty:    r.Specialty,
		Email:        r.Email,
		Phone:        r.Phone,
		Bio:          r.Bio,
		WorkingHours: r.WorkingHours.toDomain(),
		IsActive:     r.IsActive,
		Rating:       r.Rating,
		ReviewCount:  r.ReviewCount,
	}
	if r.SocialLinks != nil {
		links := r.SocialLinks.toDomain()
		u.SocialLinks = &links
	}
	return u
}

// FromDomain конвертирует провайдера в HTTP модель
func FromDomain(p *domain.Provider) *ProviderResponse {
	resp := &ProviderResponse{
		ID:          p.ID,
		Name:        p.Name,
		Title:       p.Title,
		Specialty:   p.Specialty,
		Email:       p.Email,
		Phone:       p.Phone,
		Bio:         p.Bio,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		IsActive:    p.IsActive,
		SocialLinks: SocialLinksJSON{
			Website:   p.SocialLinks.Website,
			Instagram: p.SocialLinks.Instagram,
			Twitter:   p.SocialLinks.Twitter,
			LinkedIn:  p.SocialLinks.LinkedIn,
			Facebook:  p.SocialLinks.Facebook,
		},
	}
	if p.WorkingHours != nil {
		days := p.WorkingHours.Days
		if days == nil {
			days = []int{}
		}
		resp.WorkingHours = &WorkingHoursJSON{
			Start: p.WorkingHours.Start.String(),
			End:   p.WorkingHours.End.String(),
			Days:  days,
		}
	}
	return resp
}

// FromDomainList конвертирует список провайдеров
func FromDomainList(list []*domain.Provider) []*ProviderResponse {
	result := make([]*ProviderResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromDomain(p))
	}
	return result
}
