package domain

// Service represents a bookable offering owned by a provider
type Service struct {
	ID          int64
	ProviderID  int64
	Name        string
	Description *string
	Duration    int    // minutes
	Price       string // decimal, 2 fraction digits
	IsActive    bool
}

// BelongsTo returns true if the service is owned by the provider
func (s *Service) BelongsTo(providerID int64) bool {
	return s.ProviderID == providerID
}

// ServiceUpdate partial update; nil fields are left unchanged
type ServiceUpdate struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *string
	IsActive    *bool
}

// Apply merges the update into the service
func (u *ServiceUpdate) Apply(s *Service) {
	if u.Name != nil {
		s.Name = *u.Name
	}
	if u.Description != nil {
		s.Description = u.Description
	}
	if u.Duration != nil {
		s.Duration = *u.Duration
	}
	if u.Price != nil {
		s.Price = *u.Price
	}
	if u.IsActive != nil {
		s.IsActive = *u.IsActive
	}
}
