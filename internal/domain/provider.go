package domain

import (
	"slices"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// WorkingHours is a provider's weekly bookable window.
// Days holds weekday indexes, 0 = Sunday .. 6 = Saturday.
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
	Days  []int
}

// WorksOn returns true if the weekday is a working day
func (w *WorkingHours) WorksOn(weekday int) bool {
	return slices.Contains(w.Days, weekday)
}

// Clone returns a deep copy
func (w *WorkingHours) Clone() *WorkingHours {
	if w == nil {
		return nil
	}
	return &WorkingHours{
		Start: w.Start,
		End:   w.End,
		Days:  slices.Clone(w.Days),
	}
}

// DefaultWorkingHours returns the schedule assigned at registration when none is given
func DefaultWorkingHours() *WorkingHours {
	return &WorkingHours{
		Start: DefaultWorkingStart,
		End:   DefaultWorkingEnd,
		Days:  slices.Clone(DefaultWorkingDays),
	}
}

// SocialLinks optional public profile links/handles
type SocialLinks struct {
	Website   *string
	Instagram *string
	Twitter   *string
	LinkedIn  *string
	Facebook  *string
}

// Provider represents a professional who offers bookable services
type Provider struct {
	ID           int64
	Name         string
	Title        string
	Specialty    string
	Email        string
	Phone        string
	Bio          *string
	Rating       string // decimal "0.00".."5.00"
	ReviewCount  int
	IsActive     bool
	WorkingHours *WorkingHours
	SocialLinks  SocialLinks
}

// CanAcceptBookings returns true if the provider is active and has a schedule
func (p *Provider) CanAcceptBookings() bool {
	return p.IsActive && p.WorkingHours != nil
}

// Clone returns a deep copy so callers never share mutable state with the store
func (p *Provider) Clone() *Provider {
	c := *p
	c.WorkingHours = p.WorkingHours.Clone()
	return &c
}

// ProvidersFilter filter for provider search
type ProvidersFilter struct {
	Query     string // substring of name or specialty, case-insensitive
	Specialty string // exact specialty, case-insensitive
}

// ProviderUpdate partial update; nil fields are left unchanged
type ProviderUpdate struct {
	Name         *string
	Title        *string
	Specialty    *string
	Email        *string
	Phone        *string
	Bio          *string
	WorkingHours *WorkingHours
	SocialLinks  *SocialLinks
	Rating       *string
	ReviewCount  *int
	IsActive     *bool
}

// Apply merges the update into the provider
func (u *ProviderUpdate) Apply(p *Provider) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Specialty != nil {
		p.Specialty = *u.Specialty
	}
	if u.Email != nil {
		p.Email = *u.Email
	}
	if u.Phone != nil {
		p.Phone = *u.Phone
	}
	if u.Bio != nil {
		p.Bio = u.Bio
	}
	if u.WorkingHours != nil {
		p.WorkingHours = u.WorkingHours.Clone()
	}
	if u.SocialLinks != nil {
		p.SocialLinks = *u.SocialLinks
	}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	if u.ReviewCount != nil {
		p.ReviewCount = *u.ReviewCount
	}
	if u.IsActive != nil {
		p.IsActive = *u.IsActive
	}
}
