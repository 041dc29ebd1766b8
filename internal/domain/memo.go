package domain

import "time"

// MemoCategory groups provider notes
type MemoCategory string

const (
	MemoCategoryGeneral     MemoCategory = "general"
	MemoCategoryAppointment MemoCategory = "appointment"
	MemoCategoryClient      MemoCategory = "client"
	MemoCategoryPersonal    MemoCategory = "personal"
)

// IsValid returns true for a known category
func (c MemoCategory) IsValid() bool {
	for _, valid := range MemoCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// Memo is a provider's private note
type Memo struct {
	ID          int64
	ProviderID  int64
	Title       string
	Content     string
	Category    MemoCategory
	IsImportant bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MemoUpdate partial update; nil fields are left unchanged
type MemoUpdate struct {
	Title       *string
	Content     *string
	Category    *MemoCategory
	IsImportant *bool
}

// Apply merges the update into the memo and refreshes UpdatedAt
func (u *MemoUpdate) Apply(m *Memo, now time.Time) {
	if u.Title != nil {
		m.Title = *u.Title
	}
	if u.Content != nil {
		m.Content = *u.Content
	}
	if u.Category != nil {
		m.Category = *u.Category
	}
	if u.IsImportant != nil {
		m.IsImportant = *u.IsImportant
	}
	m.UpdatedAt = now
}
