package memos

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	memosService "github.com/m04kA/SMC-AppointmentService/internal/service/memos"
)

// MemoResponse HTTP response model
type MemoResponse struct {
	ID          int64  `json:"id"`
	ProviderID  int64  `json:"providerId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Category    string `json:"category"`
	IsImportant bool   `json:"isImportant"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// CreateMemoRequest HTTP request model
type CreateMemoRequest struct {
	ProviderID  int64   `json:"providerId"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	Category    *string `json:"category,omitempty"`
	IsImportant bool    `json:"isImportant"`
}

// UpdateMemoRequest HTTP request model; отсутствующие поля не меняются
type UpdateMemoRequest struct {
	Title       *string `json:"title,omitempty"`
	Content     *string `json:"content,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsImportant *bool   `json:"isImportant,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMemoRequest) ToServiceRequest() *memosService.CreateRequest {
	return &memosService.CreateRequest{
		ProviderID:  r.ProviderID,
		Title:       r.Title,
		Content:     r.Content,
		Category:    r.Category,
		IsImportant: r.IsImportant,
	}
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateMemoRequest) ToDomainUpdate() *domain.MemoUpdate {
	u := &domain.MemoUpdate{
		Title:       r.Title,
		Content:     r.Content,
		IsImportant: r.IsImportant,
	}
	if r.Category != nil {
		category := domain.MemoCategory(*r.Category)
		u.Category = &category
	}
	return u
}

// FromDomain конвертирует заметку в HTTP модель
func FromDomain(m *domain.Memo) *MemoResponse {
	return &MemoResponse{
		ID:          m.ID,
		ProviderID:  m.ProviderID,
		Title:       m.Title,
		Content:     m.Content,
		Category:    string(m.Category),
		IsImportant: m.IsImportant,
		CreatedAt:   m.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   m.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
