package tasks

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	tasksService "github.com/m04kA/SMC-AppointmentService/internal/service/tasks"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TaskResponse HTTP response model
type TaskResponse struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"providerId"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
	Priority    string  `json:"priority"`
	DueDate     *string `json:"dueDate"`
	AssignedTo  *string `json:"assignedTo"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
	CompletedAt *string `json:"completedAt"`
}

// CreateTaskRequest HTTP request model
type CreateTaskRequest struct {
	ProviderID  int64   `json:"providerId"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
}

// UpdateTaskRequest HTTP request model; отсутствующие поля не меняются
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
	AssignedTo  *string `json:"assignedTo,omitempty"`
}

func toDate(s *string) *types.DateString {
	if s == nil {
		return nil
	}
	d := types.DateString(*s)
	return &d
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateTaskRequest) ToServiceRequest() *tasksService.CreateRequest {
	return &tasksService.CreateRequest{
		ProviderID:  r.ProviderID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		DueDate:     toDate(r.DueDate),
		AssignedTo:  r.AssignedTo,
	}
}

// ToDomainUpdate конвертирует HTTP запрос в доменное обновление
func (r *UpdateTaskRequest) ToDomainUpdate() *domain.TaskUpdate {
	u := &domain.TaskUpdate{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     toDate(r.DueDate),
		AssignedTo:  r.AssignedTo,
	}
	if r.Status != nil {
		status := domain.TaskStatus(*r.Status)
		u.Status = &status
	}
	if r.Priority != nil {
		priority := domain.TaskPriority(*r.Priority)
		u.Priority = &priority
	}
	return u
}

// FromDomain конвертирует задачу в HTTP модель
func FromDomain(t *domain.Task) *TaskResponse {
	resp := &TaskResponse{
		ID:          t.ID,
		ProviderID:  t.ProviderID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		AssignedTo:  t.AssignedTo,
		CreatedAt:   t.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if t.DueDate != nil {
		due := t.DueDate.String()
		resp.DueDate = &due
	}
	if t.CompletedAt != nil {
		completed := t.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &completed
	}
	return resp
}
