package tasks

import (
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

const (
	statusReason   = "must be one of pending, in_progress, completed, cancelled"
	priorityReason = "must be one of low, medium, high, urgent"
)

// CreateRequest данные новой задачи
type CreateRequest struct {
	ProviderID  int64
	Title       string
	Description *string
	Status      *string // по умолчанию pending
	Priority    *string // по умолчанию medium
	DueDate     *types.DateString
	AssignedTo  *string
}

func (r *CreateRequest) validate() error {
	v := domain.NewValidationError()

	if r.ProviderID <= 0 {
		v.Add("providerId", "is required")
	}
	if domain.Blank(r.Title) {
		v.Add("title", "is required")
	}
	if r.Status != nil && !domain.TaskStatus(*r.Status).IsValid() {
		v.Add("status", statusReason)
	}
	if r.Priority != nil && !domain.TaskPriority(*r.Priority).IsValid() {
		v.Add("priority", priorityReason)
	}
	if r.DueDate != nil && r.DueDate.Validate() != nil {
		v.Add("dueDate", "must be YYYY-MM-DD")
	}

	return v.OrNil()
}

func validateUpdate(u *domain.TaskUpdate) error {
	v := domain.NewValidationError()

	if u.Title != nil && domain.Blank(*u.Title) {
		v.Add("title", "must not be empty")
	}
	if u.Status != nil && !u.Status.IsValid() {
		v.Add("status", statusReason)
	}
	if u.Priority != nil && !u.Priority.IsValid() {
		v.Add("priority", priorityReason)
	}
	if u.DueDate != nil && u.DueDate.Validate() != nil {
		v.Add("dueDate", "must be YYYY-MM-DD")
	}

	return v.OrNil()
}
