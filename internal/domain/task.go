package domain

import (
	"time"

	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// TaskStatus represents the progress of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid returns true for a known status
func (s TaskStatus) IsValid() bool {
	for _, valid := range TaskStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// TaskPriority represents task urgency
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid returns true for a known priority
func (p TaskPriority) IsValid() bool {
	for _, valid := range TaskPriorities {
		if p == valid {
			return true
		}
	}
	return false
}

// Task is a provider's to-do item
type Task struct {
	ID          int64
	ProviderID  int64
	Title       string
	Description *string
	Status      TaskStatus
	Priority    TaskPriority
	DueDate     *types.DateString
	AssignedTo  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
}

// TaskUpdate partial update; nil fields are left unchanged
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *TaskStatus
	Priority    *TaskPriority
	DueDate     *types.DateString
	AssignedTo  *string
}

// Apply merges the update into the task. CompletedAt is stamped when the
// update moves the task to completed.
func (u *TaskUpdate) Apply(t *Task, now time.Time) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = u.Description
	}
	if u.Status != nil {
		t.Status = *u.Status
		if *u.Status == TaskStatusCompleted {
			completedAt := now
			t.CompletedAt = &completedAt
		}
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.DueDate != nil {
		t.DueDate = u.DueDate
	}
	if u.AssignedTo != nil {
		t.AssignedTo = u.AssignedTo
	}
	t.UpdatedAt = now
}
