package domain

import "github.com/m04kA/SMC-AppointmentService/pkg/types"

// Slot generation
const (
	// SlotStepMinutes fixed availability granularity, independent of service duration
	SlotStepMinutes = 30
)

// Default working hours assigned at provider registration
const (
	DefaultWorkingStart types.TimeString = "09:00"
	DefaultWorkingEnd   types.TimeString = "17:00"
)

// DefaultWorkingDays Monday..Friday
var DefaultWorkingDays = []int{1, 2, 3, 4, 5}

// Rating bounds
const (
	MinReviewRating = 1
	MaxReviewRating = 5
	DefaultRating   = "0.00"
)

// Business validation constants
const (
	MaxNameLength        = 200
	MaxNotesLength       = 2000
	MaxDescriptionLength = 2000
	MaxServiceDuration   = 24 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AppointmentStatuses all valid appointment statuses
var AppointmentStatuses = []AppointmentStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// MemoCategories all valid memo categories
var MemoCategories = []MemoCategory{
	MemoCategoryGeneral,
	MemoCategoryAppointment,
	MemoCategoryClient,
	MemoCategoryPersonal,
}

// TaskStatuses all valid task statuses
var TaskStatuses = []TaskStatus{
	TaskStatusPending,
	TaskStatusInProgress,
	TaskStatusCompleted,
	TaskStatusCancelled,
}

// TaskPriorities all valid task priorities
var TaskPriorities = []TaskPriority{
	TaskPriorityLow,
	TaskPriorityMedium,
	TaskPriorityHigh,
	TaskPriorityUrgent,
}
