package memory

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

// Seed заполняет хранилище демонстрационными данными:
// один провайдер, две услуги, шаблоны слотов Пн-Пт 09:00-17:00, две заметки и две задачи
func (s *Store) Seed(ctx context.Context) error {
	provider, err := s.Providers().Create(ctx, &domain.Provider{
		Name:         "Sarah Johnson",
		Title:        "Dr.",
		Specialty:    "Family Medicine",
		Email:        "sarah.johnson@email.com",
		Phone:        "(555) 123-4567",
		Bio:          ptr.Ptr("Board-certified family physician with over 10 years of experience."),
		Rating:       "4.90",
		ReviewCount:  127,
		IsActive:     true,
		WorkingHours: domain.DefaultWorkingHours(),
		SocialLinks: domain.SocialLinks{
			Website:   ptr.Ptr("https://sarahjohnson.com"),
			Instagram: ptr.Ptr("drsarahj"),
			Twitter:   ptr.Ptr("sarahjmd"),
		},
	})
	if err != nil {
		return fmt.Errorf("seed provider: %w", err)
	}

	services := []*domain.Service{
		{
			ProviderID:  provider.ID,
			Name:        "Consultation",
			Description: ptr.Ptr("Initial consultation and diagnosis"),
			Duration:    30,
			Price:       "150.00",
			IsActive:    true,
		},
		{
			ProviderID:  provider.ID,
			Name:        "Follow-up",
			Description: ptr.Ptr("Follow-up appointment"),
			Duration:    15,
			Price:       "75.00",
			IsActive:    true,
		},
	}
	for _, svc := range services {
		if _, err := s.Services().Create(ctx, svc); err != nil {
			return fmt.Errorf("seed service: %w", err)
		}
	}

	wh := provider.WorkingHours
	for _, day := range wh.Days {
		for m := wh.Start.Minutes(); m < wh.End.Minutes(); m += domain.SlotStepMinutes {
			start, err := types.NewTimeStringFromMinutes(m)
			if err != nil {
				return fmt.Errorf("seed time slot: %w", err)
			}
			end, err := start.AddMinutes(domain.SlotStepMinutes)
			if err != nil {
				return fmt.Errorf("seed time slot: %w", err)
			}
			if _, err := s.TimeSlots().Create(ctx, &domain.TimeSlot{
				ProviderID:  provider.ID,
				DayOfWeek:   day,
				StartTime:   start,
				EndTime:     end,
				IsAvailable: true,
			}); err != nil {
				return fmt.Errorf("seed time slot: %w", err)
			}
		}
	}

	memos := []*domain.Memo{
		{
			ProviderID:  provider.ID,
			Title:       "Important Patient Follow-up",
			Content:     "Remember to follow up with Mrs. Anderson about her test results. She seemed anxious during the last visit.",
			Category:    domain.MemoCategoryClient,
			IsImportant: true,
		},
		{
			ProviderID: provider.ID,
			Title:      "Equipment Maintenance",
			Content:    "Schedule annual maintenance for the X-ray machine. Due for service next month.",
			Category:   domain.MemoCategoryGeneral,
		},
	}
	for _, memo := range memos {
		if _, err := s.Memos().Create(ctx, memo); err != nil {
			return fmt.Errorf("seed memo: %w", err)
		}
	}

	tasks := []*domain.Task{
		{
			ProviderID:  provider.ID,
			Title:       "Update patient records",
			Description: ptr.Ptr("Complete digital migration for all patient files from 2023"),
			Status:      domain.TaskStatusInProgress,
			Priority:    domain.TaskPriorityHigh,
			DueDate:     ptr.Ptr(types.DateString("2025-01-20")),
		},
		{
			ProviderID:  provider.ID,
			Title:       "Order medical supplies",
			Description: ptr.Ptr("Restock examination gloves, syringes, and bandages"),
			Status:      domain.TaskStatusPending,
			Priority:    domain.TaskPriorityMedium,
			DueDate:     ptr.Ptr(types.DateString("2025-01-15")),
		},
	}
	for _, task := range tasks {
		if _, err := s.Tasks().Create(ctx, task); err != nil {
			return fmt.Errorf("seed task: %w", err)
		}
	}

	return nil
}
