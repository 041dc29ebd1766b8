package postgres

import "github.com/m04kA/SMC-AppointmentService/internal/infra/storage"

// NewRepositories создает все репозитории поверх одного соединения
func NewRepositories(db DBExecutor) *storage.Repositories {
	return &storage.Repositories{
		Providers:    NewProviderRepository(db),
		Services:     NewServiceRepository(db),
		Appointments: NewAppointmentRepository(db),
		TimeSlots:    NewTimeSlotRepository(db),
		Memos:        NewMemoRepository(db),
		Tasks:        NewTaskRepository(db),
		Reviews:      NewReviewRepository(db),
	}
}
