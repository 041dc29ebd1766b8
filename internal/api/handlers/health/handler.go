package health

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
)

// Response тело ответа health-check
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// Handle GET /api/health
func Handle(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
