package update_appointment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-AppointmentService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-AppointmentService/pkg/logger"
	"github.com/m04kA/SMC-AppointmentService/pkg/types"
)

type useCaseMock struct {
	mock.Mock
}

func (m *useCaseMock) Execute(ctx context.Context, req *updateAppointment.Request) (*updateAppointment.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*updateAppointment.Response)
	return resp, args.Error(1)
}

func patch(h *Handler, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/appointments/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"appointmentId": id})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ErrorMapping(t *testing.T) {
	validation := domain.NewValidationError()
	validation.Add("startTime", "must be HH:MM")

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"concurrent update", updateAppointment.ErrConcurrentUpdate, http.StatusConflict},
		{"slot taken", updateAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{"not found", updateAppointment.ErrAppointmentNotFound, http.StatusNotFound},
		{"validation", validation, http.StatusBadRequest},
		{"internal", fmt.Errorf("%w: boom", updateAppointment.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &useCaseMock{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := patch(NewHandler(uc, logger.NewNop()), "7", `{"startTime":"13:00"}`)
			assert.Equal(t, tt.status, rec.Code)

			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
			uc.AssertExpectations(t)
		})
	}
}

func TestHandle_ConcurrentUpdateMessage(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, updateAppointment.ErrConcurrentUpdate)

	rec := patch(NewHandler(uc, logger.NewNop()), "7", `{"appointmentDate":"2024-01-16"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, msgConcurrentUpdate, body.Error)
}

func TestHandle_Success(t *testing.T) {
	uc := &useCaseMock{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *updateAppointment.Request) bool {
		return req.ID == 7 && req.StartTime != nil && *req.StartTime == "13:00"
	})).Return(&updateAppointment.Response{Appointment: &domain.Appointment{
		ID: 7, ProviderID: 1, ServiceID: 2, AppointmentDate: types.DateString("2024-01-15"),
		StartTime: "13:00", EndTime: "14:00", Status: domain.StatusPending,
	}}, nil)

	rec := patch(NewHandler(uc, logger.NewNop()), "7", `{"startTime":"13:00"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body handlers.AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.ID)
	assert.Equal(t, "14:00", body.EndTime)
	uc.AssertExpectations(t)
}

func TestHandle_BadInput(t *testing.T) {
	uc := &useCaseMock{}
	h := NewHandler(uc, logger.NewNop())

	assert.Equal(t, http.StatusBadRequest, patch(h, "0", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(h, "7", `{not json`).Code)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}
