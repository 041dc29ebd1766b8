package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

func TestPathID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int64
		wantErr bool
	}{
		{"valid", "42", 42, false},
		{"zero", "0", 0, true},
		{"negative", "-1", 0, true},
		{"garbage", "abc", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"id": tt.value})
			got, err := PathID(r, "id")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	v := domain.NewValidationError()
	v.Add("date", "is required")

	rec := httptest.NewRecorder()
	RespondValidationError(rec, v)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{"date": "is required"}, body.Fields)
	assert.NotEmpty(t, body.Error)
}

func TestQueryDate(t *testing.T) {
	assert.Nil(t, QueryDate(httptest.NewRequest(http.MethodGet, "/", nil), "date"))

	d := QueryDate(httptest.NewRequest(http.MethodGet, "/?date=2024-01-15", nil), "date")
	require.NotNil(t, d)
	assert.Equal(t, "2024-01-15", d.String())
}
