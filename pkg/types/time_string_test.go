package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "midnight", value: "00:00"},
		{name: "last minute", value: "23:59"},
		{name: "no leading zero", value: "9:00", wantErr: true},
		{name: "hour overflow", value: "24:00", wantErr: true},
		{name: "minute overflow", value: "10:60", wantErr: true},
		{name: "garbage", value: "ab:cd", wantErr: true},
		{name: "empty", value: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("09:45").AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:15"), got)

	_, err = TimeString("23:45").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOutOfDay)

	_, err = TimeString("bad").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_CompareByMinutes(t *testing.T) {
	assert.True(t, TimeString("09:30").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:30"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.Equal(t, 570, TimeString("09:30").Minutes())
	assert.Equal(t, -1, TimeString("9:30").Minutes())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 1, 6, 7, 5, 59, 0, time.UTC))
	assert.Equal(t, TimeString("07:05"), ts)
}

func TestDateString_Weekday(t *testing.T) {
	weekday, ok := DateString("2025-01-06").Weekday()
	require.True(t, ok)
	assert.Equal(t, 1, weekday)

	weekday, ok = DateString("2025-01-05").Weekday()
	require.True(t, ok)
	assert.Equal(t, 0, weekday)

	_, ok = DateString("2025-02-30").Weekday()
	assert.False(t, ok)

	_, ok = DateString("-2025-01-01").Weekday()
	assert.False(t, ok)
}

func TestDateString_Scan(t *testing.T) {
	var d DateString
	require.NoError(t, d.Scan(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, DateString("2025-03-09"), d)

	require.NoError(t, d.Scan([]byte("2025-03-10")))
	assert.Equal(t, DateString("2025-03-10"), d)

	assert.Error(t, d.Scan(42))
}
