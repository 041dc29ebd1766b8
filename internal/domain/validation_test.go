package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCents(t *testing.T) {
	tests := []struct {
		in    string
		cents int64
		ok    bool
	}{
		{"150.00", 15000, true},
		{"150", 15000, true},
		{"9.5", 950, true},
		{"0.05", 5, true},
		{"-1", 0, false},
		{"1.234", 0, false},
		{"abc", 0, false},
	}
	for _, tt := range tests {
		cents, ok := PriceCents(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.cents, cents, tt.in)
	}

	normalized, ok := NormalizePrice("9.5")
	assert.True(t, ok)
	assert.Equal(t, "9.50", normalized)
}

func TestValidEmail(t *testing.T) {
	assert.True(t, ValidEmail("a@b.io"))
	assert.False(t, ValidEmail("a@b"))
	assert.False(t, ValidEmail("a b@c.io"))
}

func TestValidateWorkingHours(t *testing.T) {
	v := NewValidationError()
	ValidateWorkingHours(&WorkingHours{Start: "17:00", End: "09:00", Days: []int{1, 7}}, "workingHours", v)

	assert.Contains(t, v.Fields, "workingHours.end")
	assert.Contains(t, v.Fields, "workingHours.days")
	assert.ErrorIs(t, v.OrNil(), ErrValidation)
}
