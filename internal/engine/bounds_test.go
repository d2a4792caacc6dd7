package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"model-forge/internal/engine"
)

func TestComputeBound(t *testing.T) {
	tests := []struct {
		name        string
		precision   int
		scale       int
		upper       string
		lower       string
		onlyInteger bool
	}{
		{"decimal 5,2", 5, 2, "999.99", "-999.99", false},
		{"integer 5,0", 5, 0, "99999", "-99999", true},
		{"money 7,2", 7, 2, "99999.99", "-99999.99", false},
		{"single digit", 1, 0, "9", "-9", true},
		{"int 10,0", 10, 0, "9999999999", "-9999999999", true},
		{"bigint 19,0", 19, 0, "9999999999999999999", "-9999999999999999999", true},
		// scale == precision: 정수부가 없는 소수
		{"all fractional 2,2", 2, 2, ".99", "-.99", false},
		{"all fractional 1,1", 1, 1, ".9", "-.9", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.ComputeBound(tt.precision, tt.scale)
			require.NoError(t, err)
			assert.Equal(t, tt.upper, b.Upper)
			assert.Equal(t, tt.lower, b.Lower)
			assert.Equal(t, tt.onlyInteger, b.OnlyInteger)
		})
	}
}

func TestComputeBoundInvalid(t *testing.T) {
	tests := []struct {
		name      string
		precision int
		scale     int
	}{
		{"zero precision", 0, 0},
		{"negative precision", -3, 0},
		{"negative scale", 5, -1},
		{"scale exceeds precision", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.ComputeBound(tt.precision, tt.scale)
			require.Error(t, err)
			assert.ErrorIs(t, err, engine.ErrInvalidColumn)
		})
	}
}
