package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		lamports string
		spot     float64
		native   string
		fiat     string
	}{
		{
			name:     "two and a half sol at 150",
			lamports: "2500000000",
			spot:     150.0,
			native:   "2.50",
			fiat:     "$375.00",
		},
		{
			name:     "zero amount",
			lamports: "0",
			spot:     150.0,
			native:   "0.00",
			fiat:     "$0.00",
		},
		{
			name:     "sub-lamport precision rounds half away from zero",
			lamports: "2505000000",
			spot:     100.0,
			native:   "2.51",
			fiat:     "$250.50",
		},
		{
			name:     "tiny amount keeps two decimals",
			lamports: "10000000",
			spot:     0.5,
			native:   "0.01",
			fiat:     "$0.01",
		},
		{
			name:     "fiat rounds to cents",
			lamports: "2500000000",
			spot:     150.123,
			native:   "2.50",
			fiat:     "$375.31",
		},
		{
			name:     "large amounts group fiat digits",
			lamports: "100000000000000",
			spot:     150.0,
			native:   "100000.00",
			fiat:     "$15,000,000.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display, err := Format(tt.lamports, tt.spot)
			require.NoError(t, err)
			assert.Equal(t, tt.native, display.Native)
			assert.Equal(t, tt.fiat, display.Fiat)
		})
	}
}

func TestFormat_Deterministic(t *testing.T) {
	first, err := Format("2500000000", 150.0)
	require.NoError(t, err)
	second, err := Format("2500000000", 150.0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFormat_InvalidAmount(t *testing.T) {
	_, err := Format("not-a-number", 150.0)
	assert.Error(t, err)

	_, err = Format("", 150.0)
	assert.Error(t, err)
}
