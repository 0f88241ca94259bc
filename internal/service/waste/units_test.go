package waste

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTonnes(t *testing.T) {
	tests := []struct {
		name     string
		quantity float64
		unit     string
		want     float64
		known    bool
	}{
		{name: "kilograms", quantity: 1000, unit: "kg", want: 1, known: true},
		{name: "kilograms upper", quantity: 500, unit: "KG", want: 0.5, known: true},
		{name: "tonnes", quantity: 2, unit: "t", want: 2, known: true},
		{name: "tonnes long", quantity: 2, unit: "toneladas", want: 2, known: true},
		{name: "litres", quantity: 2000, unit: "litros", want: 2, known: true},
		{name: "cubic metres", quantity: 3, unit: "m³", want: 3, known: true},
		{name: "padded", quantity: 1, unit: "  kg  ", want: 0.001, known: true},
		{name: "unknown falls back to identity", quantity: 7, unit: "barris", want: 7, known: false},
		{name: "empty unit", quantity: 4, unit: "", want: 4, known: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, known := ToTonnes(tt.quantity, tt.unit)
			assert.Equal(t, tt.known, known)
			assert.InDelta(t, tt.want, got.InexactFloat64(), 1e-9)
		})
	}
}

func TestToTonnesKilogramsEqualTonnes(t *testing.T) {
	kg, known := ToTonnes(1000, "kg")
	require.True(t, known)
	tonnes, known := ToTonnes(1, "t")
	require.True(t, known)

	assert.True(t, kg.Equal(tonnes), "1000 kg must equal 1 t")
}
