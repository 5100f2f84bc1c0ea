package render

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"integer value", 1, "1"},
		{"fraction", 0.5, "0.5"},
		{"negative", -3.25, "-3.25"},
		{"zero", 0, "0"},
		{"negative zero", math.Copysign(0, -1), "-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.v); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

func TestFormatFloat32(t *testing.T) {
	// 0.1 has no exact float32 representation; the 32-bit formatter must
	// still print the shortest round-tripping form.
	if got := Format(float32(0.1)); got != "0.1" {
		t.Errorf("Format(float32(0.1)) = %q, want %q", got, "0.1")
	}
	if got := Format(float32(-2.5)); got != "-2.5" {
		t.Errorf("Format(float32(-2.5)) = %q, want %q", got, "-2.5")
	}
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want string
	}{
		{"positive gets plus", 1, "+1"},
		{"fraction gets plus", 4.25, "+4.25"},
		{"negative keeps minus", -3.5, "-3.5"},
		{"zero gets plus", 0, "+0"},
		{"negative zero keeps minus", math.Copysign(0, -1), "-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatSigned(tt.v); got != tt.want {
				t.Errorf("FormatSigned(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}
