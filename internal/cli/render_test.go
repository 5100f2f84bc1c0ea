package cli

import (
	"reflect"
	"testing"

	"github.com/kdsketch/kdsketch/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to tikz", "", []string{"tikz"}},
		{"single", "shape", []string{"shape"}},
		{"multiple", "tikz,svg,png", []string{"tikz", "svg", "png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidateFormats(t *testing.T) {
	tests := []struct {
		name    string
		formats []string
		wantErr bool
	}{
		{"all valid", []string{"tikz", "shape", "dot", "svg", "png", "pdf"}, false},
		{"single valid", []string{"tikz"}, false},
		{"invalid", []string{"gif"}, true},
		{"mixed", []string{"tikz", "bmp"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFormats(tt.formats)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFormats(%v) error = %v, wantErr %v", tt.formats, err, tt.wantErr)
			}
			if err != nil && errors.GetCode(err) != errors.ErrCodeInvalidFormat {
				t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidFormat)
			}
		})
	}
}

func TestValidatePNGScale(t *testing.T) {
	if err := validatePNGScale(defaultPNGScale); err != nil {
		t.Errorf("validatePNGScale(%v) = %v, want nil", defaultPNGScale, err)
	}
	for _, scale := range []float64{0, -1.5} {
		err := validatePNGScale(scale)
		if err == nil {
			t.Fatalf("validatePNGScale(%v) = nil, want error", scale)
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidInput {
			t.Errorf("error code = %s, want %s", errors.GetCode(err), errors.ErrCodeInvalidInput)
		}
	}
}

func TestBasePath(t *testing.T) {
	tests := []struct {
		name   string
		output string
		input  string
		want   string
	}{
		{"empty output derives from input", "", "tree.json", "tree"},
		{"output with format extension stripped", "out.tex", "tree.json", "out"},
		{"output with svg extension stripped", "diagram.svg", "tree.json", "diagram"},
		{"output without extension kept", "out", "tree.json", "out"},
		{"output with unknown extension kept", "out.dat", "tree.json", "out.dat"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := basePath(tt.output, tt.input); got != tt.want {
				t.Errorf("basePath(%q, %q) = %q, want %q", tt.output, tt.input, got, tt.want)
			}
		})
	}
}
