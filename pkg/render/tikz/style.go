package tikz

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/kdsketch/kdsketch/pkg/errors"
)

// Style controls the cosmetic side of the diagram: marker size, label font
// sizes, how the picture is scaled. It never moves geometry — split lines
// and markers land in the same place under every style.
type Style struct {
	// MarkerRadius is the TikZ radius of point markers, e.g. "2pt".
	MarkerRadius string `toml:"marker_radius"`

	// SplitLabelSize is the TeX size command (without the backslash) used
	// for the left/right annotation on split labels, e.g. "scriptsize".
	SplitLabelSize string `toml:"split_label_size"`

	// PointLabelSize is the TeX size command used for point coordinate
	// labels, e.g. "tiny".
	PointLabelSize string `toml:"point_label_size"`

	// ScaleDivisor divides the summed bounding-box extent to obtain the
	// tikzpicture scale. Smaller values draw larger pictures.
	ScaleDivisor float64 `toml:"scale_divisor"`
}

// DefaultStyle returns the style used when no overrides are given.
func DefaultStyle() Style {
	return Style{
		MarkerRadius:   "2pt",
		SplitLabelSize: "scriptsize",
		PointLabelSize: "tiny",
		ScaleDivisor:   30,
	}
}

// LoadStyle reads a TOML style file and applies it on top of the defaults,
// so a file only needs to name the knobs it changes.
func LoadStyle(path string) (Style, error) {
	s := DefaultStyle()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, errors.Wrap(errors.ErrCodeFileNotFound, err, "style file %s", path)
		}
		return s, err
	}

	if err := toml.Unmarshal(data, &s); err != nil {
		return s, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse style file %s", path)
	}
	if err := s.validate(); err != nil {
		return s, err
	}
	return s, nil
}

func (s Style) validate() error {
	if s.ScaleDivisor <= 0 {
		return errors.New(errors.ErrCodeInvalidStyle, "scale_divisor must be positive, got %v", s.ScaleDivisor)
	}
	if s.MarkerRadius == "" {
		return errors.New(errors.ErrCodeInvalidStyle, "marker_radius cannot be empty")
	}
	return nil
}
