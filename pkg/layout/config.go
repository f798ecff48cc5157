package layout

import (
	"github.com/matzehuels/familytree/pkg/errors"
)

// Default geometry, in SVG user units.
const (
	DefaultBoxWidth       = 120.0
	DefaultBoxHeight      = 60.0
	DefaultHGap           = 40.0
	DefaultVGap           = 80.0
	DefaultOrigin         = 50.0
	DefaultMargin         = 50.0
	DefaultCornerRadius   = 5.0
	DefaultNameBaseline   = 25.0
	DefaultDetailBaseline = 42.0
)

// Config holds every geometric constant used by layout, routing and scene
// assembly. The zero value is not usable; start from [DefaultConfig].
type Config struct {
	BoxWidth  float64 `json:"box_width" toml:"box_width"`
	BoxHeight float64 `json:"box_height" toml:"box_height"`
	HGap      float64 `json:"h_gap" toml:"h_gap"`
	VGap      float64 `json:"v_gap" toml:"v_gap"`
	OriginX   float64 `json:"origin_x" toml:"origin_x"`
	OriginY   float64 `json:"origin_y" toml:"origin_y"`
	Margin    float64 `json:"margin" toml:"margin"`

	// CornerRadius rounds person boxes.
	CornerRadius float64 `json:"corner_radius" toml:"corner_radius"`

	// Baselines are measured from the top of the box.
	NameBaseline   float64 `json:"name_baseline" toml:"name_baseline"`
	DetailBaseline float64 `json:"detail_baseline" toml:"detail_baseline"`
}

// DefaultConfig returns the standard geometry.
func DefaultConfig() Config {
	return Config{
		BoxWidth:       DefaultBoxWidth,
		BoxHeight:      DefaultBoxHeight,
		HGap:           DefaultHGap,
		VGap:           DefaultVGap,
		OriginX:        DefaultOrigin,
		OriginY:        DefaultOrigin,
		Margin:         DefaultMargin,
		CornerRadius:   DefaultCornerRadius,
		NameBaseline:   DefaultNameBaseline,
		DetailBaseline: DefaultDetailBaseline,
	}
}

// Validate rejects box sizes that are not positive and negative spacing.
func (c Config) Validate() error {
	if c.BoxWidth <= 0 || c.BoxHeight <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig,
			"box size must be positive, got %gx%g", c.BoxWidth, c.BoxHeight)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"h_gap", c.HGap},
		{"v_gap", c.VGap},
		{"origin_x", c.OriginX},
		{"origin_y", c.OriginY},
		{"margin", c.Margin},
		{"corner_radius", c.CornerRadius},
	} {
		if f.v < 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must not be negative, got %g", f.name, f.v)
		}
	}
	return nil
}

// RowHeight is the vertical distance between two generations.
func (c Config) RowHeight() float64 { return c.BoxHeight + c.VGap }

// ColumnWidth is the horizontal distance between two neighbours in a row.
func (c Config) ColumnWidth() float64 { return c.BoxWidth + c.HGap }
