package render

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style is the explicit chart styling configuration passed to a Renderer.
// It replaces process-wide plotting state: two renderers with different
// styles can coexist in the same process.
type Style struct {
	Width       int
	Height      int
	BarWidth    int
	BarSpacing  int
	TopN        int
	Bins        int
	StrokeWidth float64
	DotWidth    float64
	SeriesColor drawing.Color
}

// DefaultStyle returns the styling used when no overrides are needed.
func DefaultStyle() Style {
	return Style{
		Width:       1280,
		Height:      800,
		BarWidth:    60,
		BarSpacing:  15,
		TopN:        10,
		Bins:        20,
		StrokeWidth: 2,
		DotWidth:    4,
		SeriesColor: chart.ColorBlue,
	}
}

// normalize fills zero fields with their defaults so a partially specified
// style stays renderable.
func (s Style) normalize() Style {
	def := DefaultStyle()
	if s.Width <= 0 {
		s.Width = def.Width
	}
	if s.Height <= 0 {
		s.Height = def.Height
	}
	if s.BarWidth <= 0 {
		s.BarWidth = def.BarWidth
	}
	if s.BarSpacing <= 0 {
		s.BarSpacing = def.BarSpacing
	}
	if s.TopN <= 0 {
		s.TopN = def.TopN
	}
	if s.Bins < 2 {
		s.Bins = def.Bins
	}
	if s.StrokeWidth <= 0 {
		s.StrokeWidth = def.StrokeWidth
	}
	if s.DotWidth <= 0 {
		s.DotWidth = def.DotWidth
	}
	if s.SeriesColor.IsZero() {
		s.SeriesColor = def.SeriesColor
	}
	return s
}
