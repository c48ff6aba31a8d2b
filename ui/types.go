// Package ui draws trajectory charts with raylib. It only reads
// simulation output; nothing here feeds back into the dynamics.
package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hawkdove/dynamics"
)

// Theme holds UI styling constants.
type Theme struct {
	Background    rl.Color
	PlotBg        rl.Color
	PanelBg       rl.Color
	PanelBorder   rl.Color
	Axis          rl.Color
	Grid          rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	Hawk          rl.Color
	Dove          rl.Color
	Bourgeois     rl.Color
	LineThickness float32
	Padding       int32
	LineHeight    int32
	FontSize      int32
	TitleFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		Background:    rl.RayWhite,
		PlotBg:        rl.White,
		PanelBg:       rl.Color{R: 245, G: 245, B: 245, A: 235},
		PanelBorder:   rl.Color{R: 180, G: 180, B: 180, A: 255},
		Axis:          rl.DarkGray,
		Grid:          rl.Color{R: 225, G: 225, B: 225, A: 255},
		SectionHeader: rl.DarkGray,
		LabelColor:    rl.DarkGray,
		ValueColor:    rl.Gray,
		Hawk:          rl.Red,
		Dove:          rl.Green,
		Bourgeois:     rl.Blue,
		LineThickness: 2,
		Padding:       10,
		LineHeight:    20,
		FontSize:      16,
		TitleFontSize: 22,
	}
}

// SeriesColor returns the line color for a strategy.
func (t Theme) SeriesColor(s dynamics.Strategy) rl.Color {
	switch s {
	case dynamics.Hawk:
		return t.Hawk
	case dynamics.Dove:
		return t.Dove
	case dynamics.Bourgeois:
		return t.Bourgeois
	default:
		return t.Axis
	}
}
