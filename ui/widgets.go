package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawLabel draws a text label.
func (r *Renderer) DrawLabel(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.LabelColor)
}

// DrawValue draws a value text.
func (r *Renderer) DrawValue(x, y int32, text string) {
	rl.DrawText(text, x, y, r.Theme.FontSize, r.Theme.ValueColor)
}

// DrawCentered draws text horizontally centred on cx.
func (r *Renderer) DrawCentered(cx, y int32, text string, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
}

// DrawVertical draws text rotated 90° counter-clockwise, centred on cy.
func (r *Renderer) DrawVertical(x, cy int32, text string, size int32, color rl.Color) {
	w := rl.MeasureText(text, size)
	rl.DrawTextPro(
		rl.GetFontDefault(),
		text,
		rl.Vector2{X: float32(x), Y: float32(cy + w/2)},
		rl.Vector2{X: 0, Y: 0},
		-90,
		float32(size),
		float32(size)/10,
		color,
	)
}

// DrawSwatch draws a short line sample in the given color, used by legends.
func (r *Renderer) DrawSwatch(x, y, width int32, color rl.Color) {
	mid := float32(y + r.Theme.FontSize/2)
	rl.DrawLineEx(
		rl.Vector2{X: float32(x), Y: mid},
		rl.Vector2{X: float32(x + width), Y: mid},
		r.Theme.LineThickness+1,
		color,
	)
}
