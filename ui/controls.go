package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hawkdove/camera"
	"github.com/pthm-cable/hawkdove/dynamics"
)

// ControlsPanel renders series toggles and a zoom slider, and applies
// keyboard and mouse navigation to the chart camera.
type ControlsPanel struct {
	renderer   *Renderer
	x, y       int32
	width      int32
	strategies []dynamics.Strategy
	visible    map[dynamics.Strategy]bool
	shown      bool
	panSpeed   float32
}

// NewControlsPanel creates a controls panel with every series visible.
func NewControlsPanel(x, y, width int32, strategies []dynamics.Strategy, panSpeed float64) *ControlsPanel {
	visible := make(map[dynamics.Strategy]bool, len(strategies))
	for _, s := range strategies {
		visible[s] = true
	}
	return &ControlsPanel{
		renderer:   NewRenderer(),
		x:          x,
		y:          y,
		width:      width,
		strategies: strategies,
		visible:    visible,
		shown:      true,
		panSpeed:   float32(panSpeed),
	}
}

// Visible returns which series should be drawn.
func (c *ControlsPanel) Visible() map[dynamics.Strategy]bool {
	return c.visible
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.shown = !c.shown
	return c.shown
}

// HandleInput applies keyboard and mouse-wheel navigation.
//
//	Left/Right  pan
//	Wheel       zoom around the cursor
//	R           reset view
//	1-3         toggle series
//	H           hide/show this panel
func (c *ControlsPanel) HandleInput(cam *camera.Camera) {
	dt := rl.GetFrameTime()
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Pan(-c.panSpeed * dt)
	}
	if rl.IsKeyDown(rl.KeyRight) {
		cam.Pan(c.panSpeed * dt)
	}

	mouse := rl.GetMousePosition()
	if wheel := rl.GetMouseWheelMove(); wheel != 0 && cam.Contains(mouse.X, mouse.Y) {
		cam.ZoomAt(mouse.X, math.Pow(1.25, float64(wheel)))
	}

	if rl.IsKeyPressed(rl.KeyR) {
		cam.Reset()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		c.Toggle()
	}

	keys := []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree}
	for i, s := range c.strategies {
		if i < len(keys) && rl.IsKeyPressed(keys[i]) {
			c.visible[s] = !c.visible[s]
		}
	}
}

// Draw renders the panel and applies any widget changes to cam.
func (c *ControlsPanel) Draw(cam *camera.Camera) {
	if !c.shown {
		return
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight
	rowHeight := lineHeight + 8

	panelHeight := int32(len(c.strategies)+3)*rowHeight + lineHeight + padding*2
	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := float32(c.x + padding)
	y := c.y + padding
	inner := float32(c.width - padding*2)

	rl.DrawText("Series", int32(x), y, r.Theme.FontSize, r.Theme.SectionHeader)
	y += lineHeight

	for _, s := range c.strategies {
		mark := " "
		if c.visible[s] {
			mark = "x"
		}
		label := fmt.Sprintf("[%s] %s", mark, s)
		if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: float32(lineHeight)}, label) {
			c.visible[s] = !c.visible[s]
		}
		y += rowHeight
	}

	rl.DrawText(fmt.Sprintf("Zoom %.1fx", cam.Zoom), int32(x), y, r.Theme.FontSize, r.Theme.SectionHeader)
	y += lineHeight

	// Slider works in log space so each notch is a constant magnification
	logMax := float32(math.Log10(cam.MaxZoom))
	cur := float32(math.Log10(cam.Zoom))
	next := gui.SliderBar(
		rl.Rectangle{X: x + 20, Y: float32(y), Width: inner - 60, Height: float32(lineHeight - 4)},
		"1x", fmt.Sprintf("%.0fx", cam.MaxZoom),
		cur, 0, logMax,
	)
	if next != cur {
		cam.SetZoom(math.Pow(10, float64(next)))
	}
	y += rowHeight

	if gui.Button(rl.Rectangle{X: x, Y: float32(y), Width: inner, Height: float32(lineHeight)}, "Reset view") {
		cam.Reset()
	}
}
