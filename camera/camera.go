// Package camera provides the chart viewport: it maps simulation data
// (generation, proportion) onto a plot rectangle on screen and supports
// horizontal pan and zoom along the generation axis.
package camera

import "math"

// Camera controls which generations are visible in the plot area.
// The proportion axis always shows the full [0, 1] range.
type Camera struct {
	// Plot rectangle in screen pixels
	PlotX, PlotY, PlotW, PlotH float32

	// X is the centre of the visible window, in generations
	X float64

	// Zoom level along the generation axis (1.0 = whole run visible)
	Zoom float64

	// Span is the width of the data in generations (at least 1)
	Span float64

	// Zoom constraints
	MinZoom, MaxZoom float64
}

// New creates a camera that shows all generations of a run.
func New(plotX, plotY, plotW, plotH float32, generations int, maxZoom float64) *Camera {
	span := float64(generations)
	if span < 1 {
		span = 1
	}
	if maxZoom < 1 {
		maxZoom = 1
	}

	return &Camera{
		PlotX:   plotX,
		PlotY:   plotY,
		PlotW:   plotW,
		PlotH:   plotH,
		X:       span / 2,
		Zoom:    1.0,
		Span:    span,
		MinZoom: 1.0,
		MaxZoom: maxZoom,
	}
}

// VisibleRange returns the first and last visible generation.
func (c *Camera) VisibleRange() (from, to float64) {
	half := c.Span / (2 * c.Zoom)
	return c.X - half, c.X + half
}

// DataToScreen converts a (generation, proportion) point to screen coordinates.
func (c *Camera) DataToScreen(gen, prop float64) (sx, sy float32) {
	from, to := c.VisibleRange()
	sx = c.PlotX + float32((gen-from)/(to-from))*c.PlotW
	sy = c.PlotY + float32(1-prop)*c.PlotH
	return sx, sy
}

// ScreenToData converts screen coordinates to a (generation, proportion) point.
func (c *Camera) ScreenToData(sx, sy float32) (gen, prop float64) {
	from, to := c.VisibleRange()
	gen = from + float64((sx-c.PlotX)/c.PlotW)*(to-from)
	prop = 1 - float64((sy-c.PlotY)/c.PlotH)
	return gen, prop
}

// Contains reports whether a screen point lies inside the plot rectangle.
func (c *Camera) Contains(sx, sy float32) bool {
	return sx >= c.PlotX && sx <= c.PlotX+c.PlotW &&
		sy >= c.PlotY && sy <= c.PlotY+c.PlotH
}

// Resize updates the plot rectangle. The visible window is unchanged.
func (c *Camera) Resize(plotX, plotY, plotW, plotH float32) {
	c.PlotX, c.PlotY, c.PlotW, c.PlotH = plotX, plotY, plotW, plotH
}

// Pan moves the view by the given horizontal delta in screen pixels.
// The view stops at the first and last generation.
func (c *Camera) Pan(dx float32) {
	perPixel := c.Span / c.Zoom / float64(c.PlotW)
	c.X += float64(dx) * perPixel
	c.clampCenter()
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
	c.clampCenter()
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// ZoomAt zooms by factor while keeping the generation under screen x fixed.
func (c *Camera) ZoomAt(sx float32, factor float64) {
	anchor, _ := c.ScreenToData(sx, c.PlotY)
	frac := float64((sx - c.PlotX) / c.PlotW)

	c.Zoom = clamp(c.Zoom*factor, c.MinZoom, c.MaxZoom)
	width := c.Span / c.Zoom
	c.X = anchor - frac*width + width/2
	c.clampCenter()
}

// Reset returns the camera to the full view.
func (c *Camera) Reset() {
	c.X = c.Span / 2
	c.Zoom = 1.0
}

// clampCenter keeps the visible window inside [0, Span].
func (c *Camera) clampCenter() {
	half := c.Span / (2 * c.Zoom)
	c.X = clamp(c.X, half, c.Span-half)
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	return math.Max(min, math.Min(max, x))
}
