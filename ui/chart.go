package ui

import (
	"fmt"
	"math"
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hawkdove/camera"
	"github.com/pthm-cable/hawkdove/config"
	"github.com/pthm-cable/hawkdove/dynamics"
)

// Chart draws one line series per strategy against generation number.
type Chart struct {
	renderer *Renderer
	cfg      config.ChartConfig
}

// NewChart creates a chart with the given labels and tick counts.
func NewChart(cfg config.ChartConfig) *Chart {
	return &Chart{
		renderer: NewRenderer(),
		cfg:      cfg,
	}
}

// Draw renders axes, grid, the visible series and a legend.
func (c *Chart) Draw(tr *dynamics.Trajectory, cam *camera.Camera, visible map[dynamics.Strategy]bool) {
	th := c.renderer.Theme
	px, py := int32(cam.PlotX), int32(cam.PlotY)
	pw, ph := int32(cam.PlotW), int32(cam.PlotH)

	rl.DrawRectangle(px, py, pw, ph, th.PlotBg)
	c.drawGrid(cam)

	rl.BeginScissorMode(px, py, pw+1, ph+1)
	for _, s := range tr.Strategies() {
		if visible[s] {
			c.drawSeries(tr.Series(s), cam, th.SeriesColor(s))
		}
	}
	rl.EndScissorMode()

	rl.DrawRectangleLines(px, py, pw, ph, th.Axis)

	c.renderer.DrawCentered(px+pw/2, py-th.TitleFontSize-th.Padding, c.cfg.Title, th.TitleFontSize, th.SectionHeader)
	c.renderer.DrawCentered(px+pw/2, py+ph+th.LineHeight+th.Padding, c.cfg.XLabel, th.FontSize, th.LabelColor)
	c.renderer.DrawVertical(px-int32(c.cfg.Margin)+th.Padding/2, py+ph/2, c.cfg.YLabel, th.FontSize, th.LabelColor)

	c.drawLegend(tr.Strategies(), cam, visible)
}

// drawGrid draws grid lines and tick labels on both axes.
func (c *Chart) drawGrid(cam *camera.Camera) {
	th := c.renderer.Theme
	from, to := cam.VisibleRange()

	for _, g := range camera.Ticks(from, to, c.cfg.XTicks) {
		sx, _ := cam.DataToScreen(g, 0)
		x := int32(sx)
		rl.DrawLine(x, int32(cam.PlotY), x, int32(cam.PlotY+cam.PlotH), th.Grid)
		c.renderer.DrawCentered(x, int32(cam.PlotY+cam.PlotH)+4, formatGeneration(g), th.FontSize-2, th.ValueColor)
	}

	for _, p := range camera.Ticks(0, 1, c.cfg.YTicks) {
		_, sy := cam.DataToScreen(from, p)
		y := int32(sy)
		rl.DrawLine(int32(cam.PlotX), y, int32(cam.PlotX+cam.PlotW), y, th.Grid)
		label := strconv.FormatFloat(p, 'f', 1, 64)
		w := rl.MeasureText(label, th.FontSize-2)
		rl.DrawText(label, int32(cam.PlotX)-w-6, y-(th.FontSize-2)/2, th.FontSize-2, th.ValueColor)
	}
}

// drawSeries draws one decimated series. Non-finite buckets break the
// line instead of being plotted.
func (c *Chart) drawSeries(series []float64, cam *camera.Camera, color rl.Color) {
	from, to := cam.VisibleRange()
	buckets := camera.Decimate(series, int(math.Floor(from)), int(math.Ceil(to)), int(cam.PlotW))
	thick := c.renderer.Theme.LineThickness

	var prev rl.Vector2
	havePrev := false
	for _, b := range buckets {
		if !finite(b.Min) || !finite(b.Max) {
			havePrev = false
			continue
		}

		x, yFirst := cam.DataToScreen(b.Gen, b.First)
		_, yLast := cam.DataToScreen(b.Gen, b.Last)
		first := rl.Vector2{X: x, Y: yFirst}
		if havePrev {
			rl.DrawLineEx(prev, first, thick, color)
		}
		if b.Min != b.Max {
			_, yMin := cam.DataToScreen(b.Gen, b.Min)
			_, yMax := cam.DataToScreen(b.Gen, b.Max)
			rl.DrawLineEx(rl.Vector2{X: x, Y: yMax}, rl.Vector2{X: x, Y: yMin}, thick, color)
		}
		if len(buckets) == 1 {
			rl.DrawCircleV(first, thick*2, color)
		}

		prev = rl.Vector2{X: x, Y: yLast}
		havePrev = true
	}
}

// drawLegend names each series in the top-right corner of the plot.
// Hidden series are listed greyed out.
func (c *Chart) drawLegend(strategies []dynamics.Strategy, cam *camera.Camera, visible map[dynamics.Strategy]bool) {
	th := c.renderer.Theme
	const swatch = 24

	width := int32(0)
	for _, s := range strategies {
		width = max(width, rl.MeasureText(s.String(), th.FontSize))
	}
	width += swatch + th.Padding*3
	height := int32(len(strategies))*th.LineHeight + th.Padding*2

	x := int32(cam.PlotX+cam.PlotW) - width - th.Padding
	y := int32(cam.PlotY) + th.Padding
	c.renderer.DrawPanel(x, y, width, height)

	y += th.Padding
	for _, s := range strategies {
		color := th.SeriesColor(s)
		textColor := th.LabelColor
		if !visible[s] {
			color = rl.Fade(color, 0.25)
			textColor = th.ValueColor
		}
		c.renderer.DrawSwatch(x+th.Padding, y, swatch, color)
		rl.DrawText(s.String(), x+th.Padding*2+swatch, y, th.FontSize, textColor)
		y += th.LineHeight
	}
}

// formatGeneration prints whole generation numbers without a decimal part.
func formatGeneration(g float64) string {
	if g == math.Trunc(g) {
		return fmt.Sprintf("%.0f", g)
	}
	return strconv.FormatFloat(g, 'f', -1, 64)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
