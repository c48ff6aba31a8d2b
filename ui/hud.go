package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/hawkdove/camera"
	"github.com/pthm-cable/hawkdove/dynamics"
)

// HUDData holds the run information shown above and below the chart.
type HUDData struct {
	Model        string
	Generations  int
	Finite       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders status text and a cursor readout.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the status line and, when the mouse is over the plot,
// the proportions at the generation under the cursor.
func (h *HUD) Draw(data HUDData, tr *dynamics.Trajectory, cam *camera.Camera) {
	th := h.renderer.Theme
	from, to := cam.VisibleRange()

	status := fmt.Sprintf("Model: %s | Generations: %d | Showing %.0f-%.0f",
		data.Model, data.Generations, from, to)
	h.renderer.DrawLabel(th.Padding, th.Padding, status)
	if !data.Finite {
		rl.DrawText("Trajectory contains NaN/Inf (degenerate parameters)", th.Padding, th.Padding+th.LineHeight, th.FontSize, rl.Maroon)
	}

	mouse := rl.GetMousePosition()
	if cam.Contains(mouse.X, mouse.Y) {
		gen, _ := cam.ScreenToData(mouse.X, mouse.Y)
		g := int(gen + 0.5)
		if g >= 0 && g < tr.Len() {
			sx, _ := cam.DataToScreen(float64(g), 0)
			rl.DrawLine(int32(sx), int32(cam.PlotY), int32(sx), int32(cam.PlotY+cam.PlotH), rl.Fade(th.Axis, 0.4))

			var parts []string
			for i, v := range tr.At(g) {
				parts = append(parts, fmt.Sprintf("%s %.4f", tr.Strategies()[i], v))
			}
			readout := fmt.Sprintf("gen %d: %s", g, strings.Join(parts, "  "))
			h.renderer.DrawValue(th.Padding, data.ScreenHeight-2*th.LineHeight, readout)
		}
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenWidth, screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
