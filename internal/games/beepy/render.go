package beepy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// RingChar is drawn along each ring.
const RingChar = '○'

// Render draws the prompt, or the pulsing rings while a note plays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.Playing() {
		g.drawRings(dst)
	} else if (g.tickCount/g.blinkTicks())%2 == 0 {
		dst.DrawTextCentered(dst.Height()/2, Prompt)
	}

	if g.lastNote >= 0 && g.lastNote < len(g.cfg.Notes) {
		label := fmt.Sprintf(" %d: %.2f Hz ", g.lastNote+1, g.cfg.Notes[g.lastNote])
		dst.DrawText(1, dst.Height()-1, label)
	}

	if g.paused {
		dst.DrawTextCenteredColored(0, "PAUSED", core.ColorBrightYellow)
	}
}

func (g *Game) blinkTicks() int {
	if g.cfg.BlinkTicks <= 0 {
		return 1
	}
	return g.cfg.BlinkTicks
}

// drawRings draws concentric circles whose radius breathes with time.
// Cells are about twice as tall as wide, so x is stretched.
func (g *Game) drawRings(dst *core.Screen) {
	cx, cy := float64(dst.Width())/2, float64(dst.Height())/2
	pulse := math.Abs(math.Sin(float64(g.tickCount)*10*math.Pi/180)) * 1.5
	step := math.Max(1, float64(dst.Height())/float64(2*(g.cfg.Rings+1)))

	for i := 0; i < g.cfg.Rings; i++ {
		radius := step*float64(i+1) + pulse
		color := core.Warm.At(i)
		points := int(radius * 16)
		for p := 0; p < points; p++ {
			a := 2 * math.Pi * float64(p) / float64(points)
			x := int(math.Round(cx + math.Cos(a)*radius*2))
			y := int(math.Round(cy + math.Sin(a)*radius))
			dst.SetColored(x, y, RingChar, color)
		}
	}
}
