package jumper

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-jumper/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	PlayerHead   = '☻'
	CoinChar     = '●'
	CoinEdgeChar = '|'
	WalkerChar   = 'm'
	ShellChar    = '@'
	SpikeChar    = '▲'
	GhostChar    = 'ᗣ'
	ParticleChar = '·'
	HeartChar    = '♥'
)

// hudRows is the number of screen rows reserved above the play field.
const hudRows = 1

// viewport maps world pixels onto screen cells.
type viewport struct {
	world      Bounds
	cols, rows int
	shakeOff   int
}

func newViewport(dst *core.Screen, world Bounds, shake int) viewport {
	return viewport{
		world:    world,
		cols:     dst.Width(),
		rows:     dst.Height() - hudRows,
		shakeOff: shake,
	}
}

func (v viewport) cell(x, y float64) (int, int) {
	cx := int(x * float64(v.cols) / v.world.W)
	cy := int(y * float64(v.rows) / v.world.H)
	return cx + v.shakeOff, cy + hudRows
}

// span converts a world rectangle to a cell rectangle at least one cell big.
func (v viewport) span(r core.Rect) (x, y, w, h int) {
	x, y = v.cell(r.X, r.Y)
	x2, y2 := v.cell(r.Right(), r.Bottom())
	return x, y, max(1, x2-x), max(1, y2-y)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	w := g.world
	v := newViewport(dst, w.bounds(), w.shakeOffset(g.ticks))

	for _, p := range w.platforms {
		x, y, cw, ch := v.span(p.Rect)
		dst.DrawRect(x, y, cw, ch, p.Surface.Glyph(), p.Surface.Color())
	}

	for _, c := range w.coins {
		if c.Collected {
			continue
		}
		x, y := v.cell(c.Rect().Center())
		glyph := CoinChar
		if c.Spin%90 > 60 {
			glyph = CoinEdgeChar
		}
		dst.SetColored(x, y, glyph, core.ColorBrightYellow)
	}

	for _, p := range w.powerUps {
		if p.Collected {
			continue
		}
		cx, cy := p.Rect().Center()
		x, y := v.cell(cx, cy+math.Sin(p.Phase)*3)
		dst.SetColored(x, y, p.Kind.Glyph(), p.Kind.Color())
	}

	for _, e := range w.enemies {
		if e.Alive {
			g.drawEnemy(dst, v, e)
		}
	}

	for _, p := range w.particles {
		x, y := v.cell(p.X, p.Y)
		dst.SetColored(x, y, ParticleChar, p.Color)
	}

	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	switch {
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case w.phase == PhaseWon:
		drawCenteredMessage(dst, "LEVEL CLEAR!",
			fmt.Sprintf("Time: %s  Score: %d  |  Enter to play again", FormatDuration(w.finishMs), w.score))
	case w.phase == PhaseGameOver:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Enter to play again", w.score))
	}
}

func (g *Game) drawEnemy(dst *core.Screen, v viewport, e Enemy) {
	r := e.Rect()
	r.Y += e.HoverOffset(g.cfg.Enemies.GhostAmplitude)
	x, y, cw, ch := v.span(r)

	glyph, color := WalkerChar, core.ColorRed
	switch e.Kind {
	case EnemyShell:
		glyph, color = ShellChar, core.ColorGreen
	case EnemySpike:
		glyph, color = SpikeChar, core.ColorBrightRed
	case EnemyGhost:
		glyph, color = GhostChar, core.ColorBrightWhite
	}
	dst.DrawRect(x, y, cw, ch, glyph, color)
}

func (g *Game) drawPlayer(dst *core.Screen, v viewport) {
	w := g.world
	p := w.player

	// Blink while invulnerable after a hit
	if g.now < w.invulnerableUntil && (g.ticks/6)%2 == 0 {
		return
	}

	color := core.ColorBrightBlue
	if p.Effects.Has(PowerInvincible) {
		color = core.Rainbow.At(int(g.ticks / 4))
	}

	x, y, cw, ch := v.span(p.Rect())
	dst.DrawRect(x, y, cw, ch, PlayerChar, color)

	headX := x
	if p.FacingRight {
		headX = x + cw - 1
	}
	dst.SetColored(headX, y, PlayerHead, core.ColorBrightWhite)
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	left := 0
	for _, c := range w.coins {
		if !c.Collected {
			left++
		}
	}

	hud := fmt.Sprintf(" Score: %d  Coins: %d/%d ", w.score, len(w.coins)-left, len(w.coins))
	if w.combo > 1 {
		hud += fmt.Sprintf(" x%d ", w.combo)
	}
	dst.DrawText(0, 0, hud)

	x := len([]rune(hud))
	for i := 0; i < w.lives; i++ {
		dst.SetColored(x+i, 0, HeartChar, core.ColorRed)
	}
	x += w.lives + 1

	for _, eff := range w.player.Effects {
		label := fmt.Sprintf("%c%ds ", eff.Kind.Glyph(), (eff.UntilMs-g.now+999)/1000)
		dst.DrawTextColored(x, 0, label, eff.Kind.Color())
		x += len([]rune(label))
	}

	remaining := w.Remaining(g.now)
	timeColor := core.ColorDefault
	if remaining <= g.cfg.Gameplay.WarningMs {
		timeColor = core.ColorBrightRed
	}
	timer := fmt.Sprintf(" Time: %s ", FormatClock(remaining))
	dst.DrawTextColored(dst.Width()-len(timer), 0, timer, timeColor)
}

// shakeOffset returns a one-cell horizontal jitter while a shake is active.
func (w *World) shakeOffset(ticks int64) int {
	if w.now >= w.shakeUntil {
		return 0
	}
	if ticks%2 == 0 {
		return 1
	}
	return -1
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCenteredColored(boxY+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(boxY+3, subtitle)
}

// FormatClock renders milliseconds as m:ss, rounding up so the display
// reads 0:00 only when time is actually out.
func FormatClock(ms int64) string {
	secs := (ms + 999) / 1000
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// FormatDuration renders a completion time as m:ss.t.
func FormatDuration(ms int64) string {
	tenths := ms / 100
	return fmt.Sprintf("%d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
