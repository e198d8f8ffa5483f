package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{R: 22, G: 36, B: 82, A: 255} // dark blue
	hudColor        = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 168}
	backFill        = color.RGBA{R: 58, G: 40, B: 86, A: 255}
	backTrim        = color.RGBA{R: 196, G: 168, B: 96, A: 255}
	matchedTrim     = color.RGBA{R: 255, G: 226, B: 90, A: 255}
)

// HUD text positions, in screen pixels.
const (
	timeTextX  = 420
	failsTextX = 700
	scoreTextX = 820
	hudTextY   = 20
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawGridOffset(screen, 0, 0, g.cfg.ScreenWidth, g.cfg.ScreenHeight, 50, color.RGBA{R: 28, G: 44, B: 94, A: 255})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.0f", ebiten.ActualFPS()), 20, 20)

	r := g.machine.Round()
	if r != nil {
		for i := range r.Slots {
			drawCard(screen, &r.Slots[i], g.glyphFace)
		}
	}

	switch g.machine.State() {
	case StateInspect, StatePlay:
		g.drawHUD(screen, r)
	case StateEnded, StateIntermission:
		g.drawSummary(screen, r)
	}

	g.feed.Draw(screen, g.cfg.ScreenWidth-feedPanelWidth-8, g.cfg.ScreenHeight-8)
}

// drawCard renders a slot's face or back at its bounds.
func drawCard(screen *ebiten.Image, s *CardSlot, glyphFace *text.GoTextFace) {
	b := s.Bounds
	x, y, w, h := float32(b.X), float32(b.Y), float32(b.W), float32(b.H)

	vector.FillRect(screen, x+4, y+4, w, h, color.RGBA{R: 0, G: 0, B: 0, A: 70}, false)
	if !s.FaceUp {
		vector.FillRect(screen, x, y, w, h, backFill, false)
		vector.StrokeRect(screen, x+6, y+6, w-12, h-12, 2.0, backTrim, false)
		// Diagonal lattice on the back.
		cx, cy := x+w/2, y+h/2
		vector.StrokeLine(screen, cx, y+14, x+w-14, cy, 1.0, backTrim, true)
		vector.StrokeLine(screen, x+w-14, cy, cx, y+h-14, 1.0, backTrim, true)
		vector.StrokeLine(screen, cx, y+h-14, x+14, cy, 1.0, backTrim, true)
		vector.StrokeLine(screen, x+14, cy, cx, y+14, 1.0, backTrim, true)
		return
	}

	face := faceFor(s.PairID)
	vector.FillRect(screen, x, y, w, h, face.Fill, false)
	vector.StrokeRect(screen, x+5, y+5, w-10, h-10, 1.5, face.Ink, false)
	if s.Matched {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 3.0, matchedTrim, false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.X+b.W/2), float64(b.Y+b.H/2))
	op.ColorScale.ScaleWithColor(face.Ink)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, face.Glyph, glyphFace, op)
	ebitenutil.DebugPrintAt(screen, face.Name, int(b.X)+8, int(b.Y+b.H)-22)
}

// drawHUD renders the countdown, fails and score at fixed positions.
func (g *Game) drawHUD(screen *ebiten.Image, r *Round) {
	if secs, ok := g.machine.TimeLeft(); ok {
		drawText(screen, fmt.Sprintf("TIME LEFT:%d", secs), g.hudFace, timeTextX, hudTextY, hudColor)
	}
	if r == nil {
		return
	}
	drawText(screen, fmt.Sprintf("FAILS:%d", r.Fails), g.hudFace, failsTextX, hudTextY, hudColor)
	drawText(screen, fmt.Sprintf("SCORE:%d", r.Score), g.hudFace, scoreTextX, hudTextY, hudColor)
}

// drawSummary dims the board and shows the round result and session totals.
func (g *Game) drawSummary(screen *ebiten.Image, r *Round) {
	sw, sh := float32(g.cfg.ScreenWidth), float32(g.cfg.ScreenHeight)
	vector.FillRect(screen, 0, 0, sw, sh, overlayColor, false)

	lines := []string{}
	if r != nil {
		lines = append(lines,
			fmt.Sprintf("SCORE:%d", r.Score),
			fmt.Sprintf("FAILS:%d", r.Fails),
			endReasonLabel(r.Reason),
		)
	}
	lines = append(lines, "PRESS ANY MOUSE BUTTON")

	cx := float64(g.cfg.ScreenWidth) / 2
	y := float64(g.cfg.ScreenHeight)/2 - float64(len(lines))*20
	for _, l := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(cx, y)
		op.ColorScale.ScaleWithColor(hudColor)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, l, g.bigFace, op)
		y += 40
	}

	session := strings.Split(g.session.Summary(), "\n")
	if g.status != "" {
		session = append(session, g.status)
	} else {
		session = append(session, "[C] copy summary")
	}
	for i, l := range session {
		ebitenutil.DebugPrintAt(screen, l, 20, g.cfg.ScreenHeight-20-(len(session)-i)*14)
	}
}

func endReasonLabel(r EndReason) string {
	switch r {
	case EndFailLimit:
		return "TOO MANY FAILS"
	case EndTimeout:
		return "TIME IS UP"
	case EndCleared:
		return "BOARD CLEARED"
	default:
		return ""
	}
}

func drawText(dst *ebiten.Image, s string, face *text.GoTextFace, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, face, op)
}

func drawGridOffset(screen *ebiten.Image, offX, offY, w, h, spacing int, c color.Color) {
	if spacing <= 0 {
		return
	}
	ox, oy := float32(offX), float32(offY)
	for x := 0; x <= w; x += spacing {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, c, false)
	}
	for y := 0; y <= h; y += spacing {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, c, false)
	}
}
