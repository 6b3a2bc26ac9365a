package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"linebattle/game"
)

// toScreen converts an arena-space position (disk centered at the origin) to
// screen coordinates
func (g *Game) toScreen(x, y float64) (float32, float32) {
	return float32(x + g.centerX), float32(y + g.centerY)
}

// blinkFlashOn phases the steal flash so blinking lines alternate between
// the owner color and white
func (g *Game) blinkFlashOn() bool {
	return (g.frameMillis/blinkFlashIntervalMs)%2 == 0
}

// drawArena draws the confining circle
func (g *Game) drawArena(screen *ebiten.Image) {
	cfg := g.match.Config()
	cx, cy := g.toScreen(0, 0)
	vector.StrokeCircle(screen, cx, cy, float32(cfg.DiskRadius), arenaStrokeWidth, colorArena, true)
}

// drawLines draws every target: unowned ones as faint perimeter dots, owned
// ones as a line from the owner's live position. Blinking lines are thicker
// and flash white.
func (g *Game) drawLines(screen *ebiten.Image, snapshot game.Snapshot) {
	for _, target := range snapshot.Targets {
		if target.Owner == game.NoOwner {
			x, y := g.toScreen(target.X, target.Y)
			vector.DrawFilledCircle(screen, x, y, freeTargetRadius, colorFreeTarget, true)
			continue
		}
		// An eliminated owner has no live position to anchor the line,
		// so the target falls back to the free marker
		owner := snapshot.Players[target.Owner]
		if owner.Eliminated {
			x, y := g.toScreen(target.X, target.Y)
			vector.DrawFilledCircle(screen, x, y, freeTargetRadius, colorFreeTarget, true)
			continue
		}

		width := float32(lineStrokeWidth)
		var clr color.Color = owner.Color
		if target.Blinking {
			width = blinkStrokeWidth
			if g.blinkFlashOn() {
				clr = colorBlink
			}
		}

		x1, y1 := g.toScreen(target.OwnerX, target.OwnerY)
		x2, y2 := g.toScreen(target.X, target.Y)
		vector.StrokeLine(screen, x1, y1, x2, y2, width, clr, true)
	}
}

// drawPlayers draws each active player: filled disc, darker outline,
// velocity arrow, and a warning ring while power-reduced
func (g *Game) drawPlayers(screen *ebiten.Image, snapshot game.Snapshot) {
	for _, player := range snapshot.Players {
		if player.Eliminated {
			continue
		}

		radius := float32(player.Radius)
		if player.PowerReduced {
			radius *= powerReducedShrink
		}

		cx, cy := g.toScreen(player.X, player.Y)
		vector.DrawFilledCircle(screen, cx, cy, radius, player.Color, true)
		vector.StrokeCircle(screen, cx, cy, radius, outlineStrokeWidth, darken(player.Color), true)

		// Velocity arrow once the player is moving visibly
		if abs(player.VX) > velocityIndicatorMin || abs(player.VY) > velocityIndicatorMin {
			tipX, tipY := g.toScreen(player.X+player.VX*velocityIndicatorScale, player.Y+player.VY*velocityIndicatorScale)
			vector.StrokeLine(screen, cx, cy, tipX, tipY, outlineStrokeWidth, colorText, true)
		}

		if player.PowerReduced {
			vector.StrokeCircle(screen, cx, cy, radius+3, 1, colorWeakRing, true)
		}
	}
}

// darken shifts a player color toward black for outlines
func darken(c color.RGBA) color.RGBA {
	sub := func(v uint8) uint8 {
		if v < 50 {
			return 0
		}
		return v - 50
	}
	return color.RGBA{R: sub(c.R), G: sub(c.G), B: sub(c.B), A: c.A}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
