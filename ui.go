package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"linebattle/game"
)

// drawHUD draws the compact scoreboard strip at the top of the window
func (g *Game) drawHUD(screen *ebiten.Image, snapshot game.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, screenWidth, uiAreaHeight, colorUIPanel, false)
	vector.StrokeLine(screen, 0, uiAreaHeight-1, screenWidth, uiAreaHeight-1, 2, colorArena, false)

	ebitenutil.DebugPrintAt(screen, "Line Battle", screenWidth/2-34, 8)

	scoreY := 45
	for i, player := range snapshot.Players {
		rowY := scoreY + i*scoreRowHeight

		vector.DrawFilledRect(screen, 15, float32(rowY), swatchSize, swatchSize, player.Color, false)
		vector.StrokeRect(screen, 15, float32(rowY), swatchSize, swatchSize, 1, colorText, false)

		row := fmt.Sprintf("%s: %d", player.Name, player.Score)
		if player.Eliminated {
			row += " [OUT]"
		} else if player.PowerReduced {
			row += " [WEAKENED]"
		}
		ebitenutil.DebugPrintAt(screen, row, 38, rowY)
	}

	status := fmt.Sprintf("Time: %4.1fs | Targets: %d | FPS: %.0f",
		snapshot.Remaining, len(snapshot.Targets), ebiten.ActualFPS())
	ebitenutil.DebugPrintAt(screen, status, 15, uiAreaHeight-40)

	if snapshot.Ended {
		banner := "Match over"
		if snapshot.Winner != game.NoWinner {
			w := snapshot.Players[snapshot.Winner]
			banner = fmt.Sprintf("%s wins with %d points!", w.Name, w.Score)
		}
		ebitenutil.DebugPrintAt(screen, banner, 15, uiAreaHeight-20)
	}
}
