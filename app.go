package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"linebattle/game"
)

// Update advances the simulation by one fixed timestep and routes the
// resulting events to the audio layer
func (g *Game) Update() error {
	if g.handleInput() {
		return ebiten.Termination
	}

	g.frameMillis += int64(g.dt * 1000)

	if err := g.match.Tick(g.dt); err != nil {
		return err
	}

	for _, event := range g.match.DrainEvents() {
		g.sounds.handle(event)
	}

	if g.match.Ended() && !g.resultLogged {
		g.resultLogged = true
		if winner := g.match.Winner(); winner != game.NoWinner {
			p := g.match.Players[winner]
			log.Printf("match over: %s wins with %d points", p.Name, p.Score)
		} else {
			log.Printf("match over: no winner")
		}
	}

	return nil
}

// Draw renders one frame from a read-only snapshot of the match
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	snapshot := g.match.Snapshot()
	g.drawArena(screen)
	g.drawLines(screen, snapshot)
	g.drawPlayers(screen, snapshot)
	g.drawHUD(screen, snapshot)
}

// Layout returns the fixed window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}
