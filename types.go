package main

import (
	"linebattle/game"
)

// Game holds the presentation-side state: the core match plus the rendering
// and audio glue. It implements ebiten.Game.
type Game struct {
	match  *game.Match
	sounds *soundBank

	// fixed timestep derived from the configured tick rate
	dt float64

	// arena center in screen coordinates; the core simulates around the
	// origin
	centerX float64
	centerY float64

	// millisecond counter used to phase the blink flashing
	frameMillis int64

	resultLogged bool
}

// newGame wires a match to the presentation layer
func newGame(match *game.Match, sounds *soundBank) *Game {
	cfg := match.Config()
	return &Game{
		match:   match,
		sounds:  sounds,
		dt:      1.0 / float64(cfg.TPS),
		centerX: float64(screenWidth) / 2,
		centerY: uiAreaHeight + float64(screenHeight-uiAreaHeight)/2,
	}
}
