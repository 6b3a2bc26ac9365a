package main

import (
	"flag"
	"log"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"linebattle/game"
)

// timeSeed derives a seed for unseeded runs
func timeSeed() int64 {
	return time.Now().UnixNano()
}

var (
	playersFlag  = flag.Int("players", 3, "number of players (2-6)")
	durationFlag = flag.Float64("duration", 60, "match duration in seconds")
	goalFlag     = flag.Int("goal", 200, "score that ends the match immediately")
	seedFlag     = flag.Int64("seed", 0, "simulation seed (0 picks a time-based seed)")
	namesFlag    = flag.String("names", "", "comma-separated player names")
	muteFlag     = flag.Bool("mute", false, "disable sound effects")
)

func main() {
	flag.Parse()

	cfg := game.DefaultConfig()
	cfg.NumPlayers = *playersFlag
	cfg.MatchDuration = *durationFlag
	cfg.VictoryScore = *goalFlag
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	} else {
		cfg.Seed = timeSeed()
	}
	for i, name := range strings.Split(*namesFlag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		for len(cfg.Players) <= i {
			cfg.Players = append(cfg.Players, game.PlayerSetup{})
		}
		cfg.Players[i].Name = name
	}

	match, err := game.NewMatch(cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("match: %d players, %d targets, %.0fs, first to %d",
		cfg.NumPlayers, len(match.Targets), cfg.MatchDuration, cfg.VictoryScore)

	sounds := newSoundBank(*muteFlag)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("Line Battle")
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(newGame(match, sounds)); err != nil {
		log.Fatal(err)
	}
}
