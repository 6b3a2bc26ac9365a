package game

import (
	"image/color"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejectsPlayerCount(t *testing.T) {
	for _, count := range []int{-1, 0, 1, 7, 100} {
		cfg := DefaultConfig()
		cfg.NumPlayers = count
		if err := cfg.Validate(); err == nil {
			t.Errorf("player count %d accepted, want error", count)
		}
	}
}

func TestValidateRejectsDuration(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatchDuration = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero duration accepted, want error")
	}
	cfg.MatchDuration = -5
	if err := cfg.Validate(); err == nil {
		t.Fatal("negative duration accepted, want error")
	}
}

func TestValidateRejectsVictoryScore(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VictoryScore = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("zero victory score accepted, want error")
	}
}

func TestTargetCountFromDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DiskRadius = 350
	cfg.TargetDensity = 0.035
	cfg.MinTargets = 30

	// circumference ~2199.1, x0.035 = 76.9 -> 76
	if got := cfg.TargetCount(); got != 76 {
		t.Fatalf("target count = %d, want 76", got)
	}
}

func TestTargetCountFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TargetDensity = 0.001
	cfg.MinTargets = 30

	if got := cfg.TargetCount(); got != 30 {
		t.Fatalf("target count = %d, want floor of 30", got)
	}
}

func TestPlayerSetupForDefaults(t *testing.T) {
	cfg := DefaultConfig()

	setup := cfg.PlayerSetupFor(0)
	if setup.Name != "Player 1" {
		t.Errorf("name = %q, want %q", setup.Name, "Player 1")
	}
	if setup.Color != DefaultPalette[0] {
		t.Errorf("color = %v, want palette entry %v", setup.Color, DefaultPalette[0])
	}
}

func TestPlayerSetupForOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Players = []PlayerSetup{{Name: "Ada", Color: color.RGBA{R: 1, G: 2, B: 3, A: 255}}}

	setup := cfg.PlayerSetupFor(0)
	if setup.Name != "Ada" {
		t.Errorf("name = %q, want %q", setup.Name, "Ada")
	}
	if setup.Color.R != 1 {
		t.Errorf("color override not applied: %v", setup.Color)
	}
}
