package game

import (
	"fmt"
	"image/color"
	"math"
)

// Player count limits supported by the simulation
const (
	MinPlayers = 2
	MaxPlayers = 6
)

// PlayerSetup holds the per-player display configuration
type PlayerSetup struct {
	// Name is the display name shown in the scoreboard
	Name string

	// Color is the player's display color
	Color color.RGBA
}

// Config holds all match configuration. It is treated as immutable once a
// match has been constructed from it.
type Config struct {
	// NumPlayers is the number of competing players (MinPlayers..MaxPlayers)
	NumPlayers int

	// MatchDuration is the match length in seconds
	MatchDuration float64

	// VictoryScore ends the match immediately when a player reaches it
	VictoryScore int

	// DiskRadius is the radius of the confining disk in pixels
	DiskRadius float64

	// PlayerRadius is the body radius of every player in pixels
	PlayerRadius float64

	// InitialSpeed is the spawn speed aimed at the disk center
	InitialSpeed float64

	// MinSpeed is the base speed floor in pixels per second
	MinSpeed float64

	// MinSpeedGrowth raises the speed floor per unit of noise time,
	// preventing long-term stalling
	MinSpeedGrowth float64

	// SpeedCreep is a per-frame multiplicative acceleration applied when
	// a player is already above the speed floor
	SpeedCreep float64

	// MaxSpeed is the hard velocity magnitude clamp in pixels per second
	MaxSpeed float64

	// MoveSpeed is the rate at which each player's noise time advances
	MoveSpeed float64

	// NoiseAmplitude scales the raw noise samples into a steering force
	NoiseAmplitude float64

	// NoiseDamping further scales the steering force before it is added
	// to the velocity
	NoiseDamping float64

	// WarmupSeconds is the window after spawn during which the steering
	// force ramps up from zero
	WarmupSeconds float64

	// RepulsionForce is the inverse-square repulsion constant
	RepulsionForce float64

	// RepulsionBoost multiplies the repulsion force magnitude
	RepulsionBoost float64

	// RepulsionAccel is the extra acceleration multiplier applied to the
	// repulsion force. Deliberately exaggerated to keep the simulation
	// visually energetic.
	RepulsionAccel float64

	// RepulsionRange is the activation range as a multiple of the summed
	// radii of the two players
	RepulsionRange float64

	// BounceMargin triggers the wall rebound this many player radii
	// before full containment
	BounceMargin float64

	// BounceJitterDeg is the random angular jitter applied to the rebound
	// direction, in degrees to each side
	BounceJitterDeg float64

	// BounceMin and BounceMax bound the randomized rebound coefficient.
	// BounceMin >= 1.0 keeps rebounds from bleeding speed over time.
	BounceMin float64
	BounceMax float64

	// CollisionBoost multiplies the shared speed after a player-player
	// collision
	CollisionBoost float64

	// CollisionJitterDeg jitters each post-collision heading, in degrees
	// to each side
	CollisionJitterDeg float64

	// PowerReductionFrames is the penalty countdown applied to a player
	// who just lost a line
	PowerReductionFrames int

	// BlinkFrames is the visual blink countdown armed when a line is
	// stolen from another player
	BlinkFrames int

	// TargetDensity is the number of targets per pixel of circumference
	TargetDensity float64

	// MinTargets floors the target count
	MinTargets int

	// SpawnJitter is the random angular offset, in radians, applied to
	// the evenly spaced spawn angles
	SpawnJitter float64

	// SpeedBoostInterval is the elapsed-time interval, in seconds,
	// between global acceleration epochs
	SpeedBoostInterval float64

	// SpeedBoostFactor multiplies every active player's velocity at each
	// acceleration epoch
	SpeedBoostFactor float64

	// EndAlertSeconds is the remaining-time window that fires the
	// one-shot end-game alert
	EndAlertSeconds float64

	// TPS is the fixed simulation rate in ticks per second
	TPS int

	// Seed seeds the match RNG and, derived from it, each player's
	// private noise field
	Seed int64

	// Players optionally overrides per-player names and colors. Missing
	// entries fall back to defaults.
	Players []PlayerSetup
}

// DefaultPalette is the default player color cycle
var DefaultPalette = []color.RGBA{
	{R: 255, G: 100, B: 100, A: 255}, // red
	{R: 100, G: 255, B: 100, A: 255}, // green
	{R: 100, G: 100, B: 255, A: 255}, // blue
	{R: 255, G: 255, B: 100, A: 255}, // yellow
	{R: 255, G: 100, B: 255, A: 255}, // magenta
	{R: 100, G: 255, B: 255, A: 255}, // cyan
}

// DefaultConfig returns the canonical match configuration
func DefaultConfig() Config {
	return Config{
		NumPlayers:           3,
		MatchDuration:        60.0,
		VictoryScore:         200,
		DiskRadius:           350.0,
		PlayerRadius:         20.0,
		InitialSpeed:         100.0,
		MinSpeed:             30.0,
		MinSpeedGrowth:       0.02,
		SpeedCreep:           1.002,
		MaxSpeed:             200.0,
		MoveSpeed:            4.0,
		NoiseAmplitude:       8.0,
		NoiseDamping:         0.2,
		WarmupSeconds:        2.0,
		RepulsionForce:       500.0,
		RepulsionBoost:       3.0,
		RepulsionAccel:       2.5,
		RepulsionRange:       2.5,
		BounceMargin:         0.5,
		BounceJitterDeg:      20.0,
		BounceMin:            1.0,
		BounceMax:            1.1,
		CollisionBoost:       1.1,
		CollisionJitterDeg:   25.0,
		PowerReductionFrames: 6,
		BlinkFrames:          5,
		TargetDensity:        0.06,
		MinTargets:           40,
		SpawnJitter:          0.15,
		SpeedBoostInterval:   5.0,
		SpeedBoostFactor:     1.15,
		EndAlertSeconds:      3.0,
		TPS:                  60,
		Seed:                 1,
	}
}

// Validate checks the configuration for values the simulation cannot run with
func (c Config) Validate() error {
	if c.NumPlayers < MinPlayers || c.NumPlayers > MaxPlayers {
		return fmt.Errorf("player count %d outside supported range %d..%d", c.NumPlayers, MinPlayers, MaxPlayers)
	}
	if c.MatchDuration <= 0 {
		return fmt.Errorf("match duration %.2f must be positive", c.MatchDuration)
	}
	if c.VictoryScore <= 0 {
		return fmt.Errorf("victory score %d must be positive", c.VictoryScore)
	}
	if c.DiskRadius <= 0 {
		return fmt.Errorf("disk radius %.2f must be positive", c.DiskRadius)
	}
	if c.PlayerRadius <= 0 || c.PlayerRadius >= c.DiskRadius {
		return fmt.Errorf("player radius %.2f must be positive and smaller than the disk radius", c.PlayerRadius)
	}
	if c.MaxSpeed <= 0 {
		return fmt.Errorf("max speed %.2f must be positive", c.MaxSpeed)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tick rate %d must be positive", c.TPS)
	}
	if c.MinTargets < c.NumPlayers {
		return fmt.Errorf("minimum target count %d must cover %d players", c.MinTargets, c.NumPlayers)
	}
	return nil
}

// TargetCount derives the number of perimeter targets from the disk
// circumference and the configured density, floored at MinTargets
func (c Config) TargetCount() int {
	circumference := 2 * math.Pi * c.DiskRadius
	n := int(circumference * c.TargetDensity)
	if n < c.MinTargets {
		n = c.MinTargets
	}
	return n
}

// PlayerSetupFor returns the name and color for a player id, falling back to
// generated defaults when no override is configured
func (c Config) PlayerSetupFor(id int) PlayerSetup {
	setup := PlayerSetup{}
	if id < len(c.Players) {
		setup = c.Players[id]
	}
	if setup.Name == "" {
		setup.Name = fmt.Sprintf("Player %d", id+1)
	}
	var zero color.RGBA
	if setup.Color == zero {
		setup.Color = DefaultPalette[id%len(DefaultPalette)]
	}
	return setup
}
