package game

import (
	"math"
	"testing"
)

func newTestMatch(t *testing.T, mutate func(*Config)) *Match {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	m, err := NewMatch(cfg)
	if err != nil {
		t.Fatalf("NewMatch: %v", err)
	}
	return m
}

func TestNewMatchRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.NumPlayers = 1
	if _, err := NewMatch(cfg); err == nil {
		t.Fatal("NewMatch accepted a single-player config")
	}
}

func TestNewMatchStartingAssignment(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 2 })

	owned := 0
	for _, target := range m.Targets {
		if target.Owned() {
			owned++
		}
	}
	if owned != 2 {
		t.Fatalf("%d targets owned at start, want 2", owned)
	}
	for _, player := range m.Players {
		if count := m.OwnedCount(player.ID); count != 1 {
			t.Errorf("player %d owns %d targets at start, want 1", player.ID, count)
		}
	}
	if m.Winner() != NoWinner {
		t.Fatalf("winner = %d at start, want NoWinner", m.Winner())
	}
}

func TestTickAdvancesClock(t *testing.T) {
	m := newTestMatch(t, nil)

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if m.Elapsed() != testDT {
		t.Fatalf("elapsed = %f, want %f", m.Elapsed(), testDT)
	}
	want := m.Config().MatchDuration - testDT
	if got := m.Remaining(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("remaining = %f, want %f", got, want)
	}
}

func TestSpeedBoostEpochs(t *testing.T) {
	m := newTestMatch(t, nil)
	cfg := m.Config()

	before := make([]float64, len(m.Players))
	for i, p := range m.Players {
		before[i] = p.Speed()
	}

	m.elapsed = cfg.SpeedBoostInterval + 0.001
	m.applySpeedBoosts()

	if m.BoostEpoch() != 1 {
		t.Fatalf("boost epoch = %d, want 1", m.BoostEpoch())
	}
	for i, p := range m.Players {
		want := before[i] * cfg.SpeedBoostFactor
		if got := p.Speed(); math.Abs(got-want) > 1e-9 {
			t.Errorf("player %d speed = %f after boost, want %f", i, got, want)
		}
	}

	// Same epoch does not apply twice
	m.applySpeedBoosts()
	if m.BoostEpoch() != 1 {
		t.Fatalf("boost epoch advanced without elapsed time: %d", m.BoostEpoch())
	}
}

func TestEndgameAlertFiresOnce(t *testing.T) {
	m := newTestMatch(t, nil)
	cfg := m.Config()

	m.elapsed = cfg.MatchDuration - cfg.EndAlertSeconds + 0.5
	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	alerts := 0
	for _, e := range m.DrainEvents() {
		if e.Kind == EventEndgameAlert {
			alerts++
		}
	}
	if alerts != 1 {
		t.Fatalf("got %d endgame alerts, want 1", alerts)
	}

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	for _, e := range m.DrainEvents() {
		if e.Kind == EventEndgameAlert {
			t.Fatal("endgame alert fired twice")
		}
	}
}

func TestTimerEndHighestScoreWins(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 3 })

	m.Players[0].Score = 5
	m.Players[1].Score = 9
	m.Players[2].Score = 7
	m.elapsed = m.Config().MatchDuration

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !m.Ended() {
		t.Fatal("match did not end at the timer")
	}
	if m.Winner() != 1 {
		t.Fatalf("winner = %d, want 1", m.Winner())
	}
}

func TestTimerEndTieLowestID(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 3 })

	m.Players[0].Score = 4
	m.Players[1].Score = 9
	m.Players[2].Score = 9
	m.elapsed = m.Config().MatchDuration

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if m.Winner() != 1 {
		t.Fatalf("winner = %d, want 1 (tie broken by lowest id)", m.Winner())
	}
}

func TestTimerEndSkipsEliminated(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 3 })

	m.Players[0].Score = 5
	m.Players[1].Score = 9
	m.Players[1].Eliminated = true
	m.Players[2].Score = 7
	m.elapsed = m.Config().MatchDuration

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if m.Winner() != 2 {
		t.Fatalf("winner = %d, want 2 (eliminated top scorer excluded)", m.Winner())
	}
}

func TestTimerEndAllEliminatedFallback(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 2 })

	m.Players[0].Score = 3
	m.Players[0].Eliminated = true
	m.Players[1].Score = 8
	m.Players[1].Eliminated = true
	m.elapsed = m.Config().MatchDuration

	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if m.Winner() != 1 {
		t.Fatalf("winner = %d, want 1 (highest score overall)", m.Winner())
	}
}

func TestVictoryScoreEndsMatch(t *testing.T) {
	m := newTestMatch(t, nil)

	m.Players[1].Score = m.Config().VictoryScore
	if err := m.Tick(testDT); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if !m.Ended() {
		t.Fatal("match did not end at the victory score")
	}
	if m.Winner() != 1 {
		t.Fatalf("winner = %d, want 1", m.Winner())
	}
}

func TestEndedMatchFreezesPlayers(t *testing.T) {
	m := newTestMatch(t, nil)
	m.ended = true
	m.winner = 0

	// Arm a blink so its decay is observable while frozen
	m.Targets[0].SetOwner(0)
	m.Targets[0].SetOwner(1)
	if !m.Targets[0].Blinking() {
		t.Fatal("blink not armed")
	}

	x, y := m.Players[0].X, m.Players[0].Y
	for i := 0; i < m.Config().BlinkFrames+1; i++ {
		if err := m.Tick(testDT); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}

	if m.Players[0].X != x || m.Players[0].Y != y {
		t.Fatal("players moved after the match ended")
	}
	if m.Targets[0].Blinking() {
		t.Fatal("blink did not decay after the match ended")
	}
	if m.Elapsed() != 0 {
		t.Fatalf("clock advanced after the match ended: %f", m.Elapsed())
	}
}

func TestTickDetectsNonFiniteState(t *testing.T) {
	m := newTestMatch(t, nil)

	m.Players[0].X = math.NaN()
	if err := m.Tick(testDT); err == nil {
		t.Fatal("Tick accepted a NaN position")
	}
}

func TestMatchInvariantsOverTime(t *testing.T) {
	m := newTestMatch(t, func(cfg *Config) { cfg.NumPlayers = 4 })
	cfg := m.Config()

	// Collision rebounds and boost epochs may briefly exceed the speed cap
	// until the next motion update clamps, and collision separation may nudge
	// a player past the rebound circle by part of a radius.
	maxSpeed := cfg.MaxSpeed * cfg.CollisionBoost * cfg.SpeedBoostFactor
	maxDist := cfg.DiskRadius + cfg.PlayerRadius

	prevScores := make([]int, len(m.Players))
	for i := 0; i < 600; i++ {
		if err := m.Tick(testDT); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		m.DrainEvents()

		for _, p := range m.Players {
			if p.Eliminated {
				continue
			}
			if dist := math.Hypot(p.X, p.Y); dist > maxDist {
				t.Fatalf("tick %d: player %d at distance %f outside disk", i, p.ID, dist)
			}
			if speed := p.Speed(); speed > maxSpeed*(1+1e-9) {
				t.Fatalf("tick %d: player %d speed %f exceeds bound %f", i, p.ID, speed, maxSpeed)
			}
		}
		for j, p := range m.Players {
			if p.Score < prevScores[j] {
				t.Fatalf("tick %d: player %d score dropped %d -> %d", i, j, prevScores[j], p.Score)
			}
			prevScores[j] = p.Score
		}
	}
}
