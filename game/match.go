package game

import (
	"fmt"
	"math"
	"math/rand"
)

// NoWinner marks a match without a resolved winner
const NoWinner = -1

// Match owns the players and targets for the duration of one game and drives
// the per-tick update ordering. It must only be mutated from Tick; the
// simulation is single-threaded and frame-stepped.
type Match struct {
	// Players is indexed by player id
	Players []*Player

	// Targets is indexed by target id
	Targets []*Target

	cfg Config
	rng *rand.Rand

	resolver *Resolver

	elapsed       float64
	ended         bool
	winner        int
	boostEpoch    int
	endAlertFired bool

	events []Event
}

// NewMatch validates the configuration, builds the players and perimeter
// targets, and assigns each player its nearest unowned target as a starting
// line
func NewMatch(cfg Config) (*Match, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid match config: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))

	m := &Match{
		cfg:    cfg,
		rng:    rng,
		winner: NoWinner,
	}
	m.resolver = NewResolver(&m.cfg, rng)

	// The disk is centered at the origin; the presentation layer applies
	// its own screen offset.
	for id := 0; id < cfg.NumPlayers; id++ {
		m.Players = append(m.Players, NewPlayer(id, &m.cfg, 0, 0, rng))
	}

	count := cfg.TargetCount()
	for id := 0; id < count; id++ {
		angle := 2 * math.Pi * float64(id) / float64(count)
		m.Targets = append(m.Targets, NewTarget(id, angle, 0, 0, cfg.DiskRadius, cfg.BlinkFrames))
	}

	m.assignStartingTargets()

	return m, nil
}

// assignStartingTargets gives each player, in ascending id order, its single
// nearest unowned target
func (m *Match) assignStartingTargets() {
	for _, player := range m.Players {
		var closest *Target
		minDistSq := math.Inf(1)

		for _, target := range m.Targets {
			if target.Owned() {
				continue
			}
			distSq := (player.X-target.X)*(player.X-target.X) + (player.Y-target.Y)*(player.Y-target.Y)
			if distSq < minDistSq {
				minDistSq = distSq
				closest = target
			}
		}

		if closest != nil {
			closest.SetOwner(player.ID)
		}
	}
}

// Tick advances the match by one fixed timestep. After the match has ended
// only the blink decay keeps running. A NaN or Inf in any player's kinematic
// state is a fatal internal-consistency failure and is returned as an error.
func (m *Match) Tick(dt float64) error {
	if m.ended {
		for _, target := range m.Targets {
			target.UpdateEffects()
		}
		return nil
	}

	m.elapsed += dt

	m.applySpeedBoosts()

	if !m.endAlertFired && m.Remaining() <= m.cfg.EndAlertSeconds {
		m.endAlertFired = true
		m.emit(Event{Kind: EventEndgameAlert, Player: NoOwner, Other: NoOwner, Target: -1})
	}

	if m.Remaining() <= 0 {
		m.endByTimer()
		return nil
	}

	for _, player := range m.Players {
		if player.UpdatePosition(dt, m.Players) {
			m.emit(Event{Kind: EventBoundaryBounce, Player: player.ID, Other: NoOwner, Target: -1})
		}
		player.UpdatePowerReduction()
	}

	for _, target := range m.Targets {
		target.UpdateEffects()
	}

	m.resolver.ResolvePlayerCollisions(m.Players, m.emit)
	m.resolver.ResolveTargetTouches(m.Players, m.Targets, m.emit)
	m.resolver.ResolveLineCrossings(m.Players, m.Targets, m.emit)
	m.resolver.CheckEliminations(m.Players, m.Targets, m.emit)

	m.checkVictory()

	return m.auditKinematics()
}

// applySpeedBoosts advances the acceleration epoch counter and multiplies
// every active player's velocity once per elapsed interval
func (m *Match) applySpeedBoosts() {
	if m.cfg.SpeedBoostInterval <= 0 {
		return
	}
	due := int(m.elapsed / m.cfg.SpeedBoostInterval)
	for m.boostEpoch < due {
		m.boostEpoch++
		for _, player := range m.Players {
			if player.Eliminated {
				continue
			}
			player.VX *= m.cfg.SpeedBoostFactor
			player.VY *= m.cfg.SpeedBoostFactor
		}
	}
}

// checkVictory ends the match as soon as any player reaches the victory
// score. If several reach it in the same tick the lowest id wins.
func (m *Match) checkVictory() {
	for _, player := range m.Players {
		if player.Score >= m.cfg.VictoryScore {
			m.ended = true
			m.winner = player.ID
			return
		}
	}
}

// endByTimer resolves the winner when the clock runs out: the
// highest-scoring non-eliminated player, ties broken by lowest id. If no
// player is left standing the highest score overall wins.
func (m *Match) endByTimer() {
	m.ended = true

	best := NoWinner
	for _, player := range m.Players {
		if player.Eliminated {
			continue
		}
		if best == NoWinner || player.Score > m.Players[best].Score {
			best = player.ID
		}
	}
	if best == NoWinner {
		for _, player := range m.Players {
			if best == NoWinner || player.Score > m.Players[best].Score {
				best = player.ID
			}
		}
	}
	m.winner = best
}

// auditKinematics surfaces a violated numeric invariant instead of letting
// NaN positions propagate silently
func (m *Match) auditKinematics() error {
	for _, p := range m.Players {
		for _, v := range [4]float64{p.X, p.Y, p.VX, p.VY} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("player %d kinematic state is not finite (pos %.2f,%.2f vel %.2f,%.2f)", p.ID, p.X, p.Y, p.VX, p.VY)
			}
		}
	}
	return nil
}

func (m *Match) emit(e Event) {
	m.events = append(m.events, e)
}

// DrainEvents returns the events accumulated since the last drain and clears
// the queue
func (m *Match) DrainEvents() []Event {
	events := m.events
	m.events = nil
	return events
}

// Elapsed returns the simulated time since match start in seconds
func (m *Match) Elapsed() float64 {
	return m.elapsed
}

// Remaining returns the simulated time left, floored at zero
func (m *Match) Remaining() float64 {
	remaining := m.cfg.MatchDuration - m.elapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Ended reports whether the match has finished
func (m *Match) Ended() bool {
	return m.ended
}

// Winner returns the resolved winner's player id, or NoWinner while the
// match is still running
func (m *Match) Winner() int {
	return m.winner
}

// BoostEpoch returns the number of global acceleration epochs applied so far
func (m *Match) BoostEpoch() int {
	return m.boostEpoch
}

// OwnedCount returns the number of targets currently owned by a player
func (m *Match) OwnedCount(playerID int) int {
	return ownedCount(m.Targets, playerID)
}

// Config returns a copy of the match configuration
func (m *Match) Config() Config {
	return m.cfg
}
