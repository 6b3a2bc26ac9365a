package game

import (
	"math"
	"math/rand"
)

// Post-collision headings diverge symmetrically around the collision axis:
// the first player leaves at ~135 degrees off the collision angle, the second
// at ~45, guaranteeing at least ~90 degrees of divergence so players do not
// stick along a shared line.
const (
	collisionExitHigh = math.Pi * 0.75
	collisionExitLow  = math.Pi * 0.25
)

// Resolver performs the three per-frame ownership passes and the elimination
// sweep. Resolution mutates players and targets in place, so iteration order
// is part of the observable behavior: all passes walk players and pairs in
// ascending id order.
type Resolver struct {
	cfg *Config
	rng *rand.Rand
}

// NewResolver creates a resolver sharing the match RNG
func NewResolver(cfg *Config, rng *rand.Rand) *Resolver {
	return &Resolver{cfg: cfg, rng: rng}
}

// ResolvePlayerCollisions rebounds every overlapping non-eliminated pair.
// Both players leave at the boosted shared speed and are separated by half
// the overlap each. Coincident pairs are skipped to avoid dividing by zero.
func (r *Resolver) ResolvePlayerCollisions(players []*Player, emit func(Event)) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			p1, p2 := players[i], players[j]
			if p1.Eliminated || p2.Eliminated {
				continue
			}

			dx := p2.X - p1.X
			dy := p2.Y - p1.Y
			distance := math.Hypot(dx, dy)

			minDistance := p1.Radius + p2.Radius
			if distance >= minDistance || distance == 0 {
				continue
			}

			collisionAngle := math.Atan2(dy, dx)
			sharedSpeed := (p1.Speed() + p2.Speed()) / 2 * r.cfg.CollisionBoost

			jitterRange := r.cfg.CollisionJitterDeg * math.Pi / 180
			angle1 := collisionAngle + collisionExitHigh + (r.rng.Float64()*2-1)*jitterRange
			angle2 := collisionAngle + collisionExitLow + (r.rng.Float64()*2-1)*jitterRange

			p1.VX = math.Cos(angle1) * sharedSpeed
			p1.VY = math.Sin(angle1) * sharedSpeed
			p2.VX = math.Cos(angle2) * sharedSpeed
			p2.VY = math.Sin(angle2) * sharedSpeed

			// Separate along the collision normal to resolve the
			// interpenetration
			nx := dx / distance
			ny := dy / distance
			separation := (minDistance - distance) / 2
			p1.X -= nx * separation
			p1.Y -= ny * separation
			p2.X += nx * separation
			p2.Y += ny * separation

			emit(Event{Kind: EventPlayerCollision, Player: p1.ID, Other: p2.ID, Target: -1})
		}
	}
}

// ResolveTargetTouches captures every target whose anchor point lies inside
// the body of a non-eliminated player that does not already own it
func (r *Resolver) ResolveTargetTouches(players []*Player, targets []*Target, emit func(Event)) {
	for _, player := range players {
		if player.Eliminated {
			continue
		}
		for _, target := range targets {
			if target.Owner == player.ID {
				continue
			}
			if math.Hypot(player.X-target.X, player.Y-target.Y) <= player.Radius {
				r.capture(player, target, players, emit)
			}
		}
	}
}

// ResolveLineCrossings captures every enemy-owned target whose live line
// (owner's current position to the target) is crossed by a player's movement
// segment, or approached within one player radius
func (r *Resolver) ResolveLineCrossings(players []*Player, targets []*Target, emit func(Event)) {
	for _, player := range players {
		if player.Eliminated {
			continue
		}
		for _, target := range targets {
			if !target.Owned() || target.Owner == player.ID {
				continue
			}
			owner := players[target.Owner]
			if owner.Eliminated {
				continue
			}

			crossed := segmentsIntersect(
				player.PrevX, player.PrevY, player.X, player.Y,
				owner.X, owner.Y, target.X, target.Y)
			if !crossed {
				crossed = pointSegmentDistance(player.X, player.Y, owner.X, owner.Y, target.X, target.Y) <= player.Radius
			}
			if crossed {
				r.capture(player, target, players, emit)
			}
		}
	}
}

// capture transfers a target to the capturing player: one point scored, the
// former owner penalized, and the steal blink armed by SetOwner
func (r *Resolver) capture(player *Player, target *Target, players []*Player, emit func(Event)) {
	oldOwner := target.Owner
	target.SetOwner(player.ID)
	player.AddScore(1)

	if oldOwner != NoOwner {
		players[oldOwner].ApplyPowerReduction()
	}

	emit(Event{Kind: EventLineCaptured, Player: player.ID, Other: oldOwner, Target: target.ID})
}

// CheckEliminations flags every non-eliminated player who owns zero targets.
// The flag is monotonic; eliminated players keep their score and any targets
// they still nominally own stay capturable by touch.
func (r *Resolver) CheckEliminations(players []*Player, targets []*Target, emit func(Event)) {
	for _, player := range players {
		if player.Eliminated {
			continue
		}
		if ownedCount(targets, player.ID) == 0 {
			player.Eliminated = true
			emit(Event{Kind: EventPlayerEliminated, Player: player.ID, Other: NoOwner, Target: -1})
		}
	}
}

// ownedCount counts the targets currently owned by a player
func ownedCount(targets []*Target, playerID int) int {
	count := 0
	for _, target := range targets {
		if target.Owner == playerID {
			count++
		}
	}
	return count
}
