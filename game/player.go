package game

import (
	"image/color"
	"math"
	"math/rand"
)

// spawnDistanceRatio places spawn positions near the rim without touching it
const spawnDistanceRatio = 0.85

// noiseOffsetRange spreads the per-player noise sampling offsets so players
// never walk the same region of their fields
const noiseOffsetRange = 1000.0

// Player is one autonomous competitor confined to the disk
type Player struct {
	// ID is the dense player index
	ID int

	// Name and Color are display-only
	Name  string
	Color color.RGBA

	// X, Y is the current position; PrevX, PrevY the position before the
	// last motion update, kept for line-crossing detection
	X, Y         float64
	PrevX, PrevY float64

	// VX, VY is the velocity in pixels per second
	VX, VY float64

	// Radius is the body radius
	Radius float64

	// Score counts captured lines; never decreases within a match
	Score int

	// Eliminated is set once the player owns zero targets and never
	// reverts
	Eliminated bool

	// PowerReduced reports an active power-reduction penalty
	PowerReduced bool

	powerFrames int
	powerFactor float64

	// disk geometry, constant after construction
	centerX, centerY float64
	diskRadius       float64

	// private steering noise state
	noise     *NoiseField
	noiseOffX float64
	noiseOffY float64
	noiseTime float64

	age float64
	cfg *Config
	rng *rand.Rand
}

// NewPlayer creates a player on the disk rim, evenly spaced by id with a
// small angular jitter, moving toward the disk center
func NewPlayer(id int, cfg *Config, centerX, centerY float64, rng *rand.Rand) *Player {
	setup := cfg.PlayerSetupFor(id)

	angle := 2*math.Pi*float64(id)/float64(cfg.NumPlayers) + (rng.Float64()*2-1)*cfg.SpawnJitter
	distance := cfg.DiskRadius * spawnDistanceRatio

	p := &Player{
		ID:          id,
		Name:        setup.Name,
		Color:       setup.Color,
		X:           centerX + distance*math.Cos(angle),
		Y:           centerY + distance*math.Sin(angle),
		Radius:      cfg.PlayerRadius,
		powerFactor: 1.0,
		centerX:     centerX,
		centerY:     centerY,
		diskRadius:  cfg.DiskRadius,
		noise:       NewNoiseField(rng.Int63()),
		noiseOffX:   rng.Float64() * noiseOffsetRange,
		noiseOffY:   rng.Float64() * noiseOffsetRange,
		cfg:         cfg,
		rng:         rand.New(rand.NewSource(rng.Int63())),
	}
	p.PrevX = p.X
	p.PrevY = p.Y

	// Initial velocity aimed at the disk center
	dx := centerX - p.X
	dy := centerY - p.Y
	if dist := math.Hypot(dx, dy); dist > 0 {
		p.VX = dx / dist * cfg.InitialSpeed
		p.VY = dy / dist * cfg.InitialSpeed
	}

	return p
}

// Speed returns the current velocity magnitude
func (p *Player) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// UpdatePosition advances the player by one timestep: noise steering, speed
// floor, inter-player repulsion, max-speed clamp, integration and wall
// rebound. Returns true when the player bounced off the disk wall. No-op for
// eliminated players.
func (p *Player) UpdatePosition(dt float64, others []*Player) bool {
	if p.Eliminated {
		return false
	}

	p.age += dt
	p.noiseTime += dt * p.cfg.MoveSpeed

	// Noise steering force, ramped in over the warmup window
	nx := p.noise.Sample(p.noiseOffX+p.noiseTime, p.noiseOffY)
	ny := p.noise.Sample(p.noiseOffX, p.noiseOffY+p.noiseTime)
	ramp := 1.0
	if p.cfg.WarmupSeconds > 0 && p.age < p.cfg.WarmupSeconds {
		ramp = p.age / p.cfg.WarmupSeconds
	}
	p.VX += nx * p.cfg.NoiseAmplitude * p.cfg.NoiseDamping * ramp * dt
	p.VY += ny * p.cfg.NoiseAmplitude * p.cfg.NoiseDamping * ramp * dt

	p.enforceSpeedFloor()
	p.applyRepulsion(dt, others)
	p.clampSpeed()

	newX := p.X + p.VX*dt
	newY := p.Y + p.VY*dt

	bounced := false
	dx := newX - p.centerX
	dy := newY - p.centerY
	distFromCenter := math.Hypot(dx, dy)

	// Rebound triggers before full containment
	maxDistance := p.diskRadius - p.Radius*p.cfg.BounceMargin
	if distFromCenter > maxDistance {
		currentAngle := math.Atan2(p.VY, p.VX)
		currentSpeed := p.Speed()

		jitter := (p.rng.Float64()*2 - 1) * p.cfg.BounceJitterDeg * math.Pi / 180
		targetAngle := currentAngle + math.Pi + jitter

		coefficient := p.cfg.BounceMin + p.rng.Float64()*(p.cfg.BounceMax-p.cfg.BounceMin)
		speed := currentSpeed * coefficient
		if speed > p.cfg.MaxSpeed {
			speed = p.cfg.MaxSpeed
		}
		p.VX = math.Cos(targetAngle) * speed
		p.VY = math.Sin(targetAngle) * speed

		// Reposition exactly onto the rebound circle along the
		// pre-reflection direction
		factor := maxDistance / distFromCenter
		newX = p.centerX + dx*factor
		newY = p.centerY + dy*factor
		bounced = true
	}

	p.PrevX = p.X
	p.PrevY = p.Y
	p.X = newX
	p.Y = newY

	return bounced
}

// enforceSpeedFloor keeps the player from stalling. The floor itself grows
// with the player's accumulated noise time; direction falls back from the
// current velocity to the disk center to a random angle.
func (p *Player) enforceSpeedFloor() {
	speed := p.Speed()
	minSpeed := p.cfg.MinSpeed * (1 + p.cfg.MinSpeedGrowth*p.noiseTime)

	if speed >= minSpeed {
		if p.cfg.SpeedCreep > 1 {
			p.VX *= p.cfg.SpeedCreep
			p.VY *= p.cfg.SpeedCreep
		}
		return
	}

	var dirX, dirY float64
	switch {
	case speed > 0:
		dirX = p.VX / speed
		dirY = p.VY / speed
	default:
		dx := p.centerX - p.X
		dy := p.centerY - p.Y
		if dist := math.Hypot(dx, dy); dist > 0 {
			dirX = dx / dist
			dirY = dy / dist
		} else {
			angle := p.rng.Float64() * 2 * math.Pi
			dirX = math.Cos(angle)
			dirY = math.Sin(angle)
		}
	}

	p.VX = dirX * minSpeed
	p.VY = dirY * minSpeed
}

// applyRepulsion adds the exaggerated inverse-square repulsion from every
// nearby non-eliminated player. Coincident players contribute no force.
func (p *Player) applyRepulsion(dt float64, others []*Player) {
	for _, other := range others {
		if other.ID == p.ID || other.Eliminated {
			continue
		}

		dx := p.X - other.X
		dy := p.Y - other.Y
		distance := math.Hypot(dx, dy)

		minDistance := (p.Radius + other.Radius) * p.cfg.RepulsionRange
		if distance >= minDistance || distance == 0 {
			continue
		}

		magnitude := p.cfg.RepulsionForce * p.cfg.RepulsionBoost / (distance * distance)
		p.VX += dx / distance * magnitude * dt * p.cfg.RepulsionAccel
		p.VY += dy / distance * magnitude * dt * p.cfg.RepulsionAccel
	}
}

// clampSpeed enforces the configured maximum velocity magnitude
func (p *Player) clampSpeed() {
	speed := p.Speed()
	if speed > p.cfg.MaxSpeed {
		factor := p.cfg.MaxSpeed / speed
		p.VX *= factor
		p.VY *= factor
	}
}

// ApplyPowerReduction arms the power-reduction penalty countdown
func (p *Player) ApplyPowerReduction() {
	p.powerFrames = p.cfg.PowerReductionFrames
}

// UpdatePowerReduction decrements the penalty countdown and refreshes the
// effective power factor. Eliminated players are exempt.
func (p *Player) UpdatePowerReduction() {
	if p.Eliminated {
		return
	}
	if p.powerFrames > 0 {
		p.powerFrames--
		p.powerFactor = 0.0
		p.PowerReduced = true
	} else {
		p.powerFactor = 1.0
		p.PowerReduced = false
	}
}

// EffectivePower returns the current power multiplier, below 1.0 while a
// power reduction is active
func (p *Player) EffectivePower() float64 {
	return p.powerFactor
}

// AddScore awards capture points. Scores are monotonic; negative awards are
// ignored.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// DistanceTo returns the center distance to another player
func (p *Player) DistanceTo(other *Player) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}
