package game

import "math"

// NoOwner marks a target as unowned
const NoOwner = -1

// Target is a fixed anchor point on the disk perimeter. Owning a target
// constitutes owning the line from the owner's live position to it.
type Target struct {
	// ID is the dense target index
	ID int

	// Angle is the fixed perimeter angle in radians
	Angle float64

	// X, Y is the fixed position, computed once from the angle
	X, Y float64

	// Owner is the current owning player id, or NoOwner
	Owner int

	// PrevOwner is the owner before the most recent ownership change,
	// or NoOwner
	PrevOwner int

	blinkFrames   int
	blinkDuration int
}

// NewTarget creates a target on the perimeter of the disk centered at
// (centerX, centerY)
func NewTarget(id int, angle, centerX, centerY, diskRadius float64, blinkDuration int) *Target {
	return &Target{
		ID:            id,
		Angle:         angle,
		X:             centerX + diskRadius*math.Cos(angle),
		Y:             centerY + diskRadius*math.Sin(angle),
		Owner:         NoOwner,
		PrevOwner:     NoOwner,
		blinkDuration: blinkDuration,
	}
}

// SetOwner transfers ownership to the given player. The previous owner is
// recorded on every transition; stealing from a different player arms the
// blink countdown.
func (t *Target) SetOwner(playerID int) {
	t.PrevOwner = t.Owner
	t.Owner = playerID

	if t.PrevOwner != NoOwner && t.PrevOwner != playerID {
		t.blinkFrames = t.blinkDuration
	}
}

// Owned reports whether the target currently has an owner
func (t *Target) Owned() bool {
	return t.Owner != NoOwner
}

// UpdateEffects decays the blink countdown by one frame
func (t *Target) UpdateEffects() {
	if t.blinkFrames > 0 {
		t.blinkFrames--
	}
}

// Blinking reports whether the steal blink effect is active
func (t *Target) Blinking() bool {
	return t.blinkFrames > 0
}

// AngleDegrees returns the perimeter angle in degrees, normalized to [0, 360)
func (t *Target) AngleDegrees() float64 {
	deg := math.Mod(t.Angle*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
