package game

// EventKind identifies a discrete simulation event, consumed by the audio
// and UI layers
type EventKind int

const (
	// EventBoundaryBounce fires when a player rebounds off the disk wall
	EventBoundaryBounce EventKind = iota

	// EventPlayerCollision fires when two players collide body-to-body
	EventPlayerCollision

	// EventLineCaptured fires when a target changes owner by touch or
	// line crossing
	EventLineCaptured

	// EventPlayerEliminated fires when a player drops to zero owned
	// targets
	EventPlayerEliminated

	// EventEndgameAlert fires once per match when the remaining time
	// enters the final-alert window
	EventEndgameAlert
)

// Event is a discrete occurrence within a tick. Fields that do not apply to
// the kind are NoOwner / -1.
type Event struct {
	Kind EventKind

	// Player is the acting player: the bouncer, the first collision
	// partner, the capturer, or the eliminated player
	Player int

	// Other is the second collision partner or the capture's previous
	// owner (NoOwner when the target was free)
	Other int

	// Target is the captured target id, -1 for non-capture events
	Target int
}
