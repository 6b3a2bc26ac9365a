package game

import "image/color"

// PlayerView is the read-only per-frame player state exposed to the
// presentation layer
type PlayerView struct {
	ID           int
	Name         string
	Color        color.RGBA
	X, Y         float64
	VX, VY       float64
	Radius       float64
	Score        int
	Eliminated   bool
	PowerReduced bool
}

// TargetView is the read-only per-frame target state. OwnerX, OwnerY carry
// the owner's live position so the renderer can draw the line without
// resolving the owner itself; they are zero when the target is unowned.
type TargetView struct {
	ID             int
	X, Y           float64
	Owner          int
	Blinking       bool
	OwnerX, OwnerY float64
}

// Snapshot is a self-contained copy of everything the renderer and HUD need
// for one frame
type Snapshot struct {
	Players   []PlayerView
	Targets   []TargetView
	Elapsed   float64
	Remaining float64
	Ended     bool
	Winner    int
}

// Snapshot captures the current match state. The returned value shares no
// mutable data with the match.
func (m *Match) Snapshot() Snapshot {
	s := Snapshot{
		Players:   make([]PlayerView, len(m.Players)),
		Targets:   make([]TargetView, len(m.Targets)),
		Elapsed:   m.elapsed,
		Remaining: m.Remaining(),
		Ended:     m.ended,
		Winner:    m.winner,
	}

	for i, p := range m.Players {
		s.Players[i] = PlayerView{
			ID:           p.ID,
			Name:         p.Name,
			Color:        p.Color,
			X:            p.X,
			Y:            p.Y,
			VX:           p.VX,
			VY:           p.VY,
			Radius:       p.Radius,
			Score:        p.Score,
			Eliminated:   p.Eliminated,
			PowerReduced: p.PowerReduced,
		}
	}

	for i, t := range m.Targets {
		view := TargetView{
			ID:       t.ID,
			X:        t.X,
			Y:        t.Y,
			Owner:    t.Owner,
			Blinking: t.Blinking(),
		}
		if t.Owned() {
			owner := m.Players[t.Owner]
			view.OwnerX = owner.X
			view.OwnerY = owner.Y
		}
		s.Targets[i] = view
	}

	return s
}
