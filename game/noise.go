package game

import (
	"math"
	"math/rand"
)

// NoiseField is a seeded 2D gradient-noise generator. It produces a smooth
// scalar field in roughly [-1, 1], periodic with period 256. Each player owns
// its own field so steering is independent per player and reproducible for a
// fixed seed.
type NoiseField struct {
	perm [512]int
}

// NewNoiseField builds a noise field from a shuffled permutation table
func NewNoiseField(seed int64) *NoiseField {
	rng := rand.New(rand.NewSource(seed))
	n := &NoiseField{}
	for i, v := range rng.Perm(256) {
		n.perm[i] = v
		n.perm[i+256] = v
	}
	return n
}

// fade is the smoothing curve 6t^5 - 15t^4 + 10t^3
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// grad selects one of the corner gradient directions from the hash value
func grad(hash int, x, y float64) float64 {
	h := hash & 15
	u := y
	if h < 8 {
		u = x
	}
	v := 0.0
	if h < 4 {
		v = y
	} else if h == 12 || h == 14 {
		v = x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

// Sample evaluates the field at (x, y)
func (n *NoiseField) Sample(x, y float64) float64 {
	xi := int(math.Floor(x)) & 255
	yi := int(math.Floor(y)) & 255

	x -= math.Floor(x)
	y -= math.Floor(y)

	u := fade(x)
	v := fade(y)

	a := n.perm[xi] + yi
	aa := n.perm[a]
	ab := n.perm[a+1]
	b := n.perm[xi+1] + yi
	ba := n.perm[b]
	bb := n.perm[b+1]

	return lerp(
		lerp(grad(n.perm[aa], x, y), grad(n.perm[ba], x-1, y), u),
		lerp(grad(n.perm[ab], x, y-1), grad(n.perm[bb], x-1, y-1), u),
		v)
}
