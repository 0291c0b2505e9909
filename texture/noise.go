package texture

import (
	"fmt"
	"math"
	"math/rand"
)

// NoiseConfig holds the fixed parameters of a GradientNoise.
type NoiseConfig struct {
	Octaves     int     // number of summed layers, >= 1
	Persistence float64 // amplitude decay per octave, in (0, 1]
	Frequency   float64 // frequency of octave 0, > 0
	Amplitude   float64 // amplitude of octave 0, > 0
}

// DefaultNoiseConfig returns the configuration used by Wood and Marble when
// none is given. At a frequency of 1/32 one lattice cell spans 32 pixels.
func DefaultNoiseConfig() NoiseConfig {
	return NoiseConfig{
		Octaves:     4,
		Persistence: 0.5,
		Frequency:   1.0 / 32,
		Amplitude:   0.15,
	}
}

// Validate reports whether c describes a usable noise function.
func (c NoiseConfig) Validate() error {
	switch {
	case c.Octaves < 1:
		return fmt.Errorf("%w: octaves must be >= 1, got %d", ErrInvalidArgument, c.Octaves)
	case !(c.Persistence > 0 && c.Persistence <= 1):
		return fmt.Errorf("%w: persistence must be in (0, 1], got %v", ErrInvalidArgument, c.Persistence)
	case !(c.Frequency > 0) || math.IsInf(c.Frequency, 0):
		return fmt.Errorf("%w: frequency must be positive and finite, got %v", ErrInvalidArgument, c.Frequency)
	case !(c.Amplitude > 0) || math.IsInf(c.Amplitude, 0):
		return fmt.Errorf("%w: amplitude must be positive and finite, got %v", ErrInvalidArgument, c.Amplitude)
	}
	return nil
}

// GradientNoise is a multi-octave 2D coherent noise function. Lattice
// points are hashed through a shuffled permutation to a fixed value table
// and blended with a quintic fade, so the field is smooth across cell
// boundaries.
//
// A GradientNoise never changes after construction and is safe for
// concurrent use.
type GradientNoise struct {
	cfg    NoiseConfig
	perm   [512]uint8
	values [256]float64
}

// NewGradientNoise builds the permutation and value tables from src.
// The same config and an identically seeded source give an identical
// noise field.
func NewGradientNoise(cfg NoiseConfig, src rand.Source) (*GradientNoise, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidArgument)
	}

	rng := rand.New(src)
	n := &GradientNoise{cfg: cfg}

	var p [256]uint8
	for i := range p {
		p[i] = uint8(i)
	}
	// Fisher-Yates
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	for i := range p {
		n.perm[i] = p[i]
		n.perm[i+256] = p[i]
	}

	for i := range n.values {
		n.values[i] = rng.Float64()*2 - 1
	}
	return n, nil
}

// Config returns the parameters the noise was built with.
func (n *GradientNoise) Config() NoiseConfig {
	return n.cfg
}

// Bound returns the largest magnitude Function2D can produce.
func (n *GradientNoise) Bound() float64 {
	sum, amp := 0.0, n.cfg.Amplitude
	for i := 0; i < n.cfg.Octaves; i++ {
		sum += amp
		amp *= n.cfg.Persistence
	}
	return sum
}

// Lattice returns the hashed base value of the integer point (ix, iy).
func (n *GradientNoise) Lattice(ix, iy int) float64 {
	return n.values[n.hash(ix, iy)]
}

func (n *GradientNoise) hash(ix, iy int) uint8 {
	return n.perm[int(n.perm[ix&255])+iy&255]
}

// Noise2D evaluates a single octave at unit frequency. The result is in
// [-1, 1] and equals Lattice at integer coordinates.
func (n *GradientNoise) Noise2D(x, y float64) float64 {
	fx, fy := math.Floor(x), math.Floor(y)
	ix, iy := int(fx), int(fy)
	tx, ty := x-fx, y-fy

	v00 := n.Lattice(ix, iy)
	v10 := n.Lattice(ix+1, iy)
	v01 := n.Lattice(ix, iy+1)
	v11 := n.Lattice(ix+1, iy+1)

	u, v := fade(tx), fade(ty)
	return lerp(v, lerp(u, v00, v10), lerp(u, v01, v11))
}

// Function2D sums the configured octaves at (x, y). Octave i is sampled at
// Frequency*2^i and weighted by Amplitude*Persistence^i.
func (n *GradientNoise) Function2D(x, y float64) float64 {
	total := 0.0
	freq, amp := n.cfg.Frequency, n.cfg.Amplitude
	for i := 0; i < n.cfg.Octaves; i++ {
		total += amp * n.Noise2D(x*freq, y*freq)
		freq *= 2
		amp *= n.cfg.Persistence
	}
	return total
}

// fade is 6t^5 - 15t^4 + 10t^3; first and second derivatives vanish at 0 and 1.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float64) float64 {
	return a + t*(b-a)
}
