package texture

import (
	"fmt"
	"math"
	"math/rand"
)

// Marble draws vertical veins whose phase is displaced by coherent noise.
type Marble struct {
	noise      *GradientNoise
	rng        *rand.Rand
	veins      float64
	turbulence float64
	offset     int
}

// NewMarble creates a marble generator and draws its first sampling offset.
func NewMarble(opts ...Option) (*Marble, error) {
	o := buildOptions(opts)
	if !(o.turbulence >= 0) || math.IsInf(o.turbulence, 0) {
		return nil, fmt.Errorf("%w: turbulence must be finite and non-negative, got %v", ErrInvalidArgument, o.turbulence)
	}
	n, err := o.gradientNoise()
	if err != nil {
		return nil, err
	}

	m := &Marble{
		noise:      n,
		rng:        rand.New(o.src),
		turbulence: o.turbulence,
	}
	m.SetVeins(o.veins)
	m.Reset()
	return m, nil
}

func (m *Marble) Name() string { return "marble" }

// Veins returns the effective vein count.
func (m *Marble) Veins() float64 { return m.veins }

// Offset returns the current sampling offset.
func (m *Marble) Offset() int { return m.offset }

// SetVeins stores max(MinVeins, veins).
func (m *Marble) SetVeins(veins float64) {
	if !(veins >= MinVeins) {
		Logger().Debug("texture: veins clamped", "requested", veins, "veins", MinVeins)
		veins = MinVeins
	}
	m.veins = veins
}

func (m *Marble) Reset() {
	m.offset = m.rng.Intn(maxOffset)
	Logger().Debug("texture: offset reset", "generator", m.Name(), "offset", m.offset)
}

// Generate implements Generator. Coordinates are normalized and noise is
// sampled exactly as in Wood.
func (m *Marble) Generate(width, height int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	g := newGrid(width, height)
	cx := width / 2
	r := m.offset
	for y := 0; y < height; y++ {
		row := g[y]
		for x := 0; x < width; x++ {
			xv := float64(x-cx) / float64(width)
			n := m.noise.Function2D(float64(x+r), float64(y+r))
			row[x] = math.Min(1, math.Abs(math.Sin((xv*m.veins+m.turbulence*n)*math.Pi)))
		}
	}

	Logger().Debug("texture: generated", "generator", m.Name(), "width", width, "height", height,
		"veins", m.veins, "offset", r)
	return g, nil
}
