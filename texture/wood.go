package texture

import (
	"math"
	"math/rand"
)

// Wood draws concentric ring bands around the center of the grid and
// displaces them with coherent noise, giving a wood grain look.
type Wood struct {
	noise  *GradientNoise
	rng    *rand.Rand
	rings  float64
	offset int
}

// NewWood creates a wood generator and draws its first sampling offset.
func NewWood(opts ...Option) (*Wood, error) {
	o := buildOptions(opts)
	n, err := o.gradientNoise()
	if err != nil {
		return nil, err
	}

	w := &Wood{
		noise: n,
		rng:   rand.New(o.src),
	}
	w.SetRings(o.rings)
	w.Reset()
	return w, nil
}

// Name implements Generator.
func (w *Wood) Name() string { return "wood" }

// Noise returns the noise function the generator samples.
func (w *Wood) Noise() *GradientNoise { return w.noise }

// Rings returns the effective ring count.
func (w *Wood) Rings() float64 { return w.rings }

// Offset returns the current sampling offset, in [0, 5000).
func (w *Wood) Offset() int { return w.offset }

// SetRings stores max(MinRings, rings). Smaller values, NaN included, are
// silently raised to MinRings.
func (w *Wood) SetRings(rings float64) {
	if !(rings >= MinRings) {
		Logger().Debug("texture: rings clamped", "requested", rings, "rings", MinRings)
		rings = MinRings
	}
	w.rings = rings
}

// Reset draws a new sampling offset. Every Generate call until the next
// Reset samples the noise at the same offset.
func (w *Wood) Reset() {
	w.offset = w.rng.Intn(maxOffset)
	Logger().Debug("texture: offset reset", "generator", w.Name(), "offset", w.offset)
}

// Generate implements Generator.
//
// Pixel (x, y) is placed at ((x-width/2)/width, (y-height/2)/height); the
// center uses integer division, so odd sizes are slightly off center.
// Noise is sampled at the pixel coordinates plus the offset, which ties
// the grain scale to the pixel grid rather than to the normalized space.
func (w *Wood) Generate(width, height int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	g := newGrid(width, height)
	cx, cy := width/2, height/2
	r := w.offset
	band := 2 * math.Pi * w.rings

	for y := 0; y < height; y++ {
		yv := float64(y-cy) / float64(height)
		row := g[y]
		for x := 0; x < width; x++ {
			xv := float64(x-cx) / float64(width)
			radial := math.Sqrt(xv*xv + yv*yv)
			n := w.noise.Function2D(float64(x+r), float64(y+r))
			row[x] = math.Min(1, math.Abs(math.Sin((radial+n)*band)))
		}
	}

	Logger().Debug("texture: generated", "generator", w.Name(), "width", width, "height", height,
		"rings", w.rings, "offset", r)
	return g, nil
}
