package texture

import (
	"math"
	"math/rand"

	"github.com/ojrac/opensimplex-go"
)

// Clouds is fractal OpenSimplex noise mapped to [0, 1].
type Clouds struct {
	noise opensimplex.Noise
	rng   *rand.Rand
	cfg   NoiseConfig
	seed  int64
}

// NewClouds creates a clouds generator. Octaves, persistence and frequency
// come from the noise config; amplitude is unused because the octave sum
// is normalized.
func NewClouds(opts ...Option) (*Clouds, error) {
	o := buildOptions(opts)
	if err := o.noiseCfg.Validate(); err != nil {
		return nil, err
	}

	c := &Clouds{
		rng: rand.New(o.src),
		cfg: o.noiseCfg,
	}
	c.Reset()
	return c, nil
}

func (c *Clouds) Name() string { return "clouds" }

// Seed returns the seed of the current OpenSimplex instance.
func (c *Clouds) Seed() int64 { return c.seed }

// Reset reseeds the underlying OpenSimplex noise from the generator's source.
func (c *Clouds) Reset() {
	c.seed = c.rng.Int63()
	c.noise = opensimplex.New(c.seed)
	Logger().Debug("texture: noise reseeded", "generator", c.Name(), "seed", c.seed)
}

// fbm sums octaves and divides by the total amplitude, keeping the result
// within the range of a single octave.
func (c *Clouds) fbm(x, y float64) float64 {
	var total, maxValue float64
	frequency, amplitude := 1.0, 1.0
	for i := 0; i < c.cfg.Octaves; i++ {
		total += c.noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= c.cfg.Persistence
		frequency *= 2
	}
	return total / maxValue
}

// Generate implements Generator.
func (c *Clouds) Generate(width, height int) (Grid, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	g := newGrid(width, height)
	scale := c.cfg.Frequency
	for y := 0; y < height; y++ {
		row := g[y]
		for x := 0; x < width; x++ {
			v := (c.fbm(float64(x)*scale, float64(y)*scale) + 1) / 2
			row[x] = math.Max(0, math.Min(1, v))
		}
	}

	Logger().Debug("texture: generated", "generator", c.Name(), "width", width, "height", height,
		"seed", c.seed)
	return g, nil
}
