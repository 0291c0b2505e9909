package texture

import "math/rand"

const (
	// MinRings is the smallest ring count Wood accepts. Lower values are
	// raised to it.
	MinRings = 3.0

	// DefaultRings is the ring count of a Wood built without WithRings.
	DefaultRings = 12.0

	// MinVeins is the smallest vein count Marble accepts.
	MinVeins = 1.0

	// DefaultVeins is the vein count of a Marble built without WithVeins.
	DefaultVeins = 5.0

	// DefaultTurbulence scales the noise displacement of Marble veins.
	DefaultTurbulence = 4.0
)

// Option configures a generator during creation. Options a generator has
// no use for are ignored.
//
// Example:
//
//	// Reproducible wood with 20 rings
//	w, err := texture.NewWood(
//	    texture.WithSource(rand.NewSource(42)),
//	    texture.WithRings(20),
//	)
type Option func(*options)

type options struct {
	src        rand.Source
	noise      *GradientNoise
	noiseCfg   NoiseConfig
	rings      float64
	veins      float64
	turbulence float64
}

func defaultOptions() options {
	return options{
		noiseCfg:   DefaultNoiseConfig(),
		rings:      DefaultRings,
		veins:      DefaultVeins,
		turbulence: DefaultTurbulence,
	}
}

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.src == nil {
		o.src = rand.NewSource(1)
	}
	return o
}

// gradientNoise returns the injected noise or builds one from the options.
func (o *options) gradientNoise() (*GradientNoise, error) {
	if o.noise != nil {
		return o.noise, nil
	}
	return NewGradientNoise(o.noiseCfg, o.src)
}

// WithSource sets the random source used for noise tables and offset
// draws. Without it a source seeded with 1 is used, so generators are
// reproducible by default.
func WithSource(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithNoise makes Wood or Marble sample an existing noise function
// instead of building their own. A GradientNoise may be shared.
func WithNoise(n *GradientNoise) Option {
	return func(o *options) {
		o.noise = n
	}
}

// WithNoiseConfig sets the noise parameters. Wood and Marble build a
// GradientNoise from it unless WithNoise is given; Clouds uses its
// octaves, persistence and frequency.
func WithNoiseConfig(cfg NoiseConfig) Option {
	return func(o *options) {
		o.noiseCfg = cfg
	}
}

// WithRings sets the initial Wood ring count, clamped like SetRings.
func WithRings(rings float64) Option {
	return func(o *options) {
		o.rings = rings
	}
}

// WithVeins sets the initial Marble vein count, clamped like SetVeins.
func WithVeins(veins float64) Option {
	return func(o *options) {
		o.veins = veins
	}
}

// WithTurbulence sets how far noise displaces Marble veins.
func WithTurbulence(t float64) Option {
	return func(o *options) {
		o.turbulence = t
	}
}
