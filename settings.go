package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"slices"
	"time"

	"woodgrain/texture"
)

var generatorNames = []string{"wood", "marble", "clouds"}

// settings is the command line configuration of the preview
type settings struct {
	seed      int64
	rings     float64
	generator string
	noise     texture.NoiseConfig
	logPath   string
	logLevel  slog.Level
}

func parseSettings(args []string, errOut io.Writer) (settings, error) {
	fs := flag.NewFlagSet("woodgrain", flag.ContinueOnError)
	fs.SetOutput(errOut)

	def := texture.DefaultNoiseConfig()
	var (
		seed        = fs.Int64("seed", 0, "random seed (0 picks one from the clock)")
		rings       = fs.Float64("rings", texture.DefaultRings, "wood ring count (minimum 3)")
		generator   = fs.String("generator", "wood", "initial generator: wood, marble or clouds")
		octaves     = fs.Int("octaves", def.Octaves, "noise octaves")
		persistence = fs.Float64("persistence", def.Persistence, "noise amplitude decay per octave")
		frequency   = fs.Float64("frequency", def.Frequency, "noise base frequency")
		amplitude   = fs.Float64("amplitude", def.Amplitude, "noise base amplitude")
		logPath     = fs.String("log", "woodgrain.log", "log file")
		debug       = fs.Bool("debug", false, "log debug records")
	)
	if err := fs.Parse(args); err != nil {
		return settings{}, err
	}

	s := settings{
		seed:      *seed,
		rings:     *rings,
		generator: *generator,
		noise: texture.NoiseConfig{
			Octaves:     *octaves,
			Persistence: *persistence,
			Frequency:   *frequency,
			Amplitude:   *amplitude,
		},
		logPath:  *logPath,
		logLevel: slog.LevelInfo,
	}
	if *debug {
		s.logLevel = slog.LevelDebug
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}

	if !slices.Contains(generatorNames, s.generator) {
		return settings{}, fmt.Errorf("unknown generator %q", s.generator)
	}
	if err := s.noise.Validate(); err != nil {
		return settings{}, err
	}
	return s, nil
}

// buildGenerators creates one generator per name in generatorNames order,
// each with its own source derived from the seed. Wood and Marble share a
// single noise function.
func buildGenerators(s settings) ([]texture.Generator, error) {
	noise, err := texture.NewGradientNoise(s.noise, rand.NewSource(s.seed))
	if err != nil {
		return nil, fmt.Errorf("failed to build noise: %w", err)
	}

	wood, err := texture.NewWood(
		texture.WithSource(rand.NewSource(s.seed+1)),
		texture.WithNoise(noise),
		texture.WithRings(s.rings),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create wood generator: %w", err)
	}

	marble, err := texture.NewMarble(
		texture.WithSource(rand.NewSource(s.seed+2)),
		texture.WithNoise(noise),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create marble generator: %w", err)
	}

	clouds, err := texture.NewClouds(
		texture.WithSource(rand.NewSource(s.seed+3)),
		texture.WithNoiseConfig(s.noise),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create clouds generator: %w", err)
	}

	return []texture.Generator{wood, marble, clouds}, nil
}
