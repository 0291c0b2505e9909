package texture

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func unitNoise(t *testing.T, seed int64) *GradientNoise {
	t.Helper()
	n, err := NewGradientNoise(NoiseConfig{Octaves: 1, Persistence: 1, Frequency: 1, Amplitude: 1}, rand.NewSource(seed))
	if err != nil {
		t.Fatalf("NewGradientNoise: %v", err)
	}
	return n
}

func TestNoiseConfigValidate(t *testing.T) {
	valid := DefaultNoiseConfig()
	if err := valid.Validate(); err != nil {
		t.Fatalf("default config rejected: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*NoiseConfig)
	}{
		{"zero octaves", func(c *NoiseConfig) { c.Octaves = 0 }},
		{"negative octaves", func(c *NoiseConfig) { c.Octaves = -2 }},
		{"zero persistence", func(c *NoiseConfig) { c.Persistence = 0 }},
		{"persistence above one", func(c *NoiseConfig) { c.Persistence = 1.5 }},
		{"NaN persistence", func(c *NoiseConfig) { c.Persistence = math.NaN() }},
		{"zero frequency", func(c *NoiseConfig) { c.Frequency = 0 }},
		{"infinite frequency", func(c *NoiseConfig) { c.Frequency = math.Inf(1) }},
		{"negative amplitude", func(c *NoiseConfig) { c.Amplitude = -1 }},
		{"NaN amplitude", func(c *NoiseConfig) { c.Amplitude = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Validate() = %v, want ErrInvalidArgument", err)
			}
			if _, err := NewGradientNoise(cfg, rand.NewSource(1)); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("NewGradientNoise() error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestNewGradientNoise_NilSource(t *testing.T) {
	if _, err := NewGradientNoise(DefaultNoiseConfig(), nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("error = %v, want ErrInvalidArgument", err)
	}
}

func TestFunction2D_Deterministic(t *testing.T) {
	cfg := DefaultNoiseConfig()
	a, err := NewGradientNoise(cfg, rand.NewSource(99))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGradientNoise(cfg, rand.NewSource(99))
	if err != nil {
		t.Fatal(err)
	}

	points := [][2]float64{{0, 0}, {1.5, 2.25}, {-3.7, 12.1}, {4999, 4999}, {123.456, -789.012}}
	for _, p := range points {
		first := a.Function2D(p[0], p[1])
		if again := a.Function2D(p[0], p[1]); again != first {
			t.Errorf("Function2D(%v, %v) changed between calls: %v then %v", p[0], p[1], first, again)
		}
		if other := b.Function2D(p[0], p[1]); other != first {
			t.Errorf("Function2D(%v, %v) differs across instances: %v vs %v", p[0], p[1], first, other)
		}
	}
}

func TestFunction2D_SeedChangesField(t *testing.T) {
	a := unitNoise(t, 1)
	b := unitNoise(t, 2)
	for i := 0; i < 64; i++ {
		x, y := float64(i)*0.37, float64(i)*0.91
		if a.Function2D(x, y) != b.Function2D(x, y) {
			return
		}
	}
	t.Error("different seeds produced the same noise at every sampled point")
}

func TestNoise2D_LatticeValues(t *testing.T) {
	n := unitNoise(t, 5)
	for iy := -3; iy <= 300; iy += 17 {
		for ix := -300; ix <= 3; ix += 13 {
			want := n.Lattice(ix, iy)
			if got := n.Noise2D(float64(ix), float64(iy)); got != want {
				t.Errorf("Noise2D(%d, %d) = %v, want lattice value %v", ix, iy, got, want)
			}
			if got := n.Function2D(float64(ix), float64(iy)); got != want {
				t.Errorf("Function2D(%d, %d) = %v, want lattice value %v", ix, iy, got, want)
			}
		}
	}
}

func TestLattice_Range(t *testing.T) {
	n := unitNoise(t, 11)
	for i := 0; i < 256; i++ {
		if v := n.Lattice(i, 0); v < -1 || v >= 1 {
			t.Errorf("Lattice(%d, 0) = %v, want [-1, 1)", i, v)
		}
	}
	// The table wraps every 256 lattice units.
	if n.Lattice(3, 4) != n.Lattice(3+256, 4-256) {
		t.Error("lattice hash does not wrap at 256")
	}
}

func TestNoise2D_SmoothAcrossCellBoundaries(t *testing.T) {
	n := unitNoise(t, 21)
	const eps = 1e-6
	for k := -4; k <= 4; k++ {
		for _, y := range []float64{0.3, 1.5, 2.8} {
			left := n.Noise2D(float64(k)-eps, y)
			right := n.Noise2D(float64(k)+eps, y)
			if math.Abs(left-right) > 1e-4 {
				t.Errorf("jump at x=%d, y=%v: %v -> %v", k, y, left, right)
			}
			below := n.Noise2D(y, float64(k)-eps)
			above := n.Noise2D(y, float64(k)+eps)
			if math.Abs(below-above) > 1e-4 {
				t.Errorf("jump at y=%d, x=%v: %v -> %v", k, y, below, above)
			}
		}
	}
}

func TestNoise2D_NoLargeSteps(t *testing.T) {
	n := unitNoise(t, 3)
	const step = 0.01
	prev := n.Noise2D(0, 0.5)
	for x := step; x < 6; x += step {
		cur := n.Noise2D(x, 0.5)
		// The blend slope is at most 15/8 times the largest corner difference (2).
		if d := math.Abs(cur - prev); d > 4*step {
			t.Fatalf("step of %v at x=%v exceeds the interpolation slope bound", d, x)
		}
		prev = cur
	}
}

func TestFunction2D_WithinBound(t *testing.T) {
	cfg := NoiseConfig{Octaves: 5, Persistence: 0.7, Frequency: 0.05, Amplitude: 2}
	n, err := NewGradientNoise(cfg, rand.NewSource(8))
	if err != nil {
		t.Fatal(err)
	}

	want := 2 * (1 + 0.7 + 0.49 + 0.343 + 0.2401)
	if math.Abs(n.Bound()-want) > 1e-12 {
		t.Errorf("Bound() = %v, want %v", n.Bound(), want)
	}

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		x, y := rng.Float64()*10000-5000, rng.Float64()*10000-5000
		if v := n.Function2D(x, y); math.Abs(v) > n.Bound()+1e-12 || math.IsNaN(v) {
			t.Fatalf("Function2D(%v, %v) = %v, outside ±%v", x, y, v, n.Bound())
		}
	}
}

func TestFunction2D_ExtremeInputsDoNotPanic(t *testing.T) {
	n, err := NewGradientNoise(DefaultNoiseConfig(), rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	inputs := []float64{1e300, -1e300, math.MaxFloat64, math.SmallestNonzeroFloat64, math.Inf(1), math.NaN()}
	for _, x := range inputs {
		_ = n.Function2D(x, x)
		_ = n.Function2D(x, 0)
	}
}

func TestGradientNoise_Config(t *testing.T) {
	cfg := NoiseConfig{Octaves: 2, Persistence: 0.25, Frequency: 0.1, Amplitude: 0.5}
	n, err := NewGradientNoise(cfg, rand.NewSource(1))
	if err != nil {
		t.Fatal(err)
	}
	if got := n.Config(); got != cfg {
		t.Errorf("Config() = %+v, want %+v", got, cfg)
	}
}

func BenchmarkFunction2D(b *testing.B) {
	n, err := NewGradientNoise(DefaultNoiseConfig(), rand.NewSource(1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = n.Function2D(float64(i%512), float64(i/512))
	}
}
