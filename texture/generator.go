// Package texture generates procedural grayscale textures as dense grids of
// intensities in [0, 1].
//
// Every generator implements [Generator]. Wood perturbs concentric ring
// bands with [GradientNoise]; Marble and Clouds are siblings sharing the
// same contract. Randomness always comes from an injected rand.Source, so a
// fixed seed reproduces a texture exactly.
//
// Generators hold mutable parameters (ring count, sampling offset) and are
// not safe for concurrent mutation against Generate. A [GradientNoise] is
// read-only after construction and may be shared freely.
package texture

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by every validation error in this package.
var ErrInvalidArgument = errors.New("texture: invalid argument")

// maxOffset bounds the random sampling offset drawn on Reset.
const maxOffset = 5000

// Generator produces a texture of the requested size.
type Generator interface {
	// Name identifies the texture kind ("wood", "marble", ...).
	Name() string

	// Generate returns a height x width grid. Non-positive dimensions
	// fail with ErrInvalidArgument before any work is done.
	Generate(width, height int) (Grid, error)

	// Reset draws a new sampling offset so the next Generate call
	// samples a different region of the underlying noise.
	Reset()
}

// Grid is a row-major intensity field indexed [y][x].
type Grid [][]float64

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// newGrid allocates a height x width grid backed by one contiguous slice.
func newGrid(width, height int) Grid {
	cells := make([]float64, width*height)
	g := make(Grid, height)
	for y := range g {
		g[y] = cells[y*width : (y+1)*width : (y+1)*width]
	}
	return g
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidArgument, width, height)
	}
	return nil
}
