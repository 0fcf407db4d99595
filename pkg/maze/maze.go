package maze

import (
	"math/rand/v2"
	"strings"
	"time"

	"github.com/matzehuels/mazewalk/pkg/errors"
	"github.com/matzehuels/mazewalk/pkg/grid"
)

// Default maze size, in tiles.
const (
	DefaultRows = 40
	DefaultCols = 80
)

// Algorithm names a generation algorithm.
type Algorithm string

const (
	Wilson  Algorithm = "wilson"
	Scatter Algorithm = "scatter"
	Open    Algorithm = "open"
)

// DefaultDensity is the wall probability used by Scatter when none is given.
const DefaultDensity = 0.3

// Algorithms lists every supported algorithm.
var Algorithms = []Algorithm{Wilson, Scatter, Open}

// ParseAlgorithm converts a user supplied name into an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	a := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Algorithms {
		if a == known {
			return a, nil
		}
	}
	return "", errors.New(errors.ErrCodeInvalidAlgorithm,
		"unknown algorithm %q (want wilson, scatter or open)", name)
}

// Options controls maze generation.
type Options struct {
	Rows      int       `json:"rows" bson:"rows" toml:"rows"`
	Cols      int       `json:"cols" bson:"cols" toml:"cols"`
	Algorithm Algorithm `json:"algorithm" bson:"algorithm" toml:"algorithm"`
	// Density is the wall probability of the Scatter algorithm.
	Density float64 `json:"density,omitempty" bson:"density,omitempty" toml:"density"`
	// Seed makes generation reproducible. Zero picks a time-based seed.
	Seed uint64 `json:"seed" bson:"seed" toml:"seed"`
}

// WithDefaults returns a copy of o with zero fields filled in, including a
// concrete seed.
func (o Options) WithDefaults() Options {
	if o.Rows == 0 {
		o.Rows = DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = DefaultCols
	}
	if o.Algorithm == "" {
		o.Algorithm = Wilson
	}
	if o.Algorithm == Scatter && o.Density == 0 {
		o.Density = DefaultDensity
	}
	if o.Seed == 0 {
		o.Seed = uint64(time.Now().UnixNano())
	}
	return o
}

// Validate checks dimensions, algorithm and density.
func (o Options) Validate() error {
	if err := errors.ValidateDimensions(o.Rows, o.Cols); err != nil {
		return err
	}
	if _, err := ParseAlgorithm(string(o.Algorithm)); err != nil {
		return err
	}
	return errors.ValidateDensity(o.Density)
}

// Generate builds a maze. Zero option fields take their defaults; the seed
// that was used can be recovered with opts.WithDefaults() beforehand.
func Generate(opts Options) (*grid.Grid, error) {
	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	g, err := grid.New(opts.Rows, opts.Cols)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "allocate maze")
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))

	switch opts.Algorithm {
	case Wilson:
		carveWilson(g, rng)
	case Scatter:
		scatter(g, rng, opts.Density)
	case Open:
		g.Set(corner(g), grid.Exit)
	}
	return g, nil
}

// corner returns the bottom-right tile.
func corner(g *grid.Grid) grid.Coord {
	rows, cols := g.Dims()
	return grid.Coord{Row: rows - 1, Col: cols - 1}
}

func scatter(g *grid.Grid, rng *rand.Rand, density float64) {
	rows, cols := g.Dims()
	for r := range rows {
		for c := range cols {
			if (r != 0 || c != 0) && rng.Float64() < density {
				g.Set(grid.Coord{Row: r, Col: c}, grid.Wall)
			}
		}
	}
	if rows*cols == 1 {
		g.Set(grid.Origin, grid.Exit)
		return
	}
	// Any tile but the origin.
	i := 1 + rng.IntN(rows*cols-1)
	g.Set(grid.Coord{Row: i / cols, Col: i % cols}, grid.Exit)
}
