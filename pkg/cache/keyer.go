package cache

// Keyer derives cache keys.
type Keyer interface {
	// MazeKey identifies a generated maze.
	MazeKey(opts MazeKeyOpts) string
	// ArtifactKey identifies a rendered run of the maze whose content hash
	// is mazeHash.
	ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string
}

// MazeKeyOpts are the generator inputs that determine a maze.
type MazeKeyOpts struct {
	Rows      int     `json:"rows"`
	Cols      int     `json:"cols"`
	Algorithm string  `json:"algorithm"`
	Density   float64 `json:"density"`
	Seed      uint64  `json:"seed"`
}

// ArtifactKeyOpts are the render inputs that determine an artifact.
type ArtifactKeyOpts struct {
	Strategy string  `json:"strategy"`
	Format   string  `json:"format"`
	Style    string  `json:"style,omitempty"`
	CellSize float64 `json:"cell_size,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
	Detailed bool    `json:"detailed,omitempty"`
}

// DefaultKeyer produces "maze:<sha256>" and "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) MazeKey(opts MazeKeyOpts) string {
	return hashKey("maze", opts)
}

func (DefaultKeyer) ArtifactKey(mazeHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", mazeHash, opts)
}

var _ Keyer = DefaultKeyer{}
