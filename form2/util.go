package form2

const (
	// cosTolerance absorbs round-off in law of cosines arguments that land
	// just outside [-1, 1] for triangles that are exactly degenerate.
	cosTolerance = 1e-12
	// degenerateTol is the relative segment length below which Offset
	// considers two consecutive points identical.
	degenerateTol = 1e-12
)
