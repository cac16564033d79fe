package vertexdata

import "errors"

// Package errors for vertex data manipulation.
var (
	// ErrIndexOutOfRange reports a vertex id outside [0, NumVertices).
	// Per-vertex accessors panic with an error wrapping this sentinel;
	// a recovering caller can identify it with errors.Is.
	ErrIndexOutOfRange = errors.New("vertexdata: vertex index out of range")

	// ErrInvalidRange reports a start/count pair that cannot describe a
	// vertex range, such as a count below the -1 "rest of buffer" sentinel.
	ErrInvalidRange = errors.New("vertexdata: invalid vertex range")

	// ErrInsufficientCapacity reports a copy target too small for the
	// requested destination range. Copy operations overwrite in place and
	// never grow the target.
	ErrInsufficientCapacity = errors.New("vertexdata: copy target too small")
)
