package export

import "errors"

// Pipeline error taxonomy. Every export failure is terminal for the
// current call; the first failing stage aborts the rest. The boundary
// (CLI) discriminates with errors.Is.
var (
	// ErrInvalidIndex means a face references a vertex that does not exist.
	ErrInvalidIndex = errors.New("face index out of range")

	// ErrEmptyInput means there are no points to normalize.
	ErrEmptyInput = errors.New("no points to normalize")

	// ErrNoAgents means the show would contain zero agents.
	ErrNoAgents = errors.New("show has no agents")
)
