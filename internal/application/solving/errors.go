package solving

import "github.com/andrescamacho/craftsolver-go/internal/domain/solver"

// ErrSolverAlreadyExists is returned by Create for a key that is already built
type ErrSolverAlreadyExists struct {
	Key solver.Key
}

func (e *ErrSolverAlreadyExists) Error() string {
	return "solver already exists"
}

// ErrSolverNotExists is returned by Read for a key that was never created
type ErrSolverNotExists struct {
	Key solver.Key
}

func (e *ErrSolverNotExists) Error() string {
	return "solver not exists"
}
