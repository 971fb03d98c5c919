package policy

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/golab/environment"
)

// NewGreedy creates a new Greedy policy over qTable
func NewGreedy(qTable *mat.Dense, seed uint64,
	env environment.Environment) (*EGreedy, error) {
	return NewEGreedy(qTable, 0.0, seed, env)
}
