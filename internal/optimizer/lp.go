package optimizer

import (
	"github.com/willauld/lpsimplex"
)

// lpSolution is one relaxation solve. obj is the maximized utility
// (the solver minimizes the negated objective).
type lpSolution struct {
	x   []float64
	obj float64
	ok  bool
}

// solveLP runs the simplex solver on a cost vector with [0,1] bounds per
// variable. Empty constraint sets are passed as nil, matching the
// solver's "no constraints of this kind" convention.
func (o *Optimizer) solveLP(c []float64, aub [][]float64, bub []float64, aeq [][]float64, beq []float64) lpSolution {
	if len(aub) == 0 {
		aub, bub = nil, nil
	}
	if len(aeq) == 0 {
		aeq, beq = nil, nil
	}
	bounds := make([]lpsimplex.Bound, len(c))
	for i := range bounds {
		bounds[i] = lpsimplex.Bound{Lb: 0.0, Ub: 1.0}
	}
	callback := lpsimplex.Callbackfunc(nil)
	res := lpsimplex.LPSimplex(c, aub, bub, aeq, beq, bounds, callback,
		false, o.cfg.SolverMaxIter, o.cfg.SolverTol, false)
	if !res.Success {
		return lpSolution{}
	}
	return lpSolution{x: res.X, obj: -res.Fun, ok: true}
}
