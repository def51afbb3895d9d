package optimizer

import (
	"math"

	"github.com/rhyrak/go-attend/pkg/model"
)

// incumbent tracks the best integral solution seen during the search.
type incumbent struct {
	obj float64
	x   []float64
}

// bbState carries the per-branch constraint rows. Children copy before
// appending, so no branch observes another branch's fixings.
type bbState struct {
	ubRows [][]float64
	ubRHS  []float64
	eqRows [][]float64
	eqRHS  []float64
}

func (s bbState) withUB(row []float64, rhs float64) bbState {
	out := s
	out.ubRows = append(append([][]float64{}, s.ubRows...), row)
	out.ubRHS = append(append([]float64{}, s.ubRHS...), rhs)
	return out
}

func (s bbState) withEQ(row []float64, rhs float64) bbState {
	out := s
	out.eqRows = append(append([][]float64{}, s.eqRows...), row)
	out.eqRHS = append(append([]float64{}, s.eqRHS...), rhs)
	return out
}

// OptimizeInteger selects a binary attendance decision per session. The
// required weekly count is the ceiling of the target fraction of the
// session count, enforced as an exact equality. Solved by LP relaxation
// with branch-and-bound; the search is capped at Configuration.MaxNodes
// and returns the best integral solution found within the budget.
func (o *Optimizer) OptimizeInteger(tt model.Timetable, profile model.StudentProfile, priorities model.PriorityAssignment, targetPercent float64) *model.OptimizationResult {
	n := len(tt)
	if n == 0 {
		return nil
	}
	pct := clampPercent(targetPercent)
	required := math.Ceil(float64(n) * pct / 100.0)

	p := o.buildProblem(tt, profile, priorities, required)

	groups := p.groups
	var relaxed []string
	for {
		best := &incumbent{obj: math.Inf(-1)}
		nodes := 0
		o.branchAndBound(p, groups, bbState{}, best, &nodes)
		if best.x != nil {
			return o.buildResult(p, best.x, best.obj, true, required, relaxed)
		}
		if len(groups) == 0 {
			return nil
		}
		var dropped string
		groups, dropped = dropLowestPriority(groups)
		relaxed = append(relaxed, dropped)
	}
}

func (o *Optimizer) branchAndBound(p *problem, groups []constraintGroup, state bbState, best *incumbent, nodes *int) {
	if *nodes >= o.cfg.MaxNodes {
		return
	}
	*nodes++

	aub, bub := p.activeUB(groups, state.ubRows, state.ubRHS)
	aeq, beq := p.activeEQ(state.eqRows, state.eqRHS)
	sol := o.solveLP(p.c, aub, bub, aeq, beq)
	if !sol.ok {
		return
	}
	// Bound: a relaxation no better than the incumbent cannot contain a
	// better integral point.
	if sol.obj <= best.obj+o.cfg.PruneTol {
		return
	}

	fractional := fractionalIndices(sol.x, o.cfg.IntegralityTol)
	if len(fractional) == 0 {
		best.obj = sol.obj
		best.x = roundVector(sol.x)
		return
	}

	// Cover cut: bounding the strictly fractional variables by the floor
	// of their sum often forces integrality without deep branching.
	strict := strictlyFractional(sol.x)
	if len(strict) >= 2 {
		sum := 0.0
		for _, i := range strict {
			sum += sol.x[i]
		}
		rhs := math.Floor(sum)
		if rhs < float64(len(strict)) {
			row := make([]float64, len(sol.x))
			for _, i := range strict {
				row[i] = 1.0
			}
			o.branchAndBound(p, groups, state.withUB(row, rhs), best, nodes)
		}
	}

	branchVar := closestToHalf(sol.x, fractional)
	row := make([]float64, len(sol.x))
	row[branchVar] = 1.0

	// x <= 0 child, then x = 1 child.
	o.branchAndBound(p, groups, state.withUB(row, 0.0), best, nodes)
	o.branchAndBound(p, groups, state.withEQ(row, 1.0), best, nodes)
}

func fractionalIndices(x []float64, tol float64) []int {
	var out []int
	for i, xi := range x {
		if math.Abs(xi-math.Round(xi)) > tol {
			out = append(out, i)
		}
	}
	return out
}

func strictlyFractional(x []float64) []int {
	var out []int
	for i, xi := range x {
		if xi > 1e-8 && xi < 1-1e-8 {
			out = append(out, i)
		}
	}
	return out
}

// closestToHalf picks the most undecided variable as the branch variable.
func closestToHalf(x []float64, candidates []int) int {
	branch := candidates[0]
	bestDist := math.Abs(x[branch] - 0.5)
	for _, i := range candidates[1:] {
		if d := math.Abs(x[i] - 0.5); d < bestDist {
			bestDist = d
			branch = i
		}
	}
	return branch
}

func roundVector(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = math.Round(xi)
	}
	return out
}
