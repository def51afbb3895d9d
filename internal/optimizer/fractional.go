package optimizer

import (
	"github.com/rhyrak/go-attend/pkg/model"
)

// Optimizer runs stateless solves over timetable snapshots. Each call
// builds a fresh problem, so concurrent calls share nothing mutable.
type Optimizer struct {
	catalog *model.Catalog
	cfg     *Configuration
	scorer  *Scorer
}

func New(catalog *model.Catalog, cfg *Configuration) *Optimizer {
	return &Optimizer{catalog: catalog, cfg: cfg, scorer: NewScorer(catalog, cfg)}
}

// Scorer exposes the APS scorer used by this optimizer.
func (o *Optimizer) Scorer() *Scorer {
	return o.scorer
}

// OptimizeFractional selects an attendance fraction in [0,1] per session
// maximizing total APS, with the weekly fraction total pinned to the
// target percentage exactly. Returns nil when there is nothing to
// optimize or no feasible assignment exists even after relaxation.
func (o *Optimizer) OptimizeFractional(tt model.Timetable, profile model.StudentProfile, priorities model.PriorityAssignment, targetPercent float64) *model.OptimizationResult {
	n := len(tt)
	if n == 0 {
		return nil
	}
	pct := clampPercent(targetPercent)
	required := float64(n) * pct / 100.0

	p := o.buildProblem(tt, profile, priorities, required)

	groups := p.groups
	var relaxed []string
	for {
		aub, bub := p.activeUB(groups, nil, nil)
		aeq, beq := p.activeEQ(nil, nil)
		sol := o.solveLP(p.c, aub, bub, aeq, beq)
		if sol.ok {
			return o.buildResult(p, sol.x, sol.obj, false, required, relaxed)
		}
		if len(groups) == 0 {
			return nil
		}
		var dropped string
		groups, dropped = dropLowestPriority(groups)
		relaxed = append(relaxed, dropped)
	}
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
