package optimizer

import (
	"sort"

	"github.com/rhyrak/go-attend/pkg/model"
)

// sessionVar binds one decision variable to its session and APS.
type sessionVar struct {
	session *model.ScheduledSession
	aps     float64
}

// constraintGroup is a named set of inequality rows. When the solve is
// infeasible, groups are dropped in ascending priority order and the
// dropped names are surfaced on the result.
type constraintGroup struct {
	name     string
	priority int
	rows     [][]float64
	rhs      []float64
}

const groupInstructorMinimum = "instructor-minimum"

// problem is the assembled linear program: negated-APS cost vector, the
// exact attendance-total equality, and the droppable inequality groups.
type problem struct {
	vars   []sessionVar
	c      []float64
	eqRows [][]float64
	eqRHS  []float64
	groups []constraintGroup
}

// buildProblem snapshots the timetable into decision variables in a
// deterministic (day, slot) order, scores each session, and assembles
// the base constraint structure for the given required weekly total.
func (o *Optimizer) buildProblem(tt model.Timetable, profile model.StudentProfile, priorities model.PriorityAssignment, required float64) *problem {
	n := len(tt)
	p := &problem{
		vars: make([]sessionVar, 0, n),
		c:    make([]float64, 0, n),
	}
	for _, s := range tt {
		p.vars = append(p.vars, sessionVar{session: s})
	}
	sort.Slice(p.vars, func(i, j int) bool {
		a, b := p.vars[i].session, p.vars[j].session
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.SlotID < b.SlotID
	})
	for i := range p.vars {
		s := p.vars[i].session
		aps := o.scorer.Score(s.InstructorID, o.catalog.Block(s.SlotID), profile, priorities.Level(s.InstructorID))
		p.vars[i].aps = aps
		p.c = append(p.c, -aps)
	}

	// Weekly total must hit the target exactly.
	total := make([]float64, n)
	for i := range total {
		total[i] = 1.0
	}
	p.eqRows = [][]float64{total}
	p.eqRHS = []float64{required}

	// Instructors with two or more weekly sessions keep at least two,
	// encoded as a negated sum for the minimizer.
	byInstructor := make(map[model.InstructorID][]int)
	for i, v := range p.vars {
		byInstructor[v.session.InstructorID] = append(byInstructor[v.session.InstructorID], i)
	}
	ids := make([]model.InstructorID, 0, len(byInstructor))
	for id := range byInstructor {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	minimum := constraintGroup{name: groupInstructorMinimum, priority: 1}
	for _, id := range ids {
		indices := byInstructor[id]
		if len(indices) < 2 {
			continue
		}
		row := make([]float64, n)
		for _, idx := range indices {
			row[idx] = -1.0
		}
		minimum.rows = append(minimum.rows, row)
		minimum.rhs = append(minimum.rhs, -2.0)
	}
	if len(minimum.rows) > 0 {
		p.groups = append(p.groups, minimum)
	}
	return p
}

// activeUB flattens the still-active groups plus any branch-local rows
// into one inequality system.
func (p *problem) activeUB(groups []constraintGroup, extraRows [][]float64, extraRHS []float64) ([][]float64, []float64) {
	var rows [][]float64
	var rhs []float64
	for _, g := range groups {
		rows = append(rows, g.rows...)
		rhs = append(rhs, g.rhs...)
	}
	rows = append(rows, extraRows...)
	rhs = append(rhs, extraRHS...)
	return rows, rhs
}

// activeEQ appends branch-local equality rows to the base equality.
func (p *problem) activeEQ(extraRows [][]float64, extraRHS []float64) ([][]float64, []float64) {
	rows := append([][]float64{}, p.eqRows...)
	rhs := append([]float64{}, p.eqRHS...)
	rows = append(rows, extraRows...)
	rhs = append(rhs, extraRHS...)
	return rows, rhs
}

// dropLowestPriority removes the group with the smallest priority and
// returns the remainder plus the dropped name.
func dropLowestPriority(groups []constraintGroup) ([]constraintGroup, string) {
	if len(groups) == 0 {
		return groups, ""
	}
	lowest := 0
	for i := range groups {
		if groups[i].priority < groups[lowest].priority {
			lowest = i
		}
	}
	name := groups[lowest].name
	out := make([]constraintGroup, 0, len(groups)-1)
	out = append(out, groups[:lowest]...)
	out = append(out, groups[lowest+1:]...)
	return out, name
}
