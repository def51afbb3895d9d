package optimizer

import (
	"fmt"
	"math"

	"github.com/rhyrak/go-attend/pkg/model"
)

// buildResult packages a solution vector into the immutable result
// snapshot: per-session decisions plus weekly and 20-week-term derived
// statistics. Fractions and utilities are rounded to 3 decimals,
// percentages to 2.
func (o *Optimizer) buildResult(p *problem, x []float64, obj float64, integral bool, required float64, relaxed []string) *model.OptimizationResult {
	weeks := o.cfg.WeeksPerTerm
	n := len(p.vars)

	res := &model.OptimizationResult{
		Decisions:       make(map[model.SessionKey]*model.AttendanceDecision, n),
		Integral:        integral,
		TotalWeek:       n,
		TotalTerm:       n * weeks,
		RequiredWeek:    required,
		RequiredTerm:    math.Ceil(required * float64(weeks)),
		Objective:       obj,
		Relaxed:         relaxed,
		InstructorStats: make(map[model.InstructorID]*model.InstructorStat),
	}

	selected := 0.0
	totalValue := 0.0
	for i, v := range p.vars {
		fraction := round3(x[i])
		if integral {
			fraction = math.Round(x[i])
		}
		d := &model.AttendanceDecision{
			Session:      v.session,
			Score:        v.aps,
			Fraction:     fraction,
			Contribution: round3(fraction * v.aps),
		}
		res.Decisions[v.session.Key()] = d
		selected += fraction
		totalValue += d.Contribution

		stat := res.InstructorStats[v.session.InstructorID]
		if stat == nil {
			name := fmt.Sprintf("#%d", v.session.InstructorID)
			if prof := o.catalog.Instructor(v.session.InstructorID); prof != nil {
				name = prof.Name
			}
			stat = &model.InstructorStat{InstructorID: v.session.InstructorID, Name: name}
			res.InstructorStats[v.session.InstructorID] = stat
		}
		stat.Total++
		stat.Attended += fraction
	}

	res.SelectedWeek = round2(selected)
	res.SelectedTerm = round2(selected * float64(weeks))
	if res.TotalTerm > 0 {
		res.AttendancePercent = round2(res.SelectedTerm / float64(res.TotalTerm) * 100.0)
	}
	res.TotalValue = round3(totalValue)
	if selected > 0 {
		res.AvgValue = round3(totalValue / selected)
	}
	return res
}
