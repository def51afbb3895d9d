package model

// AttendanceDecision is the per-session output of one solve. Fraction is
// in [0,1] for the fractional model and exactly 0 or 1 for the integer
// model. Contribution is Fraction times the session's APS.
type AttendanceDecision struct {
	Session      *ScheduledSession `json:"session"`
	Score        float64           `json:"aps"`
	Fraction     float64           `json:"fraction"`
	Contribution float64           `json:"contribution"`
}

// InstructorStat tallies attended vs scheduled sessions per instructor.
// Attended is fractional under the continuous model.
type InstructorStat struct {
	InstructorID InstructorID `json:"instructorId"`
	Name         string       `json:"name"`
	Total        int          `json:"total"`
	Attended     float64      `json:"attended"`
}

// OptimizationResult is the immutable snapshot produced by one solve.
type OptimizationResult struct {
	Decisions map[SessionKey]*AttendanceDecision `json:"decisions"`

	// Integral reports whether the integer model produced this result.
	Integral bool `json:"integral"`

	TotalWeek    int     `json:"totalClassesWeek"`
	TotalTerm    int     `json:"totalClassesTerm"`
	RequiredWeek float64 `json:"requiredClassesWeek"`
	RequiredTerm float64 `json:"requiredClassesTerm"`
	SelectedWeek float64 `json:"selectedWeek"`
	SelectedTerm float64 `json:"selectedTerm"`

	AttendancePercent float64 `json:"attendancePercentage"`
	TotalValue        float64 `json:"totalValue"`
	AvgValue          float64 `json:"avgValue"`

	// Objective is the solver's maximized utility before rounding.
	Objective float64 `json:"objective"`

	// Relaxed names the constraint groups dropped to regain feasibility.
	// Empty for a fully constrained solve.
	Relaxed []string `json:"relaxed,omitempty"`

	InstructorStats map[InstructorID]*InstructorStat `json:"instructorStats"`
}

// ResultCSVRow is the flattened per-session export format.
type ResultCSVRow struct {
	Day          string  `csv:"day"`
	SlotID       int     `csv:"slot_id"`
	Time         string  `csv:"time"`
	Subject      string  `csv:"subject"`
	InstructorID int     `csv:"instructor_id"`
	Instructor   string  `csv:"instructor"`
	APS          float64 `csv:"aps"`
	Fraction     float64 `csv:"fraction"`
	Contribution float64 `csv:"contribution"`
}
