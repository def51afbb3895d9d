package model

type PriorityLevel string

const (
	PriorityVeryHigh PriorityLevel = "Very High"
	PriorityHigh     PriorityLevel = "High"
	PriorityMedium   PriorityLevel = "Medium"
	PriorityLow      PriorityLevel = "Low"
	PriorityAvoid    PriorityLevel = "Avoid"
)

// PriorityLevels lists the five ordinal levels from most to least preferred.
var PriorityLevels = []PriorityLevel{
	PriorityVeryHigh, PriorityHigh, PriorityMedium, PriorityLow, PriorityAvoid,
}

// Multiplier returns the multiplicative APS scaling factor bound to the
// level. Unknown levels fall back to the Medium factor.
func (l PriorityLevel) Multiplier() float64 {
	switch l {
	case PriorityVeryHigh:
		return 1.40
	case PriorityHigh:
		return 1.25
	case PriorityMedium:
		return 1.10
	case PriorityLow:
		return 1.00
	case PriorityAvoid:
		return 0.80
	}
	return 1.10
}

// PriorityAssignment maps an instructor to one of the five levels.
// Instructors without an entry are treated as Medium.
type PriorityAssignment map[InstructorID]PriorityLevel

// Level returns the assigned level for id, defaulting to Medium.
func (p PriorityAssignment) Level(id InstructorID) PriorityLevel {
	if p == nil {
		return PriorityMedium
	}
	if l, ok := p[id]; ok {
		return l
	}
	return PriorityMedium
}
