package model

type InstructorID int

// Instructor holds the static survey-derived ratings for one lecturer.
// All ratings are on a 1-10 scale. Loaded once at startup, never mutated.
type Instructor struct {
	ID              InstructorID `csv:"id"`
	Name            string       `csv:"name"`
	PerceivedValue  float64      `csv:"perceived_value"`
	Liking          float64      `csv:"liking"`
	StudyEfficiency float64      `csv:"study_efficiency"`
	AttendanceRisk  float64      `csv:"attendance_risk"`
}
