package model

// StudentProfile holds the two tunable penalty scalars. Both come from a
// small menu of categorical options and are nonnegative.
type StudentProfile struct {
	TravelTime     float64 `json:"travelTime"`
	TimeCommitment float64 `json:"timeCommitment"`
}

// ProfileOption is one entry of a categorical penalty menu.
type ProfileOption struct {
	Label string
	Value float64
}

// TravelTimeOptions is the travel penalty menu presented to the student.
var TravelTimeOptions = []ProfileOption{
	{"Under 15 min", 1.0},
	{"15-30 min", 1.5},
	{"30-60 min", 2.0},
	{"60-90 min", 2.5},
	{"Over 90 min", 3.0},
}

// TimeCommitmentOptions is the outside-commitment penalty menu.
var TimeCommitmentOptions = []ProfileOption{
	{"No commitments", 0.0},
	{"Society/Club/Sports", 0.5},
	{"Part-time job", 1.0},
}
