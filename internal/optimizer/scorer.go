package optimizer

import (
	"math"

	"github.com/rhyrak/go-attend/pkg/model"
)

// Scorer computes the Attendance Priority Score of a session: a weighted
// combination of the instructor's static ratings, the time-block rating,
// the holiday baseline and the student's penalty terms, scaled by the
// instructor's priority multiplier.
type Scorer struct {
	catalog *model.Catalog
	cfg     *Configuration
}

func NewScorer(catalog *model.Catalog, cfg *Configuration) *Scorer {
	return &Scorer{catalog: catalog, cfg: cfg}
}

// Score returns the APS for one (instructor, block, profile, level)
// tuple, rounded to 3 decimals. An unknown instructor scores 0 so that
// a single bad reference cannot abort a whole solve.
func (s *Scorer) Score(id model.InstructorID, block model.TimeBlock, profile model.StudentProfile, level model.PriorityLevel) float64 {
	prof := s.catalog.Instructor(id)
	if prof == nil {
		return 0.0
	}
	w := s.cfg.Weights
	base := w.W1*prof.PerceivedValue +
		w.W2*prof.Liking +
		w.W3*prof.StudyEfficiency +
		w.W4*prof.AttendanceRisk +
		w.W5*block.Rating() +
		w.W6*s.cfg.HolidayBaseline -
		w.W7*profile.TravelTime -
		w.W8*profile.TimeCommitment
	return round3(base * level.Multiplier())
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
