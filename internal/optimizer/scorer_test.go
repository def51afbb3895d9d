package optimizer

import (
	"math"
	"testing"

	"github.com/rhyrak/go-attend/pkg/model"
)

func testOptimizer() *Optimizer {
	return New(model.DefaultCatalog(), NewDefaultConfiguration())
}

func testProfile() model.StudentProfile {
	return model.StudentProfile{TravelTime: 2.0, TimeCommitment: 0.5}
}

func session(day model.Day, slot int, id model.InstructorID) *model.ScheduledSession {
	return &model.ScheduledSession{Day: day, SlotID: slot, InstructorID: id, Subject: "S"}
}

func timetableOf(sessions ...*model.ScheduledSession) model.Timetable {
	tt := make(model.Timetable, len(sessions))
	for _, s := range sessions {
		tt.Put(s)
	}
	return tt
}

func TestScoreKnownScenario(t *testing.T) {
	s := testOptimizer().Scorer()
	// Instructor 2: pv=8.5 le=7.8 se=8.0 ar=9.2, morning block, Medium.
	got := s.Score(2, model.Morning, testProfile(), model.PriorityMedium)
	want := 6.614
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("Score = %v, want %v", got, want)
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := testOptimizer().Scorer()
	for _, level := range model.PriorityLevels {
		a := s.Score(5, model.Afternoon, testProfile(), level)
		b := s.Score(5, model.Afternoon, testProfile(), level)
		if a != b {
			t.Fatalf("level %s: repeated calls differ: %v vs %v", level, a, b)
		}
	}
}

func TestScoreUnknownInstructor(t *testing.T) {
	s := testOptimizer().Scorer()
	if got := s.Score(999, model.Morning, testProfile(), model.PriorityMedium); got != 0.0 {
		t.Fatalf("unknown instructor scored %v, want 0", got)
	}
}

func TestScorePriorityOrdering(t *testing.T) {
	s := testOptimizer().Scorer()
	prev := math.Inf(1)
	for _, level := range model.PriorityLevels {
		got := s.Score(7, model.Midday, testProfile(), level)
		if got >= prev {
			t.Fatalf("level %s: score %v not below previous %v", level, got, prev)
		}
		prev = got
	}
}

func TestScoreUnknownBlockUsesDefaultRating(t *testing.T) {
	s := testOptimizer().Scorer()
	// The default block rating equals the midday rating.
	unknown := s.Score(3, model.TimeBlock("evening"), testProfile(), model.PriorityMedium)
	midday := s.Score(3, model.Midday, testProfile(), model.PriorityMedium)
	if unknown != midday {
		t.Fatalf("unknown block score %v, want midday score %v", unknown, midday)
	}
}

func TestDefaultWeightsValidate(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights invalid: %v", err)
	}
	bad := DefaultWeights()
	bad.W3 = -0.1
	if err := bad.Validate(); err == nil {
		t.Fatal("negative weight passed validation")
	}
	skewed := DefaultWeights()
	skewed.W1 = 0.9
	if err := skewed.Validate(); err == nil {
		t.Fatal("skewed weight sum passed validation")
	}
}
