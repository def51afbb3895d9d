package optimizer

import (
	"math"
	"testing"

	"github.com/rhyrak/go-attend/pkg/model"
)

func assertBinary(t *testing.T, res *model.OptimizationResult) {
	t.Helper()
	for _, d := range res.Decisions {
		if d.Fraction != 0.0 && d.Fraction != 1.0 {
			t.Fatalf("non-binary decision %v", d.Fraction)
		}
	}
}

func selectedCount(res *model.OptimizationResult) int {
	n := 0
	for _, d := range res.Decisions {
		if d.Fraction == 1.0 {
			n++
		}
	}
	return n
}

func TestIntegerEmptyTimetable(t *testing.T) {
	o := testOptimizer()
	if res := o.OptimizeInteger(model.Timetable{}, testProfile(), nil, 75); res != nil {
		t.Fatal("empty timetable should yield no result")
	}
}

func TestIntegerSelectsHighestScores(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 2),
		session(model.Monday, 2, 6),
		session(model.Monday, 3, 5),
		session(model.Monday, 4, 1),
		session(model.Monday, 5, 4),
	)
	res := o.OptimizeInteger(tt, testProfile(), nil, 60)
	if res == nil {
		t.Fatal("no solution")
	}
	assertBinary(t, res)
	if got := selectedCount(res); got != 3 {
		t.Fatalf("selected %d sessions, want 3", got)
	}
	// With one session per instructor the selection must follow
	// descending APS order.
	ordered := decisionsByScore(res)
	for i, d := range ordered {
		want := 0.0
		if i < 3 {
			want = 1.0
		}
		if d.Fraction != want {
			t.Fatalf("rank %d (aps %v): selected=%v, want %v", i, d.Score, d.Fraction, want)
		}
	}
}

func TestIntegerCeilingRequirement(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 2),
		session(model.Monday, 2, 6),
		session(model.Monday, 3, 5),
		session(model.Monday, 4, 1),
		session(model.Monday, 5, 4),
	)
	// ceil(5 * 0.5) = 3
	res := o.OptimizeInteger(tt, testProfile(), nil, 50)
	if res == nil {
		t.Fatal("no solution")
	}
	assertBinary(t, res)
	if got := selectedCount(res); got != 3 {
		t.Fatalf("selected %d sessions, want ceil(2.5)=3", got)
	}
	if res.RequiredWeek != 3.0 {
		t.Fatalf("required week = %v, want 3", res.RequiredWeek)
	}
}

func TestIntegerInstructorMinimum(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 4),
		session(model.Tuesday, 1, 4),
		session(model.Monday, 2, 2),
		session(model.Tuesday, 2, 6),
	)
	// required = 3; both instructor-4 sessions must stay in.
	res := o.OptimizeInteger(tt, testProfile(), nil, 75)
	if res == nil {
		t.Fatal("no solution")
	}
	assertBinary(t, res)
	if got := selectedCount(res); got != 3 {
		t.Fatalf("selected %d, want 3", got)
	}
	if got := res.InstructorStats[4].Attended; got != 2.0 {
		t.Fatalf("instructor 4 attended %v, want 2", got)
	}
	// The free slot goes to the higher scored of instructors 2 and 6.
	if got := res.InstructorStats[2].Attended; got != 1.0 {
		t.Fatalf("instructor 2 attended %v, want 1", got)
	}
	if len(res.Relaxed) != 0 {
		t.Fatalf("unexpected relaxation: %v", res.Relaxed)
	}
}

func TestIntegerRelaxesInfeasibleMinimum(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 4),
		session(model.Tuesday, 1, 4),
		session(model.Monday, 2, 2),
	)
	// required = ceil(0.99) = 1 conflicts with the >= 2 minimum.
	res := o.OptimizeInteger(tt, testProfile(), nil, 33)
	if res == nil {
		t.Fatal("relaxed solve should still produce a result")
	}
	assertBinary(t, res)
	if len(res.Relaxed) != 1 || res.Relaxed[0] != groupInstructorMinimum {
		t.Fatalf("relaxed = %v, want [%s]", res.Relaxed, groupInstructorMinimum)
	}
	if got := selectedCount(res); got != 1 {
		t.Fatalf("selected %d, want 1", got)
	}
	for _, d := range res.Decisions {
		if d.Fraction == 1.0 && d.Session.InstructorID != 2 {
			t.Fatalf("selected instructor %d, want 2", d.Session.InstructorID)
		}
	}
}

func TestIntegerRoundTrip(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 2),
		session(model.Monday, 2, 6),
		session(model.Tuesday, 1, 5),
		session(model.Tuesday, 2, 1),
		session(model.Wednesday, 1, 4),
		session(model.Wednesday, 2, 7),
	)
	res := o.OptimizeInteger(tt, testProfile(), nil, 66)
	if res == nil {
		t.Fatal("no solution")
	}
	// Re-summing the selected subset's scores reproduces the reported
	// total value.
	direct := 0.0
	for _, d := range res.Decisions {
		if d.Fraction == 1.0 {
			direct += o.Scorer().Score(d.Session.InstructorID, o.catalog.Block(d.Session.SlotID), testProfile(), model.PriorityMedium)
		}
	}
	if math.Abs(res.TotalValue-direct) > 1e-9 {
		t.Fatalf("total value %v != direct sum %v", res.TotalValue, direct)
	}
}

func TestIntegerNodeBudget(t *testing.T) {
	catalog := model.DefaultCatalog()

	// A budget of one node still returns the root relaxation when it is
	// already integral.
	cfg := NewDefaultConfiguration()
	cfg.MaxNodes = 1
	o := New(catalog, cfg)
	tt := timetableOf(
		session(model.Monday, 1, 2),
		session(model.Monday, 2, 6),
		session(model.Monday, 3, 5),
		session(model.Monday, 4, 1),
		session(model.Monday, 5, 4),
	)
	res := o.OptimizeInteger(tt, testProfile(), nil, 60)
	if res == nil {
		t.Fatal("integral root should survive a one-node budget")
	}
	assertBinary(t, res)

	// A zero budget explores nothing and reports no solution.
	cfg = NewDefaultConfiguration()
	cfg.MaxNodes = 0
	o = New(catalog, cfg)
	if res := o.OptimizeInteger(tt, testProfile(), nil, 60); res != nil {
		t.Fatal("zero budget should find nothing")
	}
}

func TestIntegerPrioritiesChangeSelection(t *testing.T) {
	o := testOptimizer()
	tt := timetableOf(
		session(model.Monday, 1, 2),
		session(model.Monday, 2, 6),
		session(model.Monday, 3, 5),
	)
	// Avoid the strongest instructor and boost the weakest.
	priorities := model.PriorityAssignment{
		2: model.PriorityAvoid,
		5: model.PriorityVeryHigh,
	}
	res := o.OptimizeInteger(tt, testProfile(), priorities, 34)
	if res == nil {
		t.Fatal("no solution")
	}
	if got := selectedCount(res); got != 2 {
		t.Fatalf("selected %d, want 2", got)
	}
	if got := res.InstructorStats[2].Attended; got != 0.0 {
		t.Fatalf("avoided instructor attended %v, want 0", got)
	}
}
