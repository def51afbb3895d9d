package model

type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

var dayNames = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

func (d Day) String() string {
	if d < Monday || d > Friday {
		return "?"
	}
	return dayNames[d]
}

// ParseDay resolves a day name to its index. Returns false for names
// outside the Monday-Friday teaching week.
func ParseDay(name string) (Day, bool) {
	for i, n := range dayNames {
		if n == name {
			return Day(i), true
		}
	}
	return 0, false
}

// SessionKey uniquely identifies a session within the weekly timetable.
type SessionKey struct {
	Day    Day
	SlotID int
}

// ScheduledSession is one entry in the weekly timetable.
type ScheduledSession struct {
	Day          Day          `json:"day"`
	SlotID       int          `json:"slotId"`
	InstructorID InstructorID `json:"instructorId"`
	Subject      string       `json:"subject"`
}

func (s *ScheduledSession) Key() SessionKey {
	return SessionKey{Day: s.Day, SlotID: s.SlotID}
}

// SessionCSVRow is the timetable input format.
type SessionCSVRow struct {
	Day          string `csv:"day"`
	SlotID       int    `csv:"slot_id"`
	InstructorID int    `csv:"instructor_id"`
	Subject      string `csv:"subject"`
}

// Timetable is the weekly session snapshot handed to the optimizer.
// The surrounding caller owns mutation; one solve treats it as frozen.
type Timetable map[SessionKey]*ScheduledSession

// Put inserts or overwrites the session at its (day, slot) key.
func (t Timetable) Put(s *ScheduledSession) {
	t[s.Key()] = s
}
