package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-attend/pkg/model"
)

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// LoadInstructors reads and parses the given csv file for the
// instructor rating catalog.
func LoadInstructors(path string, delim rune) ([]*model.Instructor, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var instructors []*model.Instructor
	if err := gocsv.UnmarshalFile(f, &instructors); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return instructors, nil
}

// LoadTimeSlots reads and parses the given csv file for the daily slot
// catalog.
func LoadTimeSlots(path string, delim rune) ([]*model.TimeSlot, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var slots []*model.TimeSlot
	if err := gocsv.UnmarshalFile(f, &slots); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return slots, nil
}

// LoadTimetable reads the weekly session file and builds the snapshot
// keyed by (day, slot). The timetable source contract guarantees unique
// keys, so a duplicate is rejected as corrupt data. Unknown instructor
// ids are allowed through; the scorer treats them as zero utility.
func LoadTimetable(path string, delim rune, catalog *model.Catalog) (model.Timetable, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var rows []*model.SessionCSVRow
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return TimetableFromRows(rows, catalog, path)
}

// TimetableFromRows validates parsed rows into a timetable snapshot.
func TimetableFromRows(rows []*model.SessionCSVRow, catalog *model.Catalog, source string) (model.Timetable, error) {
	tt := make(model.Timetable, len(rows))
	for _, row := range rows {
		day, ok := model.ParseDay(row.Day)
		if !ok {
			return nil, fmt.Errorf("%s: unknown day %q", source, row.Day)
		}
		if catalog.Slot(row.SlotID) == nil {
			return nil, fmt.Errorf("%s: unknown time slot %d", source, row.SlotID)
		}
		s := &model.ScheduledSession{
			Day:          day,
			SlotID:       row.SlotID,
			InstructorID: model.InstructorID(row.InstructorID),
			Subject:      row.Subject,
		}
		if _, exists := tt[s.Key()]; exists {
			return nil, fmt.Errorf("%s: duplicate session at %s slot %d", source, day, row.SlotID)
		}
		tt.Put(s)
	}
	return tt, nil
}
