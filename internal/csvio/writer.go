package csvio

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rhyrak/go-attend/pkg/model"
)

// ExportResult formats the optimization result into ResultCSVRow structs
// and writes it to the CSV file specified by the given path.
func ExportResult(res *model.OptimizationResult, catalog *model.Catalog, path string) error {
	rows := formatResult(res, catalog)
	// Remove file if exists
	if _, err := os.Stat(path); err == nil {
		os.Remove(path)
	}
	out, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, os.ModePerm)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportResultString formats the optimization result as a CSV string.
func ExportResultString(res *model.OptimizationResult, catalog *model.Catalog) (string, error) {
	rows := formatResult(res, catalog)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", err
	}
	return str, nil
}

// PrintResult prints the weekly selection grouped by day plus the
// aggregate statistics and per-instructor tallies.
func PrintResult(res *model.OptimizationResult, catalog *model.Catalog) {
	rows := formatResult(res, catalog)
	var lastDay string
	for _, r := range rows {
		if r.Day != lastDay {
			lastDay = r.Day
			fmt.Printf("\n%s %s %s\n", strings.Repeat("-", (32-len(r.Day))/2), r.Day, strings.Repeat("-", int(0.5+(32-float32(len(r.Day)))/2.0)))
		}
		mark := " "
		if r.Fraction >= 1 {
			mark = "*"
		} else if r.Fraction > 0 {
			mark = "~"
		}
		fmt.Printf("%s %-12s %-24s %-26s x=%.3f aps=%.3f\n", mark, r.Time, r.Subject, r.Instructor, r.Fraction, r.APS)
	}
	fmt.Printf("\nWeekly: %v/%d selected (required %.2f), term: %v/%d (%.2f%%)\n",
		res.SelectedWeek, res.TotalWeek, res.RequiredWeek,
		res.SelectedTerm, res.TotalTerm, res.AttendancePercent)
	fmt.Printf("Total value: %.3f   Avg value: %.3f\n", res.TotalValue, res.AvgValue)
	if len(res.Relaxed) > 0 {
		fmt.Printf("Relaxed constraints: %s\n", strings.Join(res.Relaxed, ", "))
	}
	fmt.Println("\nInstructor-wise attendance:")
	stats := make([]*model.InstructorStat, 0, len(res.InstructorStats))
	for _, s := range res.InstructorStats {
		stats = append(stats, s)
	}
	slices.SortFunc(stats, func(a, b *model.InstructorStat) int {
		return int(a.InstructorID) - int(b.InstructorID)
	})
	for _, s := range stats {
		fmt.Printf("#%-3d %-26s %.2f/%d\n", s.InstructorID, s.Name, s.Attended, s.Total)
	}
}

func formatResult(res *model.OptimizationResult, catalog *model.Catalog) []*model.ResultCSVRow {
	var formatted []*model.ResultCSVRow
	for _, d := range res.Decisions {
		label := ""
		if slot := catalog.Slot(d.Session.SlotID); slot != nil {
			label = slot.Label
		}
		name := fmt.Sprintf("#%d", d.Session.InstructorID)
		if prof := catalog.Instructor(d.Session.InstructorID); prof != nil {
			name = prof.Name
		}
		formatted = append(formatted, &model.ResultCSVRow{
			Day:          d.Session.Day.String(),
			SlotID:       d.Session.SlotID,
			Time:         label,
			Subject:      d.Session.Subject,
			InstructorID: int(d.Session.InstructorID),
			Instructor:   name,
			APS:          d.Score,
			Fraction:     d.Fraction,
			Contribution: d.Contribution,
		})
	}
	slices.SortFunc(formatted, func(a, b *model.ResultCSVRow) int {
		da, _ := model.ParseDay(a.Day)
		db, _ := model.ParseDay(b.Day)
		if da != db {
			return int(da) - int(db)
		}
		return a.SlotID - b.SlotID
	})
	return formatted
}
