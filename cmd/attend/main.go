package main

import (
	"fmt"
	"os"

	"github.com/rhyrak/go-attend/internal/csvio"
	"github.com/rhyrak/go-attend/internal/optimizer"
	"github.com/rhyrak/go-attend/pkg/model"
)

// Program parameters
const (
	InstructorsFile = "./res/instructors.csv"
	TimeSlotsFile   = "./res/timeslots.csv"
	TimetableFile   = "./res/timetable.csv"
	ExportFile      = "attendance.csv"
	Delimiter       = ','
	TargetPercent   = 75.0
)

func main() {
	// Parse and instantiate the reference catalogs from CSV
	instructors, err := csvio.LoadInstructors(InstructorsFile, Delimiter)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	slots, err := csvio.LoadTimeSlots(TimeSlotsFile, Delimiter)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	catalog := model.NewCatalog(instructors, slots)

	// Parse the weekly timetable snapshot
	timetable, err := csvio.LoadTimetable(TimetableFile, Delimiter, catalog)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d instructors, %d slots, %d sessions\n",
		len(instructors), len(slots), len(timetable))

	profile := model.StudentProfile{TravelTime: 2.0, TimeCommitment: 0.5}
	priorities := model.PriorityAssignment{}

	opt := optimizer.New(catalog, optimizer.NewDefaultConfiguration())

	fmt.Println("\n=== Fractional model ===")
	frac := opt.OptimizeFractional(timetable, profile, priorities, TargetPercent)
	if frac == nil {
		fmt.Println("No solution for the fractional model.")
	} else {
		csvio.PrintResult(frac, catalog)
	}

	fmt.Println("\n=== Integer model ===")
	integ := opt.OptimizeInteger(timetable, profile, priorities, TargetPercent)
	if integ == nil {
		fmt.Println("No solution for the integer model.")
		os.Exit(1)
	}
	csvio.PrintResult(integ, catalog)

	if err := csvio.ExportResult(integ, catalog, ExportFile); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	fmt.Printf("\nExported %s\n", ExportFile)
}
