package model

// Catalog is the shared read-only reference data: the instructor table
// and the daily slot table. Built once at startup and passed to every
// component that needs a lookup; never mutated afterwards.
type Catalog struct {
	instructors map[InstructorID]*Instructor
	slots       map[int]*TimeSlot
}

func NewCatalog(instructors []*Instructor, slots []*TimeSlot) *Catalog {
	c := &Catalog{
		instructors: make(map[InstructorID]*Instructor, len(instructors)),
		slots:       make(map[int]*TimeSlot, len(slots)),
	}
	for _, in := range instructors {
		c.instructors[in.ID] = in
	}
	for _, s := range slots {
		c.slots[s.ID] = s
	}
	return c
}

// Instructor resolves an instructor id. Returns nil for unknown ids.
func (c *Catalog) Instructor(id InstructorID) *Instructor {
	return c.instructors[id]
}

// Slot resolves a slot id. Returns nil for unknown ids.
func (c *Catalog) Slot(id int) *TimeSlot {
	return c.slots[id]
}

// Block returns the time block of the given slot, falling back to
// midday for unknown slot ids so a bad reference degrades gracefully.
func (c *Catalog) Block(slotID int) TimeBlock {
	if s := c.slots[slotID]; s != nil {
		return s.Block
	}
	return Midday
}

// Instructors returns the catalog entries in unspecified order.
func (c *Catalog) Instructors() []*Instructor {
	out := make([]*Instructor, 0, len(c.instructors))
	for _, in := range c.instructors {
		out = append(out, in)
	}
	return out
}

// Slots returns the slot entries in unspecified order.
func (c *Catalog) Slots() []*TimeSlot {
	out := make([]*TimeSlot, 0, len(c.slots))
	for _, s := range c.slots {
		out = append(out, s)
	}
	return out
}

// DefaultCatalog returns the built-in reference tables.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultInstructors(), DefaultTimeSlots())
}

// DefaultInstructors returns the survey-calibrated instructor table.
func DefaultInstructors() []*Instructor {
	return []*Instructor{
		{1, "Prof. B. Biswal", 7.2, 6.5, 7.0, 5.5},
		{2, "Prof. Shobha Bagai", 8.5, 7.8, 8.0, 9.2},
		{3, "Prof. Pankaj Tyagi", 7.0, 6.5, 6.8, 8.5},
		{4, "Prof. Swati Arora", 6.5, 5.8, 5.5, 7.0},
		{5, "Prof. Mahima Kaushik", 7.8, 7.2, 7.5, 8.0},
		{6, "Prof. Nirmal Yadav", 8.2, 7.5, 8.0, 8.8},
		{7, "Prof. Sonam Tanwar", 7.5, 6.8, 7.2, 7.8},
		{8, "Prof. Asani Bhaduri", 7.8, 7.0, 7.3, 8.2},
		{9, "Prof. Harendra Pal Singh", 7.3, 6.7, 7.0, 7.5},
		{10, "Prof. Sachin Kumar", 7.6, 6.9, 7.2, 7.9},
		{11, "Prof. J.S. Purohit", 7.1, 6.4, 6.7, 7.3},
		{12, "Prof. Dorje Dawa", 6.8, 6.2, 6.5, 7.0},
		{13, "Prof. Shobha Rai", 7.4, 6.8, 7.1, 7.6},
		{14, "Prof. Anjani Verma", 7.2, 6.6, 6.9, 7.4},
		{15, "Prof. Manish Kumar", 7.7, 7.1, 7.4, 8.1},
		{16, "Prof. Sanjeewani Sehgal", 7.5, 6.9, 7.2, 7.7},
	}
}

// DefaultTimeSlots returns the fixed six-slot teaching day.
func DefaultTimeSlots() []*TimeSlot {
	return []*TimeSlot{
		{1, "9:00-10:00", Morning},
		{2, "10:00-11:00", Morning},
		{3, "11:00-12:00", Midday},
		{4, "12:00-13:00", Midday},
		{5, "14:00-15:00", Afternoon},
		{6, "15:00-16:00", Afternoon},
	}
}
