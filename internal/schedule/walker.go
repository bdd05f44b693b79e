package schedule

import "github.com/username/shift-scheduler/pkg/dateutil"

// restDays is the number of days off that follow every work day
const restDays = 2

// cursor walks day offsets 1..NumberDays of a window and collects entries.
// Each step advances offset even when the day falls past the window and is dropped.
type cursor struct {
	window  Window
	offset  int
	entries []Entry
}

func (c *cursor) done() bool {
	return !c.window.Contains(c.offset)
}

// add appends the current day as kind if it is still inside the window, then advances
func (c *cursor) add(kind Kind) {
	if !c.done() {
		c.entries = append(c.entries, Entry{Date: c.window.DayAt(c.offset), Kind: kind})
	}
	c.offset++
}

// scanWeekend marks consecutive Saturdays and Sundays as off
func (c *cursor) scanWeekend() {
	for !c.done() && dateutil.IsWeekend(c.window.DayAt(c.offset)) {
		c.add(KindOff)
	}
}

// Walk classifies every day after the window start up to and including
// offset NumberDays following the rotation: weekend days off, one work day,
// then two days off. Days that would land past NumberDays are dropped.
func Walk(w Window) *Schedule {
	c := &cursor{window: w, offset: 1}
	if w.NumberDays > 0 {
		c.entries = make([]Entry, 0, w.NumberDays)
	}

	for !c.done() {
		c.scanWeekend()
		c.add(KindWork)
		for i := 0; i < restDays; i++ {
			c.add(KindOff)
		}
	}

	return &Schedule{Window: w, Entries: c.entries}
}
