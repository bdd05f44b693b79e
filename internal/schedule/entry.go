package schedule

import (
	"time"

	"github.com/username/shift-scheduler/pkg/dateutil"
)

// DefaultWorkMarker is appended to the formatted date of a work day
const DefaultWorkMarker = "+"

// Kind classifies a scheduled day
type Kind int

const (
	KindOff Kind = iota + 1
	KindWork
)

func (k Kind) String() string {
	switch k {
	case KindWork:
		return "work"
	case KindOff:
		return "off"
	default:
		return "unknown"
	}
}

// Entry is a single scheduled day
type Entry struct {
	Date time.Time
	Kind Kind
}

// IsWork reports whether the entry is a work day
func (e Entry) IsWork() bool {
	return e.Kind == KindWork
}

// Format renders the entry with layout, appending marker on work days
func (e Entry) Format(layout, marker string) string {
	s := e.Date.Format(layout)
	if e.IsWork() {
		s += marker
	}
	return s
}

// String renders the entry as DD-MM-YYYY with a "+" on work days
func (e Entry) String() string {
	s := dateutil.FormatDMY(e.Date)
	if e.IsWork() {
		s += DefaultWorkMarker
	}
	return s
}

// Schedule is the ordered list of entries produced for one window
type Schedule struct {
	Window  Window
	Entries []Entry
}

// Strings returns every entry formatted with layout and marker, in order
func (s *Schedule) Strings(layout, marker string) []string {
	out := make([]string, len(s.Entries))
	for i, e := range s.Entries {
		out[i] = e.Format(layout, marker)
	}
	return out
}

// WorkDays counts work entries
func (s *Schedule) WorkDays() int {
	n := 0
	for _, e := range s.Entries {
		if e.IsWork() {
			n++
		}
	}
	return n
}
