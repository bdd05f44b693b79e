package schedule

import (
	"time"

	"github.com/username/shift-scheduler/pkg/dateutil"
)

// MonthSummary counts work and off days of one calendar month of a schedule
type MonthSummary struct {
	Year     int
	Month    time.Month
	WorkDays int
	OffDays  int
}

// Days returns the total number of scheduled days in the month
func (m MonthSummary) Days() int {
	return m.WorkDays + m.OffDays
}

// Summarize groups the schedule by calendar month in chronological order
func (s *Schedule) Summarize() []MonthSummary {
	var months []MonthSummary
	var current *MonthSummary
	var currentDate time.Time

	for _, e := range s.Entries {
		if current == nil || !dateutil.IsSameMonth(currentDate, e.Date) {
			months = append(months, MonthSummary{
				Year:  e.Date.Year(),
				Month: e.Date.Month(),
			})
			current = &months[len(months)-1]
			currentDate = e.Date
		}

		if e.IsWork() {
			current.WorkDays++
		} else {
			current.OffDays++
		}
	}

	return months
}
