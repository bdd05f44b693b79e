package schedule

import (
	"time"

	"github.com/username/shift-scheduler/pkg/dateutil"
)

const (
	minYear = 1
	maxYear = 9999
)

// Window is the half-open span [Start, End) a schedule is generated over
type Window struct {
	Start      time.Time
	End        time.Time
	NumberDays int
}

// ComputeWindow resolves the request against clock and returns the window.
// Missing month/year fall back to the clock's current month/year.
func ComputeWindow(req Request, clock Clock) (Window, error) {
	now := clock.Now()

	year := now.Year()
	if req.Year != nil {
		year = *req.Year
	}
	month := int(now.Month())
	if req.Month != nil {
		month = *req.Month
	}

	if month < 1 || month > 12 {
		return Window{}, &RangeError{Field: "month", Value: month, Min: 1, Max: 12}
	}
	if year < minYear || year > maxYear {
		return Window{}, &RangeError{Field: "year", Value: year, Min: minYear, Max: maxYear}
	}
	// The last entry is the end date itself, so it must stay within maxYear
	maxPeriod := (maxYear-year)*12 + (12 - month)
	if req.Period < 0 || req.Period > maxPeriod {
		return Window{}, &RangeError{Field: "period", Value: req.Period, Min: 0, Max: maxPeriod}
	}

	start := dateutil.StartOfMonth(year, time.Month(month))
	end := dateutil.AddMonths(start, req.Period)

	return Window{
		Start:      start,
		End:        end,
		NumberDays: dateutil.DaysBetween(start, end),
	}, nil
}

// DayAt returns the date offset days after the window start
func (w Window) DayAt(offset int) time.Time {
	return dateutil.AddDays(w.Start, offset)
}

// Contains reports whether offset still falls inside the walk range
func (w Window) Contains(offset int) bool {
	return offset <= w.NumberDays
}
