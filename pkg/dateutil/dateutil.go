package dateutil

import "time"

// LayoutDMY is the day-month-year layout used for schedule output
const LayoutDMY = "02-01-2006"

// StartOfMonth returns the first day (00:00 UTC) of the given month
func StartOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths advances date by n calendar months.
// Day-of-month overflow carries into the following month (Jan 31 + 1 month = Mar 3).
func AddMonths(date time.Time, n int) time.Time {
	return date.AddDate(0, n, 0)
}

// DaysBetween returns the number of whole days from start to end.
// Both dates are normalized to midnight UTC and compared as Unix seconds,
// which has no upper bound on the span unlike time.Duration.
func DaysBetween(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int((e.Unix() - s.Unix()) / 86400)
}

// AddDays returns date shifted by n days
func AddDays(date time.Time, n int) time.Time {
	return date.AddDate(0, 0, n)
}

// ISOWeekday returns the ISO 8601 weekday number (Monday=1 ... Sunday=7)
func ISOWeekday(date time.Time) int {
	weekday := int(date.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday = 7
	}
	return weekday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := ISOWeekday(date)
	return weekday == 6 || weekday == 7
}

// IsSameMonth returns true if two dates fall in the same calendar month
func IsSameMonth(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() && date1.Month() == date2.Month()
}

// FormatDMY formats date as DD-MM-YYYY
// Example: 2023-01-05 -> "05-01-2023"
func FormatDMY(date time.Time) string {
	return date.Format(LayoutDMY)
}
