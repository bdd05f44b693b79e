package schedule

import (
	"strconv"
	"strings"
)

// DefaultPeriod is the number of months generated when no period is given
const DefaultPeriod = 1

// Request holds the inputs of one generation run.
// A nil Month or Year means "use the current one".
type Request struct {
	Month  *int
	Year   *int
	Period int
}

// NewRequest builds a Request from already-typed values
func NewRequest(month, year *int, period int) Request {
	return Request{Month: month, Year: year, Period: period}
}

// ParseRequest converts raw textual month, year and period values into a Request.
// An empty month or year is treated as absent, an empty period as DefaultPeriod.
// The first value that is not an integer aborts parsing with *InvalidInputError.
func ParseRequest(month, year, period string) (Request, error) {
	req := Request{Period: DefaultPeriod}

	m, err := parseOptionalInt("month", month)
	if err != nil {
		return Request{}, err
	}
	req.Month = m

	y, err := parseOptionalInt("year", year)
	if err != nil {
		return Request{}, err
	}
	req.Year = y

	p, err := parseOptionalInt("period", period)
	if err != nil {
		return Request{}, err
	}
	if p != nil {
		req.Period = *p
	}

	return req, nil
}

func parseOptionalInt(field, raw string) (*int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return nil, &InvalidInputError{Field: field, Value: raw}
	}
	return &n, nil
}
