package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func windowFrom(start time.Time, days int) Window {
	return Window{Start: start, End: start.AddDate(0, 0, days), NumberDays: days}
}

func TestWalk_JanuaryFebruary2023(t *testing.T) {
	window, err := ComputeWindow(NewRequest(intPtr(1), intPtr(2023), 2), SystemClock{})
	require.NoError(t, err)

	sched := Walk(window)
	got := sched.Strings("02-01-2006", "+")

	require.Len(t, got, 59)
	assert.Equal(t, []string{
		"02-01-2023+", // Monday
		"03-01-2023",
		"04-01-2023",
		"05-01-2023+", // Thursday
		"06-01-2023",
		"07-01-2023",
		"08-01-2023", // Sunday, scanned off
		"09-01-2023+",
	}, got[:8])
	assert.Equal(t, "01-03-2023", got[len(got)-1])

	// Rotation settles into Monday/Thursday work days
	for _, e := range sched.Entries {
		if e.IsWork() {
			assert.Contains(t, []time.Weekday{time.Monday, time.Thursday}, e.Date.Weekday(),
				"work day %s", e.Date.Format("2006-01-02 Mon"))
		}
	}
	assert.Equal(t, 17, sched.WorkDays())
}

func TestWalk_Truncation(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		days  int
		want  []string
	}{
		{
			name:  "Rest days past the end are dropped",
			start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			days:  5,
			want:  []string{"02-01-2023+", "03-01-2023", "04-01-2023", "05-01-2023+", "06-01-2023"},
		},
		{
			name:  "Second rest day dropped",
			start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			days:  2,
			want:  []string{"02-01-2023+", "03-01-2023"},
		},
		{
			name:  "Weekend scan stops at the end",
			start: time.Date(2023, 1, 4, 0, 0, 0, 0, time.UTC), // Wednesday
			days:  4,
			want:  []string{"05-01-2023+", "06-01-2023", "07-01-2023", "08-01-2023"},
		},
		{
			name:  "Single day",
			start: time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), // Friday, offset 1 is Saturday
			days:  1,
			want:  []string{"07-01-2023"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := Walk(windowFrom(tt.start, tt.days))
			assert.Equal(t, tt.want, sched.Strings("02-01-2006", "+"))
		})
	}
}

func TestWalk_EmptyWindow(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, Walk(windowFrom(start, 0)).Entries)
	assert.Empty(t, Walk(Window{Start: start, NumberDays: -3}).Entries)
}

func TestWalk_WeekendScanMarksOff(t *testing.T) {
	// Friday start: offsets 1 and 2 are Saturday and Sunday
	sched := Walk(windowFrom(time.Date(2023, 1, 6, 0, 0, 0, 0, time.UTC), 7))

	require.Len(t, sched.Entries, 7)
	assert.Equal(t, KindOff, sched.Entries[0].Kind)
	assert.Equal(t, KindOff, sched.Entries[1].Kind)
	assert.Equal(t, KindWork, sched.Entries[2].Kind)
	assert.Equal(t, time.Monday, sched.Entries[2].Date.Weekday())
}

// Every offset in 1..NumberDays yields exactly one entry, in date order,
// and the walk always finishes.
func TestWalk_TerminatesAndCoversEveryDay(t *testing.T) {
	done := make(chan struct{})

	go func() {
		defer close(done)

		base := time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC)
		for shift := 0; shift < 14; shift++ {
			start := base.AddDate(0, 0, shift)
			for days := 0; days <= 120; days++ {
				window := windowFrom(start, days)
				sched := Walk(window)

				if !assert.Len(t, sched.Entries, days, "start %s days %d", start.Format("2006-01-02"), days) {
					return
				}
				for i, e := range sched.Entries {
					assert.Equal(t, window.DayAt(i+1), e.Date)
				}
			}
		}
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Walk did not terminate")
	}
}

func TestWalk_NoWorkOnWeekendAfterRest(t *testing.T) {
	sched := Walk(windowFrom(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 366))

	for i, e := range sched.Entries {
		if !e.IsWork() {
			continue
		}
		assert.NotEqual(t, time.Saturday, e.Date.Weekday())
		assert.NotEqual(t, time.Sunday, e.Date.Weekday())

		// Two rest days follow every work day
		for j := i + 1; j <= i+2 && j < len(sched.Entries); j++ {
			assert.Equal(t, KindOff, sched.Entries[j].Kind)
		}
	}
}
