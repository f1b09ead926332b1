//go:build unit

package recurrence_test

import (
	"testing"
	"time"

	"meetbook/internal/domain/recurrence"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func datesOnly(ts []time.Time) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Format("2006-01-02")
	}
	return out
}

func endDate(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestExpandDaily(t *testing.T) {
	t.Run("count termination", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 2, Count: 4}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)

		want := []string{"2025-01-06", "2025-01-08", "2025-01-10", "2025-01-12"}
		if diff := cmp.Diff(want, datesOnly(got)); diff != "" {
			t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("end date termination is inclusive", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 3, EndDate: endDate(2025, 1, 12)}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-09", "2025-01-12"}, datesOnly(got))
	})

	t.Run("occurrences keep the start clock time", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 1, Count: 2}
		got, err := rule.Expand(time.Date(2025, 1, 6, 19, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.Equal(t, 19, got[1].Hour())
		assert.Equal(t, 30, got[1].Minute())
	})

	t.Run("end date years out is honored without truncation", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 1, EndDate: endDate(2027, 1, 6)}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)

		// 2025-01-06 through 2027-01-06 inclusive, no leap day in range.
		assert.Len(t, got, 731)
		assert.Equal(t, "2027-01-06", got[len(got)-1].Format("2006-01-02"))
	})
}

func TestExpandWeekly(t *testing.T) {
	t.Run("weekday set enumerates each selected day per week", func(t *testing.T) {
		// 2025-01-06 is a Monday.
		rule := recurrence.Rule{
			Pattern:  recurrence.PatternWeekly,
			Interval: 1,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday},
			Count:    5,
		}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)

		want := []string{"2025-01-06", "2025-01-08", "2025-01-13", "2025-01-15", "2025-01-20"}
		if diff := cmp.Diff(want, datesOnly(got)); diff != "" {
			t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("weekdays before the start date are skipped", func(t *testing.T) {
		// Start on Wednesday; the Monday of the same week must not appear.
		rule := recurrence.Rule{
			Pattern:  recurrence.PatternWeekly,
			Interval: 1,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday},
			Count:    3,
		}
		got, err := rule.Expand(date(2025, 1, 8))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-08", "2025-01-13", "2025-01-15"}, datesOnly(got))
	})

	t.Run("interval skips whole weeks", func(t *testing.T) {
		rule := recurrence.Rule{
			Pattern:  recurrence.PatternWeekly,
			Interval: 2,
			Weekdays: []time.Weekday{time.Monday},
			Count:    3,
		}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-20", "2025-02-03"}, datesOnly(got))
	})

	t.Run("unordered weekday set still yields increasing dates", func(t *testing.T) {
		rule := recurrence.Rule{
			Pattern:  recurrence.PatternWeekly,
			Interval: 1,
			Weekdays: []time.Weekday{time.Friday, time.Monday},
			Count:    4,
		}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-10", "2025-01-13", "2025-01-17"}, datesOnly(got))
	})

	t.Run("nil weekday set falls back to stepping whole weeks", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternWeekly, Interval: 2, Count: 3}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-20", "2025-02-03"}, datesOnly(got))
	})

	t.Run("end date bound honored with weekday set", func(t *testing.T) {
		rule := recurrence.Rule{
			Pattern:  recurrence.PatternWeekly,
			Interval: 1,
			Weekdays: []time.Weekday{time.Monday, time.Wednesday},
			EndDate:  endDate(2025, 1, 15),
		}
		got, err := rule.Expand(date(2025, 1, 6))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-06", "2025-01-08", "2025-01-13", "2025-01-15"}, datesOnly(got))
	})
}

func TestExpandMonthly(t *testing.T) {
	t.Run("same day of month", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyDay: 15, Count: 3}
		got, err := rule.Expand(date(2025, 1, 15))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-15", "2025-02-15", "2025-03-15"}, datesOnly(got))
	})

	t.Run("day 31 clamps to the last day of short months", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyDay: 31, Count: 4}
		got, err := rule.Expand(date(2025, 1, 31))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-31", "2025-02-28", "2025-03-31", "2025-04-30"}, datesOnly(got))
	})

	t.Run("interval in months", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 3, MonthlyDay: 1, Count: 3}
		got, err := rule.Expand(date(2025, 1, 1))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-01", "2025-04-01", "2025-07-01"}, datesOnly(got))
	})

	t.Run("nth weekday of month", func(t *testing.T) {
		// Second Tuesday of each month.
		rule := recurrence.Rule{
			Pattern:        recurrence.PatternMonthly,
			Interval:       1,
			MonthlyWeek:    2,
			MonthlyWeekday: time.Tuesday,
			Count:          3,
		}
		got, err := rule.Expand(date(2025, 1, 14))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-14", "2025-02-11", "2025-03-11"}, datesOnly(got))
	})

	t.Run("last weekday of month", func(t *testing.T) {
		rule := recurrence.Rule{
			Pattern:        recurrence.PatternMonthly,
			Interval:       1,
			MonthlyWeek:    -1,
			MonthlyWeekday: time.Friday,
			Count:          2,
		}
		got, err := rule.Expand(date(2025, 1, 31))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-01-31", "2025-02-28"}, datesOnly(got))
	})

	t.Run("selected day before start rolls to the next month", func(t *testing.T) {
		rule := recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyDay: 10, Count: 2}
		got, err := rule.Expand(date(2025, 1, 20))
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-02-10", "2025-03-10"}, datesOnly(got))
	})
}

func TestExpandProperties(t *testing.T) {
	rules := map[string]recurrence.Rule{
		"daily":          {Pattern: recurrence.PatternDaily, Interval: 1, Count: 30},
		"weekly set":     {Pattern: recurrence.PatternWeekly, Interval: 2, Weekdays: []time.Weekday{time.Sunday, time.Wednesday, time.Saturday}, Count: 13},
		"monthly day":    {Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyDay: 29, Count: 14},
		"monthly nth":    {Pattern: recurrence.PatternMonthly, Interval: 2, MonthlyWeek: 4, MonthlyWeekday: time.Thursday, Count: 7},
		"daily end date": {Pattern: recurrence.PatternDaily, Interval: 5, EndDate: endDate(2026, 6, 30)},
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			got, err := rule.Expand(date(2025, 1, 29))
			require.NoError(t, err)
			require.NotEmpty(t, got)

			if rule.Count != 0 {
				assert.Len(t, got, rule.Count)
			}
			for i := 1; i < len(got); i++ {
				assert.True(t, got[i].After(got[i-1]),
					"occurrence %d (%s) not after %d (%s)", i, got[i], i-1, got[i-1])
			}
			if rule.EndDate != nil {
				last := got[len(got)-1]
				assert.False(t, last.After(*rule.EndDate))
			}
		})
	}
}

func TestRuleValidation(t *testing.T) {
	start := date(2025, 1, 6)

	cases := []struct {
		name  string
		rule  recurrence.Rule
		errIs error
	}{
		{
			name:  "unknown pattern",
			rule:  recurrence.Rule{Pattern: "yearly", Interval: 1, Count: 2},
			errIs: recurrence.ErrInvalidPattern,
		},
		{
			name:  "zero interval",
			rule:  recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 0, Count: 2},
			errIs: recurrence.ErrInvalidInterval,
		},
		{
			name:  "negative interval",
			rule:  recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: -1, Count: 2},
			errIs: recurrence.ErrInvalidInterval,
		},
		{
			name:  "empty weekday set",
			rule:  recurrence.Rule{Pattern: recurrence.PatternWeekly, Interval: 1, Weekdays: []time.Weekday{}, Count: 2},
			errIs: recurrence.ErrEmptyWeekdays,
		},
		{
			name:  "monthly day out of range",
			rule:  recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyDay: 32, Count: 2},
			errIs: recurrence.ErrInvalidMonthlyDay,
		},
		{
			name:  "monthly week out of range",
			rule:  recurrence.Rule{Pattern: recurrence.PatternMonthly, Interval: 1, MonthlyWeek: 5, Count: 2},
			errIs: recurrence.ErrInvalidMonthlyWeek,
		},
		{
			name:  "end date before start",
			rule:  recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 1, EndDate: endDate(2025, 1, 5)},
			errIs: recurrence.ErrEndBeforeStart,
		},
		{
			name:  "no termination",
			rule:  recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 1},
			errIs: recurrence.ErrNoTermination,
		},
		{
			name:  "both terminations",
			rule:  recurrence.Rule{Pattern: recurrence.PatternDaily, Interval: 1, Count: 3, EndDate: endDate(2025, 2, 1)},
			errIs: recurrence.ErrAmbiguousTermination,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.rule.Expand(start)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
