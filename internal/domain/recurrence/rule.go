package recurrence

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrInvalidPattern    = errors.New("invalid recurrence pattern")
	ErrInvalidInterval   = errors.New("recurrence interval must be positive")
	ErrEmptyWeekdays     = errors.New("weekly recurrence requires at least one weekday")
	ErrInvalidMonthlyDay = errors.New("monthly day must be between 1 and 31")
	ErrInvalidMonthlyWeek = errors.New("monthly week must be 1-4 or -1 for last")
	ErrEndBeforeStart    = errors.New("recurrence end date is before start date")
	ErrNoTermination     = errors.New("recurrence requires an end date or a count")
	ErrAmbiguousTermination = errors.New("recurrence cannot have both an end date and a count")
	ErrInvalidCount      = errors.New("recurrence count must be positive")
)

type Pattern string

const (
	PatternDaily   Pattern = "daily"
	PatternWeekly  Pattern = "weekly"
	PatternMonthly Pattern = "monthly"
)

// Rule is the structured specification of a repeating schedule. It is
// derived from order input and never persisted on its own.
//
// Exactly one of EndDate / Count terminates the sequence. For weekly
// rules a nil Weekdays slice means "step whole weeks from the start
// date"; a non-nil empty slice is a validation error. For monthly rules
// either MonthlyDay or the (MonthlyWeek, MonthlyWeekday) pair selects
// the day, with MonthlyDay taking precedence when both are zero-valued
// it is an error.
type Rule struct {
	Pattern        Pattern
	Interval       int
	Weekdays       []time.Weekday
	MonthlyDay     int
	MonthlyWeek    int // 1..4, or -1 for the last week of the month
	MonthlyWeekday time.Weekday
	EndDate        *time.Time
	Count          int
}

func (r Rule) Validate(start time.Time) error {
	switch r.Pattern {
	case PatternDaily, PatternWeekly, PatternMonthly:
	default:
		return ErrInvalidPattern
	}
	if r.Interval <= 0 {
		return ErrInvalidInterval
	}
	if r.Pattern == PatternWeekly && r.Weekdays != nil && len(r.Weekdays) == 0 {
		return ErrEmptyWeekdays
	}
	if r.Pattern == PatternMonthly {
		if r.MonthlyDay != 0 {
			if r.MonthlyDay < 1 || r.MonthlyDay > 31 {
				return ErrInvalidMonthlyDay
			}
		} else if r.MonthlyWeek < -1 || r.MonthlyWeek == 0 || r.MonthlyWeek > 4 {
			return ErrInvalidMonthlyWeek
		}
	}
	if r.EndDate == nil && r.Count == 0 {
		return ErrNoTermination
	}
	if r.EndDate != nil && r.Count != 0 {
		return ErrAmbiguousTermination
	}
	if r.Count < 0 {
		return ErrInvalidCount
	}
	if r.EndDate != nil && dateOf(*r.EndDate).Before(dateOf(start)) {
		return ErrEndBeforeStart
	}
	return nil
}

// Expand produces the ordered occurrence dates for the rule anchored at
// start. The first occurrence is the start date itself (daily/weekly
// single-step) or the first selected date not before it. Occurrences
// keep start's clock time and location. The result is strictly
// increasing and duplicate-free.
func (r Rule) Expand(start time.Time) ([]time.Time, error) {
	if err := r.Validate(start); err != nil {
		return nil, err
	}

	var out []time.Time
	switch r.Pattern {
	case PatternDaily:
		out = r.expandDaily(start)
	case PatternWeekly:
		out = r.expandWeekly(start)
	case PatternMonthly:
		out = r.expandMonthly(start)
	}
	return out, nil
}

func (r Rule) expandDaily(start time.Time) []time.Time {
	var out []time.Time
	for k := 0; ; k++ {
		d := start.AddDate(0, 0, k*r.Interval)
		if r.done(d, len(out)) {
			return out
		}
		out = append(out, d)
	}
}

func (r Rule) expandWeekly(start time.Time) []time.Time {
	if r.Weekdays == nil {
		var out []time.Time
		for k := 0; ; k++ {
			d := start.AddDate(0, 0, k*r.Interval*7)
			if r.done(d, len(out)) {
				return out
			}
			out = append(out, d)
		}
	}

	days := append([]time.Weekday(nil), r.Weekdays...)
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	// Enumerate the selected weekdays of every interval-th week,
	// anchored on the Sunday of the week containing start.
	weekStart := start.AddDate(0, 0, -int(start.Weekday()))
	var out []time.Time
	for w := 0; ; w += r.Interval {
		base := weekStart.AddDate(0, 0, w*7)
		for _, wd := range days {
			d := base.AddDate(0, 0, int(wd))
			if d.Before(start) {
				continue
			}
			if r.done(d, len(out)) {
				return out
			}
			out = append(out, d)
		}
	}
}

func (r Rule) expandMonthly(start time.Time) []time.Time {
	var out []time.Time
	for k := 0; ; k++ {
		monthAnchor := time.Date(start.Year(), start.Month(), 1, start.Hour(), start.Minute(), start.Second(), 0, start.Location()).
			AddDate(0, k*r.Interval, 0)

		var d time.Time
		if r.MonthlyDay != 0 {
			// Short months clamp to their last day (day 31 in
			// February becomes Feb 28/29).
			day := r.MonthlyDay
			if last := daysInMonth(monthAnchor); day > last {
				day = last
			}
			d = monthAnchor.AddDate(0, 0, day-1)
		} else {
			d = nthWeekdayOfMonth(monthAnchor, r.MonthlyWeek, r.MonthlyWeekday)
		}

		if d.Before(start) {
			continue
		}
		if r.done(d, len(out)) {
			return out
		}
		out = append(out, d)
	}
}

// done reports whether the candidate occurrence lies past the
// termination condition given how many occurrences were already kept.
func (r Rule) done(candidate time.Time, have int) bool {
	if r.Count != 0 {
		return have >= r.Count
	}
	return dateOf(candidate).After(dateOf(*r.EndDate))
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysInMonth(t time.Time) int {
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return first.AddDate(0, 1, -1).Day()
}

// nthWeekdayOfMonth resolves "the week-th weekday of anchor's month",
// where week -1 selects the last such weekday.
func nthWeekdayOfMonth(anchor time.Time, week int, weekday time.Weekday) time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, anchor.Hour(), anchor.Minute(), anchor.Second(), 0, anchor.Location())
	if week == -1 {
		last := first.AddDate(0, 1, -1)
		offset := int(last.Weekday() - weekday)
		if offset < 0 {
			offset += 7
		}
		return last.AddDate(0, 0, -offset)
	}
	offset := int(weekday - first.Weekday())
	if offset < 0 {
		offset += 7
	}
	return first.AddDate(0, 0, offset+(week-1)*7)
}
