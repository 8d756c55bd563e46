// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package tradecal

import (
	"fmt"
	"sort"
	"time"
)

// Calendar is an immutable, strictly ascending sequence of valid trading
// dates bound to a calendar id. All lookups are O(log n) binary searches.
type Calendar struct {
	id    string
	dates []int
}

// NewCalendar builds a calendar from the given dates. Input is sorted and
// de-duplicated defensively; every element must be a valid YYYYMMDD date.
func NewCalendar(id string, dates []int) (*Calendar, error) {
	if len(dates) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyCalendar, id)
	}
	sorted := make([]int, len(dates))
	copy(sorted, dates)
	sort.Ints(sorted)
	deduped := sorted[:1]
	for _, d := range sorted[1:] {
		if d != deduped[len(deduped)-1] {
			deduped = append(deduped, d)
		}
	}
	for _, d := range deduped {
		if _, _, _, err := SplitDate(d); err != nil {
			return nil, fmt.Errorf("calendar %q: %w", id, err)
		}
	}
	return &Calendar{id: id, dates: deduped}, nil
}

// ID returns the calendar identifier.
func (c *Calendar) ID() string {
	return c.id
}

// Len returns the number of trading dates.
func (c *Calendar) Len() int {
	return len(c.dates)
}

// Bounds returns the first and last trading date.
func (c *Calendar) Bounds() (first, last int) {
	return c.dates[0], c.dates[len(c.dates)-1]
}

// Dates returns a copy of the full date sequence.
func (c *Calendar) Dates() []int {
	dates := make([]int, len(c.dates))
	copy(dates, c.dates)
	return dates
}

// Contains reports whether date is a trading date of this calendar.
func (c *Calendar) Contains(date int) bool {
	i := sort.SearchInts(c.dates, date)
	return i < len(c.dates) && c.dates[i] == date
}

// PositionOf returns the index of date within the calendar. It returns
// ErrNotTradingDay if date is absent, even if it is a valid calendar date.
func (c *Calendar) PositionOf(date int) (int, error) {
	i := sort.SearchInts(c.dates, date)
	if i == len(c.dates) || c.dates[i] != date {
		return 0, fmt.Errorf("%w: %d on calendar %q", ErrNotTradingDay, date, c.id)
	}
	return i, nil
}

// DateAt returns the trading date at the given position.
func (c *Calendar) DateAt(position int) (int, error) {
	if position < 0 || position >= len(c.dates) {
		return 0, fmt.Errorf("%w: position %d of %d", ErrOutOfRange, position, len(c.dates))
	}
	return c.dates[position], nil
}

// Slice returns all trading dates in [start, end] inclusive. The result is
// empty if no trading date falls in the range; start and end themselves
// need not be trading dates.
func (c *Calendar) Slice(start, end int) []int {
	lo, hi := c.span(start, end)
	out := make([]int, hi-lo)
	copy(out, c.dates[lo:hi])
	return out
}

// span returns the half-open position range [lo, hi) covering [start, end].
func (c *Calendar) span(start, end int) (lo, hi int) {
	lo = sort.SearchInts(c.dates, start)
	hi = sort.SearchInts(c.dates, end+1)
	return lo, hi
}

// Range returns a restartable view of the trading dates in [start, end]
// inclusive with the given stride. A negative step walks from the last
// date in range down to the first. The endpoints need not be trading
// dates; the range is empty if none fall in it.
func (c *Calendar) Range(start, end, step int) DateRange {
	lo, hi := c.span(start, end)
	return DateRange{cal: c, first: lo, last: hi - 1, step: step}
}

// DateOf binds date to its position on this calendar. It returns
// ErrNotTradingDay if date is not a member; it never rounds to a
// neighboring trading date.
func (c *Calendar) DateOf(date int) (Date, error) {
	pos, err := c.PositionOf(date)
	if err != nil {
		return Date{}, err
	}
	return Date{cal: c, pos: pos, value: date}, nil
}

// NearestOnOrAfter returns the nearest trading date at or after date, or
// ErrOutOfRange if date is beyond the last trading date.
func (c *Calendar) NearestOnOrAfter(date int) (Date, error) {
	i := sort.SearchInts(c.dates, date)
	if i == len(c.dates) {
		return Date{}, fmt.Errorf("%w: no trading day on or after %d on calendar %q", ErrOutOfRange, date, c.id)
	}
	return Date{cal: c, pos: i, value: c.dates[i]}, nil
}

// NearestOnOrBefore returns the nearest trading date at or before date, or
// ErrOutOfRange if date is before the first trading date.
func (c *Calendar) NearestOnOrBefore(date int) (Date, error) {
	i := sort.SearchInts(c.dates, date+1)
	if i == 0 {
		return Date{}, fmt.Errorf("%w: no trading day on or before %d on calendar %q", ErrOutOfRange, date, c.id)
	}
	return Date{cal: c, pos: i - 1, value: c.dates[i-1]}, nil
}

// Year returns the sub-view of this calendar covering the given year, or
// ErrOutOfRange if no trading date falls in it.
func (c *Calendar) Year(year int) (YearCalendar, error) {
	lo, hi := c.span(year*10000+101, year*10000+1231)
	if lo == hi {
		return YearCalendar{}, fmt.Errorf("%w: no trading days in year %d on calendar %q", ErrOutOfRange, year, c.id)
	}
	return YearCalendar{cal: c, year: year, first: lo, last: hi - 1}, nil
}

// Month returns the sub-view of this calendar covering the given month, or
// ErrOutOfRange if no trading date falls in it.
func (c *Calendar) Month(year int, month time.Month) (MonthCalendar, error) {
	base := year*10000 + int(month)*100
	lo, hi := c.span(base+1, base+31)
	if lo == hi {
		return MonthCalendar{}, fmt.Errorf("%w: no trading days in %04d-%02d on calendar %q", ErrOutOfRange, year, int(month), c.id)
	}
	return MonthCalendar{cal: c, year: year, month: month, first: lo, last: hi - 1}, nil
}
