// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package tradecal

import "time"

// YearCalendar is a read-only view of a Calendar restricted to one year.
// It holds only the boundary positions and a reference to the backing
// calendar; no dates are copied.
type YearCalendar struct {
	cal   *Calendar
	year  int
	first int
	last  int
}

// Year returns the year this view covers.
func (y YearCalendar) Year() int {
	return y.year
}

// Start returns the first trading date of the year.
func (y YearCalendar) Start() Date {
	return Date{cal: y.cal, pos: y.first, value: y.cal.dates[y.first]}
}

// End returns the last trading date of the year.
func (y YearCalendar) End() Date {
	return Date{cal: y.cal, pos: y.last, value: y.cal.dates[y.last]}
}

// Len returns the number of trading dates in the year.
func (y YearCalendar) Len() int {
	return y.last - y.first + 1
}

// Contains reports whether date is a trading date within this year.
func (y YearCalendar) Contains(date int) bool {
	return date/10000 == y.year && y.cal.Contains(date)
}

// Iter returns a fresh iterator over the year's trading dates. Each call
// restarts at Start.
func (y YearCalendar) Iter() *DateIter {
	return &DateIter{cal: y.cal, next: y.first, last: y.last, step: 1}
}

// MonthCalendar is a read-only view of a Calendar restricted to one
// (year, month).
type MonthCalendar struct {
	cal   *Calendar
	year  int
	month time.Month
	first int
	last  int
}

// Year returns the year this view covers.
func (m MonthCalendar) Year() int {
	return m.year
}

// Month returns the month this view covers.
func (m MonthCalendar) Month() time.Month {
	return m.month
}

// Start returns the first trading date of the month.
func (m MonthCalendar) Start() Date {
	return Date{cal: m.cal, pos: m.first, value: m.cal.dates[m.first]}
}

// End returns the last trading date of the month.
func (m MonthCalendar) End() Date {
	return Date{cal: m.cal, pos: m.last, value: m.cal.dates[m.last]}
}

// Len returns the number of trading dates in the month.
func (m MonthCalendar) Len() int {
	return m.last - m.first + 1
}

// Contains reports whether date is a trading date within this month.
func (m MonthCalendar) Contains(date int) bool {
	return date/10000 == m.year && time.Month(date/100%100) == m.month && m.cal.Contains(date)
}

// Iter returns a fresh iterator over the month's trading dates.
func (m MonthCalendar) Iter() *DateIter {
	return &DateIter{cal: m.cal, next: m.first, last: m.last, step: 1}
}

// DateRange is a finite, restartable lazy sequence over the trading dates
// in a contiguous position range of a calendar, with an optional stride.
// It holds only the range bounds and a reference to the backing calendar;
// every call to Iter starts a fresh traversal.
type DateRange struct {
	cal   *Calendar
	first int
	last  int
	step  int
}

// Iter returns a fresh cursor over the range, starting at its first date
// (its last, for a negative stride).
func (r DateRange) Iter() *DateIter {
	return NewDateIter(r.cal, r.first, r.last, r.step)
}

// Collect drains one fresh traversal into a slice of integer dates.
func (r DateRange) Collect() []int {
	return r.Iter().Collect()
}

// Len returns the number of dates one traversal yields.
func (r DateRange) Len() int {
	if r.cal == nil || r.first > r.last || r.step == 0 {
		return 0
	}
	step := r.step
	if step < 0 {
		step = -step
	}
	return (r.last-r.first)/step + 1
}

// DateIter is a single traversal of a position range, yielding bound
// Dates. Cursors are single-use; restart by taking a fresh iterator from
// the DateRange or view that produced this one.
type DateIter struct {
	cal  *Calendar
	next int
	last int
	step int
}

// NewDateIter returns an iterator over positions [first, last] of cal with
// the given stride. A negative step walks from last down to first; a step
// of zero yields an empty sequence.
func NewDateIter(cal *Calendar, first, last, step int) *DateIter {
	if step < 0 {
		return &DateIter{cal: cal, next: last, last: first, step: step}
	}
	return &DateIter{cal: cal, next: first, last: last, step: step}
}

// Next yields the next trading date, or false when the sequence is
// exhausted.
func (it *DateIter) Next() (Date, bool) {
	if it.cal == nil || it.step == 0 {
		return Date{}, false
	}
	if it.step > 0 && it.next > it.last || it.step < 0 && it.next < it.last {
		return Date{}, false
	}
	d := Date{cal: it.cal, pos: it.next, value: it.cal.dates[it.next]}
	it.next += it.step
	return d, true
}

// Collect drains the iterator into a slice of integer dates.
func (it *DateIter) Collect() []int {
	var out []int
	for d, ok := it.Next(); ok; d, ok = it.Next() {
		out = append(out, d.Int())
	}
	return out
}
