// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package tradecal

import (
	"fmt"
	"strconv"
	"time"
)

// Date is a single trading date bound to its position within a Calendar.
// The zero value is not usable; Dates are obtained from a Calendar or by
// shifting an existing Date. Shifting counts trading days, never calendar
// days.
type Date struct {
	cal   *Calendar
	pos   int
	value int
}

// Calendar returns the owning calendar.
func (d Date) Calendar() *Calendar {
	return d.cal
}

// Position returns the index of the date within its calendar.
func (d Date) Position() int {
	return d.pos
}

// Int returns the date as an 8-digit YYYYMMDD integer.
func (d Date) Int() int {
	return d.value
}

func (d Date) String() string {
	return strconv.Itoa(d.value)
}

// Shift returns the trading date n trading days away on the same calendar.
// n may be negative or zero. It returns ErrOutOfRange if the shifted
// position falls outside the calendar.
func (d Date) Shift(n int) (Date, error) {
	pos := d.pos + n
	value, err := d.cal.DateAt(pos)
	if err != nil {
		return Date{}, fmt.Errorf("shift %d by %d: %w", d.value, n, ErrOutOfRange)
	}
	return Date{cal: d.cal, pos: pos, value: value}, nil
}

// Compare orders d against other: -1 if d is earlier, 0 if equal, +1 if
// later. It returns ErrCrossCalendar if the two dates belong to calendars
// with different ids.
func (d Date) Compare(other Date) (int, error) {
	if d.cal.id != other.cal.id {
		return 0, fmt.Errorf("%w: %q and %q", ErrCrossCalendar, d.cal.id, other.cal.id)
	}
	switch {
	case d.value < other.value:
		return -1, nil
	case d.value > other.value:
		return 1, nil
	}
	return 0, nil
}

// Year returns the sub-view of the owning calendar covering this date's
// year. The view always contains the date itself.
func (d Date) Year() YearCalendar {
	y, _ := d.cal.Year(d.YearNumber())
	return y
}

// Month returns the sub-view covering this date's (year, month).
func (d Date) Month() MonthCalendar {
	m, _ := d.cal.Month(d.YearNumber(), d.MonthNumber())
	return m
}

// ISOWeek returns the ISO 8601 year and week containing this date. It
// derives purely from the date value, independent of the calendar's
// trading-day structure.
func (d Date) ISOWeek() (year, week int) {
	y, m, day, _ := SplitDate(d.value)
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC).ISOWeek()
}

// YearNumber returns the calendar year of the date.
func (d Date) YearNumber() int {
	return d.value / 10000
}

// MonthNumber returns the calendar month of the date.
func (d Date) MonthNumber() time.Month {
	return time.Month(d.value / 100 % 100)
}

// DayNumber returns the day of month of the date.
func (d Date) DayNumber() int {
	return d.value % 100
}
