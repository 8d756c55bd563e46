// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package tradecal implements immutable trading calendars over 8-digit
// integer dates (YYYYMMDD) and position-based trading-day arithmetic.
package tradecal

import (
	"fmt"
	"time"
)

// SplitDate decomposes an 8-digit integer date into its components.
// It returns ErrInvalidDate unless date denotes a real calendar date,
// including leap-year rules.
func SplitDate(date int) (year int, month time.Month, day int, err error) {
	year = date / 10000
	month = time.Month(date / 100 % 100)
	day = date % 100
	if year < 1 || year > 9999 || month < time.January || month > time.December || day < 1 || day > 31 {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrInvalidDate, date)
	}
	// time.Date normalizes overflowing components (e.g. Feb 30 -> Mar 1),
	// so a round-trip mismatch means the day does not exist in that month.
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if ty, tm, td := t.Date(); ty != year || tm != month || td != day {
		return 0, 0, 0, fmt.Errorf("%w: %d", ErrInvalidDate, date)
	}
	return year, month, day, nil
}

// JoinDate composes an 8-digit integer date from its components.
func JoinDate(year int, month time.Month, day int) (int, error) {
	date := year*10000 + int(month)*100 + day
	if _, _, _, err := SplitDate(date); err != nil {
		return 0, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	return date, nil
}

// ISOWeekOf returns the ISO 8601 week containing the given date.
func ISOWeekOf(date int) (year, week int, err error) {
	y, m, d, err := SplitDate(date)
	if err != nil {
		return 0, 0, err
	}
	year, week = time.Date(y, m, d, 0, 0, 0, 0, time.UTC).ISOWeek()
	return year, week, nil
}
