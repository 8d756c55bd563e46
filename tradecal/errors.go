// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package tradecal

import "errors"

var (
	// ErrInvalidDate reports a value that is not a real YYYYMMDD calendar date.
	ErrInvalidDate = errors.New("invalid date")
	// ErrEmptyCalendar reports a calendar built from no dates.
	ErrEmptyCalendar = errors.New("calendar has no dates")
	// ErrNotTradingDay reports a valid date that is not a member of the calendar.
	ErrNotTradingDay = errors.New("not a trading day")
	// ErrOutOfRange reports a position or offset outside the calendar's bounds.
	ErrOutOfRange = errors.New("out of calendar range")
	// ErrCrossCalendar reports an operation mixing dates from different calendars.
	ErrCrossCalendar = errors.New("dates belong to different calendars")
)
