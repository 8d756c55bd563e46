// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package tradingdate answers trading-day questions over named calendars:
// what date is n trading days from x, which trading days fall in a range,
// and how a year or month decomposes into trading days. Dates cross the
// API as 8-digit YYYYMMDD integers.
//
// The package-level functions delegate to DefaultEngine, which carries the
// built-in "chinese" calendar. Code that needs isolation (tests in
// particular) should use its own engine.Engine instance instead.
//
//	d, err := tradingdate.GetTradingDate(20250116, "")
//	prev, err := d.Shift(-20) // 20241218
package tradingdate

import (
	"tradingdate/engine"
	"tradingdate/tradecal"
)

// DefaultEngine backs the package-level functions. It lives for the whole
// process.
var DefaultEngine = engine.New()

// GetCalendar returns the calendar registered under id, building built-in
// calendars on first request. An empty id selects the default calendar.
func GetCalendar(id string) (*tradecal.Calendar, error) {
	return DefaultEngine.Calendar(id)
}

// MakeCalendar builds a calendar from dates and registers it under id.
func MakeCalendar(id string, dates []int) (*tradecal.Calendar, error) {
	return DefaultEngine.MakeCalendar(id, dates)
}

// GetTradingDate looks up date on the named calendar.
func GetTradingDate(date int, calendarID string) (tradecal.Date, error) {
	return DefaultEngine.TradingDate(date, calendarID)
}

// GetTradingDates returns the trading dates in [start, end] as a finite,
// restartable lazy sequence.
func GetTradingDates(start, end int, calendarID string) (tradecal.DateRange, error) {
	return DefaultEngine.TradingDates(start, end, calendarID)
}

// DateRange is GetTradingDates with a stride; step zero is rejected.
func DateRange(start, end, step int, calendarID string) (tradecal.DateRange, error) {
	return DefaultEngine.DateRange(start, end, step, calendarID)
}
