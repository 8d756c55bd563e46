// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package engine maintains the process-wide registry of trading calendars.
// Built-in calendars are built lazily from their data source on first
// request and memoized; user calendars are registered explicitly.
package engine

import (
	"errors"
	"fmt"
	"sync"

	"github.com/zhangyunhao116/skipmap"

	"tradingdate/calsource"
	"tradingdate/tradecal"
)

// DefaultCalendarID is used wherever a calendar id is left empty.
const DefaultCalendarID = calsource.ChineseID

var (
	// ErrUnknownCalendar reports a requested id that is neither registered
	// nor a recognized built-in.
	ErrUnknownCalendar = errors.New("unknown calendar id")
	// ErrUnsupportedCalendar reports a recognized built-in id whose data
	// source cannot currently supply it.
	ErrUnsupportedCalendar = errors.New("calendar data source unavailable")
	// ErrDuplicateCalendar reports registration under an id that already
	// exists.
	ErrDuplicateCalendar = errors.New("calendar id already registered")
	// ErrInvalidStep reports a date range requested with a step of zero.
	ErrInvalidStep = errors.New("step must not be zero")
)

// Engine is a registry mapping calendar ids to immutable calendars. Reads
// are lock-free; all registry mutation is serialized so that each built-in
// source is queried at most once and concurrent registrations of one id
// have exactly one winner. The zero value is not usable; use New.
type Engine struct {
	registry *skipmap.StringMap[*tradecal.Calendar]
	sources  map[string]calsource.Source
	failures map[string]error
	mu       sync.Mutex
}

// New returns an engine with an empty registry and the built-in sources
// installed. Tests get isolation by creating a fresh engine each.
func New() *Engine {
	e := &Engine{
		registry: skipmap.NewString[*tradecal.Calendar](),
		sources:  make(map[string]calsource.Source),
		failures: make(map[string]error),
	}
	for _, s := range []calsource.Source{calsource.Chinese()} {
		e.sources[s.ID()] = s
	}
	return e
}

// Calendar returns the calendar registered under id, building built-in
// calendars from their source on first request. An empty id selects
// DefaultCalendarID. Each source is queried at most once per process:
// a failed build is memoized and its error returned on later calls.
func (e *Engine) Calendar(id string) (*tradecal.Calendar, error) {
	if id == "" {
		id = DefaultCalendarID
	}
	if c, ok := e.registry.Load(id); ok {
		return c, nil
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	// Another caller may have built it while we waited for the lock.
	if c, ok := e.registry.Load(id); ok {
		return c, nil
	}
	if err, ok := e.failures[id]; ok {
		return nil, err
	}
	src, ok := e.sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCalendar, id)
	}
	days, err := src.TradingDays()
	if err != nil {
		err = fmt.Errorf("%w: %q: %v", ErrUnsupportedCalendar, id, err)
		e.failures[id] = err
		return nil, err
	}
	c, err := tradecal.NewCalendar(id, days)
	if err != nil {
		err = fmt.Errorf("%w: %q: %v", ErrUnsupportedCalendar, id, err)
		e.failures[id] = err
		return nil, err
	}
	e.registry.Store(id, c)
	return c, nil
}

// MakeCalendar builds a calendar from the given dates and registers it
// under id. Registration is all-or-nothing: on any error nothing is
// registered. Ids already present, including built-in ids, yield
// ErrDuplicateCalendar.
func (e *Engine) MakeCalendar(id string, dates []int) (*tradecal.Calendar, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.registry.Load(id); ok {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateCalendar, id)
	}
	// Built-in ids are reserved even before their first build, so the
	// outcome does not depend on whether the built-in was requested yet.
	if _, ok := e.sources[id]; ok {
		return nil, fmt.Errorf("%w: %q is a built-in calendar", ErrDuplicateCalendar, id)
	}
	c, err := tradecal.NewCalendar(id, dates)
	if err != nil {
		return nil, err
	}
	e.registry.Store(id, c)
	return c, nil
}

// TradingDate resolves the calendar and looks up date on it. It propagates
// ErrNotTradingDay for valid dates absent from the calendar; it never
// rounds to a neighboring trading date.
func (e *Engine) TradingDate(date int, calendarID string) (tradecal.Date, error) {
	c, err := e.Calendar(calendarID)
	if err != nil {
		return tradecal.Date{}, err
	}
	return c.DateOf(date)
}

// TradingDates returns a finite, restartable lazy sequence of the trading
// dates in [start, end]: every Iter call on the result starts over at the
// first date. The endpoints need not be trading dates themselves; the
// sequence is empty iff no trading date falls in the range.
func (e *Engine) TradingDates(start, end int, calendarID string) (tradecal.DateRange, error) {
	return e.DateRange(start, end, 1, calendarID)
}

// DateRange is TradingDates with a stride. A negative step walks from the
// last date in range down to the first; a step of zero yields
// ErrInvalidStep.
func (e *Engine) DateRange(start, end, step int, calendarID string) (tradecal.DateRange, error) {
	if step == 0 {
		return tradecal.DateRange{}, ErrInvalidStep
	}
	c, err := e.Calendar(calendarID)
	if err != nil {
		return tradecal.DateRange{}, err
	}
	return c.Range(start, end, step), nil
}
