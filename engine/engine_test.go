// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package engine

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradingdate/tradecal"
)

func TestCalendarUnknownID(t *testing.T) {
	e := New()
	_, err := e.Calendar("no-such-market")
	assert.ErrorIs(t, err, ErrUnknownCalendar)
}

func TestCalendarBuiltinMemoized(t *testing.T) {
	e := New()
	first, err := e.Calendar("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCalendarID, first.ID())

	again, err := e.Calendar("chinese")
	require.NoError(t, err)
	assert.Same(t, first, again)

	lo, hi := first.Bounds()
	assert.Equal(t, 20040102, lo)
	assert.Equal(t, 20251231, hi)
}

func TestMakeCalendar(t *testing.T) {
	e := New()
	c, err := e.MakeCalendar("user-defined", []int{20250201, 20250101, 20250115})
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]int{20250101, 20250115, 20250201}, c.Dates()))

	got, err := e.Calendar("user-defined")
	require.NoError(t, err)
	assert.Same(t, c, got)
}

func TestMakeCalendarDuplicate(t *testing.T) {
	e := New()
	first, err := e.MakeCalendar("dup", []int{20250101})
	require.NoError(t, err)

	_, err = e.MakeCalendar("dup", []int{20250102})
	assert.ErrorIs(t, err, ErrDuplicateCalendar)

	// The first registration is untouched.
	got, err := e.Calendar("dup")
	require.NoError(t, err)
	assert.Same(t, first, got)
	assert.Empty(t, cmp.Diff([]int{20250101}, got.Dates()))
}

func TestMakeCalendarBuiltinIDReserved(t *testing.T) {
	e := New()
	_, err := e.MakeCalendar("chinese", []int{20250101})
	assert.ErrorIs(t, err, ErrDuplicateCalendar)
}

func TestMakeCalendarAllOrNothing(t *testing.T) {
	e := New()
	_, err := e.MakeCalendar("broken", []int{20250101, 20250230})
	require.ErrorIs(t, err, tradecal.ErrInvalidDate)

	_, err = e.Calendar("broken")
	assert.ErrorIs(t, err, ErrUnknownCalendar)
}

func TestTradingDatesUserDefinedScenario(t *testing.T) {
	e := New()
	_, err := e.MakeCalendar("user-defined", []int{20250101, 20250115, 20250201})
	require.NoError(t, err)

	it, err := e.TradingDates(20250101, 20250131, "user-defined")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]int{20250101, 20250115}, it.Collect()))

	// Non-trading endpoints are fine; only the bounds matter.
	it, err = e.TradingDates(20241225, 20250116, "user-defined")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]int{20250101, 20250115}, it.Collect()))

	it, err = e.TradingDates(20250116, 20250131, "user-defined")
	require.NoError(t, err)
	assert.Empty(t, it.Collect())
}

func TestTradingDatesRestartable(t *testing.T) {
	e := New()
	_, err := e.MakeCalendar("user-defined", []int{20250101, 20250115, 20250201})
	require.NoError(t, err)

	r, err := e.TradingDates(20250101, 20250131, "user-defined")
	require.NoError(t, err)

	// A fresh traversal starts at the first date every time.
	first := r.Collect()
	second := r.Collect()
	assert.Empty(t, cmp.Diff([]int{20250101, 20250115}, first))
	assert.Empty(t, cmp.Diff(first, second))

	it := r.Iter()
	d, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 20250101, d.Int())
	d, ok = r.Iter().Next()
	require.True(t, ok)
	assert.Equal(t, 20250101, d.Int())
}

func TestDateRangeStep(t *testing.T) {
	e := New()
	_, err := e.MakeCalendar("stepped", []int{20250101, 20250102, 20250103, 20250106, 20250107})
	require.NoError(t, err)

	it, err := e.DateRange(20250101, 20250107, 2, "stepped")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]int{20250101, 20250103, 20250107}, it.Collect()))

	it, err = e.DateRange(20250101, 20250107, -1, "stepped")
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([]int{20250107, 20250106, 20250103, 20250102, 20250101}, it.Collect()))

	_, err = e.DateRange(20250101, 20250107, 0, "stepped")
	assert.ErrorIs(t, err, ErrInvalidStep)
}

func TestTradingDateChineseScenario(t *testing.T) {
	e := New()
	d, err := e.TradingDate(20250116, "chinese")
	require.NoError(t, err)
	assert.Equal(t, 20250116, d.Int())

	prev, err := d.Shift(-20)
	require.NoError(t, err)
	assert.Equal(t, 20241218, prev.Int())

	next, err := d.Shift(100)
	require.NoError(t, err)
	assert.Equal(t, 20250617, next.Int())
}

func TestTradingDateNeverRounds(t *testing.T) {
	e := New()
	// Saturday inside coverage
	_, err := e.TradingDate(20250118, "")
	assert.ErrorIs(t, err, tradecal.ErrNotTradingDay)
	// New Year's Day
	_, err = e.TradingDate(20250101, "")
	assert.ErrorIs(t, err, tradecal.ErrNotTradingDay)
	// weekday outside the source's coverage window
	_, err = e.TradingDate(20030115, "")
	assert.ErrorIs(t, err, tradecal.ErrNotTradingDay)
}

type failingSource struct {
	calls *int
}

func (s failingSource) ID() string {
	return "flaky"
}

func (s failingSource) TradingDays() ([]int, error) {
	*s.calls++
	return nil, errors.New("feed offline")
}

func TestCalendarSourceFailureMemoized(t *testing.T) {
	e := New()
	var calls int
	e.sources["flaky"] = failingSource{calls: &calls}

	_, err := e.Calendar("flaky")
	assert.ErrorIs(t, err, ErrUnsupportedCalendar)
	_, err = e.Calendar("flaky")
	assert.ErrorIs(t, err, ErrUnsupportedCalendar)
	// The source is queried once; the failure is served from memory after.
	assert.Equal(t, 1, calls)
}

func TestCalendarConcurrentBuild(t *testing.T) {
	e := New()
	const n = 16
	cals := make([]*tradecal.Calendar, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := e.Calendar("chinese")
			assert.NoError(t, err)
			cals[i] = c
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		assert.Same(t, cals[0], cals[i])
	}
}

func TestMakeCalendarConcurrentOneWinner(t *testing.T) {
	e := New()
	const n = 16
	errs := make([]error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = e.MakeCalendar("race", []int{20250101, 20250102})
		}(i)
	}
	wg.Wait()
	var wins, dups int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			assert.ErrorIs(t, err, ErrDuplicateCalendar)
			dups++
		}
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, n-1, dups)
}
