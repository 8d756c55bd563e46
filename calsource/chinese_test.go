// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calsource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chineseDays(t *testing.T) map[int]bool {
	t.Helper()
	days, err := Chinese().TradingDays()
	require.NoError(t, err)
	set := make(map[int]bool, len(days))
	for _, d := range days {
		set[d] = true
	}
	return set
}

func TestChineseCoverage(t *testing.T) {
	days, err := Chinese().TradingDays()
	require.NoError(t, err)
	require.NotEmpty(t, days)
	assert.Equal(t, 20040102, days[0])
	assert.Equal(t, 20251231, days[len(days)-1])
	for i := 1; i < len(days); i++ {
		require.Less(t, days[i-1], days[i])
	}
}

func TestChineseWeekdays(t *testing.T) {
	set := chineseDays(t)
	// ordinary Thursday
	assert.True(t, set[20250116])
	// ordinary weekend
	assert.False(t, set[20250111])
	assert.False(t, set[20250112])
}

func TestChineseHolidays(t *testing.T) {
	set := chineseDays(t)
	// New Year's Day
	assert.False(t, set[20250101])
	assert.False(t, set[20040101])
	// Spring Festival 2025
	assert.False(t, set[20250128])
	assert.False(t, set[20250204])
	// Labour Day
	assert.False(t, set[20250501])
	// National Day
	assert.False(t, set[20241001])
	// trading resumes after the Spring Festival break
	assert.True(t, set[20250205])
}

func TestChineseMakeupWeekends(t *testing.T) {
	set := chineseDays(t)
	// Sunday 2025-01-26 and Saturday 2025-02-08 are statutory makeup
	// workdays around the Spring Festival break.
	assert.True(t, set[20250126])
	assert.True(t, set[20250208])
	assert.True(t, set[20240204])
}

func TestChineseID(t *testing.T) {
	assert.Equal(t, "chinese", Chinese().ID())
	assert.Equal(t, ChineseID, Chinese().ID())
}
