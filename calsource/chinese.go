// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calsource

import (
	"fmt"
	"time"

	"github.com/rickar/cal/v2"
)

// ChineseID names the built-in Chinese statutory workday calendar.
const ChineseID = "chinese"

// Coverage window of the Chinese source. The engine does not extrapolate
// beyond it.
const (
	chineseCoverageStart = 2004
	chineseCoverageEnd   = 2025
)

type chineseSource struct{}

// Chinese returns the built-in Chinese calendar source. A day is valid
// when it is a weekday that is not a statutory holiday closure, or a
// statutory weekend makeup workday. Coverage spans 20040102 through
// 20251231.
func Chinese() Source {
	return chineseSource{}
}

func (chineseSource) ID() string {
	return ChineseID
}

func (chineseSource) TradingDays() ([]int, error) {
	bc := cal.NewBusinessCalendar()
	bc.Cacheable = true
	for year, days := range chineseClosures {
		for _, md := range days {
			bc.AddHoliday(&cal.Holiday{
				Name:      fmt.Sprintf("statutory holiday %d", year),
				Type:      cal.ObservancePublic,
				Month:     md.month,
				Day:       md.day,
				StartYear: year,
				EndYear:   year,
				Func:      cal.CalcDayOfMonth,
			})
		}
	}

	makeup := make(map[int]bool)
	for year, days := range chineseMakeupWorkdays {
		for _, md := range days {
			makeup[year*10000+int(md.month)*100+md.day] = true
		}
	}

	start := time.Date(chineseCoverageStart, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(chineseCoverageEnd, time.December, 31, 0, 0, 0, 0, time.UTC)
	var days []int
	for t := start; !t.After(end); t = t.AddDate(0, 0, 1) {
		date := t.Year()*10000 + int(t.Month())*100 + t.Day()
		if bc.IsWorkday(t) || makeup[date] {
			days = append(days, date)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("chinese source produced no trading days")
	}
	return days, nil
}
