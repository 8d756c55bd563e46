// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

package calsource

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// chineseClosures lists the weekday closures of the Chinese statutory
// workday calendar per year, following the State Council holiday
// schedules: New Year, Spring Festival, Labour Day and National Day for
// all years, plus Qingming, Dragon Boat and Mid-Autumn from 2008 on.
// Lunar holidays move from year to year, so every closure is pinned to
// its year.
var chineseClosures = map[int][]monthDay{
	2004: {
		{time.January, 1},
		{time.January, 22}, {time.January, 23}, {time.January, 26}, {time.January, 27}, {time.January, 28},
		{time.May, 3}, {time.May, 4}, {time.May, 5}, {time.May, 6}, {time.May, 7},
		{time.October, 1}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2005: {
		{time.January, 3},
		{time.February, 9}, {time.February, 10}, {time.February, 11}, {time.February, 14}, {time.February, 15},
		{time.May, 2}, {time.May, 3}, {time.May, 4}, {time.May, 5}, {time.May, 6},
		{time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2006: {
		{time.January, 2}, {time.January, 3},
		{time.January, 30}, {time.January, 31}, {time.February, 1}, {time.February, 2}, {time.February, 3},
		{time.May, 1}, {time.May, 2}, {time.May, 3}, {time.May, 4}, {time.May, 5},
		{time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6},
	},
	2007: {
		{time.January, 1}, {time.January, 2}, {time.January, 3},
		{time.February, 19}, {time.February, 20}, {time.February, 21}, {time.February, 22}, {time.February, 23},
		{time.May, 1}, {time.May, 2}, {time.May, 3}, {time.May, 4}, {time.May, 7},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5},
		{time.December, 31},
	},
	2008: {
		{time.January, 1},
		{time.February, 6}, {time.February, 7}, {time.February, 8}, {time.February, 11}, {time.February, 12},
		{time.April, 4},
		{time.May, 1}, {time.May, 2},
		{time.June, 9},
		{time.September, 15},
		{time.September, 29}, {time.September, 30}, {time.October, 1}, {time.October, 2}, {time.October, 3},
	},
	2009: {
		{time.January, 1}, {time.January, 2},
		{time.January, 26}, {time.January, 27}, {time.January, 28}, {time.January, 29}, {time.January, 30},
		{time.April, 6},
		{time.May, 1},
		{time.May, 28}, {time.May, 29},
		{time.October, 1}, {time.October, 2}, {time.October, 5}, {time.October, 6}, {time.October, 7}, {time.October, 8},
	},
	2010: {
		{time.January, 1},
		{time.February, 15}, {time.February, 16}, {time.February, 17}, {time.February, 18}, {time.February, 19},
		{time.April, 5},
		{time.May, 3},
		{time.June, 14}, {time.June, 15}, {time.June, 16},
		{time.September, 22}, {time.September, 23}, {time.September, 24},
		{time.October, 1}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2011: {
		{time.January, 3},
		{time.February, 2}, {time.February, 3}, {time.February, 4}, {time.February, 7}, {time.February, 8},
		{time.April, 4}, {time.April, 5},
		{time.May, 2},
		{time.June, 6},
		{time.September, 12},
		{time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2012: {
		{time.January, 2}, {time.January, 3},
		{time.January, 23}, {time.January, 24}, {time.January, 25}, {time.January, 26}, {time.January, 27},
		{time.April, 2}, {time.April, 3}, {time.April, 4},
		{time.April, 30}, {time.May, 1},
		{time.June, 22},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5},
	},
	2013: {
		{time.January, 1}, {time.January, 2}, {time.January, 3},
		{time.February, 11}, {time.February, 12}, {time.February, 13}, {time.February, 14}, {time.February, 15},
		{time.April, 4}, {time.April, 5},
		{time.April, 29}, {time.April, 30}, {time.May, 1},
		{time.June, 10}, {time.June, 11}, {time.June, 12},
		{time.September, 19}, {time.September, 20},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 7},
	},
	2014: {
		{time.January, 1},
		{time.January, 31}, {time.February, 3}, {time.February, 4}, {time.February, 5}, {time.February, 6},
		{time.April, 7},
		{time.May, 1}, {time.May, 2},
		{time.June, 2},
		{time.September, 8},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 6}, {time.October, 7},
	},
	2015: {
		{time.January, 1}, {time.January, 2},
		{time.February, 18}, {time.February, 19}, {time.February, 20}, {time.February, 23}, {time.February, 24},
		{time.April, 6},
		{time.May, 1},
		{time.June, 22},
		{time.September, 3}, {time.September, 4},
		{time.October, 1}, {time.October, 2}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2016: {
		{time.January, 1},
		{time.February, 8}, {time.February, 9}, {time.February, 10}, {time.February, 11}, {time.February, 12},
		{time.April, 4},
		{time.May, 2},
		{time.June, 9}, {time.June, 10},
		{time.September, 15}, {time.September, 16},
		{time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2017: {
		{time.January, 2},
		{time.January, 27}, {time.January, 30}, {time.January, 31}, {time.February, 1}, {time.February, 2},
		{time.April, 3}, {time.April, 4},
		{time.May, 1},
		{time.May, 29}, {time.May, 30},
		{time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6},
	},
	2018: {
		{time.January, 1},
		{time.February, 15}, {time.February, 16}, {time.February, 19}, {time.February, 20}, {time.February, 21},
		{time.April, 5}, {time.April, 6},
		{time.April, 30}, {time.May, 1},
		{time.June, 18},
		{time.September, 24},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5},
		{time.December, 31},
	},
	2019: {
		{time.January, 1},
		{time.February, 4}, {time.February, 5}, {time.February, 6}, {time.February, 7}, {time.February, 8},
		{time.April, 5},
		{time.May, 1}, {time.May, 2}, {time.May, 3},
		{time.June, 7},
		{time.September, 13},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 7},
	},
	2020: {
		{time.January, 1},
		{time.January, 24}, {time.January, 27}, {time.January, 28}, {time.January, 29}, {time.January, 30}, {time.January, 31},
		{time.April, 6},
		{time.May, 1}, {time.May, 4}, {time.May, 5},
		{time.June, 25}, {time.June, 26},
		{time.October, 1}, {time.October, 2}, {time.October, 5}, {time.October, 6}, {time.October, 7}, {time.October, 8},
	},
	2021: {
		{time.January, 1},
		{time.February, 11}, {time.February, 12}, {time.February, 15}, {time.February, 16}, {time.February, 17},
		{time.April, 5},
		{time.May, 3}, {time.May, 4}, {time.May, 5},
		{time.June, 14},
		{time.September, 20}, {time.September, 21},
		{time.October, 1}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2022: {
		{time.January, 3},
		{time.January, 31}, {time.February, 1}, {time.February, 2}, {time.February, 3}, {time.February, 4},
		{time.April, 4}, {time.April, 5},
		{time.May, 2}, {time.May, 3}, {time.May, 4},
		{time.June, 3},
		{time.September, 12},
		{time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6}, {time.October, 7},
	},
	2023: {
		{time.January, 2},
		{time.January, 23}, {time.January, 24}, {time.January, 25}, {time.January, 26}, {time.January, 27},
		{time.April, 5},
		{time.May, 1}, {time.May, 2}, {time.May, 3},
		{time.June, 22}, {time.June, 23},
		{time.September, 29},
		{time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 5}, {time.October, 6},
	},
	2024: {
		{time.January, 1},
		{time.February, 12}, {time.February, 13}, {time.February, 14}, {time.February, 15}, {time.February, 16},
		{time.April, 4}, {time.April, 5},
		{time.May, 1}, {time.May, 2}, {time.May, 3},
		{time.June, 10},
		{time.September, 16}, {time.September, 17},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 4}, {time.October, 7},
	},
	2025: {
		{time.January, 1},
		{time.January, 28}, {time.January, 29}, {time.January, 30}, {time.January, 31}, {time.February, 3}, {time.February, 4},
		{time.April, 4},
		{time.May, 1}, {time.May, 2}, {time.May, 5},
		{time.June, 2},
		{time.October, 1}, {time.October, 2}, {time.October, 3}, {time.October, 6}, {time.October, 7}, {time.October, 8},
	},
}

// chineseMakeupWorkdays lists the weekend days worked in exchange for the
// long holiday breaks. These count as valid days of the workday calendar.
var chineseMakeupWorkdays = map[int][]monthDay{
	2004: {
		{time.January, 17}, {time.January, 18},
		{time.May, 8}, {time.May, 9},
		{time.October, 9}, {time.October, 10},
	},
	2005: {
		{time.February, 5}, {time.February, 6},
		{time.April, 30}, {time.May, 8},
		{time.October, 8}, {time.October, 9},
	},
	2006: {
		{time.January, 28}, {time.February, 5},
		{time.April, 29}, {time.April, 30},
		{time.September, 30}, {time.October, 8},
	},
	2007: {
		{time.February, 17}, {time.February, 25},
		{time.April, 28}, {time.April, 29},
		{time.September, 29}, {time.September, 30},
		{time.December, 29},
	},
	2008: {
		{time.February, 2}, {time.February, 3},
		{time.May, 4},
		{time.September, 27}, {time.September, 28},
	},
	2009: {
		{time.January, 4},
		{time.January, 24}, {time.February, 1},
		{time.May, 31},
		{time.September, 27}, {time.October, 10},
	},
	2010: {
		{time.February, 20}, {time.February, 21},
		{time.June, 12}, {time.June, 13},
		{time.September, 19}, {time.September, 25},
		{time.September, 26}, {time.October, 9},
	},
	2011: {
		{time.January, 30}, {time.February, 12},
		{time.April, 2},
		{time.October, 8}, {time.October, 9},
		{time.December, 31},
	},
	2012: {
		{time.January, 21}, {time.January, 29},
		{time.March, 31}, {time.April, 1},
		{time.April, 28},
		{time.September, 29},
	},
	2013: {
		{time.January, 5}, {time.January, 6},
		{time.February, 16}, {time.February, 17},
		{time.April, 7},
		{time.April, 27}, {time.April, 28},
		{time.June, 8}, {time.June, 9},
		{time.September, 22},
		{time.September, 29}, {time.October, 12},
	},
	2014: {
		{time.January, 26}, {time.February, 8},
		{time.May, 4},
		{time.September, 28}, {time.October, 11},
	},
	2015: {
		{time.January, 4},
		{time.February, 15}, {time.February, 28},
		{time.September, 6},
		{time.October, 10},
	},
	2016: {
		{time.February, 6}, {time.February, 14},
		{time.June, 12},
		{time.September, 18},
		{time.October, 8}, {time.October, 9},
	},
	2017: {
		{time.January, 22}, {time.February, 4},
		{time.April, 1},
		{time.May, 27},
		{time.September, 30},
	},
	2018: {
		{time.February, 11}, {time.February, 24},
		{time.April, 8},
		{time.April, 28},
		{time.September, 29}, {time.September, 30},
		{time.December, 29},
	},
	2019: {
		{time.February, 2}, {time.February, 3},
		{time.April, 28}, {time.May, 5},
		{time.September, 29}, {time.October, 12},
	},
	2020: {
		{time.January, 19},
		{time.April, 26}, {time.May, 9},
		{time.June, 28},
		{time.September, 27}, {time.October, 10},
	},
	2021: {
		{time.February, 7}, {time.February, 20},
		{time.April, 25}, {time.May, 8},
		{time.September, 18},
		{time.September, 26}, {time.October, 9},
	},
	2022: {
		{time.January, 29}, {time.January, 30},
		{time.April, 2},
		{time.April, 24}, {time.May, 7},
		{time.October, 8}, {time.October, 9},
	},
	2023: {
		{time.January, 28}, {time.January, 29},
		{time.April, 23}, {time.May, 6},
		{time.June, 25},
		{time.October, 7}, {time.October, 8},
	},
	2024: {
		{time.February, 4}, {time.February, 18},
		{time.April, 7},
		{time.April, 28}, {time.May, 11},
		{time.September, 14},
		{time.September, 29}, {time.October, 12},
	},
	2025: {
		{time.January, 26}, {time.February, 8},
		{time.April, 27},
		{time.September, 28}, {time.October, 11},
	},
}
