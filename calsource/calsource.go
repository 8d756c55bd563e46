// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package calsource supplies the definitive trading-day data behind
// built-in calendar ids. Sources are read-only oracles; the engine queries
// each one at most once per process.
package calsource

// Source yields the full ordered set of valid trading days for one
// built-in calendar id, bounded by the source's own coverage window.
type Source interface {
	ID() string
	TradingDays() ([]int, error)
}
