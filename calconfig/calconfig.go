// SPDX-License-Identifier: AGPL-3.0-or-later
// Copyright (c) Lothar May

// Package calconfig reads user calendar definitions from YAML and
// registers them with an engine. It parses registration input only;
// registered calendars are never written back to disk.
package calconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"tradingdate/engine"
	"tradingdate/tradecal"
)

// File is a parsed calendar definition file.
type File struct {
	Calendars []Definition `yaml:"calendars"`
}

// Definition declares one custom calendar.
type Definition struct {
	ID    string `yaml:"id"`
	Dates []int  `yaml:"dates"`
}

// Load parses calendar definitions from r.
func Load(r io.Reader) (File, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("failed to read calendar definitions: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return File{}, fmt.Errorf("failed to parse calendar definitions: %w", err)
	}
	for i, def := range f.Calendars {
		if def.ID == "" {
			return File{}, fmt.Errorf("calendar definition %d has no id", i)
		}
		if len(def.Dates) == 0 {
			return File{}, fmt.Errorf("calendar definition %q has no dates", def.ID)
		}
	}
	return f, nil
}

// LoadFile parses calendar definitions from the file at path.
func LoadFile(path string) (File, error) {
	raw, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("failed to open calendar definitions: %w", err)
	}
	defer raw.Close()
	return Load(raw)
}

// Register registers every definition with e, in file order, and returns
// the registered calendars. It stops at the first failing definition;
// calendars registered before the failure stay registered, each
// individual registration being all-or-nothing.
func (f File) Register(e *engine.Engine) ([]*tradecal.Calendar, error) {
	cals := make([]*tradecal.Calendar, 0, len(f.Calendars))
	for _, def := range f.Calendars {
		c, err := e.MakeCalendar(def.ID, def.Dates)
		if err != nil {
			return cals, fmt.Errorf("register calendar %q: %w", def.ID, err)
		}
		cals = append(cals, c)
	}
	return cals, nil
}
