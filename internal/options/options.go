package options

import (
	"errors"
	"fmt"
	"strings"
)

// Options is the full set of answers needed to generate a project.
type Options struct {
	Name              Field[string]
	BaseURL           Field[string]
	OneOff            Field[bool]
	ScheduledReleases Field[bool]
	UTCOffset         Field[int]
	Month             Field[int]
	SpecificDate      Field[bool]
	StartDate         Field[int]
	StartYear         Field[int]
	OnWeekends        Field[bool]
	TotalPuzzles      Field[int]
	PartsPerPuzzle    Field[int]
	SeparateInputs    Field[bool]
	PrivateInputs     Field[bool]
}

// Scope identifies which parameter, if any, distinguishes one set of puzzles
// from another in the generated input reader.
type Scope int

const (
	// ScopeOneOff is a single event; puzzles are identified by number alone.
	ScopeOneOff Scope = iota
	// ScopeEvent is a recurring but unscheduled event, keyed by event name.
	ScopeEvent
	// ScopeYear is a scheduled event, keyed by release year.
	ScopeYear
)

// String returns the scope's name.
func (s Scope) String() string {
	switch s {
	case ScopeEvent:
		return "event"
	case ScopeYear:
		return "year"
	default:
		return "one-off"
	}
}

// FormattedName returns the project name with all whitespace removed. It
// names the output directory, archive, solution file and namespaces.
func (o *Options) FormattedName() string {
	return FormatName(o.Name.Value())
}

// FormatName removes all whitespace from name.
func FormatName(name string) string {
	return strings.Join(strings.Fields(name), "")
}

// PuzzleNumberWidth returns the number of digits needed to zero-pad puzzle
// numbers: floor(log10(TotalPuzzles)) + 1.
func (o *Options) PuzzleNumberWidth() int {
	return digits(o.TotalPuzzles.Value())
}

func digits(n int) int {
	width := 1
	for n >= 10 {
		n /= 10
		width++
	}
	return width
}

// Scope returns the identifying parameter the generated reader takes.
func (o *Options) Scope() Scope {
	if o.OneOff.Value() {
		return ScopeOneOff
	}
	if o.ScheduledReleases.Value() {
		return ScopeYear
	}
	return ScopeEvent
}

// NeedsSchedule reports whether the scheduled-releases question applies.
func (o *Options) NeedsSchedule() bool {
	oneOff, ok := o.OneOff.Get()
	return ok && !oneOff
}

// NeedsUTCOffset reports whether the release offset question applies.
func (o *Options) NeedsUTCOffset() bool {
	return o.NeedsSchedule()
}

// NeedsCalendar reports whether the month, specific-date and weekend
// questions apply.
func (o *Options) NeedsCalendar() bool {
	return o.NeedsSchedule() && o.ScheduledReleases.Value()
}

// NeedsStartDate reports whether the day-of-month and first-year questions apply.
func (o *Options) NeedsStartDate() bool {
	return o.NeedsCalendar() && o.SpecificDate.Value()
}

// NeedsSeparateInputs reports whether parts can have their own input files.
func (o *Options) NeedsSeparateInputs() bool {
	return o.PartsPerPuzzle.Value() > 1
}

// Normalize applies answer policy that overrides user input. A puzzle with a
// single part never has separate inputs.
func (o *Options) Normalize() {
	if parts, ok := o.PartsPerPuzzle.Get(); ok && parts <= 1 {
		o.SeparateInputs.Set(false)
	}
}

// Validate checks that every required field is set and every set field is in
// range. All issues are returned joined together.
func (o *Options) Validate() error {
	var errs []error

	require := func(name string, set bool) {
		if !set {
			errs = append(errs, fmt.Errorf("%s is required", name))
		}
	}
	check := func(name string, err error) {
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	require("name", o.Name.IsSet())
	if o.Name.IsSet() {
		check("name", ValidateProjectName(o.Name.Value()))
	}
	require("base_url", o.BaseURL.IsSet())
	if o.BaseURL.IsSet() {
		check("base_url", ValidateNonEmpty(o.BaseURL.Value()))
	}
	require("one_off", o.OneOff.IsSet())

	if o.NeedsSchedule() {
		require("scheduled_releases", o.ScheduledReleases.IsSet())
		require("utc_offset", o.UTCOffset.IsSet())
	}
	if o.UTCOffset.IsSet() {
		check("utc_offset", ValidateHours(o.UTCOffset.Value()))
	}

	if o.NeedsCalendar() {
		require("month", o.Month.IsSet())
		require("specific_date", o.SpecificDate.IsSet())
		require("on_weekends", o.OnWeekends.IsSet())
	}
	if o.Month.IsSet() {
		check("month", ValidateMonth(o.Month.Value()))
	}

	if o.NeedsStartDate() {
		require("start_date", o.StartDate.IsSet())
		require("start_year", o.StartYear.IsSet())
	}
	if o.StartYear.IsSet() {
		check("start_year", ValidatePositive(o.StartYear.Value()))
	}
	if o.StartDate.IsSet() && o.Month.IsSet() && o.StartYear.IsSet() {
		check("start_date", ValidateDay(o.StartDate.Value(), o.Month.Value(), o.StartYear.Value()))
	}

	require("total_puzzles", o.TotalPuzzles.IsSet())
	if o.TotalPuzzles.IsSet() {
		check("total_puzzles", ValidatePositive(o.TotalPuzzles.Value()))
	}
	require("parts_per_puzzle", o.PartsPerPuzzle.IsSet())
	if o.PartsPerPuzzle.IsSet() {
		check("parts_per_puzzle", ValidatePositive(o.PartsPerPuzzle.Value()))
	}
	require("separate_inputs", o.SeparateInputs.IsSet())
	if o.SeparateInputs.Value() && o.PartsPerPuzzle.Value() <= 1 {
		errs = append(errs, fmt.Errorf("separate_inputs requires parts_per_puzzle > 1"))
	}
	require("private_inputs", o.PrivateInputs.IsSet())

	return errors.Join(errs...)
}
