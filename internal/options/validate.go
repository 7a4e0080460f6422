package options

import (
	"fmt"
	"strings"
	"time"
)

// ValidateNonEmpty rejects empty or whitespace-only strings.
func ValidateNonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("expected a non-empty string")
	}
	return nil
}

// ValidateProjectName rejects names that are empty or whose formatted form
// is not a single path element.
func ValidateProjectName(s string) error {
	if err := ValidateNonEmpty(s); err != nil {
		return err
	}
	switch name := FormatName(s); {
	case name == "." || name == "..":
		return fmt.Errorf("expected a name other than %q", name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("expected a name without path separators")
	}
	return nil
}

// ValidatePositive rejects zero and negative integers.
func ValidatePositive(n int) error {
	if n <= 0 {
		return fmt.Errorf("expected a positive integer")
	}
	return nil
}

// ValidateHours accepts an hour offset in [0, 23].
func ValidateHours(n int) error {
	if n < 0 || n > 23 {
		return fmt.Errorf("expected an integer between 0 and 23 inclusive")
	}
	return nil
}

// ValidateMonth accepts a month number in [1, 12].
func ValidateMonth(n int) error {
	if n < 1 || n > 12 {
		return fmt.Errorf("expected an integer between 1 and 12 inclusive")
	}
	return nil
}

// ValidateDay accepts day if it is a real calendar day of month in year.
func ValidateDay(day, month, year int) error {
	if err := ValidateMonth(month); err != nil {
		return err
	}
	if day < 1 || day > DaysIn(month, year) {
		return fmt.Errorf("expected a positive integer that is a day in month %d", month)
	}
	return nil
}

// DaysIn returns the number of days in month of year.
func DaysIn(month, year int) int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
