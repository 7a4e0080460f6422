// Package preset loads answers ahead of time from a YAML file or the
// environment so the interactive questions for them are skipped.
//
// A preset file looks like:
//
//	version: 1.0.0
//	name: Code Quest
//	base_url: puzzles.example.com
//	one_off: false
//	total_puzzles: 25
//
// Any answer can also be supplied as CONTESTKIT_PRESET_<KEY>, for example
// CONTESTKIT_PRESET_UTC_OFFSET=5. Environment values win over the file.
package preset

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/contestkit-labs/contestkit/internal/branding"
	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
	"github.com/contestkit-labs/contestkit/internal/options"
	"github.com/contestkit-labs/contestkit/internal/output"
)

// SupportedVersions is the range of preset format versions this build reads.
const SupportedVersions = ">= 1.0.0, < 2.0.0"

// envSource names the environment in errors about environment-only presets.
const envSource = "environment"

// Preset holds pre-supplied answers.
type Preset struct {
	// Source is the file the preset came from, or "environment".
	Source string
	values *viper.Viper
}

// Load reads, validates and version-checks the preset at path. The returned
// preset also reads CONTESTKIT_PRESET_* environment variables.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset: %w", err)
	}

	issues, err := Validate(data)
	if err != nil {
		return nil, clierrors.NewPresetError(path, []string{err.Error()})
	}
	if len(issues) > 0 {
		msgs := make([]string, len(issues))
		for i, issue := range issues {
			msgs[i] = issue.String()
		}
		return nil, clierrors.NewPresetError(path, msgs)
	}

	v := newViper()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("loading preset %s: %w", path, err)
	}

	if err := checkVersion(v.GetString("version")); err != nil {
		return nil, clierrors.NewPresetError(path, []string{err.Error()})
	}

	output.Debug("loaded preset", "path", path, "version", v.GetString("version"))
	return &Preset{Source: path, values: v}, nil
}

// FromEnv returns a preset backed only by CONTESTKIT_PRESET_* environment
// variables.
func FromEnv() *Preset {
	return &Preset{Source: envSource, values: newViper()}
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(branding.EnvVar("PRESET"))
	v.AutomaticEnv()
	return v
}

func checkVersion(raw string) error {
	version, err := semver.NewVersion(raw)
	if err != nil {
		return fmt.Errorf("version %q is not a semantic version: %w", raw, err)
	}

	constraint, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing supported versions: %w", err)
	}
	if !constraint.Check(version) {
		return fmt.Errorf("version %s is not supported (want %s)", version, SupportedVersions)
	}
	return nil
}

// Apply sets every answer the preset supplies on o. Fields already set on o
// are overwritten. Values are range checked; a preset is never re-asked, so
// any bad value fails the whole preset.
func (p *Preset) Apply(o *options.Options) error {
	var issues []string
	note := func(err error) {
		if err != nil {
			issues = append(issues, err.Error())
		}
	}

	note(apply(p.values, &o.Name, "name", cast.ToStringE, options.ValidateProjectName))
	note(apply(p.values, &o.BaseURL, "base_url", cast.ToStringE, options.ValidateNonEmpty))
	note(apply(p.values, &o.OneOff, "one_off", cast.ToBoolE, nil))
	note(apply(p.values, &o.ScheduledReleases, "scheduled_releases", cast.ToBoolE, nil))
	note(apply(p.values, &o.UTCOffset, "utc_offset", toInt, options.ValidateHours))
	note(apply(p.values, &o.Month, "month", toInt, options.ValidateMonth))
	note(apply(p.values, &o.SpecificDate, "specific_date", cast.ToBoolE, nil))
	note(apply(p.values, &o.StartYear, "start_year", toInt, options.ValidatePositive))
	note(apply(p.values, &o.StartDate, "start_date", toInt, func(day int) error {
		return options.ValidateDay(day, monthOrAny(o), yearOrLeap(o))
	}))
	note(apply(p.values, &o.OnWeekends, "on_weekends", cast.ToBoolE, nil))
	note(apply(p.values, &o.TotalPuzzles, "total_puzzles", toInt, options.ValidatePositive))
	note(apply(p.values, &o.PartsPerPuzzle, "parts_per_puzzle", toInt, options.ValidatePositive))
	note(apply(p.values, &o.SeparateInputs, "separate_inputs", cast.ToBoolE, nil))
	note(apply(p.values, &o.PrivateInputs, "private_inputs", cast.ToBoolE, nil))

	if len(issues) > 0 {
		return clierrors.NewPresetError(p.Source, issues)
	}

	o.Normalize()
	return nil
}

// apply copies key into field when the preset supplies it.
func apply[T any](v *viper.Viper, field *options.Field[T], key string, conv func(any) (T, error), check func(T) error) error {
	if !v.IsSet(key) {
		return nil
	}

	val, err := conv(v.Get(key))
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if check != nil {
		if err := check(val); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}

	field.Set(val)
	output.Debug("preset answer", "field", key)
	return nil
}

// toInt parses base 10 only, so "08" from the environment is eight.
func toInt(v any) (int, error) {
	if s, ok := v.(string); ok {
		return cast.ToIntE(trimLeadingZeros(s))
	}
	return cast.ToIntE(v)
}

func trimLeadingZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

// monthOrAny is the preset month, or December (31 days) when the month is
// not supplied; the full check happens once every answer is in.
func monthOrAny(o *options.Options) int {
	if m, ok := o.Month.Get(); ok {
		return m
	}
	return int(time.December)
}

// yearOrLeap is the preset first year, or a leap year when it is not
// supplied so 29 February is not rejected early.
func yearOrLeap(o *options.Options) int {
	if y, ok := o.StartYear.Get(); ok {
		return y
	}
	return 2000
}
