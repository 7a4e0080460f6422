// Package prompt collects unanswered project options interactively, one
// question per line of input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	clierrors "github.com/contestkit-labs/contestkit/internal/errors"
	"github.com/contestkit-labs/contestkit/internal/options"
	"github.com/contestkit-labs/contestkit/internal/output"
)

const clearScreen = "\033[H\033[2J"

// Prompter asks questions on w and reads answers from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
	clear  bool
	now    func() time.Time
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithClearScreen clears the terminal after each answer.
func WithClearScreen(clear bool) Option {
	return func(p *Prompter) { p.clear = clear }
}

// WithClock sets the clock used to pick the year for day-of-month checks
// when the first year is not yet known.
func WithClock(now func() time.Time) Option {
	return func(p *Prompter) { p.now = now }
}

// New returns a Prompter reading from r and writing to w.
func New(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		reader: bufio.NewReader(r),
		w:      w,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Collect asks every question that applies to o and is not already answered.
// Answers already set, for example from a preset, are never asked again.
func (p *Prompter) Collect(o *options.Options) error {
	if err := ask(p, &o.Name, "name", "What is the human readable name of the project?", parseName); err != nil {
		return err
	}
	if err := ask(p, &o.BaseURL, "base_url", "What is the base url of the project?", parseString); err != nil {
		return err
	}
	if err := askBool(p, &o.OneOff, "one_off", "Is this a one off event?"); err != nil {
		return err
	}

	if o.NeedsSchedule() {
		if err := askBool(p, &o.ScheduledReleases, "scheduled_releases",
			"Will this event release puzzles periodically starting at a set date and time instead of all at once?"); err != nil {
			return err
		}
	}
	if o.NeedsUTCOffset() {
		if err := ask(p, &o.UTCOffset, "utc_offset",
			"Compared to midnight UTC, what is the positive offset in hours from when events release?",
			parseInt(options.ValidateHours)); err != nil {
			return err
		}
	}

	if o.NeedsCalendar() {
		if err := ask(p, &o.Month, "month", "What month does the event start in?", parseInt(options.ValidateMonth)); err != nil {
			return err
		}
		if err := askBool(p, &o.SpecificDate, "specific_date", "Does the event start on a specific date?"); err != nil {
			return err
		}
	}
	if o.NeedsStartDate() {
		day := func(d int) error {
			return options.ValidateDay(d, o.Month.Value(), p.dayCheckYear(o))
		}
		if err := ask(p, &o.StartDate, "start_date", "What day of the month does the event start on?", parseInt(day)); err != nil {
			return err
		}
		if err := ask(p, &o.StartYear, "start_year", "What year did the first event come out?", parseInt(options.ValidatePositive)); err != nil {
			return err
		}

		// The day was checked against the current year; ask again if it does
		// not exist in the first year.
		if err := options.ValidateDay(o.StartDate.Value(), o.Month.Value(), o.StartYear.Value()); err != nil {
			p.invalid(fmt.Errorf("%w of %d", err, o.StartYear.Value()))
			o.StartDate.Reset()
			if err := ask(p, &o.StartDate, "start_date", "What day of the month does the event start on?", parseInt(day)); err != nil {
				return err
			}
		}
	}
	if o.NeedsCalendar() {
		if err := askBool(p, &o.OnWeekends, "on_weekends", "Do puzzles come out on weekends?"); err != nil {
			return err
		}
	}

	total := "How many total puzzles are there?"
	if o.OneOff.Value() {
		total = "How many total puzzles are there per event?"
	}
	if err := ask(p, &o.TotalPuzzles, "total_puzzles", total, parseInt(options.ValidatePositive)); err != nil {
		return err
	}
	if err := ask(p, &o.PartsPerPuzzle, "parts_per_puzzle", "How many parts will each puzzle have?", parseInt(options.ValidatePositive)); err != nil {
		return err
	}

	o.Normalize()
	if o.NeedsSeparateInputs() {
		if err := askBool(p, &o.SeparateInputs, "separate_inputs", "Will each part have a separate input?"); err != nil {
			return err
		}
	}

	return askBool(p, &o.PrivateInputs, "private_inputs", "Should the inputs be kept private and not checked into source code?")
}

// dayCheckYear is the year a start day is validated against: the first
// year when a preset already supplied it, otherwise the current year.
func (p *Prompter) dayCheckYear(o *options.Options) int {
	if year, ok := o.StartYear.Get(); ok {
		return year
	}
	return p.now().Year()
}

// ask prompts until parse accepts an answer, then sets field. A field that
// is already set is left alone.
func ask[T any](p *Prompter, field *options.Field[T], key, question string, parse func(string) (T, error)) error {
	if field.IsSet() {
		output.Debug("skipping answered question", "field", key)
		return nil
	}

	for {
		fmt.Fprintln(p.w, question)
		fmt.Fprintln(p.w)

		line, err := p.readLine()
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		if p.clear {
			fmt.Fprint(p.w, clearScreen)
		}

		v, err := parse(line)
		if err != nil {
			p.invalid(err)
			continue
		}

		field.Set(v)
		return nil
	}
}

func (p *Prompter) invalid(err error) {
	fmt.Fprintln(p.w, output.StyleError.Render("Invalid value, "+err.Error()+"."))
}

// askBool asks a yes/no question as a two-item numbered menu.
func askBool(p *Prompter, field *options.Field[bool], key, question string) error {
	menu := fmt.Sprintf("%s\n%s Yes\n%s No", question, output.StyleDim.Render("1)"), output.StyleDim.Render("2)"))
	return ask(p, field, key, menu, parseChoice)
}

// readLine returns the next line without its line ending. A final line
// without a newline is still returned; end of input after that is
// ErrInputClosed.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading answer: %w", err)
		}
		if line == "" {
			return "", clierrors.Wrap(clierrors.ErrInputClosed, "reading answer")
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func parseString(line string) (string, error) {
	if err := options.ValidateNonEmpty(line); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseInt parses an integer and checks it with validate. Text that is not
// an integer gets the same message as an out-of-range value.
func parseInt(validate func(int) error) func(string) (int, error) {
	return func(line string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return 0, validate(math.MinInt)
		}
		if err := validate(n); err != nil {
			return 0, err
		}
		return n, nil
	}
}

func parseName(line string) (string, error) {
	if err := options.ValidateProjectName(line); err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func parseChoice(line string) (bool, error) {
	switch strings.TrimSpace(line) {
	case "1":
		return true, nil
	case "2":
		return false, nil
	default:
		return false, fmt.Errorf("expected an integer 1 or 2")
	}
}
