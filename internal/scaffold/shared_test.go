package scaffold

import (
	"strings"
	"testing"

	"github.com/contestkit-labs/contestkit/internal/options"
)

func yearOptions() *options.Options {
	return &options.Options{
		Name:              options.Of("Code Quest"),
		BaseURL:           options.Of("puzzles.example.com"),
		OneOff:            options.Of(false),
		ScheduledReleases: options.Of(true),
		UTCOffset:         options.Of(5),
		Month:             options.Of(12),
		SpecificDate:      options.Of(true),
		StartDate:         options.Of(1),
		StartYear:         options.Of(2015),
		OnWeekends:        options.Of(true),
		TotalPuzzles:      options.Of(25),
		PartsPerPuzzle:    options.Of(2),
		SeparateInputs:    options.Of(false),
		PrivateInputs:     options.Of(true),
	}
}

func eventOptions() *options.Options {
	return &options.Options{
		Name:              options.Of("Hack Week"),
		BaseURL:           options.Of("https://hack.example.org/"),
		OneOff:            options.Of(false),
		ScheduledReleases: options.Of(false),
		UTCOffset:         options.Of(0),
		TotalPuzzles:      options.Of(100),
		PartsPerPuzzle:    options.Of(3),
		SeparateInputs:    options.Of(true),
		PrivateInputs:     options.Of(false),
	}
}

func oneOffOptions() *options.Options {
	return &options.Options{
		Name:           options.Of("Single"),
		BaseURL:        options.Of("single.example.net"),
		OneOff:         options.Of(true),
		TotalPuzzles:   options.Of(9),
		PartsPerPuzzle: options.Of(1),
		SeparateInputs: options.Of(false),
		PrivateInputs:  options.Of(false),
	}
}

// renderShared renders the synthesized shared file at path, reporting
// whether it was generated.
func renderShared(t *testing.T, o *options.Options, path string) (string, bool) {
	t.Helper()
	for _, f := range Render(o, SharedDocuments()) {
		if f.Path == path {
			return string(f.Content), true
		}
	}
	return "", false
}

func mustRenderShared(t *testing.T, o *options.Options, path string) string {
	t.Helper()
	content, ok := renderShared(t, o, path)
	if !ok {
		t.Fatalf("%s was not generated", path)
	}
	return content
}

func TestInputReaderSignature(t *testing.T) {
	separate := yearOptions()
	separate.SeparateInputs = options.Of(true)

	tests := []struct {
		name string
		opts *options.Options
		want string
	}{
		{"year", yearOptions(), "GetInputPath(int year, int puzzle, bool example)"},
		{"event", eventOptions(), "GetInputPath(string @event, int puzzle, int part, bool example)"},
		{"one-off", oneOffOptions(), "GetInputPath(int puzzle, bool example)"},
		{"year with parts", separate, "GetInputPath(int year, int puzzle, int part, bool example)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			content := mustRenderShared(t, tt.opts, "Shared/Helpers/InputReader.cs")
			assertContains(t, content, tt.want)
		})
	}
}

func TestInputReaderPathSegments(t *testing.T) {
	year := mustRenderShared(t, yearOptions(), "Shared/Helpers/InputReader.cs")
	assertContains(t, year, "Path.Combine(AppContext.BaseDirectory, InputDirectory, year.ToString(), fileName)")

	event := mustRenderShared(t, eventOptions(), "Shared/Helpers/InputReader.cs")
	assertContains(t, event, "Path.Combine(AppContext.BaseDirectory, InputDirectory, @event, fileName)")
	assertContains(t, event, `$"{puzzle:D3}-{part}{(example ? "-example" : string.Empty)}.txt"`)

	oneOff := mustRenderShared(t, oneOffOptions(), "Shared/Helpers/InputReader.cs")
	assertContains(t, oneOff, "Path.Combine(AppContext.BaseDirectory, InputDirectory, fileName)")
}

func TestPuzzleNumberWidthAgrees(t *testing.T) {
	tests := []struct {
		opts    *options.Options
		total   int
		width   string
		example string
	}{
		{oneOffOptions(), 9, "1", "Inputs/1.txt"},
		{yearOptions(), 25, "2", "Inputs/2015/01.txt"},
		{yearOptions(), 100, "3", "Inputs/2015/001.txt"},
	}

	for _, tt := range tests {
		tt.opts.TotalPuzzles = options.Of(tt.total)

		reader := mustRenderShared(t, tt.opts, "Shared/Helpers/InputReader.cs")
		assertContains(t, reader, "{puzzle:D"+tt.width+"}")
		assertContains(t, reader, tt.example)

		constants := mustRenderShared(t, tt.opts, "Shared/PuzzleConstants.cs")
		assertContains(t, constants, "public const int PuzzleNumberWidth = "+tt.width+";")
	}
}

func TestSolutionServiceParts(t *testing.T) {
	o := yearOptions()

	iface := mustRenderShared(t, o, "Shared/Services/ISolutionService.cs")
	assertContains(t, iface, "string RunPart1Solution(bool example);")
	assertContains(t, iface, "string RunPart2Solution(bool example);")
	assertNotContains(t, iface, "RunPart3Solution")

	base := mustRenderShared(t, o, "Shared/Services/SolutionService.cs")
	assertContains(t, base, "protected SolutionService(int year, int puzzle) {")
	assertContains(t, base, "public abstract string RunPart2Solution(bool example);")
	assertContains(t, base, "return InputReader.ReadInput(Year, Puzzle, example);")

	event := mustRenderShared(t, eventOptions(), "Shared/Services/SolutionService.cs")
	assertContains(t, event, "protected SolutionService(string @event, int puzzle) {")
	assertContains(t, event, "protected string ReadInput(int part, bool example) {")
	assertContains(t, event, "return InputReader.ReadInput(Event, Puzzle, part, example);")
}

func TestSolutionServiceDocumentsConstructor(t *testing.T) {
	tests := []struct {
		name string
		o    *options.Options
		want string
	}{
		{"year", yearOptions(), "<c>public Puzzle01() : base(2015, 1) { }</c>"},
		{"event", eventOptions(), `<c>public Puzzle001() : base("spring", 1) { }</c>`},
		{"one-off", oneOffOptions(), "<c>public Puzzle1() : base(1) { }</c>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := mustRenderShared(t, tt.o, "Shared/Services/SolutionService.cs")
			assertContains(t, base, tt.want)
		})
	}
}

func TestConstantsBySchedule(t *testing.T) {
	year := mustRenderShared(t, yearOptions(), "Shared/PuzzleConstants.cs")
	assertContains(t, year, "namespace CodeQuest.Shared;")
	assertContains(t, year, `public const string BaseUrl = "https://puzzles.example.com/";`)
	assertContains(t, year, "public const int ReleaseUtcOffsetHours = 5;")
	assertContains(t, year, "public const int StartMonth = 12;")
	assertContains(t, year, "public const int FirstYear = 2015;")
	assertContains(t, year, "public const bool ReleasesOnWeekends = true;")

	noDate := yearOptions()
	noDate.SpecificDate = options.Of(false)
	noDate.StartDate = options.Field[int]{}
	noDate.StartYear = options.Field[int]{}
	content := mustRenderShared(t, noDate, "Shared/PuzzleConstants.cs")
	assertContains(t, content, "public const int StartDate = 1;")
	assertNotContains(t, content, "FirstYear")

	event := mustRenderShared(t, eventOptions(), "Shared/PuzzleConstants.cs")
	assertContains(t, event, "public const int ReleaseUtcOffsetHours = 0;")
	assertNotContains(t, event, "StartMonth")

	oneOff := mustRenderShared(t, oneOffOptions(), "Shared/PuzzleConstants.cs")
	assertNotContains(t, oneOff, "ReleaseUtcOffsetHours")
}

func TestReleaseSchedule(t *testing.T) {
	if _, ok := renderShared(t, eventOptions(), "Shared/Helpers/ReleaseSchedule.cs"); ok {
		t.Error("ReleaseSchedule.cs generated for an unscheduled event")
	}

	content := mustRenderShared(t, yearOptions(), "Shared/Helpers/ReleaseSchedule.cs")
	assertContains(t, content, "year < PuzzleConstants.FirstYear")
	assertContains(t, content, "date = date.AddDays(puzzle - 1);")
	assertNotContains(t, content, "IsWeekend")

	weekdays := yearOptions()
	weekdays.OnWeekends = options.Of(false)
	content = mustRenderShared(t, weekdays, "Shared/Helpers/ReleaseSchedule.cs")
	assertContains(t, content, "private static bool IsWeekend(DateTime date)")
	assertContains(t, content, "skipping Saturdays and Sundays")
}

func TestGatewayAuthentication(t *testing.T) {
	private := mustRenderShared(t, yearOptions(), "Shared/Gateways/PuzzleGateway.cs")
	assertContains(t, private, "public PuzzleGateway(string sessionToken) {")
	assertContains(t, private, "ReleaseSchedule.IsReleased(year, puzzle)")
	assertContains(t, private, "public async Task<string> ImportInput(int year, int puzzle) {")
	assertContains(t, private, "InputReader.GetInputPath(year, puzzle, false)")

	public := mustRenderShared(t, eventOptions(), "Shared/Gateways/PuzzleGateway.cs")
	assertContains(t, public, "public PuzzleGateway() {")
	assertNotContains(t, public, "sessionToken")
	assertNotContains(t, public, "ReleaseSchedule")
	assertContains(t, public, `return $"{Uri.EscapeDataString(@event)}/{puzzle}/{part}/input";`)
}

func TestInputsPlaceholder(t *testing.T) {
	if _, ok := renderShared(t, yearOptions(), "Shared/Inputs/.gitignore"); !ok {
		t.Error("private inputs should generate Inputs/.gitignore")
	}
	if _, ok := renderShared(t, yearOptions(), "Shared/Inputs/.gitkeep"); ok {
		t.Error("private inputs should not generate Inputs/.gitkeep")
	}

	keep, ok := renderShared(t, eventOptions(), "Shared/Inputs/.gitkeep")
	if !ok {
		t.Fatal("public inputs should generate Inputs/.gitkeep")
	}
	if keep != "" {
		t.Errorf(".gitkeep = %q, want empty", keep)
	}
}

func TestRenderDeterministic(t *testing.T) {
	first := Render(yearOptions(), SharedDocuments())
	second := Render(yearOptions(), SharedDocuments())

	if len(first) != len(second) {
		t.Fatalf("rendered %d files then %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Path != second[i].Path || string(first[i].Content) != string(second[i].Content) {
			t.Errorf("%s differs between renders", first[i].Path)
		}
	}
}

func TestCSString(t *testing.T) {
	got := csString(`a "quoted" \ path`)
	want := `"a \"quoted\" \\ path"`
	if got != want {
		t.Errorf("csString() = %s, want %s", got, want)
	}
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("expected content to contain %q, got:\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("expected content not to contain %q", substr)
	}
}
