package scaffold

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/contestkit-labs/contestkit/internal/options"
)

// param is one parameter of the generated input-reading API. The reader,
// solution base class and gateway all derive their signatures from the same
// list so they cannot disagree.
type param struct {
	typ  string
	name string
	// doc is the XML doc text; xmlName is the name used in <param>.
	doc     string
	xmlName string
	// property is the SolutionService property holding the value, or empty
	// when the value is passed per call.
	property string
}

func (p param) decl() string {
	return p.typ + " " + p.name
}

// puzzleParams returns the parameters that identify one input file, in
// signature order.
func puzzleParams(o *options.Options) []param {
	var ps []param

	switch o.Scope() {
	case options.ScopeYear:
		ps = append(ps, param{
			typ: "int", name: "year", xmlName: "year", property: "Year",
			doc: "The year the puzzle was released in.",
		})
	case options.ScopeEvent:
		ps = append(ps, param{
			typ: "string", name: "@event", xmlName: "event", property: "Event",
			doc: "The name of the event the puzzle belongs to.",
		})
	}

	ps = append(ps, param{
		typ: "int", name: "puzzle", xmlName: "puzzle", property: "Puzzle",
		doc: fmt.Sprintf("The puzzle number, zero padded to %d %s in file names.", o.PuzzleNumberWidth(), plural(o.PuzzleNumberWidth(), "digit")),
	})

	if o.SeparateInputs.Value() {
		ps = append(ps, param{
			typ: "int", name: "part", xmlName: "part",
			doc: "The part of the puzzle the input belongs to.",
		})
	}

	return ps
}

// readerParams is puzzleParams plus the example switch.
func readerParams(o *options.Options) []param {
	return append(puzzleParams(o), param{
		typ: "bool", name: "example", xmlName: "example",
		doc: "Whether to use the example input instead of the real one.",
	})
}

func signature(ps []param) string {
	decls := make([]string, len(ps))
	for i, p := range ps {
		decls[i] = p.decl()
	}
	return strings.Join(decls, ", ")
}

func arguments(ps []param) string {
	names := make([]string, len(ps))
	for i, p := range ps {
		names[i] = p.name
	}
	return strings.Join(names, ", ")
}

func paramDocs(indent string, ps []param) []string {
	lines := make([]string, len(ps))
	for i, p := range ps {
		lines[i] = fmt.Sprintf(`%s/// <param name="%s">%s</param>`, indent, p.xmlName, p.doc)
	}
	return lines
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// padFormat is the C# format specifier that zero pads a puzzle number.
func padFormat(o *options.Options) string {
	return "D" + strconv.Itoa(o.PuzzleNumberWidth())
}

// examplePath is a sample input path used in doc comments: puzzle 1, part 1,
// under the first year when known.
func examplePath(o *options.Options) string {
	segments := []string{inputDirectory}
	switch o.Scope() {
	case options.ScopeYear:
		if y, ok := o.StartYear.Get(); ok {
			segments = append(segments, strconv.Itoa(y))
		} else {
			segments = append(segments, "{year}")
		}
	case options.ScopeEvent:
		segments = append(segments, "{event}")
	}

	file := fmt.Sprintf("%0*d", o.PuzzleNumberWidth(), 1)
	if o.SeparateInputs.Value() {
		file += "-1"
	}
	return strings.Join(append(segments, file+".txt"), "/")
}

const inputDirectory = "Inputs"

func namespace(o *options.Options, sub string) string {
	if sub == "" {
		return o.FormattedName() + ".Shared"
	}
	return o.FormattedName() + ".Shared." + sub
}

// csString quotes s as a C# regular string literal.
func csString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`)
	return `"` + r.Replace(s) + `"`
}

// normalizeBaseURL gives the base URL a scheme and a trailing slash so it can
// be used as an HttpClient base address.
func normalizeBaseURL(raw string) string {
	u := strings.TrimSpace(raw)
	if !strings.Contains(u, "://") {
		u = "https://" + u
	}
	if !strings.HasSuffix(u, "/") {
		u += "/"
	}
	return u
}

func isScheduled(o *options.Options) bool { return o.Scope() == options.ScopeYear }

func isOneOff(o *options.Options) bool { return o.Scope() == options.ScopeOneOff }

func hasSpecificDate(o *options.Options) bool { return isScheduled(o) && o.SpecificDate.Value() }

func skipsWeekends(o *options.Options) bool { return isScheduled(o) && !o.OnWeekends.Value() }

func isPrivate(o *options.Options) bool { return o.PrivateInputs.Value() }

func separateInputs(o *options.Options) bool { return o.SeparateInputs.Value() }

// SharedDocuments returns the synthesized files of the Shared project, in
// generation order.
func SharedDocuments() []Document {
	return []Document{
		constantsDocument(),
		inputReaderDocument(),
		solutionInterfaceDocument(),
		solutionServiceDocument(),
		gatewayDocument(),
		releaseScheduleDocument(),
		{
			Path:    "Shared/Inputs/.gitignore",
			Applies: isPrivate,
			Fragments: []Fragment{
				Line("# Puzzle inputs are private to each account."),
				Line("*"),
				Line("!.gitignore"),
			},
		},
		{
			Path:    "Shared/Inputs/.gitkeep",
			Applies: func(o *options.Options) bool { return !isPrivate(o) },
		},
	}
}

func constantsDocument() Document {
	return Document{
		Path: "Shared/PuzzleConstants.cs",
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Line("/// Values chosen when the project was generated."),
			Line("/// </summary>"),
			Line("public static class PuzzleConstants {"),
			Line("    /// <summary>"),
			Line("    /// The site puzzles and inputs are fetched from."),
			Line("    /// </summary>"),
			Linef(func(o *options.Options) string {
				return "    public const string BaseUrl = " + csString(normalizeBaseURL(o.BaseURL.Value())) + ";"
			}),
			Blank(),
			Line("    /// <summary>"),
			Linef(func(o *options.Options) string {
				if isOneOff(o) {
					return "    /// The number of puzzles in the event."
				}
				return "    /// The number of puzzles in each event."
			}),
			Line("    /// </summary>"),
			Linef(func(o *options.Options) string {
				return fmt.Sprintf("    public const int TotalPuzzles = %d;", o.TotalPuzzles.Value())
			}),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// The number of parts each puzzle has."),
			Line("    /// </summary>"),
			Linef(func(o *options.Options) string {
				return fmt.Sprintf("    public const int PartsPerPuzzle = %d;", o.PartsPerPuzzle.Value())
			}),
			Blank(),
			Line("    /// <summary>"),
			Linef(func(o *options.Options) string {
				return fmt.Sprintf("    /// Digits used to zero pad puzzle numbers in file names, e.g. %0*d.", o.PuzzleNumberWidth(), 1)
			}),
			Line("    /// </summary>"),
			Linef(func(o *options.Options) string {
				return fmt.Sprintf("    public const int PuzzleNumberWidth = %d;", o.PuzzleNumberWidth())
			}),
			Unless(isOneOff,
				Blank(),
				Line("    /// <summary>"),
				Line("    /// Hours after midnight UTC that puzzles release."),
				Line("    /// </summary>"),
				Linef(func(o *options.Options) string {
					return fmt.Sprintf("    public const int ReleaseUtcOffsetHours = %d;", o.UTCOffset.Value())
				}),
			),
			When(isScheduled,
				Blank(),
				Line("    /// <summary>"),
				Line("    /// The month the first puzzle of each event releases in."),
				Line("    /// </summary>"),
				Linef(func(o *options.Options) string {
					return fmt.Sprintf("    public const int StartMonth = %d;", o.Month.Value())
				}),
				Blank(),
				Line("    /// <summary>"),
				Linef(func(o *options.Options) string {
					if hasSpecificDate(o) {
						return "    /// The day of the month the first puzzle releases on."
					}
					return "    /// The day of the month the first puzzle releases on. No specific date was given, so the schedule starts on the first."
				}),
				Line("    /// </summary>"),
				Linef(func(o *options.Options) string {
					return fmt.Sprintf("    public const int StartDate = %d;", startDay(o))
				}),
				Blank(),
				Line("    /// <summary>"),
				Line("    /// Whether puzzles release on Saturdays and Sundays."),
				Line("    /// </summary>"),
				Linef(func(o *options.Options) string {
					return fmt.Sprintf("    public const bool ReleasesOnWeekends = %t;", o.OnWeekends.Value())
				}),
			),
			When(hasSpecificDate,
				Blank(),
				Line("    /// <summary>"),
				Line("    /// The year of the first event."),
				Line("    /// </summary>"),
				Linef(func(o *options.Options) string {
					return fmt.Sprintf("    public const int FirstYear = %d;", o.StartYear.Value())
				}),
			),
			Line("}"),
		},
	}
}

func startDay(o *options.Options) int {
	if hasSpecificDate(o) {
		return o.StartDate.Value()
	}
	return 1
}

func inputReaderDocument() Document {
	return Document{
		Path: "Shared/Helpers/InputReader.cs",
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "using " + namespace(o, "Exceptions") + ";" }),
			Blank(),
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "Helpers") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Line("/// Locates and reads puzzle input files."),
			Line("/// </summary>"),
			Line("/// <remarks>"),
			Linef(func(o *options.Options) string {
				w := o.PuzzleNumberWidth()
				return fmt.Sprintf("/// Input files are named by puzzle number zero padded to %d %s, e.g. %s.", w, plural(w, "digit"), examplePath(o))
			}),
			When(separateInputs,
				Line("/// Each part has its own input, suffixed with the part number."),
			),
			When(isPrivate,
				Line("/// Inputs are private and ignored by git; download them with the PuzzleGateway."),
			),
			Line("/// </remarks>"),
			Line("public static class InputReader {"),
			Linef(func(*options.Options) string {
				return fmt.Sprintf("    private const string InputDirectory = %s;", csString(inputDirectory))
			}),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// Gets the path of the input file for a puzzle."),
			Line("    /// </summary>"),
			Lines(func(o *options.Options) []string { return paramDocs("    ", readerParams(o)) }),
			Linef(func(o *options.Options) string {
				return "    public static string GetInputPath(" + signature(readerParams(o)) + ") {"
			}),
			Linef(func(o *options.Options) string {
				name := "{puzzle:" + padFormat(o) + "}"
				if separateInputs(o) {
					name += "-{part}"
				}
				return `        string fileName = $"` + name + `{(example ? "-example" : string.Empty)}.txt";`
			}),
			Linef(func(o *options.Options) string {
				args := []string{"AppContext.BaseDirectory", "InputDirectory"}
				switch o.Scope() {
				case options.ScopeYear:
					args = append(args, "year.ToString()")
				case options.ScopeEvent:
					args = append(args, "@event")
				}
				args = append(args, "fileName")
				return "        return Path.Combine(" + strings.Join(args, ", ") + ");"
			}),
			Line("    }"),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// Reads the input file for a puzzle."),
			Line("    /// </summary>"),
			Lines(func(o *options.Options) []string { return paramDocs("    ", readerParams(o)) }),
			Line(`    /// <exception cref="InputNotFoundException">The input file does not exist.</exception>`),
			Linef(func(o *options.Options) string {
				return "    public static string ReadInput(" + signature(readerParams(o)) + ") {"
			}),
			Linef(func(o *options.Options) string {
				return "        string path = GetInputPath(" + arguments(readerParams(o)) + ");"
			}),
			Line("        if (!File.Exists(path)) {"),
			Line("            throw new InputNotFoundException(path);"),
			Line("        }"),
			Blank(),
			Line("        return File.ReadAllText(path);"),
			Line("    }"),
			Line("}"),
		},
	}
}

func solutionInterfaceDocument() Document {
	return Document{
		Path: "Shared/Services/ISolutionService.cs",
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "Services") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Line("/// A solution to one puzzle."),
			Line("/// </summary>"),
			Line("public interface ISolutionService {"),
			Lines(func(o *options.Options) []string {
				var lines []string
				for part := 1; part <= o.PartsPerPuzzle.Value(); part++ {
					if part > 1 {
						lines = append(lines, "")
					}
					lines = append(lines,
						"    /// <summary>",
						fmt.Sprintf("    /// Runs the solution to part %d.", part),
						"    /// </summary>",
						`    /// <param name="example">Whether to run against the example input.</param>`,
						"    /// <returns>The answer to submit.</returns>",
						fmt.Sprintf("    string RunPart%dSolution(bool example);", part),
					)
				}
				return lines
			}),
			Line("}"),
		},
	}
}

// exampleSolutionCtor returns the constructor of a first-puzzle solution
// class that fixes every base constructor argument.
func exampleSolutionCtor(o *options.Options, ps []param) string {
	args := make([]string, len(ps))
	for i, p := range ps {
		switch p.property {
		case "Year":
			year := 2024
			if y, ok := o.StartYear.Get(); ok {
				year = y
			}
			args[i] = strconv.Itoa(year)
		case "Event":
			args[i] = `"spring"`
		default:
			args[i] = "1"
		}
	}
	class := fmt.Sprintf("Puzzle%0*d", o.PuzzleNumberWidth(), 1)
	return "public " + class + "() : base(" + strings.Join(args, ", ") + ") { }"
}

func solutionServiceDocument() Document {
	ctorParams := func(o *options.Options) []param {
		var ps []param
		for _, p := range puzzleParams(o) {
			if p.property != "" {
				ps = append(ps, p)
			}
		}
		return ps
	}

	return Document{
		Path: "Shared/Services/SolutionService.cs",
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "using " + namespace(o, "Helpers") + ";" }),
			Blank(),
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "Services") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Line("/// Base class for puzzle solutions. Derived classes pass the puzzle they"),
			Line(`/// solve to the constructor and read their input with <see cref="ReadInput"/>.`),
			Line("/// Runners create solutions from their own assembly with a parameterless"),
			Linef(func(o *options.Options) string {
				return "/// constructor, for example <c>" + exampleSolutionCtor(o, ctorParams(o)) + "</c>."
			}),
			Line("/// </summary>"),
			Line("public abstract class SolutionService : ISolutionService {"),
			Lines(func(o *options.Options) []string { return paramDocs("    ", ctorParams(o)) }),
			Linef(func(o *options.Options) string {
				return "    protected SolutionService(" + signature(ctorParams(o)) + ") {"
			}),
			Lines(func(o *options.Options) []string {
				var lines []string
				for _, p := range ctorParams(o) {
					lines = append(lines, fmt.Sprintf("        %s = %s;", p.property, p.name))
				}
				return lines
			}),
			Line("    }"),
			Lines(func(o *options.Options) []string {
				var lines []string
				for _, p := range ctorParams(o) {
					lines = append(lines,
						"",
						"    /// <summary>",
						"    /// "+p.doc,
						"    /// </summary>",
						fmt.Sprintf("    public %s %s { get; }", p.typ, p.property),
					)
				}
				return lines
			}),
			Lines(func(o *options.Options) []string {
				var lines []string
				for part := 1; part <= o.PartsPerPuzzle.Value(); part++ {
					lines = append(lines,
						"",
						"    /// <inheritdoc/>",
						fmt.Sprintf("    public abstract string RunPart%dSolution(bool example);", part),
					)
				}
				return lines
			}),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// Reads this puzzle's input."),
			Line("    /// </summary>"),
			When(separateInputs,
				Line(`    /// <param name="part">The part of the puzzle the input belongs to.</param>`),
			),
			Line(`    /// <param name="example">Whether to use the example input instead of the real one.</param>`),
			Linef(func(o *options.Options) string {
				if separateInputs(o) {
					return "    protected string ReadInput(int part, bool example) {"
				}
				return "    protected string ReadInput(bool example) {"
			}),
			Linef(func(o *options.Options) string {
				var args []string
				for _, p := range readerParams(o) {
					if p.property != "" {
						args = append(args, p.property)
					} else {
						args = append(args, p.name)
					}
				}
				return "        return InputReader.ReadInput(" + strings.Join(args, ", ") + ");"
			}),
			Line("    }"),
			Line("}"),
		},
	}
}

func gatewayDocument() Document {
	return Document{
		Path: "Shared/Gateways/PuzzleGateway.cs",
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "using " + namespace(o, "Helpers") + ";" }),
			Blank(),
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "Gateways") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Linef(func(o *options.Options) string {
				return "/// Downloads puzzle inputs from " + normalizeBaseURL(o.BaseURL.Value()) + "."
			}),
			Line("/// </summary>"),
			Line("public class PuzzleGateway : IDisposable {"),
			Line("    private readonly HttpClient client;"),
			Blank(),
			Unless(isPrivate,
				Line("    /// <summary>"),
				Line("    /// Creates a gateway for publicly available inputs."),
				Line("    /// </summary>"),
				Line("    public PuzzleGateway() {"),
				Line("        client = new HttpClient { BaseAddress = new Uri(PuzzleConstants.BaseUrl) };"),
				Line("    }"),
			),
			When(isPrivate,
				Line("    /// <summary>"),
				Line("    /// Creates a gateway that authenticates with a session token. Inputs are"),
				Line("    /// private to each account, so the token is required."),
				Line("    /// </summary>"),
				Line(`    /// <param name="sessionToken">The site's session cookie value, usually kept in a .session file.</param>`),
				Line("    public PuzzleGateway(string sessionToken) {"),
				Line("        client = new HttpClient { BaseAddress = new Uri(PuzzleConstants.BaseUrl) };"),
				Line(`        client.DefaultRequestHeaders.Add("Cookie", $"session={sessionToken}");`),
				Line("    }"),
			),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// Downloads a puzzle's input and stores it where the InputReader looks for it."),
			Line("    /// Inputs already on disk are returned without a request."),
			Line("    /// </summary>"),
			Lines(func(o *options.Options) []string { return paramDocs("    ", puzzleParams(o)) }),
			Line("    /// <returns>The puzzle input.</returns>"),
			Linef(func(o *options.Options) string {
				return "    public async Task<string> ImportInput(" + signature(puzzleParams(o)) + ") {"
			}),
			Linef(func(o *options.Options) string {
				return "        string path = InputReader.GetInputPath(" + arguments(puzzleParams(o)) + ", false);"
			}),
			Line("        if (File.Exists(path)) {"),
			Line("            return await File.ReadAllTextAsync(path);"),
			Line("        }"),
			When(isScheduled,
				Blank(),
				Line("        if (!ReleaseSchedule.IsReleased(year, puzzle)) {"),
				Line(`            throw new InvalidOperationException($"Puzzle {puzzle} of {year} has not been released yet.");`),
				Line("        }"),
			),
			Blank(),
			Linef(func(o *options.Options) string {
				return "        string input = await client.GetStringAsync(GetInputUrl(" + arguments(puzzleParams(o)) + "));"
			}),
			Line("        Directory.CreateDirectory(Path.GetDirectoryName(path)!);"),
			Line("        await File.WriteAllTextAsync(path, input);"),
			Line("        return input;"),
			Line("    }"),
			Blank(),
			Line("    /// <inheritdoc/>"),
			Line("    public void Dispose() {"),
			Line("        client.Dispose();"),
			Line("        GC.SuppressFinalize(this);"),
			Line("    }"),
			Blank(),
			Linef(func(o *options.Options) string {
				return "    private static string GetInputUrl(" + signature(puzzleParams(o)) + ") {"
			}),
			Linef(func(o *options.Options) string {
				var segments []string
				for _, p := range puzzleParams(o) {
					if p.typ == "string" {
						segments = append(segments, "{Uri.EscapeDataString("+p.name+")}")
					} else {
						segments = append(segments, "{"+p.name+"}")
					}
				}
				return `        return $"` + strings.Join(append(segments, "input"), "/") + `";`
			}),
			Line("    }"),
			Line("}"),
		},
	}
}

func releaseScheduleDocument() Document {
	return Document{
		Path:    "Shared/Helpers/ReleaseSchedule.cs",
		Applies: isScheduled,
		Fragments: []Fragment{
			Linef(func(o *options.Options) string { return "namespace " + namespace(o, "Helpers") + ";" }),
			Blank(),
			Line("/// <summary>"),
			Linef(func(o *options.Options) string {
				start := fmt.Sprintf("day %d of month %d", startDay(o), o.Month.Value())
				return fmt.Sprintf("/// Computes when puzzles unlock. One puzzle releases per day from %s,", start)
			}),
			Linef(func(o *options.Options) string {
				line := fmt.Sprintf("/// %02d:00 UTC", o.UTCOffset.Value())
				if skipsWeekends(o) {
					return line + ", skipping Saturdays and Sundays."
				}
				return line + ", including weekends."
			}),
			Line("/// </summary>"),
			Line("public static class ReleaseSchedule {"),
			Line("    /// <summary>"),
			Line("    /// Gets the moment a puzzle unlocks."),
			Line("    /// </summary>"),
			Line(`    /// <param name="year">The year of the event.</param>`),
			Line(`    /// <param name="puzzle">The puzzle number.</param>`),
			Line("    public static DateTimeOffset GetReleaseTime(int year, int puzzle) {"),
			When(hasSpecificDate,
				Line("        if (year < PuzzleConstants.FirstYear) {"),
				Line(`            throw new ArgumentOutOfRangeException(nameof(year), $"The first event was in {PuzzleConstants.FirstYear}.");`),
				Line("        }"),
			),
			Line("        if (puzzle < 1 || puzzle > PuzzleConstants.TotalPuzzles) {"),
			Line(`            throw new ArgumentOutOfRangeException(nameof(puzzle), $"Puzzles are numbered 1 to {PuzzleConstants.TotalPuzzles}.");`),
			Line("        }"),
			Blank(),
			Line("        DateTime date = new(year, PuzzleConstants.StartMonth, PuzzleConstants.StartDate);"),
			When(skipsWeekends,
				Line("        while (IsWeekend(date)) {"),
				Line("            date = date.AddDays(1);"),
				Line("        }"),
				Line("        for (int released = 1; released < puzzle;) {"),
				Line("            date = date.AddDays(1);"),
				Line("            if (!IsWeekend(date)) {"),
				Line("                released++;"),
				Line("            }"),
				Line("        }"),
			),
			Unless(skipsWeekends,
				Line("        date = date.AddDays(puzzle - 1);"),
			),
			Blank(),
			Line("        return new DateTimeOffset(date.AddHours(PuzzleConstants.ReleaseUtcOffsetHours), TimeSpan.Zero);"),
			Line("    }"),
			Blank(),
			Line("    /// <summary>"),
			Line("    /// Whether a puzzle has unlocked yet."),
			Line("    /// </summary>"),
			Line(`    /// <param name="year">The year of the event.</param>`),
			Line(`    /// <param name="puzzle">The puzzle number.</param>`),
			Line("    public static bool IsReleased(int year, int puzzle) {"),
			Line("        return DateTimeOffset.UtcNow >= GetReleaseTime(year, puzzle);"),
			Line("    }"),
			When(skipsWeekends,
				Blank(),
				Line("    private static bool IsWeekend(DateTime date) {"),
				Line("        return date.DayOfWeek is DayOfWeek.Saturday or DayOfWeek.Sunday;"),
				Line("    }"),
			),
			Line("}"),
		},
	}
}
