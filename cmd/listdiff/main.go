// Command listdiff prints the list updates that turn one list into another.
//
// Lists come from two line files (-old, -new) or a YAML fixture (-fixture).
// Without any input it runs a set of built-in demo cases. With -compare the
// result is shown next to a line diff computed by go-diff.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/dacharyc/listdiff"
	"github.com/dacharyc/listdiff/internal/config"
	"github.com/dacharyc/listdiff/internal/report"
)

type appFlags struct {
	oldFile     string
	newFile     string
	fixtureFile string
	moves       bool
	final       bool
	compare     bool
	logLevel    string
	setFlags    map[string]bool
}

func parseFlags() appFlags {
	var f appFlags
	flag.StringVar(&f.oldFile, "old", "", "Path to the old list, one item per line")
	flag.StringVar(&f.newFile, "new", "", "Path to the new list, one item per line")
	flag.StringVar(&f.fixtureFile, "fixture", "", "Path to a YAML fixture holding both lists and options")
	flag.BoolVar(&f.moves, "moves", true, "Detect moved items")
	flag.BoolVar(&f.final, "final", false, "Report moves and changes with final positions")
	flag.BoolVar(&f.compare, "compare", false, "Compare with a go-diff line diff")
	flag.StringVar(&f.logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	flag.Parse()

	f.setFlags = map[string]bool{}
	flag.Visit(func(fl *flag.Flag) {
		f.setFlags[fl.Name] = true
	})
	return f
}

func newLogger(level string) zerolog.Logger {
	consoleWriter := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}
	logger := zerolog.New(consoleWriter).With().Timestamp().Logger()

	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		logger.Warn().Str("level", level).Msg("Invalid log level, using info")
		lvl = zerolog.InfoLevel
	}
	return logger.Level(lvl)
}

func main() {
	flags := parseFlags()
	logger := newLogger(flags.logLevel)

	switch {
	case flags.fixtureFile != "":
		fixture, err := config.Load(flags.fixtureFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to load fixture")
		}
		if fixture.LogLevel != "" && !flags.setFlags["log-level"] {
			logger = newLogger(fixture.LogLevel)
		}
		if flags.setFlags["moves"] {
			fixture.DetectMoves = &flags.moves
		}
		if flags.setFlags["final"] {
			fixture.FinalPositions = flags.final
		}
		if !run(logger, flags.fixtureFile, fixture, flags.compare) {
			os.Exit(1)
		}
	case flags.oldFile != "" || flags.newFile != "":
		if flags.oldFile == "" || flags.newFile == "" {
			logger.Fatal().Msg("Both -old and -new are required")
		}
		oldLines, err := config.ReadLines(flags.oldFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to read old list")
		}
		newLines, err := config.ReadLines(flags.newFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to read new list")
		}
		fixture := config.FromLines(oldLines, newLines)
		fixture.DetectMoves = &flags.moves
		fixture.FinalPositions = flags.final
		run(logger, flags.oldFile+" -> "+flags.newFile, fixture, flags.compare)
	default:
		for _, tc := range demoCases() {
			fixture := config.FromLines(tc.a, tc.b)
			fixture.DetectMoves = &flags.moves
			fixture.FinalPositions = flags.final
			run(logger, tc.name, fixture, true)
		}
	}
}

// run diffs one fixture and prints the result. It reports false when the
// fixture has expectations that were not met.
func run(logger zerolog.Logger, name string, fixture *config.Fixture, compare bool) bool {
	fmt.Printf("\n=== %s ===\n", name)
	fmt.Printf("old: %d items, new: %d items\n", len(fixture.Old), len(fixture.New))

	start := time.Now()
	result, err := listdiff.CalculateDiff(fixture.Callback(),
		listdiff.WithDetectMoves(fixture.MovesEnabled()),
		listdiff.WithLogger(logger))
	if err != nil {
		logger.Fatal().Err(err).Str("input", name).Msg("Failed to calculate diff")
	}
	rec := &listdiff.UpdateRecorder{FinalPositions: fixture.FinalPositions}
	result.DispatchUpdatesTo(rec)
	elapsed := time.Since(start)

	if err := report.WriteUpdates(os.Stdout, rec.Updates); err != nil {
		logger.Fatal().Err(err).Msg("Failed to write updates")
	}
	logger.Info().Str("input", name).Dur("elapsed", elapsed).Int("updates", len(rec.Updates)).Msg("Diff complete")

	if compare {
		lines := report.LineDiff(fixture.OldKeys(), fixture.NewKeys())
		if err := report.WriteComparison(os.Stdout, report.Summarize(rec.Updates), lines); err != nil {
			logger.Fatal().Err(err).Msg("Failed to write comparison")
		}
	}

	if len(fixture.Expect) == 0 {
		return true
	}
	got := make([]string, len(rec.Updates))
	for i, u := range rec.Updates {
		got[i] = u.String()
	}
	if strings.Join(got, " ") != strings.Join(fixture.Expect, " ") {
		logger.Error().Strs("want", fixture.Expect).Strs("got", got).Str("input", name).Msg("Updates do not match expectations")
		return false
	}
	logger.Info().Str("input", name).Msg("Updates match expectations")
	return true
}

type demoCase struct {
	name string
	a, b []string
}

func demoCases() []demoCase {
	cases := []demoCase{
		{
			name: "Fox example (common anchor word)",
			a:    []string{"The", "quick", "brown", "fox", "jumps"},
			b:    []string{"A", "slow", "red", "fox", "leaps"},
		},
		{
			name: "Reordered list",
			a:    []string{"alpha", "beta", "gamma", "delta", "epsilon"},
			b:    []string{"epsilon", "beta", "gamma", "delta", "alpha"},
		},
		{
			name: "Code-like tokens",
			a:    strings.Split("func main ( ) { fmt . Println ( hello ) }", " "),
			b:    strings.Split("func main ( ) { log . Printf ( world ) }", " "),
		},
	}
	return append(cases, demoCase{
		name: "Large list (500 lines, scattered changes)",
		a:    generateLargeText(500, 0),
		b:    generateLargeText(500, 42),
	})
}

func generateLargeText(lines int, seed int) []string {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog",
		"func", "main", "return", "if", "else", "for", "range", "var", "const",
		"import", "package", "type", "struct", "interface", "map", "slice"}

	result := make([]string, lines)
	for i := 0; i < lines; i++ {
		lineWords := make([]string, 5+i%3)
		for j := range lineWords {
			idx := (i*7 + j*13 + seed) % len(words)
			lineWords[j] = words[idx]
		}
		result[i] = strings.Join(lineWords, " ")
	}

	for i := seed % 10; i < lines; i += 10 + seed%5 {
		result[i] = "CHANGED LINE " + fmt.Sprint(i)
	}

	return result
}
