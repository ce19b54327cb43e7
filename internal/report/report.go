// Package report renders dispatched list updates and compares them with a
// line-oriented text diff.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/dacharyc/listdiff"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Summary counts the updates of a dispatch.
type Summary struct {
	Updates  int
	Inserted int // items
	Removed  int // items
	Moved    int
	Changed  int // items
}

// Summarize counts updates by type.
func Summarize(updates []listdiff.Update) Summary {
	s := Summary{Updates: len(updates)}
	for _, u := range updates {
		switch u.Type {
		case listdiff.Insert:
			s.Inserted += u.Count
		case listdiff.Remove:
			s.Removed += u.Count
		case listdiff.Move:
			s.Moved++
		case listdiff.Change:
			s.Changed += u.Count
		}
	}
	return s
}

// WriteUpdates prints one update per line followed by a summary line.
func WriteUpdates(w io.Writer, updates []listdiff.Update) error {
	for _, u := range updates {
		if _, err := fmt.Fprintln(w, u); err != nil {
			return err
		}
	}
	s := Summarize(updates)
	_, err := fmt.Fprintf(w, "%d updates: %d inserted, %d removed, %d moved, %d changed\n",
		s.Updates, s.Inserted, s.Removed, s.Moved, s.Changed)
	return err
}

// LineStats describes a diff-match-patch line diff.
type LineStats struct {
	Ops           int
	Equal         int // lines
	Inserted      int // lines
	Deleted       int // lines
	ChangeRegions int
}

// LineDiff diffs old and new as lines of text with diff-match-patch.
func LineDiff(old, new []string) LineStats {
	dmp := diffmatchpatch.New()
	chars1, chars2, lines := dmp.DiffLinesToChars(joinLines(old), joinLines(new))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

	var s LineStats
	s.Ops = len(diffs)
	inChange := false
	for _, d := range diffs {
		n := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			s.Equal += n
			inChange = false
		case diffmatchpatch.DiffDelete:
			s.Deleted += n
			if !inChange {
				s.ChangeRegions++
				inChange = true
			}
		case diffmatchpatch.DiffInsert:
			s.Inserted += n
			if !inChange {
				s.ChangeRegions++
				inChange = true
			}
		}
	}
	return s
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// WriteComparison prints the list diff summary next to the line diff stats.
func WriteComparison(w io.Writer, list Summary, lines LineStats) error {
	_, err := fmt.Fprintf(w,
		"\nlistdiff: %d updates (inserted %d, removed %d, moved %d, changed %d)\n"+
			"go-diff:  %d ops (equal %d, inserted %d, deleted %d), %d change regions\n",
		list.Updates, list.Inserted, list.Removed, list.Moved, list.Changed,
		lines.Ops, lines.Equal, lines.Inserted, lines.Deleted, lines.ChangeRegions)
	return err
}
