package suite

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Outcome glyphs — convey meaning without relying on color alone.
const (
	GlyphPassed  = "✓"
	GlyphFailed  = "✗"
	GlyphIgnored = "⊘"
)

var (
	passStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ignoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// Summary is the aggregate verdict of a run. Failed excludes ignored
// failures, so Succeeded+Failed can be less than the record count.
type Summary struct {
	Succeeded int
	Failed    int
	Ignored   int
}

// ExitCode is the process exit status the summary dictates: nonzero iff any
// non-ignored failure occurred.
func (s Summary) ExitCode() int {
	if s.Failed > 0 {
		return 1
	}
	return 0
}

// Summarize tallies a finished log against the ignore registry. It is a pure
// pass over the records, kept separate from rendering.
func Summarize(log *Log, ignores *IgnoreList) Summary {
	var sum Summary
	for _, rec := range log.Records() {
		switch {
		case rec.Valid:
			sum.Succeeded++
		case ignores.ShouldIgnore(rec.Message()):
			sum.Ignored++
		default:
			sum.Failed++
		}
	}
	return sum
}

// Reporter renders a finished log: every failing record as one line (ignored
// failures included, marked as such), then the two summary lines. Passing
// records are echoed only in verbose mode.
type Reporter struct {
	Out     io.Writer
	Verbose bool
}

// Report renders the log and returns its summary.
func (r *Reporter) Report(log *Log, ignores *IgnoreList) Summary {
	for _, rec := range log.Records() {
		msg := rec.Message()
		switch {
		case rec.Valid:
			if r.Verbose {
				fmt.Fprintln(r.Out, passStyle.Render(GlyphPassed+" "+msg))
			}
		case ignores.ShouldIgnore(msg):
			fmt.Fprintln(r.Out, ignoreStyle.Render(GlyphIgnored+" "+msg+" (ignored)"))
		default:
			fmt.Fprintln(r.Out, failStyle.Render(GlyphFailed+" "+msg))
		}
	}

	sum := Summarize(log, ignores)
	fmt.Fprintln(r.Out, summaryStyle.Render(fmt.Sprintf("%s %d succeeded", GlyphPassed, sum.Succeeded)))
	fmt.Fprintln(r.Out, summaryStyle.Render(fmt.Sprintf("%s %d failed", GlyphFailed, sum.Failed)))
	return sum
}
