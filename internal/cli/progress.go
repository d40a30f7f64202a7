package cli

import (
	"fmt"
	"io"
	"sort"

	"charm.land/bubbles/v2/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/gustavdup/health-question-answer-generator/internal/batch"
)

// Theme holds the color scheme for console output.
type Theme struct {
	Status  lipgloss.Color
	Success lipgloss.Color
	Error   lipgloss.Color
	Hint    lipgloss.Color
}

// defaultTheme provides default colors.
var defaultTheme = Theme{
	Status:  lipgloss.Color("#5FAFD7"), // light blue
	Success: lipgloss.Color("#00D787"), // green
	Error:   lipgloss.Color("#FF005F"), // red
	Hint:    lipgloss.Color("#6C6C6C"), // dim gray
}

func (t Theme) statusStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Status)
}

func (t Theme) completedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}

func (t Theme) errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Error).Bold(true)
}

func (t Theme) hintStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Hint).Italic(true)
}

// consoleReporter renders batch progress as plain lines with a static
// progress bar. The batch itself is sequential and blocking, so there is
// no animated UI — one line per question, flushed as it happens.
type consoleReporter struct {
	out   io.Writer
	theme Theme
	bar   progress.Model
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{
		out:   out,
		theme: defaultTheme,
		bar: progress.New(
			progress.WithDefaultBlend(),
			progress.WithWidth(30),
		),
	}
}

func (r *consoleReporter) QuestionStarted(index, total int, question string) {
	pct := float64(index-1) / float64(total)
	fmt.Fprintf(r.out, "%s %s %d of %d: %s\n",
		r.theme.statusStyle().Render("[run]"),
		r.bar.ViewAs(pct),
		index, total,
		truncate(question, 60),
	)
}

func (r *consoleReporter) QuestionFinished(index, total int, row batch.ResultRow) {
	if row.Status == batch.StatusCompleted {
		fmt.Fprintf(r.out, "  %s (thread %s)\n",
			r.theme.completedStyle().Render("✓ completed"),
			truncate(row.ThreadID, 16),
		)
		return
	}
	fmt.Fprintf(r.out, "  %s: %s\n",
		r.theme.errorStyle().Render("✗ "+string(row.Status)),
		row.Error,
	)
}

func (r *consoleReporter) BatchFinished(summary batch.Summary) {
	fmt.Fprintf(r.out, "\n%s\n", r.theme.statusStyle().Render("Batch complete"))
	fmt.Fprintf(r.out, "  Questions in input: %d\n", summary.Total)
	if summary.Skipped > 0 {
		fmt.Fprintf(r.out, "  Already processed:  %d\n", summary.Skipped)
	}

	statuses := make([]string, 0, len(summary.ByStatus))
	for s := range summary.ByStatus {
		statuses = append(statuses, string(s))
	}
	sort.Strings(statuses)
	for _, s := range statuses {
		fmt.Fprintf(r.out, "  %-18s %d\n", s+":", summary.ByStatus[batch.Status(s)])
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
