package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// renderRecord shows one evaluated line: the output line, then the process
// log entry indented below it when trace is set.
func renderRecord(t Theme, rec domain.LineRecord, trace bool) string {
	var b strings.Builder

	mark := t.Good.Render("✓")
	if rec.Outcome != domain.OutcomeSuccess {
		mark = t.Bad.Render("✗")
	}
	b.WriteString(mark)
	b.WriteString(" ")
	b.WriteString(clampString(rec.OutputLine(), 120))
	b.WriteString("\n")

	if trace {
		for _, l := range rec.TraceLines() {
			b.WriteString("    ")
			b.WriteString(t.Help.Render(l))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func renderSummary(s domain.RunSummary) string {
	return fmt.Sprintf("Lines: %d\nOK: %d\nInvalid numeral: %d\nInvalid operation: %d\nInvalid format: %d\n",
		s.Lines, s.Succeeded, s.InvalidNumeral, s.InvalidOperation, s.InvalidFormat)
}

func renderFailures(t Theme, records []domain.LineRecord, limit int) string {
	var b strings.Builder
	shown := 0
	for _, rec := range records {
		if rec.Outcome == domain.OutcomeSuccess {
			continue
		}
		if shown == limit {
			b.WriteString(t.Help.Render("  …more in the process log"))
			b.WriteString("\n")
			break
		}
		fmt.Fprintf(&b, "  line %d: %s (%s)\n", rec.Number, clampString(rec.Line, 40), rec.Reason)
		shown++
	}
	return b.String()
}

func renderRunRefs(refs []domain.RunRef, limit int) string {
	if len(refs) == 0 {
		return "(no runs saved)\n"
	}
	var b strings.Builder
	for i, r := range refs {
		if i == limit {
			fmt.Fprintf(&b, "… %d more\n", len(refs)-limit)
			break
		}
		b.WriteString("- ")
		b.WriteString(r.ID)
		b.WriteString("\n")
	}
	return b.String()
}
