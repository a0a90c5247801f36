package formatter

import (
	"strings"

	"github.com/hypatia-cli/hypatia/internal/service"
)

// FormatReport renders the final report grouped by category.
func FormatReport(st Styles, title string, sections []service.ReportSection) string {
	var b strings.Builder
	b.WriteString(st.Header.Render(title))
	b.WriteString("\n")
	for _, sec := range sections {
		b.WriteString("\n")
		b.WriteString(st.Category.Render(sec.Title))
		b.WriteString("\n")
		for _, e := range sec.Entries {
			b.WriteString(st.Dim.Render("  " + e.Question))
			b.WriteString("\n")
			b.WriteString(st.Answer.Render("  › " + e.Answer))
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatSkipped renders the skipped-question list.
func FormatSkipped(st Styles, title string, questions []string) string {
	var b strings.Builder
	b.WriteString(st.Header.Render(title))
	for _, q := range questions {
		b.WriteString("\n")
		b.WriteString(st.Question.Render("  • " + q))
	}
	return b.String()
}

// FormatTranscript replays the recorded conversation, marking skips with the
// given label.
func FormatTranscript(st Styles, entries []service.TranscriptEntry, skipLabel string) string {
	var b strings.Builder
	for i, e := range entries {
		if i > 0 {
			b.WriteString("\n\n")
		}
		if e.CategoryTitle != "" {
			b.WriteString(st.Category.Render(e.CategoryTitle))
			b.WriteString("\n")
		}
		b.WriteString(st.Dim.Render(e.Question))
		b.WriteString("\n")
		if e.Answer.Skipped {
			b.WriteString(st.Dim.Render("› " + skipLabel))
		} else {
			b.WriteString(st.Answer.Render("› " + e.Answer.Value))
		}
	}
	return b.String()
}
