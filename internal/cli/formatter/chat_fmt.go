package formatter

import (
	"fmt"
	"strings"

	"github.com/hypatia-cli/hypatia/internal/service"
)

// FormatWelcome renders the chat banner.
func FormatWelcome(st Styles, title, version string) string {
	var b strings.Builder
	b.WriteString(st.Header.Render(title))
	b.WriteString(" ")
	b.WriteString(st.Dim.Render(version))
	b.WriteString("\n")
	b.WriteString(st.Dim.Render(strings.Repeat("─", len(title)+len(version)+1)))
	return b.String()
}

// FormatPrompt renders the active question block: category line, question
// text, and numbered options for select/checkbox prompts.
func FormatPrompt(st Styles, p *service.Prompt) string {
	var b strings.Builder
	if p.CategoryTitle != "" {
		b.WriteString(st.Category.Render(p.CategoryTitle))
		b.WriteString("\n")
	}
	b.WriteString(st.Question.Render(p.Question))
	for i, opt := range p.Options {
		b.WriteString("\n")
		b.WriteString(st.Option.Render(fmt.Sprintf("  %d. %s", i+1, opt)))
	}
	return b.String()
}

// FormatExchange renders a completed question/answer pair for the history.
func FormatExchange(st Styles, question, answer string) string {
	return st.Dim.Render(question) + "\n" + st.Answer.Render("› "+answer)
}

// FormatNotice renders an engine notice line.
func FormatNotice(st Styles, text string) string {
	return st.Notice.Render(text)
}

// FormatError renders a recoverable error line.
func FormatError(st Styles, text string) string {
	return st.Error.Render(text)
}
