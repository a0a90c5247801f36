package cli

import (
	"github.com/charmbracelet/huh"

	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
)

// hypatiaHuhTheme maps the active style set onto a huh theme so wizard forms
// match the rest of the CLI.
func hypatiaHuhTheme(st formatter.Styles) *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = st.Header
	t.Focused.SelectSelector = st.Notice
	t.Focused.SelectedOption = st.Answer
	t.Focused.UnselectedOption = st.Option
	t.Focused.FocusedButton = st.Header.Padding(0, 1)
	t.Focused.BlurredButton = st.Dim.Padding(0, 1)
	t.Focused.TextInput.Cursor = st.Notice
	t.Focused.TextInput.Prompt = st.Notice
	t.Focused.TextInput.Text = st.Question
	t.Focused.TextInput.Placeholder = st.Dim
	t.Focused.Description = st.Dim

	t.Blurred.Title = st.Dim
	t.Blurred.SelectSelector = st.Dim
	t.Blurred.SelectedOption = st.Dim
	t.Blurred.UnselectedOption = st.Dim
	t.Blurred.TextInput.Prompt = st.Dim
	t.Blurred.TextInput.Text = st.Dim

	return t
}
