package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hypatia-cli/hypatia/internal/bank"
	"github.com/hypatia-cli/hypatia/internal/cli/formatter"
	"github.com/hypatia-cli/hypatia/internal/domain"
	"github.com/hypatia-cli/hypatia/internal/service"
)

// historyWindow bounds how many chat blocks are rendered; older exchanges
// scroll out of view but stay in the store.
const historyWindow = 20

// turnMsg carries the engine's response to a conversation event.
type turnMsg struct {
	turn *service.Turn
	err  error
}

// exportDoneMsg reports a finished export, automatic or manual.
type exportDoneMsg struct {
	path string
	err  error
}

// chatModel is the bubbletea model for the conversational questionnaire.
type chatModel struct {
	app     *App
	st      formatter.Styles
	input   textinput.Model
	history []string
	prompt  *service.Prompt
	width   int
	quitting bool
}

func newChatModel(app *App) chatModel {
	ctx := context.Background()
	st := formatter.NewStyles(app.Settings.DarkMode(ctx))
	ui := app.Conversation.Bank().UI()

	ti := textinput.New()
	ti.Placeholder = ui.InputPlaceholder
	ti.Focus()

	m := chatModel{app: app, st: st, input: ti}
	m.push(formatter.FormatWelcome(st, ui.Title, ui.AppVersion))
	m.replayHistory(ctx)
	return m
}

// replayHistory seeds the chat with previously recorded exchanges so a
// resumed session picks up where it left off. Ordering is the bank's
// declaration order, an approximation of the real turn order.
func (m *chatModel) replayHistory(ctx context.Context) {
	entries, err := m.app.Conversation.Transcript(ctx)
	if err != nil {
		return
	}
	skipLabel := m.ui().SkipLabel
	for _, e := range entries {
		answer := e.Answer.Value
		if e.Answer.Skipped {
			answer = skipLabel
		}
		m.push(formatter.FormatExchange(m.st, e.Question, answer))
	}
}

func (m chatModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.startCmd())
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case turnMsg:
		return m.applyTurn(msg)

	case exportDoneMsg:
		if msg.err != nil {
			m.push(formatter.FormatError(m.st, msg.err.Error()))
		} else {
			m.push(formatter.FormatNotice(m.st, m.ui().Exported+" "+msg.path))
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.handleSubmit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	visible := m.history
	if len(visible) > historyWindow {
		visible = visible[len(visible)-historyWindow:]
	}
	for _, block := range visible {
		b.WriteString(block)
		b.WriteString("\n\n")
	}
	if m.prompt != nil {
		b.WriteString(formatter.FormatPrompt(m.st, m.prompt))
		b.WriteString("\n\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.st.Dim.Render("/skip /export /report /lang /dark /guide /quit"))
	return b.String()
}

// ── event handling ───────────────────────────────────────────────────────────

func (m chatModel) handleSubmit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		return m, nil
	}
	if strings.HasPrefix(raw, "/") {
		m.input.SetValue("")
		return m.handleCommand(raw)
	}
	if m.prompt == nil {
		return m, nil
	}

	value, err := resolveAnswer(m.prompt, raw)
	if err != nil {
		m.push(formatter.FormatError(m.st, err.Error()))
		return m, nil
	}
	m.input.SetValue("")
	m.push(formatter.FormatExchange(m.st, m.prompt.Question, value))
	m.prompt = nil
	return m, func() tea.Msg {
		turn, err := m.app.Conversation.Submit(context.Background(), value)
		return turnMsg{turn, err}
	}
}

func (m chatModel) handleCommand(raw string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(raw)
	switch fields[0] {

	case "/skip":
		if m.prompt != nil {
			m.push(formatter.FormatExchange(m.st, m.prompt.Question, m.ui().SkipLabel))
			m.prompt = nil
		}
		return m, func() tea.Msg {
			turn, err := m.app.Conversation.Skip(context.Background())
			return turnMsg{turn, err}
		}

	case "/export":
		return m, m.exportCmd(service.ExportManual)

	case "/report":
		sections, err := m.app.Reports.Report(context.Background())
		if err != nil {
			m.push(formatter.FormatNotice(m.st, m.ui().NoAnswers))
			return m, nil
		}
		m.push(formatter.FormatReport(m.st, m.ui().ReportTitle, sections))
		return m, nil

	case "/lang":
		if len(fields) < 2 {
			m.push(formatter.FormatError(m.st, "usage: /lang ar|en"))
			return m, nil
		}
		lang, err := domain.ParseLanguage(fields[1])
		if err != nil {
			m.push(formatter.FormatError(m.st, err.Error()))
			return m, nil
		}
		m.prompt = nil
		return m, func() tea.Msg {
			turn, err := m.app.Conversation.SetLanguage(context.Background(), lang)
			return turnMsg{turn, err}
		}

	case "/dark":
		ctx := context.Background()
		on := !m.app.Settings.DarkMode(ctx)
		if err := m.app.Settings.SetDarkMode(ctx, on); err != nil {
			m.push(formatter.FormatError(m.st, err.Error()))
			return m, nil
		}
		m.st = formatter.NewStyles(on)
		return m, nil

	case "/guide":
		m.push(formatter.FormatNotice(m.st, m.ui().UserGuide))
		return m, nil

	case "/quit", "/exit":
		m.quitting = true
		return m, tea.Quit

	default:
		m.push(formatter.FormatError(m.st, fmt.Sprintf("unknown command %s", fields[0])))
		return m, nil
	}
}

func (m chatModel) applyTurn(msg turnMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.push(formatter.FormatError(m.st, msg.err.Error()))
		return m, nil
	}
	for _, notice := range msg.turn.Notices {
		m.push(formatter.FormatNotice(m.st, notice))
	}
	if msg.turn.Prompt != nil {
		m.prompt = msg.turn.Prompt
	}
	m.input.Placeholder = m.ui().InputPlaceholder
	if msg.turn.AutoExport {
		return m, m.exportCmd(service.ExportAuto)
	}
	return m, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (m chatModel) startCmd() tea.Cmd {
	return func() tea.Msg {
		turn, err := m.app.Conversation.Start(context.Background())
		return turnMsg{turn, err}
	}
}

func (m chatModel) exportCmd(mode service.ExportMode) tea.Cmd {
	return func() tea.Msg {
		path, err := m.app.Transfer.Export(context.Background(), mode, m.app.ExportDir)
		return exportDoneMsg{path, err}
	}
}

func (m chatModel) ui() bank.UIStrings {
	return m.app.Conversation.Bank().UI()
}

func (m *chatModel) push(block string) {
	m.history = append(m.history, block)
}

// resolveAnswer maps raw input onto the prompt's input kind: free text passes
// through, select accepts an option number or literal text, checkbox accepts
// a comma-separated list of either.
func resolveAnswer(p *service.Prompt, raw string) (string, error) {
	switch p.Kind {
	case domain.InputSelect:
		return matchOption(p.Options, raw)
	case domain.InputCheckbox:
		parts := strings.Split(raw, ",")
		picked := make([]string, 0, len(parts))
		for _, part := range parts {
			opt, err := matchOption(p.Options, strings.TrimSpace(part))
			if err != nil {
				return "", err
			}
			picked = append(picked, opt)
		}
		return strings.Join(picked, domain.CheckboxSeparator), nil
	default:
		return raw, nil
	}
}

func matchOption(options []string, raw string) (string, error) {
	if n, err := strconv.Atoi(raw); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], nil
		}
		return "", fmt.Errorf("option %d out of range 1-%d", n, len(options))
	}
	for _, opt := range options {
		if strings.EqualFold(opt, raw) {
			return opt, nil
		}
	}
	return "", fmt.Errorf("no option matches %q", raw)
}
