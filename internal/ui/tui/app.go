package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Shaira-D/FINAL-PROJECT-IN-ITE19/internal/domain"
)

type screen int

const (
	screenHome screen = iota
	screenEval
	screenBatch
	screenRuns
)

const (
	historySize  = 8
	failureLimit = 10
	runsLimit    = 15
)

type menuItem struct {
	title string
	desc  string
	to    screen
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type model struct {
	theme Theme
	deps  Deps

	scr  screen
	menu list.Model

	cwd            string
	workspaceFound bool
	workspaceRoot  string

	input   textinput.Model
	history []domain.LineRecord
	evalN   int
	trace   bool

	running   bool
	lastRun   *domain.RunResult
	lastRunID string

	runs []domain.RunRef

	toast string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	t := DefaultTheme()

	items := []list.Item{
		menuItem{"Evaluate", "Type an expression such as X + V and read it in words", screenEval},
		menuItem{"Run batch", "Process the configured input file into the output file", screenBatch},
		menuItem{"Saved runs", "Browse run artifacts under runs/", screenRuns},
		menuItem{"Init workspace", "Create romcalc.yaml and a sample input here", screenHome},
		menuItem{"Quit", "Exit romcalc", screenHome},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "romcalc"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	in := textinput.New()
	in.Placeholder = "MCMXCIV - XLIV"
	in.Prompt = t.Prompt.Render("› ")
	in.CharLimit = 2*domain.MaxTokenLen + 8

	m := model{
		theme: t,
		deps:  deps,
		scr:   screenHome,
		menu:  l,
		input: in,
		trace: true,
	}

	wd, err := os.Getwd()
	if err == nil {
		m.cwd = wd
		if deps.WorkspaceLocator != nil {
			if root, findErr := deps.WorkspaceLocator.FindRoot(wd); findErr == nil {
				m.workspaceFound = true
				m.workspaceRoot = root
			}
		}
	}

	return m
}

func (m model) Init() tea.Cmd { return nil }

// dir is where batch and run screens operate.
func (m model) dir() string {
	if m.workspaceFound {
		return m.workspaceRoot
	}
	return m.cwd
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.input.Width = msg.Width - 12
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace ready at " + msg.root
		return m, cmdRefreshWorkspace(m.deps)

	case runsLoadedMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.runs = msg.refs
		return m, nil

	case batchDoneMsg:
		m.running = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.lastRun = nil
			m.lastRunID = ""
			return m, nil
		}
		run := msg.run
		m.lastRun = &run
		m.lastRunID = msg.id
		m.toast = ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.scr {
		case screenHome:
			return m.updateHome(msg)
		case screenEval:
			return m.updateEval(msg)
		default:
			return m.updateDetail(msg)
		}
	}

	if m.scr == screenHome {
		var cmd tea.Cmd
		m.menu, cmd = m.menu.Update(msg)
		return m, cmd
	}
	if m.scr == screenEval {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		it, ok := m.menu.SelectedItem().(menuItem)
		if !ok {
			return m, nil
		}
		m.toast = ""
		switch {
		case strings.EqualFold(it.title, "Quit"):
			return m, tea.Quit
		case strings.EqualFold(it.title, "Init workspace"):
			return m, cmdInitWorkspaceHere(m.deps, m.cwd)
		}
		return m.open(it.to)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) open(s screen) (tea.Model, tea.Cmd) {
	m.scr = s
	switch s {
	case screenEval:
		return m, m.input.Focus()
	case screenBatch:
		return m.startBatch()
	case screenRuns:
		return m, cmdLoadRuns(m.dir())
	}
	return m, nil
}

func (m model) startBatch() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	m.running = true
	return m, startBatchAsync(m.dir(), m.deps.Logger, m.deps.Debug)
}

func (m model) updateEval(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.scr = screenHome
		return m, nil

	case "ctrl+t":
		m.trace = !m.trace
		return m, nil

	case "enter":
		line := m.input.Value()
		if strings.TrimSpace(line) == "" {
			return m, nil
		}
		m.evalN++
		rec := domain.ProcessLine(m.evalN, line)
		m.history = append([]domain.LineRecord{rec}, m.history...)
		if len(m.history) > historySize {
			m.history = m.history[:historySize]
		}
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "b", "q":
		m.scr = screenHome
		return m, nil
	case "r":
		if m.scr == screenBatch {
			return m.startBatch()
		}
		return m, cmdLoadRuns(m.dir())
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("romcalc") + "\n" +
		m.theme.Subtitle.Render("Roman numeral arithmetic, answered in English words") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Help.Render(fmt.Sprintf("No romcalc.yaml found; using %s with defaults", m.cwd))
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Bad.Render(m.toast)
	}

	var body string
	switch m.scr {
	case screenHome:
		help := m.theme.Help.Render("↑/↓ navigate • enter open • q quit")
		body = m.theme.Card.Render(m.menu.View()) + "\n" + help

	case screenEval:
		body = m.viewEval()

	case screenBatch:
		body = m.viewBatch()

	case screenRuns:
		card := m.theme.Title.Render("Saved runs") + "\n\n" + renderRunRefs(m.runs, runsLimit)
		body = m.theme.Card.Render(card) + "\n" + m.theme.Help.Render("r reload • esc back")

	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + banner + "\n\n" + body)
}

func (m model) viewEval() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Evaluate"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	for _, rec := range m.history {
		b.WriteString(renderRecord(m.theme, rec, m.trace))
	}

	traceState := "on"
	if !m.trace {
		traceState = "off"
	}
	help := m.theme.Help.Render("enter evaluate • ctrl+t trace " + traceState + " • esc back")
	return m.theme.Card.Render(b.String()) + "\n" + help
}

func (m model) viewBatch() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render("Run batch"))
	b.WriteString("\n\n")

	switch {
	case m.running:
		b.WriteString("Running…\n")
	case m.lastRun == nil:
		b.WriteString("No result yet.\n")
	default:
		run := m.lastRun
		fmt.Fprintf(&b, "Input:  %s\nOutput: %s\n", run.InputPath, run.OutputPath)
		if run.ProcessLogPath != "" {
			fmt.Fprintf(&b, "Trace:  %s\n", run.ProcessLogPath)
		}
		if m.lastRunID != "" {
			fmt.Fprintf(&b, "Saved:  %s\n", m.lastRunID)
		}
		b.WriteString("\n")
		b.WriteString(renderSummary(run.Summary))
		if run.Summary.Failed() > 0 {
			b.WriteString("\n")
			b.WriteString(renderFailures(m.theme, run.Records, failureLimit))
		}
	}

	return m.theme.Card.Render(b.String()) + "\n" + m.theme.Help.Render("r re-run • esc back")
}
