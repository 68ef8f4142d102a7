package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/julert/toolchain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	outputStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#666666")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type buildModel struct {
	ctx     context.Context
	err     error
	cancel  context.CancelFunc
	cfg     *toolchain.Config
	result  *toolchain.Result
	srcFile string
	source  string
	spinner spinner.Model
	started time.Time
	done    bool
}

type buildDoneMsg struct {
	err    error
	result *toolchain.Result
}

func newBuildModel(ctx context.Context, cfg *toolchain.Config, srcFile, source string) *buildModel {
	ctx, cancel := context.WithCancel(ctx)
	s := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(spinnerStyle))
	return &buildModel{
		ctx:     ctx,
		cancel:  cancel,
		cfg:     cfg,
		srcFile: srcFile,
		source:  source,
		spinner: s,
		started: time.Now(),
	}
}

func (m *buildModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.build)
}

func (m *buildModel) build() tea.Msg {
	res, err := toolchain.Build(m.ctx, m.cfg, m.source)
	return buildDoneMsg{result: res, err: err}
}

func (m *buildModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.cancel()
			return m, nil
		}

	case buildDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		m.cancel()
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *buildModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("jbuild"))
	b.WriteString(" ")
	b.WriteString(pathStyle.Render(m.srcFile))
	b.WriteString(" → ")
	b.WriteString(pathStyle.Render(m.cfg.OutFilePath()))
	b.WriteString("\n\n")

	if !m.done {
		b.WriteString(m.spinner.View())
		b.WriteString(" compiling with ")
		b.WriteString(m.cfg.Build.Compiler)
		b.WriteString(fmt.Sprintf(" (%s)\n", time.Since(m.started).Round(time.Second)))
		b.WriteString(helpStyle.Render("ctrl+c: cancel"))
		b.WriteString("\n")
		return b.String()
	}

	if out := m.output(); out != "" {
		b.WriteString(outputStyle.Render(out))
		b.WriteString("\n")
	}

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render("✗ " + m.err.Error()))
	case m.result.Failed():
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ build failed: exit status %d", m.result.ExitCode)))
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s", m.result.Duration.Round(time.Millisecond))))
	default:
		b.WriteString(successStyle.Render("✓ build succeeded"))
		b.WriteString(helpStyle.Render(fmt.Sprintf("  %s", m.result.Duration.Round(time.Millisecond))))
	}
	b.WriteString("\n")
	return b.String()
}

func (m *buildModel) output() string {
	if m.result == nil {
		return ""
	}
	return strings.TrimRight(m.result.Output, "\n")
}

func (m *buildModel) exitCode() int {
	switch {
	case m.result != nil:
		return m.result.ExitCode
	case m.err != nil:
		return 1
	}
	return 0
}

func runInteractive(ctx context.Context, cfg *toolchain.Config, srcFile, source string) (int, error) {
	m := newBuildModel(ctx, cfg, srcFile, source)
	defer m.cancel()

	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return 1, err
	}
	bm := final.(*buildModel)
	if bm.err != nil {
		return bm.exitCode(), bm.err
	}
	return bm.exitCode(), nil
}
