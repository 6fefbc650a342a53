package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/algebra/internal/bigint"
	apperrors "github.com/agbru/algebra/internal/errors"
	"github.com/agbru/algebra/internal/format"
	"github.com/agbru/algebra/internal/orchestration"
	"github.com/agbru/algebra/internal/sysmon"
)

const (
	tickInterval = 500 * time.Millisecond
	cpuSamples   = 40
	// productEdges is the number of leading and trailing digits shown
	// for long products.
	productEdges = 24
)

// ─── Messages ───────────────────────────────────────────────────────────────

type (
	tickMsg     time.Time
	sysStatsMsg sysmon.Stats
	rowDoneMsg  struct {
		update orchestration.ProgressUpdate
		gen    uint64
	}
	runDoneMsg struct {
		exitCode int
		result   *orchestration.CalculationResult
		err      error
		gen      uint64
	}
)

// row is the dashboard state of one multiplication strategy.
type row struct {
	name     string
	done     bool
	duration time.Duration
	err      error
}

// runControl cancels the run in flight. It is shared by every copy of
// the model.
type runControl struct {
	cancel context.CancelFunc
}

// Model is the root bubbletea model of the comparison dashboard.
type Model struct {
	keys        KeyMap
	ref         *programRef
	parent      context.Context
	ctl         *runControl
	multipliers []orchestration.Multiplier
	a, b        bigint.Int

	rows     []row
	gen      uint64
	start    time.Time
	end      time.Time
	running  bool
	result   *orchestration.CalculationResult
	err      error
	exitCode int
	hex      bool
	cpu      *RingBuffer
	lastCPU  float64
	width    int
}

// NewModel creates a dashboard comparing multipliers on a*b.
func NewModel(ctx context.Context, multipliers []orchestration.Multiplier, a, b bigint.Int, hex bool) Model {
	m := Model{
		keys:        DefaultKeyMap(),
		ref:         &programRef{},
		parent:      ctx,
		ctl:         &runControl{cancel: func() {}},
		multipliers: multipliers,
		a:           a,
		b:           b,
		hex:         hex,
		cpu:         NewRingBuffer(cpuSamples),
		exitCode:    apperrors.ExitSuccess,
	}
	m.reset()
	return m
}

// reset prepares a new run generation. Messages of older generations are
// ignored.
func (m *Model) reset() {
	m.gen++
	m.rows = make([]row, len(m.multipliers))
	for i, mul := range m.multipliers {
		m.rows[i] = row{name: mul.Name()}
	}
	m.start = time.Now()
	m.end = time.Time{}
	m.running = true
	m.result = nil
	m.err = nil
	m.exitCode = apperrors.ExitSuccess
}

// Init starts the first run and the sampling ticker.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.runCmd())
}

// runCmd multiplies with every strategy and reports the verdict.
func (m Model) runCmd() tea.Cmd {
	m.ctl.cancel()
	ctx, cancel := context.WithCancel(m.parent)
	m.ctl.cancel = cancel
	ref, gen := m.ref, m.gen
	multipliers, a, b := m.multipliers, m.a, m.b
	return func() tea.Msg {
		results := orchestration.ExecuteMultiplications(ctx, multipliers, a, b, &progressReporter{ref: ref, gen: gen}, io.Discard)
		var p capturePresenter
		code := orchestration.AnalyzeComparisonResults(results, orchestration.PresentationOptions{}, &p, &p, io.Discard)
		if code == apperrors.ExitErrorMismatch {
			p.err = errors.New("strategies disagree on the product")
		}
		return runDoneMsg{exitCode: code, result: p.result, err: p.err, gen: gen}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func sampleSysCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		s, _ := sysmon.Sample(ctx)
		return sysStatsMsg(s)
	}
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctl.cancel()
			if m.running {
				m.exitCode = apperrors.ExitErrorCanceled
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.Rerun):
			if m.running {
				return m, nil
			}
			m.reset()
			return m, m.runCmd()
		case key.Matches(msg, m.keys.Hex):
			m.hex = !m.hex
		}
	case tickMsg:
		return m, tea.Batch(tickCmd(), sampleSysCmd(m.parent))
	case sysStatsMsg:
		m.lastCPU = msg.CPUPercent
		m.cpu.Push(msg.CPUPercent)
	case rowDoneMsg:
		if msg.gen == m.gen && msg.update.CalculatorIndex >= 0 && msg.update.CalculatorIndex < len(m.rows) {
			r := &m.rows[msg.update.CalculatorIndex]
			r.done, r.duration, r.err = true, msg.update.Duration, msg.update.Err
		}
	case runDoneMsg:
		if msg.gen == m.gen {
			m.running = false
			m.end = time.Now()
			m.exitCode, m.result, m.err = msg.exitCode, msg.result, msg.err
		}
	}
	return m, nil
}

// ExitCode returns the exit code of the last finished run.
func (m Model) ExitCode() int { return m.exitCode }

// View renders the dashboard.
func (m Model) View() string {
	elapsed := time.Since(m.start)
	if !m.end.IsZero() {
		elapsed = m.end.Sub(m.start)
	}
	header := titleStyle.Render("algebra · multiplication") + dimStyle.Render(fmt.Sprintf(
		"  %d × %d bits  elapsed %s", m.a.BitLen(), m.b.BitLen(), format.FormatExecutionDuration(elapsed)))

	var body strings.Builder
	for _, r := range m.rows {
		fmt.Fprintf(&body, "%-12s %s\n", r.name, renderStatus(r))
	}
	body.WriteString("\n")
	body.WriteString(m.renderVerdict())

	cpu := dimStyle.Render(fmt.Sprintf("CPU %5.1f%% ", m.lastCPU)) + runningStyle.Render(RenderSparkline(m.cpu.Slice()))

	var help []string
	for _, b := range m.keys.ShortHelp() {
		help = append(help, keyStyle.Render(b.Help().Key)+" "+dimStyle.Render(b.Help().Desc))
	}

	panel := panelStyle
	if m.width > 4 {
		panel = panel.Width(m.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		panel.Render(strings.TrimRight(body.String(), "\n")),
		cpu,
		strings.Join(help, "  "),
	)
}

func renderStatus(r row) string {
	switch {
	case !r.done:
		return runningStyle.Render("running…")
	case r.err != nil:
		return errorStyle.Render("failed: " + r.err.Error())
	}
	return successStyle.Render(format.FormatExecutionDuration(r.duration))
}

func (m Model) renderVerdict() string {
	switch {
	case m.running:
		return dimStyle.Render("waiting for all strategies")
	case m.err != nil:
		return errorStyle.Render("Error: " + m.err.Error())
	case m.result == nil:
		return errorStyle.Render("no result")
	}
	var text string
	if m.hex {
		text = fmt.Sprintf("%#x", m.result.Result)
	} else {
		text = m.result.Result.String()
	}
	text, _ = format.Truncate(text, 2*productEdges+3, productEdges)
	return successStyle.Render("consistent") + dimStyle.Render(" fastest "+m.result.Name) + "\n" +
		"a*b = " + valueStyle.Render(text)
}

// Run shows the dashboard until the user quits and returns the exit code
// of the last run.
func Run(ctx context.Context, multipliers []orchestration.Multiplier, a, b bigint.Int, hex bool) int {
	initStyles()

	model := NewModel(ctx, multipliers, a, b, hex)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.ref.SetProgram(p)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.ctl.cancel()
		if err != nil && m.exitCode == apperrors.ExitSuccess {
			return apperrors.ExitCodeFor(err)
		}
		return m.exitCode
	}
	if err != nil {
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}
