// Package ui renders batch progress in the terminal with Bubble Tea.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"bitnum/internal/batch"
)

// maxRows caps the item list; the rest is summarised in one line.
const maxRows = 12

type progressModel struct {
	title    string
	events   <-chan batch.Event
	spinner  spinner.Model
	prog     progress.Model
	items    []itemRow
	index    map[string]int
	finished int
	failed   int
	width    int
	done     bool

	// interrupted is set when the user quits before the run finishes.
	interrupted bool
}

type itemRow struct {
	label  string
	expr   string
	status string
	stage  batch.Stage
}

type eventMsg batch.Event
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that follows batch events
// until the channel is closed.
func NewProgressModel(title string, items []batch.Item, events <-chan batch.Event) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	rows := make([]itemRow, 0, len(items))
	index := make(map[string]int, len(items))
	for i, it := range items {
		rows = append(rows, itemRow{label: it.Label, expr: it.Expr, status: "queued"})
		index[it.Label] = i
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		items:   rows,
		index:   index,
		width:   80,
	}
}

// Interrupted reports whether a model returned by NewProgressModel was
// closed by the user before its event stream ended.
func Interrupted(m tea.Model) bool {
	pm, ok := m.(*progressModel)
	return ok && pm.interrupted && !pm.done
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(batch.Event(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "q" {
			m.interrupted = true
			return m, tea.Quit
		}
		return m, nil
	case progress.FrameMsg:
		pm, cmd := m.prog.Update(msg)
		m.prog = pm.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.items) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := fmt.Sprintf("%s %d/%d", m.title, m.finished, len(m.items))
	if m.failed > 0 {
		header += fmt.Sprintf(", %d failed", m.failed)
	}
	if m.done {
		header = "done: " + header
	} else {
		header = m.spinner.View() + " " + header
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	const statusWidth = 10
	labelWidth := 0
	for _, it := range m.items {
		labelWidth = max(labelWidth, runewidth.StringWidth(it.label))
	}
	labelWidth = min(labelWidth, 24)
	exprWidth := max(m.width-statusWidth-labelWidth-6, 16)

	for _, it := range m.visibleRows() {
		status := styleStatus(it.status).Render(fmt.Sprintf("%*s", statusWidth, it.status))
		label := runewidth.FillRight(truncate(it.label, labelWidth), labelWidth)
		fmt.Fprintf(&b, "  %s %s %s\n", status, label, truncate(it.expr, exprWidth))
	}
	if hidden := len(m.items) - maxRows; hidden > 0 {
		fmt.Fprintf(&b, "  %*s … %d more\n", statusWidth, "", hidden)
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

// visibleRows prefers items still in flight, then the most recent ones.
func (m *progressModel) visibleRows() []itemRow {
	if len(m.items) <= maxRows {
		return m.items
	}
	rows := make([]itemRow, 0, maxRows)
	for _, it := range m.items {
		if it.status != "queued" && it.status != "done" && it.status != "error" {
			rows = append(rows, it)
			if len(rows) == maxRows {
				return rows
			}
		}
	}
	for _, it := range m.items {
		if it.status == "error" {
			rows = append(rows, it)
			if len(rows) == maxRows {
				return rows
			}
		}
	}
	for _, it := range m.items {
		if it.status == "queued" {
			rows = append(rows, it)
			if len(rows) == maxRows {
				break
			}
		}
	}
	return rows
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev batch.Event) tea.Cmd {
	if ev.Item == "" {
		return nil
	}
	idx, ok := m.index[ev.Item]
	if !ok {
		return nil
	}
	label := statusLabel(ev.Stage, ev.Status)
	if label == "" {
		return nil
	}
	prev := m.items[idx].status
	m.items[idx].status = label
	m.items[idx].stage = ev.Stage
	if (label == "done" || label == "error") && prev != "done" && prev != "error" {
		m.finished++
		if label == "error" {
			m.failed++
		}
	}
	return m.prog.SetPercent(m.percent())
}

func (m *progressModel) percent() float64 {
	if len(m.items) == 0 {
		return 0
	}
	total := 0.0
	for _, it := range m.items {
		if it.status == "done" || it.status == "error" {
			total += 1.0
		} else if it.status != "queued" {
			total += progressFromStage(it.stage)
		}
	}
	return total / float64(len(m.items))
}

func progressFromStage(stage batch.Stage) float64 {
	switch stage {
	case batch.StageParse:
		return 0.1
	case batch.StageEval:
		return 0.3
	case batch.StageFormat:
		return 0.8
	default:
		return 0.0
	}
}

func statusLabel(stage batch.Stage, status batch.Status) string {
	switch status {
	case batch.StatusQueued:
		return "queued"
	case batch.StatusDone:
		return "done"
	case batch.StatusError:
		return "error"
	case batch.StatusWorking:
		return stageLabel(stage)
	default:
		return ""
	}
}

func stageLabel(stage batch.Stage) string {
	switch stage {
	case batch.StageParse:
		return "parsing"
	case batch.StageEval:
		return "computing"
	case batch.StageFormat:
		return "printing"
	default:
		return ""
	}
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "error":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	case "parsing", "computing", "printing":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// the tail counts toward width
	return runewidth.Truncate(value, width, "...")
}
