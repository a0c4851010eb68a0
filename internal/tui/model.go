// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/kavirubc
// Created: 2026-08-22
// Last Modified: 2026-08-30

// Package tui renders check pipeline progress and the final verdict for
// interactive runs.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("#2b7de9")
	subtleColor  = lipgloss.Color("#626262")
	passColor    = lipgloss.Color("#04B575")
	failColor    = lipgloss.Color("#D08700")
	errorColor   = lipgloss.Color("#FF0000")

	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			MarginBottom(1)

	stepStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	activeStepStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	doneStepStyle = lipgloss.NewStyle().
			Foreground(passColor)

	errorStepStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	subtleStyle = lipgloss.NewStyle().Foreground(subtleColor)
	passStyle   = lipgloss.NewStyle().Foreground(passColor).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(failColor).Bold(true)
)

// PipelineStatusMsg indicates a status update from one pipeline step.
type PipelineStatusMsg struct {
	Step    string
	Status  string // "started", "success", "error", "skipped"
	Message string
}

// ResultMsg carries the outcome of a finished check run. A non-empty Err
// means the run failed; a skipped run carries the SkipReason; otherwise the
// verdict fields describe what the bot decided and wrote.
type ResultMsg struct {
	Err         string
	Skipped     bool
	SkipReason  string
	Subtype     string
	Outcome     string
	Unsatisfied []string // labels of failed rules, reporting only
	Posted      bool
	Updated     bool
	DryRun      bool
}

// statusClosedMsg signals that the status channel was closed; the final
// ResultMsg may still be in flight, so the model keeps waiting for it.
type statusClosedMsg struct{}

// Model drives the interactive check view: a step list with live status
// while the pipeline runs, then the verdict summary.
type Model struct {
	spinner    spinner.Model
	steps      []string
	current    int
	status     map[string]string // step -> status
	result     *ResultMsg
	quitting   bool
	statusChan <-chan PipelineStatusMsg
}

// NewModel creates a model for the given pipeline step names.
func NewModel(steps []string, statusChan <-chan PipelineStatusMsg) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(primaryColor)

	return Model{
		spinner:    s,
		steps:      steps,
		status:     make(map[string]string),
		statusChan: statusChan,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForActivity(),
	)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case PipelineStatusMsg:
		m.status[msg.Step] = msg.Status
		for i, s := range m.steps {
			if s == msg.Step {
				m.current = i
				break
			}
		}
		return m, m.waitForActivity()

	case statusClosedMsg:
		// No more step updates; the pipeline sends its ResultMsg directly.
		return m, nil

	case ResultMsg:
		m.result = &msg
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m Model) waitForActivity() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg, ok := <-m.statusChan:
			if !ok {
				return statusClosedMsg{}
			}
			return msg
		case <-time.After(30 * time.Second):
			return ResultMsg{Err: "timed out waiting for pipeline activity"}
		}
	}
}

// View renders the step list while running and the verdict once done. The
// final render is left on screen after quit.
func (m Model) View() string {
	if m.quitting {
		if m.result == nil {
			return ""
		}
		return m.verdictView()
	}

	var s strings.Builder

	s.WriteString(titleStyle.Render("Templi-Bot Submission Check"))
	s.WriteString("\n\n")

	for i, step := range m.steps {
		status := m.status[step]

		prefix := "  "
		style := stepStyle

		if i == m.current {
			prefix = m.spinner.View() + " "
			style = activeStepStyle
		}

		switch status {
		case "success":
			prefix = "✓ "
			style = doneStepStyle
		case "error":
			prefix = "✗ "
			style = errorStepStyle
		case "skipped":
			prefix = "○ "
			style = stepStyle.Faint(true)
		}

		s.WriteString(style.Render(fmt.Sprintf("%s%s", prefix, step)))
		s.WriteString("\n")
	}

	s.WriteString(subtleStyle.Render("\nPress q to quit\n"))

	return s.String()
}

// verdictView renders the final summary.
func (m Model) verdictView() string {
	var s strings.Builder
	s.WriteString(titleStyle.Render("Templi-Bot Submission Check"))
	s.WriteString("\n")

	for _, line := range summaryLines(*m.result) {
		style := subtleStyle
		switch {
		case strings.HasPrefix(line, "error:"):
			style = errorStepStyle
		case strings.HasSuffix(line, "pass"):
			style = passStyle
		case strings.HasPrefix(line, "outcome:"):
			style = failStyle
		}
		s.WriteString(style.Render(line))
		s.WriteString("\n")
	}
	return s.String()
}

// summaryLines flattens a result into plain report lines, one fact each.
// Kept free of styling so the summary is testable as text.
func summaryLines(res ResultMsg) []string {
	if res.Err != "" {
		return []string{"error: " + res.Err}
	}
	if res.Skipped {
		return []string{"skipped: " + res.SkipReason}
	}

	lines := []string{
		"template: " + res.Subtype,
		"outcome: " + res.Outcome,
	}
	for _, label := range res.Unsatisfied {
		lines = append(lines, "  unsatisfied: "+label)
	}

	switch {
	case res.DryRun:
		lines = append(lines, "dry run, nothing written")
	case res.Updated:
		lines = append(lines, "status comment updated in place")
	case res.Posted:
		lines = append(lines, "status comment posted")
	}
	return lines
}
