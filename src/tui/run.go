package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"unterm-agent/src/ingest"
	"unterm-agent/src/pipeline"
	"unterm-agent/src/report"
)

// runDoneMsg carries the pipeline result back into the UI loop.
type runDoneMsg struct {
	run report.Run
	err error
}

// RunModel displays cleaning progress and, on completion, a summary
// with a preview of the output file.
type RunModel struct {
	progress ProgressModel
	styles   *StyleConfig
	input    string
	run      report.Run
	preview  string
	err      error
	done     bool
}

func newRunModel(input string) RunModel {
	return RunModel{
		progress: NewProgressModel(),
		styles:   DefaultStyles(),
		input:    input,
	}
}

func (m RunModel) Init() tea.Cmd {
	return SpinnerTick()
}

func (m RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.err = fmt.Errorf("interrupted")
			return m, tea.Quit
		}
	case runDoneMsg:
		m.done = true
		m.run = msg.run
		m.err = msg.err
		if m.err == nil {
			m.preview = m.loadPreview()
		}
		m.progress, _ = m.progress.Update(ProgressMsg{Stage: "complete"})
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.progress, cmd = m.progress.Update(msg)
	return m, cmd
}

func (m RunModel) View() string {
	if !m.done {
		return "\n" + m.progress.View() + "\n"
	}
	if m.err != nil {
		return m.styles.HelpStyle().Foreground(m.styles.ErrorRed).
			Render("✗ "+m.err.Error()) + "\n"
	}

	summary := report.Format(m.run)
	out := m.styles.TitleStyle().Render("✓ Cleaning complete") + "\n\n" + summary
	if m.preview != "" {
		out += "\n" + m.styles.HelpStyle().Render("Output preview:") + "\n"
		out += m.styles.PreviewStyle().Render(m.preview) + "\n"
	}
	return out
}

// loadPreview reads the head of the output file for display.
func (m RunModel) loadPreview() string {
	reader, err := ingest.Open(m.run.OutputPath)
	if err != nil {
		return ""
	}
	defer reader.Close()

	var lines []string
	for reader.Scan() && len(lines) <= PreviewLines {
		lines = append(lines, reader.Line())
	}
	return RenderPreview(lines, 76)
}

// RunClean cleans the input file with a live progress display and
// returns the run summary. The pipeline runs in a goroutine while
// the UI loop renders its progress.
func RunClean(inputPath string, mask bool) (report.Run, error) {
	p := tea.NewProgram(newRunModel(inputPath))

	go func() {
		run, err := pipeline.RunLocal(inputPath, pipeline.LocalOptions{
			Mask: mask,
			Progress: func(lines int) {
				p.Send(ProgressMsg{Stage: "Cleaning", Current: lines})
			},
		})
		p.Send(runDoneMsg{run: run, err: err})
	}()

	final, err := p.Run()
	if err != nil {
		return report.Run{}, fmt.Errorf("failed to run progress display: %w", err)
	}

	m, ok := final.(RunModel)
	if !ok {
		return report.Run{}, fmt.Errorf("unexpected final model type")
	}
	return m.run, m.err
}
