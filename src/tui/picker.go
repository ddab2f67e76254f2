package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrPickerCancelled is returned when the user quits the picker
// without selecting a file.
var ErrPickerCancelled = errors.New("no file selected")

type clearErrorMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}

// PickerModel is a filesystem browser restricted to text files.
type PickerModel struct {
	filepicker   filepicker.Model
	styles       *StyleConfig
	selectedFile string
	quitting     bool
	err          error
}

// NewPickerModel creates a picker rooted at startDir that only
// allows selecting .txt files.
func NewPickerModel(startDir string) PickerModel {
	fp := filepicker.New()
	fp.AllowedTypes = []string{".txt"}
	fp.CurrentDirectory = startDir
	fp.Height = 15
	return PickerModel{
		filepicker: fp,
		styles:     DefaultStyles(),
	}
}

func (m PickerModel) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	case clearErrorMsg:
		m.err = nil
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
		m.selectedFile = path
		return m, tea.Quit
	}

	if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
		m.err = fmt.Errorf("%s is not a .txt file", path)
		m.selectedFile = ""
		return m, tea.Batch(cmd, clearErrorAfter(2*time.Second))
	}

	return m, cmd
}

func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	title := m.styles.TitleStyle().Render("Select a .txt file to clean")
	var status string
	if m.err != nil {
		status = m.styles.HelpStyle().Foreground(m.styles.ErrorRed).Render(m.err.Error())
	} else {
		status = m.styles.HelpStyle().Render("enter: select | q: quit")
	}
	return title + "\n\n" + m.filepicker.View() + "\n" + status + "\n"
}

// SelectedFile returns the chosen path, or "" if nothing was selected.
func (m PickerModel) SelectedFile() string {
	return m.selectedFile
}

// PickFile runs the picker as a full-screen program and returns
// the selected path. ErrPickerCancelled is returned when the user
// quits without choosing a file.
func PickFile() (string, error) {
	startDir, err := os.Getwd()
	if err != nil {
		startDir = "."
	}

	final, err := tea.NewProgram(NewPickerModel(startDir)).Run()
	if err != nil {
		return "", fmt.Errorf("failed to run file picker: %w", err)
	}

	m, ok := final.(PickerModel)
	if !ok || m.selectedFile == "" {
		return "", ErrPickerCancelled
	}
	return m.selectedFile, nil
}
