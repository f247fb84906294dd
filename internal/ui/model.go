package ui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/pipeline"
	"github.com/ashutoshjangde-ui/Masterfile-Automation/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type state int

const (
	statePickMaster state = iota
	statePickOnboarding
	statePickAlias
	stateHeaderMode
	stateHeaderRow
	stateProcessing
	stateComplete
	stateError
)

type Model struct {
	state      state
	filepicker filepicker.Model
	rowInput   textinput.Model
	inputHint  string

	opts       types.RunOptions
	headerMode int // 0 auto-detect, 1 pick a row

	result *types.RunResult
	err    error

	width  int
	height int

	progress     progress.Model
	progressChan chan float64
	resultChan   chan runResultMsg
}

type runResultMsg struct {
	result *types.RunResult
	err    error
}

type progressMsg float64

type waitForProgressMsg struct{}

func InitialModel() Model {
	prog := progress.New(progress.WithGradient("#4ECDC4", "#2ED573"))

	ti := textinput.New()
	ti.Placeholder = "1"
	ti.CharLimit = 6
	ti.Width = 10

	m := Model{
		state:    statePickMaster,
		rowInput: ti,
		progress: prog,
	}
	m.filepicker = newPicker(".xlsx")
	return m
}

// newPicker builds a fresh picker so each input starts with a clean
// selection state.
func newPicker(allowed ...string) filepicker.Model {
	fp := filepicker.New()
	fp.AllowedTypes = allowed
	fp.CurrentDirectory, _ = os.Getwd()

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4"))
	fp.Styles.Symlink = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ED573"))
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ED573"))
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ECDC4")).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	return fp
}

func (m Model) Init() tea.Cmd {
	return m.filepicker.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := msg.Height - 14
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case statePickMaster, statePickOnboarding, statePickAlias:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			}

		case stateHeaderMode:
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "up", "k", "down", "j":
				m.headerMode = 1 - m.headerMode
			case "enter":
				if m.headerMode == 0 {
					m.opts.HeaderRow = 0
					return m.startRun()
				}
				m.state = stateHeaderRow
				m.inputHint = ""
				m.rowInput.SetValue("")
				return m, m.rowInput.Focus()
			}

		case stateHeaderRow:
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc":
				m.state = stateHeaderMode
				m.rowInput.Blur()
				return m, nil
			case "enter":
				row, err := strconv.Atoi(strings.TrimSpace(m.rowInput.Value()))
				if err != nil || row < 1 {
					m.inputHint = "Enter a 1-based row number"
					return m, nil
				}
				m.opts.HeaderRow = row
				m.rowInput.Blur()
				return m.startRun()
			}

			var cmd tea.Cmd
			m.rowInput, cmd = m.rowInput.Update(msg)
			return m, cmd

		case stateComplete, stateError:
			switch msg.String() {
			case "ctrl+c", "q", "enter", "esc":
				return m, tea.Quit
			}
		}

	case runResultMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = stateError
			return m, nil
		}
		m.result = msg.result
		m.state = stateComplete
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd

	case progressMsg:
		if m.state == stateProcessing {
			cmd := m.progress.SetPercent(float64(msg))
			return m, tea.Batch(cmd, waitForProgress(m.progressChan, m.resultChan))
		}
		return m, nil

	case waitForProgressMsg:
		return m, waitForProgress(m.progressChan, m.resultChan)
	}

	// Handle filepicker updates for whichever input is being chosen.
	switch m.state {
	case statePickMaster, statePickOnboarding, statePickAlias:
		var cmd tea.Cmd
		m.filepicker, cmd = m.filepicker.Update(msg)

		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			return m.fileChosen(path)
		}
		return m, cmd
	}

	return m, nil
}

func (m Model) fileChosen(path string) (Model, tea.Cmd) {
	switch m.state {
	case statePickMaster:
		m.opts.MasterPath = path
		m.state = statePickOnboarding
		m.filepicker = newPicker(".xlsx")
	case statePickOnboarding:
		m.opts.OnboardingPath = path
		m.state = statePickAlias
		m.filepicker = newPicker(".json")
	case statePickAlias:
		m.opts.AliasPath = path
		m.state = stateHeaderMode
		return m, nil
	}
	return m, m.filepicker.Init()
}

func (m Model) startRun() (Model, tea.Cmd) {
	m.state = stateProcessing
	m.progressChan = make(chan float64, 100)
	m.resultChan = make(chan runResultMsg, 1)

	opts := m.opts
	progressChan := m.progressChan
	resultChan := m.resultChan

	cmd := tea.Batch(
		func() tea.Msg {
			go func() {
				result, err := pipeline.Run(opts, progressChan)
				resultChan <- runResultMsg{result: result, err: err}
				close(progressChan)
				close(resultChan)
			}()
			return waitForProgressMsg{}
		},
		waitForProgress(m.progressChan, m.resultChan),
		m.progress.Init(),
	)

	return m, cmd
}

func waitForProgress(progressChan chan float64, resultChan chan runResultMsg) tea.Cmd {
	return func() tea.Msg {
		if progressChan == nil {
			return nil
		}

		p, ok := <-progressChan
		if !ok {
			res, ok := <-resultChan
			if ok {
				return res
			}
			return nil
		}

		return progressMsg(p)
	}
}

func (m Model) View() string {
	switch m.state {
	case statePickMaster:
		return m.viewPicker("Masterfile Template (.xlsx)", "Row 1 labels, row 2 keys; data is written from row 3 with styles preserved")
	case statePickOnboarding:
		return m.viewPicker("Onboarding Sheet (.xlsx)", "Header row position can be auto-detected in the next step")
	case statePickAlias:
		return m.viewPicker("Mapping JSON", `Keys are master labels, values list onboarding aliases in priority order`)
	case stateHeaderMode:
		return m.viewHeaderMode()
	case stateHeaderRow:
		return m.viewHeaderRow()
	case stateProcessing:
		return m.viewProcessing()
	case stateComplete:
		return m.viewComplete()
	case stateError:
		return m.viewError()
	}
	return ""
}

func (m Model) viewPicker(title, hint string) string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📦 Masterfile Automation"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render(fmt.Sprintf("Select the %s", title)))
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(hint))
	s.WriteString("\n\n")
	s.WriteString(m.filepicker.View())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press q to quit"))

	return s.String()
}

func (m Model) viewHeaderMode() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🧭 Header Row for Onboarding"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("How should the header row be found?"))
	s.WriteString("\n\n")

	options := []string{"Auto-detect", "Pick a row number"}
	for i, opt := range options {
		cursor := " "
		line := fmt.Sprintf("%s %s", cursor, opt)
		if m.headerMode == i {
			line = SelectedStyle.Render(fmt.Sprintf("> %s", opt))
		} else {
			line = UnselectedStyle.Render(line)
		}
		s.WriteString(line)
		s.WriteString("\n")
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("↑/↓: choose • enter: continue • q: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewHeaderRow() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🧭 Header Row Number"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("1-based row holding the onboarding headers"))
	s.WriteString("\n\n")
	s.WriteString(m.rowInput.View())
	s.WriteString("\n")
	if m.inputHint != "" {
		s.WriteString(WarnStyle.Render(m.inputHint))
		s.WriteString("\n")
	}
	s.WriteString("\n")
	s.WriteString(HelpStyle.Render("enter: generate • esc: back • ctrl+c: quit"))

	return BoxStyle.Render(s.String())
}

func (m Model) viewProcessing() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("🚀 Generating Final Masterfile..."))
	s.WriteString("\n\n")
	s.WriteString("Resolving headers and writing mapped rows...")
	s.WriteString("\n\n")
	s.WriteString(m.progress.View())

	return BoxStyle.Render(s.String())
}

func (m Model) viewComplete() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("✓ Final Masterfile Ready"))
	s.WriteString("\n\n")

	maxPathLen := m.width - 20
	if maxPathLen < 30 {
		maxPathLen = 30
	}
	outputPath := m.result.OutputFile
	if len(outputPath) > maxPathLen {
		outputPath = "..." + outputPath[len(outputPath)-maxPathLen+3:]
	}

	s.WriteString(SuccessStyle.Render(fmt.Sprintf("Output: %s\n", outputPath)))
	s.WriteString("\n")
	s.WriteString(fmt.Sprintf("Header row used: %d (columns kept after cleaning: %d)\n",
		m.result.HeaderRow, m.result.KeptColumns))
	s.WriteString(fmt.Sprintf("Rows written: %d\n", m.result.RowsWritten))
	s.WriteString("\n")

	s.WriteString(SubtitleStyle.Render("Mapping Summary (Master ← Onboarding)"))
	s.WriteString("\n")
	for _, line := range m.reportLines() {
		s.WriteString(m.styleReportLine(line))
		s.WriteString("\n")
	}

	if len(m.result.Unmatched) > 0 {
		s.WriteString("\n")
		s.WriteString(WarnStyle.Render(fmt.Sprintf(
			"%d master column(s) had no match and were left blank: %s",
			len(m.result.Unmatched), strings.Join(m.result.Unmatched, ", "))))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}

// reportLines truncates the mapping report to the available height so the
// summary never scrolls the box off screen.
func (m Model) reportLines() []string {
	lines := m.result.Report
	avail := m.height - 16
	if avail < 3 {
		avail = 3
	}
	if len(lines) <= avail {
		return lines
	}
	clipped := append([]string(nil), lines[:avail]...)
	return append(clipped, fmt.Sprintf("… %d more", len(lines)-avail))
}

func (m Model) styleReportLine(line string) string {
	switch {
	case strings.HasPrefix(line, "✓"):
		return SuccessStyle.Render(line)
	case strings.HasPrefix(line, "✗"):
		return ErrorStyle.Render(line)
	case strings.HasPrefix(line, "◦"):
		return WarnStyle.Render(line)
	}
	return line
}

func (m Model) viewError() string {
	var s strings.Builder

	s.WriteString(ErrorStyle.Render("✗ Error"))
	s.WriteString("\n\n")
	s.WriteString(m.err.Error())
	s.WriteString("\n\n")
	s.WriteString(HelpStyle.Render("Press any key to exit"))

	return BoxStyle.Render(s.String())
}
