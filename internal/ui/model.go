package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nconklindev/exclar/internal/converter"
	"github.com/nconklindev/exclar/internal/types"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type mode int

const (
	modeDrop mode = iota
	modeBrowse
)

// Converter is the part of converter.Converter the UI drives.
type Converter interface {
	Convert(ctx context.Context, req converter.Request, stages chan<- converter.Stage) (*types.ConversionResult, error)
}

type Options struct {
	// ResetDelay is how long the success status stays before the prompt
	// returns.
	ResetDelay time.Duration
	StartDir   string
	// Logger defaults to a no-op logger.
	Logger *zerolog.Logger
}

type Model struct {
	mode       mode
	input      textinput.Model
	filepicker filepicker.Model
	progress   progress.Model
	conv       Converter
	log        zerolog.Logger
	resetDelay time.Duration

	// status is last-write-wins: only the conversion named by currentID
	// may change it.
	status     string
	currentID  string
	processing bool
	stage      converter.Stage
	result     *types.ConversionResult
	err        error
	width      int
	height     int
}

type stageMsg struct {
	id     string
	stage  converter.Stage
	stages chan converter.Stage
	done   chan conversionCompleteMsg
}

type conversionCompleteMsg struct {
	id     string
	result *types.ConversionResult
	err    error
}

type resetStatusMsg struct {
	id string
}

func InitialModel(conv Converter, opts Options) Model {
	ti := textinput.New()
	ti.Placeholder = "drop a .xlsx file here or paste its path"
	ti.Prompt = "📥 "
	ti.CharLimit = 4096
	ti.Width = 56
	ti.Focus()

	fp := filepicker.New()
	fp.AllowedTypes = []string{".xlsx"}
	fp.CurrentDirectory = opts.StartDir
	if fp.CurrentDirectory == "" {
		fp.CurrentDirectory, _ = os.Getwd()
	}

	fp.Styles.Cursor = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.Directory = lipgloss.NewStyle().Foreground(accent)
	fp.Styles.File = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF"))
	fp.Styles.Permission = lipgloss.NewStyle().Foreground(muted)
	fp.Styles.Selected = lipgloss.NewStyle().Foreground(accent).Bold(true)
	fp.Styles.FileSize = lipgloss.NewStyle().Foreground(muted)

	prog := progress.New(progress.WithGradient("#007BFF", "#66B2FF"))

	log := zerolog.Nop()
	if opts.Logger != nil {
		log = *opts.Logger
	}

	return Model{
		mode:       modeDrop,
		input:      ti,
		filepicker: fp,
		progress:   prog,
		conv:       conv,
		log:        log,
		resetDelay: opts.ResetDelay,
		status:     converter.StatusIdle,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.filepicker.Init())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Leave room for the title, drop zone, status and help lines.
		height := msg.Height - 18
		if height < 5 {
			height = 5
		}
		m.filepicker.SetHeight(height)

		if w := msg.Width - 8; w > 20 && w < 80 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			return m.toggleMode(), nil
		}

		if m.mode == modeDrop {
			switch msg.String() {
			case "esc":
				return m, tea.Quit
			case "enter":
				path := cleanDroppedPath(m.input.Value())
				if path == "" {
					return m, nil
				}
				m.input.Reset()
				return m.startConversion(path)
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		if msg.String() == "q" || msg.String() == "esc" {
			return m, tea.Quit
		}

	case stageMsg:
		if msg.id == m.currentID {
			m.stage = msg.stage
			cmd := m.progress.SetPercent(msg.stage.Progress())
			return m, tea.Batch(cmd, waitForStage(msg.id, msg.stages, msg.done))
		}
		return m, waitForStage(msg.id, msg.stages, msg.done)

	case conversionCompleteMsg:
		return m.finishConversion(msg)

	case resetStatusMsg:
		if msg.id == m.currentID && !m.processing {
			m.status = converter.StatusIdle
		}
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	// The file picker loads directories asynchronously, so it sees every
	// non-key message even while the drop zone is shown.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)
	cmds = append(cmds, cmd)

	if m.mode == modeBrowse {
		if didSelect, path := m.filepicker.DidSelectFile(msg); didSelect {
			return m.startConversion(path)
		}
		// Disabled entries still go through validation so the user sees why.
		if didSelect, path := m.filepicker.DidSelectDisabledFile(msg); didSelect {
			return m.startConversion(path)
		}
	}

	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) toggleMode() Model {
	if m.mode == modeDrop {
		m.mode = modeBrowse
		m.input.Blur()
	} else {
		m.mode = modeDrop
		m.input.Focus()
	}
	return m
}

// startConversion runs a conversion in the background. A conversion already
// in flight keeps running but can no longer touch the status.
func (m Model) startConversion(path string) (Model, tea.Cmd) {
	id := uuid.NewString()
	m.currentID = id
	m.processing = true
	m.stage = converter.StageIdle
	m.result = nil
	m.err = nil
	m.status = converter.StatusProcessing

	m.log.Info().Str("conversion_id", id).Str("path", path).Msg("file dropped")

	stages := make(chan converter.Stage, 16)
	done := make(chan conversionCompleteMsg, 1)
	conv := m.conv

	go func() {
		result, err := conv.Convert(context.Background(), converter.Request{ID: id, InputFile: path}, stages)
		done <- conversionCompleteMsg{id: id, result: result, err: err}
		close(stages)
		close(done)
	}()

	reset := m.progress.SetPercent(0)
	return m, tea.Batch(waitForStage(id, stages, done), reset)
}

func waitForStage(id string, stages chan converter.Stage, done chan conversionCompleteMsg) tea.Cmd {
	return func() tea.Msg {
		s, ok := <-stages
		if !ok {
			// Stage channel closed, the result is ready
			res, ok := <-done
			if ok {
				return res
			}
			return nil
		}
		return stageMsg{id: id, stage: s, stages: stages, done: done}
	}
}

func (m Model) finishConversion(msg conversionCompleteMsg) (Model, tea.Cmd) {
	if msg.id != m.currentID {
		m.log.Debug().Str("conversion_id", msg.id).Msg("stale conversion finished")
		return m, nil
	}

	m.processing = false
	m.status = converter.StatusFor(msg.err)

	if msg.err != nil {
		m.err = msg.err
		m.stage = converter.StageFailed
		m.log.Error().Err(msg.err).Str("conversion_id", msg.id).Msg("conversion failed")
		cmd := m.progress.SetPercent(0)
		return m, cmd
	}

	m.result = msg.result
	m.stage = converter.StageDone

	id := msg.id
	fill := m.progress.SetPercent(1)
	return m, tea.Batch(
		fill,
		tea.Tick(m.resetDelay, func(time.Time) tea.Msg {
			return resetStatusMsg{id: id}
		}),
	)
}

func (m Model) View() string {
	var s strings.Builder

	s.WriteString(TitleStyle.Render("📄 exclar - Exceptions & Clarifications"))
	s.WriteString("\n")
	s.WriteString(SubtitleStyle.Render("Open Items List (.xlsx) → " + converter.OutputName))
	s.WriteString("\n")

	switch m.mode {
	case modeDrop:
		s.WriteString(m.viewDropZone())
	case modeBrowse:
		s.WriteString(m.viewBrowse())
	}

	s.WriteString("\n\n")
	s.WriteString(m.viewStatus())

	if m.processing || m.stage == converter.StageDone {
		s.WriteString("\n\n")
		s.WriteString(m.progress.View())
	}

	if m.result != nil {
		s.WriteString("\n\n")
		s.WriteString(m.viewResult())
	}

	s.WriteString("\n")
	s.WriteString(HelpStyle.Render(m.help()))

	return s.String()
}

func (m Model) viewDropZone() string {
	var s strings.Builder
	s.WriteString("Drag & Drop Excel (.xlsx) File")
	s.WriteString("\n\n")
	s.WriteString(m.input.View())
	return DropZoneStyle.Render(s.String())
}

func (m Model) viewBrowse() string {
	return BoxStyle.Render(m.filepicker.View())
}

func (m Model) viewStatus() string {
	switch {
	case m.status == converter.StatusCreated:
		return SuccessStyle.Render(m.status)
	case strings.HasPrefix(m.status, "❌"):
		return ErrorStyle.Render(m.status)
	}
	return StatusStyle.Render(m.status)
}

func (m Model) viewResult() string {
	// Truncate paths if they're too long
	maxPathLen := m.width - 20
	if maxPathLen < 30 {
		maxPathLen = 30
	}

	output := m.result.OutputFile
	if len(output) > maxPathLen {
		output = "..." + output[len(output)-maxPathLen+3:]
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("Input:  %s\n", filepath.Base(m.result.InputFile)))
	s.WriteString(fmt.Sprintf("Output: %s\n", output))
	s.WriteString(fmt.Sprintf("Exceptions: %d • Clarifications: %d", m.result.Exceptions, m.result.Clarifications))
	return s.String()
}

func (m Model) help() string {
	if m.mode == modeBrowse {
		return "enter: convert • tab: drop zone • q: quit"
	}
	return "enter: convert • tab: browse files • esc: quit"
}
