package ui

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/nconklindev/exclar/internal/converter"
	"github.com/nconklindev/exclar/internal/types"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConverter records requests and replays a fixed outcome.
type fakeConverter struct {
	mu       sync.Mutex
	requests []converter.Request
	err      error
}

func (f *fakeConverter) Convert(ctx context.Context, req converter.Request, stages chan<- converter.Stage) (*types.ConversionResult, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	stages <- converter.StageValidating
	if f.err != nil {
		stages <- converter.StageFailed
		return nil, f.err
	}
	stages <- converter.StageDone
	return &types.ConversionResult{
		ID:             req.ID,
		InputFile:      req.InputFile,
		OutputFile:     "/out/" + converter.OutputName,
		Exceptions:     1,
		Clarifications: 2,
	}, nil
}

func newTestModel(conv Converter) Model {
	return InitialModel(conv, Options{ResetDelay: time.Millisecond, StartDir: "."})
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

// runUntilComplete executes commands until the conversion result has been
// handled and returns the commands that were still pending.
func runUntilComplete(t *testing.T, m Model, cmd tea.Cmd) (Model, tea.Cmd) {
	t.Helper()

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case stageMsg:
			var next tea.Cmd
			m, next = update(t, m, msg)
			queue = append(queue, next)
		case conversionCompleteMsg:
			return update(t, m, msg)
		}
	}

	t.Fatal("conversion never completed")
	return m, nil
}

func TestInitialModel(t *testing.T) {
	m := newTestModel(&fakeConverter{})

	assert.Equal(t, modeDrop, m.mode)
	assert.Equal(t, "Drag and drop Excel file here", m.status)
	assert.True(t, m.input.Focused())
	assert.Contains(t, m.View(), "Drag and drop Excel file here")
}

func TestDrop_Success(t *testing.T) {
	conv := &fakeConverter{}
	m := newTestModel(conv)

	m.input.SetValue(`'/tmp/Open Items.xlsx'`)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.True(t, m.processing)
	assert.Equal(t, "📄 Processing Excel...", m.status)
	assert.NotEmpty(t, m.currentID)
	assert.Empty(t, m.input.Value())

	m, pending := runUntilComplete(t, m, cmd)

	require.Len(t, conv.requests, 1)
	assert.Equal(t, "/tmp/Open Items.xlsx", conv.requests[0].InputFile)
	assert.Equal(t, m.currentID, conv.requests[0].ID)

	assert.False(t, m.processing)
	assert.Equal(t, converter.StageDone, m.stage)
	assert.Equal(t, "✅ Word document created!", m.status)
	require.NotNil(t, m.result)
	assert.Contains(t, m.View(), "Clarifications: 2")

	// The pending commands include the status reset tick.
	var reset *resetStatusMsg
	queue := []tea.Cmd{pending}
	for len(queue) > 0 && reset == nil {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case resetStatusMsg:
			reset = &msg
		case progress.FrameMsg:
		}
	}
	require.NotNil(t, reset)

	m, _ = update(t, m, *reset)
	assert.Equal(t, "Drag and drop Excel file here", m.status)
}

func TestDrop_Failures(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status string
	}{
		{"Invalid file", converter.ErrInvalidFileType, "❌ Please upload a valid .xlsx file."},
		{"Missing sheet", &converter.SheetNotFoundError{Sheet: converter.SheetName}, "❌ Sheet 'Open Items List' not found."},
		{"Processing", &converter.ProcessingError{Stage: converter.StageAssembling, Err: context.Canceled}, "❌ Error processing Excel."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeConverter{err: tt.err})

			m.input.SetValue("report.pdf")
			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
			m, _ = runUntilComplete(t, m, cmd)

			assert.False(t, m.processing)
			assert.Equal(t, converter.StageFailed, m.stage)
			assert.Equal(t, tt.status, m.status)
			assert.Nil(t, m.result)
			assert.ErrorIs(t, m.err, tt.err)
		})
	}
}

func TestDrop_EmptyInputIgnored(t *testing.T) {
	conv := &fakeConverter{}
	m := newTestModel(conv)

	m.input.SetValue("   ")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.processing)
	assert.Empty(t, conv.requests)
}

func TestStaleConversionCannotWriteStatus(t *testing.T) {
	m := newTestModel(&fakeConverter{})
	m.currentID = "current"
	m.processing = true
	m.status = converter.StatusProcessing

	m, _ = update(t, m, conversionCompleteMsg{id: "old", err: converter.ErrInvalidFileType})
	assert.Equal(t, converter.StatusProcessing, m.status)
	assert.True(t, m.processing)

	m, _ = update(t, m, resetStatusMsg{id: "old"})
	assert.Equal(t, converter.StatusProcessing, m.status)
}

func TestResetIgnoredWhileProcessing(t *testing.T) {
	m := newTestModel(&fakeConverter{})
	m.currentID = "current"
	m.processing = true
	m.status = converter.StatusProcessing

	m, _ = update(t, m, resetStatusMsg{id: "current"})
	assert.Equal(t, converter.StatusProcessing, m.status)
}

func TestToggleMode(t *testing.T) {
	m := newTestModel(&fakeConverter{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeBrowse, m.mode)
	assert.False(t, m.input.Focused())
	assert.Contains(t, m.View(), "tab: drop zone")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, modeDrop, m.mode)
	assert.True(t, m.input.Focused())
}

func TestQuitKeys(t *testing.T) {
	tests := []struct {
		name   string
		browse bool
		key    tea.KeyMsg
	}{
		{"Ctrl+C in drop zone", false, tea.KeyMsg{Type: tea.KeyCtrlC}},
		{"Esc in drop zone", false, tea.KeyMsg{Type: tea.KeyEsc}},
		{"q while browsing", true, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(&fakeConverter{})
			if tt.browse {
				m = m.toggleMode()
			}
			_, cmd := update(t, m, tt.key)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}
}

func TestTypingQInDropZoneDoesNotQuit(t *testing.T) {
	m := newTestModel(&fakeConverter{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "q", m.input.Value())
}
