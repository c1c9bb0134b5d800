// ABOUTME: Interactive TUI wizard for configuring the pre-trained vector file.
// ABOUTME: 3-step bubbletea model collecting vector path, dimension, and vocabulary size.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/glovebox/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepVectorsPath Step = iota
	StepDimension
	StepTopN
	StepValidating
	StepDone
	StepFailed
)

// validationResultMsg carries the result of an async validation attempt.
type validationResultMsg struct {
	err error
}

// ValidateFn is the function signature for vector file validation.
type ValidateFn func(ctx context.Context, path string, dim int) error

// cancelHolder shares a cancel function across bubbletea model copies.
// This MUST be stored as a pointer field on SetupModel so that value-receiver
// methods (required by tea.Model) can store the cancel func and have it
// visible to all copies of the model.
type cancelHolder struct {
	cancel context.CancelFunc
}

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step          Step
	inputs        [3]textinput.Model
	spinner       spinner.Model
	validateFn    ValidateFn
	cancelCtx     *cancelHolder
	validationErr error
	quitting      bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewSetupModel creates a new setup wizard model, pre-filling with existing
// config values. dimension 0 means auto-detect.
func NewSetupModel(path string, dimension, topN int) SetupModel {
	pathInput := textinput.New()
	pathInput.Placeholder = "~/vectors/glove.6B.100d.txt"
	pathInput.Focus()
	pathInput.Width = 50
	if path != "" {
		pathInput.SetValue(path)
	}

	dimInput := textinput.New()
	dimInput.Placeholder = "auto"
	dimInput.Width = 50
	if dimension > 0 {
		dimInput.SetValue(strconv.Itoa(dimension))
	}

	topInput := textinput.New()
	topInput.Placeholder = strconv.Itoa(config.DefaultVocabTop)
	topInput.Width = 50
	if topN > 0 {
		topInput.SetValue(strconv.Itoa(topN))
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return SetupModel{
		step:       StepVectorsPath,
		inputs:     [3]textinput.Model{pathInput, dimInput, topInput},
		spinner:    s,
		validateFn: ValidateVectors,
		cancelCtx:  &cancelHolder{},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			if m.cancelCtx.cancel != nil {
				m.cancelCtx.cancel()
			}
			return m, tea.Quit
		}

		switch m.step {
		case StepVectorsPath, StepDimension, StepTopN:
			return m.updateInput(msg)
		case StepFailed:
			return m.updateFailed(msg)
		}

	case validationResultMsg:
		m.cancelCtx.cancel = nil
		if msg.err == nil {
			m.step = StepDone
			return m, tea.Quit
		}
		m.validationErr = msg.err
		m.step = StepFailed
		return m, nil

	case spinner.TickMsg:
		if m.step == StepValidating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		idx := int(m.step)

		// Don't advance on an empty path
		if m.step == StepVectorsPath && m.inputs[0].Value() == "" {
			return m, nil
		}

		// Dimension is optional but must be a positive integer when given
		if m.step == StepDimension {
			if val := m.inputs[1].Value(); val != "" {
				if n, err := strconv.Atoi(val); err != nil || n <= 0 {
					return m, nil
				}
			}
		}

		// Apply the default vocabulary size if empty
		if m.step == StepTopN {
			val := m.inputs[2].Value()
			if val == "" {
				m.inputs[2].SetValue(strconv.Itoa(config.DefaultVocabTop))
			} else if n, err := strconv.Atoi(val); err != nil || n <= 0 {
				return m, nil
			}
		}

		m.inputs[idx].Blur()

		switch m.step {
		case StepVectorsPath:
			m.step = StepDimension
			m.inputs[1].Focus()
			return m, textinput.Blink
		case StepDimension:
			m.step = StepTopN
			m.inputs[2].Focus()
			return m, textinput.Blink
		case StepTopN:
			m.step = StepValidating
			return m, tea.Batch(m.startValidation(), m.spinner.Tick)
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		switch msg.Runes[0] {
		case 'r':
			m.step = StepValidating
			m.validationErr = nil
			return m, tea.Batch(m.startValidation(), m.spinner.Tick)
		case 's':
			m.step = StepDone
			return m, tea.Quit
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SetupModel) startValidation() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCtx.cancel = cancel
	path := m.inputs[0].Value()
	dim, _ := strconv.Atoi(m.inputs[1].Value())
	fn := m.validateFn
	return func() tea.Msg {
		return validationResultMsg{err: fn(ctx, path, dim)}
	}
}

// dimensionLabel renders the dimension input for the summary lines.
func (m SetupModel) dimensionLabel() string {
	if m.inputs[1].Value() == "" {
		return "auto"
	}
	return m.inputs[1].Value()
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   GLOVEBOX"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Point glovebox at a pre-trained word vector file.\n\n")

	switch m.step {
	case StepVectorsPath:
		b.WriteString(stepStyle.Render("Step 1 of 3: Vector file"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(plain text: one word per line followed by its components)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepDimension:
		b.WriteString(fmt.Sprintf("  Vectors: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 3: Dimension"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(press Enter to detect from the file)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepTopN:
		b.WriteString(fmt.Sprintf("  Vectors:   %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  Dimension: %s\n\n", m.dimensionLabel()))
		b.WriteString(stepStyle.Render("Step 3 of 3: Default vocabulary size"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for %d)", config.DefaultVocabTop)))
		b.WriteString("\n")
		b.WriteString(m.inputs[2].View())
		b.WriteString("\n")

	case StepValidating:
		b.WriteString(fmt.Sprintf("  Vectors:    %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  Dimension:  %s\n", m.dimensionLabel()))
		b.WriteString(fmt.Sprintf("  Vocab size: %s\n\n", m.inputs[2].Value()))
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking vector file...")
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("✓ Configured!"))
		b.WriteString("\n")

	case StepFailed:
		errMsg := "unknown error"
		if m.validationErr != nil {
			errMsg = m.validationErr.Error()
		}
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Validation failed: %s", errMsg)))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("[r]etry  [s]ave anyway  [q]uit"))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values. dimension is 0 when left to
// auto-detect.
func (m SetupModel) Result() (path string, dimension, topN int) {
	path = m.inputs[0].Value()
	dimension, _ = strconv.Atoi(m.inputs[1].Value())
	topN, _ = strconv.Atoi(m.inputs[2].Value())
	if topN <= 0 {
		topN = config.DefaultVocabTop
	}
	return path, dimension, topN
}

// ShouldSave returns true if the wizard completed (via validation success or
// "save anyway") and the user did not cancel with Ctrl+C, Escape, or 'q'.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
