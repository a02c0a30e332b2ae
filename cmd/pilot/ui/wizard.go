// Package ui provides the interactive campaign creation wizard.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"promopilot/internal/planner"
)

// Wizard steps
const (
	stepName = iota
	stepAudience
	stepGoal
	stepBudget
	stepPlatforms
	stepDone
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2196F3"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BC34A"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e53935"))
)

var stepPrompts = []string{
	"📝 Campaign Name",
	"👥 Target Audience",
	"🎯 Campaign Goal",
	"💰 Budget",
}

// WizardModel collects campaign details step by step.
type WizardModel struct {
	step      int
	input     textinput.Model
	answers   [4]string
	platforms []string
	selected  map[int]bool
	cancelled bool
	errMsg    string
}

func NewWizard() WizardModel {
	ti := textinput.New()
	ti.Placeholder = "Spring Product Launch"
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 60

	return WizardModel{
		input:     ti,
		platforms: planner.SupportedPlatforms,
		selected:  make(map[int]bool),
	}
}

func (m WizardModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m WizardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEnter:
		return m.advance()
	}

	if m.step == stepPlatforms {
		return m.togglePlatform(keyMsg.String()), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m WizardModel) advance() (tea.Model, tea.Cmd) {
	if m.step < stepPlatforms {
		value := strings.TrimSpace(m.input.Value())
		if value == "" {
			m.errMsg = "This field is required"
			return m, nil
		}
		m.answers[m.step] = value
		m.errMsg = ""
		m.step++
		m.input.SetValue("")
		m.input.Placeholder = nextPlaceholder(m.step)
		return m, nil
	}

	// Platform step
	if len(m.selectedPlatforms()) == 0 {
		m.errMsg = "Select at least one platform"
		return m, nil
	}
	m.step = stepDone
	return m, tea.Quit
}

func (m WizardModel) togglePlatform(key string) WizardModel {
	for i := range m.platforms {
		if key == fmt.Sprintf("%d", i+1) {
			m.selected[i] = !m.selected[i]
			m.errMsg = ""
		}
	}
	return m
}

func (m WizardModel) selectedPlatforms() []string {
	var out []string
	for i, platform := range m.platforms {
		if m.selected[i] {
			out = append(out, platform)
		}
	}
	return out
}

func (m WizardModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("INTERACTIVE CAMPAIGN CREATION") + "\n\n")

	for i := 0; i < m.step && i < len(stepPrompts); i++ {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%s: %s", stepPrompts[i], m.answers[i])) + "\n")
	}

	switch {
	case m.step < stepPlatforms:
		b.WriteString("\n" + promptStyle.Render(stepPrompts[m.step]+":") + "\n")
		b.WriteString(m.input.View() + "\n")

	case m.step == stepPlatforms:
		b.WriteString("\n" + promptStyle.Render("📱 Select Platforms (press number to toggle, enter to confirm):") + "\n\n")
		for i, platform := range m.platforms {
			marker := "[ ]"
			line := fmt.Sprintf("  %d. %s %s", i+1, marker, platform)
			if m.selected[i] {
				line = fmt.Sprintf("  %d. [x] %s", i+1, platform)
				line = selectedStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}

	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("❌ "+m.errMsg) + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("enter: next • esc: cancel") + "\n")
	return b.String()
}

// Request converts the collected answers into a planning request.
// Returns nil if the wizard was cancelled or never completed.
func (m WizardModel) Request() *planner.Request {
	if m.cancelled || m.step != stepDone {
		return nil
	}
	return &planner.Request{
		Name:           m.answers[stepName],
		TargetAudience: m.answers[stepAudience],
		Goal:           m.answers[stepGoal],
		Budget:         m.answers[stepBudget],
		Platforms:      m.selectedPlatforms(),
	}
}

func nextPlaceholder(step int) string {
	switch step {
	case stepAudience:
		return "Enterprise SaaS buyers"
	case stepGoal:
		return "Generate qualified leads"
	case stepBudget:
		return "$5,000"
	default:
		return ""
	}
}

// RunWizard runs the wizard and returns the resulting request, or nil
// when the user cancelled.
func RunWizard() (*planner.Request, error) {
	program := tea.NewProgram(NewWizard())
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("wizard failed: %w", err)
	}

	model, ok := final.(WizardModel)
	if !ok {
		return nil, fmt.Errorf("unexpected wizard model type %T", final)
	}
	return model.Request(), nil
}
