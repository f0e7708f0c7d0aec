package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"vaultsync/internal/adapters/tui/styles"
	"vaultsync/internal/config"
)

// WizardKeyMap defines key bindings for the init wizard
type WizardKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var WizardKeys = WizardKeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("tab", "next field"),
	),
	Prev: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("shift+tab", "previous field"),
	),
	Toggle: key.NewBinding(
		key.WithKeys(" "),
		key.WithHelp("space", "toggle"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "write config"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "ctrl+c"),
		key.WithHelp("esc", "cancel"),
	),
}

// Field indices. Inputs come first, toggles after.
const (
	fieldVault = iota
	fieldSource
	fieldTarget
	fieldMetadata
	fieldGitMetadata
	fieldTimestamp
	fieldCount
)

const inputCount = 3

// Wizard collects a sync configuration interactively. Run it to completion,
// then read Result: nil means the user cancelled.
type Wizard struct {
	inputs  [inputCount]textinput.Model
	toggles [fieldCount - inputCount]bool
	labels  [fieldCount - inputCount]string

	focused int
	message string

	result *config.File

	width  int
	height int
}

// NewWizard creates the init wizard. vault, source and target prefill the
// inputs and may be empty.
func NewWizard(vault, source, target string) *Wizard {
	vaultInput := textinput.New()
	vaultInput.Placeholder = "~/Documents/vault"
	vaultInput.CharLimit = 200
	vaultInput.SetValue(vault)

	sourceInput := textinput.New()
	sourceInput.Placeholder = "memory-bank"
	sourceInput.CharLimit = 200
	sourceInput.SetValue(source)

	targetInput := textinput.New()
	targetInput.Placeholder = "projects/my-repo"
	targetInput.CharLimit = 200
	targetInput.SetValue(target)

	w := &Wizard{
		inputs:  [inputCount]textinput.Model{vaultInput, sourceInput, targetInput},
		toggles: [3]bool{true, true, true},
		labels: [3]string{
			"Inject provenance frontmatter into synced notes",
			"Record commit hash, author, date and message",
			"Record the sync timestamp",
		},
	}
	w.inputs[0].Focus()
	return w
}

// Result returns the configuration the wizard produced, nil when cancelled.
func (w *Wizard) Result() *config.File {
	return w.result
}

// Init initializes the wizard
func (w *Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the wizard
func (w *Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, WizardKeys.Cancel):
			w.result = nil
			return w, tea.Quit

		case key.Matches(msg, WizardKeys.Next):
			w.moveFocus(1)
			return w, nil

		case key.Matches(msg, WizardKeys.Prev):
			w.moveFocus(-1)
			return w, nil

		case key.Matches(msg, WizardKeys.Toggle) && w.focused >= inputCount:
			w.toggles[w.focused-inputCount] = !w.toggles[w.focused-inputCount]
			return w, nil

		case key.Matches(msg, WizardKeys.Submit):
			if cmd := w.submit(); cmd != nil {
				return w, cmd
			}
			return w, nil
		}
	}

	// Forward everything else to the focused input
	var cmd tea.Cmd
	if w.focused < inputCount {
		w.inputs[w.focused], cmd = w.inputs[w.focused].Update(msg)
	}
	return w, cmd
}

func (w *Wizard) moveFocus(delta int) {
	if w.focused < inputCount {
		w.inputs[w.focused].Blur()
	}
	w.focused = (w.focused + delta + fieldCount) % fieldCount
	if w.focused < inputCount {
		w.inputs[w.focused].Focus()
	}
}

// submit validates the collected values. It returns tea.Quit on success and
// nil when validation failed, in which case the error is shown inline.
func (w *Wizard) submit() tea.Cmd {
	f := &config.File{
		TargetVault: strings.TrimSpace(w.inputs[fieldVault].Value()),
		Mappings: []config.Mapping{{
			Source: strings.TrimSpace(w.inputs[fieldSource].Value()),
			Target: strings.TrimSpace(w.inputs[fieldTarget].Value()),
		}},
	}
	f.Options.AddMetadata = w.toggles[fieldMetadata-inputCount]
	f.Options.MetadataTemplate.AddGitMetadata = w.toggles[fieldGitMetadata-inputCount]
	f.Options.MetadataTemplate.AddSyncTimestamp = w.toggles[fieldTimestamp-inputCount]

	f.Normalize()
	if err := f.Validate(); err != nil {
		w.message = err.Error()
		return nil
	}

	w.result = f
	return tea.Quit
}

// View renders the wizard
func (w *Wizard) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("vaultsync init"))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Scaffold a sync configuration for this repository."))
	b.WriteString("\n\n")

	inputLabels := [inputCount]string{
		"Target vault (absolute path):",
		"Repository source (file or directory):",
		"Vault target:",
	}
	for i, label := range inputLabels {
		b.WriteString(styles.InputLabel.Render(label))
		b.WriteString("\n")
		if w.focused == i {
			b.WriteString(styles.InputFocused.Render(w.inputs[i].View()))
		} else {
			b.WriteString(styles.InputField.Render(w.inputs[i].View()))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, label := range w.labels {
		mark := "[ ]"
		if w.toggles[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, label)
		if w.focused == inputCount+i {
			b.WriteString(styles.ToggleFocused.Render("> " + line))
		} else {
			b.WriteString(styles.ToggleBlurred.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if w.message != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorMsg.Render(w.message))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%s %s  %s %s  %s %s  %s %s",
		styles.HelpKey.Render("tab"),
		styles.HelpDesc.Render("next field"),
		styles.HelpKey.Render("space"),
		styles.HelpDesc.Render("toggle"),
		styles.HelpKey.Render("enter"),
		styles.HelpDesc.Render("write config"),
		styles.HelpKey.Render("esc"),
		styles.HelpDesc.Render("cancel"),
	))

	return styles.App.Render(b.String())
}
