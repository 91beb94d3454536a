package tui

import (
	"errors"
	"fmt"
	"strings"

	"ars/internal/complete"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrCancelled is returned when the user aborts a prompt.
var ErrCancelled = errors.New("prompt cancelled")

// State is the phase of a prompt.
type State int

const (
	Editing State = iota
	Selecting
	Validating
	Accepted
	Cancelled
)

func (s State) String() string {
	switch s {
	case Editing:
		return "editing"
	case Selecting:
		return "selecting"
	case Validating:
		return "validating"
	case Accepted:
		return "accepted"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Terminal reports whether no further input is processed.
func (s State) Terminal() bool {
	return s == Accepted || s == Cancelled
}

// ValidateFunc returns an error if the input is not acceptable.
type ValidateFunc func(string) error

// Prompt describes a single question.
type Prompt struct {
	Label      string
	Default    string
	Matcher    complete.CandidateMatcher
	Validate   ValidateFunc
	MenuHeight int
}

func (p Prompt) validate(value string) error {
	if p.Validate == nil {
		return nil
	}
	return p.Validate(value)
}

func (p Prompt) complete(value string, cursor int) []complete.MatchResult {
	if p.Matcher == nil {
		return nil
	}
	return p.Matcher.Complete(value, cursor)
}

// KeyMap is the set of bindings handled by the prompt itself. Everything
// else goes to the text input.
type KeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Dismiss key.Binding
	Cancel  key.Binding
	EOF     key.Binding
}

var DefaultKeyMap = KeyMap{
	Next:    key.NewBinding(key.WithKeys("down", "tab", "ctrl+n")),
	Prev:    key.NewBinding(key.WithKeys("up", "shift+tab", "ctrl+p")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Dismiss: key.NewBinding(key.WithKeys("esc")),
	Cancel:  key.NewBinding(key.WithKeys("ctrl+c")),
	EOF:     key.NewBinding(key.WithKeys("ctrl+d")),
}

// PromptModel is the bubbletea model of an autocompleting prompt.
type PromptModel struct {
	prompt   Prompt
	input    textinput.Model
	keys     KeyMap
	log      *log.Logger
	state    State
	matches  []complete.MatchResult
	selected int
	offset   int
	err      error
	value    string
}

// NewPromptModel creates a prompt in the Editing state with the default value
// in the buffer and the cursor at its end.
func NewPromptModel(p Prompt, logger *log.Logger) PromptModel {
	if p.MenuHeight < 1 {
		p.MenuHeight = 10
	}

	ti := textinput.New()
	ti.Prompt = p.Label
	ti.PromptStyle = PromptStyle
	ti.SetValue(p.Default)
	ti.CursorEnd()
	ti.Focus()

	m := PromptModel{
		prompt:   p,
		input:    ti,
		keys:     DefaultKeyMap,
		log:      logger,
		state:    Editing,
		selected: -1,
	}
	m.refresh()
	return m
}

func (m PromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state.Terminal() {
		return m, nil
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch {
		case key.Matches(keyMsg, m.keys.Cancel),
			key.Matches(keyMsg, m.keys.EOF) && m.input.Value() == "":
			m.transition(Cancelled)
			return m, tea.Quit

		case key.Matches(keyMsg, m.keys.Next):
			m.move(1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Prev):
			m.move(-1)
			return m, nil

		case key.Matches(keyMsg, m.keys.Dismiss):
			if m.state == Selecting {
				m.selected = -1
				m.offset = 0
				m.transition(Editing)
			}
			return m, nil

		case key.Matches(keyMsg, m.keys.Confirm):
			return m.confirm()
		}
	}

	before, pos := m.input.Value(), m.input.Position()

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if !isKey {
		return m, cmd
	}
	if m.input.Value() != before {
		m.err = nil
	}
	if m.input.Value() != before || m.input.Position() != pos || m.state == Selecting {
		m.selected = -1
		m.offset = 0
		m.transition(Editing)
	}
	m.refresh()
	return m, cmd
}

// confirm applies the highlighted candidate, if any, and validates the buffer.
func (m PromptModel) confirm() (tea.Model, tea.Cmd) {
	if m.state == Selecting && m.selected >= 0 && m.selected < len(m.matches) {
		text, cursor := complete.Apply(m.input.Value(), m.input.Position(), m.matches[m.selected])
		m.input.SetValue(text)
		m.input.SetCursor(cursor)
	}

	m.transition(Validating)
	value := m.input.Value()
	if err := m.prompt.validate(value); err != nil {
		m.err = err
		m.input.CursorEnd()
		m.selected = -1
		m.offset = 0
		m.transition(Editing)
		m.refresh()
		return m, nil
	}

	m.value = value
	m.transition(Accepted)
	return m, tea.Quit
}

// move shifts the highlighted candidate, wrapping around the list.
func (m *PromptModel) move(delta int) {
	m.refresh()
	n := len(m.matches)
	if n == 0 {
		return
	}

	switch {
	case m.selected < 0 && delta > 0:
		m.selected = 0
	case m.selected < 0:
		m.selected = n - 1
	default:
		m.selected = ((m.selected+delta)%n + n) % n
	}

	height := m.prompt.MenuHeight
	if m.selected < m.offset {
		m.offset = m.selected
	}
	if m.selected >= m.offset+height {
		m.offset = m.selected - height + 1
	}
	m.transition(Selecting)
}

func (m *PromptModel) refresh() {
	m.matches = m.prompt.complete(m.input.Value(), m.input.Position())
	if m.selected >= len(m.matches) {
		m.selected = len(m.matches) - 1
	}
	if m.offset >= len(m.matches) {
		m.offset = 0
	}
}

func (m *PromptModel) transition(to State) {
	if m.log != nil && m.state != to {
		m.log.Debug("prompt transition", "from", m.state, "to", to, "input", m.input.Value())
	}
	m.state = to
}

// State returns the current state.
func (m PromptModel) State() State { return m.state }

// Value returns the accepted text; empty unless the state is Accepted.
func (m PromptModel) Value() string { return m.value }

// Input returns the current buffer.
func (m PromptModel) Input() string { return m.input.Value() }

// Cursor returns the cursor position in runes.
func (m PromptModel) Cursor() int { return m.input.Position() }

// Matches returns the candidates shown for the current buffer.
func (m PromptModel) Matches() []complete.MatchResult { return m.matches }

// Selected returns the highlighted candidate index, or -1.
func (m PromptModel) Selected() int { return m.selected }

// Err returns the last validation error.
func (m PromptModel) Err() error { return m.err }

func (m PromptModel) View() string {
	switch m.state {
	case Accepted:
		return PromptStyle.Render(m.prompt.Label) + SuccessStyle.Render(m.value) + "\n"
	case Cancelled:
		return PromptStyle.Render(m.prompt.Label) + MutedStyle.Render("cancelled") + "\n"
	}

	var b strings.Builder
	b.WriteString(m.input.View())
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render("✗ " + m.err.Error()))
	}

	end := min(m.offset+m.prompt.MenuHeight, len(m.matches))
	visible := m.matches[m.offset:end]

	width := 0
	for _, r := range visible {
		width = max(width, lipgloss.Width(r.Candidate.Value))
	}
	for i, r := range visible {
		b.WriteString("\n")
		b.WriteString(renderCandidate(r, m.offset+i == m.selected, width))
	}
	if hidden := len(m.matches) - len(visible); hidden > 0 {
		b.WriteString("\n")
		b.WriteString(MutedStyle.Render(fmt.Sprintf("  … %d more", hidden)))
	}
	return b.String()
}

// renderCandidate draws one menu row: matched characters are emphasised,
// warning candidates use their own colours and the selection is inverted.
func renderCandidate(r complete.MatchResult, selected bool, width int) string {
	row := candidateStyle(r.Emphasis == complete.Warning, selected).UnsetPadding()
	hit := row.Inherit(MatchStyle)

	var b strings.Builder
	b.WriteString(row.Render(" "))

	value := r.Candidate.Value
	segStart, segMatched := 0, false
	flush := func(end int) {
		if end <= segStart {
			return
		}
		if segMatched {
			b.WriteString(hit.Render(value[segStart:end]))
		} else {
			b.WriteString(row.Render(value[segStart:end]))
		}
	}
	for i := range value {
		matched := r.Matched(i)
		if i == 0 {
			segMatched = matched
			continue
		}
		if matched != segMatched {
			flush(i)
			segStart, segMatched = i, matched
		}
	}
	flush(len(value))

	pad := width - lipgloss.Width(value)
	b.WriteString(row.Render(strings.Repeat(" ", max(pad, 0)+1)))

	if r.Candidate.Meta != "" {
		b.WriteString(" ")
		b.WriteString(MetaStyle.Render(r.Candidate.Meta))
	}
	return b.String()
}
