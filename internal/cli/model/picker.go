package model

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/tintbar/internal/application/port"
	"github.com/bnema/tintbar/internal/cli/styles"
	"github.com/bnema/tintbar/internal/domain/entity"
)

// candidateCount keeps the row addressable by the 1-9 digit keys.
const candidateCount = 9

// PickerModel is an interactive swatch picker for a project color.
type PickerModel struct {
	theme     *styles.Theme
	generator port.ColorGenerator
	lum       entity.Luminosity
	path      string

	candidates []entity.Color
	cursor     int
	chosen     *entity.Color

	keys pickerKeyMap
	help help.Model
}

type pickerKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Select key.Binding
	Regen  key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Select, k.Regen, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter/1-9", "pick"),
		),
		Regen: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "q", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

// NewPickerModel creates a picker seeded with generated candidates.
func NewPickerModel(theme *styles.Theme, generator port.ColorGenerator, lum entity.Luminosity, path string) PickerModel {
	m := PickerModel{
		theme:     theme,
		generator: generator,
		lum:       lum,
		path:      path,
		keys:      defaultPickerKeyMap(),
		help:      help.New(),
	}
	m.candidates = m.generate()
	return m
}

func (m PickerModel) generate() []entity.Color {
	out := make([]entity.Color, candidateCount)
	for i := range out {
		out[i] = m.generator.Generate(m.lum)
	}
	return out
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if s := keyMsg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		idx := int(s[0] - '1')
		if idx < len(m.candidates) {
			c := m.candidates[idx]
			m.chosen = &c
			return m, tea.Quit
		}
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Right):
		if m.cursor < len(m.candidates)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Regen):
		m.candidates = m.generate()
	case key.Matches(keyMsg, m.keys.Select):
		c := m.candidates[m.cursor]
		m.chosen = &c
		return m, tea.Quit
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.theme.Title.Render("Pick a title-bar color"))
	b.WriteString("\n")
	b.WriteString(m.theme.Subtle.Render(m.path))
	b.WriteString("\n\n")

	for i, c := range m.candidates {
		marker := " "
		if i == m.cursor {
			marker = m.theme.Highlight.Render(">")
		}
		b.WriteString(fmt.Sprintf("%s %d ", marker, i+1))
		b.WriteString(styles.Swatch(c))
		b.WriteString(" ")
		if i == m.cursor {
			b.WriteString(m.theme.ListItemSelected.Render(c.Hex()))
		} else {
			b.WriteString(m.theme.Subtle.Render(c.Hex()))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n")
	return b.String()
}

// Chosen returns the picked color, if any.
func (m PickerModel) Chosen() (entity.Color, bool) {
	if m.chosen == nil {
		return entity.ColorDefault, false
	}
	return *m.chosen, true
}
