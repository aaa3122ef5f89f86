// Package tui provides a full-screen picker for the demonstration menu.
// It plugs into the menu loop as a Selector; the demonstrations themselves
// still run on the plain console.
package tui

import (
	"errors"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/msto63/musterwerk/internal/menu"
)

// ErrNotTerminal is returned when the picker is asked to read from
// something other than an interactive terminal. The console prompts share
// the same input, and a piped stream would be drained by the picker.
var ErrNotTerminal = errors.New("picker requires an interactive terminal")

const (
	defaultWidth  = 48
	defaultHeight = 22
)

// entryItem implements list.Item for menu entries
type entryItem struct {
	entry menu.Entry
}

func (i entryItem) Title() string       { return i.entry.Label() }
func (i entryItem) Description() string { return string(i.entry.Category) }
func (i entryItem) FilterValue() string { return i.entry.Name }

// Model is the picker's tea.Model
type Model struct {
	list     list.Model
	selected int
	chosen   bool
	quitting bool
}

// NewModel builds a picker over the registry's entries
func NewModel(reg *menu.Registry, title string) Model {
	entries := reg.Entries()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = SelectedItemStyle
	delegate.Styles.NormalTitle = ListItemStyle

	l := list.New(items, delegate, defaultWidth, defaultHeight)
	l.Title = title
	l.Styles.Title = TitleStyle
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return Model{list: l, selected: -1}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if len(m.list.Items()) == 0 {
				return m, nil
			}
			m.selected = m.list.Index()
			m.chosen = true
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height-2)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m Model) View() string {
	if m.chosen || m.quitting {
		return ""
	}
	return m.list.View() + "\n" + HelpStyle.Render("enter: run • q: quit")
}

// Selected returns the chosen index, if any
func (m Model) Selected() (int, bool) {
	return m.selected, m.chosen
}

// Picker is a menu.Selector backed by a bubbletea program
type Picker struct {
	in    io.Reader
	out   io.Writer
	title string
}

// NewPicker creates a picker reading keys from in and drawing to out.
// in must be a terminal.
func NewPicker(in io.Reader, out io.Writer, title string) (*Picker, error) {
	if !IsTerminal(in) {
		return nil, ErrNotTerminal
	}
	return &Picker{in: in, out: out, title: title}, nil
}

// IsTerminal reports whether r is a terminal device
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Select implements menu.Selector. Leaving without a choice returns io.EOF.
func (p *Picker) Select(reg *menu.Registry) (int, error) {
	prog := tea.NewProgram(NewModel(reg, p.title),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)

	final, err := prog.Run()
	if err != nil {
		return 0, err
	}

	m, ok := final.(Model)
	if !ok {
		return 0, io.EOF
	}
	idx, chosen := m.Selected()
	if !chosen {
		return 0, io.EOF
	}
	return idx, nil
}
