package menu

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/msto63/musterwerk/internal/console"
	"github.com/msto63/musterwerk/pkg/core/logging"
)

// State of the interactive loop
type State int

const (
	// StateRunning shows the menu, runs a selection and asks to continue
	StateRunning State = iota
	// StateStopped is terminal
	StateStopped
)

// String returns the string representation of State
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

const (
	selectionHeader = "Make a selection"
	continuePrompt  = "\n\nContinue Working? Y/N"
	clearSequence   = "\033[H\033[2J"
)

var titleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)

// Selector picks the index of the next entry to run. io.EOF ends the loop.
type Selector interface {
	Select(r *Registry) (int, error)
}

// ConsoleSelector prints the numbered labels and reads an index
type ConsoleSelector struct {
	prompter *console.Prompter
}

// NewConsoleSelector creates a selector that reads from the prompter
func NewConsoleSelector(p *console.Prompter) *ConsoleSelector {
	return &ConsoleSelector{prompter: p}
}

// Select implements Selector
func (s *ConsoleSelector) Select(r *Registry) (int, error) {
	s.prompter.Println(selectionHeader)
	for _, e := range r.Entries() {
		s.prompter.Println(e.Label())
	}
	s.prompter.Println()
	return s.prompter.Int("")
}

// Option configures a Loop
type Option func(*Loop)

// WithSelector replaces the console selector
func WithSelector(sel Selector) Option {
	return func(l *Loop) {
		l.selector = sel
	}
}

// WithLogger sets the loop's logger
func WithLogger(logger *logging.Logger) Option {
	return func(l *Loop) {
		l.logger = logger
	}
}

// WithTitle prints a styled title once before the first menu
func WithTitle(title string) Option {
	return func(l *Loop) {
		l.title = title
	}
}

// WithClearScreen clears the terminal between iterations
func WithClearScreen(enabled bool) Option {
	return func(l *Loop) {
		l.clearScreen = enabled
	}
}

// Loop is the RUNNING/STOPPED state machine driving the menu
type Loop struct {
	registry    *Registry
	prompter    *console.Prompter
	selector    Selector
	logger      *logging.Logger
	title       string
	clearScreen bool
	state       State
	runs        int
}

// NewLoop creates a loop in StateRunning
func NewLoop(registry *Registry, prompter *console.Prompter, opts ...Option) *Loop {
	l := &Loop{
		registry: registry,
		prompter: prompter,
		logger:   logging.Nop(),
		state:    StateRunning,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.selector == nil {
		l.selector = NewConsoleSelector(prompter)
	}
	return l
}

// State returns the current state
func (l *Loop) State() State {
	return l.state
}

// Runs returns how many demonstrations were invoked
func (l *Loop) Runs() int {
	return l.runs
}

// Run iterates until the user declines to continue or input ends
func (l *Loop) Run() error {
	if l.title != "" {
		l.prompter.Println(titleStyle.Render(l.title))
	}

	for l.state == StateRunning {
		if err := l.Step(); err != nil {
			l.state = StateStopped
			return err
		}
	}

	l.logger.Debug("Menu loop stopped", "runs", l.runs)
	return nil
}

// Step performs one RUNNING iteration: select, run, ask to continue
func (l *Loop) Step() error {
	if l.state != StateRunning {
		return nil
	}

	idx, err := l.selector.Select(l.registry)
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.state = StateStopped
			return nil
		}
		return fmt.Errorf("failed to read selection: %w", err)
	}

	entry := l.registry.Resolve(idx)
	if entry.Index != idx && l.logger.Enabled(logging.LevelDebug) {
		l.logger.Debug("Selection clamped", "requested", idx, "resolved", entry.Index)
	}

	l.logger.Info("Running demonstration", "index", entry.Index, "name", entry.Name)
	l.runs++

	if err := entry.Action(); err != nil {
		if errors.Is(err, io.EOF) {
			l.state = StateStopped
			return nil
		}
		l.logger.Error("Demonstration failed", "name", entry.Name, "error", err)
		l.prompter.Printf("\nDemonstration %s failed: %v\n", entry.Name, err)
	}

	again, err := l.prompter.Confirm(continuePrompt)
	if err != nil {
		return fmt.Errorf("failed to read answer: %w", err)
	}
	if !again {
		l.state = StateStopped
		return nil
	}

	if l.clearScreen {
		l.prompter.Printf("%s", clearSequence)
	}
	return nil
}
