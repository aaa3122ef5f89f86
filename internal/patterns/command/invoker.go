package command

import (
	"fmt"

	"github.com/google/uuid"
)

// Record describes an executed command
type Record struct {
	ID        uuid.UUID
	Operation Operation
}

// Invoker executes commands and keeps their history in execution order
type Invoker struct {
	history []Record
}

// NewInvoker creates an empty invoker
func NewInvoker() *Invoker {
	return &Invoker{}
}

// AddAndExecute runs cmd immediately and records it on success
func (i *Invoker) AddAndExecute(cmd *Command) error {
	if err := cmd.Execute(); err != nil {
		return fmt.Errorf("command %s failed: %w", cmd.ID, err)
	}
	i.history = append(i.history, Record{ID: cmd.ID, Operation: cmd.Operation()})
	return nil
}

// History returns the executed commands, oldest first
func (i *Invoker) History() []Record {
	out := make([]Record, len(i.history))
	copy(out, i.history)
	return out
}
