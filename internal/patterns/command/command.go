// Package command binds receivers to operations so the invoker can execute
// and record them without knowing what they do.
package command

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrUnknownOperation is returned for operation tags outside the table
var ErrUnknownOperation = errors.New("unknown operation")

// Operation selects what a command does to its receiver
type Operation int

const (
	OpWriteAsNumbers Operation = iota
	OpWriteAsUppercase
)

// String returns the string representation of Operation
func (o Operation) String() string {
	switch o {
	case OpWriteAsNumbers:
		return "write-as-numbers"
	case OpWriteAsUppercase:
		return "write-as-uppercase"
	default:
		return "unknown"
	}
}

var operations = map[Operation]func(*Receiver) error{
	OpWriteAsNumbers:   (*Receiver).WriteMessageAsNumbers,
	OpWriteAsUppercase: (*Receiver).WriteMessageAsUppercase,
}

// Command pairs a receiver with one operation
type Command struct {
	ID        uuid.UUID
	receiver  *Receiver
	operation Operation
}

// New creates a command
func New(receiver *Receiver, op Operation) *Command {
	return &Command{
		ID:        uuid.New(),
		receiver:  receiver,
		operation: op,
	}
}

// Operation returns the bound operation
func (c *Command) Operation() Operation {
	return c.operation
}

// Execute runs the bound operation against the receiver
func (c *Command) Execute() error {
	fn, ok := operations[c.operation]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownOperation, int(c.operation))
	}
	return fn(c.receiver)
}
