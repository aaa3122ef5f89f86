package command

import (
	"fmt"
	"io"
	"strings"
)

// Receiver owns a message and knows how to write it
type Receiver struct {
	message string
	out     io.Writer
}

// NewReceiver creates a receiver writing to out
func NewReceiver(message string, out io.Writer) *Receiver {
	return &Receiver{message: message, out: out}
}

// WriteMessageAsNumbers writes each byte of the message as a decimal code
func (r *Receiver) WriteMessageAsNumbers() error {
	codes := make([]string, 0, len(r.message))
	for i := 0; i < len(r.message); i++ {
		codes = append(codes, fmt.Sprint(r.message[i]))
	}
	_, err := fmt.Fprintln(r.out, strings.Join(codes, " "))
	return err
}

// WriteMessageAsUppercase writes the message upper-cased
func (r *Receiver) WriteMessageAsUppercase() error {
	_, err := fmt.Fprintln(r.out, strings.ToUpper(r.message))
	return err
}
