// Package interpreter renders a numeric value in different notations. All
// expressions share one Context whose output buffer is flushed between runs.
package interpreter

import (
	"fmt"
	"io"
	"strings"
)

// Context holds the value to interpret and the accumulated output
type Context struct {
	value  int64
	output strings.Builder
}

// NewContext wraps value in a fresh context
func NewContext(value int64) *Context {
	return &Context{value: value}
}

// Value returns the value being interpreted
func (c *Context) Value() int64 {
	return c.value
}

// Write appends text to the output buffer
func (c *Context) Write(s string) {
	c.output.WriteString(s)
}

// Flush writes the buffered output and a newline to w, clears the buffer and
// returns what was written
func (c *Context) Flush(w io.Writer) string {
	out := c.output.String()
	c.output.Reset()
	if w != nil {
		fmt.Fprintln(w, out)
	}
	return out
}
