package pool

import (
	"strings"

	"github.com/google/uuid"
)

// StringBuffer is a reusable text holder with a stable identity
type StringBuffer struct {
	id uuid.UUID
	sb strings.Builder
}

// NewStringBuffer creates an empty buffer with a fresh identity
func NewStringBuffer() *StringBuffer {
	return &StringBuffer{id: uuid.New()}
}

// ID identifies the buffer across acquire/release cycles
func (b *StringBuffer) ID() uuid.UUID {
	return b.id
}

// Set replaces the content
func (b *StringBuffer) Set(s string) {
	b.sb.Reset()
	b.sb.WriteString(s)
}

// Flush clears the content
func (b *StringBuffer) Flush() {
	b.sb.Reset()
}

// String returns the content
func (b *StringBuffer) String() string {
	return b.sb.String()
}
