// Package builder turns a raw byte sequence into text. A Reader directs the
// construction; each Builder decides how a single item is rendered.
package builder

import (
	"strconv"
	"strings"
)

// Builder accumulates one textual representation of a sequence
type Builder interface {
	// Reset discards any previous result
	Reset()

	// Add renders one item
	Add(item byte)

	// Result returns the text built so far
	Result() string
}

// Reader drives a Builder over a sequence
type Reader struct {
	builder Builder
}

// NewReader creates a Reader using the given builder
func NewReader(b Builder) *Reader {
	return &Reader{builder: b}
}

// Build renders items with the reader's builder. The returned string is
// owned by the caller; the builder is reset on every call.
func (r *Reader) Build(items []byte) string {
	r.builder.Reset()
	for _, item := range items {
		r.builder.Add(item)
	}
	return r.builder.Result()
}

// NumberBuilder renders each item as decimal text separated by spaces
type NumberBuilder struct {
	sb strings.Builder
}

// Reset implements Builder
func (b *NumberBuilder) Reset() {
	b.sb.Reset()
}

// Add implements Builder
func (b *NumberBuilder) Add(item byte) {
	if b.sb.Len() > 0 {
		b.sb.WriteByte(' ')
	}
	b.sb.WriteString(strconv.Itoa(int(item)))
}

// Result implements Builder
func (b *NumberBuilder) Result() string {
	return b.sb.String()
}

// CharacterBuilder renders each item as a letter: 0 -> 'a', 1 -> 'b' ...
// Values past 'z' render as '?'.
type CharacterBuilder struct {
	sb strings.Builder
}

// Reset implements Builder
func (b *CharacterBuilder) Reset() {
	b.sb.Reset()
}

// Add implements Builder
func (b *CharacterBuilder) Add(item byte) {
	if item >= 26 {
		b.sb.WriteByte('?')
		return
	}
	b.sb.WriteByte('a' + item)
}

// Result implements Builder
func (b *CharacterBuilder) Result() string {
	return b.sb.String()
}
