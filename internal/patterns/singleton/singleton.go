// Package singleton provides a process-wide message holder created lazily
// on first access.
package singleton

import (
	"fmt"
	"io"
	"sync"
)

// MessageHolder stores a single message
type MessageHolder struct {
	mu      sync.RWMutex
	message string
	writes  int
}

var (
	instance     *MessageHolder
	instanceOnce sync.Once
)

// Instance returns the process-wide holder, creating it on first call
func Instance() *MessageHolder {
	instanceOnce.Do(func() {
		instance = &MessageHolder{}
	})
	return instance
}

// Put replaces the stored message
func (h *MessageHolder) Put(message string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.message = message
	h.writes++
}

// Message returns the stored message
func (h *MessageHolder) Message() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.message
}

// Writes returns how many times Put was called over the process lifetime
func (h *MessageHolder) Writes() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.writes
}

// Print writes the stored message followed by a newline
func (h *MessageHolder) Print(w io.Writer) {
	fmt.Fprintln(w, h.Message())
}
