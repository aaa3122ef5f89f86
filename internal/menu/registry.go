// Package menu holds the ordered list of demonstrations and the interactive
// loop that selects and runs them.
package menu

import "fmt"

// Action runs one demonstration to completion
type Action func() error

// Category groups entries in listings
type Category string

const (
	CategoryCreational Category = "creational"
	CategoryBehavioral Category = "behavioral"
)

// Entry is one selectable demonstration
type Entry struct {
	Name     string
	Index    int
	Category Category
	Action   Action
}

// Label returns the display label, e.g. "0.Singleton_Instance"
func (e Entry) Label() string {
	return fmt.Sprintf("%d.%s", e.Index, e.Name)
}

// Registry is an ordered, fixed set of entries. It is read-only once built.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry; each entry's Index is its position
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		entries: make([]Entry, len(entries)),
	}
	for i, e := range entries {
		e.Index = i
		r.entries[i] = e
	}
	return r
}

// Len returns the number of entries
func (r *Registry) Len() int {
	return len(r.entries)
}

// Entries returns a copy of the entries in display order
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Clamp maps i into [0, Len()-1]
func (r *Registry) Clamp(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(r.entries) {
		return len(r.entries) - 1
	}
	return i
}

// Resolve returns the entry at i after clamping. It panics on an empty
// registry, which is a construction error.
func (r *Registry) Resolve(i int) Entry {
	if len(r.entries) == 0 {
		panic("menu: Resolve on empty registry")
	}
	return r.entries[r.Clamp(i)]
}
