// Package prototype shows objects that produce independent copies of
// themselves.
package prototype

import (
	"fmt"
	"io"
	"slices"
)

// Prototype can clone itself
type Prototype interface {
	// Clone returns a deep copy sharing no storage with the receiver
	Clone() Prototype

	// Print writes the fields to w
	Print(w io.Writer)
}

// Basic carries an identifier and a name
type Basic struct {
	ID   int
	Name string
}

// Print writes the identifying fields to w
func (p *Basic) Print(w io.Writer) {
	fmt.Fprintf(w, "ID: %d\n", p.ID)
	fmt.Fprintf(w, "Name: %s\n", p.Name)
}

// Advanced extends Basic with flags, a switch and free-form tags
type Advanced struct {
	Basic
	Flags   uint32
	Enabled bool
	Tags    []string
}

// NewAdvanced creates a fully initialised Advanced prototype
func NewAdvanced(id int, name string, flags uint32, enabled bool, tags ...string) *Advanced {
	return &Advanced{
		Basic:   Basic{ID: id, Name: name},
		Flags:   flags,
		Enabled: enabled,
		Tags:    slices.Clone(tags),
	}
}

// Clone implements Prototype
func (p *Advanced) Clone() Prototype {
	c := *p
	c.Tags = slices.Clone(p.Tags)
	return &c
}

// Print implements Prototype
func (p *Advanced) Print(w io.Writer) {
	p.Basic.Print(w)
	fmt.Fprintf(w, "Flags: 0x%08X\n", p.Flags)
	fmt.Fprintf(w, "Enabled: %t\n", p.Enabled)
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "Tags: %v\n", p.Tags)
	}
}
