// Package factory creates shapes by numeric identifier. Unknown identifiers
// yield no shape rather than an error.
package factory

import (
	"fmt"
	"io"
)

// Shape is anything a factory can produce
type Shape interface {
	// Name returns the lower-case shape name
	Name() string

	// Draw renders the shape to w
	Draw(w io.Writer)
}

// Basic family

// Circle is the basic round shape
type Circle struct{}

// Name implements Shape
func (Circle) Name() string { return "circle" }

// Draw implements Shape
func (c Circle) Draw(w io.Writer) {
	drawLines(w, c.Name(),
		"  ***  ",
		" *   * ",
		"  ***  ",
	)
}

// Square is the basic boxed shape
type Square struct{}

// Name implements Shape
func (Square) Name() string { return "square" }

// Draw implements Shape
func (s Square) Draw(w io.Writer) {
	drawLines(w, s.Name(),
		"+---+",
		"|   |",
		"+---+",
	)
}

// Rectangle is the basic long shape
type Rectangle struct{}

// Name implements Shape
func (Rectangle) Name() string { return "rectangle" }

// Draw implements Shape
func (r Rectangle) Draw(w io.Writer) {
	drawLines(w, r.Name(),
		"+-------+",
		"|       |",
		"+-------+",
	)
}

// Advanced family

// Sphere is the advanced round shape
type Sphere struct{}

// Name implements Shape
func (Sphere) Name() string { return "sphere" }

// Draw implements Shape
func (s Sphere) Draw(w io.Writer) {
	drawLines(w, s.Name(),
		"  .-\"-.  ",
		" /     \\ ",
		" \\     / ",
		"  '-.-'  ",
	)
}

// Cube is the advanced boxed shape
type Cube struct{}

// Name implements Shape
func (Cube) Name() string { return "cube" }

// Draw implements Shape
func (c Cube) Draw(w io.Writer) {
	drawLines(w, c.Name(),
		"  +---+",
		" /   /|",
		"+---+ +",
		"|   |/ ",
		"+---+  ",
	)
}

// Pyramid is the advanced long shape
type Pyramid struct{}

// Name implements Shape
func (Pyramid) Name() string { return "pyramid" }

// Draw implements Shape
func (p Pyramid) Draw(w io.Writer) {
	drawLines(w, p.Name(),
		"   /\\   ",
		"  /  \\  ",
		" /____\\ ",
	)
}

func drawLines(w io.Writer, name string, lines ...string) {
	fmt.Fprintf(w, "Drawing %s\n", name)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
