package interpreter

const digits = "0123456789ABCDEF"

// Expression writes its reading of the context value into the context
type Expression interface {
	Interpret(ctx *Context)
}

// radix renders a value in a fixed base between 2 and 16
type radix struct {
	base uint64
}

func (r radix) Interpret(ctx *Context) {
	ctx.Write(format(ctx.Value(), r.base))
}

// Binary renders the value in base 2
type Binary struct{ radix }

// NewBinary creates a binary interpreter
func NewBinary() Binary { return Binary{radix{base: 2}} }

// Hex renders the value in base 16 with upper-case digits
type Hex struct{ radix }

// NewHex creates a hexadecimal interpreter
func NewHex() Hex { return Hex{radix{base: 16}} }

// format converts v by repeated division. Negative values get a leading '-'.
func format(v int64, base uint64) string {
	if v == 0 {
		return "0"
	}

	negative := v < 0
	// Two's complement negation keeps MinInt64 representable
	u := uint64(v)
	if negative {
		u = -u
	}

	var buf [65]byte
	i := len(buf)
	for u > 0 {
		i--
		buf[i] = digits[u%base]
		u /= base
	}
	if negative {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
