// Package console reads line-oriented answers from an interactive session.
//
// Blank lines are skipped the way a whitespace-delimited reader would skip
// them. Numeric prompts reject malformed input with a message and ask again
// instead of guessing a value.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInvalidNumber is reported for input that is not a base-10 integer
var ErrInvalidNumber = errors.New("not a valid number")

// Prompter reads answers from in and writes prompts to out
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New creates a Prompter over the given reader and writer
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Out returns the writer prompts and results are printed to
func (p *Prompter) Out() io.Writer {
	return p.out
}

// Printf writes formatted text to the session output
func (p *Prompter) Printf(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format, args...)
}

// Println writes a line to the session output
func (p *Prompter) Println(args ...interface{}) {
	fmt.Fprintln(p.out, args...)
}

// Line prints the prompt (if any) and returns the next non-blank line,
// trimmed. io.EOF is returned once the input is exhausted.
func (p *Prompter) Line(prompt string) (string, error) {
	p.prompt(prompt)
	return p.nextLine()
}

// Int prints the prompt and reads an integer. Malformed input is reported
// and the prompt is repeated until a valid number or EOF arrives.
func (p *Prompter) Int(prompt string) (int, error) {
	p.prompt(prompt)
	for {
		line, err := p.nextLine()
		if err != nil {
			return 0, err
		}

		n, err := ParseInt(line)
		if err == nil {
			return n, nil
		}

		fmt.Fprintf(p.out, "%q is not a number, please enter an integer\n", line)
		p.prompt(prompt)
	}
}

// Confirm prints the prompt and reports whether the answer starts with Y or y.
// EOF counts as a decline.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	p.prompt(prompt)
	line, err := p.nextLine()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, err
	}
	return IsAffirmative(line), nil
}

// ParseInt parses a trimmed base-10 integer. Values outside the int range
// saturate at math.MaxInt or math.MinInt; only non-numeric text is rejected.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return n, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	return n, nil
}

// IsAffirmative reports whether the answer's first character is 'Y' or 'y'
func IsAffirmative(answer string) bool {
	answer = strings.TrimSpace(answer)
	return answer != "" && (answer[0] == 'Y' || answer[0] == 'y')
}

func (p *Prompter) prompt(prompt string) {
	if prompt != "" {
		fmt.Fprintln(p.out, prompt)
	}
}

func (p *Prompter) nextLine() (string, error) {
	for {
		line, err := p.in.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed != "" {
			return trimmed, nil
		}
		if err != nil {
			return "", err
		}
	}
}
