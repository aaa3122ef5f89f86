package chain

import "strings"

// Request travels through the chain; handlers may rewrite Text
type Request struct {
	Text  string
	Trail []string
}

// NewRequest creates a request for the given text
func NewRequest(text string) *Request {
	return &Request{Text: text}
}

// Handler is one link of the chain
type Handler interface {
	// Name returns the unique handler name
	Name() string

	// Handle processes the request before it is forwarded
	Handle(req *Request) error
}

// transform is a handler applying a pure text function
type transform struct {
	name string
	fn   func(string) string
}

// Transform wraps fn as a handler
func Transform(name string, fn func(string) string) Handler {
	return &transform{name: name, fn: fn}
}

func (t *transform) Name() string { return t.name }

func (t *transform) Handle(req *Request) error {
	req.Text = t.fn(req.Text)
	return nil
}

// UpperCase upper-cases the request text
func UpperCase() Handler {
	return Transform("upper", strings.ToUpper)
}

// MaskVowels replaces every vowel with '*'
func MaskVowels() Handler {
	return Transform("vowels", maskVowels)
}

func maskVowels(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune("aeiouAEIOU", r) {
			return '*'
		}
		return r
	}, s)
}
