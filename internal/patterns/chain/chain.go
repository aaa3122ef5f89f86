// Package chain passes a request through an ordered sequence of handlers.
// Every handler runs exactly once, in registration order.
package chain

import (
	"fmt"
	"io"

	"github.com/msto63/musterwerk/pkg/core/logging"
)

// Chain is an ordered list of handlers
type Chain struct {
	handlers []Handler
	logger   *logging.Logger
}

// New creates a chain from the given handlers
func New(logger *logging.Logger, handlers ...Handler) *Chain {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Chain{
		handlers: append([]Handler(nil), handlers...),
		logger:   logger,
	}
}

// Register appends a handler to the end of the chain
func (c *Chain) Register(h Handler) {
	c.handlers = append(c.handlers, h)
	c.logger.Debug("Handler registered", "name", h.Name(), "position", len(c.handlers)-1)
}

// Names returns the handler names in order
func (c *Chain) Names() []string {
	names := make([]string, len(c.handlers))
	for i, h := range c.handlers {
		names[i] = h.Name()
	}
	return names
}

// Process hands req to each handler in order, stopping at the first error
func (c *Chain) Process(req *Request) error {
	for _, h := range c.handlers {
		if err := h.Handle(req); err != nil {
			c.logger.Error("Handler failed", "handler", h.Name(), "error", err)
			return fmt.Errorf("handler %s failed: %w", h.Name(), err)
		}
		req.Trail = append(req.Trail, h.Name())

		c.logger.Debug("Handler executed", "handler", h.Name(), "text", req.Text)
	}
	return nil
}

// printer is the terminal link: it writes the request and leaves it unchanged
type printer struct {
	w io.Writer
}

// Printer returns a handler writing the request text to w
func Printer(w io.Writer) Handler {
	return &printer{w: w}
}

func (p *printer) Name() string { return "print" }

func (p *printer) Handle(req *Request) error {
	_, err := fmt.Fprintln(p.w, req.Text)
	return err
}
