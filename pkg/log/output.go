package log

import (
	"io"
	"os"
	"sync"
)

// ConsoleOutput writes formatted entries to standard error.
type ConsoleOutput struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleOutput creates a ConsoleOutput bound to os.Stderr.
func NewConsoleOutput() *ConsoleOutput {
	return &ConsoleOutput{w: os.Stderr}
}

// NewWriterOutput creates an output bound to an arbitrary writer. Useful for
// capturing log lines in tests.
func NewWriterOutput(w io.Writer) *ConsoleOutput {
	return &ConsoleOutput{w: w}
}

// Write implements Output, appending a trailing newline.
func (c *ConsoleOutput) Write(_ *Entry, formatted []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, err := c.w.Write(append(formatted, '\n'))
	return err
}

// Close implements Output.
func (c *ConsoleOutput) Close() error { return nil }
