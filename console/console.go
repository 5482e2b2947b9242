package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cryptonstudio/crypton-avl/types/avl"
)

const (
	// DefaultPrompt is written before every value is read.
	DefaultPrompt = "Enter a number greater than 0: "
	// ExitMessage is written when a non-positive value ends the session.
	ExitMessage = "You entered a non-positive integer. Exiting program."
)

// Console reads positive integers and toggles them in an AVL tree:
// a value already in the tree is deleted, any other value is inserted.
type Console struct {
	handler Handler
	out     io.Writer
	prompt  string
	tree    avl.Tree[int]
	stats   Stats
}

// NewConsole creates a console writing prompts to out and reporting tree
// changes to handler. Empty prompt means DefaultPrompt.
func NewConsole(handler Handler, out io.Writer, prompt string) *Console {
	if prompt == "" {
		prompt = DefaultPrompt
	}
	return &Console{
		handler: handler,
		out:     out,
		prompt:  prompt,
		stats:   newStats(),
	}
}

// Tree returns the tree the console works on.
func (c *Console) Tree() *avl.Tree[int] {
	return &c.tree
}

// Stats returns statistics of the session so far.
func (c *Console) Stats() *Stats {
	return &c.stats
}

// Toggle deletes value if the tree contains it and inserts it otherwise.
// It returns true when the value was inserted.
func (c *Console) Toggle(value int) (inserted bool, err error) {
	if value <= 0 {
		return false, fmt.Errorf("%w: %d", ErrorNonPositive, value)
	}
	if c.tree.Contains(value) {
		c.tree.Delete(value)
		c.handler.OnDelete(c.tree.Root(), value)
	} else {
		c.tree.Insert(value)
		c.handler.OnInsert(c.tree.Root(), value)
		inserted = true
	}
	c.stats.record(value, inserted)
	return inserted, nil
}

// Run prompts for values from in until a non-positive value or the end of
// input, reported by OnExit and OnEndOfInput respectively. Anything which
// is not an integer stops the session with ErrorInvalidInput.
func (c *Console) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		if _, err := io.WriteString(c.out, c.prompt); err != nil {
			return fmt.Errorf("write prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			c.handler.OnEndOfInput()
			return nil
		}
		value, err := ParseValue(scanner.Text())
		if err != nil {
			return err
		}
		if value <= 0 {
			if _, err := fmt.Fprintln(c.out, ExitMessage); err != nil {
				return fmt.Errorf("write exit message: %w", err)
			}
			c.handler.OnExit(value)
			return nil
		}
		if _, err := c.Toggle(value); err != nil {
			return err
		}
	}
}

// ParseValue parses a line of input as a decimal integer.
func ParseValue(line string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrorInvalidInput, line)
	}
	return value, nil
}
