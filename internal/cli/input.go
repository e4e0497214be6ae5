package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mcoot/pexeso/internal/model"
	"github.com/mcoot/pexeso/internal/services/game"
)

// ConsoleInput reads picks as one "row col" line each
type ConsoleInput struct {
	in     io.Reader
	prompt io.Writer
	lines  chan string
	done   chan struct{}

	startOnce sync.Once
	closeOnce sync.Once

	mu      sync.Mutex
	readErr error
}

// NewConsoleInput creates an input reading from in and prompting on prompt
func NewConsoleInput(in io.Reader, prompt io.Writer) *ConsoleInput {
	return &ConsoleInput{
		in:     in,
		prompt: prompt,
		lines:  make(chan string),
		done:   make(chan struct{}),
	}
}

// Ensure ConsoleInput implements game.HumanInput
var _ game.HumanInput = (*ConsoleInput)(nil)

// ChoosePosition prompts for and reads one pick. A line that is not exactly
// two numbers is reported as model.ErrInvalidMove and discarded whole; the
// end of input as model.ErrInputClosed.
func (c *ConsoleInput) ChoosePosition(ctx context.Context, board *model.Board, pick int) (model.Position, error) {
	c.startOnce.Do(func() { go c.scan() })

	fmt.Fprintf(c.prompt, "Pick card %d, enter row and column (e.g. 1 2): ", pick)
	line, err := c.nextLine(ctx)
	if err != nil {
		return model.Position{}, err
	}
	return parsePosition(line)
}

func parsePosition(line string) (model.Position, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Position{}, fmt.Errorf("%w: expected row and column, got %q", model.ErrInvalidMove, line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidMove, fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return model.Position{}, fmt.Errorf("%w: %q is not a number", model.ErrInvalidMove, fields[1])
	}
	return model.Position{Row: row, Col: col}, nil
}

// Close stops the background reader
func (c *ConsoleInput) Close() {
	c.closeOnce.Do(func() { close(c.done) })
}

func (c *ConsoleInput) nextLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", c.closedErr()
		}
		return line, nil
	}
}

// scan feeds lines from the reader to the line channel until the reader
// ends or the input is closed
func (c *ConsoleInput) scan() {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-c.done:
			return
		}
	}
	if err := scanner.Err(); err != nil {
		c.mu.Lock()
		c.readErr = err
		c.mu.Unlock()
	}
}

func (c *ConsoleInput) closedErr() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.readErr != nil {
		return fmt.Errorf("%w: %w", model.ErrInputClosed, c.readErr)
	}
	return model.ErrInputClosed
}
