package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samdwyer/minesweeper/internal/gamedata"
)

const (
	consoleTitle  = "== Minesweeper =="
	consoleAction = "Enter action: [F]lag/[U]nflag or [R]eveal followed by cell coordinates (e.g. R A:9)"
)

// Console is the line-oriented front end: it reads commands from in and
// prints the board to out after each one.
type Console struct {
	in      io.Reader
	lines   chan string
	readErr error
	out     io.Writer
	presets *gamedata.PresetRegistry
	debug   bool
	opts    []SessionOption
}

// NewConsole creates a console over in and out. opts are passed to every session.
func NewConsole(in io.Reader, out io.Writer, presets *gamedata.PresetRegistry, debug bool, opts ...SessionOption) *Console {
	return &Console{
		in:      in,
		out:     out,
		presets: presets,
		debug:   debug,
		opts:    opts,
	}
}

// Run plays one game. preset may be empty, in which case the player is asked.
// Running out of input ends the game without an error.
//
// Cancelling ctx ends the game even while a read is blocked; Run then
// returns the context's error.
func (c *Console) Run(ctx context.Context, preset string) error {
	done := make(chan struct{})
	defer close(done)
	c.lines = make(chan string)
	go c.readLines(done)

	c.println(consoleTitle)

	def, err := c.choosePreset(ctx, preset)
	if err != nil {
		return c.exit(err)
	}
	if def == nil {
		c.println("\nExiting...")
		return nil
	}

	session, err := NewSession(ctx, *def, c.opts...)
	if err != nil {
		return err
	}
	return c.exit(c.play(ctx, session))
}

// readLines feeds input lines to c.lines until end of input or until done
// is closed.
func (c *Console) readLines(done <-chan struct{}) {
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		select {
		case c.lines <- scanner.Text():
		case <-done:
			return
		}
	}
	c.readErr = scanner.Err()
}

// exit prints the farewell when the game was interrupted.
func (c *Console) exit(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		c.println("\nExiting...")
	}
	return err
}

// choosePreset returns nil when input ends before a valid choice.
func (c *Console) choosePreset(ctx context.Context, name string) (*gamedata.PresetDef, error) {
	if name != "" {
		def := c.presets.Lookup(name)
		if def == nil {
			return nil, fmt.Errorf("unknown preset %q", name)
		}
		return def, nil
	}

	c.println("Enter Grid dimension")
	for {
		line, ok, err := c.prompt(ctx, c.presets.Menu()+": ")
		if err != nil || !ok {
			return nil, err
		}
		if def := c.presets.Lookup(line); def != nil {
			return def, nil
		}
		c.println("Please enter a valid choice.")
	}
}

func (c *Console) play(ctx context.Context, s *Session) error {
	c.println("")
	c.print(s.Render(c.debug))

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.State() == StateWon {
			c.println("You win!")
			return nil
		}

		c.println(consoleAction)
		line, ok, err := c.prompt(ctx, "Action: ")
		if err != nil {
			return err
		}
		if !ok {
			c.println("\nExiting...")
			return nil
		}

		cmd, err := ParseCommand(line)
		if err != nil {
			c.println("Please enter a valid action.")
			continue
		}

		state, err := s.Apply(ctx, cmd)
		if err != nil {
			c.println(err.Error())
			continue
		}
		c.print(s.Render(c.debug))
		if state == StateLost {
			c.println("Game over.")
			return nil
		}
	}
}

// prompt writes p and waits for one trimmed line; ok is false at end of input.
// A read error or a cancelled ctx is returned as err.
func (c *Console) prompt(ctx context.Context, p string) (string, bool, error) {
	fmt.Fprint(c.out, p)
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok := <-c.lines:
		if !ok {
			return "", false, c.readErr
		}
		return strings.TrimSpace(line), true, nil
	}
}

func (c *Console) print(s string) {
	fmt.Fprint(c.out, s)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
