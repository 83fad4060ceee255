package game

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrUnknownCommand is returned for input that is not a flag, unflag or reveal command.
var ErrUnknownCommand = errors.New("unknown command")

// Action is a player move.
type Action int

const (
	ActionFlag Action = iota
	ActionUnflag
	ActionReveal
)

// String returns the action name used in logs and span names.
func (a Action) String() string {
	switch a {
	case ActionFlag:
		return "flag"
	case ActionUnflag:
		return "unflag"
	case ActionReveal:
		return "reveal"
	default:
		return "unknown"
	}
}

// Command addresses an action to a cell by row label and one-based column number.
type Command struct {
	Action Action
	Row    string
	Col    string
}

// String formats the command the way it is typed, e.g. "R A:9".
func (c Command) String() string {
	letter := map[Action]string{ActionFlag: "F", ActionUnflag: "U", ActionReveal: "R"}[c.Action]
	return fmt.Sprintf("%s %s:%s", letter, c.Row, c.Col)
}

var commandRE = regexp.MustCompile(`(?i)^([FUR]) (\w+):(\d+)$`)

// ParseCommand parses "<F|U|R> <row>:<col>", e.g. "R A:9". Case-insensitive.
func ParseCommand(line string) (Command, error) {
	m := commandRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, line)
	}

	cmd := Command{Row: m[2], Col: m[3]}
	switch strings.ToUpper(m[1]) {
	case "F":
		cmd.Action = ActionFlag
	case "U":
		cmd.Action = ActionUnflag
	case "R":
		cmd.Action = ActionReveal
	}
	return cmd, nil
}
