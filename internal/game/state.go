// Package game drives a minesweeper board: sessions, commands and the
// console and terminal front ends.
package game

// State represents the outcome of a session so far.
type State int

const (
	// StatePlaying accepts commands.
	StatePlaying State = iota
	// StateWon is reached once every safe cell is cleared.
	StateWon
	// StateLost is reached when a mine is revealed.
	StateLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the session has ended.
func (s State) Over() bool {
	return s == StateWon || s == StateLost
}
