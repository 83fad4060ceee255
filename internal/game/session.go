package game

import (
	"context"
	"errors"
	"math/rand"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/minesweeper/internal/board"
	"github.com/samdwyer/minesweeper/internal/gamedata"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

// ErrGameOver is returned for commands sent after a session was won or lost.
var ErrGameOver = errors.New("game is over")

// Session is one game on one board.
type Session struct {
	ID     uuid.UUID
	Preset gamedata.PresetDef

	grid   *board.Grid
	state  State
	moves  int
	log    *logrus.Entry
	tracer trace.Tracer
}

type sessionOptions struct {
	grid   []board.Option
	mines  []int
	logger logrus.FieldLogger
	tracer trace.Tracer
}

// SessionOption configures NewSession.
type SessionOption func(*sessionOptions)

// WithRand places mines using rng.
func WithRand(rng *rand.Rand) SessionOption {
	return func(o *sessionOptions) {
		o.grid = append(o.grid, board.WithRand(rng))
	}
}

// WithSeed places mines from a generator seeded with seed; 0 keeps the clock seed.
func WithSeed(seed int64) SessionOption {
	return func(o *sessionOptions) {
		if seed != 0 {
			o.grid = append(o.grid, board.WithRand(rand.New(rand.NewSource(seed))))
		}
	}
}

// WithSampler draws mine positions from sampler.
func WithSampler(sampler board.Sampler) SessionOption {
	return func(o *sessionOptions) {
		o.grid = append(o.grid, board.WithSampler(sampler))
	}
}

// WithMines places mines at fixed linear positions instead of sampling.
func WithMines(positions ...int) SessionOption {
	return func(o *sessionOptions) {
		o.mines = positions
	}
}

// WithLogger sets the logger session events are written to.
func WithLogger(l logrus.FieldLogger) SessionOption {
	return func(o *sessionOptions) {
		o.logger = l
	}
}

// WithTracer sets the tracer used for session spans.
func WithTracer(t trace.Tracer) SessionOption {
	return func(o *sessionOptions) {
		o.tracer = t
	}
}

// NewSession builds a board for preset and places its mines.
func NewSession(ctx context.Context, preset gamedata.PresetDef, opts ...SessionOption) (*Session, error) {
	o := sessionOptions{
		logger: logrus.StandardLogger(),
		tracer: telemetry.Tracer("game"),
	}
	for _, opt := range opts {
		opt(&o)
	}

	s := &Session{
		ID:     uuid.New(),
		Preset: preset,
		tracer: o.tracer,
	}
	s.log = o.logger.WithFields(logrus.Fields{
		"session": s.ID.String(),
		"preset":  preset.ID,
	})

	_, span := s.tracer.Start(ctx, "session.init")
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("preset.id", preset.ID),
		attribute.Int("grid.rows", preset.Rows),
		attribute.Int("grid.cols", preset.Cols),
		attribute.Int("grid.mines", preset.Mines),
	)

	grid, err := board.NewGrid(preset.Rows, preset.Cols, o.grid...)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if o.mines != nil {
		err = grid.PlaceMinesAt(preset.Mines, o.mines)
	} else {
		err = grid.PlaceMines(preset.Mines)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	s.grid = grid

	s.log.Info("Session created")
	return s, nil
}

// Grid returns the session's board.
func (s *Session) Grid() *board.Grid { return s.grid }

// State returns the current outcome.
func (s *Session) State() State { return s.state }

// Moves returns how many commands succeeded.
func (s *Session) Moves() int { return s.moves }

// Render returns the board as text.
func (s *Session) Render(debug bool) string {
	return s.grid.Render(debug)
}

// Apply runs one command against the board and returns the resulting state.
// Board errors are returned unchanged and leave the session as it was.
func (s *Session) Apply(ctx context.Context, cmd Command) (State, error) {
	_, span := s.tracer.Start(ctx, "session."+cmd.Action.String())
	defer span.End()
	span.SetAttributes(
		attribute.String("session.id", s.ID.String()),
		attribute.String("command.row", cmd.Row),
		attribute.String("command.col", cmd.Col),
	)

	err := s.apply(cmd)
	span.SetAttributes(
		attribute.Int("grid.cleared", s.grid.ClearedCount()),
		attribute.String("session.state", s.state.String()),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.WithField("command", cmd.String()).WithError(err).Debug("Command rejected")
		return s.state, err
	}

	s.moves++
	s.log.WithFields(logrus.Fields{
		"command": cmd.String(),
		"cleared": s.grid.ClearedCount(),
	}).Debug("Command applied")

	switch s.state {
	case StateWon:
		s.log.WithField("moves", s.moves).Info("Session won")
	case StateLost:
		s.log.WithField("moves", s.moves).Info("Session lost")
	}
	return s.state, nil
}

func (s *Session) apply(cmd Command) error {
	if s.state.Over() {
		return ErrGameOver
	}

	switch cmd.Action {
	case ActionFlag:
		_, err := s.grid.FlagCell(cmd.Row, cmd.Col)
		return err
	case ActionUnflag:
		_, err := s.grid.UnflagCell(cmd.Row, cmd.Col)
		return err
	case ActionReveal:
		safe, err := s.grid.RevealCell(cmd.Row, cmd.Col)
		if err != nil {
			return err
		}
		if !safe {
			s.state = StateLost
		} else if s.grid.IsClear() {
			s.state = StateWon
		}
		return nil
	default:
		return ErrUnknownCommand
	}
}
