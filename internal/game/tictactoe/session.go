package tictactoe

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tictactoe-bot/internal/pkg/lock"
)

// Phase is the state of a party's game.
type Phase int

const (
	// PhaseAwaitingHumanMove is entered on start and after every non-terminal round.
	PhaseAwaitingHumanMove Phase = iota
	// PhaseGameOver is entered on win, loss or tie.
	PhaseGameOver
)

// String returns a short name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseAwaitingHumanMove:
		return "awaiting_human_move"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Outcome is the result of a single CellChosen event.
type Outcome int

const (
	// OutcomeIgnored means nothing changed and nothing was rendered.
	OutcomeIgnored Outcome = iota
	OutcomeContinue
	OutcomeWin
	OutcomeLose
	OutcomeTie
)

// String returns a short name used in logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeTie:
		return "tie"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Renderer displays or updates a party's grid with a caption.
type Renderer interface {
	RenderBoard(ctx context.Context, key int64, board Board, caption Caption) error
}

// Session is one party's game.
type Session struct {
	ID    string
	Board Board
	Phase Phase
}

// Config holds the collaborators of a Controller.
type Config struct {
	Opponent Strategy
	Locks    *lock.PartyLock
}

// Controller owns every party's session and drives the turn sequence.
type Controller struct {
	opponent Strategy
	locks    *lock.PartyLock

	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewController creates a Controller. A nil cfg or nil fields fall back to a
// uniform random opponent and a fresh PartyLock.
func NewController(cfg *Config) *Controller {
	c := &Controller{
		opponent: NewRandomOpponent(),
		locks:    lock.New(),
		sessions: make(map[int64]*Session),
	}
	if cfg != nil {
		if cfg.Opponent != nil {
			c.opponent = cfg.Opponent
		}
		if cfg.Locks != nil {
			c.locks = cfg.Locks
		}
	}
	return c
}

func (c *Controller) session(key int64) (*Session, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.sessions[key]
	return s, ok
}

// Start resets the party's game to an empty board and renders it.
func (c *Controller) Start(ctx context.Context, key int64, r Renderer) error {
	return c.locks.WithLock(key, func() error {
		s := &Session{
			ID:    uuid.NewString(),
			Board: NewBoard(),
			Phase: PhaseAwaitingHumanMove,
		}

		c.mu.Lock()
		c.sessions[key] = s
		c.mu.Unlock()

		log.Info().
			Int64("user_id", key).
			Str("game_id", s.ID).
			Msg("Game started")

		if err := r.RenderBoard(ctx, key, s.Board, CaptionYourTurn); err != nil {
			return fmt.Errorf("failed to render new game: %w", err)
		}
		return nil
	})
}

// Choose applies the party's move at cell and the opponent's reply.
// Occupied cells, finished games, unknown parties and out of range
// coordinates are ignored without rendering.
func (c *Controller) Choose(ctx context.Context, key int64, cell Coord, r Renderer) (Outcome, error) {
	var outcome Outcome
	err := c.locks.WithLock(key, func() error {
		s, ok := c.session(key)
		if !ok || s.Phase != PhaseAwaitingHumanMove || !cell.Valid() || s.Board.At(cell) != Empty {
			log.Debug().
				Int64("user_id", key).
				Int("row", cell.Row).
				Int("col", cell.Col).
				Bool("has_session", ok).
				Msg("Ignoring move")
			outcome = OutcomeIgnored
			return nil
		}

		outcome = c.playRound(s, cell)

		logEvent := log.Debug()
		if s.Phase == PhaseGameOver {
			logEvent = log.Info()
		}
		logEvent.
			Int64("user_id", key).
			Str("game_id", s.ID).
			Int("row", cell.Row).
			Int("col", cell.Col).
			Stringer("outcome", outcome).
			Msg("Round resolved")

		if err := r.RenderBoard(ctx, key, s.Board, captionFor(outcome)); err != nil {
			return fmt.Errorf("failed to render round: %w", err)
		}
		return nil
	})
	return outcome, err
}

// playRound places the human mark and, if the game goes on, the opponent's.
// cell must be free.
func (c *Controller) playRound(s *Session, cell Coord) Outcome {
	s.Board[cell.Row][cell.Col] = Human
	if s.Board.Won() {
		s.Phase = PhaseGameOver
		return OutcomeWin
	}

	free := s.Board.FreeCells()
	if len(free) == 0 {
		s.Phase = PhaseGameOver
		return OutcomeTie
	}

	reply := c.opponent.Pick(free)
	if err := s.Board.Place(reply, Opponent); err != nil {
		// An opponent that picks outside the free cells forfeits its turn.
		log.Error().Err(err).Str("game_id", s.ID).Msg("Opponent picked an unavailable cell")
		return OutcomeContinue
	}
	if s.Board.Won() {
		s.Phase = PhaseGameOver
		return OutcomeLose
	}
	return OutcomeContinue
}

func captionFor(o Outcome) Caption {
	switch o {
	case OutcomeWin:
		return CaptionWin
	case OutcomeLose:
		return CaptionLose
	case OutcomeTie:
		return CaptionTie
	default:
		return CaptionYourTurn
	}
}

// End discards the party's game. Nothing is rendered.
func (c *Controller) End(key int64) {
	_ = c.locks.WithLock(key, func() error {
		c.mu.Lock()
		s, ok := c.sessions[key]
		delete(c.sessions, key)
		c.mu.Unlock()

		if ok {
			log.Info().
				Int64("user_id", key).
				Str("game_id", s.ID).
				Stringer("phase", s.Phase).
				Msg("Game ended")
		}
		return nil
	})
}

// Snapshot returns a copy of the party's session.
func (c *Controller) Snapshot(key int64) (Session, bool) {
	var snap Session
	var found bool
	_ = c.locks.WithLock(key, func() error {
		if s, ok := c.session(key); ok {
			snap, found = *s, true
		}
		return nil
	})
	return snap, found
}

// Active returns the number of parties with a session.
func (c *Controller) Active() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.sessions)
}
