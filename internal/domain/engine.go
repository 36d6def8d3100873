package domain

import (
	"errors"
	"fmt"
)

// Player is the capability any move source must provide. ChooseMove receives a
// read-only view of the grid and the token being played, and blocks until it
// can return a column in [0, Columns). The engine never calls it on a full
// board; a player that still finds no legal move returns ErrNoLegalMove, which
// the engine treats as fatal.
type Player interface {
	ChooseMove(view View, t Token) (int, error)
	Name() string
}

// TurnOutcome describes the single ply advanced by PlayTurn.
type TurnOutcome struct {
	Column int
	Row    int
	Token  Token
	Result Result
}

// Engine owns the grid and both player handles and drives the alternating
// turns. Players only ever see read-only views.
type Engine struct {
	area     *Area
	players  [2]Player
	current  Token
	result   Result
	inFlight bool
}

// NewEngine creates an engine with an empty grid. Player one moves first.
func NewEngine(playerOne, playerTwo Player) *Engine {
	return &Engine{
		area:    NewArea(),
		players: [2]Player{playerOne, playerTwo},
		current: Player1,
		result:  Result{Status: StatusActive},
	}
}

// SetPlayer swaps the handle in slot id (1 or 2). The swap takes effect on the
// next move request; it is rejected while a request is outstanding.
func (e *Engine) SetPlayer(id int, p Player) error {
	if id != 1 && id != 2 {
		return ErrInvalidPlayer
	}
	if p == nil {
		return ErrInvalidPlayer
	}
	if e.inFlight {
		return ErrMoveInFlight
	}
	e.players[id-1] = p
	return nil
}

// Player returns the handle holding the given token.
func (e *Engine) Player(t Token) Player {
	if t == Player2 {
		return e.players[1]
	}
	return e.players[0]
}

// Board exposes the read-only view renderers and players consume.
func (e *Engine) Board() View {
	return e.area.View()
}

// Turn returns the token that plays next.
func (e *Engine) Turn() Token {
	return e.current
}

// Result returns the outcome so far.
func (e *Engine) Result() Result {
	return e.result
}

func (e *Engine) Finished() bool {
	return e.result.Status != StatusActive
}

// PlayTurn advances the game by exactly one ply. A full or out-of-range column
// from the player is not fatal: the same player is asked again until the drop
// lands. Any error returned by the player itself aborts the ply.
func (e *Engine) PlayTurn() (TurnOutcome, error) {
	if e.result.Status != StatusActive {
		return TurnOutcome{}, ErrGameOver
	}
	if e.inFlight {
		return TurnOutcome{}, ErrMoveInFlight
	}
	e.inFlight = true
	defer func() { e.inFlight = false }()

	p := e.Player(e.current)
	for {
		column, err := p.ChooseMove(e.area.View(), e.current)
		if err != nil {
			return TurnOutcome{}, fmt.Errorf("player %q: %w", p.Name(), err)
		}

		row, err := e.area.Drop(column, e.current)
		if errors.Is(err, ErrColumnFull) || errors.Is(err, ErrOutOfBounds) {
			// recoverable, same player retries
			continue
		}
		if err != nil {
			return TurnOutcome{}, err
		}

		e.result = Evaluate(e.area, column, row)
		out := TurnOutcome{Column: column, Row: row, Token: e.current, Result: e.result}
		if e.result.Status == StatusActive {
			e.current = Opponent(e.current)
		}
		return out, nil
	}
}

// Run plays turn after turn until the game reaches a terminal state.
func (e *Engine) Run() (Result, error) {
	for e.result.Status == StatusActive {
		if _, err := e.PlayTurn(); err != nil {
			return e.result, err
		}
	}
	return e.result, nil
}

// Reset clears the grid and turn state for a new game, keeping both players.
func (e *Engine) Reset() {
	e.area = NewArea()
	e.current = Player1
	e.result = Result{Status: StatusActive}
	e.inFlight = false
}
