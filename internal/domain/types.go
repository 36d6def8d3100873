package domain

// Token marks the owner of a cell.
type Token int

const (
	Empty   Token = 0
	Player1 Token = 1
	Player2 Token = 2
)

// Board dimensions and the run length needed to win.
const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// Opponent returns the other player's token.
func Opponent(t Token) Token {
	if t == Player1 {
		return Player2
	}
	return Player1
}

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// Result is the outcome of a game so far. Winner is Empty unless Status is StatusWon.
type Result struct {
	Status GameStatus
	Winner Token
}

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrOutOfBounds   Error = "coordinates out of bounds"
	ErrColumnFull    Error = "column is full"
	ErrNotAToken     Error = "not a player token"
	ErrNoLegalMove   Error = "no legal move available"
	ErrGameOver      Error = "game is over"
	ErrInvalidPlayer Error = "invalid player id"
	ErrMoveInFlight  Error = "a move request is in flight"
	ErrBadSnapshot   Error = "malformed game snapshot"
	ErrNoSavedGame   Error = "no saved game"
)
