package domain

// Snapshot is the serializable shape of a game in progress, used by the
// save/resume layer. Board is a Columns*Rows character string, one digit per
// cell ('0' empty, '1'/'2' tokens), column by column from the left, each
// column bottom row first.
type Snapshot struct {
	Board string
	Turn  Token
	Moves int
}

// Encode serializes the grid into the snapshot board format.
func (a *Area) Encode() string {
	buf := make([]byte, 0, Columns*Rows)
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			buf = append(buf, byte('0')+byte(a.grid[c][r]))
		}
	}
	return string(buf)
}

// DecodeArea rebuilds a grid from its encoded form. The encoding is validated
// structurally: exact length, digit alphabet, and the gravity invariant (no
// token may float above an empty cell).
func DecodeArea(s string) (*Area, error) {
	if len(s) != Columns*Rows {
		return nil, ErrBadSnapshot
	}
	a := NewArea()
	i := 0
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			t := Token(s[i] - '0')
			i++
			switch t {
			case Empty:
				continue
			case Player1, Player2:
				if r != a.heights[c] {
					return nil, ErrBadSnapshot
				}
				a.grid[c][r] = t
				a.heights[c] = r + 1
				a.moves++
			default:
				return nil, ErrBadSnapshot
			}
		}
	}
	return a, nil
}

// Snapshot captures the current game for persistence. Only meaningful while
// the game is active; terminal games are deleted, not saved.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Board: e.area.Encode(),
		Turn:  e.current,
		Moves: e.area.Moves(),
	}
}

// RestoreEngine rebuilds a mid-game engine from a snapshot and two player
// handles. Beyond the structural checks of DecodeArea it rejects snapshots
// that could not occur in live play: a finished position, a move count that
// does not match the grid, or a turn inconsistent with the token counts
// (player one always moves first).
func RestoreEngine(snap Snapshot, playerOne, playerTwo Player) (*Engine, error) {
	area, err := DecodeArea(snap.Board)
	if err != nil {
		return nil, err
	}
	if snap.Moves != area.Moves() {
		return nil, ErrBadSnapshot
	}
	if snap.Turn != Player1 && snap.Turn != Player2 {
		return nil, ErrBadSnapshot
	}

	ones, twos := 0, 0
	for c := 0; c < Columns; c++ {
		for r := 0; r < area.heights[c]; r++ {
			if area.grid[c][r] == Player1 {
				ones++
			} else {
				twos++
			}
		}
	}
	balanced := ones == twos && snap.Turn == Player1
	oneAhead := ones == twos+1 && snap.Turn == Player2
	if !balanced && !oneAhead {
		return nil, ErrBadSnapshot
	}

	if _, won := scanWinner(area); won || area.IsFull() {
		return nil, ErrBadSnapshot
	}

	return &Engine{
		area:    area,
		players: [2]Player{playerOne, playerTwo},
		current: snap.Turn,
		result:  Result{Status: StatusActive},
	}, nil
}
