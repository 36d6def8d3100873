package domain

// Area is the playing grid. Cells are addressed as (column, row) with row 0 at
// the bottom, and are written exactly once: a token enters through Drop and
// never moves again.
type Area struct {
	grid    [Columns][Rows]Token
	heights [Columns]int
	moves   int
}

// NewArea creates an empty grid.
func NewArea() *Area {
	return &Area{}
}

// Drop places a token at the lowest empty row of column and returns that row.
func (a *Area) Drop(column int, t Token) (int, error) {
	if t != Player1 && t != Player2 {
		return -1, ErrNotAToken
	}
	if column < 0 || column >= Columns {
		return -1, ErrOutOfBounds
	}
	row := a.heights[column]
	if row >= Rows {
		return -1, ErrColumnFull
	}
	a.grid[column][row] = t
	a.heights[column] = row + 1
	a.moves++
	return row, nil
}

// Get returns the token occupying (column, row), or Empty.
func (a *Area) Get(column, row int) (Token, error) {
	if column < 0 || column >= Columns || row < 0 || row >= Rows {
		return Empty, ErrOutOfBounds
	}
	return a.grid[column][row], nil
}

// Height returns the number of tokens stacked in column.
func (a *Area) Height(column int) int {
	if column < 0 || column >= Columns {
		return 0
	}
	return a.heights[column]
}

// Moves returns the total number of tokens placed so far.
func (a *Area) Moves() int {
	return a.moves
}

func (a *Area) IsFull() bool {
	return a.moves >= Rows*Columns
}

func (a *Area) IsEmpty() bool {
	return a.moves == 0
}

// AvailableColumns lists the columns that still accept a drop, left to right.
func (a *Area) AvailableColumns() []int {
	cols := make([]int, 0, Columns)
	for c := 0; c < Columns; c++ {
		if a.heights[c] < Rows {
			cols = append(cols, c)
		}
	}
	return cols
}

// Clone creates a deep copy of the grid, useful to players that want to try
// moves out without touching the live game.
func (a *Area) Clone() *Area {
	na := *a
	return &na
}

// View returns a read-only accessor for this grid. The engine hands views to
// players and renderers so that nothing outside the engine can mutate the game.
func (a *Area) View() View {
	return View{a: a}
}

// View is the read-only face of an Area.
type View struct {
	a *Area
}

func (v View) Get(column, row int) (Token, error) { return v.a.Get(column, row) }
func (v View) Height(column int) int              { return v.a.Height(column) }
func (v View) Moves() int                         { return v.a.Moves() }
func (v View) IsFull() bool                       { return v.a.IsFull() }
func (v View) IsEmpty() bool                      { return v.a.IsEmpty() }
func (v View) AvailableColumns() []int            { return v.a.AvailableColumns() }

// Clone materializes an independent copy of the viewed grid.
func (v View) Clone() *Area { return v.a.Clone() }
