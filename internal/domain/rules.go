package domain

// directions holds one step vector per axis: horizontal, vertical,
// diagonal up-right and diagonal down-right.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// countRun counts consecutive tokens of the same owner starting next to
// (column, row) and walking in steps of (deltaCol, deltaRow).
func countRun(a *Area, column, row, deltaCol, deltaRow int, t Token) int {
	count := 0
	c, r := column+deltaCol, row+deltaRow
	for c >= 0 && c < Columns && r >= 0 && r < Rows && a.grid[c][r] == t {
		count++
		c += deltaCol
		r += deltaRow
	}
	return count
}

// IsWinningMove reports whether the token at (column, row) completes a run of
// ToWin along any axis. Only the lines through that cell are examined, which
// keeps the check constant-time instead of rescanning the whole grid.
func IsWinningMove(a *Area, column, row int) bool {
	t := a.grid[column][row]
	if t == Empty {
		return false
	}
	for _, d := range directions {
		run := 1 +
			countRun(a, column, row, d[0], d[1], t) +
			countRun(a, column, row, -d[0], -d[1], t)
		if run >= ToWin {
			return true
		}
	}
	return false
}

// Evaluate classifies the game right after a drop landed at (column, row).
// A win is reported even when that same drop also fills the board.
func Evaluate(a *Area, column, row int) Result {
	if IsWinningMove(a, column, row) {
		return Result{Status: StatusWon, Winner: a.grid[column][row]}
	}
	if a.IsFull() {
		return Result{Status: StatusDraw}
	}
	return Result{Status: StatusActive}
}

// scanWinner searches the whole grid for a completed run. Slower than
// IsWinningMove and only used to validate positions that did not come from
// live play, such as restored snapshots.
func scanWinner(a *Area) (Token, bool) {
	for c := 0; c < Columns; c++ {
		for r := 0; r < a.heights[c]; r++ {
			if IsWinningMove(a, c, r) {
				return a.grid[c][r], true
			}
		}
	}
	return Empty, false
}
