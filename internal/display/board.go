package display

import (
	"strings"

	"github.com/citorva/connect-four/internal/domain"
)

// Renderer draws the board-query interface as text. It only ever consumes the
// read-only view, like any other front end.
type Renderer struct {
	color bool
}

func New(color bool) *Renderer {
	return &Renderer{color: color}
}

// glyph returns the raw (uncolored) character for a cell.
func glyph(t domain.Token) string {
	switch t {
	case domain.Player1:
		return "X"
	case domain.Player2:
		return "O"
	default:
		return " "
	}
}

func (r *Renderer) cell(t domain.Token) string {
	g := glyph(t)
	if !r.color || t == domain.Empty {
		return g
	}
	if t == domain.Player1 {
		return Yellow + g + Reset
	}
	return Red + g + Reset
}

// TokenLabel names a token for prompts and announcements.
func (r *Renderer) TokenLabel(t domain.Token) string {
	return r.cell(t)
}

// Board renders the grid top row first, with a column header, matching the
// (column, row) convention where row 0 sits at the bottom.
func (r *Renderer) Board(view domain.View) string {
	var b strings.Builder

	for c := 0; c < domain.Columns; c++ {
		b.WriteString("| ")
		b.WriteByte(byte('0') + byte(c))
		b.WriteString(" ")
	}
	b.WriteString("|\n")

	sep := strings.Repeat("+---", domain.Columns) + "+"
	b.WriteString(sep)
	b.WriteString("\n")

	for row := domain.Rows - 1; row >= 0; row-- {
		for c := 0; c < domain.Columns; c++ {
			t, _ := view.Get(c, row)
			b.WriteString("| ")
			b.WriteString(r.cell(t))
			b.WriteString(" ")
		}
		b.WriteString("|\n")
	}
	b.WriteString(sep)

	return b.String()
}
