package player

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/citorva/connect-four/internal/display"
	"github.com/citorva/connect-four/internal/domain"
)

// LineReader is the blocking input source for the CLI player. The readline
// instance used by the binary satisfies it; tests plug in a scripted stub.
type LineReader interface {
	Readline() (string, error)
}

// CLI asks a human for a column over a line-based terminal session. Malformed
// or unavailable input is re-prompted in place and never reaches the engine.
type CLI struct {
	name string
	in   LineReader
	out  io.Writer
	rend *display.Renderer
}

func NewCLI(name string, in LineReader, out io.Writer, rend *display.Renderer) *CLI {
	return &CLI{name: name, in: in, out: out, rend: rend}
}

func (p *CLI) Name() string {
	return p.name
}

// Rename changes the displayed player name between games.
func (p *CLI) Rename(name string) {
	p.name = name
}

func (p *CLI) ChooseMove(view domain.View, t domain.Token) (int, error) {
	columns := view.AvailableColumns()
	if len(columns) == 0 {
		return -1, domain.ErrNoLegalMove
	}

	fmt.Fprintf(p.out, "\n%s to play (%s)\n", p.name, p.rend.TokenLabel(t))
	fmt.Fprintln(p.out, p.rend.Board(view))

	if len(columns) == 1 {
		fmt.Fprintf(p.out, "Only one possible column: %d\n", columns[0])
		return columns[0], nil
	}

	for {
		fmt.Fprintf(p.out, "Choose a column %s\n", formatOptions(columns))
		line, err := p.in.Readline()
		if err != nil {
			return -1, fmt.Errorf("read move: %w", err)
		}

		column, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || !contains(columns, column) {
			fmt.Fprintf(p.out, "Invalid choice %q\n", strings.TrimSpace(line))
			continue
		}
		return column, nil
	}
}

func formatOptions(columns []int) string {
	parts := make([]string, len(columns))
	for i, c := range columns {
		parts[i] = strconv.Itoa(c)
	}
	return "[" + strings.Join(parts, "/") + "]"
}

func contains(columns []int, column int) bool {
	for _, c := range columns {
		if c == column {
			return true
		}
	}
	return false
}
