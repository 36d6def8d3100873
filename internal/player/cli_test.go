package player_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citorva/connect-four/internal/display"
	"github.com/citorva/connect-four/internal/domain"
	"github.com/citorva/connect-four/internal/player"
)

// stubReader feeds scripted lines, then EOF.
type stubReader struct {
	lines []string
}

func (r *stubReader) Readline() (string, error) {
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

func TestCLIAcceptsAValidColumn(t *testing.T) {
	var out bytes.Buffer
	p := player.NewCLI("Alice", &stubReader{lines: []string{"3"}}, &out, display.New(false))

	col, err := p.ChooseMove(domain.NewArea().View(), domain.Player1)
	require.NoError(t, err)
	assert.Equal(t, 3, col)
	assert.Contains(t, out.String(), "Alice to play")
	assert.Contains(t, out.String(), "[0/1/2/3/4/5/6]")
}

func TestCLIRepromptsOnMalformedInput(t *testing.T) {
	var out bytes.Buffer
	p := player.NewCLI("Alice", &stubReader{lines: []string{"abc", "42", " 5 "}}, &out, display.New(false))

	col, err := p.ChooseMove(domain.NewArea().View(), domain.Player1)
	require.NoError(t, err)
	assert.Equal(t, 5, col)
	assert.Contains(t, out.String(), `Invalid choice "abc"`)
	assert.Contains(t, out.String(), `Invalid choice "42"`)
}

func TestCLIRejectsFullColumns(t *testing.T) {
	a := domain.NewArea()
	for i := 0; i < domain.Rows; i++ {
		tok := domain.Player1
		if i%2 == 1 {
			tok = domain.Player2
		}
		_, err := a.Drop(2, tok)
		require.NoError(t, err)
	}

	var out bytes.Buffer
	p := player.NewCLI("Alice", &stubReader{lines: []string{"2", "1"}}, &out, display.New(false))

	col, err := p.ChooseMove(a.View(), domain.Player1)
	require.NoError(t, err)
	assert.Equal(t, 1, col, "a full column is not offered even though it is on the board")
}

func TestCLISingleRemainingColumnIsPlayedWithoutPrompting(t *testing.T) {
	a := domain.NewArea()
	for c := 0; c < domain.Columns-1; c++ {
		for r := 0; r < domain.Rows; r++ {
			tok := domain.Player1
			if (c+r)%2 == 1 {
				tok = domain.Player2
			}
			_, err := a.Drop(c, tok)
			require.NoError(t, err)
		}
	}

	var out bytes.Buffer
	p := player.NewCLI("Alice", &stubReader{}, &out, display.New(false))

	col, err := p.ChooseMove(a.View(), domain.Player2)
	require.NoError(t, err)
	assert.Equal(t, 6, col)
	assert.Contains(t, out.String(), "Only one possible column: 6")
}

func TestCLIPropagatesInputErrors(t *testing.T) {
	var out bytes.Buffer
	p := player.NewCLI("Alice", &stubReader{}, &out, display.New(false))

	_, err := p.ChooseMove(domain.NewArea().View(), domain.Player1)
	assert.ErrorIs(t, err, io.EOF)
}

func TestCLIRename(t *testing.T) {
	p := player.NewCLI("Player 1", &stubReader{}, io.Discard, display.New(false))
	assert.Equal(t, "Player 1", p.Name())
	p.Rename("Marie")
	assert.Equal(t, "Marie", p.Name())
}
