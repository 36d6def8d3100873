package display_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/citorva/connect-four/internal/display"
	"github.com/citorva/connect-four/internal/domain"
)

func TestBoardRendering(t *testing.T) {
	a := domain.NewArea()
	_, err := a.Drop(0, domain.Player1)
	require.NoError(t, err)
	_, err = a.Drop(0, domain.Player2)
	require.NoError(t, err)
	_, err = a.Drop(3, domain.Player1)
	require.NoError(t, err)

	got := display.New(false).Board(a.View())

	want := strings.Join([]string{
		"| 0 | 1 | 2 | 3 | 4 | 5 | 6 |",
		"+---+---+---+---+---+---+---+",
		"|   |   |   |   |   |   |   |",
		"|   |   |   |   |   |   |   |",
		"|   |   |   |   |   |   |   |",
		"|   |   |   |   |   |   |   |",
		"| O |   |   |   |   |   |   |",
		"| X |   |   | X |   |   |   |",
		"+---+---+---+---+---+---+---+",
	}, "\n")
	assert.Equal(t, want, got)
}

func TestColoredCells(t *testing.T) {
	a := domain.NewArea()
	_, err := a.Drop(2, domain.Player1)
	require.NoError(t, err)
	_, err = a.Drop(2, domain.Player2)
	require.NoError(t, err)

	got := display.New(true).Board(a.View())
	assert.Contains(t, got, display.Yellow+"X"+display.Reset)
	assert.Contains(t, got, display.Red+"O"+display.Reset)
}

func TestTokenLabel(t *testing.T) {
	r := display.New(false)
	assert.Equal(t, "X", r.TokenLabel(domain.Player1))
	assert.Equal(t, "O", r.TokenLabel(domain.Player2))
}

func TestColorEnabledModes(t *testing.T) {
	assert.True(t, display.ColorEnabled("on"))
	assert.False(t, display.ColorEnabled("off"))
}
