package play

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"laptudirm.com/x/tictac/pkg/game"
)

func init() {
	// Keep output assertions byte-stable.
	color.NoColor = true
}

// scriptedConsole feeds canned input lines and records everything the
// session writes.
type scriptedConsole struct {
	inputs  []string
	prompts []string
	lines   []string
	clears  int
}

func (console *scriptedConsole) ReadLine(prompt string) (string, error) {
	console.prompts = append(console.prompts, prompt)

	if len(console.inputs) == 0 {
		return "", io.EOF
	}

	line := console.inputs[0]
	console.inputs = console.inputs[1:]
	return line, nil
}

func (console *scriptedConsole) WriteLine(format string, a ...any) {
	console.lines = append(console.lines, fmt.Sprintf(format, a...))
}

func (console *scriptedConsole) Clear() {
	console.clears++
}

func (console *scriptedConsole) output() string {
	return strings.Join(console.lines, "\n")
}

// xWinsTopRow beats O before O does anything useful.
var xWinsTopRow = []string{"11", "12", "21", "22", "31"}

// drawnIn9 fills a 3×3 board with no line for either player.
var drawnIn9 = []string{"11", "21", "31", "22", "12", "32", "23", "13", "33"}

func TestSession_Play_Win(t *testing.T) {
	// Given: a session scripted with X completing the top row
	console := &scriptedConsole{inputs: xWinsTopRow}
	session := &Session{Game: game.New(3), Console: console}

	// When: the session plays out
	outcome, err := session.Play()

	// Then: X is announced the winner
	require.NoError(t, err)
	require.Equal(t, game.Won, outcome)
	require.Contains(t, console.output(), "Player X wins!")
	require.Equal(t, 1, console.clears)

	// Then: the prompts alternated between the players
	require.Contains(t, console.prompts[0], "Player X's turn")
	require.Contains(t, console.prompts[1], "Player O's turn")
}

func TestSession_Play_Draw(t *testing.T) {
	// Given: a session scripted to fill the board without a winner
	console := &scriptedConsole{inputs: drawnIn9}
	session := &Session{Game: game.New(3), Console: console}

	// When: the session plays out
	outcome, err := session.Play()

	// Then: the game is a tie
	require.NoError(t, err)
	require.Equal(t, game.Drawn, outcome)
	require.Contains(t, console.output(), "It's a tie!")
}

func TestSession_Play_RepromptsOnBadInput(t *testing.T) {
	// Given: junk interleaved into a winning script
	inputs := append([]string{"abc", "55", "11 "}, xWinsTopRow[1:]...)
	console := &scriptedConsole{inputs: inputs}
	session := &Session{Game: game.New(3), Console: console}

	// When: the session plays out
	outcome, err := session.Play()

	// Then: each rejected input produced a message and a re-prompt,
	// and the game still finished normally
	require.NoError(t, err)
	require.Equal(t, game.Won, outcome)

	invalid := 0
	for _, line := range console.lines {
		if strings.Contains(line, "Invalid move") {
			invalid++
		}
	}
	assert.Equal(t, 2, invalid)
	assert.Contains(t, console.output(), "Player X wins!")
}

func TestSession_Play_EndOfInput(t *testing.T) {
	// Given: a console with no input at all
	console := &scriptedConsole{}
	session := &Session{Game: game.New(3), Console: console}

	// When: the session tries to read the first move
	outcome, err := session.Play()

	// Then: the read error surfaces and the game never ended
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, game.InProgress, outcome)
}

func TestSession_RenderBoard(t *testing.T) {
	// Given: a 3×3 game with a few markers placed
	g := game.New(3)
	require.NoError(t, g.TryMove("11")) // X top-left
	g.SwitchPlayer()
	require.NoError(t, g.TryMove("31")) // O top-right
	g.SwitchPlayer()
	require.NoError(t, g.TryMove("22")) // X center
	g.SwitchPlayer()
	require.NoError(t, g.TryMove("33")) // O bottom-right

	console := &scriptedConsole{}
	session := &Session{Game: g, Console: console}

	// When: the board is rendered
	session.RenderBoard()

	// Then: the grid matches the box-drawing layout
	require.Equal(t, []string{
		"    1   2   3  ",
		"  ┌───┬───┬───┐",
		"1 │ X │ - │ O │",
		"  ├───┼───┼───┤",
		"2 │ - │ X │ - │",
		"  ├───┼───┼───┤",
		"3 │ - │ - │ O │",
		"  └───┴───┴───┘",
	}, console.lines)
}

func TestRun_Replay(t *testing.T) {
	// Given: two winning games and a declined third
	inputs := append([]string{}, xWinsTopRow...)
	inputs = append(inputs, "Yes")
	inputs = append(inputs, xWinsTopRow...)
	inputs = append(inputs, "n")

	console := &scriptedConsole{inputs: inputs}

	// When: the run loop plays
	err := Run(console, 3)

	// Then: exactly two games were played to a win
	require.NoError(t, err)

	wins := 0
	for _, line := range console.lines {
		if strings.Contains(line, "wins!") {
			wins++
		}
	}
	require.Equal(t, 2, wins)
	require.Equal(t, 2, console.clears)
}

func TestRun_AnyAnswerWithoutYEnds(t *testing.T) {
	// Given: one game and a replay answer without a 'y'
	inputs := append([]string{}, xWinsTopRow...)
	inputs = append(inputs, "ok")

	console := &scriptedConsole{inputs: inputs}

	// When: the run loop plays
	err := Run(console, 3)

	// Then: the run ended after one game even though the answer was
	// positive in spirit
	require.NoError(t, err)
	require.Equal(t, 1, console.clears)
}

func TestRun_EndOfInputIsADecline(t *testing.T) {
	// Given: a console that hits end of input immediately
	console := &scriptedConsole{}

	// When: the run loop starts
	err := Run(console, 3)

	// Then: the run ends cleanly
	require.NoError(t, err)
}
