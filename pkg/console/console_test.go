package console

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTerminal(input string) (*Terminal, *bytes.Buffer) {
	var output bytes.Buffer
	return &Terminal{
		reader: bufio.NewReader(strings.NewReader(input)),
		writer: &output,
	}, &output
}

func TestTerminal_ReadLine(t *testing.T) {
	t.Run("strips the line ending", func(t *testing.T) {
		terminal, output := testTerminal("12\n34\r\n")

		line, err := terminal.ReadLine("> ")
		require.NoError(t, err)
		require.Equal(t, "12", line)
		require.Equal(t, "> ", output.String())

		line, err = terminal.ReadLine("> ")
		require.NoError(t, err)
		require.Equal(t, "34", line)
	})

	t.Run("returns a final unterminated line", func(t *testing.T) {
		terminal, _ := testTerminal("99")

		line, err := terminal.ReadLine("")
		require.NoError(t, err)
		require.Equal(t, "99", line)

		// The next read has nothing left.
		_, err = terminal.ReadLine("")
		require.ErrorIs(t, err, io.EOF)
	})
}

func TestTerminal_WriteLine(t *testing.T) {
	terminal, output := testTerminal("")

	terminal.WriteLine("Player %s wins!", "X")
	assert.Equal(t, "Player X wins!\n", output.String())
}

func TestTerminal_Clear(t *testing.T) {
	// Given: a terminal whose output is not a tty
	terminal, output := testTerminal("")

	// When: the screen is cleared
	terminal.Clear()

	// Then: nothing is written
	assert.Empty(t, output.String())

	// When: the output claims to be a tty
	terminal.isTTY = true
	terminal.Clear()

	// Then: the ANSI clear sequence is written
	assert.Equal(t, "\x1b[2J\x1b[H", output.String())
}
