// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package game implements the tic-tac-toe rules on square boards of
// side 3 to 9: move validation, turn bookkeeping and win and draw
// detection. It does no input or output of its own; the presentation
// layer in pkg/play drives it.
package game

import (
	"errors"
	"fmt"
)

// Allowed board sizes. Sizes outside this range are clamped, not
// rejected.
const (
	MinSize = 3
	MaxSize = 9
)

var (
	ErrMalformedInput = errors.New("enter a column and a row digit")
	ErrOutOfBounds    = errors.New("position is outside the board")
	ErrCellOccupied   = errors.New("cell is already occupied")
)

// Cell is the content of a single board square.
type Cell uint8

const (
	Empty Cell = iota
	X
	O
)

// String returns the display glyph for the cell.
func (cell Cell) String() string {
	switch cell {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "-"
	}
}

// Game is the state of a single tic-tac-toe game: the board and the
// player whose turn it is. The board is only ever mutated through
// TryMove.
type Game struct {
	board  [][]Cell
	size   int
	player Cell
}

// New creates a fresh game with an empty size×size board and X to
// move. The size is clamped into [MinSize, MaxSize].
func New(size int) *Game {
	size = ClampSize(size)

	board := make([][]Cell, size)
	for i := range board {
		board[i] = make([]Cell, size)
	}

	return &Game{
		board:  board,
		size:   size,
		player: X,
	}
}

// ClampSize forces a requested board size into [MinSize, MaxSize].
func ClampSize(size int) int {
	if size < MinSize {
		return MinSize
	}

	if size > MaxSize {
		return MaxSize
	}

	return size
}

// Size returns the side length of the board.
func (game *Game) Size() int {
	return game.size
}

// Player returns the player whose turn it is.
func (game *Game) Player() Cell {
	return game.player
}

// Symbol returns the contents of the cell at the given 0-indexed
// coordinates.
func (game *Game) Symbol(row, col int) Cell {
	return game.board[row][col]
}

// TryMove parses raw as a move for the current player and plays it.
// A move is exactly two ASCII digits, the 1-indexed column followed
// by the 1-indexed row. It returns ErrMalformedInput, ErrOutOfBounds
// or ErrCellOccupied without touching the board, or places the
// current player's marker and returns nil. The turn is not switched;
// the caller switches it with SwitchPlayer once it knows the game
// goes on.
func (game *Game) TryMove(raw string) error {
	if len(raw) != 2 {
		return fmt.Errorf("%w: got %q", ErrMalformedInput, raw)
	}

	col, okCol := digit(raw[0])
	row, okRow := digit(raw[1])
	if !okCol || !okRow {
		return fmt.Errorf("%w: got %q", ErrMalformedInput, raw)
	}

	if row < 0 || row >= game.size || col < 0 || col >= game.size {
		return fmt.Errorf("%w: column %d row %d", ErrOutOfBounds, col+1, row+1)
	}

	if game.board[row][col] != Empty {
		return fmt.Errorf("%w: column %d row %d", ErrCellOccupied, col+1, row+1)
	}

	game.board[row][col] = game.player
	return nil
}

// digit converts an ASCII digit to a 0-indexed coordinate. '0' maps
// to -1 and is caught by the bounds check, not the parse.
func digit(c byte) (int, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}

	return int(c) - '1', true
}

// CheckWin scans for a line fully owned by one player and returns its
// owner. The scan order is rows top to bottom, then columns left to
// right, then the main diagonal, then the anti-diagonal; the first
// owned line found wins.
func (game *Game) CheckWin() (Cell, bool) {
	for row := 0; row < game.size; row++ {
		if owner, owned := game.lineOwner(row, 0, 0, 1); owned {
			return owner, true
		}
	}

	for col := 0; col < game.size; col++ {
		if owner, owned := game.lineOwner(0, col, 1, 0); owned {
			return owner, true
		}
	}

	if owner, owned := game.lineOwner(0, 0, 1, 1); owned {
		return owner, true
	}

	if owner, owned := game.lineOwner(0, game.size-1, 1, -1); owned {
		return owner, true
	}

	return Empty, false
}

// lineOwner walks the size cells starting at (row, col) along
// (deltaRow, deltaCol) and reports their common owner, if any.
func (game *Game) lineOwner(row, col, deltaRow, deltaCol int) (Cell, bool) {
	owner := game.board[row][col]
	if owner == Empty {
		return Empty, false
	}

	for i := 1; i < game.size; i++ {
		if game.board[row+i*deltaRow][col+i*deltaCol] != owner {
			return Empty, false
		}
	}

	return owner, true
}

// IsFull reports whether no empty cell remains.
func (game *Game) IsFull() bool {
	for _, row := range game.board {
		for _, cell := range row {
			if cell == Empty {
				return false
			}
		}
	}

	return true
}

// SwitchPlayer toggles the player to move. Callers only invoke this
// when the game continues, so a finished game keeps the winner as the
// player to move.
func (game *Game) SwitchPlayer() {
	if game.player == X {
		game.player = O
	} else {
		game.player = X
	}
}
