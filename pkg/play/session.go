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

// Package play drives a game.Game through a Console, alternating the
// two players on one keyboard until a terminal state is reached.
package play

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/tictac/pkg/game"
)

// Console is the whole terminal surface the session needs. The game
// engine itself never touches it.
type Console interface {
	// ReadLine shows the prompt and returns one line of input
	// without its trailing newline.
	ReadLine(prompt string) (string, error)
	WriteLine(format string, a ...any)
	Clear()
}

// Session plays a single game on a console. A fresh Session is
// created for every game; nothing carries over between replays except
// the board size.
type Session struct {
	Game    *game.Game
	Console Console
}

var markerColors = map[game.Cell]*color.Color{
	game.X: color.New(color.FgRed, color.Bold),
	game.O: color.New(color.FgBlue, color.Bold),
}

func glyph(cell game.Cell) string {
	if marker, found := markerColors[cell]; found {
		return marker.Sprint(cell.String())
	}

	return cell.String()
}

// Play runs the session to a terminal state: render, prompt, move,
// check. Rejected moves leave the game untouched and re-prompt
// without limit. The returned error is only ever a console read
// failure.
func (session *Session) Play() (game.Outcome, error) {
	session.Console.Clear()

	for {
		session.RenderBoard()

		raw, err := session.Console.ReadLine(
			fmt.Sprintf("Player %s's turn (column+row): ", glyph(session.Game.Player())))
		if err != nil {
			return game.InProgress, err
		}

		if err := session.Game.TryMove(strings.TrimSpace(raw)); err != nil {
			logrus.Trace(err)
			session.Console.WriteLine("Invalid move: %v. Try again.", err)
			continue
		}

		switch outcome, winner := session.Game.Outcome(); outcome {
		case game.Won:
			session.RenderBoard()
			session.Console.WriteLine("Player %s wins!", glyph(winner))
			return game.Won, nil

		case game.Drawn:
			session.RenderBoard()
			session.Console.WriteLine("It's a tie!")
			return game.Drawn, nil
		}

		session.Game.SwitchPlayer()
	}
}

// RenderBoard writes the board with box-drawing borders, 1-indexed
// column labels on top and row labels on the left:
//
//	    1   2   3
//	  ┌───┬───┬───┐
//	1 │ X │ - │ O │
//	  ├───┼───┼───┤
//	  ...
func (session *Session) RenderBoard() {
	size := session.Game.Size()

	header := "   "
	for col := 1; col <= size; col++ {
		header += fmt.Sprintf(" %d  ", col)
	}
	session.Console.WriteLine("%s", header)

	session.Console.WriteLine("  ┌%s───┐", strings.Repeat("───┬", size-1))

	for row := 0; row < size; row++ {
		line := fmt.Sprintf("%d │", row+1)
		for col := 0; col < size; col++ {
			line += " " + glyph(session.Game.Symbol(row, col)) + " │"
		}
		session.Console.WriteLine("%s", line)

		if row < size-1 {
			session.Console.WriteLine("  ├%s───┤", strings.Repeat("───┼", size-1))
		}
	}

	session.Console.WriteLine("  └%s───┘", strings.Repeat("───┴", size-1))
}

// Run plays games on the console until a player declines the replay
// prompt. Every replay starts a fresh game of the same size; the size
// is never re-asked within a run. Any answer containing 'y' replays;
// anything else, end of input included, ends the run.
func Run(console Console, size int) error {
	for {
		session := &Session{
			Game:    game.New(size),
			Console: console,
		}

		if _, err := session.Play(); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		answer, err := console.ReadLine("\nPlay again? (y/n): ")
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if !strings.Contains(strings.ToLower(answer), "y") {
			return nil
		}
	}
}
