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

package game

// Outcome classifies a game position. Won and Drawn are terminal;
// play cannot continue past either.
type Outcome uint8

const (
	InProgress Outcome = iota
	Won
	Drawn
)

func (outcome Outcome) String() string {
	switch outcome {
	case Won:
		return "won"
	case Drawn:
		return "drawn"
	default:
		return "in progress"
	}
}

// Outcome reports the state of the game after the last move, along
// with the winner when there is one. Wins are checked before
// fullness, so a board-filling winning move counts as a win.
func (game *Game) Outcome() (Outcome, Cell) {
	if winner, won := game.CheckWin(); won {
		return Won, winner
	}

	if game.IsFull() {
		return Drawn, Empty
	}

	return InProgress, Empty
}
