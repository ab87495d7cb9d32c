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

// Package console implements play.Console on the process's standard
// streams.
package console

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

type Terminal struct {
	reader *bufio.Reader
	writer io.Writer
	isTTY  bool
}

// New returns a Terminal reading stdin and writing stdout.
func New() *Terminal {
	return &Terminal{
		reader: bufio.NewReader(os.Stdin),
		isTTY:  term.IsTerminal(int(os.Stdout.Fd())),
		writer: os.Stdout,
	}
}

// ReadLine shows the prompt and blocks for one line of input. A final
// unterminated line is returned as-is; only an empty read reports the
// underlying error.
func (terminal *Terminal) ReadLine(prompt string) (string, error) {
	fmt.Fprint(terminal.writer, prompt)

	line, err := terminal.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

func (terminal *Terminal) WriteLine(format string, a ...any) {
	fmt.Fprintf(terminal.writer, format+"\n", a...)
}

// Clear wipes the screen and homes the cursor. A no-op when stdout is
// not a terminal, so piped output stays readable.
func (terminal *Terminal) Clear() {
	if terminal.isTTY {
		fmt.Fprint(terminal.writer, "\x1b[2J\x1b[H")
	}
}
