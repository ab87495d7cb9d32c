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

package common

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Settings are the user preferences remembered between runs. Game
// state is never persisted, only these.
type Settings struct {
	BoardSize int  `yaml:"board-size"`
	NoColor   bool `yaml:"no-color,omitempty"`
}

func (settings *Settings) Dump() {
	file, _ := yaml.Marshal(settings)
	_ = os.WriteFile(SettingsFile, file, FilePermissions)
}

var UserSettings Settings

func init() {
	TryMkdir(TictacDirectory)
	TryCreate(SettingsFile, BaseSettingsFile)

	file, _ := os.ReadFile(SettingsFile)
	_ = yaml.Unmarshal(file, &UserSettings)

	// A missing or hand-emptied file falls back to the smallest board.
	if UserSettings.BoardSize == 0 {
		UserSettings.BoardSize = 3
	}
}
