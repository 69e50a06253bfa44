// Copyright © 2025 Kaleido, Inc.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"fmt"
	"io"
	"time"

	"github.com/briandowns/spinner"
)

// SpinnerLogger shows the latest message as the suffix of a terminal spinner.
// Warnings and errors are also kept so they can be reported once the spinner
// has stopped.
type SpinnerLogger struct {
	Spinner  *spinner.Spinner
	logLevel LogLevel
	held     []string
}

func NewSpinnerLogger(out io.Writer) *SpinnerLogger {
	spin := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(out))
	spin.FinalMSG = "done\n"
	return &SpinnerLogger{
		Spinner:  spin,
		logLevel: Info,
	}
}

func (l *SpinnerLogger) Start() {
	l.Spinner.Start()
}

// Stop halts the spinner and returns any warnings or errors seen while it ran.
func (l *SpinnerLogger) Stop() []string {
	l.Spinner.Stop()
	held := l.held
	l.held = nil
	return held
}

func (l *SpinnerLogger) SetLogLevel(level LogLevel) {
	l.logLevel = level
}

func (l *SpinnerLogger) suffix(s string) {
	l.Spinner.Lock()
	l.Spinner.Suffix = fmt.Sprintf(" %s...", s)
	l.Spinner.Unlock()
}

func (l *SpinnerLogger) Trace(s string) {
	if l.logLevel <= Trace {
		l.suffix(s)
	}
}

func (l *SpinnerLogger) Debug(s string) {
	if l.logLevel <= Debug {
		l.suffix(s)
	}
}

func (l *SpinnerLogger) Info(s string) {
	if l.logLevel <= Info {
		l.suffix(s)
	}
}

func (l *SpinnerLogger) Warn(s string) {
	if l.logLevel <= Warn {
		l.suffix(s)
		l.held = append(l.held, s)
	}
}

func (l *SpinnerLogger) Error(e error) {
	if l.logLevel <= Error {
		l.suffix("Error: " + e.Error())
		l.held = append(l.held, "Error: "+e.Error())
	}
}
