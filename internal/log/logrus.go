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
	"io"

	"github.com/sirupsen/logrus"
)

// LogrusLogger writes leveled, timestamped lines through logrus. It is used
// for --verbose runs, where the plain stdout logger would interleave badly
// with the prompts.
type LogrusLogger struct {
	entry *logrus.Entry
}

func NewLogrusLogger(out io.Writer, fields logrus.Fields) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})
	return &LogrusLogger{entry: l.WithFields(fields)}
}

func (l *LogrusLogger) SetLogLevel(level LogLevel) {
	switch level {
	case Trace:
		l.entry.Logger.SetLevel(logrus.TraceLevel)
	case Debug:
		l.entry.Logger.SetLevel(logrus.DebugLevel)
	case Info:
		l.entry.Logger.SetLevel(logrus.InfoLevel)
	case Warn:
		l.entry.Logger.SetLevel(logrus.WarnLevel)
	default:
		l.entry.Logger.SetLevel(logrus.ErrorLevel)
	}
}

func (l *LogrusLogger) Trace(s string) {
	l.entry.Trace(s)
}

func (l *LogrusLogger) Debug(s string) {
	l.entry.Debug(s)
}

func (l *LogrusLogger) Info(s string) {
	l.entry.Info(s)
}

func (l *LogrusLogger) Warn(s string) {
	l.entry.Warn(s)
}

func (l *LogrusLogger) Error(e error) {
	l.entry.Error(e.Error())
}
