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

package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/mattn/go-isatty"
)

type line struct {
	text string
	err  error
}

// Terminal asks questions on a line based terminal. Pressing enter on an
// empty line accepts the offered default.
type Terminal struct {
	in    *bufio.Reader
	out   io.Writer
	fancy bool

	start sync.Once
	stop  sync.Once
	lines chan line
	done  chan struct{}
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	fancy := false
	if f, ok := out.(*os.File); ok {
		fancy = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Terminal{
		in:    bufio.NewReader(in),
		out:   out,
		fancy: fancy,
	}
}

func (t *Terminal) Prompt(ctx context.Context, req *questions.PromptRequest) (types.Value, error) {
	if req.Rejection != nil {
		t.printError(req.Rejection)
	}
	for {
		fmt.Fprint(t.out, t.label(req))
		text, err := t.readLine(ctx)
		if err != nil {
			return types.Value{}, err
		}
		v, err := parseAnswer(req, text)
		if err != nil {
			t.printError(err)
			continue
		}
		return v, nil
	}
}

func (t *Terminal) label(req *questions.PromptRequest) string {
	switch {
	case req.Kind == types.ValueKindBoolean && req.Default != nil:
		if b, _ := req.Default.Bool(); b {
			return fmt.Sprintf("%s [Y/n] ", req.Text)
		}
		return fmt.Sprintf("%s [y/N] ", req.Text)
	case req.Kind == types.ValueKindBoolean:
		return fmt.Sprintf("%s [y/n] ", req.Text)
	case req.Default != nil:
		return fmt.Sprintf("%s [%s]: ", req.Text, req.Default)
	default:
		return fmt.Sprintf("%s: ", req.Text)
	}
}

func parseAnswer(req *questions.PromptRequest, text string) (types.Value, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		if req.Default == nil {
			return types.Value{}, errors.New("an answer is required")
		}
		return *req.Default, nil
	}
	switch req.Kind {
	case types.ValueKindBoolean:
		switch strings.ToLower(text) {
		case "y", "yes", "true":
			return types.BoolValue(true), nil
		case "n", "no", "false":
			return types.BoolValue(false), nil
		}
		return types.Value{}, fmt.Errorf("'%s' is not a valid option, answer y or n", text)
	case types.ValueKindText:
		return types.TextValue(text), nil
	}
	return types.Value{}, fmt.Errorf("cannot answer a %s question on the terminal", req.Kind)
}

// readLine waits for the next line of input, or for ctx to be cancelled. The
// input is read on a separate goroutine so that an interrupt is not held up by
// a blocked read.
func (t *Terminal) readLine(ctx context.Context) (string, error) {
	t.start.Do(func() {
		t.lines = make(chan line)
		t.done = make(chan struct{})
		go t.readLines()
	})
	select {
	case <-ctx.Done():
		t.stop.Do(func() { close(t.done) })
		fmt.Fprintln(t.out)
		return "", fmt.Errorf("%w: %w", questions.ErrAborted, ctx.Err())
	case l, ok := <-t.lines:
		switch {
		case !ok, errors.Is(l.err, io.EOF):
			return "", fmt.Errorf("%w: input closed", questions.ErrAborted)
		case l.err != nil:
			return "", l.err
		}
		return l.text, nil
	}
}

// readLines feeds lines to readLine until the input fails, or until a
// cancelled prompt closes t.done.
func (t *Terminal) readLines() {
	defer close(t.lines)
	for {
		s, err := t.in.ReadString('\n')
		if err != nil {
			if s != "" && errors.Is(err, io.EOF) {
				if !t.send(line{text: s}) {
					return
				}
			}
			t.send(line{err: err})
			return
		}
		if !t.send(line{text: s}) {
			return
		}
	}
}

func (t *Terminal) send(l line) bool {
	select {
	case <-t.done:
		return false
	default:
	}
	select {
	case t.lines <- l:
		return true
	case <-t.done:
		return false
	}
}

func (t *Terminal) printError(err error) {
	if t.fancy {
		fmt.Fprintf(t.out, "\u001b[31mError: %s\u001b[0m\n", err.Error())
	} else {
		fmt.Fprintf(t.out, "Error: %s\n", err.Error())
	}
}
