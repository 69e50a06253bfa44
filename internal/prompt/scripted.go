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
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"gopkg.in/yaml.v3"
)

// Scripted answers questions from a prepared set of answers, for runs with no
// operator. Questions it has no answer for take their default. With nobody
// to correct a rejected answer, a rejection ends the run.
type Scripted struct {
	answers types.AnswerMap
	asked   []string
}

func NewScripted(answers types.AnswerMap) *Scripted {
	return &Scripted{answers: answers.Clone()}
}

// NewScriptedFromFile reads answers from a YAML file in the same layout as
// the answers.yaml written alongside a generated network.
func NewScriptedFromFile(path string) (*Scripted, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	answers := types.AnswerMap{}
	if err := yaml.Unmarshal(b, &answers); err != nil {
		return nil, fmt.Errorf("invalid answers file %s: %s", path, err)
	}
	return NewScripted(answers), nil
}

// Asked lists the keys of every request received, in order.
func (s *Scripted) Asked() []string {
	return s.asked
}

func (s *Scripted) Prompt(ctx context.Context, req *questions.PromptRequest) (types.Value, error) {
	s.asked = append(s.asked, req.Key)
	if err := ctx.Err(); err != nil {
		return types.Value{}, fmt.Errorf("%w: %w", questions.ErrAborted, err)
	}
	if req.Rejection != nil {
		return types.Value{}, fmt.Errorf("%w: scripted answer was rejected: %s", questions.ErrAborted, req.Rejection)
	}
	if v, ok := s.lookup(req.Key); ok {
		return v, nil
	}
	if req.Default != nil {
		return *req.Default, nil
	}
	return types.Value{}, fmt.Errorf("%w: no answer given for '%s'", questions.ErrAborted, req.Key)
}

func (s *Scripted) lookup(key string) (types.Value, bool) {
	if v, ok := s.answers[key]; ok {
		return v, true
	}
	i := strings.LastIndex(key, ".")
	if i < 0 {
		return types.Value{}, false
	}
	if text, ok := s.answers[key[:i]].TableEntry(key[i+1:]); ok {
		return types.TextValue(text), true
	}
	return types.Value{}, false
}
