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

package questions

import (
	"context"
	"fmt"

	"github.com/hyperledger/besu-quickstart-cli/internal/log"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

// Resolver walks a question tree, asking the operator through a Prompter and
// folding the accepted answers into a single AnswerMap.
type Resolver struct {
	ctx      context.Context
	log      log.Logger
	prompter Prompter
}

func NewResolver(ctx context.Context, prompter Prompter) *Resolver {
	return &Resolver{
		ctx:      ctx,
		log:      log.LoggerFromContext(ctx),
		prompter: prompter,
	}
}

// Resolve is shorthand for NewResolver(ctx, prompter).Resolve(tree, defaults).
func Resolve(ctx context.Context, tree Tree, defaults types.AnswerMap, prompter Prompter) (*types.Answers, error) {
	return NewResolver(ctx, prompter).Resolve(tree, defaults)
}

// Resolve asks every active question of the tree, depth first with parents
// before their children and siblings in declaration order. A question whose
// predicate is false is skipped with its whole subtree, leaving any default
// for its key untouched. On failure no answers are returned.
func (r *Resolver) Resolve(tree Tree, defaults types.AnswerMap) (*types.Answers, error) {
	if err := tree.Check(); err != nil {
		return nil, &ResolutionError{Err: err}
	}
	if err := checkDefaults(tree, defaults); err != nil {
		return nil, &ResolutionError{Err: err}
	}

	answers := defaults.Clone()
	for _, q := range tree {
		if err := r.resolveQuestion(q, answers); err != nil {
			return nil, err
		}
	}
	r.log.Debug(fmt.Sprintf("resolved %d answers", len(answers)))
	return types.NewAnswers(answers), nil
}

func (r *Resolver) resolveQuestion(q *Question, answers types.AnswerMap) error {
	if err := r.ctx.Err(); err != nil {
		return &ResolutionError{Key: q.Key, Err: fmt.Errorf("%w: %w", ErrAborted, err)}
	}
	if q.When != nil && !q.When(types.NewAnswers(answers)) {
		r.log.Debug(fmt.Sprintf("skipping '%s'", q.Key))
		return nil
	}

	var (
		v   types.Value
		err error
	)
	def, hasDefault := answers[q.Key]
	if q.Kind == types.ValueKindTable {
		v, err = r.resolveTable(q, def)
	} else {
		var d *types.Value
		if hasDefault {
			d = &def
		}
		v, err = r.resolveValue(q.Key, q.Prompt, q.Kind, d, q.Validate, nil)
	}
	if err != nil {
		return err
	}
	answers[q.Key] = v
	r.log.Debug(fmt.Sprintf("'%s' = %s", q.Key, v))

	for _, child := range q.Children {
		if err := r.resolveQuestion(child, answers); err != nil {
			return err
		}
	}
	return nil
}

// resolveValue prompts until the operator gives an answer of the right kind
// that the validator accepts. rejection, when set, is surfaced on the first
// prompt.
func (r *Resolver) resolveValue(key, text string, kind types.ValueKind, def *types.Value, validate Validator, rejection error) (types.Value, error) {
	for {
		v, err := r.prompter.Prompt(r.ctx, &PromptRequest{
			Key:       key,
			Text:      text,
			Kind:      kind,
			Default:   def,
			Rejection: rejection,
		})
		if err != nil {
			return types.Value{}, &ResolutionError{Key: key, Err: err}
		}
		if v.Kind() != kind {
			rejection = fmt.Errorf("expected a %s answer", kind)
		} else if validate != nil {
			rejection = validate(v)
		} else {
			rejection = nil
		}
		if rejection == nil {
			return v, nil
		}
		if IsPermanent(rejection) {
			return types.Value{}, &ResolutionError{Key: key, Err: rejection}
		}
		r.log.Debug(fmt.Sprintf("'%s' rejected: %s", key, rejection))
	}
}

// resolveTable asks for each declared entry in turn, then validates the table
// as a whole. When the whole table is rejected every entry is asked again,
// offering the rejected answers so only the offending ones need changing.
func (r *Resolver) resolveTable(q *Question, def types.Value) (types.Value, error) {
	var rejection error
	for {
		entries := make(map[string]string, len(q.Entries))
		for i, name := range q.Entries {
			var entryDefault *types.Value
			if text, ok := def.TableEntry(name); ok {
				d := types.TextValue(text)
				entryDefault = &d
			}
			var entryRejection error
			if i == 0 {
				entryRejection = rejection
			}
			v, err := r.resolveValue(EntryKey(q.Key, name), fmt.Sprintf("%s [%s]", q.Prompt, name), types.ValueKindText, entryDefault, r.entryValidator(q, name), entryRejection)
			if err != nil {
				return types.Value{}, err
			}
			entries[name], _ = v.Text()
		}

		table := types.TableValue(entries)
		if q.Validate == nil {
			return table, nil
		}
		if rejection = q.Validate(table); rejection == nil {
			return table, nil
		}
		if IsPermanent(rejection) {
			return types.Value{}, &ResolutionError{Key: q.Key, Err: rejection}
		}
		r.log.Debug(fmt.Sprintf("'%s' rejected: %s", q.Key, rejection))
		def = table
	}
}

func (r *Resolver) entryValidator(q *Question, name string) Validator {
	if q.ValidateEntry == nil {
		return nil
	}
	return func(v types.Value) error {
		text, _ := v.Text()
		return q.ValidateEntry(name, text)
	}
}

// checkDefaults rejects defaults that could never be committed for their
// question: a kind that differs from the declared one, or table entries
// outside the declared set.
func checkDefaults(tree Tree, defaults types.AnswerMap) error {
	for key, v := range defaults {
		q := tree.Find(key)
		if q == nil {
			continue
		}
		if v.Kind() != q.Kind {
			return fmt.Errorf("default for '%s' is a %s value but the question expects %s", key, v.Kind(), q.Kind)
		}
		if q.Kind != types.ValueKindTable {
			continue
		}
		declared := make(map[string]bool, len(q.Entries))
		for _, e := range q.Entries {
			declared[e] = true
		}
		table, _ := v.Table()
		for e := range table {
			if !declared[e] {
				return fmt.Errorf("default for '%s' has unknown entry '%s'", key, e)
			}
		}
	}
	return nil
}
