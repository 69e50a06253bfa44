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
	"fmt"

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

// Predicate decides from the answers resolved so far whether a question, and
// every question below it, should be asked. Predicates must be side-effect
// free and must not panic.
type Predicate func(answers *types.Answers) bool

// Validator accepts or rejects a candidate answer. Returning an error wrapped
// with Permanent aborts the whole resolution instead of asking again.
type Validator func(v types.Value) error

// EntryValidator checks a single entry of a table answer.
type EntryValidator func(entry, text string) error

type Question struct {
	Key      string
	Prompt   string
	Kind     types.ValueKind
	Validate Validator
	When     Predicate
	Children []*Question

	// Entries is the fixed set of sub-keys asked for a table question, in order
	Entries       []string
	ValidateEntry EntryValidator
}

// Tree is an ordered forest of questions. Roots are resolved in declaration
// order, each followed by its children.
type Tree []*Question

// WhenTrue activates a question only when the boolean answer for key is true.
func WhenTrue(key string) Predicate {
	return func(answers *types.Answers) bool {
		return answers.Bool(key)
	}
}

func WhenFalse(key string) Predicate {
	return func(answers *types.Answers) bool {
		v, ok := answers.Get(key)
		if !ok {
			return false
		}
		b, isBool := v.Bool()
		return isBool && !b
	}
}

// Check verifies the tree is well formed: every key is unique across the whole
// tree, every kind is known, and only table questions declare entries.
func (t Tree) Check() error {
	seen := make(map[string]bool)
	var check func(q *Question, path string) error
	check = func(q *Question, path string) error {
		if q == nil {
			return fmt.Errorf("nil question under '%s'", path)
		}
		if q.Key == "" {
			return fmt.Errorf("question under '%s' has no key", path)
		}
		if seen[q.Key] {
			return fmt.Errorf("duplicate question key '%s'", q.Key)
		}
		seen[q.Key] = true
		switch q.Kind {
		case types.ValueKindBoolean, types.ValueKindText:
			if len(q.Entries) > 0 || q.ValidateEntry != nil {
				return fmt.Errorf("question '%s' of kind %s must not declare table entries", q.Key, q.Kind)
			}
		case types.ValueKindTable:
			if len(q.Entries) == 0 {
				return fmt.Errorf("table question '%s' declares no entries", q.Key)
			}
			entries := make(map[string]bool, len(q.Entries))
			for _, e := range q.Entries {
				if e == "" || entries[e] {
					return fmt.Errorf("table question '%s' has an empty or duplicate entry '%s'", q.Key, e)
				}
				entries[e] = true
			}
		default:
			return fmt.Errorf("question '%s' has unknown kind '%s'", q.Key, q.Kind)
		}
		for _, child := range q.Children {
			if err := check(child, q.Key); err != nil {
				return err
			}
		}
		return nil
	}
	for _, q := range t {
		if err := check(q, "<root>"); err != nil {
			return err
		}
	}
	return nil
}

// Find returns the question with the given key anywhere in the tree.
func (t Tree) Find(key string) *Question {
	var found *Question
	t.Walk(func(q *Question) bool {
		if q.Key == key {
			found = q
			return false
		}
		return true
	})
	return found
}

// Keys lists every key in the order the questions would be asked if all of
// them were active.
func (t Tree) Keys() []string {
	keys := []string{}
	t.Walk(func(q *Question) bool {
		keys = append(keys, q.Key)
		return true
	})
	return keys
}

// Walk visits questions depth first, parents before children, until fn
// returns false.
func (t Tree) Walk(fn func(q *Question) bool) {
	var walk func(qs []*Question) bool
	walk = func(qs []*Question) bool {
		for _, q := range qs {
			if !fn(q) || !walk(q.Children) {
				return false
			}
		}
		return true
	}
	walk(t)
}
