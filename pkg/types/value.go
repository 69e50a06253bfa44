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

package types

import (
	"fmt"
	"sort"

	"github.com/hyperledger/firefly-common/pkg/fftypes"
	"gopkg.in/yaml.v3"
)

type ValueKind = fftypes.FFEnum

var (
	ValueKindBoolean = fftypes.FFEnumValue("valuekind", "boolean")
	ValueKindText    = fftypes.FFEnumValue("valuekind", "text")
	ValueKindTable   = fftypes.FFEnumValue("valuekind", "table")
)

// Value is a single resolved answer. It holds exactly one of a boolean, a
// text string or a table of text keyed by name, and reports which through
// Kind. The zero Value has no kind and is never committed as an answer.
type Value struct {
	kind  ValueKind
	b     bool
	text  string
	table map[string]string
}

func BoolValue(b bool) Value {
	return Value{kind: ValueKindBoolean, b: b}
}

func TextValue(s string) Value {
	return Value{kind: ValueKindText, text: s}
}

// TableValue copies the supplied map, so later changes by the caller are not
// visible through the returned Value.
func TableValue(entries map[string]string) Value {
	t := make(map[string]string, len(entries))
	for k, v := range entries {
		t[k] = v
	}
	return Value{kind: ValueKindTable, table: t}
}

func (v Value) Kind() ValueKind {
	return v.kind
}

func (v Value) IsZero() bool {
	return v.kind == ""
}

func (v Value) Bool() (bool, bool) {
	return v.b, v.kind == ValueKindBoolean
}

func (v Value) Text() (string, bool) {
	return v.text, v.kind == ValueKindText
}

// Table returns a copy of the table entries.
func (v Value) Table() (map[string]string, bool) {
	if v.kind != ValueKindTable {
		return nil, false
	}
	t := make(map[string]string, len(v.table))
	for k, e := range v.table {
		t[k] = e
	}
	return t, true
}

// TableEntry looks up a single entry without copying the table.
func (v Value) TableEntry(name string) (string, bool) {
	if v.kind != ValueKindTable {
		return "", false
	}
	e, ok := v.table[name]
	return e, ok
}

func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case ValueKindBoolean:
		return v.b == o.b
	case ValueKindText:
		return v.text == o.text
	case ValueKindTable:
		if len(v.table) != len(o.table) {
			return false
		}
		for k, e := range v.table {
			if oe, ok := o.table[k]; !ok || oe != e {
				return false
			}
		}
		return true
	}
	return true
}

func (v Value) String() string {
	switch v.kind {
	case ValueKindBoolean:
		return fmt.Sprintf("%t", v.b)
	case ValueKindText:
		return v.text
	case ValueKindTable:
		keys := make([]string, 0, len(v.table))
		for k := range v.table {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		s := "{"
		for i, k := range keys {
			if i > 0 {
				s += ", "
			}
			s += fmt.Sprintf("%s: %s", k, v.table[k])
		}
		return s + "}"
	}
	return "<unset>"
}

// Text values are always written double quoted so that they read back as
// text, even when they look like a boolean or a number.
func (v Value) MarshalYAML() (interface{}, error) {
	switch v.kind {
	case ValueKindBoolean:
		return v.b, nil
	case ValueKindText:
		return &yaml.Node{
			Kind:  yaml.ScalarNode,
			Style: yaml.DoubleQuotedStyle,
			Value: v.text,
		}, nil
	case ValueKindTable:
		t, _ := v.Table()
		return t, nil
	}
	return nil, fmt.Errorf("cannot marshal a value with no kind")
}

func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			*v = BoolValue(b)
		default:
			*v = TextValue(node.Value)
		}
	case yaml.MappingNode:
		var t map[string]string
		if err := node.Decode(&t); err != nil {
			return fmt.Errorf("line %d: table answers must map names to text: %s", node.Line, err)
		}
		*v = TableValue(t)
	default:
		return fmt.Errorf("line %d: answer must be a boolean, text or a table of text", node.Line)
	}
	return nil
}
