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
	"sort"
)

// Keys of the answers consumed by the network builder
const (
	KeyEnableStaticNodes     = "enable_static_nodes"
	KeyEnableBootNodes       = "enable_boot_nodes"
	KeyEnableP2PDiscovery    = "enable_p2p_discovery"
	KeyEnableNodePermissions = "enable_node_permissions"
	KeyEnableDNS             = "enable_dns"
	KeyIPAddressMapping      = "ipaddress_mapping"
	KeyDNSMapping            = "dns_mapping"
)

// AnswerMap is the flat, key-unique set of answers built up while the
// questions are resolved.
type AnswerMap map[string]Value

// Clone returns a deep copy, including the entries of table values.
func (a AnswerMap) Clone() AnswerMap {
	c := make(AnswerMap, len(a))
	for k, v := range a {
		if v.Kind() == ValueKindTable {
			t, _ := v.Table()
			v = TableValue(t)
		}
		c[k] = v
	}
	return c
}

// Answers is a read-only snapshot of an AnswerMap.
type Answers struct {
	values AnswerMap
}

func NewAnswers(m AnswerMap) *Answers {
	return &Answers{values: m.Clone()}
}

func (a *Answers) Get(key string) (Value, bool) {
	v, ok := a.values[key]
	return v, ok
}

func (a *Answers) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Bool reports the boolean answer for key, treating a missing or non-boolean
// answer as false.
func (a *Answers) Bool(key string) bool {
	b, ok := a.values[key].Bool()
	return ok && b
}

func (a *Answers) Text(key string) (string, bool) {
	return a.values[key].Text()
}

func (a *Answers) Table(key string) (map[string]string, bool) {
	return a.values[key].Table()
}

func (a *Answers) Len() int {
	return len(a.values)
}

func (a *Answers) Keys() []string {
	keys := make([]string, 0, len(a.values))
	for k := range a.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Map returns a deep copy of the underlying answers.
func (a *Answers) Map() AnswerMap {
	return a.values.Clone()
}

func (a *Answers) MarshalYAML() (interface{}, error) {
	return a.values, nil
}
