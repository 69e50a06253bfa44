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

package network

import (
	"fmt"

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

// NetworkContext is the builder's typed, read-only view of a finished answer
// set.
type NetworkContext struct {
	StaticNodes     bool
	BootNodes       bool
	P2PDiscovery    bool
	NodePermissions bool
	DNS             bool
	IPAddresses     map[string]string
	DNSNames        map[string]string
}

func NewNetworkContext(answers *types.Answers) (*NetworkContext, error) {
	for _, key := range []string{
		types.KeyEnableStaticNodes,
		types.KeyEnableBootNodes,
		types.KeyEnableP2PDiscovery,
		types.KeyEnableNodePermissions,
		types.KeyEnableDNS,
	} {
		v, ok := answers.Get(key)
		if !ok {
			return nil, fmt.Errorf("missing answer for '%s'", key)
		}
		if v.Kind() != types.ValueKindBoolean {
			return nil, fmt.Errorf("answer for '%s' is not a boolean", key)
		}
	}

	nc := &NetworkContext{
		StaticNodes:     answers.Bool(types.KeyEnableStaticNodes),
		BootNodes:       answers.Bool(types.KeyEnableBootNodes),
		P2PDiscovery:    answers.Bool(types.KeyEnableP2PDiscovery),
		NodePermissions: answers.Bool(types.KeyEnableNodePermissions),
		DNS:             answers.Bool(types.KeyEnableDNS),
	}

	var err error
	if nc.IPAddresses, err = nodeTable(answers, types.KeyIPAddressMapping); err != nil {
		return nil, err
	}
	if nc.DNS {
		if nc.DNSNames, err = nodeTable(answers, types.KeyDNSMapping); err != nil {
			return nil, err
		}
	}
	return nc, nil
}

func nodeTable(answers *types.Answers, key string) (map[string]string, error) {
	table, ok := answers.Table(key)
	if !ok {
		return nil, fmt.Errorf("missing table answer for '%s'", key)
	}
	for _, name := range types.NodeNames {
		if _, ok := table[name]; !ok {
			return nil, fmt.Errorf("'%s' has no entry for %s", key, name)
		}
	}
	return table, nil
}

// Host is the address other nodes use to reach the named node.
func (nc *NetworkContext) Host(node string) string {
	if nc.DNS {
		return nc.DNSNames[node]
	}
	return nc.IPAddresses[node]
}
