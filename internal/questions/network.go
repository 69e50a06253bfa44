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
	"net"
	"regexp"

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

var hostnameRegex = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`)

// NetworkQuestions is the question tree for a quickstart network.
func NetworkQuestions() Tree {
	return Tree{
		{
			Key:    types.KeyEnableStaticNodes,
			Prompt: "Do you want the nodes to connect through a static nodes list?",
			Kind:   types.ValueKindBoolean,
		},
		{
			Key:    types.KeyEnableBootNodes,
			Prompt: "Do you want the nodes to use validator1 as a bootnode?",
			Kind:   types.ValueKindBoolean,
		},
		{
			Key:    types.KeyEnableP2PDiscovery,
			Prompt: "Do you want to enable P2P peer discovery?",
			Kind:   types.ValueKindBoolean,
		},
		{
			Key:    types.KeyEnableNodePermissions,
			Prompt: "Do you want to enable node and account permissioning?",
			Kind:   types.ValueKindBoolean,
		},
		{
			Key:    types.KeyEnableDNS,
			Prompt: "Do you want the nodes to address each other by DNS name?",
			Kind:   types.ValueKindBoolean,
			Children: []*Question{
				{
					Key:           types.KeyDNSMapping,
					Prompt:        "DNS name",
					Kind:          types.ValueKindTable,
					When:          WhenTrue(types.KeyEnableDNS),
					Entries:       types.NodeNames,
					ValidateEntry: ValidateHostname,
					Validate:      UniqueEntries("DNS name"),
				},
			},
		},
		{
			Key:           types.KeyIPAddressMapping,
			Prompt:        "IP address",
			Kind:          types.ValueKindTable,
			Entries:       types.NodeNames,
			ValidateEntry: ValidateIPv4,
			Validate:      ValidateAddresses,
		},
	}
}

func ValidateIPv4(entry, text string) error {
	ip := net.ParseIP(text)
	if ip == nil || ip.To4() == nil {
		return fmt.Errorf("'%s' is not a valid IPv4 address for %s", text, entry)
	}
	if ip.IsUnspecified() || ip.IsLoopback() || ip.IsMulticast() {
		return fmt.Errorf("%s cannot use the reserved address '%s'", entry, text)
	}
	return nil
}

func ValidateHostname(entry, text string) error {
	if len(text) > 253 || !hostnameRegex.MatchString(text) {
		return fmt.Errorf("'%s' is not a valid DNS name for %s", text, entry)
	}
	return nil
}

// UniqueEntries rejects a table in which two entries share the same text.
func UniqueEntries(what string) Validator {
	return func(v types.Value) error {
		table, ok := v.Table()
		if !ok {
			return fmt.Errorf("expected a table of %ss", what)
		}
		owners := make(map[string]string, len(table))
		for _, name := range types.NodeNames {
			text, ok := table[name]
			if !ok {
				continue
			}
			if other, dup := owners[text]; dup {
				return fmt.Errorf("%s '%s' is used by both %s and %s", what, text, other, name)
			}
			owners[text] = name
		}
		return nil
	}
}

// CommonSubnet returns the narrowest of /24, /16 or /8 around the first
// node's address that holds every node address.
func CommonSubnet(addresses map[string]string) (*net.IPNet, error) {
	first := net.ParseIP(addresses[types.NodeNames[0]]).To4()
	if first == nil {
		return nil, fmt.Errorf("'%s' is not an IPv4 address", addresses[types.NodeNames[0]])
	}
	for _, ones := range []int{24, 16, 8} {
		mask := net.CIDRMask(ones, 32)
		subnet := &net.IPNet{IP: first.Mask(mask), Mask: mask}
		inside := true
		for _, node := range types.NodeNames {
			if !subnet.Contains(net.ParseIP(addresses[node])) {
				inside = false
				break
			}
		}
		if inside {
			return subnet, nil
		}
	}
	return nil, fmt.Errorf("node IP addresses do not share a common /8 subnet with %s", first)
}

// ValidateAddresses checks the IP address table as a whole. Addresses must be
// unique and fit one docker bridge subnet, and no node may take the network,
// gateway or broadcast address of that subnet.
func ValidateAddresses(v types.Value) error {
	if err := UniqueEntries("IP address")(v); err != nil {
		return err
	}
	table, _ := v.Table()
	subnet, err := CommonSubnet(table)
	if err != nil {
		return err
	}

	network := subnet.IP.To4()
	gateway := make(net.IP, net.IPv4len)
	broadcast := make(net.IP, net.IPv4len)
	for i := range network {
		gateway[i] = network[i]
		broadcast[i] = network[i] | ^subnet.Mask[i]
	}
	gateway[3]++

	for _, name := range types.NodeNames {
		ip := net.ParseIP(table[name])
		switch {
		case ip.Equal(network):
			return fmt.Errorf("%s cannot use %s, the network address of %s", name, table[name], subnet)
		case ip.Equal(gateway):
			return fmt.Errorf("%s cannot use %s, the gateway address of %s", name, table[name], subnet)
		case ip.Equal(broadcast):
			return fmt.Errorf("%s cannot use %s, the broadcast address of %s", name, table[name], subnet)
		}
	}
	return nil
}
