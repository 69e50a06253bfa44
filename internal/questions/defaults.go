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
	"github.com/miracl/conflate"
	"gopkg.in/yaml.v3"
)

// DefaultAnswers returns a fresh copy of the built-in defaults.
func DefaultAnswers() types.AnswerMap {
	return types.AnswerMap{
		types.KeyEnableStaticNodes:     types.BoolValue(false),
		types.KeyEnableBootNodes:       types.BoolValue(true),
		types.KeyEnableP2PDiscovery:    types.BoolValue(true),
		types.KeyEnableNodePermissions: types.BoolValue(true),
		types.KeyEnableDNS:             types.BoolValue(false),
		types.KeyIPAddressMapping: types.TableValue(map[string]string{
			types.NodeValidator1:  "172.16.239.11",
			types.NodeValidator2:  "172.16.239.12",
			types.NodeValidator3:  "172.16.239.13",
			types.NodeValidator4:  "172.16.239.14",
			types.NodeRPC:         "172.16.239.15",
			types.NodeMember1Besu: "172.16.239.16",
			types.NodeMember2Besu: "172.16.239.17",
			types.NodeMember3Besu: "172.16.239.18",
		}),
		types.KeyDNSMapping: types.TableValue(map[string]string{
			types.NodeValidator1:  types.NodeValidator1,
			types.NodeValidator2:  types.NodeValidator2,
			types.NodeValidator3:  types.NodeValidator3,
			types.NodeValidator4:  types.NodeValidator4,
			types.NodeRPC:         types.NodeRPC,
			types.NodeMember1Besu: types.NodeMember1Besu,
			types.NodeMember2Besu: types.NodeMember2Besu,
			types.NodeMember3Besu: types.NodeMember3Besu,
		}),
	}
}

// LoadDefaults layers the YAML file at path, if any, over the built-in
// defaults. Tables are merged entry by entry, so a file only needs to name
// the entries it changes.
func LoadDefaults(path string) (types.AnswerMap, error) {
	defaults := DefaultAnswers()
	if path == "" {
		return defaults, nil
	}

	builtIn, err := yaml.Marshal(defaults)
	if err != nil {
		return nil, err
	}
	merger := conflate.New()
	if err := merger.AddData(builtIn); err != nil {
		return nil, fmt.Errorf("failed reading built-in defaults: %s", err)
	}
	if err := merger.AddFiles(path); err != nil {
		return nil, fmt.Errorf("failed merging defaults file %s: %s", path, err)
	}
	merged, err := merger.MarshalYAML()
	if err != nil {
		return nil, err
	}

	result := types.AnswerMap{}
	if err := yaml.Unmarshal(merged, &result); err != nil {
		return nil, fmt.Errorf("invalid defaults in %s: %s", path, err)
	}
	return result, nil
}
