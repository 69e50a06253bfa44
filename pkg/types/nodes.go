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

import "strings"

const (
	NodeValidator1  = "validator1"
	NodeValidator2  = "validator2"
	NodeValidator3  = "validator3"
	NodeValidator4  = "validator4"
	NodeRPC         = "rpcnode"
	NodeMember1Besu = "member1besu"
	NodeMember2Besu = "member2besu"
	NodeMember3Besu = "member3besu"
)

// NodeNames is the fixed roster of logical nodes in a quickstart network, in
// the order they are asked about and written out.
var NodeNames = []string{
	NodeValidator1,
	NodeValidator2,
	NodeValidator3,
	NodeValidator4,
	NodeRPC,
	NodeMember1Besu,
	NodeMember2Besu,
	NodeMember3Besu,
}

func IsValidatorNode(name string) bool {
	return strings.HasPrefix(name, "validator")
}

func IsMemberNode(name string) bool {
	return strings.HasPrefix(name, "member")
}

// ValidatorNodes returns the validators of the roster in order.
func ValidatorNodes() []string {
	validators := make([]string, 0, 4)
	for _, n := range NodeNames {
		if IsValidatorNode(n) {
			validators = append(validators, n)
		}
	}
	return validators
}

func MemberNodes() []string {
	members := make([]string, 0, 3)
	for _, n := range NodeNames {
		if IsMemberNode(n) {
			members = append(members, n)
		}
	}
	return members
}
