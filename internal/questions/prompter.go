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

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
)

// PromptRequest describes one question put to the operator. Table questions
// are asked one entry at a time, as text requests keyed "<key>.<entry>".
type PromptRequest struct {
	Key     string
	Text    string
	Kind    types.ValueKind
	Default *types.Value

	// Rejection is the reason the previous answer to this request was not
	// accepted, or nil on the first attempt
	Rejection error
}

// Prompter asks the operator a single question and blocks until it has an
// answer. It returns ErrAborted, or an error wrapping it, when the operator
// abandons the run.
type Prompter interface {
	Prompt(ctx context.Context, req *PromptRequest) (types.Value, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, req *PromptRequest) (types.Value, error)

func (f PrompterFunc) Prompt(ctx context.Context, req *PromptRequest) (types.Value, error) {
	return f(ctx, req)
}

func EntryKey(key, entry string) string {
	return key + "." + entry
}
