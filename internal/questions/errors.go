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
	"errors"
	"fmt"
)

// ErrAborted is returned by a Prompter when the operator gives up, for example
// by closing the input or interrupting the process.
var ErrAborted = errors.New("aborted by operator")

// PermanentError marks a validation failure that cannot be fixed by asking
// again.
type PermanentError struct {
	Err error
}

func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &PermanentError{Err: err}
}

func (e *PermanentError) Error() string {
	return e.Err.Error()
}

func (e *PermanentError) Unwrap() error {
	return e.Err
}

func IsPermanent(err error) bool {
	var perm *PermanentError
	return errors.As(err, &perm)
}

// ResolutionError is the terminal failure of a resolution run. Key names the
// question being resolved when it happened, and is empty for failures found
// before traversal started.
type ResolutionError struct {
	Key string
	Err error
}

func (e *ResolutionError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("unable to resolve answers: %s", e.Err)
	}
	return fmt.Sprintf("unable to resolve '%s': %s", e.Key, e.Err)
}

func (e *ResolutionError) Unwrap() error {
	return e.Err
}
