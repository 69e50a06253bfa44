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

package cmd

import (
	"errors"
)

var errUnsupportedPlatform = errors.New("Unfortunately this tool is not compatible with Windows at the moment.\n" +
	"We recommend running it under Windows Subsystem For Linux 2 with Docker Desktop.\n" +
	"Please visit the following pages for installation instructions.\n\n" +
	"https://docs.microsoft.com/en-us/windows/wsl/install-win10\n" +
	"https://docs.docker.com/docker-for-windows/wsl/")

func checkPlatform(goos string) error {
	if goos == "windows" {
		return errUnsupportedPlatform
	}
	return nil
}
