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


package docker

import (
	"context"
	"fmt"
	"os/exec"
)

var runCommand = func(ctx context.Context, name string, args ...string) error {
	_, err := exec.CommandContext(ctx, name, args...).Output()
	return err
}

// CheckDockerConfig checks that docker, the compose plugin and a running docker
// daemon are available to start a generated network.
func CheckDockerConfig(ctx context.Context) error {
	if err := runCommand(ctx, "docker", "-v"); err != nil {
		return fmt.Errorf("an error occurred while running docker. Is docker installed on your computer?")
	}

	if err := runCommand(ctx, "docker", "compose", "version"); err != nil {
		return fmt.Errorf("an error occurred while running docker compose. Is docker compose installed on your computer?")
	}

	if err := runCommand(ctx, "docker", "ps"); err != nil {
		return fmt.Errorf("an error occurred while running docker. Is docker running on your computer?")
	}

	return nil
}
