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
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperledger/besu-quickstart-cli/internal/log"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/otiai10/copy"
	"gopkg.in/yaml.v3"
)

const accountPassword = "Password1"

// Builder turns a finished answer set into the files of a runnable network.
type Builder struct {
	ctx       context.Context
	Log       log.Logger
	OutputDir string
	ChainID   int64
}

func NewBuilder(ctx context.Context, outputDir string) *Builder {
	return &Builder{
		ctx:       ctx,
		Log:       log.LoggerFromContext(ctx),
		OutputDir: outputDir,
		ChainID:   defaultChainID,
	}
}

// Build writes every artifact into a staging directory first and only copies
// it to the output directory once all of them have been written, so a failed
// build leaves nothing behind.
func (b *Builder) Build(answers *types.Answers) error {
	nc, err := NewNetworkContext(answers)
	if err != nil {
		return err
	}
	if err := checkOutputDir(b.OutputDir); err != nil {
		return err
	}
	if err := b.ctx.Err(); err != nil {
		return err
	}

	stagingDir, err := os.MkdirTemp("", "besu-quickstart-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(stagingDir)

	if err := b.writeArtifacts(stagingDir, nc, answers); err != nil {
		return err
	}
	if err := b.ctx.Err(); err != nil {
		return err
	}

	b.Log.Info(fmt.Sprintf("copying network to %s", b.OutputDir))
	return copy.Copy(stagingDir, b.OutputDir)
}

func (b *Builder) writeArtifacts(dir string, nc *NetworkContext, answers *types.Answers) error {
	besuDir := filepath.Join(dir, "config", "besu")
	if err := os.MkdirAll(besuDir, 0755); err != nil {
		return err
	}

	b.Log.Info("generating node keys")
	keys, err := GenerateNodeKeys(types.NodeNames)
	if err != nil {
		return err
	}
	enodes := make([]string, 0, len(types.NodeNames))
	for _, node := range types.NodeNames {
		if err := keys[node].WriteKeyFiles(filepath.Join(dir, "config", "nodes", node)); err != nil {
			return err
		}
		enodes = append(enodes, keys[node].Enode(nc.Host(node)))
	}

	b.Log.Info("creating member accounts")
	accounts := make([]string, 0, len(types.MemberNodes()))
	for _, node := range types.MemberNodes() {
		keyPair, err := CreateAccountKeystore(filepath.Join(dir, "config", "nodes", node), accountPassword)
		if err != nil {
			return fmt.Errorf("failed creating account for %s: %s", node, err)
		}
		accounts = append(accounts, keyPair.Address.String())
	}

	b.Log.Info("writing genesis")
	signers := make([]string, 0, len(types.ValidatorNodes()))
	for _, node := range types.ValidatorNodes() {
		signers = append(signers, keys[node].Address())
	}
	funded := make([]string, len(accounts))
	for i, account := range accounts {
		funded[i] = account[2:]
	}
	if err := CreateGenesis(signers, funded, b.ChainID).WriteGenesisJSON(filepath.Join(besuDir, genesisFileName)); err != nil {
		return err
	}

	b.Log.Info("writing besu config")
	bootnodes := []string{keys[types.NodeValidator1].Enode(nc.Host(types.NodeValidator1))}
	if err := writeTOML(filepath.Join(besuDir, besuConfigFileName), NewBesuConfig(nc, bootnodes)); err != nil {
		return err
	}
	if nc.StaticNodes {
		if err := writeStaticNodes(filepath.Join(besuDir, staticNodesFileName), enodes); err != nil {
			return err
		}
	}
	if nc.NodePermissions {
		permissions := &PermissionsConfig{
			AccountsAllowlist: accounts,
			NodesAllowlist:    enodes,
		}
		if err := writeTOML(filepath.Join(besuDir, permissionsFileName), permissions); err != nil {
			return err
		}
	}

	b.Log.Info("writing docker compose file")
	compose, err := CreateDockerCompose(nc)
	if err != nil {
		return err
	}
	if err := WriteDockerCompose(filepath.Join(dir, "docker-compose.yml"), compose); err != nil {
		return err
	}

	answersBytes, err := yaml.Marshal(answers)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "answers.yaml"), answersBytes, 0644)
}

// checkOutputDir refuses to write into a directory that already has content.
func checkOutputDir(dir string) error {
	entries, err := os.ReadDir(dir)
	switch {
	case os.IsNotExist(err):
		return nil
	case err != nil:
		return err
	case len(entries) > 0:
		return fmt.Errorf("output directory '%s' already exists and is not empty", dir)
	}
	return nil
}
