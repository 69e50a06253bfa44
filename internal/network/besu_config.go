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
	"encoding/json"
	"os"

	"github.com/BurntSushi/toml"
)

// Paths as seen from inside the node containers
const (
	containerConfigDir      = "/config"
	containerKeysDir        = "/opt/besu/keys"
	containerDataDir        = "/opt/besu/data"
	staticNodesFileName     = "static-nodes.json"
	permissionsFileName     = "permissions_config.toml"
	besuConfigFileName      = "config.toml"
	genesisFileName         = "genesis.json"
	rpcHTTPPort             = 8545
	rpcWSPort               = 8546
	permissionsConfigPrefix = containerConfigDir + "/"
)

// BesuConfig is the config.toml shared by every node of the network. Each
// container mounts its own key at the same path.
type BesuConfig struct {
	DataPath           string   `toml:"data-path"`
	GenesisFile        string   `toml:"genesis-file"`
	NodePrivateKeyFile string   `toml:"node-private-key-file"`
	MinGasPrice        int      `toml:"min-gas-price"`
	LoggingLevel       string   `toml:"logging"`
	HostAllowlist      []string `toml:"host-allowlist"`

	P2PEnabled       bool     `toml:"p2p-enabled"`
	P2PHost          string   `toml:"p2p-host"`
	P2PPort          int      `toml:"p2p-port"`
	DiscoveryEnabled bool     `toml:"discovery-enabled"`
	Bootnodes        []string `toml:"bootnodes,omitempty"`
	StaticNodesFile  string   `toml:"static-nodes-file,omitempty"`

	DNSEnabled       bool `toml:"Xdns-enabled,omitempty"`
	DNSUpdateEnabled bool `toml:"Xdns-update-enabled,omitempty"`

	PermissionsNodesEnabled    bool   `toml:"permissions-nodes-config-file-enabled"`
	PermissionsAccountsEnabled bool   `toml:"permissions-accounts-config-file-enabled"`
	PermissionsNodesFile       string `toml:"permissions-nodes-config-file,omitempty"`
	PermissionsAccountsFile    string `toml:"permissions-accounts-config-file,omitempty"`

	RPCHTTPEnabled     bool     `toml:"rpc-http-enabled"`
	RPCHTTPHost        string   `toml:"rpc-http-host"`
	RPCHTTPPort        int      `toml:"rpc-http-port"`
	RPCHTTPAPI         []string `toml:"rpc-http-api"`
	RPCHTTPCorsOrigins []string `toml:"rpc-http-cors-origins"`
	RPCWSEnabled       bool     `toml:"rpc-ws-enabled"`
	RPCWSHost          string   `toml:"rpc-ws-host"`
	RPCWSPort          int      `toml:"rpc-ws-port"`
}

type PermissionsConfig struct {
	AccountsAllowlist []string `toml:"accounts-allowlist"`
	NodesAllowlist    []string `toml:"nodes-allowlist"`
}

// NewBesuConfig maps the network feature toggles onto besu options. bootnodes
// is only used when bootnodes are enabled.
func NewBesuConfig(nc *NetworkContext, bootnodes []string) *BesuConfig {
	c := &BesuConfig{
		DataPath:           containerDataDir,
		GenesisFile:        containerConfigDir + "/" + genesisFileName,
		NodePrivateKeyFile: containerKeysDir + "/key",
		LoggingLevel:       "INFO",
		HostAllowlist:      []string{"*"},
		P2PEnabled:         true,
		P2PHost:            "0.0.0.0",
		P2PPort:            p2pPort,
		DiscoveryEnabled:   nc.P2PDiscovery,
		RPCHTTPEnabled:     true,
		RPCHTTPHost:        "0.0.0.0",
		RPCHTTPPort:        rpcHTTPPort,
		RPCHTTPAPI:         []string{"EEA", "WEB3", "ETH", "NET", "PERM", "ADMIN", "CLIQUE", "TXPOOL", "DEBUG"},
		RPCHTTPCorsOrigins: []string{"all"},
		RPCWSEnabled:       true,
		RPCWSHost:          "0.0.0.0",
		RPCWSPort:          rpcWSPort,
	}
	if nc.BootNodes {
		c.Bootnodes = bootnodes
	}
	if nc.StaticNodes {
		c.StaticNodesFile = containerConfigDir + "/" + staticNodesFileName
	}
	if nc.DNS {
		c.DNSEnabled = true
		c.DNSUpdateEnabled = true
	}
	if nc.NodePermissions {
		c.PermissionsNodesEnabled = true
		c.PermissionsAccountsEnabled = true
		c.PermissionsNodesFile = permissionsConfigPrefix + permissionsFileName
		c.PermissionsAccountsFile = permissionsConfigPrefix + permissionsFileName
	}
	return c
}

func writeTOML(filename string, v interface{}) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return toml.NewEncoder(f).Encode(v)
}

func writeStaticNodes(filename string, enodes []string) error {
	b, err := json.MarshalIndent(enodes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
