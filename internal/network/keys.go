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
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hyperledger/firefly-signer/pkg/keystorev3"
	"github.com/hyperledger/firefly-signer/pkg/secp256k1"
)

const p2pPort = 30303

type NodeKey struct {
	Name    string
	KeyPair *secp256k1.KeyPair
}

func GenerateNodeKeys(names []string) (map[string]*NodeKey, error) {
	keys := make(map[string]*NodeKey, len(names))
	for _, name := range names {
		keyPair, err := secp256k1.GenerateSecp256k1KeyPair()
		if err != nil {
			return nil, fmt.Errorf("failed generating key for %s: %s", name, err)
		}
		keys[name] = &NodeKey{Name: name, KeyPair: keyPair}
	}
	return keys, nil
}

// PublicKeyHex is the node ID: the uncompressed public key without its 04
// prefix byte.
func (k *NodeKey) PublicKeyHex() string {
	return hex.EncodeToString(k.KeyPair.PublicKey.SerializeUncompressed()[1:])
}

func (k *NodeKey) PrivateKeyHex() string {
	return hex.EncodeToString(k.KeyPair.PrivateKey.Serialize())
}

// Address is the node's signer address, lower case without the 0x prefix.
func (k *NodeKey) Address() string {
	return k.KeyPair.Address.String()[2:]
}

func (k *NodeKey) Enode(host string) string {
	return fmt.Sprintf("enode://%s@%s:%d", k.PublicKeyHex(), host, p2pPort)
}

// WriteKeyFiles writes the key and key.pub files besu reads from its keys
// directory.
func (k *NodeKey) WriteKeyFiles(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(directory, "key"), []byte("0x"+k.PrivateKeyHex()), 0600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(directory, "key.pub"), []byte("0x"+k.PublicKeyHex()), 0644)
}

// CreateAccountKeystore generates an account for a member node and writes it
// as a keystore V3 wallet encrypted with password.
func CreateAccountKeystore(directory, password string) (*secp256k1.KeyPair, error) {
	keyPair, err := secp256k1.GenerateSecp256k1KeyPair()
	if err != nil {
		return nil, err
	}
	wallet := keystorev3.NewWalletFileStandard(password, keyPair)

	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(directory, "accountKeystore"), wallet.JSON(), 0600); err != nil {
		return nil, err
	}
	if err := os.WriteFile(filepath.Join(directory, "accountPassword"), []byte(password), 0600); err != nil {
		return nil, err
	}
	return keyPair, nil
}
