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
	"strings"
)

const (
	defaultChainID     = 1337
	defaultBlockPeriod = 5
	defaultEpochLength = 30000
	memberBalance      = "0xad78ebc5ac6200000"
)

type Genesis struct {
	Config     *GenesisConfig    `json:"config"`
	Nonce      string            `json:"nonce"`
	Timestamp  string            `json:"timestamp"`
	ExtraData  string            `json:"extraData"`
	GasLimit   string            `json:"gasLimit"`
	Difficulty string            `json:"difficulty"`
	MixHash    string            `json:"mixHash"`
	Coinbase   string            `json:"coinbase"`
	Alloc      map[string]*Alloc `json:"alloc"`
	Number     string            `json:"number"`
	GasUsed    string            `json:"gasUsed"`
	ParentHash string            `json:"parentHash"`
}

type GenesisConfig struct {
	ChainID                int64         `json:"chainId"`
	BerlinBlock            int           `json:"berlinBlock"`
	ConstantinopleFixBlock int           `json:"constantinoplefixblock"`
	ZeroBaseFee            bool          `json:"zeroBaseFee"`
	Clique                 *CliqueConfig `json:"clique"`
}

type CliqueConfig struct {
	EpochLength        int `json:"epochlength"`
	BlockPeriodSeconds int `json:"blockperiodseconds"`
}

type Alloc struct {
	Balance string `json:"balance"`
}

func (g *Genesis) WriteGenesisJSON(filename string) error {
	genesisJSONBytes, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, genesisJSONBytes, 0644)
}

// CreateGenesis builds a clique genesis in which signers are the initial
// validators and each funded address starts with a balance. Addresses are hex
// without the 0x prefix.
func CreateGenesis(signers, funded []string, chainID int64) *Genesis {
	// 32 bytes of vanity, the signer addresses, then an empty 65 byte seal
	extraData := "0x" + strings.Repeat("0", 64) + strings.Join(signers, "") + strings.Repeat("0", 130)

	alloc := make(map[string]*Alloc, len(funded))
	for _, address := range funded {
		alloc[address] = &Alloc{
			Balance: memberBalance,
		}
	}
	return &Genesis{
		Config: &GenesisConfig{
			ChainID:     chainID,
			ZeroBaseFee: true,
			Clique: &CliqueConfig{
				BlockPeriodSeconds: defaultBlockPeriod,
				EpochLength:        defaultEpochLength,
			},
		},
		Coinbase:   "0x0000000000000000000000000000000000000000",
		Difficulty: "0x1",
		ExtraData:  extraData,
		GasLimit:   "0x1fffffffffffff",
		MixHash:    "0x0000000000000000000000000000000000000000000000000000000000000000",
		Nonce:      "0x0",
		Timestamp:  "0x58ee40ba",
		Alloc:      alloc,
		Number:     "0x0",
		GasUsed:    "0x0",
		ParentHash: "0x0000000000000000000000000000000000000000000000000000000000000000",
	}
}
