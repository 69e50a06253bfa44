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
	"fmt"
	"os"

	"github.com/hyperledger/besu-quickstart-cli/internal/constants"
	"github.com/hyperledger/besu-quickstart-cli/internal/docker"
	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"gopkg.in/yaml.v2"
)

// CreateDockerCompose lays out one besu container per node on a shared bridge
// network, each pinned to its answered IP address.
func CreateDockerCompose(nc *NetworkContext) (*docker.DockerComposeConfig, error) {
	subnet, err := questions.CommonSubnet(nc.IPAddresses)
	if err != nil {
		return nil, err
	}

	compose := docker.NewDockerComposeConfig()
	compose.Networks[constants.NetworkName] = &docker.Network{
		Name:   constants.NetworkName,
		Driver: "bridge",
		IPAM: &docker.IPAM{
			Driver: "default",
			Config: []*docker.IPAMConfig{{Subnet: subnet.String()}},
		},
	}

	memberPort := 20000
	for _, node := range types.NodeNames {
		serviceNetwork := &docker.ServiceNetwork{
			IPv4Address: nc.IPAddresses[node],
		}
		service := &docker.Service{
			ContainerName: node,
			Image:         constants.BesuImageName,
			EntryPoint:    []string{"/opt/besu/bin/besu", fmt.Sprintf("--config-file=%s/%s", containerConfigDir, besuConfigFileName)},
			Environment: map[string]string{
				"OTEL_RESOURCE_ATTRIBUTES": fmt.Sprintf("service.name=%s,service.version=${BESU_VERSION:-latest}", node),
			},
			Volumes: []string{
				fmt.Sprintf("./config/besu:%s", containerConfigDir),
				fmt.Sprintf("./config/nodes/%s:%s", node, containerKeysDir),
				fmt.Sprintf("%s:%s", node, containerDataDir),
			},
			HealthCheck: &docker.HealthCheck{
				Test:     []string{"CMD", "curl", "-sf", fmt.Sprintf("http://localhost:%d/liveness", rpcHTTPPort)},
				Interval: "5s",
				Timeout:  "3s",
				Retries:  20,
			},
			Logging:  docker.StandardLogOptions,
			Networks: map[string]*docker.ServiceNetwork{constants.NetworkName: serviceNetwork},
		}
		if nc.DNS {
			service.Hostname = nc.DNSNames[node]
			serviceNetwork.Aliases = []string{nc.DNSNames[node]}
		}
		if node != types.NodeValidator1 && nc.BootNodes {
			service.DependsOn = map[string]map[string]string{
				types.NodeValidator1: {"condition": "service_started"},
			}
		}
		switch {
		case node == types.NodeRPC:
			service.Ports = []string{
				fmt.Sprintf("%d:%d/tcp", rpcHTTPPort, rpcHTTPPort),
				fmt.Sprintf("%d:%d/tcp", rpcWSPort, rpcWSPort),
			}
		case types.IsMemberNode(node):
			service.Ports = []string{
				fmt.Sprintf("%d:%d/tcp", memberPort, rpcHTTPPort),
				fmt.Sprintf("%d:%d/tcp", memberPort+1, rpcWSPort),
			}
			memberPort += 2
		}
		compose.Services[node] = service
		compose.Volumes[node] = struct{}{}
	}
	return compose, nil
}

func WriteDockerCompose(filename string, compose *docker.DockerComposeConfig) error {
	bytes, err := yaml.Marshal(compose)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, bytes, 0644)
}
