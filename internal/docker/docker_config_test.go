package docker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestDockerComposeConfigYAML(t *testing.T) {
	compose := NewDockerComposeConfig()
	compose.Services["rpcnode"] = &Service{
		ContainerName: "rpcnode",
		Image:         "hyperledger/besu:latest",
		Ports:         []string{"8545:8545/tcp"},
		Logging:       StandardLogOptions,
		Networks: map[string]*ServiceNetwork{
			"quorum-dev-quickstart": {IPv4Address: "172.16.239.15"},
		},
	}
	compose.Volumes["rpcnode"] = struct{}{}
	compose.Networks["quorum-dev-quickstart"] = &Network{
		Name:   "quorum-dev-quickstart",
		Driver: "bridge",
		IPAM: &IPAM{
			Driver: "default",
			Config: []*IPAMConfig{{Subnet: "172.16.239.0/24"}},
		},
	}

	b, err := yaml.Marshal(compose)
	require.NoError(t, err)
	assert.Equal(t, `services:
  rpcnode:
    container_name: rpcnode
    image: hyperledger/besu:latest
    ports:
    - 8545:8545/tcp
    logging:
      driver: json-file
      options:
        max-file: "1"
        max-size: 10m
    networks:
      quorum-dev-quickstart:
        ipv4_address: 172.16.239.15
volumes:
  rpcnode: {}
networks:
  quorum-dev-quickstart:
    name: quorum-dev-quickstart
    driver: bridge
    ipam:
      driver: default
      config:
      - subnet: 172.16.239.0/24
`, string(b))
}

func TestEmptyDockerComposeConfig(t *testing.T) {
	b, err := yaml.Marshal(NewDockerComposeConfig())
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(b))
}
