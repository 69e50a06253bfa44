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

type HealthCheck struct {
	Test     []string `yaml:"test,omitempty"`
	Interval string   `yaml:"interval,omitempty"`
	Timeout  string   `yaml:"timeout,omitempty"`
	Retries  int      `yaml:"retries,omitempty"`
}

type LoggingConfig struct {
	Driver  string            `yaml:"driver,omitempty"`
	Options map[string]string `yaml:"options,omitempty"`
}

type ServiceNetwork struct {
	IPv4Address string   `yaml:"ipv4_address,omitempty"`
	Aliases     []string `yaml:"aliases,omitempty"`
}

type Service struct {
	ContainerName string                       `yaml:"container_name,omitempty"`
	Hostname      string                       `yaml:"hostname,omitempty"`
	Image         string                       `yaml:"image,omitempty"`
	EntryPoint    []string                     `yaml:"entrypoint,omitempty"`
	Environment   map[string]string            `yaml:"environment,omitempty"`
	Volumes       []string                     `yaml:"volumes,omitempty"`
	Ports         []string                     `yaml:"ports,omitempty"`
	DependsOn     map[string]map[string]string `yaml:"depends_on,omitempty"`
	HealthCheck   *HealthCheck                 `yaml:"healthcheck,omitempty"`
	Logging       *LoggingConfig               `yaml:"logging,omitempty"`
	Networks      map[string]*ServiceNetwork   `yaml:"networks,omitempty"`
}

type IPAMConfig struct {
	Subnet string `yaml:"subnet"`
}

type IPAM struct {
	Driver string        `yaml:"driver,omitempty"`
	Config []*IPAMConfig `yaml:"config,omitempty"`
}

type Network struct {
	Name   string `yaml:"name,omitempty"`
	Driver string `yaml:"driver,omitempty"`
	IPAM   *IPAM  `yaml:"ipam,omitempty"`
}

type DockerComposeConfig struct {
	Services map[string]*Service `yaml:"services,omitempty"`
	Volumes  map[string]struct{} `yaml:"volumes,omitempty"`
	Networks map[string]*Network `yaml:"networks,omitempty"`
}

var StandardLogOptions = &LoggingConfig{
	Driver: "json-file",
	Options: map[string]string{
		"max-size": "10m",
		"max-file": "1",
	},
}

func NewDockerComposeConfig() *DockerComposeConfig {
	return &DockerComposeConfig{
		Services: make(map[string]*Service),
		Volumes:  make(map[string]struct{}),
		Networks: make(map[string]*Network),
	}
}
