package questions

import (
	"testing"

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestValidateIPv4(t *testing.T) {
	tests := []struct {
		Text  string
		Error string
	}{
		{Text: "172.16.239.11"},
		{Text: "10.0.0.1"},
		{Text: "not-an-ip", Error: "'not-an-ip' is not a valid IPv4 address for validator1"},
		{Text: "", Error: "is not a valid IPv4 address"},
		{Text: "fd00::1", Error: "is not a valid IPv4 address"},
		{Text: "172.16.239.256", Error: "is not a valid IPv4 address"},
		{Text: "0.0.0.0", Error: "reserved address"},
		{Text: "127.0.0.1", Error: "reserved address"},
		{Text: "224.0.0.1", Error: "reserved address"},
	}
	for _, tc := range tests {
		t.Run(tc.Text, func(t *testing.T) {
			err := ValidateIPv4(types.NodeValidator1, tc.Text)
			if tc.Error == "" {
				assert.NoError(t, err)
			} else {
				assert.Regexp(t, tc.Error, err)
			}
		})
	}
}

func TestValidateHostname(t *testing.T) {
	valid := []string{"validator1", "rpcnode", "member1besu.besu.local", "a-b"}
	for _, name := range valid {
		assert.NoError(t, ValidateHostname(types.NodeRPC, name), name)
	}
	invalid := []string{"", "-leading", "trailing-", "under_score", "a..b", "has space"}
	for _, name := range invalid {
		assert.Error(t, ValidateHostname(types.NodeRPC, name), name)
	}
}

func TestUniqueEntries(t *testing.T) {
	validate := UniqueEntries("IP address")
	assert.NoError(t, validate(DefaultAnswers()[types.KeyIPAddressMapping]))

	err := validate(types.TableValue(map[string]string{
		types.NodeValidator1: "172.16.239.11",
		types.NodeRPC:        "172.16.239.11",
	}))
	assert.EqualError(t, err, "IP address '172.16.239.11' is used by both validator1 and rpcnode")

	assert.Regexp(t, "expected a table", validate(types.TextValue("x")))
}

func TestCommonSubnet(t *testing.T) {
	addresses := func(last string) map[string]string {
		m := make(map[string]string, len(types.NodeNames))
		for _, node := range types.NodeNames {
			m[node] = "10.1.2.3"
		}
		m[types.NodeMember3Besu] = last
		return m
	}
	tests := []struct {
		Last   string
		Subnet string
		Error  string
	}{
		{Last: "10.1.2.200", Subnet: "10.1.2.0/24"},
		{Last: "10.1.9.9", Subnet: "10.1.0.0/16"},
		{Last: "10.200.0.1", Subnet: "10.0.0.0/8"},
		{Last: "192.168.0.1", Error: "do not share a common /8 subnet with 10.1.2.3"},
	}
	for _, tc := range tests {
		t.Run(tc.Last, func(t *testing.T) {
			subnet, err := CommonSubnet(addresses(tc.Last))
			if tc.Error != "" {
				assert.Regexp(t, tc.Error, err)
				return
			}
			if assert.NoError(t, err) {
				assert.Equal(t, tc.Subnet, subnet.String())
			}
		})
	}

	_, err := CommonSubnet(map[string]string{})
	assert.Regexp(t, "is not an IPv4 address", err)
}

func TestValidateAddresses(t *testing.T) {
	withAddress := func(node, ip string) types.Value {
		table, _ := DefaultAnswers()[types.KeyIPAddressMapping].Table()
		table[node] = ip
		return types.TableValue(table)
	}
	tests := []struct {
		Name  string
		Table types.Value
		Error string
	}{
		{Name: "defaults", Table: DefaultAnswers()[types.KeyIPAddressMapping]},
		{Name: "wider subnet", Table: withAddress(types.NodeRPC, "172.16.1.15")},
		{Name: "duplicate", Table: withAddress(types.NodeRPC, "172.16.239.11"), Error: "used by both validator1 and rpcnode"},
		{Name: "other network", Table: withAddress(types.NodeValidator1, "10.0.0.1"), Error: "do not share a common /8 subnet"},
		{Name: "network address", Table: withAddress(types.NodeMember1Besu, "172.16.239.0"), Error: "member1besu cannot use 172.16.239.0, the network address of 172.16.239.0/24"},
		{Name: "gateway address", Table: withAddress(types.NodeMember2Besu, "172.16.239.1"), Error: "the gateway address of 172.16.239.0/24"},
		{Name: "broadcast address", Table: withAddress(types.NodeRPC, "172.16.239.255"), Error: "the broadcast address of 172.16.239.0/24"},
		{Name: "gateway of a /16", Table: withAddress(types.NodeRPC, "172.16.0.1"), Error: "the gateway address of 172.16.0.0/16"},
		{Name: "not a table", Table: types.TextValue("x"), Error: "expected a table"},
	}
	for _, tc := range tests {
		t.Run(tc.Name, func(t *testing.T) {
			err := ValidateAddresses(tc.Table)
			if tc.Error == "" {
				assert.NoError(t, err)
			} else {
				assert.Regexp(t, tc.Error, err)
			}
		})
	}
}
