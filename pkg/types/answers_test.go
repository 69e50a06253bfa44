package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnswerMapClone(t *testing.T) {
	m := AnswerMap{
		KeyEnableDNS:        BoolValue(false),
		KeyIPAddressMapping: TableValue(map[string]string{NodeRPC: "172.16.239.15"}),
	}
	c := m.Clone()
	assert.Equal(t, m, c)

	c[KeyEnableDNS] = BoolValue(true)
	b, _ := m[KeyEnableDNS].Bool()
	assert.False(t, b)

	assert.Empty(t, AnswerMap(nil).Clone())
}

func TestAnswersSnapshot(t *testing.T) {
	m := AnswerMap{
		KeyEnableDNS:        BoolValue(true),
		KeyEnableBootNodes:  TextValue("true"),
		KeyIPAddressMapping: TableValue(map[string]string{NodeRPC: "172.16.239.15"}),
	}
	answers := NewAnswers(m)
	m[KeyEnableDNS] = BoolValue(false)

	assert.True(t, answers.Bool(KeyEnableDNS))
	assert.False(t, answers.Bool(KeyEnableBootNodes))
	assert.False(t, answers.Bool("missing"))
	assert.True(t, answers.Has(KeyEnableBootNodes))
	assert.False(t, answers.Has("missing"))
	assert.Equal(t, 3, answers.Len())
	assert.Equal(t, []string{KeyEnableBootNodes, KeyEnableDNS, KeyIPAddressMapping}, answers.Keys())

	table, ok := answers.Table(KeyIPAddressMapping)
	assert.True(t, ok)
	table[NodeRPC] = "changed"
	table, _ = answers.Table(KeyIPAddressMapping)
	assert.Equal(t, "172.16.239.15", table[NodeRPC])

	_, ok = answers.Text(KeyEnableDNS)
	assert.False(t, ok)
}

func TestNodeRoster(t *testing.T) {
	assert.Len(t, NodeNames, 8)
	assert.Equal(t, []string{NodeValidator1, NodeValidator2, NodeValidator3, NodeValidator4}, ValidatorNodes())
	assert.Equal(t, []string{NodeMember1Besu, NodeMember2Besu, NodeMember3Besu}, MemberNodes())
	assert.False(t, IsValidatorNode(NodeRPC))
	assert.False(t, IsMemberNode(NodeRPC))
}
