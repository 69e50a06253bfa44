package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/internal/utils"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptedWithNetworkQuestions(t *testing.T) {
	path := utils.WriteTestFile(t, "answers.yaml", `
enable_dns: true
enable_static_nodes: true
dns_mapping:
  rpcnode: rpc.besu.local
ipaddress_mapping:
  member3besu: "172.16.239.28"
`)
	scripted, err := NewScriptedFromFile(path)
	require.NoError(t, err)

	answers, err := questions.Resolve(context.Background(), questions.NetworkQuestions(), questions.DefaultAnswers(), scripted)
	require.NoError(t, err)

	assert.True(t, answers.Bool(types.KeyEnableDNS))
	assert.True(t, answers.Bool(types.KeyEnableStaticNodes))
	assert.True(t, answers.Bool(types.KeyEnableBootNodes))

	dns, _ := answers.Table(types.KeyDNSMapping)
	assert.Equal(t, "rpc.besu.local", dns[types.NodeRPC])
	assert.Equal(t, types.NodeValidator2, dns[types.NodeValidator2])
	ips, _ := answers.Table(types.KeyIPAddressMapping)
	assert.Equal(t, "172.16.239.28", ips[types.NodeMember3Besu])

	assert.Len(t, scripted.Asked(), 5+2*len(types.NodeNames))
	assert.Equal(t, types.KeyEnableStaticNodes, scripted.Asked()[0])
}

func TestScriptedMissingAnswer(t *testing.T) {
	scripted := NewScripted(types.AnswerMap{})
	_, err := scripted.Prompt(context.Background(), &questions.PromptRequest{
		Key:  "name",
		Kind: types.ValueKindText,
	})
	assert.ErrorIs(t, err, questions.ErrAborted)
	assert.Regexp(t, "no answer given for 'name'", err)
}

func TestScriptedRejectionEndsRun(t *testing.T) {
	scripted := NewScripted(types.AnswerMap{"name": types.TextValue("x")})
	_, err := scripted.Prompt(context.Background(), &questions.PromptRequest{
		Key:       "name",
		Kind:      types.ValueKindText,
		Rejection: errors.New("bad name"),
	})
	assert.ErrorIs(t, err, questions.ErrAborted)
	assert.Regexp(t, "scripted answer was rejected: bad name", err)
}

func TestScriptedResolveRejectedAddress(t *testing.T) {
	scripted := NewScripted(types.AnswerMap{
		types.KeyIPAddressMapping: types.TableValue(map[string]string{
			types.NodeValidator1: "not-an-ip",
		}),
	})
	answers, err := questions.Resolve(context.Background(), questions.NetworkQuestions(), questions.DefaultAnswers(), scripted)
	assert.Nil(t, answers)
	var resErr *questions.ResolutionError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "ipaddress_mapping.validator1", resErr.Key)
	assert.ErrorIs(t, err, questions.ErrAborted)
}

func TestScriptedCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewScripted(nil).Prompt(ctx, &questions.PromptRequest{Key: "a"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScriptedBadFile(t *testing.T) {
	path := utils.WriteTestFile(t, "answers.yaml", "enable_dns: [1, 2]\n")
	_, err := NewScriptedFromFile(path)
	assert.Regexp(t, "invalid answers file", err)

	_, err = NewScriptedFromFile(path + ".missing")
	assert.Error(t, err)
}
