package network

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/hyperledger/besu-quickstart-cli/internal/log"
	"github.com/hyperledger/besu-quickstart-cli/internal/questions"
	"github.com/hyperledger/besu-quickstart-cli/internal/utils"
	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testBuilder(t *testing.T) *Builder {
	ctx := log.WithLogger(context.Background(), &log.StdoutLogger{LogLevel: log.Error})
	return NewBuilder(ctx, filepath.Join(t.TempDir(), "network"))
}

func TestBuildDefaultNetwork(t *testing.T) {
	b := testBuilder(t)
	answers := testAnswers(nil)
	require.NoError(t, b.Build(answers))

	for _, path := range []string{
		"docker-compose.yml",
		"answers.yaml",
		"config/besu/genesis.json",
		"config/besu/config.toml",
		"config/besu/permissions_config.toml",
		"config/nodes/validator1/key",
		"config/nodes/validator1/key.pub",
		"config/nodes/member2besu/accountKeystore",
		"config/nodes/member2besu/accountPassword",
	} {
		assert.FileExists(t, filepath.Join(b.OutputDir, path))
	}
	assert.NoFileExists(t, filepath.Join(b.OutputDir, "config/besu/static-nodes.json"))
	assert.NoFileExists(t, filepath.Join(b.OutputDir, "config/nodes/validator1/accountKeystore"))

	written, err := os.ReadFile(filepath.Join(b.OutputDir, "answers.yaml"))
	require.NoError(t, err)
	var replay types.AnswerMap
	require.NoError(t, yaml.Unmarshal(written, &replay))
	assert.Equal(t, answers.Map(), replay)

	var permissions PermissionsConfig
	_, err = toml.DecodeFile(filepath.Join(b.OutputDir, "config/besu/permissions_config.toml"), &permissions)
	require.NoError(t, err)
	assert.Len(t, permissions.NodesAllowlist, len(types.NodeNames))
	assert.Len(t, permissions.AccountsAllowlist, len(types.MemberNodes()))
	assert.True(t, strings.HasSuffix(permissions.NodesAllowlist[0], "@172.16.239.11:30303"))

	config, err := utils.ReadFileToString(filepath.Join(b.OutputDir, "config/besu/config.toml"))
	require.NoError(t, err)
	assert.Contains(t, config, permissions.NodesAllowlist[0])
}

func TestBuildStaticNodesWithDNS(t *testing.T) {
	b := testBuilder(t)
	require.NoError(t, b.Build(testAnswers(types.AnswerMap{
		types.KeyEnableStaticNodes:     types.BoolValue(true),
		types.KeyEnableNodePermissions: types.BoolValue(false),
		types.KeyEnableDNS:             types.BoolValue(true),
	})))

	static, err := utils.ReadFileToString(filepath.Join(b.OutputDir, "config/besu/static-nodes.json"))
	require.NoError(t, err)
	assert.Contains(t, static, "@rpcnode:30303")
	assert.NotContains(t, static, "172.16.239.")
	assert.NoFileExists(t, filepath.Join(b.OutputDir, "config/besu/permissions_config.toml"))
}

func TestBuildRefusesNonEmptyOutputDir(t *testing.T) {
	b := testBuilder(t)
	utils.Equals(t, nil, os.MkdirAll(b.OutputDir, 0755))
	utils.Equals(t, nil, os.WriteFile(filepath.Join(b.OutputDir, "keep.txt"), []byte("x"), 0644))

	err := b.Build(testAnswers(nil))
	assert.Regexp(t, "already exists and is not empty", err)

	entries, err := os.ReadDir(b.OutputDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestBuildIncompleteAnswersLeavesNothing(t *testing.T) {
	b := testBuilder(t)
	err := b.Build(types.NewAnswers(types.AnswerMap{}))
	assert.Regexp(t, "missing answer", err)
	assert.NoDirExists(t, b.OutputDir)
}

func TestBuildCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	b := NewBuilder(log.WithLogger(ctx, &log.StdoutLogger{LogLevel: log.Error}), filepath.Join(t.TempDir(), "network"))
	err := b.Build(testAnswers(nil))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoDirExists(t, b.OutputDir)
}

func TestCheckOutputDir(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, checkOutputDir(dir))
	assert.NoError(t, checkOutputDir(filepath.Join(dir, "missing")))
}

func TestBuildResolvedAddresses(t *testing.T) {
	attempts := 0
	prompter := questions.PrompterFunc(func(ctx context.Context, req *questions.PromptRequest) (types.Value, error) {
		if req.Key == questions.EntryKey(types.KeyIPAddressMapping, types.NodeValidator1) {
			attempts++
			if attempts == 1 {
				return types.TextValue("10.0.0.1"), nil
			}
			return types.TextValue("172.16.239.11"), nil
		}
		return *req.Default, nil
	})
	answers, err := questions.Resolve(context.Background(), questions.NetworkQuestions(), questions.DefaultAnswers(), prompter)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)

	b := testBuilder(t)
	require.NoError(t, b.Build(answers))
	compose, err := utils.ReadFileToString(filepath.Join(b.OutputDir, "docker-compose.yml"))
	require.NoError(t, err)
	assert.Contains(t, compose, "subnet: 172.16.239.0/24")
}
