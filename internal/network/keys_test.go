package network

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hyperledger/besu-quickstart-cli/pkg/types"
	"github.com/hyperledger/firefly-signer/pkg/keystorev3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNodeKeys(t *testing.T) {
	keys, err := GenerateNodeKeys(types.NodeNames)
	require.NoError(t, err)
	assert.Len(t, keys, len(types.NodeNames))

	k := keys[types.NodeValidator1]
	assert.Equal(t, types.NodeValidator1, k.Name)
	assert.Len(t, k.PublicKeyHex(), 128)
	assert.Len(t, k.PrivateKeyHex(), 64)
	assert.Len(t, k.Address(), 40)
	assert.NotEqual(t, k.PublicKeyHex(), keys[types.NodeValidator2].PublicKeyHex())

	assert.Equal(t, "enode://"+k.PublicKeyHex()+"@172.16.239.11:30303", k.Enode("172.16.239.11"))
}

func TestWriteKeyFiles(t *testing.T) {
	keys, err := GenerateNodeKeys([]string{types.NodeRPC})
	require.NoError(t, err)
	dir := filepath.Join(t.TempDir(), "nodes", types.NodeRPC)
	require.NoError(t, keys[types.NodeRPC].WriteKeyFiles(dir))

	private, err := os.ReadFile(filepath.Join(dir, "key"))
	require.NoError(t, err)
	assert.Equal(t, "0x"+keys[types.NodeRPC].PrivateKeyHex(), string(private))

	public, err := os.ReadFile(filepath.Join(dir, "key.pub"))
	require.NoError(t, err)
	_, err = hex.DecodeString(strings.TrimPrefix(string(public), "0x"))
	assert.NoError(t, err)
}

func TestCreateAccountKeystore(t *testing.T) {
	dir := t.TempDir()
	keyPair, err := CreateAccountKeystore(dir, "secret")
	require.NoError(t, err)

	password, err := os.ReadFile(filepath.Join(dir, "accountPassword"))
	require.NoError(t, err)
	assert.Equal(t, "secret", string(password))

	keystore, err := os.ReadFile(filepath.Join(dir, "accountKeystore"))
	require.NoError(t, err)
	wallet, err := keystorev3.ReadWalletFile(keystore, []byte("secret"))
	require.NoError(t, err)
	assert.Equal(t, keyPair.Address, wallet.KeyPair().Address)
}
