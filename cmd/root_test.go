package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPlatform(t *testing.T) {
	assert.NoError(t, checkPlatform("linux"))
	assert.NoError(t, checkPlatform("darwin"))
	err := checkPlatform("windows")
	assert.Equal(t, errUnsupportedPlatform, err)
	assert.Regexp(t, "Windows Subsystem For Linux 2", err)
}

func TestPrintFatal(t *testing.T) {
	err := pkgerrors.WithStack(errors.New("pop"))

	out := &bytes.Buffer{}
	printFatal(out, err, false)
	assert.Equal(t, "Fatal error: pop\n", out.String())

	out.Reset()
	printFatal(out, err, true)
	assert.Regexp(t, "^Fatal error: pop\n", out.String())
	assert.Contains(t, out.String(), "TestPrintFatal")
}

func TestPrintFatalUnsupportedPlatform(t *testing.T) {
	err := checkPlatform("windows")

	out := &bytes.Buffer{}
	printFatal(out, err, false)
	assert.Equal(t, errUnsupportedPlatform.Error()+"\n", out.String())

	out.Reset()
	printFatal(out, err, true)
	assert.Equal(t, errUnsupportedPlatform.Error()+"\n", out.String())
	assert.NotContains(t, out.String(), "Fatal error")
}

func TestVersionCmd(t *testing.T) {
	BuildVersionOverride = "v1.2.3"
	defer func() { BuildVersionOverride = "" }()

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	defer rootCmd.SetOut(nil)

	rootCmd.SetArgs([]string{"version"})
	require.NoError(t, rootCmd.Execute())
	var info Info
	require.NoError(t, json.Unmarshal(out.Bytes(), &info))
	assert.Equal(t, "v1.2.3", info.Version)
	assert.Equal(t, "Apache-2.0", info.License)

	out.Reset()
	rootCmd.SetArgs([]string{"version", "--short"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "v1.2.3\n", out.String())
	shortened = false
}

func TestDocsCmd(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{"docs", dir})
	require.NoError(t, rootCmd.Execute())
	assert.FileExists(t, dir+"/quickstart.md")
	assert.FileExists(t, dir+"/quickstart_version.md")
}
