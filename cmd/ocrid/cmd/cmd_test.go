package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/ocrid/pkg/config"
	"github.com/ssargent/ocrid/pkg/di"
	"github.com/ssargent/ocrid/pkg/ocrid"
)

const canonicalHex = "0x4d00e700000000000014ea000000000000000000000000000000000f0a5b5600000000001123fb0000000000e4e3040000000000e4e364"

// executeCommand runs the root command with args against a fresh container
// and returns stdout.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvProtocolTag, "")

	SetContainer(di.NewContainer())
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)

	configPath := filepath.Join(t.TempDir(), "missing.yaml")
	rootCmd.SetArgs(append([]string{"--config", configPath, "--log-level", "off"}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func TestEncodeCommand(t *testing.T) {
	t.Run("canonical vector", func(t *testing.T) {
		out, err := executeCommand(t, "encode",
			"--protocol-version=231",
			"--chain-id=5354",
			"--contract-address=0x000000000000000000000000000000000f0a5b56",
			"--package-index=1123323",
			"--start-block=15000324",
			"--end-block=15000420",
		)
		require.NoError(t, err)
		assert.Equal(t, canonicalHex+"\n", out)
	})

	t.Run("custom tag", func(t *testing.T) {
		out, err := executeCommand(t, "encode",
			"--protocol-version=231",
			"--chain-id=5354",
			"--contract-address=0x000000000000000000000000000000000f0a5b56",
			"--package-index=1123323",
			"--start-block=15000324",
			"--end-block=15000420",
			"--tag=1",
		)
		require.NoError(t, err)
		assert.Equal(t, "0x01"+canonicalHex[4:]+"\n", out)
	})

	t.Run("invalid address", func(t *testing.T) {
		_, err := executeCommand(t, "encode", "--contract-address=0x1234")
		assert.ErrorIs(t, err, ocrid.ErrInvalidAddress)
	})

	t.Run("missing address", func(t *testing.T) {
		_, err := executeCommand(t, "encode", "--chain-id=1")
		assert.Error(t, err)
	})
}

func TestDecodeCommand(t *testing.T) {
	t.Run("text output", func(t *testing.T) {
		out, err := executeCommand(t, "decode", canonicalHex)
		require.NoError(t, err)
		assert.Contains(t, out, "protocol_version: 231")
		assert.Contains(t, out, "contract_address: 0x000000000000000000000000000000000f0a5b56")
		assert.Contains(t, out, "end_block:        15000420")
	})

	t.Run("json output", func(t *testing.T) {
		out, err := executeCommand(t, "decode", "--output=json", canonicalHex)
		require.NoError(t, err)

		var view decodedID
		require.NoError(t, json.Unmarshal([]byte(out), &view))
		assert.Equal(t, decodedID{
			ProtocolTag:     77,
			ProtocolVersion: 231,
			ChainID:         5354,
			ContractAddress: "0x000000000000000000000000000000000f0a5b56",
			PackageIndex:    1123323,
			StartBlock:      15000324,
			EndBlock:        15000420,
		}, view)
	})

	t.Run("yaml output", func(t *testing.T) {
		out, err := executeCommand(t, "decode", "-o", "yaml", canonicalHex)
		require.NoError(t, err)

		var view decodedID
		require.NoError(t, yaml.Unmarshal([]byte(out), &view))
		assert.Equal(t, uint64(1123323), view.PackageIndex)
		assert.Equal(t, "0x000000000000000000000000000000000f0a5b56", view.ContractAddress)
	})

	t.Run("unknown output", func(t *testing.T) {
		_, err := executeCommand(t, "decode", "--output=xml", canonicalHex)
		assert.Error(t, err)
	})

	t.Run("wrong tag", func(t *testing.T) {
		_, err := executeCommand(t, "decode", "--tag=1", canonicalHex)
		assert.ErrorIs(t, err, ocrid.ErrInvalidFormat)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := executeCommand(t, "decode", "0x4d00")
		assert.ErrorIs(t, err, ocrid.ErrInvalidFormat)
	})
}

func TestValidateCommand(t *testing.T) {
	out, err := executeCommand(t, "validate", canonicalHex)
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)

	out, err = executeCommand(t, "validate", strings.Replace(canonicalHex, "0x", "1x", 1))
	assert.Error(t, err)
	assert.Equal(t, "invalid\n", out)

	out, err = executeCommand(t, "validate", "--tag=77", canonicalHex)
	require.NoError(t, err)
	assert.Equal(t, "valid\n", out)
}

func TestABICommand(t *testing.T) {
	out, err := executeCommand(t, "abi", "1")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 7)

	out, err = executeCommand(t, "abi", "--core")
	require.NoError(t, err)
	assert.Equal(t, "function protocolVersion() external view returns (uint256)\n", out)

	_, err = executeCommand(t, "abi", "2")
	assert.Error(t, err)

	_, err = executeCommand(t, "abi", "one")
	assert.Error(t, err)

	_, err = executeCommand(t, "abi")
	assert.Error(t, err)
}

func TestConfigProtocolTag(t *testing.T) {
	t.Setenv(config.EnvProtocolTag, "")

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.DefaultConfig()
	cfg.ProtocolTag = 1
	cfg.Output = config.OutputJSON
	require.NoError(t, config.SaveConfig(cfg, configPath))

	SetContainer(di.NewContainer())
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"--config", configPath, "--log-level", "off", "decode", "0x01" + canonicalHex[4:]})

	require.NoError(t, rootCmd.Execute())

	var view decodedID
	require.NoError(t, json.Unmarshal(out.Bytes(), &view))
	assert.Equal(t, uint8(1), view.ProtocolTag)
	assert.Equal(t, uint16(231), view.ProtocolVersion)
}

func TestTagFlagHelp(t *testing.T) {
	for _, name := range []string{"encode", "decode", "validate"} {
		t.Run(name, func(t *testing.T) {
			out, err := executeCommand(t, name, "--help")
			require.NoError(t, err)
			assert.Contains(t, out, "overrides the configured tag")
			assert.NotContains(t, out, "(default 77)")
		})
	}
}

func TestNilContainer(t *testing.T) {
	SetContainer(nil)
	defer SetContainer(di.NewContainer())
	resetFlags(rootCmd)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"abi", "1"})

	err := rootCmd.Execute()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dependency container not initialized")
}

func TestLookupSignatures(t *testing.T) {
	sigs, err := lookupSignatures(false, []string{"1"})
	require.NoError(t, err)
	assert.Len(t, sigs, 7)

	_, err = lookupSignatures(false, []string{"-1"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no ABI found")
}
