/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/ocrid/pkg/config"
	"github.com/ssargent/ocrid/pkg/di"
	"github.com/ssargent/ocrid/pkg/logging"
	"github.com/ssargent/ocrid/pkg/ocrid"
)

var container *di.Container

// SetContainer injects the dependency container used by all commands.
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "ocrid",
	Short: "Encode and decode OCR package identifiers",
	Long: `ocrid converts OCR package identifiers to and from their contenthash form,
a 0x-prefixed hex string suitable for a content-addressing field.

Examples:
  ocrid encode --protocol-version=1 --chain-id=5 --contract-address=0x000000000000000000000000000000000f0a5b56 --package-index=42
  ocrid decode 0x4d00e7...
  ocrid validate 0x4d00e7...
  ocrid abi 1`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if container == nil {
			return fmt.Errorf("dependency container not initialized")
		}

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.LoadOrDefault(configPath)
		if err != nil {
			return err
		}

		if cmd.Flags().Changed("log-level") {
			cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
		}

		logger := logging.New("ocrid", logging.Options{
			Level: cfg.Logging.Level,
			Out:   cmd.ErrOrStderr(),
		})
		logger.Debug().Str("config", configPath).Uint8("protocol_tag", cfg.ProtocolTag).Msg("configuration loaded")

		container.SetConfig(cfg)
		container.SetLogger(logger)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", config.GetDefaultConfigPath(), "Path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error, off)")
}

// codecFor returns the codec for cmd, honouring an explicit --tag flag.
func codecFor(cmd *cobra.Command) *ocrid.Codec {
	if cmd.Flags().Changed("tag") {
		tag, _ := cmd.Flags().GetUint8("tag")
		return container.GetCodecWithTag(tag)
	}
	return container.GetCodec()
}

func addTagFlag(cmd *cobra.Command) {
	cmd.Flags().Uint8("tag", 0, "Protocol tag byte; overrides the configured tag")
}
