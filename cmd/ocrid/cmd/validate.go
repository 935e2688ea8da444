package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <contenthash>",
	Short: "Check whether a string is a well-formed contenthash",
	Long: `Check the prefix, hex digits, length and protocol tag of a contenthash.
Prints "valid" or "invalid"; exits non-zero when invalid.

Example:
  ocrid validate 0x4d00e7...
  ocrid validate --tag=1 0x0100e7...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := codecFor(cmd)
		if !c.ValidateFormat(args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), "invalid")
			logger := container.GetLogger()
			logger.Debug().Uint8("protocol_tag", c.ProtocolTag).Msg("contenthash rejected")
			return fmt.Errorf("contenthash is not a valid OCR ID for protocol tag %d", c.ProtocolTag)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "valid")
		return nil
	},
}

func init() {
	addTagFlag(validateCmd)

	rootCmd.AddCommand(validateCmd)
}
