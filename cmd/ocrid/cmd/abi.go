package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ssargent/ocrid/pkg/abi"
)

// abiCmd represents the abi command
var abiCmd = &cobra.Command{
	Use:   "abi [protocol-version]",
	Short: "Print the OCR contract signatures for a protocol version",
	Long: `Print the human-readable OCR contract function and event signatures
for a protocol version, one per line.

Example:
  ocrid abi 1
  ocrid abi --core`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		core, _ := cmd.Flags().GetBool("core")

		sigs, err := lookupSignatures(core, args)
		if err != nil {
			return err
		}

		for _, sig := range sigs {
			fmt.Fprintln(cmd.OutOrStdout(), sig)
		}
		return nil
	},
}

func lookupSignatures(core bool, args []string) ([]string, error) {
	if core {
		return abi.CoreSignatures(), nil
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("protocol version is required unless --core is set")
	}

	version, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("invalid protocol version %q: %w", args[0], err)
	}

	sigs, ok := abi.ContractSignatures(version)
	if !ok {
		return nil, fmt.Errorf("no ABI found for protocol version %d", version)
	}
	return sigs, nil
}

func init() {
	abiCmd.Flags().Bool("core", false, "Print the version-independent core signatures")

	rootCmd.AddCommand(abiCmd)
}
