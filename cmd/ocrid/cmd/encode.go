package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/ocrid/pkg/ocrid"
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode an OCR ID as a contenthash",
	Long: `Encode an OCR ID into its 0x-prefixed contenthash string.

Example:
  ocrid encode --protocol-version=231 --chain-id=5354 \
    --contract-address=0x000000000000000000000000000000000f0a5b56 \
    --package-index=1123323 --start-block=15000324 --end-block=15000420`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var id ocrid.OcrID
		id.ProtocolVersion, _ = cmd.Flags().GetUint16("protocol-version")
		id.ChainID, _ = cmd.Flags().GetUint64("chain-id")
		id.ContractAddress, _ = cmd.Flags().GetString("contract-address")
		id.PackageIndex, _ = cmd.Flags().GetUint64("package-index")
		id.StartBlock, _ = cmd.Flags().GetUint64("start-block")
		id.EndBlock, _ = cmd.Flags().GetUint64("end-block")

		contenthash, err := encodeID(codecFor(cmd), id)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), contenthash)
		return nil
	},
}

func encodeID(c *ocrid.Codec, id ocrid.OcrID) (string, error) {
	logger := container.GetLogger()

	contenthash, err := c.EncodeHex(id)
	if err != nil {
		logger.Error().Err(err).Str("contract_address", id.ContractAddress).Msg("encode failed")
		return "", err
	}

	logger.Debug().
		Uint8("protocol_tag", c.ProtocolTag).
		Uint16("protocol_version", id.ProtocolVersion).
		Uint64("package_index", id.PackageIndex).
		Msg("encoded OCR ID")
	return contenthash, nil
}

func init() {
	encodeCmd.Flags().Uint16("protocol-version", 0, "OCR protocol version")
	encodeCmd.Flags().Uint64("chain-id", 0, "Chain ID")
	encodeCmd.Flags().String("contract-address", "", "OCR contract address (0x + 40 hex digits)")
	encodeCmd.Flags().Uint64("package-index", 0, "Package index")
	encodeCmd.Flags().Uint64("start-block", 0, "First block of the package")
	encodeCmd.Flags().Uint64("end-block", 0, "Last block of the package")
	_ = encodeCmd.MarkFlagRequired("contract-address")
	addTagFlag(encodeCmd)

	rootCmd.AddCommand(encodeCmd)
}
