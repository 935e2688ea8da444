package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ssargent/ocrid/pkg/config"
	"github.com/ssargent/ocrid/pkg/ocrid"
)

// decodedID is the printable form of a decoded contenthash.
type decodedID struct {
	ProtocolTag     uint8  `json:"protocol_tag" yaml:"protocol_tag"`
	ProtocolVersion uint16 `json:"protocol_version" yaml:"protocol_version"`
	ChainID         uint64 `json:"chain_id" yaml:"chain_id"`
	ContractAddress string `json:"contract_address" yaml:"contract_address"`
	PackageIndex    uint64 `json:"package_index" yaml:"package_index"`
	StartBlock      uint64 `json:"start_block" yaml:"start_block"`
	EndBlock        uint64 `json:"end_block" yaml:"end_block"`
}

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <contenthash>",
	Short: "Decode a contenthash into its OCR ID fields",
	Long: `Decode a 0x-prefixed contenthash into its OCR ID fields.

Example:
  ocrid decode 0x4d00e700000000000014ea000000000000000000000000000000000f0a5b5600000000001123fb0000000000e4e3040000000000e4e364
  ocrid decode --output=json 0x4d00e7...`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output := container.GetConfig().Output
		if cmd.Flags().Changed("output") {
			output, _ = cmd.Flags().GetString("output")
		}

		c := codecFor(cmd)
		id, err := decodeID(c, args[0])
		if err != nil {
			return err
		}

		return writeDecoded(cmd.OutOrStdout(), output, c.ProtocolTag, id)
	},
}

func decodeID(c *ocrid.Codec, contenthash string) (ocrid.OcrID, error) {
	logger := container.GetLogger()

	id, err := c.Decode(contenthash)
	if err != nil {
		logger.Error().Err(err).Uint8("protocol_tag", c.ProtocolTag).Msg("decode failed")
		return ocrid.OcrID{}, err
	}

	logger.Debug().Uint64("package_index", id.PackageIndex).Msg("decoded OCR ID")
	return id, nil
}

func writeDecoded(w io.Writer, output string, tag uint8, id ocrid.OcrID) error {
	view := decodedID{
		ProtocolTag:     tag,
		ProtocolVersion: id.ProtocolVersion,
		ChainID:         id.ChainID,
		ContractAddress: id.ContractAddress,
		PackageIndex:    id.PackageIndex,
		StartBlock:      id.StartBlock,
		EndBlock:        id.EndBlock,
	}

	switch output {
	case config.OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(view)
	case config.OutputYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(view)
	case config.OutputText:
		fmt.Fprintf(w, "protocol_tag:     %d\n", view.ProtocolTag)
		fmt.Fprintf(w, "protocol_version: %d\n", view.ProtocolVersion)
		fmt.Fprintf(w, "chain_id:         %d\n", view.ChainID)
		fmt.Fprintf(w, "contract_address: %s\n", view.ContractAddress)
		fmt.Fprintf(w, "package_index:    %d\n", view.PackageIndex)
		fmt.Fprintf(w, "start_block:      %d\n", view.StartBlock)
		fmt.Fprintf(w, "end_block:        %d\n", view.EndBlock)
		return nil
	default:
		return fmt.Errorf("invalid output format %q: must be one of text, json, yaml", output)
	}
}

func init() {
	decodeCmd.Flags().StringP("output", "o", config.OutputText, "Output format (text, json, yaml)")
	addTagFlag(decodeCmd)

	rootCmd.AddCommand(decodeCmd)
}
