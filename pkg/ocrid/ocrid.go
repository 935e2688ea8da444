package ocrid

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/ssargent/ocrid/pkg/codec"
)

// DefaultProtocolTag identifies OCR contenthashes among other encodings
// sharing the same field.
const DefaultProtocolTag uint8 = 77

// Field widths on the wire, in order.
const (
	TagSize             = 1
	ProtocolVersionSize = 2
	ChainIDSize         = 8
	ContractAddressSize = common.AddressLength
	PackageIndexSize    = 8
	StartBlockSize      = 8
	EndBlockSize        = 8

	// EncodedSize is the full record length including the tag byte.
	EncodedSize = TagSize + ProtocolVersionSize + ChainIDSize + ContractAddressSize +
		PackageIndexSize + StartBlockSize + EndBlockSize

	// HexSize is the length of a contenthash string.
	HexSize = len(hexPrefix) + 2*EncodedSize
)

// recordWidths is the layout after the tag byte.
var recordWidths = []int{
	ProtocolVersionSize,
	ChainIDSize,
	ContractAddressSize,
	PackageIndexSize,
	StartBlockSize,
	EndBlockSize,
}

// OcrID identifies a package published through an OCR contract.
// It marshals to text as its contenthash.
type OcrID struct {
	ProtocolVersion uint16
	ChainID         uint64
	ContractAddress string
	PackageIndex    uint64
	StartBlock      uint64
	EndBlock        uint64
}

// Validate checks that the record can be encoded.
func (id OcrID) Validate() error {
	_, err := parseAddress(id.ContractAddress)
	return err
}

// Codec converts OcrID values to and from contenthashes for one protocol tag.
type Codec struct {
	ProtocolTag uint8
}

// NewCodec creates a codec using DefaultProtocolTag.
func NewCodec() *Codec {
	return &Codec{ProtocolTag: DefaultProtocolTag}
}

// NewCodecWithTag creates a codec that writes and expects tag.
func NewCodecWithTag(tag uint8) *Codec {
	return &Codec{ProtocolTag: tag}
}

// Encode serializes id into its 55 byte contenthash form.
func (c *Codec) Encode(id OcrID) ([]byte, error) {
	addr, err := parseAddress(id.ContractAddress)
	if err != nil {
		return nil, err
	}

	return codec.EncodeFixed([]codec.Field{
		codec.Uint8Field("tag", c.ProtocolTag),
		codec.Uint16Field("protocol_version", id.ProtocolVersion),
		codec.Uint64Field("chain_id", id.ChainID),
		codec.BytesField("contract_address", addr.Bytes(), ContractAddressSize),
		codec.Uint64Field("package_index", id.PackageIndex),
		codec.Uint64Field("start_block", id.StartBlock),
		codec.Uint64Field("end_block", id.EndBlock),
	})
}

// EncodeHex serializes id as a lowercase "0x"-prefixed contenthash string.
func (c *Codec) EncodeHex(id OcrID) (string, error) {
	encoded, err := c.Encode(id)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(encoded), nil
}

// Decode parses a contenthash string. The format is checked with
// ValidateFormat before anything is decoded.
func (c *Codec) Decode(text string) (OcrID, error) {
	if !c.ValidateFormat(text) {
		return OcrID{}, ErrInvalidFormat
	}

	raw, err := hexutil.Decode(text)
	if err != nil {
		return OcrID{}, fmt.Errorf("ocrid: failed to decode contenthash: %w", err)
	}

	return c.DecodeBytes(raw)
}

// DecodeBytes parses a raw 55 byte record. The leading byte must equal the
// codec's ProtocolTag.
func (c *Codec) DecodeBytes(raw []byte) (OcrID, error) {
	if len(raw) < TagSize || raw[0] != c.ProtocolTag {
		return OcrID{}, ErrInvalidFormat
	}

	parts, err := codec.DecodeFixed(raw, recordWidths, TagSize)
	if err != nil {
		return OcrID{}, err
	}

	var id OcrID
	if id.ProtocolVersion, err = codec.Uint16(parts[0]); err != nil {
		return OcrID{}, err
	}
	if id.ChainID, err = codec.Uint64(parts[1]); err != nil {
		return OcrID{}, err
	}
	id.ContractAddress = hexutil.Encode(common.BytesToAddress(parts[2]).Bytes())
	if id.PackageIndex, err = codec.Uint64(parts[3]); err != nil {
		return OcrID{}, err
	}
	if id.StartBlock, err = codec.Uint64(parts[4]); err != nil {
		return OcrID{}, err
	}
	if id.EndBlock, err = codec.Uint64(parts[5]); err != nil {
		return OcrID{}, err
	}

	return id, nil
}

var defaultCodec = NewCodec()

// Encode serializes id with DefaultProtocolTag.
func Encode(id OcrID) ([]byte, error) {
	return defaultCodec.Encode(id)
}

// EncodeHex serializes id as a contenthash string with DefaultProtocolTag.
func EncodeHex(id OcrID) (string, error) {
	return defaultCodec.EncodeHex(id)
}

// Decode parses a contenthash string carrying DefaultProtocolTag.
func Decode(text string) (OcrID, error) {
	return defaultCodec.Decode(text)
}

// ValidateFormat reports whether text is a contenthash carrying DefaultProtocolTag.
func ValidateFormat(text string) bool {
	return defaultCodec.ValidateFormat(text)
}

func parseAddress(s string) (common.Address, error) {
	if !IsHexString(s, ContractAddressSize) {
		return common.Address{}, ErrInvalidAddress
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return common.Address{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return common.BytesToAddress(b), nil
}
