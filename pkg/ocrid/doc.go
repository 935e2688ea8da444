// Package ocrid encodes and decodes OCR package identifiers.
//
// An OCR ID locates a published package on a chain: the contract that holds
// it, its index, and the block range it was published in. The identifier is
// stored as a contenthash, a "0x"-prefixed hex string of a 55 byte record:
//
//	[Tag(1)][ProtocolVersion(2)][ChainID(8)][ContractAddress(20)][PackageIndex(8)][StartBlock(8)][EndBlock(8)]
//
// All integers are big-endian. The leading tag byte identifies the record
// family (DefaultProtocolTag unless a Codec is built with another tag) and
// is checked by ValidateFormat before any decoding is attempted.
//
// # Usage
//
//	id := ocrid.OcrID{
//	    ProtocolVersion: 1,
//	    ChainID:         5,
//	    ContractAddress: "0x000000000000000000000000000000000f0a5b56",
//	    PackageIndex:    42,
//	    StartBlock:      15000324,
//	    EndBlock:        15000420,
//	}
//
//	contenthash, err := ocrid.EncodeHex(id)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := ocrid.Decode(contenthash)
//
// Codec values and the package-level helpers are safe for concurrent use.
package ocrid
