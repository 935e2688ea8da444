// Package abi lists the human-readable signatures of the OCR publishing
// contract, keyed by protocol version.
package abi

// coreSignatures are implemented by every OCR contract regardless of version.
var coreSignatures = []string{
	"function protocolVersion() external view returns (uint256)",
}

var contractSignaturesV1 = []string{
	"event StartPublish(uint256 indexed packageIndex, address indexed author)",
	"event EndPublish(uint256 indexed packageIndex, uint64 partCount)",
	"event PackagePart(uint256 indexed packageIndex, uint64 partIndex, bytes data)",
	"function protocolVersion() external view returns (uint256)",
	"function startPublish(bytes memory data, bool end) external returns(uint256)",
	"function publishPart(uint256 packageIndex, bytes memory data, bool end) external",
	"function package(uint256 packageIndex) public view returns(tuple(uint256 startBlock, uint256 endBlock, address author, uint64 partCount))",
}

// CoreSignatures returns the signatures shared by all protocol versions.
// It can be used to query protocolVersion before the full ABI is known.
func CoreSignatures() []string {
	return clone(coreSignatures)
}

// ContractSignatures returns the contract signatures for version, or false
// when the version is unknown.
func ContractSignatures(version int) ([]string, bool) {
	switch version {
	case 1:
		return clone(contractSignaturesV1), true
	default:
		return nil, false
	}
}

// SupportedVersions returns the protocol versions with a known ABI, ascending.
func SupportedVersions() []int {
	return []int{1}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
