package ocrid

import (
	"encoding/hex"
	"strings"
)

const hexPrefix = "0x"

// IsHexString reports whether value is "0x" followed by exactly 2*byteLen
// hex digits.
func IsHexString(value string, byteLen int) bool {
	if !strings.HasPrefix(value, hexPrefix) {
		return false
	}
	digits := value[len(hexPrefix):]
	for i := 0; i < len(digits); i++ {
		if !isHexDigit(digits[i]) {
			return false
		}
	}
	return len(digits) == 2*byteLen
}

// ValidateFormat reports whether text is a contenthash carrying the codec's
// protocol tag.
func (c *Codec) ValidateFormat(text string) bool {
	if !IsHexString(text, EncodedSize) {
		return false
	}
	tag, err := hex.DecodeString(text[2:4])
	if err != nil {
		return false
	}
	return tag[0] == c.ProtocolTag
}

func isHexDigit(b byte) bool {
	return ('0' <= b && b <= '9') || ('a' <= b && b <= 'f') || ('A' <= b && b <= 'F')
}
