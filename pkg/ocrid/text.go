package ocrid

// Parse decodes a contenthash carrying DefaultProtocolTag.
func Parse(s string) (OcrID, error) {
	return Decode(s)
}

// String returns the contenthash form of id, or an empty string when the
// contract address is malformed.
func (id OcrID) String() string {
	s, err := EncodeHex(id)
	if err != nil {
		return ""
	}
	return s
}

// MarshalText implements encoding.TextMarshaler.
func (id OcrID) MarshalText() ([]byte, error) {
	s, err := EncodeHex(id)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *OcrID) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return err
	}
	*id = decoded
	return nil
}
