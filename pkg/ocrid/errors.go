package ocrid

import "errors"

var (
	// ErrInvalidAddress is returned when contract_address is not "0x" followed by 40 hex digits.
	ErrInvalidAddress = errors.New("ocrid: contract_address is not a valid hex string")
	// ErrInvalidFormat is returned when a contenthash fails ValidateFormat.
	ErrInvalidFormat = errors.New("ocrid: contenthash is an invalid hex string or has an invalid protocol id")
)
