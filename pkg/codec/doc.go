// Package codec provides fixed-width field packing for flat binary records.
//
// A record is described as an ordered list of fields, each carrying its raw
// bytes and the width it occupies on the wire. Encoding concatenates the
// fields in order; decoding splits a buffer back into one slice per width.
//
// # Padding
//
// Fields shorter than their width are front-padded with zero bytes, so the
// value ends up right-aligned in its slot:
//
//	width 4, value [0x12 0x34]  ->  [0x00 0x00 0x12 0x34]
//
// This matches big-endian integer semantics: a uint16 written into an
// 8-byte slot reads back as the same number when the slot is interpreted as
// a uint64.
//
// Fields longer than their width are rejected with an OverlongFieldError.
// The encoder never truncates.
//
// # Decoding
//
// DecodeFixed requires the buffer (after the offset) to be exactly the sum
// of the widths. Anything else is a LengthMismatchError; the decoder never
// pads or truncates input.
//
// The Uint8, Uint16 and Uint64 helpers reinterpret a decoded slice as a
// big-endian unsigned integer and return an ArityMismatchError when the slice
// is not exactly the integer's size.
//
// # Usage
//
//	encoded, err := codec.EncodeFixed([]codec.Field{
//	    codec.Uint8Field("tag", 0x4d),
//	    codec.Uint16Field("version", 1),
//	    {Name: "address", Value: addr[:], Width: 20},
//	})
//	if err != nil {
//	    return err
//	}
//
//	parts, err := codec.DecodeFixed(encoded, []int{2, 20}, 1)
//	if err != nil {
//	    return err
//	}
//	version, err := codec.Uint16(parts[0])
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use. Decoded slices are
// copies and do not alias the input buffer.
package codec
