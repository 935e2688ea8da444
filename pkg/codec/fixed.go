package codec

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Field is one slot of a fixed-width record: the raw value and the number
// of bytes it occupies when encoded.
type Field struct {
	Name  string
	Value []byte
	Width int
}

// Uint8Field creates a 1-byte field.
func Uint8Field(name string, v uint8) Field {
	return Field{Name: name, Value: []byte{v}, Width: 1}
}

// Uint16Field creates a 2-byte big-endian field.
func Uint16Field(name string, v uint16) Field {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return Field{Name: name, Value: buf, Width: 2}
}

// Uint64Field creates an 8-byte big-endian field.
func Uint64Field(name string, v uint64) Field {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return Field{Name: name, Value: buf, Width: 8}
}

// BytesField creates a field of the given width holding v.
func BytesField(name string, v []byte, width int) Field {
	return Field{Name: name, Value: v, Width: width}
}

// Size returns the sum of the widths of fields. It does not check for
// overflow; EncodeFixed rejects field sets whose widths do not fit an int.
func Size(fields []Field) int {
	total := 0
	for _, f := range fields {
		total += f.Width
	}
	return total
}

// EncodeFixed packs fields into one contiguous buffer.
// Format: [field0 (Width0)][field1 (Width1)]...
// Each value is front-padded with zeros up to its width.
func EncodeFixed(fields []Field) ([]byte, error) {
	total := 0
	for i, f := range fields {
		if err := checkWidth(i, f.Width, total); err != nil {
			return nil, err
		}
		if len(f.Value) > f.Width {
			return nil, &OverlongFieldError{Index: i, Name: f.Name, Width: f.Width, Length: len(f.Value)}
		}
		total += f.Width
	}

	buf := make([]byte, total)
	pos := 0
	for _, f := range fields {
		pad := f.Width - len(f.Value)
		copy(buf[pos+pad:pos+f.Width], f.Value)
		pos += f.Width
	}

	return buf, nil
}

// DecodeFixed splits data[offset:] into one slice per width, in order.
// The remaining length must equal the sum of widths exactly.
func DecodeFixed(data []byte, widths []int, offset int) ([][]byte, error) {
	expected := 0
	for i, w := range widths {
		if err := checkWidth(i, w, expected); err != nil {
			return nil, err
		}
		expected += w
	}

	if offset < 0 || offset > len(data) || len(data)-offset != expected {
		return nil, &LengthMismatchError{Expected: expected, Actual: len(data) - offset}
	}

	parts := make([][]byte, 0, len(widths))
	pos := offset
	for _, w := range widths {
		part := make([]byte, w)
		copy(part, data[pos:pos+w])
		parts = append(parts, part)
		pos += w
	}

	return parts, nil
}

// checkWidth rejects a width that is negative or would overflow the running
// total.
func checkWidth(i, w, total int) error {
	if w < 0 {
		return fmt.Errorf("%w: width %d is %d", ErrInvalidWidth, i, w)
	}
	if w > math.MaxInt-total {
		return fmt.Errorf("%w: width %d overflows the total size", ErrInvalidWidth, i)
	}
	return nil
}

// Uint8 returns b as a uint8.
func Uint8(b []byte) (uint8, error) {
	if len(b) != 1 {
		return 0, &ArityMismatchError{Expected: 1, Received: len(b)}
	}
	return b[0], nil
}

// Uint16 returns b as a big-endian uint16.
func Uint16(b []byte) (uint16, error) {
	if len(b) != 2 {
		return 0, &ArityMismatchError{Expected: 2, Received: len(b)}
	}
	return binary.BigEndian.Uint16(b), nil
}

// Uint64 returns b as a big-endian uint64.
func Uint64(b []byte) (uint64, error) {
	if len(b) != 8 {
		return 0, &ArityMismatchError{Expected: 8, Received: len(b)}
	}
	return binary.BigEndian.Uint64(b), nil
}
