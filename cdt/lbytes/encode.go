package lbytes

import (
	"encoding/binary"
)

func EncodeUint16(value uint16) []byte {
	bs := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs, value)
	return bs
}

func EncodeUint32(value uint32) []byte {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, value)
	return bs
}

func EncodeUint64(value uint64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, value)
	return bs
}

// EncodeString lays value out as a fixed-width text field: width bytes,
// padded with trailing zero bytes. Longer values are truncated to width.
func EncodeString(value string, width int) []byte {
	bs := make([]byte, width)
	copy(bs, value)
	return bs
}

// EncodeBytes pads or truncates value to exactly width bytes.
func EncodeBytes(value []byte, width int) []byte {
	bs := make([]byte, width)
	copy(bs, value)
	return bs
}
