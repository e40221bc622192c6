package cdt

import (
	"cryptdatum/cdt/lbytes"
)

// EncodeHeader lays header out in its 80-byte wire form. The magic and
// delimiter are always the format constants regardless of what the header
// value carries, so an encoded header is structurally present by
// construction.
func EncodeHeader(header Header) []byte {
	bs := make([]byte, 0, HeaderSize)
	bs = append(bs, MagicBytes...)
	bs = append(bs, lbytes.EncodeUint16(header.Version)...)
	bs = append(bs, lbytes.EncodeUint64(uint64(header.Flags))...)
	bs = append(bs, lbytes.EncodeUint64(header.Timestamp)...)
	bs = append(bs, lbytes.EncodeUint32(header.OPC)...)
	bs = append(bs, lbytes.EncodeUint64(header.Checksum)...)
	bs = append(bs, lbytes.EncodeUint64(header.Size)...)
	bs = append(bs, lbytes.EncodeUint16(header.CompressionAlg)...)
	bs = append(bs, lbytes.EncodeUint16(header.EncryptionAlg)...)
	bs = append(bs, lbytes.EncodeUint16(header.SignatureType)...)
	bs = append(bs, lbytes.EncodeUint32(header.SignatureSize)...)
	bs = append(bs, lbytes.EncodeString(header.FileExt, 8)...)
	bs = append(bs, lbytes.EncodeBytes(header.Custom, 8)...)
	bs = append(bs, DelimiterBytes...)
	return bs
}
