// Package cdt stores the code to check, decode, and encode Cryptdatum
// headers. A datum is an 80-byte header followed by an arbitrary payload;
// the header declares through metadata fields and bit flags how the payload
// should be interpreted.
package cdt

const (
	// Version is the current version of the Cryptdatum format.
	Version uint16 = 1

	// MinVersion is the lowest version field value a header may carry and
	// still be considered valid.
	MinVersion uint16 = 1

	// HeaderSize is the exact size of a Cryptdatum header in bytes.
	HeaderSize = 80

	// MagicDate is the minimum valid value of the Timestamp field in
	// nanoseconds. Non-draft headers dated before it are invalid.
	MagicDate uint64 = 1652155382000000001
)

var (
	// MagicBytes identify the start of a Cryptdatum header.
	MagicBytes = []byte{0xA7, 0xF6, 0xE5, 0xD4, 0xC3, 0xB2, 0xA1, 0xE1}

	// DelimiterBytes mark the end of a Cryptdatum header.
	DelimiterBytes = []byte{0xC8, 0xB7, 0xA6, 0xE5, 0xD4, 0xC3, 0xB2, 0xF1}
)

// Field offsets within the 80-byte header. The layout is fixed and
// little-endian throughout.
const (
	offsetMagic          = 0
	offsetVersion        = 8
	offsetFlags          = 10
	offsetTimestamp      = 18
	offsetOPC            = 26
	offsetChecksum       = 30
	offsetSize           = 38
	offsetCompressionAlg = 46
	offsetEncryptionAlg  = 48
	offsetSignatureType  = 50
	offsetSignatureSize  = 52
	offsetFileExt        = 56
	offsetCustom         = 64
	offsetDelimiter      = 72
)

type (
	// DatumFlag is one bit of the header's Flags field. Bits above
	// DatumCompromised are preserved on decode but carry no meaning in this
	// version of the format.
	DatumFlag uint64

	Header struct {
		Magic          []byte    `json:"magic"`
		Version        uint16    `json:"version"`
		Flags          DatumFlag `json:"flags"`
		Timestamp      uint64    `json:"timestamp"`
		OPC            uint32    `json:"opc"`
		Checksum       uint64    `json:"checksum"`
		Size           uint64    `json:"size"`
		CompressionAlg uint16    `json:"compression_alg"`
		EncryptionAlg  uint16    `json:"encryption_alg"`
		SignatureType  uint16    `json:"signature_type"`
		SignatureSize  uint32    `json:"signature_size"`
		FileExt        string    `json:"file_ext"`
		Custom         []byte    `json:"custom"`
		Delimiter      []byte    `json:"delimiter"`
	}
)

const (
	DatumInvalid DatumFlag = 1 << iota
	DatumDraft
	DatumEmpty
	DatumChecksum
	DatumOPC
	DatumCompressed
	DatumEncrypted
	DatumExtractable
	DatumSigned
	DatumStreamable
	DatumCustom
	DatumCompromised
)

// Has reports whether flag is set in f.
func (f DatumFlag) Has(flag DatumFlag) bool {
	return f&flag != 0
}

func (f DatumFlag) String() string {
	switch f {
	case DatumInvalid:
		return "invalid"
	case DatumDraft:
		return "draft"
	case DatumEmpty:
		return "empty"
	case DatumChecksum:
		return "checksum"
	case DatumOPC:
		return "opc"
	case DatumCompressed:
		return "compressed"
	case DatumEncrypted:
		return "encrypted"
	case DatumExtractable:
		return "extractable"
	case DatumSigned:
		return "signed"
	case DatumStreamable:
		return "streamable"
	case DatumCustom:
		return "custom"
	case DatumCompromised:
		return "compromised"
	}
	return "unknown"
}
