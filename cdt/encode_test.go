package cdt

import (
	"testing"

	"cryptdatum/cdt/lbytes"
	"github.com/stretchr/testify/assert"
)

func TestEncodeHeader_RoundTrip(t *testing.T) {
	header := Header{
		Magic:          MagicBytes,
		Version:        1,
		Flags:          DatumChecksum | DatumOPC | DatumSigned,
		Timestamp:      1700000000000000000,
		OPC:            7,
		Checksum:       0xDEADBEEF,
		Size:           4096,
		CompressionAlg: 2,
		EncryptionAlg:  3,
		SignatureType:  1,
		SignatureSize:  64,
		FileExt:        "tar",
		Custom:         []byte{1, 2, 3, 4, 5, 6, 7, 8},
		Delimiter:      DelimiterBytes,
	}

	bs := EncodeHeader(header)
	assert.Len(t, bs, HeaderSize)
	assert.True(t, HasHeader(bs))
	assert.True(t, HasValidHeader(bs))

	decoded, err := DecodeHeader(lbytes.NewBytesReader(bs))
	assert.NoError(t, err)
	assert.Equal(t, header, *decoded)
}

func TestEncodeHeader_ForcesSentinels(t *testing.T) {
	// whatever the header value carries, the wire form gets the format's
	// magic and delimiter
	header := Header{
		Magic:     []byte{1, 2, 3},
		Version:   1,
		Timestamp: MagicDate,
		Delimiter: []byte{4, 5, 6},
	}
	bs := EncodeHeader(header)
	assert.True(t, HasHeader(bs))
}

func TestEncodeHeader_TruncatesFileExt(t *testing.T) {
	header := Header{
		Version:   1,
		Timestamp: MagicDate,
		FileExt:   "averylongextension",
	}
	bs := EncodeHeader(header)
	assert.Len(t, bs, HeaderSize)

	decoded, err := DecodeHeader(lbytes.NewBytesReader(bs))
	assert.NoError(t, err)
	assert.Equal(t, "averylon", decoded.FileExt)
}
