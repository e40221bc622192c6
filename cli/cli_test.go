package cli

import (
	"os"
	"path/filepath"
	"testing"

	"cryptdatum/cdt"
	"github.com/stretchr/testify/assert"
)

func writeTestDatum(t *testing.T, name string, bs []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, bs, 0644)
	assert.NoError(t, err)
	return path
}

func validDatumBytes() []byte {
	return cdt.EncodeHeader(cdt.Header{
		Version:   cdt.Version,
		Timestamp: cdt.MagicDate,
		Size:      cdt.HeaderSize,
	})
}

func TestFileHasHeader(t *testing.T) {
	logger := NewLogger(false)

	valid := writeTestDatum(t, "valid.datum", validDatumBytes())
	assert.Equal(t, 0, FileHasHeader(logger, valid))

	garbage := writeTestDatum(t, "garbage.bin", make([]byte, cdt.HeaderSize))
	assert.Equal(t, 1, FileHasHeader(logger, garbage))

	short := writeTestDatum(t, "short.datum", validDatumBytes()[:cdt.HeaderSize-1])
	assert.Equal(t, 1, FileHasHeader(logger, short))

	assert.Equal(t, 1, FileHasHeader(logger, filepath.Join(t.TempDir(), "missing")))
}

func TestFileHasValidHeader(t *testing.T) {
	logger := NewLogger(false)

	valid := writeTestDatum(t, "valid.datum", validDatumBytes())
	assert.Equal(t, 0, FileHasValidHeader(logger, valid))

	// structurally present but semantically invalid: timestamp zeroed
	stale := cdt.EncodeHeader(cdt.Header{Version: cdt.Version})
	invalid := writeTestDatum(t, "invalid.datum", stale)
	assert.Equal(t, 1, FileHasValidHeader(logger, invalid))
}

func TestFileInfo(t *testing.T) {
	logger := NewLogger(false)

	valid := writeTestDatum(t, "valid.datum", validDatumBytes())
	assert.Equal(t, 0, FileInfo(logger, valid))

	garbage := writeTestDatum(t, "garbage.bin", make([]byte, cdt.HeaderSize))
	assert.Equal(t, 1, FileInfo(logger, garbage))

	assert.Equal(t, 1, FileInfo(logger, filepath.Join(t.TempDir(), "missing")))
}

func TestReadHeaderBytes(t *testing.T) {
	// payload past the header must not leak into the probe
	bs := append(validDatumBytes(), []byte("payload")...)
	path := writeTestDatum(t, "full.datum", bs)

	probed, err := readHeaderBytes(path)
	assert.NoError(t, err)
	assert.Len(t, probed, cdt.HeaderSize)
	assert.True(t, cdt.HasHeader(probed))
}
