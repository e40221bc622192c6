package lbytes

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeUint16(t *testing.T) {
	bs1 := make([]byte, 2)
	binary.LittleEndian.PutUint16(bs1, 10)
	bs2 := EncodeUint16(10)
	assert.Equal(t, bs1, bs2)
}

func TestEncodeUint32(t *testing.T) {
	bs1 := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs1, 1312301580)
	bs2 := EncodeUint32(1312301580)
	assert.Equal(t, bs1, bs2)
}

func TestEncodeUint64(t *testing.T) {
	bs1 := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs1, 1700000000000000000)
	bs2 := EncodeUint64(1700000000000000000)
	assert.Equal(t, bs1, bs2)
}

func TestEncodeString(t *testing.T) {
	assert.Equal(t, []byte{'a', 'b', 'c', 0, 0, 0, 0, 0}, EncodeString("abc", 8))
	assert.Equal(t, []byte{'a', 'b'}, EncodeString("abc", 2))
}

func TestEncodeBytes(t *testing.T) {
	assert.Equal(t, []byte{1, 2, 0, 0}, EncodeBytes([]byte{1, 2}, 4))
}

func TestEncodeDecodeString(t *testing.T) {
	reader := NewBytesReader(EncodeString("dat", 8))
	value, err := reader.ReadString(8)
	assert.NoError(t, err)
	assert.Equal(t, "dat", value)
}
