package lbytes

import (
	"bytes"
	"encoding/binary"
	"io"
	"strings"
)

func NewReader(src io.Reader) *Reader {
	return &Reader{src: src}
}

func NewBytesReader(bs []byte) *Reader {
	return &Reader{src: bytes.NewReader(bs)}
}

// ReadBytes reads exactly n bytes from the source. A short read is reported
// as an error; the bytes transferred before the failure are discarded.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	bs := make([]byte, n)
	if n == 0 {
		return bs, nil
	}
	if _, err := io.ReadFull(r.src, bs); err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *Reader) ReadUint16() (uint16, error) {
	bs, err := r.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(bs), nil
}

func (r *Reader) ReadUint32() (uint32, error) {
	bs, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(bs), nil
}

func (r *Reader) ReadUint64() (uint64, error) {
	bs, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(bs), nil
}

// ReadString reads n bytes and trims trailing zero bytes, since that is how
// fixed-width text fields are laid out in a Cryptdatum header.
func (r *Reader) ReadString(n int) (string, error) {
	bs, err := r.ReadBytes(n)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(bs), "\u0000"), nil
}
