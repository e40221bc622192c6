package cdt

import (
	"cryptdatum/cdt/lbytes"
	"github.com/pkg/errors"
)

// DecodeHeader pulls exactly HeaderSize bytes from reader and materializes
// a Header from them. It requires structural presence only (HasHeader);
// callers wanting full semantic validation run HasValidHeader on the bytes
// or check the decoded fields themselves.
//
// The single read is all the decoder ever takes from the source: every
// field, FileExt included, is sliced out of that one buffer, so the source
// is left positioned at the first payload byte. Closing the source belongs
// to the caller.
func DecodeHeader(reader *lbytes.Reader) (*Header, error) {
	headerBytes, err := reader.ReadBytes(HeaderSize)
	if err != nil {
		err := errors.Wrap(ErrIO, "DecodeHeader error: read header bytes: "+err.Error())
		return nil, err
	}
	if !HasHeader(headerBytes) {
		err := errors.Wrap(ErrNoHeader, "DecodeHeader error: no magic and delimiter alignment")
		return nil, err
	}

	fields := lbytes.NewBytesReader(headerBytes)
	header := Header{}

	header.Magic, err = fields.ReadBytes(8)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Magic")
	}
	header.Version, err = fields.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Version")
	}
	flags, err := fields.ReadUint64()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Flags")
	}
	header.Flags = DatumFlag(flags)
	header.Timestamp, err = fields.ReadUint64()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Timestamp")
	}
	header.OPC, err = fields.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.OPC")
	}
	header.Checksum, err = fields.ReadUint64()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Checksum")
	}
	header.Size, err = fields.ReadUint64()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Size")
	}
	header.CompressionAlg, err = fields.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.CompressionAlg")
	}
	header.EncryptionAlg, err = fields.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.EncryptionAlg")
	}
	header.SignatureType, err = fields.ReadUint16()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.SignatureType")
	}
	header.SignatureSize, err = fields.ReadUint32()
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.SignatureSize")
	}
	header.FileExt, err = fields.ReadString(8)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.FileExt")
	}
	header.Custom, err = fields.ReadBytes(8)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Custom")
	}
	header.Delimiter, err = fields.ReadBytes(8)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeHeader error: read header.Delimiter")
	}

	return &header, nil
}
