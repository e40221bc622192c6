package cdt

import (
	"bytes"
	"encoding/binary"
)

var zeroBytes = []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// HasHeader reports whether bs starts with a Cryptdatum header. It checks
// the magic and delimiter alignment only and performs no further
// validation; callers wanting integrity guarantees should use
// HasValidHeader, or DecodeHeader and inspect the fields themselves.
func HasHeader(bs []byte) bool {
	if len(bs) < HeaderSize {
		return false
	}
	return bytes.Equal(bs[offsetMagic:offsetMagic+8], MagicBytes) &&
		bytes.Equal(bs[offsetDelimiter:offsetDelimiter+8], DelimiterBytes)
}

// HasValidHeader reports whether bs starts with an internally consistent
// Cryptdatum header. Draft and compromised datums declare themselves
// incomplete or untrustworthy and are exempt from the semantic checks.
//
// bs is read-only and never retained; the function is a pure predicate
// over the first HeaderSize bytes.
func HasValidHeader(bs []byte) bool {
	if !HasHeader(bs) {
		return false
	}

	version := binary.LittleEndian.Uint16(bs[offsetVersion:])
	if version < MinVersion {
		return false
	}

	// a draft or compromised datum skips the remaining checks
	flags := DatumFlag(binary.LittleEndian.Uint64(bs[offsetFlags:]))
	if flags.Has(DatumDraft) || flags.Has(DatumCompromised) {
		return true
	}

	timestamp := binary.LittleEndian.Uint64(bs[offsetTimestamp:])
	if timestamp < MagicDate {
		return false
	}

	if flags.Has(DatumOPC) {
		counter := binary.LittleEndian.Uint32(bs[offsetOPC:])
		if counter < 1 {
			return false
		}
	}

	if flags.Has(DatumChecksum) &&
		bytes.Equal(bs[offsetChecksum:offsetChecksum+8], zeroBytes) {
		return false
	}

	// NB: the compression, encryption, and extension checks apply only when
	// the empty flag is also set. That reads odd for a non-empty compressed
	// datum, but it is how the format behaves today.
	if flags.Has(DatumEmpty) {
		size := binary.LittleEndian.Uint64(bs[offsetSize:])
		if size < 1 {
			return false
		}
		if flags.Has(DatumCompressed) {
			algorithm := binary.LittleEndian.Uint16(bs[offsetCompressionAlg:])
			if algorithm < 1 {
				return false
			}
		}
		if flags.Has(DatumEncrypted) {
			algorithm := binary.LittleEndian.Uint16(bs[offsetEncryptionAlg:])
			if algorithm < 1 {
				return false
			}
		}
		if flags.Has(DatumExtractable) &&
			bytes.Equal(bs[offsetFileExt:offsetFileExt+8], zeroBytes) {
			return false
		}
	}

	// the signature size is not constrained here as its legal range depends
	// on the signature type
	if flags.Has(DatumSigned) {
		signatureType := binary.LittleEndian.Uint16(bs[offsetSignatureType:])
		if signatureType < 1 {
			return false
		}
	}

	return true
}
