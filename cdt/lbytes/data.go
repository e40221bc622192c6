// Package lbytes reads and writes little-endian values over a caller-owned
// byte source. The core decoder only ever pulls one header's worth of bytes
// through a Reader; acquiring and releasing the underlying source is the
// caller's responsibility.
package lbytes

import (
	"io"
)

type (
	Reader struct {
		src io.Reader
	}
)
