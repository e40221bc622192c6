package cdt

type (
	// ErrorKind classifies the failures the library can report. The checker
	// functions never return errors; kinds other than ErrorNone surface only
	// from the decoder and from callers layering validation on top of it.
	ErrorKind int

	// Error is a failure with a Cryptdatum error kind attached, so that the
	// command surface can map it to an exit code with errors.Is.
	Error struct {
		Kind ErrorKind
	}
)

const (
	ErrorNone ErrorKind = iota
	ErrorUnspecified
	ErrorIO
	ErrorEOF
	ErrorNoHeader
	ErrorInvalidHeader
)

// String keeps the kind and its message in one place so the two cannot
// drift apart.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "no error"
	case ErrorIO:
		return "cryptdatum I/O error"
	case ErrorEOF:
		return "cryptdatum unexpected end of file"
	case ErrorNoHeader:
		return "cryptdatum header not found"
	case ErrorInvalidHeader:
		return "cryptdatum header is invalid"
	}
	return "cryptdatum error"
}

func (e *Error) Error() string {
	return e.Kind.String()
}

var (
	ErrIO            = &Error{Kind: ErrorIO}
	ErrEOF           = &Error{Kind: ErrorEOF}
	ErrNoHeader      = &Error{Kind: ErrorNoHeader}
	ErrInvalidHeader = &Error{Kind: ErrorInvalidHeader}
)
