// Package cli is the thin command surface over the cdt library: it opens
// files, hands readers to the core, and maps boolean or error results to
// process exit codes.
package cli

import (
	"io"
	"os"
	"strings"
	"time"

	"cryptdatum/cdt"
	"cryptdatum/cdt/lbytes"
	"cryptdatum/render"
	"cryptdatum/ui"
	"github.com/alexflint/go-arg"
	"github.com/rs/zerolog"
)

type (
	Args struct {
		HasHeader      *HasHeaderCmd      `arg:"subcommand:file-has-header" help:"check whether a file starts with a datum header"`
		HasValidHeader *HasValidHeaderCmd `arg:"subcommand:file-has-valid-header" help:"check whether a file starts with a valid datum header"`
		Info           *InfoCmd           `arg:"subcommand:file-info" help:"decode and print a file's datum header"`
		Interactive    *InteractiveCmd    `arg:"subcommand:interactive" help:"browse a directory for datum files"`
		Verbose        bool               `arg:"-v,--verbose" help:"print diagnostics to stderr"`
	}
	HasHeaderCmd struct {
		Path string `arg:"positional,required" help:"path to the file" placeholder:"FILE"`
	}
	HasValidHeaderCmd struct {
		Path string `arg:"positional,required" help:"path to the file" placeholder:"FILE"`
	}
	InfoCmd struct {
		Path string `arg:"positional,required" help:"path to the file" placeholder:"FILE"`
	}
	InteractiveCmd struct{}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"A CLI utility to inspect Cryptdatum files:",
			"an 80-byte header declaring how the payload that follows it",
			"should be interpreted.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// NewLogger builds the diagnostic logger from an explicit verbosity value.
// The cdt library itself never logs; all diagnostics are emitted here.
func NewLogger(verbose bool) zerolog.Logger {
	level := zerolog.ErrorLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// readHeaderBytes reads up to cdt.HeaderSize bytes from the start of the
// file at path. A file shorter than a header yields a short slice, which
// the checker functions reject on their own.
func readHeaderBytes(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	bs := make([]byte, cdt.HeaderSize)
	n, err := io.ReadFull(f, bs)
	if err == io.ErrUnexpectedEOF || err == io.EOF {
		return bs[:n], nil
	}
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func FileHasHeader(logger zerolog.Logger, path string) int {
	bs, err := readHeaderBytes(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg(cdt.ErrorIO.String())
		return 1
	}
	if !cdt.HasHeader(bs) {
		logger.Debug().Str("path", path).Msg(cdt.ErrorNoHeader.String())
		return 1
	}
	return 0
}

func FileHasValidHeader(logger zerolog.Logger, path string) int {
	bs, err := readHeaderBytes(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg(cdt.ErrorIO.String())
		return 1
	}
	if !cdt.HasHeader(bs) {
		logger.Debug().Str("path", path).Msg(cdt.ErrorNoHeader.String())
		return 1
	}
	if !cdt.HasValidHeader(bs) {
		logger.Debug().Str("path", path).Msg(cdt.ErrorInvalidHeader.String())
		return 1
	}
	return 0
}

func FileInfo(logger zerolog.Logger, path string) int {
	f, err := os.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg(cdt.ErrorIO.String())
		return 1
	}
	defer f.Close()

	header, err := cdt.DecodeHeader(lbytes.NewReader(f))
	if err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to decode header")
		return 1
	}

	render.PrintHeader(os.Stdout, header)
	return 0
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	logger := NewLogger(args.Verbose)

	code := 0
	switch {
	case args.HasHeader != nil:
		code = FileHasHeader(logger, args.HasHeader.Path)
	case args.HasValidHeader != nil:
		code = FileHasValidHeader(logger, args.HasValidHeader.Path)
	case args.Info != nil:
		code = FileInfo(logger, args.Info.Path)
	case args.Interactive != nil:
		code = ui.Start(logger)
	default:
		parser.WriteHelp(os.Stderr)
		code = 1
	}
	os.Exit(code)
}
