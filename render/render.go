// Package render turns a decoded Cryptdatum header into human-readable
// output. It consumes the header's public fields only and performs no
// validation of its own.
package render

import (
	"fmt"
	"io"
	"time"

	"cryptdatum/cdt"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type (
	fieldRow struct {
		Name        string
		Width       int
		Description string
		Type        string
		Value       string
	}
)

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatTimestamp renders a header timestamp (UTC nanoseconds) in the
// format's canonical form, e.g. "2023-11-14T22:13:20.000000000Z".
func FormatTimestamp(ns uint64) string {
	t := time.Unix(int64(ns/1e9), int64(ns%1e9)).UTC()
	return t.Format("2006-01-02T15:04:05.000000000") + "Z"
}

// PrettySize renders a byte count with a 1024-stepped unit suffix.
func PrettySize(size uint64) string {
	value := float64(size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}
	if unit == 0 {
		return fmt.Sprintf("%d %s", size, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

func fieldRows(header *cdt.Header) []fieldRow {
	return []fieldRow{
		{"Version", 2, "Version number", "uint16", fmt.Sprintf("%d", header.Version)},
		{"Flags", 8, "Flags", "uint64", fmt.Sprintf("%d", uint64(header.Flags))},
		{"Timestamp", 8, "Timestamp", "uint64", fmt.Sprintf("%d", header.Timestamp)},
		{"OPC", 4, "Operation counter", "uint32", fmt.Sprintf("%d", header.OPC)},
		{"Checksum", 8, "Checksum", "uint64", fmt.Sprintf("%d", header.Checksum)},
		{"Size", 8, "Total size", "uint64", PrettySize(header.Size)},
		{"Comp. Alg.", 2, "Compression algorithm", "uint16", fmt.Sprintf("%d", header.CompressionAlg)},
		{"Encrypt. Alg.", 2, "Encryption algorithm", "uint16", fmt.Sprintf("%d", header.EncryptionAlg)},
		{"Sign. Type", 2, "Signature type", "uint16", fmt.Sprintf("%d", header.SignatureType)},
		{"Sign. Size", 4, "Signature size", "uint32", fmt.Sprintf("%d", header.SignatureSize)},
		{"File Ext.", 8, "File extension", "char[8]", header.FileExt},
		{"Custom", 8, "Custom", "uint8[8]", fmt.Sprintf("%v", header.Custom)},
	}
}

// AllFlags lists the defined flag bits in bit order for presentation.
var AllFlags = []cdt.DatumFlag{
	cdt.DatumInvalid,
	cdt.DatumDraft,
	cdt.DatumEmpty,
	cdt.DatumChecksum,
	cdt.DatumOPC,
	cdt.DatumCompressed,
	cdt.DatumEncrypted,
	cdt.DatumExtractable,
	cdt.DatumSigned,
	cdt.DatumStreamable,
	cdt.DatumCustom,
	cdt.DatumCompromised,
}

// FlagRows renders each defined flag bit with its state in header.
func FlagRows(header *cdt.Header) [][]string {
	return lo.Map(
		AllFlags,
		func(flag cdt.DatumFlag, _ int) []string {
			return []string{
				flag.String(),
				fmt.Sprintf("%t", header.Flags.Has(flag)),
			}
		},
	)
}

// PrintHeader writes the header's field table and flag table to w.
func PrintHeader(w io.Writer, header *cdt.Header) {
	fmt.Fprintf(
		w, "CRYPTDATUM  size: %s  created: %s\n\n",
		PrettySize(header.Size), FormatTimestamp(header.Timestamp),
	)

	fields := tablewriter.NewWriter(w)
	fields.SetHeader([]string{"Field", "Size (B)", "Description", "Type", "Value"})
	fields.SetAutoWrapText(false)
	fields.SetAutoFormatHeaders(true)
	fields.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	fields.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range fieldRows(header) {
		fields.Append([]string{
			row.Name,
			fmt.Sprintf("%d", row.Width),
			row.Description,
			row.Type,
			row.Value,
		})
	}
	fields.Render()

	fmt.Fprintln(w)

	flags := tablewriter.NewWriter(w)
	flags.SetHeader([]string{"Flag", "Set"})
	flags.SetAutoWrapText(false)
	flags.SetAutoFormatHeaders(true)
	flags.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	flags.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, row := range FlagRows(header) {
		flags.Append(row)
	}
	flags.Render()
}
