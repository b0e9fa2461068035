package app

import (
	"compress/gzip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"goigc/internal/igc"
)

var csvHeader = []string{
	"date", "time", "latitude", "longitude",
	"validity", "pressure_alt", "gnss_alt", "extensions",
}

// RecordWriter writes decoded records to the configured destination, as one
// CSV row per fix or one JSON object per record.
type RecordWriter struct {
	format      string
	out         io.Writer
	enc         *json.Encoder
	gz          *gzip.Writer
	file        *os.File
	wroteHeader bool
}

// NewRecordWriter creates a writer for the configured output path and format.
// With no output path it writes to stdout.
func NewRecordWriter(config Config) (*RecordWriter, error) {
	var dst io.Writer = os.Stdout
	var file *os.File

	if config.OutputPath != "" {
		f, err := os.Create(config.OutputPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create output file: %w", err)
		}
		file = f
		dst = f
	}

	w := newRecordWriterTo(config.Format, dst)
	w.file = file

	if config.Gzip {
		gz := gzip.NewWriter(dst)
		gz.Name = strings.TrimSuffix(filepath.Base(config.OutputPath), ".gz")
		w.gz = gz
		w.out = gz
		if w.enc != nil {
			w.enc = json.NewEncoder(gz)
		}
	}

	return w, nil
}

func newRecordWriterTo(format string, dst io.Writer) *RecordWriter {
	w := &RecordWriter{format: format, out: dst}
	if format == FormatJSON {
		w.enc = json.NewEncoder(dst)
	}
	return w
}

// Write emits one decoded record. In CSV mode only fixes produce output;
// flightDate fills the date column, since a B record carries only a time.
func (w *RecordWriter) Write(rec igc.Record, flightDate igc.Date) error {
	switch w.format {
	case FormatJSON:
		return w.enc.Encode(struct {
			Kind   string     `json:"kind"`
			Record igc.Record `json:"record"`
		}{Kind: rec.Kind().String(), Record: rec})

	case FormatCSV:
		fix, ok := rec.(*igc.Fix)
		if !ok {
			return nil
		}
		if !w.wroteHeader {
			if _, err := io.WriteString(w.out, strings.Join(csvHeader, ",")+"\n"); err != nil {
				return err
			}
			w.wroteHeader = true
		}
		_, err := io.WriteString(w.out, formatFixCSV(fix, flightDate)+"\n")
		return err
	}
	return nil
}

// formatFixCSV renders one fix as a CSV row. Extension values are packed
// into the last column as semicolon-separated mnemonic=value pairs, sorted
// for stable output.
func formatFixCSV(fix *igc.Fix, date igc.Date) string {
	var ext string
	if len(fix.Extensions) > 0 {
		mnemonics := make([]string, 0, len(fix.Extensions))
		for m := range fix.Extensions {
			mnemonics = append(mnemonics, m)
		}
		sort.Strings(mnemonics)

		pairs := make([]string, 0, len(mnemonics))
		for _, m := range mnemonics {
			pairs = append(pairs, m+"="+fix.Extensions[m])
		}
		ext = strings.Join(pairs, ";")
	}

	dateField := ""
	if !date.IsZero() {
		dateField = date.String()
	}

	fields := []string{
		dateField,
		fix.Time.String(),
		strconv.FormatFloat(fix.Lat.DecimalDegrees(), 'f', 6, 64),
		strconv.FormatFloat(fix.Lon.DecimalDegrees(), 'f', 6, 64),
		fix.Validity.String(),
		strconv.Itoa(fix.PressureAlt),
		strconv.Itoa(fix.GNSSAlt),
		ext,
	}

	return strings.Join(fields, ",")
}

// Close flushes the gzip stream, if any, and closes the output file.
func (w *RecordWriter) Close() error {
	if w.gz != nil {
		if err := w.gz.Close(); err != nil {
			return fmt.Errorf("failed to flush gzip stream: %w", err)
		}
	}
	if w.file != nil {
		if err := w.file.Close(); err != nil {
			return fmt.Errorf("failed to close output file: %w", err)
		}
	}
	return nil
}
