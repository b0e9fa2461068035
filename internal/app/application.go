package app

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"goigc/internal/igc"
)

// Stats counts what a run decoded.
type Stats struct {
	Lines          int
	Decoded        int
	Fixes          int
	Errors         int
	UnusedTrailing int
}

// Application streams an IGC file through the decoder, threading the active
// extension schemas from I/J records into subsequent B/K decodes, and writes
// decoded records to the configured output.
type Application struct {
	config Config
	logger *logrus.Logger
	stats  Stats

	// flightDate is picked up from the HFDTE header so fixes, which carry
	// only a time of day, can be written with their date.
	flightDate igc.Date
}

// NewApplication creates a new application instance
func NewApplication(config Config) *Application {
	logger := logrus.New()
	if config.Verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return &Application{
		config: config,
		logger: logger,
	}
}

// Run processes the configured input file end to end.
func (app *Application) Run() error {
	if err := app.config.Validate(); err != nil {
		return err
	}

	input, err := app.openInput()
	if err != nil {
		return err
	}
	defer input.Close()

	writer, err := NewRecordWriter(app.config)
	if err != nil {
		return err
	}

	procErr := app.process(input, writer)
	if err := writer.Close(); err != nil && procErr == nil {
		procErr = err
	}

	app.logger.WithFields(logrus.Fields{
		"lines":           app.stats.Lines,
		"decoded":         app.stats.Decoded,
		"fixes":           app.stats.Fixes,
		"errors":          app.stats.Errors,
		"unused_trailing": app.stats.UnusedTrailing,
	}).Info("Finished processing")

	return procErr
}

func (app *Application) openInput() (io.ReadCloser, error) {
	if app.config.InputPath == "" || app.config.InputPath == "-" {
		return io.NopCloser(os.Stdin), nil
	}

	file, err := os.Open(app.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	return file, nil
}

// process decodes the input line by line. The per-line error policy lives
// here, not in the decoder: strict mode aborts on the first malformed line,
// the default logs it and continues.
func (app *Application) process(r io.Reader, writer *RecordWriter) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var schemas igc.Schemas
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		app.stats.Lines++

		rec, err := igc.Parse(line, schemas)
		if err != nil {
			if abort := app.handleLineError(lineNo, line, err); abort != nil {
				return abort
			}
			continue
		}
		app.stats.Decoded++

		switch r := rec.(type) {
		case *igc.FixExtensions:
			schema, err := igc.NewFixSchema(r)
			if err != nil {
				if abort := app.handleLineError(lineNo, line, err); abort != nil {
					return abort
				}
				continue
			}
			schemas.Fix = schema
			app.logger.WithField("fields", len(r.Defs)).Debug("Fix extension schema updated")

		case *igc.DataExtensions:
			schema, err := igc.NewDataSchema(r)
			if err != nil {
				if abort := app.handleLineError(lineNo, line, err); abort != nil {
					return abort
				}
				continue
			}
			schemas.Data = schema
			app.logger.WithField("fields", len(r.Defs)).Debug("Data extension schema updated")

		case *igc.Header:
			app.noteHeader(r)

		case *igc.Fix:
			app.stats.Fixes++
			if r.Unused != "" {
				app.stats.UnusedTrailing++
				app.logger.WithFields(logrus.Fields{
					"line":   lineNo,
					"unused": r.Unused,
				}).Debug("Fix carries data past the declared extensions")
			}

		case *igc.ExtensionData:
			if r.Unused != "" {
				app.stats.UnusedTrailing++
			}
		}

		if err := writer.Write(rec, app.flightDate); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func (app *Application) handleLineError(lineNo int, line string, err error) error {
	app.stats.Errors++
	if app.config.Strict {
		return fmt.Errorf("line %d: %w", lineNo, err)
	}

	app.logger.WithFields(logrus.Fields{
		"line":    lineNo,
		"content": line,
	}).WithError(err).Warn("Skipping malformed line")
	return nil
}

// noteHeader picks metadata out of header records. The flight date arrives
// either as HFDTEDDMMYY or, on newer recorders, HFDTEDATE:DDMMYY,NN.
func (app *Application) noteHeader(hdr *igc.Header) {
	if hdr.Mnemonic != "DTE" || len(hdr.Data) < 6 {
		return
	}

	date, err := igc.ParseDate(hdr.Data[:6])
	if err != nil {
		app.logger.WithError(err).WithField("data", hdr.Data).Debug("Unparseable flight date header")
		return
	}
	app.flightDate = date
	app.logger.WithField("date", date.String()).Debug("Flight date set from header")
}
