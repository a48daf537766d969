// Package loader reads hourly wind observation CSV files in the layout the
// Japan Meteorological Agency download site produces: one row per hour with
// a timestamp, a wind speed in m/s and a 16-point compass direction label.
// Files arrive either as UTF-8 (with or without a BOM) or as raw Shift_JIS.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/chrissnell/windrose/internal/log"
	"github.com/chrissnell/windrose/pkg/compass"
	"github.com/chrissnell/windrose/pkg/windrose"
)

// timeLayout matches the agency's stamp, zero-padded or not.
const timeLayout = "2006/1/2 15:04:05"

// DataError reports one observation row the loader could not use.
type DataError struct {
	Row    int    // 1-based row number in the file
	Column string // which field was unusable
	Err    error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("row %d: bad %s: %v", e.Row, e.Column, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// Options selects the file encoding and which CSV columns hold each field.
type Options struct {
	Encoding        string // "utf-8" (BOM tolerated, default) or "shift-jis"
	TimeColumn      int
	SpeedColumn     int
	DirectionColumn int
}

// DefaultOptions matches the JMA hourly export layout, where column 2 holds
// a quality flag this system does not evaluate.
func DefaultOptions() Options {
	return Options{Encoding: "utf-8", TimeColumn: 0, SpeedColumn: 1, DirectionColumn: 3}
}

func (o Options) maxColumn() int {
	max := o.TimeColumn
	if o.SpeedColumn > max {
		max = o.SpeedColumn
	}
	if o.DirectionColumn > max {
		max = o.DirectionColumn
	}
	return max
}

// Result carries the usable observations plus a count of rows dropped with
// a DataError.
type Result struct {
	Observations []windrose.Observation
	Skipped      int
}

// Load reads one observation file.
func Load(path string, opts Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening observations: %w", err)
	}
	defer f.Close()

	res, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Parse decodes observation rows from r. A row that does not parse is
// counted, logged and skipped, so stray header or footer lines in raw agency
// exports cannot poison a run; Parse fails only when no row parses at all.
func Parse(r io.Reader, opts Options) (*Result, error) {
	if opts.TimeColumn < 0 || opts.SpeedColumn < 0 || opts.DirectionColumn < 0 {
		return nil, fmt.Errorf("column indexes must be non-negative")
	}
	decoded, err := decodingReader(r, opts.Encoding)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &Result{}
	for row := 1; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			res.Skipped++
			log.Warnf("skipping row %d: %v", row, err)
			continue
		}
		obs, derr := parseRecord(record, row, opts)
		if derr != nil {
			res.Skipped++
			log.Warnf("skipping %v", derr)
			continue
		}
		res.Observations = append(res.Observations, obs)
	}

	if len(res.Observations) == 0 {
		return nil, fmt.Errorf("no usable observations (%d rows skipped)", res.Skipped)
	}
	return res, nil
}

func parseRecord(record []string, row int, opts Options) (windrose.Observation, *DataError) {
	if len(record) <= opts.maxColumn() {
		return windrose.Observation{}, &DataError{
			Row:    row,
			Column: "record",
			Err:    fmt.Errorf("%d fields, need at least %d", len(record), opts.maxColumn()+1),
		}
	}

	ts, err := time.Parse(timeLayout, strings.TrimSpace(record[opts.TimeColumn]))
	if err != nil {
		return windrose.Observation{}, &DataError{Row: row, Column: "timestamp", Err: err}
	}
	// Rows are stamped with the end of the hour they cover; shift each
	// reading back so it is filed under the hour it belongs to.
	ts = ts.Add(-time.Hour)

	var speed float64
	if s := strings.TrimSpace(record[opts.SpeedColumn]); s != "" {
		speed, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return windrose.Observation{}, &DataError{Row: row, Column: "speed", Err: err}
		}
		if speed < 0 {
			return windrose.Observation{}, &DataError{Row: row, Column: "speed", Err: fmt.Errorf("negative speed %v", speed)}
		}
	}

	dir, err := compass.Parse(record[opts.DirectionColumn])
	if err != nil {
		return windrose.Observation{}, &DataError{Row: row, Column: "direction", Err: err}
	}

	return windrose.Observation{Time: ts, Direction: dir, Speed: speed}, nil
}

// decodingReader wraps r so the CSV reader always sees UTF-8. A Unicode BOM
// wins when present; otherwise the configured encoding decodes the stream.
func decodingReader(r io.Reader, encoding string) (io.Reader, error) {
	var dec transform.Transformer
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		dec = unicode.UTF8.NewDecoder()
	case "shift-jis", "shift_jis", "sjis", "cp932":
		dec = japanese.ShiftJIS.NewDecoder()
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
	return transform.NewReader(r, unicode.BOMOverride(dec)), nil
}
