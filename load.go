package abxcounts

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

var (
	// ErrMissingColumn is returned when the input lacks one of RequiredColumns.
	ErrMissingColumn = errors.New("missing required column")

	ErrEmptyFile = errors.New("input has no header row")

	// ErrMissingValue is returned for a row with no experimental day.
	ErrMissingValue = errors.New("missing value")
)

// Load reads the count sheet at path. A delimiter of 0 asks for the delimiter
// to be sniffed from the file contents.
func Load(ctx context.Context, path string, delimiter rune, client *storage.Client) (*Table, error) {
	src, err := OpenSource(ctx, path, client)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer src.Close()

	rc, err := MaybeDecompress(src)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}
	defer rc.Close()

	// Count sheets are small; reading them into memory lets us sniff the
	// delimiter and still parse from the start.
	data, err := ioutil.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", path, err))
	}

	if delimiter == 0 {
		delimiter = DetermineDelimiter(data)
	}

	table, err := LoadReader(bytes.NewReader(data), delimiter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// LoadReader parses a delimited count sheet from r. Column names and cell
// values are stripped of surrounding whitespace.
func LoadReader(r io.Reader, delimiter rune) (*Table, error) {
	csvReader := csv.NewReader(r)
	csvReader.Comma = delimiter
	csvReader.LazyQuotes = true

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmptyFile
	}

	// Leading byte order marks show up in sheets exported from Excel.
	records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")

	for _, record := range records {
		for i := range record {
			record[i] = strings.TrimSpace(record[i])
		}
	}

	header := records[0]
	if err := checkColumns(header); err != nil {
		return nil, err
	}

	if err := markMissing(header, records[1:]); err != nil {
		return nil, err
	}

	rows := make([]Measurement, 0, len(records)-1)
	if err := gocsv.UnmarshalCSV(&recordReader{records: records}, &rows); err != nil {
		return nil, err
	}

	return &Table{
		Columns: header,
		Rows:    rows,
	}, nil
}

func checkColumns(header []string) error {
	present := make(map[string]struct{}, len(header))
	for _, col := range header {
		present[col] = struct{}{}
	}

	for _, col := range RequiredColumns {
		if _, exists := present[col]; !exists {
			return fmt.Errorf("%w %q (found %s)", ErrMissingColumn, col, strings.Join(header, ", "))
		}
	}

	return nil
}

// markMissing rewrites empty count cells as NaN so that they decode as
// missing rather than as zero. A row without a day has no place on the time
// axis and is an error.
func markMissing(header []string, rows [][]string) error {
	dayCol, countCol := columnIndex(header, ColExperimentalDay), columnIndex(header, ColCounts)

	for i, row := range rows {
		if row[dayCol] == "" {
			return fmt.Errorf("%w: %s is empty in data row %d", ErrMissingValue, ColExperimentalDay, i+1)
		}
		if row[countCol] == "" {
			row[countCol] = "NaN"
		}
	}

	return nil
}

func columnIndex(header []string, col string) int {
	for i, name := range header {
		if name == col {
			return i
		}
	}
	return -1
}

// recordReader replays already-parsed records to gocsv.
type recordReader struct {
	records [][]string
	pos     int
}

func (r *recordReader) Read() ([]string, error) {
	if r.pos >= len(r.records) {
		return nil, io.EOF
	}
	r.pos++
	return r.records[r.pos-1], nil
}

func (r *recordReader) ReadAll() ([][]string, error) {
	out := r.records[r.pos:]
	r.pos = len(r.records)
	return out, nil
}
