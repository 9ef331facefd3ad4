package abxcounts

import (
	"io"
	"math"
	"strconv"

	"github.com/gocarina/gocsv"
)

// ExportCount writes a count the way it was read: missing values stay empty
// instead of becoming "NaN".
type ExportCount float64

func (c ExportCount) MarshalCSV() (string, error) {
	if math.IsNaN(float64(c)) {
		return "", nil
	}
	return strconv.FormatFloat(float64(c), 'f', -1, 64), nil
}

// FecalExportRow is the column layout of the fecal time course export.
type FecalExportRow struct {
	MouseID         string      `csv:"mouse_ID"`
	ExperimentalDay int         `csv:"experimental_day"`
	Counts          ExportCount `csv:"counts_live_bacteria_per_wet_g"`
}

// SiteExportRow is the column layout of the cecal and ileal exports.
type SiteExportRow struct {
	MouseID    string      `csv:"mouse_ID"`
	SampleType SampleType  `csv:"sample_type"`
	Counts     ExportCount `csv:"counts_live_bacteria_per_wet_g"`
}

// WriteFecalExport writes mouse_ID, experimental_day and counts for every
// row of t, with a header and no index column.
func WriteFecalExport(w io.Writer, t *Table) error {
	out := make([]FecalExportRow, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, FecalExportRow{
			MouseID:         row.MouseID,
			ExperimentalDay: row.ExperimentalDay,
			Counts:          ExportCount(row.Counts),
		})
	}

	return gocsv.Marshal(&out, w)
}

// WriteSiteExport writes mouse_ID, sample_type and counts for every row of t,
// with a header and no index column.
func WriteSiteExport(w io.Writer, t *Table) error {
	out := make([]SiteExportRow, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, SiteExportRow{
			MouseID:    row.MouseID,
			SampleType: row.SampleType,
			Counts:     ExportCount(row.Counts),
		})
	}

	return gocsv.Marshal(&out, w)
}
