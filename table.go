package abxcounts

// Table holds the rows of one input file in file order, together with its
// (trimmed) header.
type Table struct {
	Columns []string
	Rows    []Measurement
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// Filter returns a new table with the rows for which keep returns true. The
// receiver is not modified.
func (t *Table) Filter(keep func(Measurement) bool) *Table {
	out := &Table{
		Columns: t.Columns,
		Rows:    make([]Measurement, 0),
	}

	for _, row := range t.Rows {
		if keep(row) {
			out.Rows = append(out.Rows, row)
		}
	}

	return out
}

func (t *Table) BySampleType(st SampleType) *Table {
	return t.Filter(func(m Measurement) bool { return m.SampleType == st })
}

func (t *Table) ByTreatment(tr Treatment) *Table {
	return t.Filter(func(m Measurement) bool { return m.Treatment == tr })
}

func (t *Table) ByMouse(mouseID string) *Table {
	return t.Filter(func(m Measurement) bool { return m.MouseID == mouseID })
}

// MouseIDs returns each distinct mouse ID once, in order of first appearance.
func (t *Table) MouseIDs() []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, row := range t.Rows {
		if _, exists := seen[row.MouseID]; exists {
			continue
		}
		seen[row.MouseID] = struct{}{}
		out = append(out, row.MouseID)
	}

	return out
}

// PositiveCounts returns the counts of every row, in row order, dropping
// missing values and any that cannot be placed on a log scale.
func (t *Table) PositiveCounts() []float64 {
	out := make([]float64, 0, len(t.Rows))
	for _, row := range t.Rows {
		if row.Counts > 0 {
			out = append(out, row.Counts)
		}
	}
	return out
}
