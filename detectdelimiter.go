package abxcounts

import (
	"bytes"

	"github.com/csimplestring/go-csv/detector"
)

// DefaultDelimiter separates fields in the lab's exported count sheets.
const DefaultDelimiter = ';'

// DetermineDelimiter returns the single most likely rune that would delimit the
// values in data, assuming a CSV-like file. Falls back to DefaultDelimiter
// when nothing stands out.
func DetermineDelimiter(data []byte) rune {
	d := detector.New()
	delimiters := d.DetectDelimiter(bytes.NewReader(data), '"')

	if len(delimiters) > 0 && len(delimiters[0]) > 0 {
		return []rune(delimiters[0])[0]
	}

	return DefaultDelimiter
}
