package plot

import (
	"bytes"
	"image/png"
	"os"
	"testing"

	"github.com/carbocation/abxcounts"
)

const fixturePath = "../testdata/counts.csv"

func loadFixture(t *testing.T) *abxcounts.Table {
	t.Helper()

	f, err := os.Open(fixturePath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	table, err := abxcounts.LoadReader(f, abxcounts.DefaultDelimiter)
	if err != nil {
		t.Fatal(err)
	}

	return table
}

// checkPNG decodes buf and verifies its dimensions.
func checkPNG(t *testing.T, buf *bytes.Buffer, width, height int) {
	t.Helper()

	if buf.Len() == 0 {
		t.Fatal("Nothing was written")
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != width || b.Dy() != height {
		t.Errorf("Expected a %dx%d image, got %dx%d", width, height, b.Dx(), b.Dy())
	}
}
