package pipeline

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixturePath = "../testdata/counts.csv"

func TestRun(t *testing.T) {
	dir := t.TempDir()

	if err := Run(context.Background(), Config{
		Input:     fixturePath,
		OutputDir: dir,
		Delimiter: ';',
	}); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{
		LineChartFile,
		CecalViolinFile,
		IlealViolinFile,
		FecalExportFile,
		CecalExportFile,
		IlealExportFile,
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", name)
		}
	}

	if _, err := os.Stat(filepath.Join(dir, SummaryFile)); !os.IsNotExist(err) {
		t.Errorf("%s was written without being requested", SummaryFile)
	}

	fecal, err := os.ReadFile(filepath.Join(dir, FecalExportFile))
	if err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(string(fecal)), "\n"); len(lines) != 13 {
		t.Errorf("Expected a header and 12 fecal rows, got %d lines", len(lines))
	}
}

func TestRunIsDeterministic(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()

	for _, dir := range []string{first, second} {
		if err := Run(context.Background(), Config{Input: fixturePath, OutputDir: dir, Delimiter: ';'}); err != nil {
			t.Fatal(err)
		}
	}

	for _, name := range []string{FecalExportFile, CecalExportFile, IlealExportFile} {
		a, err := os.ReadFile(filepath.Join(first, name))
		if err != nil {
			t.Fatal(err)
		}
		b, err := os.ReadFile(filepath.Join(second, name))
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(a, b) {
			t.Errorf("%s differs between runs", name)
		}
	}
}

func TestRunSummary(t *testing.T) {
	dir := t.TempDir()

	if err := Run(context.Background(), Config{
		Input:     fixturePath,
		OutputDir: dir,
		Delimiter: ';',
		Summary:   true,
	}); err != nil {
		t.Fatal(err)
	}

	summary, err := os.ReadFile(filepath.Join(dir, SummaryFile))
	if err != nil {
		t.Fatal(err)
	}

	// Header plus three sample types times two treatments.
	if lines := strings.Split(strings.TrimSpace(string(summary)), "\n"); len(lines) != 7 {
		t.Errorf("Expected 7 lines, got %d:\n%s", len(lines), summary)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	if err := Run(context.Background(), Config{Input: filepath.Join(dir, "missing.csv"), OutputDir: dir, Delimiter: ';'}); err == nil {
		t.Error("Expected an error for a missing input")
	}

	if err := Run(context.Background(), Config{Input: fixturePath, OutputDir: dir, Delimiter: ','}); err == nil {
		t.Error("Expected an error for the wrong delimiter")
	}

	if _, err := os.Stat(filepath.Join(dir, LineChartFile)); !os.IsNotExist(err) {
		t.Error("A figure was written even though loading failed")
	}
}
