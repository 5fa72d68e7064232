package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	apperrors "github.com/mvollmer/turbograph/pkg/errors"
)

func TestRunExportXLSX(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	out := filepath.Join(dir, "plant.xlsx")

	if err := runExport(context.Background(), in, out, "xlsx"); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected workbook at %s: %v", out, err)
	}
}

func TestRunExportCSV(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	base := filepath.Join(dir, "plant")

	if err := runExport(context.Background(), in, base, "csv"); err != nil {
		t.Fatalf("runExport failed: %v", err)
	}
	for _, name := range []string{"plant_nodes.csv", "plant_edges.csv"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)

	err := runExport(context.Background(), in, filepath.Join(dir, "out"), "parquet")
	if !apperrors.Is(err, apperrors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want code %s", err, apperrors.ErrCodeUnsupported)
	}
}

func TestRunExportNoOutputOnParseError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.xml")
	if err := os.WriteFile(in, []byte(`<graph><nodes /></graph>`), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "out.xlsx")
	if err := runExport(context.Background(), in, out, "xlsx"); err == nil {
		t.Fatal("expected error for document missing edges section")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("workbook should not exist after a failed conversion")
	}
}
