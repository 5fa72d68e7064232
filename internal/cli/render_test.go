package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "github.com/mvollmer/turbograph/pkg/errors"
)

func TestRunRenderDOT(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)
	out := filepath.Join(dir, "plant.dot")

	if err := runRender(context.Background(), in, out); err != nil {
		t.Fatalf("runRender failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "digraph G {") {
		t.Error("output is not a DOT document")
	}
	if !strings.Contains(string(data), `"51"`) {
		t.Error("DOT output missing node 51")
	}
}

func TestRunRenderUnknownExtension(t *testing.T) {
	dir := t.TempDir()
	in := writeSample(t, dir)

	err := runRender(context.Background(), in, filepath.Join(dir, "plant.bmp"))
	if !apperrors.Is(err, apperrors.ErrCodeUnsupported) {
		t.Errorf("error = %v, want code %s", err, apperrors.ErrCodeUnsupported)
	}
}

func TestRunRenderNoOutputOnParseError(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "broken.xml")
	if err := os.WriteFile(in, []byte(`<graph />`), 0o644); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "plant.dot")
	if err := runRender(context.Background(), in, out); err == nil {
		t.Fatal("expected error for document without sections")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Error("diagram should not exist after a failed conversion")
	}
}
