package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestWriteCSVShapeAndValues(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Signals: [][]int16{
			{10, -20, 30},
			{0, 0, -32768},
		},
		Labels:      []int{0, 1},
		Classes:     []string{"abrir", "fechar"},
		StartSample: 0,
		EndSample:   3,
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteCSV(ds, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}

	want := [][]string{
		{"0", "1", "2", "label"},
		{"10", "-20", "30", "0"},
		{"0", "0", "-32768", "1"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Fatalf("csv content = %v, want %v", records, want)
	}
}

func TestWriteCSVOverwritesExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.csv")
	if err := os.WriteFile(path, []byte("stale content\n"), 0644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	ds := &Dataset{
		Signals:     [][]int16{{1}},
		Labels:      []int{0},
		StartSample: 0,
		EndSample:   1,
	}
	if err := WriteCSV(ds, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "0,label\n1,0\n"; got != want {
		t.Fatalf("file content = %q, want %q", got, want)
	}
}

func TestWriteCSVEmptyTableWritesHeaderOnly(t *testing.T) {
	t.Parallel()

	ds := &Dataset{StartSample: 0, EndSample: 2}
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := WriteCSV(ds, path); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "0,1,label\n"; got != want {
		t.Fatalf("file content = %q, want %q", got, want)
	}
}

func TestWriteCSVRejectsMismatchedLabels(t *testing.T) {
	t.Parallel()

	ds := &Dataset{
		Signals:     [][]int16{{1, 2}},
		Labels:      []int{0, 1},
		StartSample: 0,
		EndSample:   2,
	}
	if err := WriteCSV(ds, filepath.Join(t.TempDir(), "bad.csv")); err == nil {
		t.Fatal("expected error for rows/labels mismatch")
	}
}

func TestWriteCSVFailsOnUnwritablePath(t *testing.T) {
	t.Parallel()

	ds := &Dataset{StartSample: 0, EndSample: 1}
	if err := WriteCSV(ds, filepath.Join(t.TempDir(), "missing", "out.csv")); err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
