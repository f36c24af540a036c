package dataset_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"voice-dataset/dataset"
	"voice-dataset/wav"
)

// TestBuildFromRealWavFiles runs the full pipeline against WAV files
// written with the package's own encoder: decode, window, stack, write
// CSV, read it back and check shape, labels and exact sample values.
func TestBuildFromRealWavFiles(t *testing.T) {
	t.Parallel()

	const (
		sampleRate = 8000
		window     = 32
	)

	base := t.TempDir()
	classes := []string{"abrir", "fechar", "ligar"}
	perClass := 3

	// Each file is a short ramp whose first value encodes (class, file)
	// so rows can be traced back to their source.
	for ci, class := range classes {
		dir := filepath.Join(base, class)
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		for fi := 0; fi < perClass; fi++ {
			// one file per class is shorter than the window to exercise padding
			n := window + 8
			if fi == 1 {
				n = window / 2
			}
			samples := make([]int16, n)
			for i := range samples {
				samples[i] = int16(1000*ci + 100*fi + i)
			}
			path := filepath.Join(dir, "rec"+strconv.Itoa(fi)+".wav")
			if err := wav.WriteWavFile(path, samples, sampleRate, 1); err != nil {
				t.Fatalf("write fixture %s: %v", path, err)
			}
		}
	}

	ds, err := dataset.Build(dataset.DecoderFunc(wav.Decode), base, classes, 0, window)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if ds.Rows() != len(classes)*perClass {
		t.Fatalf("rows = %d, want %d", ds.Rows(), len(classes)*perClass)
	}
	for i, signal := range ds.Signals {
		if len(signal) != window {
			t.Fatalf("row %d has %d samples, want %d", i, len(signal), window)
		}
	}
	if len(ds.Failures) != 0 {
		t.Fatalf("unexpected failures: %v", ds.Failures)
	}

	// Row layout: class-major, sorted filename order within a class.
	for ci := range classes {
		for fi := 0; fi < perClass; fi++ {
			row := ci*perClass + fi
			if ds.Labels[row] != ci {
				t.Fatalf("labels[%d] = %d, want %d", row, ds.Labels[row], ci)
			}
			if got, want := ds.Signals[row][0], int16(1000*ci+100*fi); got != want {
				t.Fatalf("row %d starts with %d, want %d", row, got, want)
			}
			if fi == 1 {
				// short file: tail beyond the raw signal must be zero padding
				for i := window / 2; i < window; i++ {
					if ds.Signals[row][i] != 0 {
						t.Fatalf("row %d sample %d = %d, want 0 padding", row, i, ds.Signals[row][i])
					}
				}
			}
		}
	}

	out := filepath.Join(t.TempDir(), "dataset.csv")
	if err := dataset.WriteCSV(ds, out); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(records) != ds.Rows()+1 {
		t.Fatalf("csv has %d records, want %d", len(records), ds.Rows()+1)
	}
	for i, record := range records {
		if len(record) != window+1 {
			t.Fatalf("record %d has %d fields, want %d", i, len(record), window+1)
		}
	}
	if records[0][window] != "label" {
		t.Fatalf("last header column = %q, want \"label\"", records[0][window])
	}
	// spot-check one value: row 0, column 5 must match the in-memory table
	if got, want := records[1][5], strconv.Itoa(int(ds.Signals[0][5])); got != want {
		t.Fatalf("csv[1][5] = %s, want %s", got, want)
	}
}
