package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// WriteCSV serializes the dataset to a CSV file at path, overwriting
// any existing file. The header names every sample-index column plus a
// trailing "label" column; all values are plain decimal integers.
func WriteCSV(ds *Dataset, path string) error {
	if len(ds.Signals) != len(ds.Labels) {
		return fmt.Errorf("table has %d rows but %d labels", len(ds.Signals), len(ds.Labels))
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", path, err)
	}

	w := csv.NewWriter(f)

	width := ds.Window()
	record := make([]string, width+1)
	for i := 0; i < width; i++ {
		record[i] = strconv.Itoa(i)
	}
	record[width] = "label"
	if err := w.Write(record); err != nil {
		f.Close()
		return fmt.Errorf("write header to %s: %w", path, err)
	}

	for i, signal := range ds.Signals {
		if len(signal) != width {
			f.Close()
			return fmt.Errorf("row %d has %d samples, expected %d", i, len(signal), width)
		}
		for j, s := range signal {
			record[j] = strconv.Itoa(int(s))
		}
		record[width] = strconv.Itoa(ds.Labels[i])
		if err := w.Write(record); err != nil {
			f.Close()
			return fmt.Errorf("write row %d to %s: %w", i, path, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output file %s: %w", path, err)
	}
	return f.Close()
}
