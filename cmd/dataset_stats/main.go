// dataset_stats reads a CSV produced by the build command and reports
// its shape and label distribution, verifying that every row has the
// same width as the header.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
)

func main() {
	fileFlag := flag.String("file", "dataset.csv", "Dataset CSV to inspect")
	flag.Parse()

	f, err := os.Open(*fileFlag)
	if err != nil {
		log.Fatalf("failed to open %s: %v", *fileFlag, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		log.Fatalf("failed to read header: %v", err)
	}
	width := len(header)
	if width < 1 || header[width-1] != "label" {
		log.Fatalf("%s does not look like a dataset file: last header column is %q, expected \"label\"", *fileFlag, header[width-1])
	}

	rows := 0
	labelCounts := make(map[int]int)
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatalf("failed to read row %d: %v", rows+1, err)
		}
		if len(record) != width {
			log.Fatalf("row %d has %d columns, expected %d", rows+1, len(record), width)
		}
		label, err := strconv.Atoi(record[len(record)-1])
		if err != nil {
			log.Fatalf("row %d has non-integer label %q", rows+1, record[len(record)-1])
		}
		labelCounts[label]++
		rows++
	}

	fmt.Printf("=== %s ===\n", *fileFlag)
	fmt.Printf("rows:    %d\n", rows)
	fmt.Printf("columns: %d (%d samples + label)\n", width, width-1)

	labels := make([]int, 0, len(labelCounts))
	for label := range labelCounts {
		labels = append(labels, label)
	}
	sort.Ints(labels)
	fmt.Println("label distribution:")
	for _, label := range labels {
		fmt.Printf("  %d: %d rows\n", label, labelCounts[label])
	}
}
