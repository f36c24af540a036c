// Package dataset assembles fixed-length PCM sample windows from
// labeled directories of audio files into a flat table with integer
// class labels, ready to be written out as CSV for model training.
package dataset

// Decoder turns one audio file into interleaved PCM samples at the
// file's native sample rate. Implementations must not panic on bad
// input; a decode problem is reported through the error.
type Decoder interface {
	Decode(path string) (samples []int16, sampleRate int, err error)
}

// DecoderFunc adapts a plain decode function to the Decoder interface.
type DecoderFunc func(path string) ([]int16, int, error)

func (f DecoderFunc) Decode(path string) ([]int16, int, error) { return f(path) }

// FileFailure records one file that could not be decoded during a build.
// Failed files are excluded from the table; the run itself continues.
type FileFailure struct {
	Path string
	Err  error
}

// Dataset is a rectangular table of normalized signals plus a parallel
// label vector. Row i holds the window extracted from the i-th
// successfully decoded file; Labels[i] is the ordinal position of the
// class directory that contained it.
type Dataset struct {
	Signals [][]int16
	Labels  []int
	Classes []string

	StartSample int
	EndSample   int

	Failures []FileFailure
}

// Window returns the fixed row width, end minus start.
func (d *Dataset) Window() int {
	return d.EndSample - d.StartSample
}

// Rows returns the number of records in the table.
func (d *Dataset) Rows() int {
	return len(d.Signals)
}

// ClassCounts returns how many rows each class contributed, indexed by
// label.
func (d *Dataset) ClassCounts() []int {
	counts := make([]int, len(d.Classes))
	for _, label := range d.Labels {
		if label >= 0 && label < len(counts) {
			counts[label]++
		}
	}
	return counts
}
