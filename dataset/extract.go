package dataset

import "fmt"

// Extract decodes one audio file and normalizes it to exactly
// end-start samples: the raw signal is cropped to [start, end) and
// right-padded with zeros when the file is shorter than the window.
// A decode failure is returned as-is so the caller can skip the file.
func Extract(dec Decoder, path string, start, end int) ([]int16, error) {
	if start < 0 || start > end {
		return nil, fmt.Errorf("invalid sample window [%d, %d)", start, end)
	}

	raw, _, err := dec.Decode(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return normalize(raw, start, end), nil
}

// normalize applies the crop/pad policy. Slicing clamps to the raw
// length, so a window past the end of the signal yields pure padding.
func normalize(raw []int16, start, end int) []int16 {
	want := end - start

	lo := start
	if lo > len(raw) {
		lo = len(raw)
	}
	hi := end
	if hi > len(raw) {
		hi = len(raw)
	}
	cropped := raw[lo:hi]

	out := make([]int16, want)
	copy(out, cropped)
	return out
}
