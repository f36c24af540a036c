// probe_audio decodes a single audio file and prints what the dataset
// builder would see: sample count, rate and peak amplitude. Useful for
// checking a recording before adding it to a class directory.
package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"

	"voice-dataset/wav"
)

func main() {
	fileFlag := flag.String("file", "", "Audio file to probe")
	dumpFlag := flag.String("dump", "", "Optional path to re-encode the decoded PCM as mono WAV")
	flag.Parse()

	if *fileFlag == "" {
		log.Fatal("Usage: go run ./cmd/probe_audio -file <audio file> [-dump <out.wav>]")
	}

	samples, sampleRate, err := wav.Decode(*fileFlag)
	if err != nil {
		log.Fatalf("decode failed: %v", err)
	}

	var peak int
	for _, s := range samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}

	fmt.Printf("=== %s ===\n", filepath.Base(*fileFlag))
	fmt.Printf("samples:     %d\n", len(samples))
	fmt.Printf("sample rate: %d Hz\n", sampleRate)
	fmt.Printf("duration:    %.3fs (assuming mono)\n", float64(len(samples))/float64(sampleRate))
	fmt.Printf("peak:        %d\n", peak)

	if *dumpFlag != "" {
		if err := wav.WriteWavFile(*dumpFlag, samples, sampleRate, 1); err != nil {
			log.Fatalf("failed to write %s: %v", *dumpFlag, err)
		}
		fmt.Printf("wrote decoded PCM to %s\n", *dumpFlag)
	}
}
