// Package wav decodes audio files into raw 16-bit PCM samples.
//
// WAV, MP3 and Ogg Vorbis files are decoded in-process; any other
// container is first converted to 16-bit PCM WAV with ffmpeg. The
// decoder leaves the native sample rate and channel layout untouched,
// so callers receive interleaved samples exactly as stored.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	gowav "github.com/go-audio/wav"
	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/jfreymuth/oggvorbis"
)

// WavInfo describes one decoded audio file.
type WavInfo struct {
	SampleRate int
	Channels   int
	BitDepth   int
	Samples    []int16
	Duration   float64
}

// Decode reads an audio file and returns its interleaved 16-bit PCM
// samples together with the native sample rate. Formats without a
// native decoder are routed through ffmpeg.
func Decode(path string) ([]int16, int, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		info, err := ReadWavInfo(path)
		if err != nil {
			return nil, 0, err
		}
		return info.Samples, info.SampleRate, nil
	case ".mp3":
		return decodeMP3(path)
	case ".ogg", ".oga":
		return decodeOgg(path)
	default:
		converted, err := ConvertToWAV(path, 1)
		if err != nil {
			return nil, 0, err
		}
		defer os.Remove(converted)
		info, err := ReadWavInfo(converted)
		if err != nil {
			return nil, 0, err
		}
		return info.Samples, info.SampleRate, nil
	}
}

// ReadWavInfo parses a WAV file into 16-bit samples plus format metadata.
func ReadWavInfo(path string) (*WavInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open wav file: %w", err)
	}
	defer f.Close()

	dec := gowav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("%s: not a valid wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to read pcm data from %s: %w", path, err)
	}
	if int(dec.BitDepth) != 16 {
		return nil, fmt.Errorf("%s: %w (got %d-bit)", path, ErrNotPCM16, dec.BitDepth)
	}
	if len(buf.Data) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}

	samples := make([]int16, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = int16(v)
	}

	info := &WavInfo{
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
		BitDepth:   int(dec.BitDepth),
		Samples:    samples,
	}
	frames := len(samples) / info.Channels
	info.Duration = float64(frames) / float64(info.SampleRate)
	return info, nil
}

// decodeMP3 decodes an MP3 file. go-mp3 always emits 16-bit little
// endian stereo PCM at the stream's native rate.
func decodeMP3(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open mp3 file: %w", err)
	}
	defer f.Close()

	dec, err := gomp3.NewDecoder(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode mp3 %s: %w", path, err)
	}

	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read mp3 stream %s: %w", path, err)
	}
	if len(raw) < 2 {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}

	samples := make([]int16, len(raw)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(raw[2*i:]))
	}
	return samples, dec.SampleRate(), nil
}

// decodeOgg decodes an Ogg Vorbis file, scaling float samples to int16.
func decodeOgg(path string) ([]int16, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open ogg file: %w", err)
	}
	defer f.Close()

	data, format, err := oggvorbis.ReadAll(f)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode ogg %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%s: %w", path, ErrNoSamples)
	}

	samples := make([]int16, len(data))
	for i, v := range data {
		samples[i] = float32ToInt16(v)
	}
	return samples, format.SampleRate, nil
}

func float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}
	return int16(x * 32767.0)
}
