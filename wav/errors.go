package wav

import "errors"

var (
	// ErrFFmpegMissing is returned when a conversion is requested but no
	// ffmpeg binary can be found on PATH.
	ErrFFmpegMissing = errors.New("ffmpeg binary not found in PATH")

	// ErrNotPCM16 is returned for WAV files whose sample format is not
	// 16-bit integer PCM.
	ErrNotPCM16 = errors.New("wav file is not 16-bit PCM")

	// ErrNoSamples is returned when a file decodes to zero samples.
	ErrNoSamples = errors.New("audio file contains no samples")
)
