package wav

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// CheckFFmpegAvailable reports whether an ffmpeg binary is on PATH.
func CheckFFmpegAvailable() error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFFmpegMissing
	}
	return nil
}

// ConvertToWAV converts any ffmpeg-readable audio file to a temporary
// 16-bit PCM WAV with the requested channel count and returns its path.
// The caller owns the returned file and should remove it when done.
func ConvertToWAV(inputPath string, channels int) (string, error) {
	if err := CheckFFmpegAvailable(); err != nil {
		return "", err
	}
	if channels < 1 {
		channels = 1
	}

	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	outputPath := filepath.Join(os.TempDir(), fmt.Sprintf("%s_%d.wav", base, time.Now().UnixNano()))

	cmd := exec.Command("ffmpeg",
		"-y", "-i", inputPath,
		"-ac", strconv.Itoa(channels),
		"-acodec", "pcm_s16le",
		outputPath,
	)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		_ = os.Remove(outputPath)
		return "", fmt.Errorf("ffmpeg failed for %s: %w: %s", inputPath, err, lastStderrLine(&stderr))
	}
	return outputPath, nil
}

// lastStderrLine extracts the final non-empty line of ffmpeg output,
// which is where ffmpeg puts the actual failure reason.
func lastStderrLine(buf *bytes.Buffer) string {
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return "no diagnostic output"
}
