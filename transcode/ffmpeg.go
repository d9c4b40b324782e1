// SPDX-License-Identifier: EPL-2.0

package transcode

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/ausocean/utils/logging"
)

// maxStderr is how much of ffmpeg's diagnostics ends up in an error.
const maxStderr = 512

var discard logging.Logger = logging.New(logging.Error, io.Discard, true)

// FFmpeg runs an ffmpeg binary with raw PCM piped through stdin or stdout.
type FFmpeg struct {
	// Path of the ffmpeg binary. Empty means "ffmpeg" looked up in PATH.
	Path string
	// Log receives ffmpeg's stderr. Nil discards it.
	Log logging.Logger
}

// NewFFmpeg returns an FFmpeg running the binary at path.
func NewFFmpeg(path string, log logging.Logger) *FFmpeg {
	return &FFmpeg{Path: path, Log: log}
}

// Decode runs `ffmpeg -i path -ar rate -f s16le -ac 1 -` and collects what it
// writes to stdout. Output past maxSamples is read and dropped so ffmpeg can
// finish. A decode that yields no samples fails with ErrNoOutput. A non-zero
// exit after some audio was read is logged and the audio kept.
func (f *FFmpeg) Decode(ctx context.Context, path string, rate, maxSamples int) ([]int16, error) {
	cmd := exec.CommandContext(ctx, f.binary(),
		"-nostdin",
		"-i", path,
		"-ar", strconv.Itoa(rate),
		"-f", "s16le",
		"-ac", "1",
		"-",
	)

	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailed, err)
	}

	f.logger().Debug("starting ffmpeg decode", "args", strings.Join(cmd.Args, " "))

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailed, err)
	}

	var r io.Reader = stdout
	if maxSamples > 0 {
		r = io.LimitReader(stdout, 2*int64(maxSamples))
	}

	data, readErr := io.ReadAll(r)
	if readErr == nil {
		_, readErr = io.Copy(io.Discard, stdout)
	}
	waitErr := cmd.Wait()

	samples := make([]int16, len(data)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(data[2*i:]))
	}

	if len(samples) == 0 {
		if err := errors.Join(readErr, waitErr); err != nil {
			return nil, fmt.Errorf("%w: %w: %s", ErrNoOutput, err, tail(stderr))
		}
		return nil, fmt.Errorf("%w: %s", ErrNoOutput, path)
	}

	if err := errors.Join(readErr, waitErr); err != nil {
		f.logger().Warning("ffmpeg decode ended with an error", "error", err.Error(), "stderr", tail(stderr), "samples", len(samples))
	} else if stderr.Len() > 0 {
		f.logger().Debug("ffmpeg decode", "stderr", tail(stderr))
	}

	return samples, nil
}

// Encode runs `ffmpeg -y -f s16le -ar rate -ac 1 -i - path` and writes samples
// to its stdin. On failure the output file is removed.
func (f *FFmpeg) Encode(ctx context.Context, path string, rate int, samples []int16) (err error) {
	cmd := exec.CommandContext(ctx, f.binary(),
		"-y",
		"-f", "s16le",
		"-ar", strconv.Itoa(rate),
		"-ac", "1",
		"-i", "-",
		path,
	)

	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailed, err)
	}

	f.logger().Debug("starting ffmpeg encode", "args", strings.Join(cmd.Args, " "))

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrFailed, err)
	}

	defer func() {
		if err != nil {
			os.Remove(path)
		}
	}()

	writeErr := writePCM(stdin, samples)
	closeErr := stdin.Close()
	waitErr := cmd.Wait()

	if waitErr != nil {
		f.logger().Error("ffmpeg encode failed", "error", waitErr.Error(), "stderr", tail(stderr))
		return fmt.Errorf("%w: %w: %s", ErrFailed, waitErr, tail(stderr))
	}
	if err := errors.Join(writeErr, closeErr); err != nil {
		return fmt.Errorf("%w: writing to ffmpeg: %w", ErrFailed, err)
	}

	if stderr.Len() > 0 {
		f.logger().Debug("ffmpeg encode", "stderr", tail(stderr))
	}

	return nil
}

func (f *FFmpeg) binary() string {
	if f.Path == "" {
		return "ffmpeg"
	}
	return f.Path
}

func (f *FFmpeg) logger() logging.Logger {
	if f.Log == nil {
		return discard
	}
	return f.Log
}

// writePCM writes samples as little-endian 16-bit values.
func writePCM(w io.Writer, samples []int16) error {
	bw := bufio.NewWriter(w)
	var b [2]byte

	for _, v := range samples {
		binary.LittleEndian.PutUint16(b[:], uint16(v))
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// tail returns the end of ffmpeg's stderr, where the error usually is.
func tail(b *bytes.Buffer) string {
	s := strings.TrimSpace(b.String())
	if len(s) > maxStderr {
		s = "..." + s[len(s)-maxStderr:]
	}
	return s
}

// FindFFmpeg returns the path of an ffmpeg binary, looking in PATH first and
// then in the usual install locations.
func FindFFmpeg() (string, error) {
	if p, err := exec.LookPath("ffmpeg"); err == nil {
		return p, nil
	}

	for _, p := range commonPaths(runtime.GOOS) {
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}

	return "", ErrNotFound
}

func commonPaths(goos string) []string {
	switch goos {
	case "windows":
		return []string{
			`C:\Program Files\ffmpeg\bin\ffmpeg.exe`,
			`C:\Program Files (x86)\ffmpeg\bin\ffmpeg.exe`,
		}
	case "darwin":
		return []string{
			"/usr/local/bin/ffmpeg",
			"/opt/homebrew/bin/ffmpeg",
			"/opt/local/bin/ffmpeg",
		}
	default:
		return []string{
			"/usr/bin/ffmpeg",
			"/usr/local/bin/ffmpeg",
			"/opt/ffmpeg/bin/ffmpeg",
		}
	}
}
