// SPDX-License-Identifier: EPL-2.0

// Command audnorm normalizes the loudness of a mono voice recording.
//
// Usage:
//
//	audnorm [flags] <input_file> <output_file>
//
// By default the input must be a mono 16-bit PCM WAV file; it is resampled to
// 48 kHz, gain-processed and written as WAV. -mode transcode lets ffmpeg
// decode and encode instead, -mode decode reads wav, mp3, ogg, aiff and flac
// in process.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/ausocean/utils/logging"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ik5/audnorm"
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/transcode"
)

// Log file rotation.
const (
	logMaxSize   = 50 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
)

var logLevels = map[string]int8{
	"debug":   logging.Debug,
	"info":    logging.Info,
	"warning": logging.Warning,
	"error":   logging.Error,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process exit, returning the exit status.
func run(ctx context.Context, args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("audnorm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: audnorm [flags] <input_file> <output_file>")
		fs.PrintDefaults()
	}

	var (
		mode     = fs.String("mode", string(audnorm.ModeRaw), "pipeline: raw, transcode or decode")
		rate     = fs.Int("rate", audnorm.DefaultTargetRate, "output sample rate in Hz (8000, 16000, 32000 or 48000)")
		ffmpeg   = fs.String("ffmpeg", "", "ffmpeg binary for transcode mode (default: search PATH)")
		logLevel = fs.String("log-level", "warning", "log level: debug, info, warning or error")
		logFile  = fs.String("log-file", "", "write logs to this rotated file instead of stderr")
		quiet    = fs.Bool("quiet", false, "do not print progress")
	)

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 2 {
		fs.Usage()
		return 1
	}

	level, ok := logLevels[strings.ToLower(*logLevel)]
	if !ok {
		fmt.Fprintf(stderr, "audnorm: unknown log level %q\n", *logLevel)
		return 1
	}

	var logOut io.Writer = stderr
	if *logFile != "" {
		fileLog := &lumberjack.Logger{
			Filename:   *logFile,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
		defer fileLog.Close()
		logOut = fileLog
	}
	log := logging.New(level, logOut, true)

	m, err := audnorm.ParseMode(*mode)
	if err != nil {
		fmt.Fprintf(stderr, "audnorm: %v\n", err)
		return 1
	}

	cfg := audnorm.Config{
		Input:      fs.Arg(0),
		Output:     fs.Arg(1),
		Mode:       m,
		TargetRate: *rate,
		Logger:     log,
	}

	if m == audnorm.ModeTranscode {
		path := *ffmpeg
		if path == "" {
			if path, err = transcode.FindFFmpeg(); err != nil {
				fmt.Fprintf(stderr, "audnorm: %v\n", err)
				return 1
			}
		}
		cfg.Transcoder = transcode.NewFFmpeg(path, log)
	}

	if !*quiet {
		cfg.Progress = progressPrinter(stderr)
	}

	err = audnorm.Run(ctx, cfg)

	if cfg.Progress != nil {
		fmt.Fprintln(stderr)
	}

	if err != nil {
		fmt.Fprintf(stderr, "audnorm: %s: %v\n", describe(err), err)
		return 1
	}

	return 0
}

// progressPrinter reports whole percentages on one terminal line.
func progressPrinter(w io.Writer) func(done, total int) {
	last := -1
	return func(done, total int) {
		pct := done * 100 / total
		if pct == last {
			return
		}
		last = pct
		fmt.Fprintf(w, "\rprocessing: %3d%%", pct)
	}
}

// describe names the kind of failure for the user.
func describe(err error) string {
	switch {
	case errors.Is(err, audnorm.ErrInvalidConfig):
		return "invalid arguments"
	case errors.Is(err, audio.ErrUnsupportedRate):
		return "unsupported sample rate"
	case errors.Is(err, audio.ErrEmptyInput):
		return "input has no audio"
	case errors.Is(err, audio.ErrFormat):
		return "invalid or unsupported input"
	case errors.Is(err, audio.ErrIO):
		return "I/O error"
	default:
		return "processing failed"
	}
}
