// SPDX-License-Identifier: EPL-2.0

package audnorm

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ausocean/utils/logging"
	"github.com/google/go-cmp/cmp"

	"github.com/ik5/audnorm/agc"
	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/formats/wav"
	"github.com/ik5/audnorm/internal/audiotest"
	"github.com/ik5/audnorm/transcode"
)

func passthrough(rate int) (agc.Engine, error) {
	return audiotest.NewPassthroughEngine(agc.FrameSize(rate)), nil
}

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func assertNoFile(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("%s exists after a failed run (stat error %v)", path, err)
	}
}

func TestRun_RawResamplesSilence(t *testing.T) {
	t.Parallel()

	in := writeInput(t, "in.wav", audiotest.CanonicalWAV(8000, make([]int16, 8000)))
	out := filepath.Join(t.TempDir(), "out.wav")

	err := Run(context.Background(), Config{
		Input:      in,
		Output:     out,
		TargetRate: 16000,
		Logger:     (*logging.TestLogger)(t),
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s, err := wav.ReadFile(out, false)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if diff := cmp.Diff(make([]int16, 16000), s.Samples); diff != "" {
		t.Errorf("output samples mismatch (-want +got):\n%s", diff)
	}

	h := s.Header
	if h.SampleRate != 16000 || h.ByteRate != 32000 || h.DataSize != 32000 || h.ChunkSize != 32036 {
		t.Errorf("header = rate %d, byteRate %d, dataSize %d, chunkSize %d, want 16000, 32000, 32000, 32036",
			h.SampleRate, h.ByteRate, h.DataSize, h.ChunkSize)
	}
}

func TestRun_RawPassthroughKeepsSamples(t *testing.T) {
	t.Parallel()

	samples := audiotest.SineSamples(1234, 16000, 440, 9000)
	in := writeInput(t, "in.wav", audiotest.BuildWAV(audiotest.WAVSpec{
		SampleRate: 16000,
		Extra:      []audiotest.Chunk{{ID: "LIST", Data: []byte("INFOISFT")}},
		Samples:    samples,
	}))
	out := filepath.Join(t.TempDir(), "out.wav")

	var progress []int
	err := Run(context.Background(), Config{
		Input:      in,
		Output:     out,
		TargetRate: 16000,
		NewEngine:  passthrough,
		Progress:   func(done, _ int) { progress = append(progress, done) },
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s, err := wav.ReadFile(out, false)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if diff := cmp.Diff(samples, s.Samples); diff != "" {
		t.Errorf("output samples mismatch (-want +got):\n%s", diff)
	}

	// 1234 samples in 160-sample frames.
	if len(progress) != 8 || progress[len(progress)-1] != 1234 {
		t.Errorf("progress = %v, want 8 reports ending at 1234", progress)
	}
}

func TestRun_RawAppliesGain(t *testing.T) {
	t.Parallel()

	in := writeInput(t, "in.wav", audiotest.CanonicalWAV(48000, audiotest.SineSamples(4800, 48000, 440, 1000)))
	out := filepath.Join(t.TempDir(), "out.wav")

	if err := Run(context.Background(), Config{Input: in, Output: out}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s, err := wav.ReadFile(out, false)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	p := 0
	for _, v := range s.Samples {
		p = max(p, int(v))
	}
	if p < 3000 {
		t.Errorf("output peak = %d, want the quiet input amplified", p)
	}
}

func TestRun_RawErrors(t *testing.T) {
	t.Parallel()

	stereo := audiotest.BuildWAV(audiotest.WAVSpec{SampleRate: 16000, Channels: 2, Samples: []int16{1, 2, 3, 4}})

	tests := []struct {
		name    string
		input   []byte
		rate    int
		wantErr error
	}{
		{name: "not a wav file", input: []byte("NOT A WAV FILE DATA"), rate: 16000, wantErr: audio.ErrFormat},
		{name: "stereo", input: stereo, rate: 16000, wantErr: wav.ErrOnlyMonoSupported},
		{name: "empty at target rate", input: audiotest.CanonicalWAV(16000, nil), rate: 16000, wantErr: audio.ErrEmptyInput},
		{name: "empty needing resample", input: audiotest.CanonicalWAV(8000, nil), rate: 16000, wantErr: audio.ErrEmptyInput},
		{name: "no data chunk", input: audiotest.CanonicalWAV(8000, nil)[:36], rate: 16000, wantErr: audio.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := writeInput(t, "in.wav", tt.input)
			out := filepath.Join(t.TempDir(), "out.wav")

			err := Run(context.Background(), Config{Input: in, Output: out, TargetRate: tt.rate})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			assertNoFile(t, out)
		})
	}
}

func TestRun_MissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "out.wav")

	for _, mode := range []Mode{ModeRaw, ModeDecode, ModeTranscode} {
		err := Run(context.Background(), Config{
			Input:      filepath.Join(dir, "missing.wav"),
			Output:     out,
			Mode:       mode,
			Transcoder: &fakeTranscoder{},
		})
		if !errors.Is(err, audio.ErrIO) {
			t.Errorf("Run(%s) error = %v, want %v", mode, err, audio.ErrIO)
		}
	}
	assertNoFile(t, out)
}

// fakeTranscoder records its calls and serves canned samples.
type fakeTranscoder struct {
	samples   []int16
	decodeErr error

	decodePath    string
	decodeRate    int
	decodeMax     int
	encodeCalls   int
	encodePath    string
	encodeRate    int
	encodeSamples []int16
}

func (f *fakeTranscoder) Decode(_ context.Context, path string, rate, maxSamples int) ([]int16, error) {
	f.decodePath, f.decodeRate, f.decodeMax = path, rate, maxSamples
	if f.decodeErr != nil {
		return nil, f.decodeErr
	}
	return f.samples, nil
}

func (f *fakeTranscoder) Encode(_ context.Context, path string, rate int, samples []int16) error {
	f.encodeCalls++
	f.encodePath, f.encodeRate = path, rate
	f.encodeSamples = append([]int16(nil), samples...)
	return nil
}

func TestRun_Transcode(t *testing.T) {
	t.Parallel()

	// Half a second at 8 kHz; ffmpeg is asked for 48 kHz.
	in := writeInput(t, "in.wav", audiotest.CanonicalWAV(8000, make([]int16, 4000)))
	out := filepath.Join(t.TempDir(), "out.mp3")

	decoded := audiotest.SineSamples(24000, 48000, 440, 5000)
	tc := &fakeTranscoder{samples: decoded}

	err := Run(context.Background(), Config{
		Input:      in,
		Output:     out,
		Mode:       ModeTranscode,
		Transcoder: tc,
		NewEngine:  passthrough,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if tc.decodePath != in || tc.decodeRate != 48000 || tc.decodeMax != 24000 {
		t.Errorf("Decode(%q, %d, %d), want (%q, 48000, 24000)", tc.decodePath, tc.decodeRate, tc.decodeMax, in)
	}
	if tc.encodePath != out || tc.encodeRate != 48000 {
		t.Errorf("Encode(%q, %d), want (%q, 48000)", tc.encodePath, tc.encodeRate, out)
	}
	if diff := cmp.Diff(decoded, tc.encodeSamples); diff != "" {
		t.Errorf("encoded samples mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_TranscodeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   []byte
		tc      *fakeTranscoder
		wantErr error
	}{
		{
			name:    "header is not wav",
			input:   []byte("ID3 mp3 data is not accepted here"),
			tc:      &fakeTranscoder{samples: []int16{1}},
			wantErr: audio.ErrFormat,
		},
		{
			name:    "nothing decoded",
			input:   audiotest.CanonicalWAV(16000, make([]int16, 160)),
			tc:      &fakeTranscoder{decodeErr: transcode.ErrNoOutput},
			wantErr: transcode.ErrNoOutput,
		},
		{
			name:    "decoder returned no samples",
			input:   audiotest.CanonicalWAV(16000, make([]int16, 160)),
			tc:      &fakeTranscoder{},
			wantErr: audio.ErrEmptyInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := writeInput(t, "in.wav", tt.input)

			err := Run(context.Background(), Config{
				Input:      in,
				Output:     filepath.Join(t.TempDir(), "out.wav"),
				Mode:       ModeTranscode,
				Transcoder: tt.tc,
			})
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Run() error = %v, want %v", err, tt.wantErr)
			}
			if tt.tc.encodeCalls != 0 {
				t.Errorf("Encode called %d times after a failure", tt.tc.encodeCalls)
			}
		})
	}
}

func TestRun_DecodeStereoWAV(t *testing.T) {
	t.Parallel()

	// 100 stereo frames whose channels average to 200.
	frames := make([]int16, 200)
	for i := range 100 {
		frames[2*i], frames[2*i+1] = 100, 300
	}
	in := writeInput(t, "in.WAV", audiotest.BuildWAV(audiotest.WAVSpec{SampleRate: 8000, Channels: 2, Samples: frames}))
	out := filepath.Join(t.TempDir(), "out.wav")

	err := Run(context.Background(), Config{
		Input:      in,
		Output:     out,
		Mode:       ModeDecode,
		TargetRate: 8000,
		NewEngine:  passthrough,
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	s, err := wav.ReadFile(out, false)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	want := make([]int16, 100)
	for i := range want {
		want[i] = 200
	}
	if diff := cmp.Diff(want, s.Samples); diff != "" {
		t.Errorf("output samples mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_DecodeUnknownContainer(t *testing.T) {
	t.Parallel()

	in := writeInput(t, "in.xyz", []byte("whatever"))
	out := filepath.Join(t.TempDir(), "out.wav")

	err := Run(context.Background(), Config{Input: in, Output: out, Mode: ModeDecode})
	if !errors.Is(err, ErrUnsupportedContainer) {
		t.Fatalf("Run() error = %v, want %v", err, ErrUnsupportedContainer)
	}
	if !errors.Is(err, audio.ErrFormat) {
		t.Errorf("Run() error = %v, want it to wrap audio.ErrFormat", err)
	}
	assertNoFile(t, out)
}

func TestDefaultDecoders(t *testing.T) {
	t.Parallel()

	r := DefaultDecoders()
	for _, ext := range []string{".wav", "mp3", "OGG", ".aiff", "aif", "flac"} {
		if _, ok := r.Get(ext); !ok {
			t.Errorf("Get(%q) found no decoder", ext)
		}
	}
	if _, ok := r.Get("m4a"); ok {
		t.Error("Get(\"m4a\") found a decoder, want none")
	}
}
