// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
	"github.com/google/go-cmp/cmp"

	"github.com/ik5/audnorm/audio"
	"github.com/ik5/audnorm/internal/audiotest"
)

// encodeWAV writes data with the go-audio encoder and returns the file path.
func encodeWAV(t *testing.T, rate, bitDepth, channels int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "in.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}

	enc := gowav.NewEncoder(f, rate, bitDepth, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestDecoder_PCM16Mono(t *testing.T) {
	t.Parallel()

	samples := []int16{0, 1000, -1000, 32767, -32768}
	src, err := Decoder{}.Decode(bytes.NewReader(audiotest.CanonicalWAV(16000, samples)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	defer src.Close()

	if src.SampleRate() != 16000 {
		t.Errorf("SampleRate() = %d, want 16000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	s, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff(samples, s.Samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_24BitStereo(t *testing.T) {
	t.Parallel()

	// Interleaved L/R pairs at 24-bit scale.
	data := []int{256 * 100, 256 * 300, -256 * 50, -256 * 150, 0, 0}
	f, err := os.Open(encodeWAV(t, 48000, 24, 2, data))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	src, err := Decoder{}.Decode(f)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if src.Channels() != 2 {
		t.Fatalf("Channels() = %d, want 2", src.Channels())
	}

	s, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff([]int16{200, -100, 0}, s.Samples); diff != "" {
		t.Errorf("mixed samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	in := audiotest.CanonicalWAV(8000, []int16{4, 5, 6})
	src, err := Decoder{}.Decode(io.MultiReader(bytes.NewReader(in)))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	s, err := audio.ReadAll(src)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if diff := cmp.Diff([]int16{4, 5, 6}, s.Samples); diff != "" {
		t.Errorf("samples mismatch (-want +got):\n%s", diff)
	}
}

func TestDecoder_Errors(t *testing.T) {
	t.Parallel()

	float := audiotest.BuildWAV(audiotest.WAVSpec{SampleRate: 8000, AudioFormat: 3, Samples: []int16{0, 0}})

	tests := []struct {
		name    string
		input   []byte
		wantErr error
	}{
		{name: "not a wav file", input: []byte("NOT A WAV FILE DATA"), wantErr: ErrNotWavFile},
		{name: "float payload", input: float, wantErr: ErrOnlyPCM16bitSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decoder{}.Decode(bytes.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Decode() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
