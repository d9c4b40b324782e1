// SPDX-License-Identifier: EPL-2.0

// Package audnorm normalizes the loudness of mono 16-bit voice recordings.
//
// A run reads one input file, brings it to a fixed sample rate, applies
// automatic gain control on 10 ms frames and writes one output file. Run
// picks one of three paths from Config.Mode:
//
//   - ModeRaw: the input is a PCM WAV file. It is parsed, resampled with
//     linear interpolation, gain-processed and written as PCM WAV.
//   - ModeTranscode: only the WAV header of the input is parsed, to validate
//     it and learn its duration. ffmpeg decodes the audio at the target
//     rate, the samples are gain-processed and ffmpeg encodes the output,
//     choosing the container from its extension.
//   - ModeDecode: the input is decoded in process by the decoder registered
//     for its extension (wav, mp3, ogg, aiff, flac), mixed to mono and then
//     handled like ModeRaw.
//
// Quick start:
//
//	err := audnorm.Run(ctx, audnorm.Config{
//	    Input:  "in.wav",
//	    Output: "out.wav",
//	})
//	switch {
//	case errors.Is(err, audio.ErrFormat):
//	case errors.Is(err, audio.ErrIO):
//	case errors.Is(err, audio.ErrUnsupportedRate):
//	case errors.Is(err, audio.ErrEmptyInput):
//	}
//
// The building blocks live in subpackages: audio holds the stream model and
// the resampler, formats/wav the WAV codec, agc the gain engine and frame
// processor, and transcode the ffmpeg collaborator.
package audnorm
