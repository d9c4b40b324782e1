// SPDX-License-Identifier: EPL-2.0

// Package transcode hands container and codec conversion to an external
// ffmpeg process.
//
// Audio crosses the process boundary as raw mono signed 16-bit little-endian
// PCM: Decode reads it from ffmpeg's stdout, Encode writes it to ffmpeg's
// stdin and closes the pipe so ffmpeg can finish the file.
//
//	path, err := transcode.FindFFmpeg()
//	ff := transcode.NewFFmpeg(path, log)
//	samples, err := ff.Decode(ctx, "in.mp3", 48000, 0)
//	err = ff.Encode(ctx, "out.mp3", 48000, samples)
//
// All errors wrap audio.ErrIO. A decode that produces no audio at all fails
// with ErrNoOutput.
package transcode
