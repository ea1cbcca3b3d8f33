// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MP3 audio using github.com/hajimehoshi/go-mp3.
//
// The decoder returns an audio.Source of interleaved float32 samples in
// [-1.0, 1.0]. Output is always stereo at the file's native sample rate;
// use audio.NewRemixer and audio.NewResampler to change layout or rate:
//
//	f, _ := os.Open("clip.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    // handle error
//	}
//	mono := audio.NewRemixer(audio.NewResampler(src, 8000), 1)
//
// Encoding is not supported.
package mp3
