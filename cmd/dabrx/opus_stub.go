//go:build !opus

package main

import "log/slog"

// audioEncoder passes PCM through unchanged in builds without Opus
// support. Rebuild with -tags opus to enable re-encoding.
type audioEncoder struct{}

func newAudioEncoder(cfg OpusConfig) *audioEncoder {
	if cfg.Enabled {
		slog.Warn("opus encoding requested but not compiled in, falling back to pcm",
			"hint", "rebuild with -tags opus")
	}
	return &audioEncoder{}
}

func (e *audioEncoder) Encode(pcm []byte, sampleRateHz int, stereo bool) ([]byte, string, error) {
	return pcm, "pcm", nil
}
