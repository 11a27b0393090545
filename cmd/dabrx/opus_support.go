//go:build opus

package main

import (
	"encoding/binary"
	"log/slog"

	opus "gopkg.in/hraban/opus.v2"
)

// audioEncoder re-encodes streamed PCM to Opus. The encoder is rebuilt
// whenever the stream's sample rate or channel count changes; rates
// Opus cannot take (DAB's 32 kHz output in particular) fall back to
// PCM.
type audioEncoder struct {
	cfg OpusConfig

	enc          *opus.Encoder
	sampleRateHz int
	channels     int
}

func newAudioEncoder(cfg OpusConfig) *audioEncoder {
	return &audioEncoder{cfg: cfg}
}

func opusSupportedRate(hz int) bool {
	switch hz {
	case 8_000, 12_000, 16_000, 24_000, 48_000:
		return true
	}
	return false
}

func (e *audioEncoder) Encode(pcm []byte, sampleRateHz int, stereo bool) ([]byte, string, error) {
	if !e.cfg.Enabled || !opusSupportedRate(sampleRateHz) {
		return pcm, "pcm", nil
	}

	channels := 1
	if stereo {
		channels = 2
	}
	if e.enc == nil || sampleRateHz != e.sampleRateHz || channels != e.channels {
		enc, err := opus.NewEncoder(sampleRateHz, channels, opus.AppAudio)
		if err != nil {
			// The frame must still reach the viewer: fall back to PCM
			// rather than surfacing an error that would drop it.
			slog.Warn("building opus encoder, sending pcm", "error", err)
			return pcm, "pcm", nil
		}
		if err := enc.SetBitrate(e.cfg.Bitrate); err != nil {
			slog.Debug("setting opus bitrate", "error", err)
		}
		if err := enc.SetComplexity(e.cfg.Complexity); err != nil {
			slog.Debug("setting opus complexity", "error", err)
		}
		e.enc = enc
		e.sampleRateHz = sampleRateHz
		e.channels = channels
	}

	samples := make([]int16, len(pcm)/2)
	for i := range samples {
		samples[i] = int16(binary.LittleEndian.Uint16(pcm[2*i:]))
	}

	out := make([]byte, 4000)
	n, err := e.enc.Encode(samples, out)
	if err != nil {
		slog.Debug("opus encode, sending pcm", "error", err)
		return pcm, "pcm", nil
	}
	return out[:n], "opus", nil
}
