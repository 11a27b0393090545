// Package aacdec adapts a pure Go AAC decoder to the access units
// recovered from DAB+ super-frames. The codec is configured from an
// AudioSpecificConfig synthesised out of the super-frame header: AAC LC
// with the 960-sample frame length, HE-AAC signalled explicitly when
// the stream carries SBR, parametric stereo as a single-channel core.
package aacdec

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/icza/bitio"
	aac "github.com/llehouerou/go-aac"

	"github.com/saxhorn/dabrx/internal/radio"
)

const (
	aotAACLC = 2
	aotSBR   = 5
	aotPS    = 29
)

var sampleRateIndex = map[int]uint64{
	96_000: 0, 88_200: 1, 64_000: 2, 48_000: 3, 44_100: 4, 32_000: 5,
	24_000: 6, 22_050: 7, 16_000: 8, 12_000: 9, 11_025: 10, 8_000: 11,
}

// audioSpecificConfig builds the two-to-three byte ASC the codec is
// initialised from. params.SamplingRateHz is the AAC core rate; under
// SBR the extension rate is signalled as its double.
func audioSpecificConfig(params radio.AudioParams) ([]byte, error) {
	sfi, ok := sampleRateIndex[params.SamplingRateHz]
	if !ok {
		return nil, fmt.Errorf("aacdec: unsupported core rate %d", params.SamplingRateHz)
	}

	aot := uint64(aotAACLC)
	if params.SBR {
		aot = aotSBR
		if params.PS {
			aot = aotPS
		}
	}
	channels := uint64(1)
	if params.Stereo {
		channels = 2
	}

	var buf bytes.Buffer
	w := bitio.NewWriter(&buf)
	if err := w.WriteBits(aot, 5); err != nil {
		return nil, fmt.Errorf("aacdec: writing asc: %w", err)
	}
	w.TryWriteBits(sfi, 4)
	w.TryWriteBits(channels, 4)
	if params.SBR {
		extSFI, ok := sampleRateIndex[2*params.SamplingRateHz]
		if !ok {
			return nil, fmt.Errorf("aacdec: unsupported sbr rate %d", 2*params.SamplingRateHz)
		}
		w.TryWriteBits(extSFI, 4)
		w.TryWriteBits(aotAACLC, 5)
	}
	// GASpecificConfig: 960-sample frames, no core coder, no extension.
	w.TryWriteBits(1, 1)
	w.TryWriteBits(0, 1)
	w.TryWriteBits(0, 1)
	if w.TryError != nil {
		return nil, fmt.Errorf("aacdec: writing asc: %w", w.TryError)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("aacdec: writing asc: %w", err)
	}
	return buf.Bytes(), nil
}

type decoder struct {
	dec *aac.Decoder
}

// New builds an audio decoder for the codec parameters signalled in a
// super-frame header.
func New(params radio.AudioParams) (radio.AudioDecoder, error) {
	asc, err := audioSpecificConfig(params)
	if err != nil {
		return nil, err
	}

	dec := aac.NewDecoder()
	cfg := dec.Config()
	cfg.OutputFormat = aac.OutputFormat16Bit
	dec.SetConfiguration(cfg)

	if _, err := dec.Init2(asc); err != nil {
		dec.Close()
		return nil, fmt.Errorf("aacdec: init from asc % X: %w", asc, err)
	}
	return &decoder{dec: dec}, nil
}

// Factory is a radio.AudioDecoderFactory backed by this package.
func Factory(params radio.AudioParams) (radio.AudioDecoder, error) {
	return New(params)
}

// DecodeAU decodes one access unit to interleaved little-endian 16-bit
// PCM. The codec's first frame is consumed by the overlap-add delay and
// yields no samples.
func (d *decoder) DecodeAU(au []byte) ([]byte, error) {
	samples, _, err := d.dec.Decode(au)
	if err != nil {
		return nil, fmt.Errorf("aacdec: decode: %w", err)
	}
	pcm, ok := samples.([]int16)
	if !ok || len(pcm) == 0 {
		return nil, nil
	}
	out := make([]byte, 2*len(pcm))
	for i, s := range pcm {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(s))
	}
	return out, nil
}

func (d *decoder) Close() error {
	d.dec.Close()
	return nil
}
