package radio

// AudioParams are the codec parameters signalled by a super-frame
// header.
type AudioParams struct {
	SamplingRateHz int
	SBR            bool
	PS             bool
	Stereo         bool
}

// AudioDecoder turns access units into interleaved 16-bit PCM. A
// decoder is built for fixed parameters and rebuilt when they change.
type AudioDecoder interface {
	// DecodeAU decodes one access unit. The returned PCM is valid
	// until the next call.
	DecodeAU(au []byte) ([]byte, error)
	Close() error
}

// AudioDecoderFactory builds a decoder for the given parameters.
type AudioDecoderFactory func(AudioParams) (AudioDecoder, error)

// AudioData is one decoded PCM block with its output format.
type AudioData struct {
	SampleRateHz   int
	Stereo         bool
	BytesPerSample int
	PCM            []byte
}

// outputSampleRate is the decoder's output rate: SBR doubles the core
// sampling rate.
func outputSampleRate(p AudioParams) int {
	if p.SBR {
		return 2 * p.SamplingRateHz
	}
	return p.SamplingRateHz
}
