package radio

import (
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/saxhorn/dabrx/internal/dabplus"
	"github.com/saxhorn/dabrx/internal/fic"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/msc"
	"github.com/saxhorn/dabrx/internal/pad"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// Channel decodes one audio sub-channel end to end: MSC logical
// frames, DAB+ super-frames, the external audio codec and the PAD/MOT
// data path. All decoding runs on the owning worker; only Controls and
// the error latches are safe to touch from other goroutines.
type Channel struct {
	subchannelID uint8
	controls     Controls

	msc   *msc.Decoder
	super *dabplus.Processor
	pad   *pad.Processor
	mot   *mot.Processor

	factory    AudioDecoderFactory
	dec        AudioDecoder
	params     AudioParams
	haveParams bool
	codecError atomic.Bool

	log *slog.Logger

	audioListeners  []func(AudioData)
	labelListeners  []func(text string, charsetID uint8)
	slideListeners  []func(mot.Slide)
	entityListeners []func(mot.Entity)
}

// NewChannel builds a channel from a FIG 0/1 sub-channel descriptor.
// factory may be nil for data-only use.
func NewChannel(org fic.SubchannelOrg, factory AudioDecoderFactory, logger *slog.Logger) (*Channel, error) {
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "channel", "subchannel", org.ID)

	profile, err := msc.FromDescriptor(org)
	if err != nil {
		return nil, fmt.Errorf("radio: sub-channel %d: %w", org.ID, err)
	}
	mscDec, err := msc.NewDecoder(profile, int(org.StartAddress), logger)
	if err != nil {
		return nil, fmt.Errorf("radio: sub-channel %d: %w", org.ID, err)
	}
	super, err := dabplus.NewProcessor(profile.FrameBytes, logger)
	if err != nil {
		return nil, fmt.Errorf("radio: sub-channel %d: %w", org.ID, err)
	}

	ch := &Channel{
		subchannelID: org.ID,
		msc:          mscDec,
		super:        super,
		pad:          pad.NewProcessor(logger),
		mot:          mot.NewProcessor(logger),
		factory:      factory,
		log:          logger,
	}

	ch.super.OnHeader(ch.handleHeader)
	ch.super.OnAU(ch.handleAU)
	ch.pad.OnDataGroup(ch.mot.ProcessDataGroup)
	ch.pad.OnLabel(func(text string, charsetID uint8) {
		for _, fn := range ch.labelListeners {
			fn(text, charsetID)
		}
	})
	ch.mot.OnSlide(func(s mot.Slide) {
		for _, fn := range ch.slideListeners {
			fn(s)
		}
	})
	ch.mot.OnEntity(func(e mot.Entity) {
		for _, fn := range ch.entityListeners {
			fn(e)
		}
	})
	return ch, nil
}

func (ch *Channel) SubchannelID() uint8 { return ch.subchannelID }

// Controls returns the channel's enable flags.
func (ch *Channel) Controls() *Controls { return &ch.controls }

// Super exposes the super-frame processor for its error latches and
// low-level event hooks.
func (ch *Channel) Super() *dabplus.Processor { return ch.super }

// IsCodecError reports whether the external decoder failed since the
// last super-frame header.
func (ch *Channel) IsCodecError() bool { return ch.codecError.Load() }

func (ch *Channel) OnAudio(fn func(AudioData)) { ch.audioListeners = append(ch.audioListeners, fn) }
func (ch *Channel) OnLabel(fn func(text string, charsetID uint8)) {
	ch.labelListeners = append(ch.labelListeners, fn)
}
func (ch *Channel) OnSlide(fn func(mot.Slide))   { ch.slideListeners = append(ch.slideListeners, fn) }
func (ch *Channel) OnEntity(fn func(mot.Entity)) { ch.entityListeners = append(ch.entityListeners, fn) }

// ProcessCIF runs one CIF through the channel. A fully disabled
// channel does no work at all.
func (ch *Channel) ProcessCIF(cif []viterbi.SoftBit) {
	if !ch.controls.AnyEnabled() {
		return
	}
	frame, err := ch.msc.ProcessCIF(cif)
	if err != nil {
		ch.log.Warn("dropping cif", "err", err)
		return
	}
	if frame == nil {
		return
	}
	if err := ch.super.ProcessFrame(frame); err != nil {
		ch.log.Warn("dropping logical frame", "err", err)
	}
}

// handleHeader rebuilds the audio decoder when the signalled codec
// parameters change.
func (ch *Channel) handleHeader(h dabplus.Header) {
	ch.codecError.Store(false)
	params := AudioParams{
		SamplingRateHz: h.SamplingRateHz,
		SBR:            h.SBR,
		PS:             h.PS,
		Stereo:         h.Stereo,
	}
	if ch.haveParams && params == ch.params {
		return
	}
	ch.params = params
	ch.haveParams = true

	if ch.dec != nil {
		if err := ch.dec.Close(); err != nil {
			ch.log.Warn("closing audio decoder", "err", err)
		}
		ch.dec = nil
	}
	if ch.factory == nil {
		return
	}
	dec, err := ch.factory(params)
	if err != nil {
		ch.log.Error("building audio decoder", "err", err, "params", fmt.Sprintf("%+v", params))
		ch.codecError.Store(true)
		return
	}
	ch.dec = dec
	ch.log.Info("audio decoder configured",
		"sample_rate", outputSampleRate(params), "stereo", params.Stereo, "sbr", params.SBR)
}

func (ch *Channel) handleAU(au dabplus.AU) {
	if ch.controls.DecodeData() {
		ch.pad.ProcessAU(au.Data)
	}
	if !ch.controls.DecodeAudio() || ch.dec == nil {
		return
	}

	pcm, err := ch.dec.DecodeAU(au.Data)
	if err != nil {
		ch.codecError.Store(true)
		ch.log.Debug("audio decode failed", "au", au.Index, "err", err)
		return
	}
	if len(pcm) == 0 || !ch.controls.PlayAudio() {
		return
	}
	data := AudioData{
		SampleRateHz:   outputSampleRate(ch.params),
		Stereo:         ch.params.Stereo,
		BytesPerSample: 2,
		PCM:            pcm,
	}
	for _, fn := range ch.audioListeners {
		fn(data)
	}
}
