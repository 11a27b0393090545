// Package metrics exposes Prometheus collectors for the receiver:
// FIC decode health, per-sub-channel FEC error counters and decoded
// output rates.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/saxhorn/dabrx/internal/dabplus"
	"github.com/saxhorn/dabrx/internal/fic"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/radio"
)

// Metrics holds every collector. One instance is shared by the whole
// process and attached to decoder event hooks.
type Metrics struct {
	framesTotal    prometheus.Counter     // transmission frames dispatched
	fibGroupsTotal prometheus.Counter     // FIB groups decoded
	fibCRCTotal    *prometheus.CounterVec // FIB CRC results (by result)
	ficPathError   prometheus.Gauge       // Viterbi path error of the last FIB group

	superFramesTotal    *prometheus.CounterVec // DAB+ super-frames decoded (by subchannel)
	firecodeErrorsTotal *prometheus.CounterVec // firecode failures (by subchannel)
	rsErrorsTotal       *prometheus.CounterVec // uncorrectable RS codewords (by subchannel)
	auErrorsTotal       *prometheus.CounterVec // access-unit CRC failures (by subchannel)
	accessUnitsTotal    *prometheus.CounterVec // verified access units (by subchannel)

	audioFramesTotal *prometheus.CounterVec // decoded PCM blocks (by subchannel)
	labelsTotal      *prometheus.CounterVec // dynamic labels published (by subchannel)
	slidesTotal      *prometheus.CounterVec // slideshow images published (by subchannel)

	viewers prometheus.Gauge // attached stream viewers
}

// New creates and registers all collectors with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		framesTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dabrx_frames_total",
			Help: "Transmission frames dispatched to the workers",
		}),
		fibGroupsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "dabrx_fib_groups_total",
			Help: "FIB groups decoded from the FIC",
		}),
		fibCRCTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_fib_crc_total",
			Help: "FIB CRC verification results",
		}, []string{"result"}),
		ficPathError: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dabrx_fic_path_error",
			Help: "Viterbi path error of the most recent FIB group",
		}),
		superFramesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_super_frames_total",
			Help: "DAB+ super-frames decoded",
		}, []string{"subchannel"}),
		firecodeErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_firecode_errors_total",
			Help: "Super-frame firecode failures",
		}, []string{"subchannel"}),
		rsErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_rs_errors_total",
			Help: "Uncorrectable Reed-Solomon codewords",
		}, []string{"subchannel"}),
		auErrorsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_au_crc_errors_total",
			Help: "Access units rejected by their CRC",
		}, []string{"subchannel"}),
		accessUnitsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_access_units_total",
			Help: "Access units delivered to the audio and data paths",
		}, []string{"subchannel"}),
		audioFramesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_audio_frames_total",
			Help: "Decoded PCM blocks",
		}, []string{"subchannel"}),
		labelsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_dynamic_labels_total",
			Help: "Dynamic labels published",
		}, []string{"subchannel"}),
		slidesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "dabrx_slides_total",
			Help: "Slideshow images published",
		}, []string{"subchannel"}),
		viewers: factory.NewGauge(prometheus.GaugeOpts{
			Name: "dabrx_viewers",
			Help: "Attached stream viewers",
		}),
	}
}

// ObserveFrame counts one dispatched transmission frame.
func (m *Metrics) ObserveFrame() { m.framesTotal.Inc() }

// ObserveFIBGroup records the outcome of one decoded FIB group.
func (m *Metrics) ObserveFIBGroup(stats fic.GroupStats) {
	m.fibGroupsTotal.Inc()
	m.ficPathError.Set(float64(stats.PathError))
	for _, ok := range stats.FIBValid {
		if ok {
			m.fibCRCTotal.WithLabelValues("ok").Inc()
		} else {
			m.fibCRCTotal.WithLabelValues("fail").Inc()
		}
	}
}

// SetViewerCount tracks the stream relay's attached viewers.
func (m *Metrics) SetViewerCount(n int) { m.viewers.Set(float64(n)) }

// InstrumentChannel attaches counters to a channel's event hooks.
// Call before the channel starts decoding.
func (m *Metrics) InstrumentChannel(ch *radio.Channel) {
	sub := strconv.Itoa(int(ch.SubchannelID()))

	super := ch.Super()
	super.OnHeader(func(dabplus.Header) { m.superFramesTotal.WithLabelValues(sub).Inc() })
	super.OnFirecodeError(func() { m.firecodeErrorsTotal.WithLabelValues(sub).Inc() })
	super.OnRSError(func(int) { m.rsErrorsTotal.WithLabelValues(sub).Inc() })
	super.OnAUError(func(int) { m.auErrorsTotal.WithLabelValues(sub).Inc() })
	super.OnAU(func(dabplus.AU) { m.accessUnitsTotal.WithLabelValues(sub).Inc() })

	ch.OnAudio(func(radio.AudioData) { m.audioFramesTotal.WithLabelValues(sub).Inc() })
	ch.OnLabel(func(string, uint8) { m.labelsTotal.WithLabelValues(sub).Inc() })
	ch.OnSlide(func(mot.Slide) { m.slidesTotal.WithLabelValues(sub).Inc() })
}
