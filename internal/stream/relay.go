// Package stream fans decoded radio output — PCM audio, dynamic
// labels, slideshow images and service-directory updates — out to
// attached viewer sessions.
package stream

import (
	"log/slog"
	"sync"

	"github.com/saxhorn/dabrx/internal/ensemble"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/radio"
)

// Label is a dynamic-label update with its signalled charset.
type Label struct {
	Text      string `json:"text"`
	CharsetID uint8  `json:"charsetId"`
}

// ViewerStats captures delivery metrics for one viewer session,
// exposed via the debug API for monitoring sink health.
type ViewerStats struct {
	ID          string `json:"id"`
	AudioFrames int64  `json:"audioFrames"`
	Labels      int64  `json:"labels"`
	Slides      int64  `json:"slides"`
}

// Viewer is the interface a viewer session must implement to receive
// decoded output from a Relay. Send methods must not block; slow
// sinks drop rather than stall the decoding workers.
type Viewer interface {
	ID() string
	SendAudio(radio.AudioData)
	SendLabel(Label)
	SendSlide(mot.Slide)
	SendDirectory([]ensemble.Service)
	Stats() ViewerStats
}

// Relay is the fan-out hub for one decoded service. It distributes
// audio and metadata to all attached viewers and caches the most
// recent label, slide and directory so late joiners start with the
// current programme state instead of waiting for the next carousel
// cycle.
type Relay struct {
	log *slog.Logger

	mu       sync.RWMutex
	sessions map[string]Viewer

	label     Label
	labelSet  bool
	slide     mot.Slide
	slideSet  bool
	directory []ensemble.Service
}

// NewRelay creates a Relay with no viewers.
func NewRelay(log *slog.Logger) *Relay {
	if log == nil {
		log = slog.Default()
	}
	return &Relay{
		log:      log.With("component", "relay"),
		sessions: make(map[string]Viewer),
	}
}

// AddViewer replays the cached programme state to the viewer, then
// registers it for live delivery. Replay happens before registration
// so a broadcast cannot interleave ahead of it.
func (r *Relay) AddViewer(session Viewer) {
	r.mu.Lock()
	if r.labelSet {
		session.SendLabel(r.label)
	}
	if r.slideSet {
		session.SendSlide(r.slide)
	}
	if r.directory != nil {
		session.SendDirectory(r.directory)
	}
	r.sessions[session.ID()] = session
	count := len(r.sessions)
	r.mu.Unlock()

	r.log.Info("viewer added", "session", session.ID(), "viewers", count)
}

// RemoveViewer unregisters a viewer by ID.
func (r *Relay) RemoveViewer(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	count := len(r.sessions)
	r.mu.Unlock()

	r.log.Info("viewer removed", "session", id, "viewers", count)
}

// BroadcastAudio sends a PCM block to all viewers. Audio is not
// cached; a late joiner starts at the live edge.
func (r *Relay) BroadcastAudio(data radio.AudioData) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, session := range r.sessions {
		session.SendAudio(data)
	}
}

// BroadcastLabel sends a dynamic label to all viewers and caches it
// for late joiners.
func (r *Relay) BroadcastLabel(label Label) {
	r.mu.Lock()
	r.label = label
	r.labelSet = true
	sessions := r.snapshotLocked()
	r.mu.Unlock()

	for _, session := range sessions {
		session.SendLabel(label)
	}
}

// BroadcastSlide sends a slideshow image to all viewers and caches it.
func (r *Relay) BroadcastSlide(slide mot.Slide) {
	r.mu.Lock()
	r.slide = slide
	r.slideSet = true
	sessions := r.snapshotLocked()
	r.mu.Unlock()

	for _, session := range sessions {
		session.SendSlide(slide)
	}
}

// BroadcastDirectory sends the current service directory to all
// viewers and caches it.
func (r *Relay) BroadcastDirectory(services []ensemble.Service) {
	r.mu.Lock()
	r.directory = services
	sessions := r.snapshotLocked()
	r.mu.Unlock()

	for _, session := range sessions {
		session.SendDirectory(services)
	}
}

func (r *Relay) snapshotLocked() []Viewer {
	out := make([]Viewer, 0, len(r.sessions))
	for _, s := range r.sessions {
		out = append(out, s)
	}
	return out
}

// ViewerCount returns the number of attached viewers.
func (r *Relay) ViewerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// ViewerStatsAll returns delivery metrics for every attached viewer.
func (r *Relay) ViewerStatsAll() []ViewerStats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := make([]ViewerStats, 0, len(r.sessions))
	for _, s := range r.sessions {
		stats = append(stats, s.Stats())
	}
	return stats
}
