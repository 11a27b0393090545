package main

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/saxhorn/dabrx/internal/ensemble"
	"github.com/saxhorn/dabrx/internal/ingest"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/radio"
	"github.com/saxhorn/dabrx/internal/stream"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 32768,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type server struct {
	app *app
	log *slog.Logger
}

func newServer(a *app) *server {
	return &server{app: a, log: slog.Default().With("component", "server")}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/services", s.handleServices)
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

type statusResponse struct {
	Source   ingest.Stats         `json:"source"`
	Viewers  []stream.ViewerStats `json:"viewers"`
	Channels []channelStatus      `json:"channels"`
}

type channelStatus struct {
	SubchannelID  uint8 `json:"subchannelId"`
	FirecodeError bool  `json:"firecodeError"`
	RSError       bool  `json:"rsError"`
	AUError       bool  `json:"auError"`
	CodecError    bool  `json:"codecError"`
}

func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Source:  s.app.src.Stats(),
		Viewers: s.app.relay.ViewerStatsAll(),
	}
	for _, ch := range s.app.radio.Channels() {
		resp.Channels = append(resp.Channels, channelStatus{
			SubchannelID:  ch.SubchannelID(),
			FirecodeError: ch.Super().IsFirecodeError(),
			RSError:       ch.Super().IsRSError(),
			AUError:       ch.Super().IsAUError(),
			CodecError:    ch.IsCodecError(),
		})
	}
	writeJSON(w, resp)
}

func (s *server) handleServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.app.db.Services())
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Debug("writing response", "error", err)
	}
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "error", err)
		return
	}

	sess := &session{
		id:      uuid.NewString(),
		conn:    conn,
		send:    make(chan envelope, 64),
		done:    make(chan struct{}),
		encoder: newAudioEncoder(s.app.cfg.Audio.Opus),
		log:     s.log,
	}
	go sess.writePump()
	s.app.relay.AddViewer(sess)
	s.app.metrics.SetViewerCount(s.app.relay.ViewerCount())

	// Inbound traffic is ignored; the read loop only notices the close.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.app.relay.RemoveViewer(sess.id)
	s.app.metrics.SetViewerCount(s.app.relay.ViewerCount())
	sess.close()
}

// envelope is one JSON message on the wire. Audio payloads are base64,
// in the format the session's encoder produced.
type envelope struct {
	Type string `json:"type"`

	Format       string `json:"format,omitempty"`
	SampleRateHz int    `json:"sampleRateHz,omitempty"`
	Stereo       bool   `json:"stereo,omitempty"`
	Data         string `json:"data,omitempty"`

	Label    *stream.Label      `json:"label,omitempty"`
	Slide    *slideMeta         `json:"slide,omitempty"`
	Services []ensemble.Service `json:"services,omitempty"`
}

// slideMeta carries a slideshow image with its body inline.
type slideMeta struct {
	TransportID uint16 `json:"transportId"`
	Name        string `json:"name"`
	MIME        string `json:"mime"`
	Data        string `json:"data"`
}

// session is one WebSocket viewer. Sends never block: a full outbound
// queue drops the message and counts the drop.
type session struct {
	id      string
	conn    *websocket.Conn
	send    chan envelope
	done    chan struct{}
	encoder *audioEncoder
	log     *slog.Logger

	closeOnce sync.Once

	audioFrames atomic.Int64
	labels      atomic.Int64
	slides      atomic.Int64
	dropped     atomic.Int64
}

func (s *session) ID() string { return s.id }

func (s *session) SendAudio(d radio.AudioData) {
	s.audioFrames.Add(1)
	s.enqueue(envelope{
		Type:         "audio",
		SampleRateHz: d.SampleRateHz,
		Stereo:       d.Stereo,
		// Encoding happens on the write pump; carry the PCM through the
		// queue untouched.
		Data: base64.StdEncoding.EncodeToString(d.PCM),
	})
}

func (s *session) SendLabel(l stream.Label) {
	s.labels.Add(1)
	s.enqueue(envelope{Type: "label", Label: &l})
}

func (s *session) SendSlide(sl mot.Slide) {
	s.slides.Add(1)
	s.enqueue(envelope{Type: "slide", Slide: &slideMeta{
		TransportID: sl.TransportID,
		Name:        sl.Name,
		MIME:        sl.MIME,
		Data:        base64.StdEncoding.EncodeToString(sl.Data),
	}})
}

func (s *session) SendDirectory(services []ensemble.Service) {
	s.enqueue(envelope{Type: "directory", Services: services})
}

func (s *session) Stats() stream.ViewerStats {
	return stream.ViewerStats{
		ID:          s.id,
		AudioFrames: s.audioFrames.Load(),
		Labels:      s.labels.Load(),
		Slides:      s.slides.Load(),
	}
}

// enqueue may race with close; the done channel keeps a late broadcast
// from blocking on a dead session.
func (s *session) enqueue(e envelope) {
	select {
	case <-s.done:
	case s.send <- e:
	default:
		s.dropped.Add(1)
	}
}

func (s *session) writePump() {
	for {
		var e envelope
		select {
		case <-s.done:
			return
		case e = <-s.send:
		}
		if !s.prepare(&e) {
			continue
		}
		if err := s.conn.WriteJSON(e); err != nil {
			return
		}
	}
}

// prepare runs the outbound audio encode in place. Encoders fall back
// to PCM instead of erroring, so a frame is only skipped when its
// payload is unreadable.
func (s *session) prepare(e *envelope) bool {
	if e.Type != "audio" {
		return true
	}
	pcm, err := base64.StdEncoding.DecodeString(e.Data)
	if err != nil {
		return false
	}
	encoded, format, err := s.encoder.Encode(pcm, e.SampleRateHz, e.Stereo)
	if err != nil {
		s.log.Debug("audio encode failed", "session", s.id, "error", err)
		return false
	}
	e.Format = format
	e.Data = base64.StdEncoding.EncodeToString(encoded)
	return true
}

func (s *session) close() {
	s.closeOnce.Do(func() {
		close(s.done)
		s.conn.Close()
		if n := s.dropped.Load(); n > 0 {
			s.log.Info("viewer closed with drops", "session", s.id, "dropped", n)
		}
	})
}
