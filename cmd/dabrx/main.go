package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/saxhorn/dabrx/internal/aacdec"
	"github.com/saxhorn/dabrx/internal/ensemble"
	"github.com/saxhorn/dabrx/internal/ingest"
	"github.com/saxhorn/dabrx/internal/metrics"
	"github.com/saxhorn/dabrx/internal/mot"
	"github.com/saxhorn/dabrx/internal/radio"
	"github.com/saxhorn/dabrx/internal/stream"
)

var version = "dev"

func main() {
	configPath := flag.String("config", envOr("CONFIG", ""), "path to YAML config")
	flag.Parse()

	level := slog.LevelInfo
	if os.Getenv("DEBUG") != "" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	mode, err := parseMode(cfg.Input.Mode)
	if err != nil {
		slog.Error("failed to parse transmission mode", "error", err)
		os.Exit(1)
	}

	input := os.Stdin
	if cfg.Input.Path != "-" {
		input, err = os.Open(cfg.Input.Path)
		if err != nil {
			slog.Error("failed to open input", "error", err)
			os.Exit(1)
		}
		defer input.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("received signal, shutting down", "signal", sig)
		cancel()
	}()

	db := ensemble.NewDatabase(nil)
	r, err := radio.New(mode, db, nil)
	if err != nil {
		slog.Error("failed to build radio", "error", err)
		os.Exit(1)
	}
	defer r.Stop()

	a := &app{
		cfg:     cfg,
		db:      db,
		radio:   r,
		relay:   stream.NewRelay(nil),
		metrics: metrics.New(prometheus.DefaultRegisterer),
		tuned:   make(map[uint8]bool),
		retune:  make(chan struct{}, 1),
	}
	r.FIC().OnGroup = a.metrics.ObserveFIBGroup

	// Directory changes arrive on the FIC worker, which runs inside the
	// frame barrier. Tuning needs the dispatcher lock, so the listener
	// only nudges the ingest loop to retune between frames.
	db.AddListener(func(ensemble.Change) {
		select {
		case a.retune <- struct{}{}:
		default:
		}
	})

	if cfg.MQTT.Enabled {
		a.mqtt, err = newMQTTPublisher(cfg.MQTT)
		if err != nil {
			slog.Error("failed to connect mqtt", "error", err)
			os.Exit(1)
		}
		defer a.mqtt.Close()
	}

	src, err := ingest.NewSource(input, mode)
	if err != nil {
		slog.Error("failed to build source", "error", err)
		os.Exit(1)
	}
	a.src = src

	slog.Info("dabrx starting",
		"version", version,
		"mode", cfg.Input.Mode,
		"input", cfg.Input.Path,
		"server", cfg.Server.Addr,
	)

	g, ctx := errgroup.WithContext(ctx)

	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: newServer(a).routes(),
	}

	g.Go(func() error {
		return a.runIngest(ctx)
	})

	g.Go(func() error {
		slog.Info("HTTP server listening", "addr", cfg.Server.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		return httpSrv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

type app struct {
	cfg     Config
	db      *ensemble.Database
	radio   *radio.Radio
	relay   *stream.Relay
	metrics *metrics.Metrics
	mqtt    *mqttPublisher
	src     *ingest.Source

	tuned  map[uint8]bool
	retune chan struct{}
}

// runIngest drives the whole receiver: it reads soft-bit frames,
// dispatches them through the frame barrier and applies pending
// directory changes between frames. A clean EOF ends the run.
func (a *app) runIngest(ctx context.Context) error {
	params := a.src.Params()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-a.retune:
			a.applyDirectory()
		default:
		}

		frame, err := a.src.ReadFrame()
		if errors.Is(err, io.EOF) {
			slog.Info("input exhausted", "frames", a.src.Stats().FramesRead)
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading frame: %w", err)
		}
		if err := a.radio.ProcessFrame(frame); err != nil {
			return fmt.Errorf("processing frame: %w", err)
		}
		a.metrics.ObserveFrame()

		if a.cfg.Input.Realtime {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(params.FrameDuration):
			}
		}
	}
}

// applyDirectory tunes newly signalled audio components and pushes the
// refreshed service directory to viewers and the broker.
func (a *app) applyDirectory() {
	for _, comp := range a.db.AudioComponents() {
		a.tuneSubchannel(comp.SubchannelID)
	}

	services := a.db.Services()
	a.relay.BroadcastDirectory(services)
	a.mqtt.PublishDirectory(services)
}

func (a *app) tuneSubchannel(id uint8) {
	if a.tuned[id] || !a.cfg.Audio.allowsSubchannel(id) {
		return
	}
	org, ok := a.db.Subchannel(id)
	if !ok {
		// The component is signalled before its sub-channel
		// organisation; retune fires again when FIG 0/1 lands.
		return
	}

	ch, err := radio.NewChannel(org, aacdec.Factory, nil)
	if err != nil {
		slog.Warn("skipping sub-channel", "subchannel", id, "error", err)
		a.tuned[id] = true
		return
	}

	sub := id
	ch.OnAudio(func(d radio.AudioData) {
		a.relay.BroadcastAudio(d)
	})
	ch.OnLabel(func(text string, charsetID uint8) {
		label := stream.Label{Text: text, CharsetID: charsetID}
		a.relay.BroadcastLabel(label)
		a.mqtt.PublishLabel(sub, label)
	})
	ch.OnSlide(func(s mot.Slide) {
		a.relay.BroadcastSlide(s)
		a.mqtt.PublishSlide(sub, s)
	})
	a.metrics.InstrumentChannel(ch)
	ch.Controls().RunAll()

	if err := a.radio.AddChannel(ch); err != nil {
		slog.Warn("failed to add channel", "subchannel", id, "error", err)
		return
	}
	a.tuned[id] = true
}
