package radio

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/saxhorn/dabrx/internal/ensemble"
	"github.com/saxhorn/dabrx/internal/fic"
	"github.com/saxhorn/dabrx/internal/ingest"
	"github.com/saxhorn/dabrx/internal/msc"
	"github.com/saxhorn/dabrx/internal/viterbi"
)

// worker is a long-lived goroutine driven by the frame barrier: the
// dispatcher signals start, the worker runs its per-frame body once,
// then reports done.
type worker struct {
	start  chan struct{}
	done   chan struct{}
	quit   chan struct{}
	joined chan struct{}
}

func startWorker(run func()) *worker {
	w := &worker{
		start:  make(chan struct{}),
		done:   make(chan struct{}),
		quit:   make(chan struct{}),
		joined: make(chan struct{}),
	}
	go func() {
		defer close(w.joined)
		for {
			select {
			case <-w.quit:
				return
			case <-w.start:
				run()
				w.done <- struct{}{}
			}
		}
	}()
	return w
}

func (w *worker) stop() {
	close(w.quit)
	<-w.joined
}

// Radio dispatches transmission frames to the FIC worker and one
// worker per added channel, joining on all of them before accepting
// the next frame.
type Radio struct {
	params  ingest.Params
	db      *ensemble.Database
	ficProc *fic.Processor
	log     *slog.Logger

	mu       sync.Mutex
	stopped  bool
	fic      *worker
	channels map[uint8]*Channel
	workers  map[uint8]*worker

	// per-frame spans, written by ProcessFrame before the fan-out and
	// read by workers until the join
	ficSpan []viterbi.SoftBit
	cifs    [][]viterbi.SoftBit
}

// New builds a radio for the given transmission mode, publishing FIC
// records into db.
func New(mode ingest.Mode, db *ensemble.Database, logger *slog.Logger) (*Radio, error) {
	if logger == nil {
		logger = slog.Default()
	}
	params, err := mode.Params()
	if err != nil {
		return nil, err
	}
	if params.FICGroups == 0 {
		return nil, fmt.Errorf("radio: transmission mode %d uses an unsupported fic codeword grouping", mode)
	}
	r := &Radio{
		params:   params,
		db:       db,
		ficProc:  fic.NewProcessor(db, logger),
		log:      logger.With("component", "radio"),
		channels: make(map[uint8]*Channel),
		workers:  make(map[uint8]*worker),
	}
	r.fic = startWorker(r.runFIC)
	return r, nil
}

// Database returns the ensemble directory fed by the FIC.
func (r *Radio) Database() *ensemble.Database { return r.db }

// FIC returns the FIC processor for observability hooks.
func (r *Radio) FIC() *fic.Processor { return r.ficProc }

// AddChannel registers a channel and starts its worker.
func (r *Radio) AddChannel(ch *Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return fmt.Errorf("radio: stopped")
	}
	id := ch.SubchannelID()
	if _, ok := r.channels[id]; ok {
		return fmt.Errorf("radio: sub-channel %d already added", id)
	}
	r.channels[id] = ch
	r.workers[id] = startWorker(func() {
		for _, cif := range r.cifs {
			ch.ProcessCIF(cif)
		}
	})
	r.log.Info("channel added", "subchannel", id)
	return nil
}

// Channel returns a previously added channel.
func (r *Radio) Channel(id uint8) (*Channel, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch, ok := r.channels[id]
	return ch, ok
}

// Channels returns the added channels.
func (r *Radio) Channels() []*Channel {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*Channel, 0, len(r.channels))
	for _, ch := range r.channels {
		out = append(out, ch)
	}
	return out
}

func (r *Radio) runFIC() {
	for g := 0; g < r.params.FICGroups; g++ {
		r.ficProc.ProcessFIBGroup(r.ficSpan[g*fic.EncodedSymbols:(g+1)*fic.EncodedSymbols], g)
	}
}

// ProcessFrame decodes one transmission frame: FIC and every channel
// run in parallel, and the call returns once all workers have
// finished. A frame whose spans do not match the mode is dropped.
func (r *Radio) ProcessFrame(f ingest.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return fmt.Errorf("radio: stopped")
	}
	if len(f.FIC) != r.params.FICBits || len(f.MSC) != r.params.MSCBits {
		return fmt.Errorf("radio: frame spans %d/%d, mode needs %d/%d",
			len(f.FIC), len(f.MSC), r.params.FICBits, r.params.MSCBits)
	}

	r.ficSpan = f.FIC
	r.cifs = r.cifs[:0]
	for c := 0; c < r.params.CIFs; c++ {
		r.cifs = append(r.cifs, f.MSC[c*msc.CIFBits:(c+1)*msc.CIFBits])
	}

	r.fic.start <- struct{}{}
	for _, w := range r.workers {
		w.start <- struct{}{}
	}
	<-r.fic.done
	for _, w := range r.workers {
		<-w.done
	}
	return nil
}

// Stop joins every worker. In-flight frames complete first.
func (r *Radio) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped {
		return
	}
	r.stopped = true
	r.fic.stop()
	for _, w := range r.workers {
		w.stop()
	}
	r.log.Info("stopped")
}
