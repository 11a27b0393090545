package mot

import (
	"log/slog"

	"github.com/saxhorn/dabrx/internal/pad"
)

// Data-group types carrying MOT object parts.
const (
	dgTypeHeader = 3
	dgTypeBody   = 4
)

// Entity is one completed MOT object.
type Entity struct {
	TransportID uint16
	Header      HeaderInfo
	Body        []byte
}

type entityState struct {
	header    Assembler
	body      Assembler
	published bool
}

// Processor assembles MOT entities per transport id from MSC data
// groups. It is owned by a single worker and not safe for concurrent
// use.
type Processor struct {
	log      *slog.Logger
	entities map[uint16]*entityState

	entityListeners []func(Entity)
	slideListeners  []func(Slide)
}

func NewProcessor(logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		log:      logger.With("component", "mot"),
		entities: make(map[uint16]*entityState),
	}
}

// OnEntity registers a listener for completed non-slideshow entities.
func (p *Processor) OnEntity(fn func(Entity)) {
	p.entityListeners = append(p.entityListeners, fn)
}

// OnSlide registers a listener for completed slideshow images.
func (p *Processor) OnSlide(fn func(Slide)) {
	p.slideListeners = append(p.slideListeners, fn)
}

// ProcessDataGroup feeds one CRC-verified MSC data group into the
// per-transport-id assemblers and publishes the entity when both its
// header and body complete.
func (p *Processor) ProcessDataGroup(dg pad.DataGroup) {
	if !dg.HasTransportID {
		return
	}
	st := p.entities[dg.TransportID]
	if st == nil {
		st = &entityState{}
		p.entities[dg.TransportID] = st
	}

	var asm *Assembler
	switch dg.Type {
	case dgTypeHeader:
		asm = &st.header
	case dgTypeBody:
		asm = &st.body
	default:
		p.log.Debug("ignoring data group", "type", dg.Type, "transport_id", dg.TransportID)
		return
	}

	asm.AddSegment(dg.SegmentNumber, dg.Data)
	if dg.Last {
		asm.SetTotalSegments(dg.SegmentNumber + 1)
	}

	if st.published || !st.header.CheckComplete() || !st.body.CheckComplete() {
		return
	}
	st.published = true

	info, err := ParseHeader(st.header.GetData())
	if err != nil {
		p.log.Warn("dropping mot entity", "transport_id", dg.TransportID, "err", err)
		return
	}
	body := st.body.GetData()
	if info.BodySize != len(body) {
		p.log.Warn("mot body size mismatch",
			"transport_id", dg.TransportID, "signalled", info.BodySize, "assembled", len(body))
	}

	entity := Entity{
		TransportID: dg.TransportID,
		Header:      info,
		Body:        append([]byte{}, body...),
	}
	p.log.Debug("mot entity complete",
		"transport_id", entity.TransportID, "name", info.Name, "mime", info.MIME, "bytes", len(entity.Body))

	if slide, ok := slideOf(entity); ok {
		for _, fn := range p.slideListeners {
			fn(slide)
		}
		return
	}
	for _, fn := range p.entityListeners {
		fn(entity)
	}
}
