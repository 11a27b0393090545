// Package ensemble aggregates decoded signalling into a queryable
// directory of the multiplex: sub-channels, services and their
// components, linkage sets, alternative frequencies and broadcast time.
package ensemble

import (
	"bytes"
	"log/slog"
	"slices"
	"sync"

	"github.com/saxhorn/dabrx/internal/fic"
)

// ChangeKind tags a database change notification.
type ChangeKind int

const (
	ChangeEnsemble ChangeKind = iota
	ChangeConfiguration
	ChangeSubchannel
	ChangeComponent
	ChangeLink
	ChangeCountry
	ChangeTime
	ChangeApplication
	ChangeProgrammeType
	ChangeFrequency
	ChangeOtherEnsemble
	ChangeReconfiguration
)

// Change is delivered to registered listeners after the database has
// been updated and its lock released.
type Change struct {
	Kind ChangeKind
}

type componentKey struct {
	service fic.ServiceID
	num     uint8
}

type globalKey struct {
	service fic.ServiceID
	scids   uint8
}

type appKey struct {
	service fic.ServiceID
	scids   uint8
	appType uint16
}

// Database is the single-writer directory fed by the FIC processor.
// Query methods return copies, so concurrent readers always observe a
// consistent snapshot. It implements fic.Sink.
type Database struct {
	mu  sync.RWMutex
	log *slog.Logger

	ensemble     fic.EnsembleInfo
	haveEnsemble bool
	config       fic.Configuration
	haveConfig   bool
	country      fic.CountryTable
	haveCountry  bool
	time         fic.DateTime
	haveTime     bool

	subchannels      map[uint8]fic.SubchannelOrg
	components       map[componentKey]fic.ServiceComponent
	packetComponents map[uint16]fic.PacketComponent
	caComponents     map[uint8]fic.CAComponent
	packetFEC        map[uint8]uint8
	links            map[uint16]fic.ServiceLink
	globals          map[globalKey]fic.GlobalDefinition
	apps             map[appKey]fic.UserApplication
	programmeTypes   map[fic.ServiceID]fic.ProgrammeType
	frequencies      map[fic.FrequencyInfo]struct{}
	otherEnsembles   map[fic.ServiceID][]fic.EnsembleID

	listenerMu sync.Mutex
	listeners  []func(Change)
}

// NewDatabase returns an empty directory.
func NewDatabase(logger *slog.Logger) *Database {
	if logger == nil {
		logger = slog.Default()
	}
	db := &Database{log: logger.With("component", "ensemble")}
	db.resetLocked()
	return db
}

// resetLocked clears multiplex-configuration state. Ensemble identity,
// country table and broadcast time survive a reconfiguration.
func (db *Database) resetLocked() {
	db.subchannels = make(map[uint8]fic.SubchannelOrg)
	db.components = make(map[componentKey]fic.ServiceComponent)
	db.packetComponents = make(map[uint16]fic.PacketComponent)
	db.caComponents = make(map[uint8]fic.CAComponent)
	db.packetFEC = make(map[uint8]uint8)
	db.links = make(map[uint16]fic.ServiceLink)
	db.globals = make(map[globalKey]fic.GlobalDefinition)
	db.apps = make(map[appKey]fic.UserApplication)
	db.programmeTypes = make(map[fic.ServiceID]fic.ProgrammeType)
	db.frequencies = make(map[fic.FrequencyInfo]struct{})
	db.otherEnsembles = make(map[fic.ServiceID][]fic.EnsembleID)
}

// AddListener registers a change callback. Callbacks run on the
// writer's goroutine, outside the database lock, and must not block.
func (db *Database) AddListener(fn func(Change)) {
	db.listenerMu.Lock()
	defer db.listenerMu.Unlock()
	db.listeners = append(db.listeners, fn)
}

func (db *Database) notify(changes ...Change) {
	if len(changes) == 0 {
		return
	}
	db.listenerMu.Lock()
	listeners := slices.Clone(db.listeners)
	db.listenerMu.Unlock()
	for _, fn := range listeners {
		for _, c := range changes {
			fn(c)
		}
	}
}

func (db *Database) OnEnsembleInfo(r fic.EnsembleInfo) {
	db.mu.Lock()
	changed := !db.haveEnsemble || db.ensemble != r
	db.ensemble = r
	db.haveEnsemble = true
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeEnsemble})
	}
}

func (db *Database) OnConfiguration(r fic.Configuration) {
	db.mu.Lock()
	reconfigured := db.haveConfig && db.config.ReconfigurationCount != r.ReconfigurationCount
	changed := !db.haveConfig || db.config != r
	if reconfigured {
		db.log.Info("multiplex reconfiguration, flushing directory",
			"old", db.config.ReconfigurationCount, "new", r.ReconfigurationCount)
		db.resetLocked()
	}
	db.config = r
	db.haveConfig = true
	db.mu.Unlock()

	var changes []Change
	if reconfigured {
		changes = append(changes, Change{Kind: ChangeReconfiguration})
	}
	if changed {
		changes = append(changes, Change{Kind: ChangeConfiguration})
	}
	db.notify(changes...)
}

func (db *Database) OnSubchannelOrg(r fic.SubchannelOrg) {
	db.mu.Lock()
	old, ok := db.subchannels[r.ID]
	changed := !ok || old != r
	db.subchannels[r.ID] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeSubchannel})
	}
}

func (db *Database) OnServiceComponent(r fic.ServiceComponent) {
	key := componentKey{service: r.Service, num: r.ComponentNum}
	db.mu.Lock()
	old, ok := db.components[key]
	changed := !ok || old != r
	db.components[key] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeComponent})
	}
}

func (db *Database) OnPacketComponent(r fic.PacketComponent) {
	db.mu.Lock()
	old, ok := db.packetComponents[r.SCID]
	changed := !ok || old != r
	db.packetComponents[r.SCID] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeComponent})
	}
}

func (db *Database) OnCAComponent(r fic.CAComponent) {
	db.mu.Lock()
	old, ok := db.caComponents[r.SubchannelID]
	changed := !ok || old != r
	db.caComponents[r.SubchannelID] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeComponent})
	}
}

func (db *Database) OnPacketFEC(r fic.PacketFEC) {
	db.mu.Lock()
	old, ok := db.packetFEC[r.SubchannelID]
	changed := !ok || old != r.FEC
	db.packetFEC[r.SubchannelID] = r.FEC
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeSubchannel})
	}
}

func (db *Database) OnServiceLink(r fic.ServiceLink) {
	db.mu.Lock()
	old, ok := db.links[r.LSN]
	changed := !ok || !serviceLinkEqual(old, r)
	db.links[r.LSN] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeLink})
	}
}

func serviceLinkEqual(a, b fic.ServiceLink) bool {
	return a.ActiveLink == b.ActiveLink &&
		a.HardLink == b.HardLink &&
		a.ILS == b.ILS &&
		a.LSN == b.LSN &&
		a.IdLQ == b.IdLQ &&
		slices.Equal(a.IDs, b.IDs)
}

func (db *Database) OnGlobalDefinition(r fic.GlobalDefinition) {
	key := globalKey{service: r.Service, scids: r.SCIdS}
	db.mu.Lock()
	old, ok := db.globals[key]
	changed := !ok || old != r
	db.globals[key] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeComponent})
	}
}

func (db *Database) OnCountryTable(r fic.CountryTable) {
	db.mu.Lock()
	changed := !db.haveCountry || !countryTableEqual(db.country, r)
	db.country = r
	db.haveCountry = true
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeCountry})
	}
}

func countryTableEqual(a, b fic.CountryTable) bool {
	if a.LTO != b.LTO || a.ECC != b.ECC || a.InternationalTableID != b.InternationalTableID {
		return false
	}
	return slices.EqualFunc(a.Subfields, b.Subfields, func(x, y fic.ECCServiceList) bool {
		return x.ECC == y.ECC && slices.Equal(x.ServiceIDs, y.ServiceIDs)
	})
}

func (db *Database) OnDateTime(r fic.DateTime) {
	db.mu.Lock()
	changed := !db.haveTime || db.time != r
	db.time = r
	db.haveTime = true
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeTime})
	}
}

func (db *Database) OnUserApplication(r fic.UserApplication) {
	key := appKey{service: r.Service, scids: r.SCIdS, appType: r.AppType}
	db.mu.Lock()
	old, ok := db.apps[key]
	changed := !ok || !bytes.Equal(old.Data, r.Data)
	db.apps[key] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeApplication})
	}
}

func (db *Database) OnProgrammeType(r fic.ProgrammeType) {
	db.mu.Lock()
	old, ok := db.programmeTypes[r.Service]
	changed := !ok || old != r
	db.programmeTypes[r.Service] = r
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeProgrammeType})
	}
}

func (db *Database) OnFrequencyInfo(r fic.FrequencyInfo) {
	db.mu.Lock()
	_, ok := db.frequencies[r]
	db.frequencies[r] = struct{}{}
	db.mu.Unlock()
	if !ok {
		db.notify(Change{Kind: ChangeFrequency})
	}
}

func (db *Database) OnOtherEnsembleService(r fic.OtherEnsembleService) {
	db.mu.Lock()
	old, ok := db.otherEnsembles[r.Service]
	changed := !ok || !slices.Equal(old, r.Ensembles)
	db.otherEnsembles[r.Service] = slices.Clone(r.Ensembles)
	db.mu.Unlock()
	if changed {
		db.notify(Change{Kind: ChangeOtherEnsemble})
	}
}
