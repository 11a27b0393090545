package ensemble

import (
	"cmp"
	"slices"

	"github.com/saxhorn/dabrx/internal/fic"
)

// Service is the aggregated view of one service id.
type Service struct {
	ID         fic.ServiceID
	CAID       uint8
	Components []fic.ServiceComponent
}

// Ensemble returns the last FIG 0/0 announcement.
func (db *Database) Ensemble() (fic.EnsembleInfo, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.ensemble, db.haveEnsemble
}

// Configuration returns the last FIG 0/7 counters.
func (db *Database) Configuration() (fic.Configuration, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.config, db.haveConfig
}

// CountryTable returns the last FIG 0/9 record with cloned subfields.
func (db *Database) CountryTable() (fic.CountryTable, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	ct := db.country
	ct.Subfields = slices.Clone(ct.Subfields)
	for i := range ct.Subfields {
		ct.Subfields[i].ServiceIDs = slices.Clone(ct.Subfields[i].ServiceIDs)
	}
	return ct, db.haveCountry
}

// DateTime returns the last broadcast time announcement.
func (db *Database) DateTime() (fic.DateTime, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return db.time, db.haveTime
}

// Subchannel looks up one sub-channel's organisation.
func (db *Database) Subchannel(id uint8) (fic.SubchannelOrg, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	sub, ok := db.subchannels[id]
	return sub, ok
}

// Subchannels returns all known sub-channels sorted by id.
func (db *Database) Subchannels() []fic.SubchannelOrg {
	db.mu.RLock()
	out := make([]fic.SubchannelOrg, 0, len(db.subchannels))
	for _, sub := range db.subchannels {
		out = append(out, sub)
	}
	db.mu.RUnlock()

	slices.SortFunc(out, func(a, b fic.SubchannelOrg) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

// PacketFEC returns the FEC scheme signalled for a packet sub-channel.
func (db *Database) PacketFEC(id uint8) (uint8, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	fec, ok := db.packetFEC[id]
	return fec, ok
}

// Services groups all known components by service, sorted by service
// reference then component number.
func (db *Database) Services() []Service {
	db.mu.RLock()
	byService := make(map[fic.ServiceID]*Service)
	for _, c := range db.components {
		svc, ok := byService[c.Service]
		if !ok {
			svc = &Service{ID: c.Service, CAID: c.CAID}
			byService[c.Service] = svc
		}
		svc.Components = append(svc.Components, c)
	}
	db.mu.RUnlock()

	out := make([]Service, 0, len(byService))
	for _, svc := range byService {
		slices.SortFunc(svc.Components, func(a, b fic.ServiceComponent) int {
			return cmp.Compare(a.ComponentNum, b.ComponentNum)
		})
		out = append(out, *svc)
	}
	slices.SortFunc(out, func(a, b Service) int {
		if c := cmp.Compare(a.ID.CountryID, b.ID.CountryID); c != 0 {
			return c
		}
		return cmp.Compare(a.ID.Reference, b.ID.Reference)
	})
	return out
}

// AudioComponents returns every stream-audio component, sorted by
// sub-channel id. This is the set a receiver offers for playback.
func (db *Database) AudioComponents() []fic.ServiceComponent {
	db.mu.RLock()
	var out []fic.ServiceComponent
	for _, c := range db.components {
		if c.TMID == fic.TMIDStreamAudio {
			out = append(out, c)
		}
	}
	db.mu.RUnlock()

	slices.SortFunc(out, func(a, b fic.ServiceComponent) int {
		return cmp.Compare(a.SubchannelID, b.SubchannelID)
	})
	return out
}

// Links returns all linkage sets sorted by LSN, with cloned id lists.
func (db *Database) Links() []fic.ServiceLink {
	db.mu.RLock()
	out := make([]fic.ServiceLink, 0, len(db.links))
	for _, l := range db.links {
		l.IDs = slices.Clone(l.IDs)
		out = append(out, l)
	}
	db.mu.RUnlock()

	slices.SortFunc(out, func(a, b fic.ServiceLink) int {
		return cmp.Compare(a.LSN, b.LSN)
	})
	return out
}

// Frequencies returns all alternative-frequency entries.
func (db *Database) Frequencies() []fic.FrequencyInfo {
	db.mu.RLock()
	out := make([]fic.FrequencyInfo, 0, len(db.frequencies))
	for f := range db.frequencies {
		out = append(out, f)
	}
	db.mu.RUnlock()

	slices.SortFunc(out, func(a, b fic.FrequencyInfo) int {
		if c := cmp.Compare(a.RM, b.RM); c != 0 {
			return c
		}
		return cmp.Compare(a.FrequencyHz, b.FrequencyHz)
	})
	return out
}

// UserApplications returns all signalled user applications with cloned
// payloads.
func (db *Database) UserApplications() []fic.UserApplication {
	db.mu.RLock()
	out := make([]fic.UserApplication, 0, len(db.apps))
	for _, a := range db.apps {
		a.Data = slices.Clone(a.Data)
		out = append(out, a)
	}
	db.mu.RUnlock()

	slices.SortFunc(out, func(a, b fic.UserApplication) int {
		if c := cmp.Compare(a.Service.Reference, b.Service.Reference); c != 0 {
			return c
		}
		return cmp.Compare(a.AppType, b.AppType)
	})
	return out
}

// ProgrammeType returns the last FIG 0/17 record for a service.
func (db *Database) ProgrammeType(id fic.ServiceID) (fic.ProgrammeType, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	pt, ok := db.programmeTypes[id]
	return pt, ok
}

// GlobalDefinition resolves a (service, SCIdS) pair from FIG 0/8.
func (db *Database) GlobalDefinition(id fic.ServiceID, scids uint8) (fic.GlobalDefinition, bool) {
	db.mu.RLock()
	defer db.mu.RUnlock()
	def, ok := db.globals[globalKey{service: id, scids: scids}]
	return def, ok
}

// OtherEnsembles returns the ensembles a service is also carried on.
func (db *Database) OtherEnsembles(id fic.ServiceID) []fic.EnsembleID {
	db.mu.RLock()
	defer db.mu.RUnlock()
	return slices.Clone(db.otherEnsembles[id])
}
