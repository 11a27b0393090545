package fic

// ServiceID identifies a service. The short (16 bit) form leaves ECC
// zero; the long (32 bit) form used for data services carries it.
type ServiceID struct {
	CountryID uint8
	Reference uint32
	ECC       uint8
}

func serviceIDShort(b []byte) ServiceID {
	return ServiceID{
		CountryID: b[0] >> 4,
		Reference: uint32(b[0]&0x0F)<<8 | uint32(b[1]),
	}
}

func serviceIDLong(b []byte) ServiceID {
	return ServiceID{
		ECC:       b[0],
		CountryID: b[1] >> 4,
		Reference: uint32(b[1]&0x0F)<<16 | uint32(b[2])<<8 | uint32(b[3]),
	}
}

// EnsembleID identifies an ensemble (country id + 12 bit reference).
type EnsembleID struct {
	CountryID uint8
	Reference uint16
}

func ensembleID(b []byte) EnsembleID {
	return EnsembleID{
		CountryID: b[0] >> 4,
		Reference: uint16(b[0]&0x0F)<<8 | uint16(b[1]),
	}
}

// EnsembleInfo is FIG 0/0: ensemble identity plus the CIF counter.
// The counter counts mod 5000 as upper*250 + lower.
type EnsembleInfo struct {
	ID          EnsembleID
	ChangeFlags uint8
	Alarm       bool
	CIFUpper    uint8
	CIFLower    uint8
}

// SubchannelOrg is one FIG 0/1 record: the basic sub-channel layout.
// Short form signals a UEP table index, long form an EEP option, level
// and size.
type SubchannelOrg struct {
	ID           uint8
	StartAddress uint16
	IsLongForm   bool

	// short form
	TableSwitch bool
	TableIndex  uint8

	// long form
	Option    uint8
	ProtLevel uint8
	SizeCU    uint16
}

// Transport mechanism identifiers signalled in FIG 0/2.
const (
	TMIDStreamAudio = 0b00
	TMIDStreamData  = 0b01
	TMIDPacketData  = 0b11
)

// ServiceComponent is one component entry of a FIG 0/2 service record.
type ServiceComponent struct {
	Service      ServiceID
	CAID         uint8
	ComponentNum uint8

	TMID         uint8
	ASCTy        uint8  // stream audio
	DSCTy        uint8  // stream data
	SCID         uint16 // packet data
	SubchannelID uint8
	IsPrimary    bool
	CAFlag       bool
}

// PacketComponent is one 7-byte FIG 0/3 record.
type PacketComponent struct {
	SCID          uint16
	CAOrgFlag     bool
	DGFlag        bool
	DSCTy         uint8
	SubchannelID  uint8
	PacketAddress uint16
	CAOrg         uint16
}

// CAComponent is one 3-byte FIG 0/4 record.
type CAComponent struct {
	SubchannelID uint8
	CAOrg        uint16
}

// LinkID is one entry of a FIG 0/6 id list. ECC is only set by the
// second list arrangement.
type LinkID struct {
	ECC uint8
	ID  uint32
}

// ServiceLink is one FIG 0/6 linkage set. IDs is empty when the FIG
// carried no id list.
type ServiceLink struct {
	ActiveLink bool
	HardLink   bool
	ILS        bool
	LSN        uint16
	IdLQ       uint8
	IDs        []LinkID
}

// Configuration is FIG 0/7. A change in ReconfigurationCount means the
// ensemble multiplex was rearranged.
type Configuration struct {
	ServiceCount         uint8
	ReconfigurationCount uint16
}

// GlobalDefinition is one FIG 0/8 record binding a service component
// to either a sub-channel (short form) or an SCId (long form).
type GlobalDefinition struct {
	Service      ServiceID
	SCIdS        uint8
	IsLongForm   bool
	SubchannelID uint8
	SCID         uint16
}

// ECCServiceList maps an extended country code onto service ids
// (FIG 0/9 extended field).
type ECCServiceList struct {
	ECC        uint8
	ServiceIDs []uint16
}

// CountryTable is FIG 0/9.
type CountryTable struct {
	LTO                  uint8
	ECC                  uint8
	InternationalTableID uint8
	Subfields            []ECCServiceList
}

// DateTime is FIG 0/10. Seconds and Milliseconds are only meaningful
// when LongForm is set.
type DateTime struct {
	MJD          uint32
	LSI          bool
	LongForm     bool
	Hours        uint8
	Minutes      uint8
	Seconds      uint8
	Milliseconds uint16
}

// UserApplication is one application entry of a FIG 0/13 block.
type UserApplication struct {
	Service ServiceID
	SCIdS   uint8
	AppType uint16
	Data    []byte
}

// PacketFEC is one FIG 0/14 record.
type PacketFEC struct {
	SubchannelID uint8
	FEC          uint8
}

// ProgrammeType is one FIG 0/17 record.
type ProgrammeType struct {
	Service           ServiceID
	StaticDynamic     bool
	HasLanguage       bool
	HasCaption        bool
	Language          uint8
	Caption           uint8
	InternationalCode uint8
}

// Range/modulation values of FIG 0/21 frequency entries.
const (
	RMDAB   = 0b0000
	RMDRM   = 0b1000
	RMFMRDS = 0b0110
	RMAMSS  = 0b1110
)

// FrequencyInfo is one frequency entry of a FIG 0/21 FI list,
// flattened. For RMDAB the target is Ensemble and FrequencyHz is
// raw*16 kHz; for RMDRM the id is an RDS PI code and FrequencyHz is
// 87.5 MHz + raw*100 kHz; for the RDS range/modulation values the raw
// 16 bit frequency field is kept as is.
type FrequencyInfo struct {
	RM         uint8
	Continuity bool

	Ensemble     EnsembleID
	RDSPI        uint16
	OtherID      uint8
	ControlField uint8

	FrequencyHz  uint32
	RawFrequency uint16
}

// OtherEnsembleService is one FIG 0/24 record: a service carried on
// other ensembles.
type OtherEnsembleService struct {
	Service   ServiceID
	CAID      uint8
	Ensembles []EnsembleID
}

// Sink receives parsed signalling records. The ensemble database is
// the production implementation; parsing never calls back into the
// processor, so implementations may synchronously update shared state.
type Sink interface {
	OnEnsembleInfo(EnsembleInfo)
	OnSubchannelOrg(SubchannelOrg)
	OnServiceComponent(ServiceComponent)
	OnPacketComponent(PacketComponent)
	OnCAComponent(CAComponent)
	OnServiceLink(ServiceLink)
	OnConfiguration(Configuration)
	OnGlobalDefinition(GlobalDefinition)
	OnCountryTable(CountryTable)
	OnDateTime(DateTime)
	OnUserApplication(UserApplication)
	OnPacketFEC(PacketFEC)
	OnProgrammeType(ProgrammeType)
	OnFrequencyInfo(FrequencyInfo)
	OnOtherEnsembleService(OtherEnsembleService)
}
