package fic

// FIG parsing. Every parser is defensive: a declared length that would
// overflow the remaining buffer abandons the offending FIG without side
// effects, records already published from the same FIB stay valid.

// figHeader0 carries the flags of a type 0 FIG header byte.
type figHeader0 struct {
	cn bool
	oe bool
	pd bool
}

// ProcessFIG walks 30 FIB data bytes as a concatenation of FIGs. A
// header byte of 0xFF or a type 7 FIG ends the walk; the reserved types
// 3, 4 and 5 abort it.
func (p *Processor) ProcessFIG(buf []byte, cifIndex int) {
	cur := 0
	for cur < len(buf) {
		header := buf[cur]
		if header == 0xFF {
			return
		}

		figType := header >> 5
		dataLen := int(header & 0x1F)
		if cur+1+dataLen > len(buf) {
			p.log.Debug("fig length overflows fib", "cif", cifIndex,
				"type", figType, "len", dataLen, "remain", len(buf)-cur-1)
			return
		}
		fig := buf[cur+1 : cur+1+dataLen]
		cur += 1 + dataLen

		switch figType {
		case 0:
			p.parseType0(fig, cifIndex)
		case 1:
			p.parseType1(fig, cifIndex)
		case 2:
			p.parseType2(fig, cifIndex)
		case 6:
			p.parseType6(fig, cifIndex)
		case 7:
			return
		default: // 3, 4, 5 reserved
			p.log.Debug("reserved fig type", "cif", cifIndex, "type", figType)
			return
		}
	}
}

func (p *Processor) parseType0(fig []byte, cifIndex int) {
	if len(fig) < 1 {
		return
	}
	header := figHeader0{
		cn: fig[0]&0x80 != 0,
		oe: fig[0]&0x40 != 0,
		pd: fig[0]&0x20 != 0,
	}
	ext := fig[0] & 0x1F
	field := fig[1:]

	switch ext {
	case 0:
		p.parseExt0(field, cifIndex)
	case 1:
		p.parseExt1(field, cifIndex)
	case 2:
		p.parseExt2(header, field, cifIndex)
	case 3:
		p.parseExt3(field, cifIndex)
	case 4:
		p.parseExt4(field, cifIndex)
	case 6:
		p.parseExt6(header, field, cifIndex)
	case 7:
		p.parseExt7(field, cifIndex)
	case 8:
		p.parseExt8(header, field, cifIndex)
	case 9:
		p.parseExt9(field, cifIndex)
	case 10:
		p.parseExt10(field, cifIndex)
	case 13:
		p.parseExt13(header, field, cifIndex)
	case 14:
		p.parseExt14(field)
	case 17:
		p.parseExt17(field, cifIndex)
	case 21:
		p.parseExt21(field, cifIndex)
	case 24:
		p.parseExt24(header, field, cifIndex)
	default:
		p.log.Debug("unhandled fig 0 extension", "cif", cifIndex, "ext", ext)
	}
}

// Types 1 and 2 (labels) are handled to header level here; the label
// payloads are aggregated elsewhere once the character set is known.
func (p *Processor) parseType1(fig []byte, cifIndex int) {
	if len(fig) < 1 {
		return
	}
	charset := fig[0] >> 4
	ext := fig[0] & 0x07
	p.log.Debug("fig 1", "cif", cifIndex, "charset", charset, "ext", ext)
}

func (p *Processor) parseType2(fig []byte, cifIndex int) {
	if len(fig) < 1 {
		return
	}
	toggle := fig[0]&0x80 != 0
	segment := (fig[0] & 0x70) >> 4
	ext := fig[0] & 0x07
	p.log.Debug("fig 2", "cif", cifIndex, "toggle", toggle, "segment", segment, "ext", ext)
}

func (p *Processor) parseType6(fig []byte, cifIndex int) {
	if len(fig) < 1 {
		return
	}
	lef := fig[0]&0x08 != 0
	caSysID := fig[0] & 0x07
	p.log.Debug("fig 6", "cif", cifIndex, "lef", lef, "ca_sys_id", caSysID)
}

// Ensemble information: identity, change/alarm flags and CIF counter.
func (p *Processor) parseExt0(b []byte, cifIndex int) {
	if len(b) != 4 {
		p.log.Debug("fig 0/0 bad length", "cif", cifIndex, "len", len(b))
		return
	}
	p.sink.OnEnsembleInfo(EnsembleInfo{
		ID:          ensembleID(b),
		ChangeFlags: b[2] >> 6,
		Alarm:       b[2]&0x20 != 0,
		CIFUpper:    b[2] & 0x1F,
		CIFLower:    b[3],
	})
}

// Sub-channel organisation for stream mode.
func (p *Processor) parseExt1(b []byte, cifIndex int) {
	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if len(rec) < 3 {
			p.log.Debug("fig 0/1 truncated record", "cif", cifIndex, "at", cur)
			return
		}

		sub := SubchannelOrg{
			ID:           rec[0] >> 2,
			StartAddress: uint16(rec[0]&0x03)<<8 | uint16(rec[1]),
			IsLongForm:   rec[2]&0x80 != 0,
		}
		if !sub.IsLongForm {
			sub.TableSwitch = rec[2]&0x40 != 0
			sub.TableIndex = rec[2] & 0x3F
			cur += 3
		} else {
			if len(rec) < 4 {
				p.log.Debug("fig 0/1 long form truncated", "cif", cifIndex)
				return
			}
			sub.Option = (rec[2] & 0x70) >> 4
			sub.ProtLevel = (rec[2] & 0x0C) >> 2
			sub.SizeCU = uint16(rec[2]&0x03)<<8 | uint16(rec[3])
			cur += 4
		}
		p.sink.OnSubchannelOrg(sub)
	}
}

// Service to component mapping for stream mode.
func (p *Processor) parseExt2(h figHeader0, b []byte, cifIndex int) {
	sidLen := 2
	if h.pd {
		sidLen = 4
	}
	headerLen := sidLen + 1

	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if headerLen > len(rec) {
			p.log.Debug("fig 0/2 truncated service header", "cif", cifIndex)
			return
		}

		var sid ServiceID
		if h.pd {
			sid = serviceIDLong(rec)
		} else {
			sid = serviceIDShort(rec)
		}
		caid := (rec[sidLen] & 0x70) >> 4
		numComponents := int(rec[sidLen] & 0x0F)

		total := headerLen + 2*numComponents
		if total > len(rec) {
			p.log.Debug("fig 0/2 truncated component list", "cif", cifIndex)
			return
		}

		for i := 0; i < numComponents; i++ {
			b0 := rec[headerLen+2*i]
			b1 := rec[headerLen+2*i+1]

			sc := ServiceComponent{
				Service:      sid,
				CAID:         caid,
				ComponentNum: uint8(i),
				TMID:         b0 >> 6,
				IsPrimary:    b1&0x02 != 0,
				CAFlag:       b1&0x01 != 0,
			}
			switch sc.TMID {
			case TMIDStreamAudio:
				sc.ASCTy = b0 & 0x3F
				sc.SubchannelID = b1 >> 2
			case TMIDStreamData:
				sc.DSCTy = b0 & 0x3F
				sc.SubchannelID = b1 >> 2
			case TMIDPacketData:
				sc.SCID = uint16(b0&0x3F)<<6 | uint16(b1>>2)
			default:
				p.log.Debug("fig 0/2 reserved tmid", "cif", cifIndex, "tmid", sc.TMID)
				return
			}
			p.sink.OnServiceComponent(sc)
		}

		cur += total
	}
}

// Packet-mode service components, fixed 7-byte records.
func (p *Processor) parseExt3(b []byte, cifIndex int) {
	const recLen = 7
	if len(b)%recLen != 0 {
		p.log.Debug("fig 0/3 length not a record multiple", "cif", cifIndex, "len", len(b))
		return
	}
	for i := 0; i < len(b); i += recLen {
		rec := b[i : i+recLen]
		p.sink.OnPacketComponent(PacketComponent{
			SCID:          uint16(rec[0])<<4 | uint16(rec[1]>>4),
			CAOrgFlag:     rec[1]&0x01 != 0,
			DGFlag:        rec[2]&0x80 != 0,
			DSCTy:         rec[2] & 0x3F,
			SubchannelID:  rec[3] >> 2,
			PacketAddress: uint16(rec[3]&0x03)<<8 | uint16(rec[4]),
			CAOrg:         uint16(rec[5])<<8 | uint16(rec[6]),
		})
	}
}

// Conditional access in stream mode, fixed 3-byte records.
func (p *Processor) parseExt4(b []byte, cifIndex int) {
	const recLen = 3
	if len(b)%recLen != 0 {
		p.log.Debug("fig 0/4 length not a record multiple", "cif", cifIndex, "len", len(b))
		return
	}
	for i := 0; i < len(b); i += recLen {
		rec := b[i : i+recLen]
		p.sink.OnCAComponent(CAComponent{
			SubchannelID: rec[0] & 0x3F,
			CAOrg:        uint16(rec[1])<<8 | uint16(rec[2]),
		})
	}
}

// Service linking. Three id-list arrangements depending on pd and ILS.
func (p *Processor) parseExt6(h figHeader0, b []byte, cifIndex int) {
	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if len(rec) < 2 {
			p.log.Debug("fig 0/6 truncated header", "cif", cifIndex)
			return
		}

		link := ServiceLink{
			ActiveLink: rec[0]&0x40 != 0,
			HardLink:   rec[0]&0x20 != 0,
			ILS:        rec[0]&0x10 != 0,
			LSN:        uint16(rec[0]&0x0F)<<8 | uint16(rec[1]),
		}

		if rec[0]&0x80 == 0 { // no id list
			p.sink.OnServiceLink(link)
			cur += 2
			continue
		}

		if len(rec) < 3 {
			p.log.Debug("fig 0/6 truncated list header", "cif", cifIndex)
			return
		}
		link.IdLQ = (rec[2] & 0x60) >> 5
		numIDs := int(rec[2] & 0x0F)
		list := rec[3:]

		var entryLen int
		switch {
		case !h.pd && !link.ILS: // 16 bit ids
			entryLen = 2
		case !h.pd && link.ILS: // ecc + 16 bit id
			entryLen = 3
		default: // 32 bit ids
			entryLen = 4
		}
		if entryLen*numIDs > len(list) {
			p.log.Debug("fig 0/6 truncated id list", "cif", cifIndex,
				"need", entryLen*numIDs, "have", len(list))
			return
		}

		link.IDs = make([]LinkID, 0, numIDs)
		for i := 0; i < numIDs; i++ {
			e := list[i*entryLen:]
			switch entryLen {
			case 2:
				link.IDs = append(link.IDs, LinkID{ID: uint32(e[0])<<8 | uint32(e[1])})
			case 3:
				link.IDs = append(link.IDs, LinkID{ECC: e[0], ID: uint32(e[1])<<8 | uint32(e[2])})
			case 4:
				link.IDs = append(link.IDs, LinkID{
					ID: uint32(e[0])<<24 | uint32(e[1])<<16 | uint32(e[2])<<8 | uint32(e[3]),
				})
			}
		}
		p.sink.OnServiceLink(link)
		cur += 3 + entryLen*numIDs
	}
}

// Ensemble configuration counters, length exactly 2.
func (p *Processor) parseExt7(b []byte, cifIndex int) {
	if len(b) != 2 {
		p.log.Debug("fig 0/7 bad length", "cif", cifIndex, "len", len(b))
		return
	}
	p.sink.OnConfiguration(Configuration{
		ServiceCount:         b[0] >> 2,
		ReconfigurationCount: uint16(b[0]&0x03)<<8 | uint16(b[1]),
	})
}

// Service component global definition.
func (p *Processor) parseExt8(h figHeader0, b []byte, cifIndex int) {
	sidLen := 2
	if h.pd {
		sidLen = 4
	}
	headerLen := sidLen + 1

	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if headerLen+1 > len(rec) {
			p.log.Debug("fig 0/8 truncated header", "cif", cifIndex)
			return
		}

		var sid ServiceID
		if h.pd {
			sid = serviceIDLong(rec)
		} else {
			sid = serviceIDShort(rec)
		}
		extFlag := rec[sidLen]&0x80 != 0
		scids := rec[sidLen] & 0x0F

		data := rec[headerLen:]
		isLong := data[0]&0x80 != 0
		dataLen := 1
		if isLong {
			dataLen = 2
		}
		total := headerLen + dataLen
		if extFlag {
			total++ // trailing rfa byte
		}
		if total > len(rec) {
			p.log.Debug("fig 0/8 truncated record", "cif", cifIndex)
			return
		}

		def := GlobalDefinition{Service: sid, SCIdS: scids, IsLongForm: isLong}
		if isLong {
			def.SCID = uint16(data[0]&0x0F)<<8 | uint16(data[1])
		} else {
			def.SubchannelID = data[0] & 0x3F
		}
		p.sink.OnGlobalDefinition(def)

		cur += total
	}
}

// Country, LTO and international table.
func (p *Processor) parseExt9(b []byte, cifIndex int) {
	if len(b) < 3 {
		p.log.Debug("fig 0/9 too short", "cif", cifIndex, "len", len(b))
		return
	}
	extFlag := b[0]&0x80 != 0
	ct := CountryTable{
		LTO:                  b[0] & 0x3F,
		ECC:                  b[1],
		InternationalTableID: b[2],
	}

	ext := b[3:]
	if !extFlag {
		if len(ext) > 0 {
			p.log.Debug("fig 0/9 trailing bytes without ext flag", "cif", cifIndex)
			return
		}
		p.sink.OnCountryTable(ct)
		return
	}
	if len(ext) == 0 {
		p.log.Debug("fig 0/9 ext flag without extended field", "cif", cifIndex)
		return
	}

	cur := 0
	for cur < len(ext) {
		sub := ext[cur:]
		if len(sub) < 2 {
			p.log.Debug("fig 0/9 truncated subfield", "cif", cifIndex)
			return
		}
		numServices := int(sub[0] >> 6)
		list := ECCServiceList{ECC: sub[1]}
		if 2+2*numServices > len(sub) {
			p.log.Debug("fig 0/9 truncated service list", "cif", cifIndex)
			return
		}
		for i := 0; i < numServices; i++ {
			e := sub[2+2*i:]
			list.ServiceIDs = append(list.ServiceIDs, uint16(e[0])<<8|uint16(e[1]))
		}
		ct.Subfields = append(ct.Subfields, list)
		cur += 2 + 2*numServices
	}
	p.sink.OnCountryTable(ct)
}

// Date and time.
func (p *Processor) parseExt10(b []byte, cifIndex int) {
	if len(b) < 4 {
		p.log.Debug("fig 0/10 too short", "cif", cifIndex, "len", len(b))
		return
	}
	dt := DateTime{
		MJD:      uint32(b[0]&0x7F)<<10 | uint32(b[1])<<2 | uint32(b[2]>>6),
		LSI:      b[2]&0x20 != 0,
		LongForm: b[2]&0x08 != 0,
		Hours:    (b[2]&0x07)<<2 | b[3]>>6,
		Minutes:  b[3] & 0x3F,
	}
	if dt.LongForm {
		if len(b) < 6 {
			p.log.Debug("fig 0/10 long form too short", "cif", cifIndex, "len", len(b))
			return
		}
		dt.Seconds = b[4] >> 2
		dt.Milliseconds = uint16(b[4]&0x03)<<8 | uint16(b[5])
	}
	p.sink.OnDateTime(dt)
}

// User application information.
func (p *Processor) parseExt13(h figHeader0, b []byte, cifIndex int) {
	sidLen := 2
	if h.pd {
		sidLen = 4
	}
	headerLen := sidLen + 1

	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if headerLen > len(rec) {
			p.log.Debug("fig 0/13 truncated header", "cif", cifIndex)
			return
		}

		var sid ServiceID
		if h.pd {
			sid = serviceIDLong(rec)
		} else {
			sid = serviceIDShort(rec)
		}
		scids := rec[sidLen] >> 4
		numApps := int(rec[sidLen] & 0x0F)

		apps := rec[headerLen:]
		appCur := 0
		for i := 0; i < numApps; i++ {
			app := apps[appCur:]
			if len(app) < 2 {
				p.log.Debug("fig 0/13 truncated app header", "cif", cifIndex)
				return
			}
			appType := uint16(app[0])<<3 | uint16(app[1]>>5)
			dataLen := int(app[1] & 0x1F)
			if 2+dataLen > len(app) {
				p.log.Debug("fig 0/13 truncated app data", "cif", cifIndex)
				return
			}
			p.sink.OnUserApplication(UserApplication{
				Service: sid,
				SCIdS:   scids,
				AppType: appType,
				Data:    append([]byte(nil), app[2:2+dataLen]...),
			})
			appCur += 2 + dataLen
		}

		cur += headerLen + appCur
	}
}

// Packet-mode FEC information, one byte per sub-channel.
func (p *Processor) parseExt14(b []byte) {
	for _, v := range b {
		p.sink.OnPacketFEC(PacketFEC{
			SubchannelID: v >> 2,
			FEC:          v & 0x03,
		})
	}
}

// Programme type. Language and closed-caption bytes are optional and
// extend the record beyond its 4-byte minimum.
func (p *Processor) parseExt17(b []byte, cifIndex int) {
	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if len(rec) < 4 {
			p.log.Debug("fig 0/17 truncated record", "cif", cifIndex)
			return
		}

		pt := ProgrammeType{
			Service:       serviceIDShort(rec),
			StaticDynamic: rec[2]&0x80 != 0,
			HasLanguage:   rec[2]&0x20 != 0,
			HasCaption:    rec[2]&0x10 != 0,
		}

		recLen := 4
		if pt.HasLanguage {
			recLen++
		}
		if pt.HasCaption {
			recLen++
		}
		if recLen > len(rec) {
			p.log.Debug("fig 0/17 truncated optional fields", "cif", cifIndex)
			return
		}

		idx := 3
		if pt.HasLanguage {
			pt.Language = rec[idx]
			idx++
		}
		if pt.HasCaption {
			pt.Caption = rec[idx]
			idx++
		}
		pt.InternationalCode = rec[idx] & 0x1F
		p.sink.OnProgrammeType(pt)

		cur += recLen
	}
}

// Frequency information: blocks of FI lists with RM-tagged entries.
func (p *Processor) parseExt21(b []byte, cifIndex int) {
	cur := 0
	for cur < len(b) {
		block := b[cur:]
		if len(block) < 2 {
			p.log.Debug("fig 0/21 truncated block header", "cif", cifIndex)
			return
		}
		fiLen := int(block[1] & 0x1F)
		if 2+fiLen > len(block) {
			p.log.Debug("fig 0/21 fi list overflows block", "cif", cifIndex)
			return
		}
		fiLists := block[2 : 2+fiLen]

		fiCur := 0
		for fiCur < fiLen {
			fi := fiLists[fiCur:]
			if len(fi) < 3 {
				p.log.Debug("fig 0/21 truncated fi header", "cif", cifIndex)
				return
			}
			id := uint16(fi[0])<<8 | uint16(fi[1])
			rm := fi[2] >> 4
			continuity := fi[2]&0x08 != 0
			freqLen := int(fi[2] & 0x07)
			if 3+freqLen > len(fi) {
				p.log.Debug("fig 0/21 truncated frequency list", "cif", cifIndex)
				return
			}
			freqs := fi[3 : 3+freqLen]

			if !p.parseFrequencyList(rm, continuity, id, freqs, cifIndex) {
				return
			}
			fiCur += 3 + freqLen
		}

		cur += 2 + fiLen
	}
}

func (p *Processor) parseFrequencyList(rm uint8, continuity bool, id uint16, freqs []byte, cifIndex int) bool {
	switch rm {
	case RMDAB:
		if len(freqs)%3 != 0 {
			p.log.Debug("fig 0/21 dab list not a multiple of 3", "cif", cifIndex, "len", len(freqs))
			return false
		}
		for i := 0; i < len(freqs); i += 3 {
			e := freqs[i : i+3]
			raw := uint32(e[0]&0x07)<<16 | uint32(e[1])<<8 | uint32(e[2])
			p.sink.OnFrequencyInfo(FrequencyInfo{
				RM:         rm,
				Continuity: continuity,
				Ensemble: EnsembleID{
					CountryID: uint8(id >> 12),
					Reference: id & 0x0FFF,
				},
				ControlField: e[0] >> 3,
				FrequencyHz:  raw * 16_000,
			})
		}
	case RMDRM:
		for _, raw := range freqs {
			p.sink.OnFrequencyInfo(FrequencyInfo{
				RM:          rm,
				Continuity:  continuity,
				RDSPI:       id,
				FrequencyHz: 87_500_000 + uint32(raw)*100_000,
			})
		}
	case RMFMRDS, RMAMSS:
		if len(freqs)%3 != 0 {
			p.log.Debug("fig 0/21 rds list not a multiple of 3", "cif", cifIndex, "len", len(freqs))
			return false
		}
		for i := 0; i < len(freqs); i += 3 {
			e := freqs[i : i+3]
			p.sink.OnFrequencyInfo(FrequencyInfo{
				RM:           rm,
				Continuity:   continuity,
				RDSPI:        id,
				OtherID:      e[0],
				RawFrequency: uint16(e[1])<<8 | uint16(e[2]),
			})
		}
	default:
		p.log.Debug("fig 0/21 unknown rm", "cif", cifIndex, "rm", rm)
		return false
	}
	return true
}

// Services carried on other ensembles.
func (p *Processor) parseExt24(h figHeader0, b []byte, cifIndex int) {
	sidLen := 2
	if h.pd {
		sidLen = 4
	}
	headerLen := sidLen + 1

	cur := 0
	for cur < len(b) {
		rec := b[cur:]
		if headerLen > len(rec) {
			p.log.Debug("fig 0/24 truncated header", "cif", cifIndex)
			return
		}

		var sid ServiceID
		if h.pd {
			sid = serviceIDLong(rec)
		} else {
			sid = serviceIDShort(rec)
		}
		caid := (rec[sidLen] & 0x70) >> 4
		numEIDs := int(rec[sidLen] & 0x0F)

		if headerLen+2*numEIDs > len(rec) {
			p.log.Debug("fig 0/24 truncated ensemble list", "cif", cifIndex)
			return
		}

		oe := OtherEnsembleService{Service: sid, CAID: caid}
		for i := 0; i < numEIDs; i++ {
			oe.Ensembles = append(oe.Ensembles, ensembleID(rec[headerLen+2*i:]))
		}
		p.sink.OnOtherEnsembleService(oe)

		cur += headerLen + 2*numEIDs
	}
}
