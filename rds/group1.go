package rds

// decodeGroup1 implements groups 1A and 1B: the Program Item Number from
// block D, common to both versions, plus (1A only) slow-labeling codes
// from block C.
func decodeGroup1(d *Decoder, gt GroupType, g Group) {
	day := uint8(g.D.Value>>11) & 0x1F
	if day != 0 {
		d.data.PIC.Day = day
		d.data.PIC.Hour = uint8(g.D.Value>>6) & 0x1F
		d.data.PIC.Minute = uint8(g.D.Value) & 0x3F
		d.data.markValid(ValidPIC)
	}

	if gt.Version == VersionA {
		decodeSLC(d, g.C.Value)
	}
}

func decodeSLC(d *Decoder, c uint16) {
	linkage := c&(1<<15) != 0
	variantCode := (c >> 12) & 0x7
	payload := c & 0xFFF

	variant, ok := slcVariantFromCode(variantCode)
	if !ok {
		if d.cfg.CollectStats {
			d.stats.UnknownSLCDrops++
		}
		return
	}

	d.data.SLC = SLCState{Linkage: linkage, Variant: variant, Payload: payload}
	d.data.markValid(ValidSLC)
}

func slcVariantFromCode(code uint16) (SLCVariant, bool) {
	switch code {
	case 0:
		return SLCVariantPaging, true
	case 1:
		return SLCVariantTMCID, true
	case 2:
		return SLCVariantPagingID, true
	case 3:
		return SLCVariantLanguages, true
	case 4:
		return SLCVariantBroadcasters, true
	case 5:
		return SLCVariantEWSChannelID, true
	default:
		return 0, false
	}
}
