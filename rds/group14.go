package rds

// decodeGroup14 implements groups 14A and 14B: Enhanced Other Networks.
// 14A carries one of several variant-coded payloads about another
// station; 14B carries that station's PI code plus its own TP/TA flags.
func decodeGroup14(d *Decoder, gt GroupType, g Group) {
	if gt.Version == VersionB {
		if g.D.Errors.acceptable(d.cfg.BlockCDThreshold) {
			d.data.EON.PI = g.D.Value
			d.data.markValid(ValidEON)
		}
		d.data.EON.TP = g.B.Value&(1<<3) != 0
		d.data.EON.TA = g.B.Value&(1<<2) != 0
		d.data.markValid(ValidEON)
		return
	}

	variant := int(g.B.Value) & 0xF
	switch {
	case variant <= 3:
		addr := variant * 2
		d.data.EON.PS[addr] = byte(g.C.Value >> 8)
		d.data.EON.PS[addr+1] = byte(g.C.Value & 0xFF)
		d.data.markValid(ValidEON)
	case variant == 4:
		d.data.EON.AF.insertUnique(Frequency{Band: BandUHF, Freq: afCodeToFreq(int(g.C.Value>>8), BandUHF)})
		d.data.EON.AF.insertUnique(Frequency{Band: BandUHF, Freq: afCodeToFreq(int(g.C.Value&0xFF), BandUHF)})
		d.data.markValid(ValidEON)
	case variant == 13:
		// REDESIGN FLAG: the source computed `pty = C > 11` (a boolean
		// comparison); the spec calls for the top five bits of C.
		d.data.EON.PTY = uint8(g.C.Value>>11) & 0x1F
		d.data.EON.TA = g.C.Value&1 != 0
		d.data.markValid(ValidEON)
	default:
		// Reserved variant codes are no-ops in this core.
	}
}
