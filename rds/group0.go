package rds

// decodeGroup0 implements groups 0A and 0B: basic tuning and switching
// information. Both versions decode TA/MS from block B and two PS
// characters from block D; 0A additionally feeds block C into the AF
// table decoder.
func decodeGroup0(d *Decoder, gt GroupType, g Group) {
	d.data.TACode = g.B.Value&(1<<4) != 0
	d.data.Music = g.B.Value&(1<<3) != 0
	d.data.markValid(ValidTA)
	d.data.markValid(ValidMusic)

	pairIdx := int(g.B.Value&0b11) * 2
	updatePSPair(d, pairIdx, g.D.Value)

	if gt.Version == VersionA && g.C.Errors == BLERNone {
		if d.data.AF.DecodeFreqGroupBlock(g.C.Value) {
			d.data.markValid(ValidAF)
		} else if d.cfg.CollectStats {
			d.stats.AFBlocksDropped++
		}
	}
}

// updatePSPair writes the two PS characters packed into block D at
// addresses pairIdx and pairIdx+1, routing through the simple or advanced
// validator depending on configuration, and commits Display once all 8
// positions have converged (advanced mode only).
func updatePSPair(d *Decoder, pairIdx int, dValue uint16) {
	c0 := byte(dValue >> 8)
	c1 := byte(dValue & 0xFF)

	if !d.cfg.AdvancedPSDecoding {
		psWriteSimple(&d.data.PS, pairIdx, c0)
		psWriteSimple(&d.data.PS, pairIdx+1, c1)
		d.data.markValid(ValidPS)
		return
	}

	psWriteAdvanced(&d.data.PS, pairIdx, c0)
	psWriteAdvanced(&d.data.PS, pairIdx+1, c1)
	if psConverged(&d.data.PS) {
		psCommitDisplay(&d.data.PS)
		d.data.markValid(ValidPS)
	}
}
