package rds

// decodeGroup9 implements groups 9A and 9B: 9A stashes the raw emergency
// warning system payload; 9B is an ODA-passthrough group.
func decodeGroup9(d *Decoder, gt GroupType, g Group) {
	if gt.Version == VersionB {
		d.dispatchODA(gt, g)
		return
	}
	d.data.EWS = EWSState{B: uint8(g.B.Value) & 0x1F, C: g.C.Value, D: g.D.Value}
	d.data.markValid(ValidEWS)
}
