package rds

// decodeGroup5 implements groups 5A and 5B: transparent data channels, or
// an ODA if one is registered for this group type.
func decodeGroup5(d *Decoder, gt GroupType, g Group) {
	if d.dispatchODA(gt, g) {
		return
	}

	channel := int(g.B.Value) & 0x1F // REDESIGN FLAG: correct mask is 0x1F, not 0x11111.
	ch := &d.data.TDC[channel]

	if gt.Version == VersionA {
		ch.append(byte(g.C.Value>>8), byte(g.C.Value&0xFF), byte(g.D.Value>>8), byte(g.D.Value&0xFF))
	} else {
		ch.append(byte(g.D.Value>>8), byte(g.D.Value&0xFF))
	}
	d.data.markValid(ValidTDC)
}
