package rds

// decodeGroup10 implements groups 10A and 10B: 10A carries the 8-char
// Program Type Name in two 4-char halves, selected by a segment-address
// bit; an A/B flag transition wipes the whole buffer before the new half
// is written. 10B is an ODA-passthrough group.
func decodeGroup10(d *Decoder, gt GroupType, g Group) {
	if gt.Version == VersionB {
		d.dispatchODA(gt, g)
		return
	}

	abFlag := VersionA
	if g.B.Value&(1<<4) != 0 {
		abFlag = VersionB
	}
	if d.data.PTYN.hasPrev && d.data.PTYN.abFlag != abFlag {
		d.data.PTYN.Display = [8]byte{}
	}
	d.data.PTYN.abFlag = abFlag
	d.data.PTYN.hasPrev = true

	segment := int(g.B.Value & 1)
	base := segment * 4
	d.data.PTYN.Display[base] = byte(g.C.Value >> 8)
	d.data.PTYN.Display[base+1] = byte(g.C.Value & 0xFF)
	d.data.PTYN.Display[base+2] = byte(g.D.Value >> 8)
	d.data.PTYN.Display[base+3] = byte(g.D.Value & 0xFF)

	d.data.markValid(ValidPTYN)
}
