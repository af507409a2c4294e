package rds

// decodeGroup15 implements groups 15A and 15B. 15A is phased out and is a
// no-op in this core. 15B is "fast basic tuning": it carries only the
// Traffic Announcement flag, decoded the same way as in group 0A/0B.
func decodeGroup15(d *Decoder, gt GroupType, g Group) {
	if gt.Version == VersionA {
		return
	}
	d.data.TACode = g.B.Value&(1<<4) != 0
	d.data.markValid(ValidTA)
}
