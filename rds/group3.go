package rds

// decodeGroup3 implements groups 3A and 3B: open-data-application
// registration. 3A registers or updates an (app_id -> group_type)
// mapping; 3B is itself dispatched like any other ODA-passthrough group.
func decodeGroup3(d *Decoder, gt GroupType, g Group) {
	if gt.Version == VersionB {
		d.dispatchODA(gt, g)
		return
	}

	if g.D.Errors != BLERNone {
		return
	}
	appID := g.D.Value
	code := int(g.B.Value>>1) & 0xF
	version := VersionA
	if g.B.Value&1 != 0 {
		version = VersionB
	}
	registerODA(d.data, appID, GroupType{Code: code, Version: version})
}
