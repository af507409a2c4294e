package rds

// ODADecodeFunc is invoked synchronously, inline, whenever a group arrives
// whose (code, version) matches a registered ODA mapping. It must not
// reenter the decoder.
type ODADecodeFunc func(appID uint16, data *DataRecord, g Group, gt GroupType, userData interface{})

// ODAClearFunc is invoked from Reset.
type ODAClearFunc func(userData interface{})

// registerODA stores or updates the (app_id -> group_type) mapping from a
// group-3A registration. An app_id of 0 is never stored; if the pool is
// full and app_id is new, the registration is silently dropped.
func registerODA(dr *DataRecord, appID uint16, gt GroupType) {
	if appID == 0 {
		return
	}
	for i := 0; i < dr.ODACnt; i++ {
		if dr.ODA[i].AppID == appID {
			dr.ODA[i].GroupType = gt
			return
		}
	}
	if dr.ODACnt >= odaPoolSize {
		return
	}
	dr.ODA[dr.ODACnt] = ODAEntry{AppID: appID, GroupType: gt}
	dr.ODACnt++
	dr.markValid(ValidODA)
}

// findODA returns the index of the registered entry whose GroupType
// matches gt, or -1.
func findODA(dr *DataRecord, gt GroupType) int {
	for i := 0; i < dr.ODACnt; i++ {
		if dr.ODA[i].GroupType == gt {
			return i
		}
	}
	return -1
}

// dispatchODA looks up gt in the registry and, on a match, invokes the
// decode callback and bumps the entry's packet counter. Returns true if a
// registered handler consumed the group.
func (d *Decoder) dispatchODA(gt GroupType, g Group) bool {
	idx := findODA(d.data, gt)
	if idx < 0 {
		return false
	}
	d.data.ODA[idx].PktCount++
	if d.odaDecode != nil {
		d.odaDecode(d.data.ODA[idx].AppID, d.data, g, gt, d.userData)
	}
	if d.cfg.CollectStats {
		d.stats.ODADispatched++
	}
	return true
}
