package rds

// Decoder owns configuration and the ODA callback binding, and dispatches
// each incoming Group to the group-type decoder that understands it. It
// mutates a caller-owned DataRecord. Not thread-safe by design: callers
// serialize (see spec §5).
type Decoder struct {
	cfg  Config
	data *DataRecord

	odaDecode ODADecodeFunc
	odaClear  ODAClearFunc
	userData  interface{}

	stats Stats
}

// NewDecoder constructs a decoder bound to the given configuration and
// caller-owned data record. The caller must keep data alive for the
// decoder's lifetime. Mirrors the teacher's modesInitConfig()-then-Init()
// two-step, collapsed into one constructor since this decoder carries no
// external resource (no cache, no goroutine) to allocate separately.
func NewDecoder(cfg Config, data *DataRecord) *Decoder {
	return &Decoder{cfg: cfg, data: data}
}

// SetODACallbacks binds the ODA decode/clear callbacks and the opaque
// user_data passed to both.
func (d *Decoder) SetODACallbacks(decode ODADecodeFunc, clear ODAClearFunc, userData interface{}) {
	d.odaDecode = decode
	d.odaClear = clear
	d.userData = userData
}

// Stats returns the decoder's debug packet counters. Only updated when
// Config.CollectStats is set.
func (d *Decoder) Stats() Stats { return d.stats }

// Reset zeros the data record, re-arms the "no current AF table" sentinel,
// and invokes the registered ODA-clear callback if any.
func (d *Decoder) Reset() {
	d.data.Reset()
	if d.odaClear != nil {
		d.odaClear(d.userData)
	}
}

// Close releases the decoder. The Go runtime reclaims the handle via GC;
// this exists only for parity with the spec's create/delete pair.
func (d *Decoder) Close() {}

// Decode applies one Group to the data record per spec §4.1:
//  1. Block A acceptable -> PI code.
//  2. Block B unacceptable -> abort the whole group.
//  3. Extract the group type.
//  4. B-version groups: a less-noisy block C redundantly carries PI.
//  5. TP and PTY are always updated from block B.
//  6. Dispatch to the group-type-specific decoder.
func (d *Decoder) Decode(g Group) {
	if g.A.Errors.acceptable(d.cfg.BlockAThreshold) {
		d.data.PICode = g.A.Value
		d.data.markValid(ValidPICode)
	}

	if !g.B.Errors.acceptable(d.cfg.BlockBThreshold) {
		if d.cfg.CollectStats {
			d.stats.BlockBRejected++
		}
		return
	}

	gt := extractGroupType(g.B.Value)
	if d.cfg.CollectStats {
		d.stats.countGroup(gt)
	}

	if gt.Version == VersionB && g.C.Errors.acceptable(d.cfg.BlockCDThreshold) && g.C.Errors < g.B.Errors {
		d.data.PICode = g.C.Value
		d.data.markValid(ValidPICode)
	}

	d.data.TPCode = g.B.Value&(1<<10) != 0
	d.data.PTY = uint8(g.B.Value>>5) & 0x1F
	d.data.markValid(ValidTP)
	d.data.markValid(ValidPTY)

	if fn := groupDecoders[gt.Code]; fn != nil {
		fn(d, gt, g)
	}
}

// groupDecoders is the fixed dispatch table indexed by group type code
// 0..15, per spec §9's "pool + index over pointers" guidance.
var groupDecoders = [16]func(d *Decoder, gt GroupType, g Group){
	0:  decodeGroup0,
	1:  decodeGroup1,
	2:  decodeGroup2,
	3:  decodeGroup3,
	4:  decodeGroup4,
	5:  decodeGroup5,
	6:  decodeGroupODAOnly,
	7:  decodeGroupODAOnly,
	8:  decodeGroupODAOnly,
	9:  decodeGroup9,
	10: decodeGroup10,
	11: decodeGroupODAOnly,
	12: decodeGroupODAOnly,
	13: decodeGroupODAOnly,
	14: decodeGroup14,
	15: decodeGroup15,
}

// decodeGroupODAOnly handles every group type whose entire behavior in
// this core is "dispatch if an ODA registered for it, otherwise no-op":
// groups 6, 7, 8, 11, 12, 13 (both versions).
func decodeGroupODAOnly(d *Decoder, gt GroupType, g Group) {
	d.dispatchODA(gt, g)
}
