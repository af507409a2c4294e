package rds

import "testing"

func newTestDecoder(advanced bool) (*Decoder, *DataRecord) {
	dr := NewDataRecord()
	cfg := DefaultConfig()
	cfg.AdvancedPSDecoding = advanced
	return NewDecoder(cfg, dr), dr
}

// groupB builds block B's 16-bit value from a group type and the flag
// bits below bit 11.
func groupB(code int, version Version, low11 uint16) uint16 {
	v := uint16(code&0xF) << 12
	if version == VersionB {
		v |= 1 << 11
	}
	return v | (low11 & 0x7FF)
}

func TestBasicPI(t *testing.T) {
	d, dr := newTestDecoder(true)
	g := Group{
		A: Block{Value: 0x1234, Errors: BLERNone},
		B: Block{Value: groupB(0, VersionA, 0), Errors: BLER1To2},
		C: Block{Errors: BLER6Plus},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(g)

	if dr.PICode != 0x1234 {
		t.Fatalf("PICode = %#x, want 0x1234", dr.PICode)
	}
	if !dr.ValidValues.Has(ValidPICode) {
		t.Fatal("PI_CODE not marked valid")
	}
	if !dr.ValidValues.Has(ValidTP) || !dr.ValidValues.Has(ValidPTY) {
		t.Fatal("TP/PTY not marked valid")
	}
}

func TestPIViaBVersionRedundancy(t *testing.T) {
	d, dr := newTestDecoder(true)
	g := Group{
		A: Block{Value: 0x0001, Errors: BLER6Plus},
		B: Block{Value: groupB(0, VersionB, 0), Errors: BLER1To2},
		C: Block{Value: 0xABCD, Errors: BLERNone},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(g)

	if dr.PICode != 0xABCD {
		t.Fatalf("PICode = %#x, want 0xABCD", dr.PICode)
	}
}

func feedPS(d *Decoder, text string) {
	if len(text) != 8 {
		panic("PS text must be 8 chars")
	}
	for pair := 0; pair < 4; pair++ {
		d1 := uint16(text[pair*2])<<8 | uint16(text[pair*2+1])
		g := Group{
			A: Block{Errors: BLER6Plus},
			B: Block{Value: groupB(0, VersionA, uint16(pair)), Errors: BLERNone},
			C: Block{Errors: BLER6Plus},
			D: Block{Value: d1, Errors: BLERNone},
		}
		d.Decode(g)
	}
}

func TestPSAdvancedConvergence(t *testing.T) {
	d, dr := newTestDecoder(true)
	for i := 0; i < 2; i++ {
		feedPS(d, "HELLO!  ")
	}
	if string(dr.PS.Display[:]) != "HELLO!  " {
		t.Fatalf("PS.Display = %q, want %q", dr.PS.Display[:], "HELLO!  ")
	}
	if !dr.ValidValues.Has(ValidPS) {
		t.Fatal("PS not marked valid")
	}
}

func TestPSTransitionSuppression(t *testing.T) {
	d, dr := newTestDecoder(true)
	for i := 0; i < 2; i++ {
		feedPS(d, "HELLO!  ")
	}
	feedPS(d, "WORLD!  ")
	if string(dr.PS.Display[:]) != "HELLO!  " {
		t.Fatalf("PS.Display = %q, want unchanged %q", dr.PS.Display[:], "HELLO!  ")
	}
}

func afCodeForMHz(mhz float64) int {
	return int((mhz-87.6)*10+1+0.5)
}

func TestAFMethodA(t *testing.T) {
	d, dr := newTestDecoder(true)
	c1 := uint16(0xE1)<<8 | uint16(afCodeForMHz(98.1))
	g1 := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(0, VersionA, 0), Errors: BLERNone},
		C: Block{Value: c1, Errors: BLERNone},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(g1)

	c2 := uint16(afCodeForMHz(98.3))<<8 | uint16(afCodeForMHz(98.7))
	g2 := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(0, VersionA, 0), Errors: BLERNone},
		C: Block{Value: c2, Errors: BLERNone},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(g2)

	idx := dr.AF.CurrentTableIdx
	if idx < 0 {
		t.Fatal("no current AF table")
	}
	tbl := dr.AF.Tables[idx]
	if tbl.Method != AFMethodA {
		t.Fatalf("Method = %v, want AFMethodA", tbl.Method)
	}
	want := map[int]bool{
		afCodeToFreq(afCodeForMHz(98.1), BandUHF): true,
		afCodeToFreq(afCodeForMHz(98.3), BandUHF): true,
		afCodeToFreq(afCodeForMHz(98.7), BandUHF): true,
	}
	if len(tbl.Table.Entries) != 3 {
		t.Fatalf("entries = %v, want 3 unique frequencies", tbl.Table.Entries)
	}
	for _, e := range tbl.Table.Entries {
		if !want[e.Freq] {
			t.Fatalf("unexpected entry %+v", e)
		}
	}
}

func TestAFMethodBPair(t *testing.T) {
	d, dr := newTestDecoder(true)

	tuned := afCodeForMHz(98.1)
	blocks := []uint16{
		uint16(0xE3)<<8 | uint16(tuned),
		uint16(tuned)<<8 | uint16(afCodeForMHz(98.3)),
		uint16(afCodeForMHz(98.5))<<8 | uint16(tuned),
	}
	for _, c := range blocks {
		g := Group{
			A: Block{Errors: BLER6Plus},
			B: Block{Value: groupB(0, VersionA, 0), Errors: BLERNone},
			C: Block{Value: c, Errors: BLERNone},
			D: Block{Errors: BLER6Plus},
		}
		d.Decode(g)
	}

	idx := dr.AF.CurrentTableIdx
	if idx < 0 {
		t.Fatal("no current AF table")
	}
	tbl := dr.AF.Tables[idx]
	if tbl.Method != AFMethodB {
		t.Fatalf("Method = %v, want AFMethodB", tbl.Method)
	}
	if tbl.Table.TunedFreq.Freq != afCodeToFreq(tuned, BandUHF) {
		t.Fatalf("TunedFreq = %+v", tbl.Table.TunedFreq)
	}
	if len(tbl.Table.Entries) != 2 {
		t.Fatalf("entries = %+v, want 2", tbl.Table.Entries)
	}
}

func TestClock(t *testing.T) {
	d, dr := newTestDecoder(true)
	const mjd = 58849
	const hour = 14
	const minute = 30
	const offsetHalfHours = 2

	bVal := groupB(4, VersionA, uint16(mjd>>15))
	cVal := uint16(mjd&0x7FFF)<<1 | uint16(hour>>4)&1
	dVal := uint16(hour&0xF)<<12 | uint16(minute)<<6 | uint16(offsetHalfHours)

	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: bVal, Errors: BLERNone},
		C: Block{Value: cVal, Errors: BLERNone},
		D: Block{Value: dVal, Errors: BLERNone},
	}
	d.Decode(g)

	if dr.Clock.MJD != mjd || dr.Clock.Hour != hour || dr.Clock.Minute != minute || dr.Clock.UTCOffset != offsetHalfHours {
		t.Fatalf("Clock = %+v", dr.Clock)
	}
	if !dr.ValidValues.Has(ValidClock) {
		t.Fatal("CLOCK not marked valid")
	}
}

func TestODARegistrationAndDispatch(t *testing.T) {
	d, dr := newTestDecoder(true)

	var gotAppID uint16
	var gotCalled bool
	d.SetODACallbacks(func(appID uint16, data *DataRecord, g Group, gt GroupType, userData interface{}) {
		gotAppID = appID
		gotCalled = true
	}, nil, nil)

	reg := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(3, VersionA, uint16(11)<<1), Errors: BLERNone},
		C: Block{Errors: BLER6Plus},
		D: Block{Value: 0x4BD7, Errors: BLERNone},
	}
	d.Decode(reg)
	if dr.ODACnt != 1 || dr.ODA[0].AppID != 0x4BD7 {
		t.Fatalf("ODA registry = %+v", dr.ODA[0])
	}

	fire := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(11, VersionA, 0), Errors: BLERNone},
		C: Block{Errors: BLER6Plus},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(fire)

	if !gotCalled {
		t.Fatal("ODA decode callback not invoked")
	}
	if gotAppID != 0x4BD7 {
		t.Fatalf("callback app_id = %#x, want 0x4BD7", gotAppID)
	}
}

func TestBlockBRejectionLeavesStateUntouched(t *testing.T) {
	d, dr := newTestDecoder(true)
	feedPS(d, "HELLO!  ")
	feedPS(d, "HELLO!  ")
	before := dr.PS.Display

	g := Group{
		A: Block{Value: 0x9999, Errors: BLERNone},
		B: Block{Value: groupB(0, VersionA, 0), Errors: BLER6Plus},
		C: Block{Value: 0x1111, Errors: BLERNone},
		D: Block{Value: uint16('Z')<<8 | uint16('Z'), Errors: BLERNone},
	}
	d.Decode(g)

	if dr.PS.Display != before {
		t.Fatal("PS.Display changed after a rejected block B")
	}
	if dr.PICode != 0x9999 {
		t.Fatal("block A PI should still update even when block B is rejected")
	}
}

func TestReset(t *testing.T) {
	d, dr := newTestDecoder(true)
	feedPS(d, "HELLO!  ")
	feedPS(d, "HELLO!  ")

	var cleared bool
	d.SetODACallbacks(nil, func(userData interface{}) { cleared = true }, nil)
	d.Reset()

	if dr.ValidValues != 0 {
		t.Fatalf("ValidValues = %#x after reset, want 0", dr.ValidValues)
	}
	if dr.AF.CurrentTableIdx != -1 {
		t.Fatalf("AF.CurrentTableIdx = %d after reset, want -1", dr.AF.CurrentTableIdx)
	}
	if !cleared {
		t.Fatal("ODA clear callback not invoked on reset")
	}
}

func TestIdempotentDecode(t *testing.T) {
	d, dr := newTestDecoder(true)
	g := Group{
		A: Block{Value: 0x1234, Errors: BLERNone},
		B: Block{Value: groupB(4, VersionA, 0), Errors: BLERNone},
		C: Block{Value: 0x0002, Errors: BLERNone},
		D: Block{Value: 0x0C80, Errors: BLERNone},
	}
	d.Decode(g)
	first := *dr
	d.Decode(g)
	if dr.Clock != first.Clock || dr.PICode != first.PICode {
		t.Fatal("repeated decode of the same group changed decoded fields")
	}
}

func TestGroup1PICAndSLC(t *testing.T) {
	d, dr := newTestDecoder(true)
	// PIC: day=5, hour=10, minute=20.
	dVal := uint16(5)<<11 | uint16(10)<<6 | uint16(20)
	// SLC: linkage=1, variant code 3 (Languages), payload=0xABC.
	cVal := uint16(1)<<15 | uint16(3)<<12 | uint16(0xABC)

	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(1, VersionA, 0), Errors: BLERNone},
		C: Block{Value: cVal, Errors: BLERNone},
		D: Block{Value: dVal, Errors: BLERNone},
	}
	d.Decode(g)

	if dr.PIC != (PICState{Day: 5, Hour: 10, Minute: 20}) {
		t.Fatalf("PIC = %+v", dr.PIC)
	}
	if !dr.ValidValues.Has(ValidPIC) {
		t.Fatal("PIC not marked valid")
	}
	want := SLCState{Linkage: true, Variant: SLCVariantLanguages, Payload: 0xABC}
	if dr.SLC != want {
		t.Fatalf("SLC = %+v, want %+v", dr.SLC, want)
	}
	if !dr.ValidValues.Has(ValidSLC) {
		t.Fatal("SLC not marked valid")
	}
}

func TestGroup2RadiotextSimple(t *testing.T) {
	d, dr := newTestDecoder(false)
	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(2, VersionA, 0), Errors: BLERNone},
		C: Block{Value: uint16('T')<<8 | uint16('E'), Errors: BLERNone},
		D: Block{Value: uint16('S')<<8 | uint16('T'), Errors: BLERNone},
	}
	d.Decode(g)

	if string(dr.RT.A.Display[:4]) != "TEST" {
		t.Fatalf("RT.A.Display[:4] = %q, want %q", dr.RT.A.Display[:4], "TEST")
	}
	if !dr.ValidValues.Has(ValidRTA) {
		t.Fatal("RT-A not marked valid")
	}
}

func TestGroup5TDCChannel(t *testing.T) {
	d, dr := newTestDecoder(true)
	// Channel 17: bit 4 set distinguishes the correct 0x1F mask from a
	// narrower one (e.g. 0x0F). The 0x11111 mask the redesign flag warns
	// against would also pick up bit 12 of the group code and index past
	// the 32 channels.
	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(5, VersionA, 17), Errors: BLERNone},
		C: Block{Value: uint16('A')<<8 | uint16('B'), Errors: BLERNone},
		D: Block{Value: uint16('C')<<8 | uint16('D'), Errors: BLERNone},
	}
	d.Decode(g)

	ch := dr.TDC[17]
	if ch.Len != 4 || string(ch.Data[:4]) != "ABCD" {
		t.Fatalf("TDC[17] = %+v, want 4 bytes %q", ch, "ABCD")
	}
	if !dr.ValidValues.Has(ValidTDC) {
		t.Fatal("TDC not marked valid")
	}
}

func TestGroup9EWSRaw(t *testing.T) {
	d, dr := newTestDecoder(true)
	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(9, VersionA, 0x15), Errors: BLERNone},
		C: Block{Value: 0x1234, Errors: BLERNone},
		D: Block{Value: 0x5678, Errors: BLERNone},
	}
	d.Decode(g)

	want := EWSState{B: 0x15, C: 0x1234, D: 0x5678}
	if dr.EWS != want {
		t.Fatalf("EWS = %+v, want %+v", dr.EWS, want)
	}
	if !dr.ValidValues.Has(ValidEWS) {
		t.Fatal("EWS not marked valid")
	}
}

func TestGroup10PTYNTransitionWipe(t *testing.T) {
	d, dr := newTestDecoder(true)

	first := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(10, VersionA, 0), Errors: BLERNone}, // abFlag A, segment 0
		C: Block{Value: uint16('A')<<8 | uint16('B'), Errors: BLERNone},
		D: Block{Value: uint16('C')<<8 | uint16('D'), Errors: BLERNone},
	}
	d.Decode(first)
	if string(dr.PTYN.Display[:4]) != "ABCD" {
		t.Fatalf("PTYN.Display[:4] = %q, want %q", dr.PTYN.Display[:4], "ABCD")
	}

	second := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(10, VersionA, 0b10001), Errors: BLERNone}, // abFlag B, segment 1
		C: Block{Value: uint16('W')<<8 | uint16('X'), Errors: BLERNone},
		D: Block{Value: uint16('Y')<<8 | uint16('Z'), Errors: BLERNone},
	}
	d.Decode(second)

	want := [8]byte{0, 0, 0, 0, 'W', 'X', 'Y', 'Z'}
	if dr.PTYN.Display != want {
		t.Fatalf("PTYN.Display = %q, want an ab-flag-transition wipe then %q at offset 4", dr.PTYN.Display, "WXYZ")
	}
	if !dr.ValidValues.Has(ValidPTYN) {
		t.Fatal("PTYN not marked valid")
	}
}

func TestGroup14EONVariant13PTYFix(t *testing.T) {
	d, dr := newTestDecoder(true)
	// PTY=9, TA=1. The redesign flag fixes this from a buggy `C > 11`
	// boolean comparison to the top-five-bits extraction below.
	cVal := uint16(9)<<11 | 1
	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(14, VersionA, 13), Errors: BLERNone},
		C: Block{Value: cVal, Errors: BLERNone},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(g)

	if dr.EON.PTY != 9 {
		t.Fatalf("EON.PTY = %d, want 9", dr.EON.PTY)
	}
	if !dr.EON.TA {
		t.Fatal("EON.TA = false, want true")
	}
	if !dr.ValidValues.Has(ValidEON) {
		t.Fatal("EON not marked valid")
	}
}

func TestGroup14EONVersionB(t *testing.T) {
	d, dr := newTestDecoder(true)
	g := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(14, VersionB, 0b1100), Errors: BLERNone}, // TP=1, TA=1
		C: Block{Errors: BLER6Plus},
		D: Block{Value: 0xBEEF, Errors: BLERNone},
	}
	d.Decode(g)

	if dr.EON.PI != 0xBEEF {
		t.Fatalf("EON.PI = %#x, want 0xBEEF", dr.EON.PI)
	}
	if !dr.EON.TP || !dr.EON.TA {
		t.Fatalf("EON.TP/TA = %v/%v, want true/true", dr.EON.TP, dr.EON.TA)
	}
	if !dr.ValidValues.Has(ValidEON) {
		t.Fatal("EON not marked valid")
	}
}

func TestGroup15FastBasicTuningTA(t *testing.T) {
	d, dr := newTestDecoder(true)

	noop := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(15, VersionA, 1<<4), Errors: BLERNone},
		C: Block{Errors: BLER6Plus},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(noop)
	if dr.TACode {
		t.Fatal("15A must be a no-op, but TACode changed")
	}

	fast := Group{
		A: Block{Errors: BLER6Plus},
		B: Block{Value: groupB(15, VersionB, 1<<4), Errors: BLERNone},
		C: Block{Errors: BLER6Plus},
		D: Block{Errors: BLER6Plus},
	}
	d.Decode(fast)
	if !dr.TACode {
		t.Fatal("15B should decode TA the same way as 0A/0B")
	}
	if !dr.ValidValues.Has(ValidTA) {
		t.Fatal("TA not marked valid")
	}
}
