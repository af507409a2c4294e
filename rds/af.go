package rds

// Band distinguishes the two frequency ranges an AF entry can fall in.
type Band int

const (
	BandUHF Band = iota
	BandLFMF
)

// Attribute marks whether an alternative frequency carries the same
// program as the tuned frequency or a regional variant of it.
type Attribute int

const (
	AttrSameProgram Attribute = iota
	AttrRegionalVariant
)

// Frequency is one decoded alternative-frequency entry.
type Frequency struct {
	Band      Band
	Attribute Attribute
	Freq      int // UHF: tenths of MHz, offset 876. LF/MF: kHz.
}

func sameFreq(a, b Frequency) bool {
	return a.Band == b.Band && a.Freq == b.Freq
}

// less implements the ordering from spec §4.4: same band compares Freq;
// LF/MF is always less than UHF.
func (a Frequency) less(b Frequency) bool {
	if a.Band != b.Band {
		return a.Band == BandLFMF
	}
	return a.Freq < b.Freq
}

const afMaxLFMFCode = 135

// afCodeToFreq converts a raw AF code to a frequency in the given band,
// per spec §8's testable property.
func afCodeToFreq(code int, band Band) int {
	if band == BandUHF {
		return 876 + code - 1
	}
	if code <= 15 {
		return 153 + 9*(code-1)
	}
	return 531 + 9*(code-16)
}

func isFrequencyCode(code int, band Band) bool {
	if band == BandUHF {
		return code >= 1 && code <= 204
	}
	return code >= 1 && code <= afMaxLFMFCode
}

const (
	afFillerCode     = 205
	afLFMFFollowCode = 250
	afCountCodeMin   = 225
	afCountCodeMax   = 249
)

func isCountCode(b int) bool { return b >= afCountCodeMin && b <= afCountCodeMax }

// AFTable is a tuned-frequency anchor plus up to afTableLimit unique
// alternative frequencies.
type AFTable struct {
	TunedFreq Frequency
	Entries   []Frequency
}

// insertUnique adds f, keeping Entries ordered per Frequency.less (spec
// §4.4/§8's frequency-ordering rule), if the table has room and f is not
// already present. Returns false (no insertion) if either condition fails.
func (t *AFTable) insertUnique(f Frequency) bool {
	if len(t.Entries) >= afTableLimit {
		return false
	}
	pos := len(t.Entries)
	for i, e := range t.Entries {
		if sameFreq(e, f) {
			return false
		}
		if pos == len(t.Entries) && f.less(e) {
			pos = i
		}
	}
	t.Entries = append(t.Entries, Frequency{})
	copy(t.Entries[pos+1:], t.Entries[pos:])
	t.Entries[pos] = f
	return true
}

// AFMethod is the inferred (or still-unknown) AF-list encoding.
type AFMethod int

const (
	AFMethodUnknown AFMethod = iota
	AFMethodA
	AFMethodB
)

// AFDecodeTable wraps an AFTable with the decoding state needed to
// interpret its stream: inferred method, expected remaining entry count,
// current band (toggled by the LF/MF sentinel), and the previous method
// (sticky across blocks of the same table).
type AFDecodeTable struct {
	Table         AFTable
	Method        AFMethod
	PrevMethod    AFMethod
	ExpectedCount int
	CurrentBand   Band
	tunedPending  bool // TunedFreq is a provisional anchor, not yet a real entry
}

func (t *AFDecodeTable) setMethod(m AFMethod) {
	t.PrevMethod = t.Method
	t.Method = m
}

func (t *AFDecodeTable) decrementExpected() {
	if t.ExpectedCount > 0 {
		t.ExpectedCount--
	}
}

// AFTableGroup is a pool of up to afPoolTables AFDecodeTables plus the
// index of the table currently receiving blocks (-1 if none).
type AFTableGroup struct {
	Tables          [afPoolTables]AFDecodeTable
	inUse           [afPoolTables]bool
	CurrentTableIdx int
}

// NewAFTableGroup returns a pool with no current table, matching the
// post-Reset state.
func NewAFTableGroup() *AFTableGroup {
	return &AFTableGroup{CurrentTableIdx: -1}
}

func (g *AFTableGroup) findMethodATable() int {
	for i := range g.Tables {
		if g.inUse[i] && g.Tables[i].Method == AFMethodA {
			return i
		}
	}
	return -1
}

func (g *AFTableGroup) findTableByTunedFreq(freq int) int {
	for i := range g.Tables {
		if g.inUse[i] && g.Tables[i].Table.TunedFreq.Band == BandUHF && g.Tables[i].Table.TunedFreq.Freq == freq {
			return i
		}
	}
	return -1
}

// SeedTunedFrequency pre-allocates (or reuses) a table anchored at a known
// UHF tuned frequency, the same way start-block rule 3 would once the
// first AF block for that frequency arrived, for callers that know the
// station's tuned frequency before any AF blocks have been decoded. freq
// is in Frequency.Freq's units (tenths of a MHz). Returns the table index,
// or -1 if the pool is full.
func (g *AFTableGroup) SeedTunedFrequency(freq int) int {
	if idx := g.findTableByTunedFreq(freq); idx >= 0 {
		g.CurrentTableIdx = idx
		return idx
	}
	idx := g.allocateSlot()
	if idx < 0 {
		return -1
	}
	g.Tables[idx].Table.TunedFreq = Frequency{Band: BandUHF, Freq: freq}
	g.Tables[idx].tunedPending = true
	g.CurrentTableIdx = idx
	return idx
}

func (g *AFTableGroup) allocateSlot() int {
	for i := range g.inUse {
		if !g.inUse[i] {
			g.inUse[i] = true
			g.Tables[i] = AFDecodeTable{}
			return i
		}
	}
	return -1
}

// DecodeFreqGroupBlock consumes one 16-bit AF block: its first byte either
// starts a new table (count code 225..249) or, together with the second
// byte, continues the current table as a pair of candidate frequencies.
// Returns false if the block had to be dropped (no table slot free, or a
// continuation arrived with no table in progress), true otherwise.
func (g *AFTableGroup) DecodeFreqGroupBlock(block16 uint16) bool {
	first := int(block16 >> 8)
	second := int(block16 & 0xFF)

	if isCountCode(first) {
		// Spec §4.4: num_freqs = byte - 224. afCountCodeMin (225) is the
		// range's lower bound, one more than the subtrahend here.
		return g.startTable(first-224, second)
	}
	if g.CurrentTableIdx < 0 {
		return false
	}
	g.consumePair(first, second)
	return true
}

func (g *AFTableGroup) startTable(numFreqs, second int) bool {
	// 1. Reuse the single universal method-A table if one already exists.
	if idx := g.findMethodATable(); idx >= 0 {
		g.CurrentTableIdx = idx
		g.Tables[idx].ExpectedCount = numFreqs
		g.consumeStartSecond(idx, second)
		return true
	}

	// 2. A declared count of exactly one entry can only be method A.
	if numFreqs == 1 {
		idx := g.allocateSlot()
		if idx < 0 {
			return false
		}
		g.Tables[idx].setMethod(AFMethodA)
		g.Tables[idx].ExpectedCount = numFreqs
		g.CurrentTableIdx = idx
		g.consumeStartSecond(idx, second)
		return true
	}

	// 3. Otherwise `second` is the UHF tuned frequency identifying (or
	// starting) this table.
	freq := afCodeToFreq(second, BandUHF)
	idx := g.findTableByTunedFreq(freq)
	if idx < 0 {
		idx = g.allocateSlot()
		if idx < 0 {
			return false
		}
		g.Tables[idx].Table.TunedFreq = Frequency{Band: BandUHF, Freq: freq}
		g.Tables[idx].tunedPending = true
	}
	g.Tables[idx].ExpectedCount = numFreqs
	g.CurrentTableIdx = idx
	return true
}

// consumeStartSecond handles the one carried code of a start block: it is
// treated exactly like the second half of a continuation pair, paired
// with an implicit sentinel first half (the count byte carried no
// frequency information of its own).
func (g *AFTableGroup) consumeStartSecond(idx, second int) {
	t := &g.Tables[idx]
	f, isSentinel := decodeAFCode(t, second)
	g.inferAndInsert(t, nil, true, f, isSentinel)
	t.decrementExpected()
}

func (g *AFTableGroup) consumePair(first, second int) {
	t := &g.Tables[g.CurrentTableIdx]
	f1, s1 := decodeAFCode(t, first)
	f2, s2 := decodeAFCode(t, second)
	g.inferAndInsert(t, f1, s1, f2, s2)
	t.decrementExpected()
	t.decrementExpected()
}

// decodeAFCode classifies one raw byte against table t's current band:
// a sentinel (filler, band-switch, or any other non-frequency code) or a
// real Frequency.
func decodeAFCode(t *AFDecodeTable, raw int) (freq *Frequency, isSentinel bool) {
	switch {
	case raw == afLFMFFollowCode:
		t.CurrentBand = BandLFMF
		return nil, true
	case raw == afFillerCode:
		return nil, true
	case isFrequencyCode(raw, t.CurrentBand):
		f := Frequency{Band: t.CurrentBand, Freq: afCodeToFreq(raw, t.CurrentBand)}
		return &f, false
	default:
		return nil, true
	}
}

// inferAndInsert implements the method-inference and insertion rules of
// spec §4.4 for one pair of candidate codes.
func (g *AFTableGroup) inferAndInsert(t *AFDecodeTable, f1 *Frequency, s1 bool, f2 *Frequency, s2 bool) {
	if t.Method == AFMethodUnknown {
		switch {
		case s1 && s2:
			// Both sentinels: still unknown, nothing to insert yet.
			return
		case s1 != s2:
			// Exactly one sentinel: method B always sends two real
			// frequencies, so this must be method A.
			t.setMethod(AFMethodA)
		default:
			// Neither is a sentinel: look for a match against the anchor.
			if (f1 != nil && sameFreq(*f1, t.Table.TunedFreq)) || (f2 != nil && sameFreq(*f2, t.Table.TunedFreq)) {
				t.setMethod(AFMethodB)
			} else {
				t.setMethod(AFMethodA)
				if t.tunedPending {
					t.Table.insertUnique(t.Table.TunedFreq)
					t.tunedPending = false
					t.Table.TunedFreq = Frequency{}
				}
			}
		}
	}

	switch t.Method {
	case AFMethodA:
		if f1 != nil {
			t.Table.insertUnique(Frequency{Band: f1.Band, Freq: f1.Freq, Attribute: AttrSameProgram})
		}
		if f2 != nil {
			t.Table.insertUnique(Frequency{Band: f2.Band, Freq: f2.Freq, Attribute: AttrSameProgram})
		}
	case AFMethodB:
		g.insertMethodB(t, f1, f2)
	}
}

func (g *AFTableGroup) insertMethodB(t *AFDecodeTable, f1, f2 *Frequency) {
	var alt *Frequency
	switch {
	case f1 != nil && sameFreq(*f1, t.Table.TunedFreq):
		alt = f2
	case f2 != nil && sameFreq(*f2, t.Table.TunedFreq):
		alt = f1
	default:
		// Neither equals the tuned frequency: malformed, drop silently.
		return
	}
	if alt == nil {
		return
	}
	attribute := AttrSameProgram
	if f1 != nil && f2 != nil {
		larger := f1
		if f2.Freq > f1.Freq {
			larger = f2
		}
		if sameFreq(*larger, *alt) {
			attribute = AttrRegionalVariant
		}
	}
	t.Table.insertUnique(Frequency{Band: alt.Band, Freq: alt.Freq, Attribute: attribute})
}
