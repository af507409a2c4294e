package rds

// Valid is a bitmask of which DataRecord fields have ever been populated.
// It is monotonic: only Reset clears it. Every field is considered
// undefined unless its bit is set here.
type Valid uint32

const (
	ValidPICode Valid = 1 << iota
	ValidPTY
	ValidTP
	ValidTA
	ValidMusic
	ValidPS
	ValidRTA
	ValidRTB
	ValidClock
	ValidSLC
	ValidPIC
	ValidAF
	ValidPTYN
	ValidTDC
	ValidEWS
	ValidEON
	ValidODA
)

func (dr *DataRecord) markValid(v Valid) { dr.ValidValues |= v }

// Has reports whether every bit in v is set.
func (v Valid) Has(bit Valid) bool { return v&bit == bit }

// PSState is the Program Service name: 8 characters, not null-terminated,
// plus the hi-prob/lo-prob/hit-count shadows used by the advanced
// validator (see ps_rt.go).
type PSState struct {
	Display [8]byte
	HiProb  [8]byte
	LoProb  [8]byte
	HitCnt  [8]byte
}

// RTBuffer is one of the two 64-character Radiotext buffers.
type RTBuffer struct {
	Display [64]byte
	HiProb  [64]byte
	LoProb  [64]byte
	HitCnt  [64]byte
}

// RTState holds both Radiotext buffers and which one is current.
type RTState struct {
	A, B    RTBuffer
	Current Version // VersionA or VersionB; zero value until first 2x group
	hasPrev bool
}

// ClockState is the decoded CT (clock time) from group 4A.
type ClockState struct {
	MJD       uint32 // Modified Julian Day, 17 bits
	Hour      uint8
	Minute    uint8
	UTCOffset int8 // signed half-hours
}

// SLCVariant tags the payload carried by a slow-labeling-code block.
// The bit assignment of the 3-bit variant code to these tags is an
// implementation decision (spec.md leaves the mapping unspecified beyond
// naming the six payload kinds); codes 6 and 7 are dropped (see decodeSLC).
type SLCVariant uint8

const (
	SLCVariantPaging SLCVariant = iota
	SLCVariantTMCID
	SLCVariantPagingID
	SLCVariantLanguages
	SLCVariantBroadcasters
	SLCVariantEWSChannelID
)

// SLCState is the decoded slow-labeling-code payload from group 1A.
type SLCState struct {
	Linkage bool
	Variant SLCVariant
	Payload uint16 // low 12 bits of block C, variant-dependent
}

// PICState is the Program Item Number: day/hour/minute of the current
// program, from group 1.
type PICState struct {
	Day    uint8
	Hour   uint8
	Minute uint8
}

// PTYNState is the Program Type Name: 8 characters written in two 4-char
// halves, group 10A.
type PTYNState struct {
	Display [8]byte
	abFlag  Version
	hasPrev bool
}

// EWSState is the raw emergency-warning payload from group 9A.
type EWSState struct {
	B uint8 // low 5 bits
	C uint16
	D uint16
}

// EONState is the accumulated "other network" record from group 14.
type EONState struct {
	PI  uint16
	PTY uint8
	TP  bool
	TA  bool
	PS  [8]byte
	PIC PICState
	AF  AFTable
}

// ODAEntry is one registered open-data-application mapping.
type ODAEntry struct {
	AppID     uint16
	GroupType GroupType
	PktCount  uint64
}

// TDCChannel is a 32-byte sliding window (FIFO) of application-opaque
// bytes for one transparent-data-channel address.
type TDCChannel struct {
	Data [tdcChannelLen]byte
	Len  int // number of valid bytes currently held, <= tdcChannelLen
}

func (c *TDCChannel) append(bytes ...byte) {
	for _, b := range bytes {
		if c.Len < tdcChannelLen {
			c.Data[c.Len] = b
			c.Len++
			continue
		}
		copy(c.Data[:], c.Data[1:])
		c.Data[tdcChannelLen-1] = b
	}
}

// DataRecord is the aggregated decoded state of the currently broadcast
// station, accumulated across many calls to Decoder.Decode. The caller
// owns it; the Decoder mutates it. Not safe for concurrent use (callers
// serialize, per the decoder's single-threaded cooperative design).
type DataRecord struct {
	ValidValues Valid

	PICode uint16
	PTY    uint8
	TPCode bool
	TACode bool
	Music  bool

	PS PSState
	RT RTState

	Clock ClockState
	SLC   SLCState
	PIC   PICState

	AF AFTableGroup

	PTYN PTYNState

	TDC [tdcChannels]TDCChannel

	EWS EWSState
	EON EONState

	ODA    [odaPoolSize]ODAEntry
	ODACnt int
}

// NewDataRecord returns a zeroed DataRecord with the "no current AF table"
// sentinel already in place. Callers own the returned record and pass it
// to NewDecoder.
func NewDataRecord() *DataRecord {
	dr := &DataRecord{}
	dr.AF.CurrentTableIdx = -1
	return dr
}

// Reset zeros the data record and re-establishes the "no current AF table"
// sentinel, matching Decoder.Reset's contract.
func (dr *DataRecord) Reset() {
	*dr = DataRecord{}
	dr.AF.CurrentTableIdx = -1
}
