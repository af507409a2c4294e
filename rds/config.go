package rds

// Pool/array sizes, tunable at compile time per the RBDS decoder's
// embedded-deployment heritage: fixed capacity rather than dynamic growth.
const (
	psValidationLimit = 2
	rtValidationLimit = 2

	afPoolTables  = 20
	afTableLimit  = 25
	odaPoolSize   = 10
	tdcChannels   = 32
	tdcChannelLen = 32
)

// Config holds the decoder's compile-time-tunable behavior. Mirrors the
// teacher's modesInitConfig() defaulting pattern: one place that sets every
// knob to its documented default.
type Config struct {
	// AdvancedPSDecoding selects the two-level confidence validator for PS
	// and RT over straight-through writes.
	AdvancedPSDecoding bool

	// Block acceptance thresholds; a block whose Errors exceeds the
	// threshold is rejected for the fields it would have populated.
	BlockAThreshold  BLER // governs PI code acceptance
	BlockBThreshold  BLER // governs whole-group dispatch (strict)
	BlockCDThreshold BLER // governs blocks C and D generally

	// CollectStats enables the debug packet counters described in the
	// spec's "tunable compile-time constants" section. Disabled by
	// default.
	CollectStats bool
}

// DefaultConfig returns the documented default thresholds: block A and
// blocks C/D tolerate up to BLER3To5, block B is strict at BLER1To2.
func DefaultConfig() Config {
	return Config{
		AdvancedPSDecoding: true,
		BlockAThreshold:    BLER3To5,
		BlockBThreshold:    BLER1To2,
		BlockCDThreshold:   BLER3To5,
		CollectStats:       false,
	}
}

// Stats accumulates debug packet counters. Read-only from the caller's
// perspective; updated only by Decoder.Decode when Config.CollectStats is
// set. Analogous to the teacher's Aircraft.messages / Sky.AircraftCount
// counters: observation only, never influencing decode semantics.
type Stats struct {
	GroupsByType     [16][2]uint64 // [code][version index: 0=A,1=B]
	BlockBRejected   uint64
	AFBlocksDropped  uint64
	ODADispatched    uint64
	UnknownSLCDrops  uint64
}

func (s *Stats) countGroup(gt GroupType) {
	if s == nil {
		return
	}
	vi := 0
	if gt.Version == VersionB {
		vi = 1
	}
	s.GroupsByType[gt.Code][vi]++
}
