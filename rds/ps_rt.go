package rds

// classify runs the two-level confidence classifier on one character at
// one position, per spec §4.3. Returns true if this character triggered a
// "text in transition" event (a corrected message mid-change), in which
// case the caller must decrement every position's hit count afterwards.
func classify(hi, lo, hit *byte, limit byte, c byte) (transitioned bool) {
	switch {
	case c == *hi:
		if *hit < limit {
			*hit++
			if *hit == limit {
				*lo = *hi
			}
		}
	case c == *lo:
		if *hit >= limit {
			transitioned = true
			*hit = limit + 1
		} else {
			*hit = limit
		}
		*hi, *lo = c, *hi
	case *hit == 0:
		*hi = c
		*hit = 1
	default:
		*lo = c
	}
	return transitioned
}

func decayHitCounts(hit []byte) {
	for i := range hit {
		if hit[i] > 1 {
			hit[i]--
		}
	}
}

// psWriteSimple writes a PS character straight into Display, simple-mode.
func psWriteSimple(ps *PSState, idx int, c byte) {
	ps.Display[idx] = c
}

// psWriteAdvanced runs the confidence classifier for one PS character.
// Per spec, PS only reveals Display once ALL 8 positions are individually
// stable (hit count >= validation limit) — an atomic reveal, unlike RT's
// incremental one.
func psWriteAdvanced(ps *PSState, idx int, c byte) {
	if classify(&ps.HiProb[idx], &ps.LoProb[idx], &ps.HitCnt[idx], psValidationLimit, c) {
		decayHitCounts(ps.HitCnt[:])
	}
}

func psConverged(ps *PSState) bool {
	for _, h := range ps.HitCnt {
		if h < psValidationLimit {
			return false
		}
	}
	return true
}

func psCommitDisplay(ps *PSState) {
	ps.Display = ps.HiProb
}

// rtTranslateNulls maps null bytes to spaces before classification, per
// spec §4.3 ("For RT: null bytes are translated to space before the
// classifier runs").
func rtTranslateNulls(c byte) byte {
	if c == 0 {
		return ' '
	}
	return c
}

// rtWriteSimple writes RT characters straight into Display starting at
// addr. A character with value 0x0D (end-of-text) zeros the remainder of
// Display and rewrites any still-null leading positions to spaces.
func rtWriteSimple(buf *RTBuffer, addr int, chars []byte) {
	for i, c := range chars {
		idx := addr + i
		if idx >= len(buf.Display) {
			return
		}
		if c == 0x0D {
			buf.Display[idx] = 0x0D
			for j := idx + 1; j < len(buf.Display); j++ {
				buf.Display[j] = 0
			}
			for j := 0; j < idx; j++ {
				if buf.Display[j] == 0 {
					buf.Display[j] = ' '
				}
			}
			return
		}
		buf.Display[idx] = c
	}
}

// rtWriteAdvanced runs the confidence classifier for one RT character and,
// unlike PS, reveals Display[idx] as soon as that single position becomes
// stable (progressive reveal suits a 64-char scrolling message better than
// PS's all-or-nothing reveal).
func rtWriteAdvanced(buf *RTBuffer, idx int, c byte) {
	c = rtTranslateNulls(c)
	if classify(&buf.HiProb[idx], &buf.LoProb[idx], &buf.HitCnt[idx], rtValidationLimit, c) {
		decayHitCounts(buf.HitCnt[:])
	}
	if buf.HitCnt[idx] >= rtValidationLimit {
		buf.Display[idx] = buf.HiProb[idx]
	}
}

// bumpRTValidationCount starts a fresh validation cycle on buf: nulls in
// HiProb are translated to spaces, then HitCnt/HiProb/LoProb are wiped.
// Per spec, zeroing happens after the (conceptual) increments it's meant
// to follow, so the increments are themselves unobservable — only the
// zeroing has any effect, and that's what's implemented here.
func bumpRTValidationCount(buf *RTBuffer) {
	for i := range buf.HiProb {
		buf.HiProb[i] = rtTranslateNulls(buf.HiProb[i])
	}
	buf.HitCnt = [64]byte{}
	buf.HiProb = [64]byte{}
	buf.LoProb = [64]byte{}
}
