package rds

// decodeGroup2 implements groups 2A and 2B: radiotext. The A/B flag in
// block B selects which of the two 64-char buffers is the live target; a
// flag transition bumps that buffer's validation cycle before the new
// characters are written.
func decodeGroup2(d *Decoder, gt GroupType, g Group) {
	abFlag := VersionA
	if g.B.Value&(1<<4) != 0 {
		abFlag = VersionB
	}

	target := &d.data.RT.A
	validBit := ValidRTA
	if abFlag == VersionB {
		target = &d.data.RT.B
		validBit = ValidRTB
	}

	if d.data.RT.hasPrev && d.data.RT.Current != abFlag {
		bumpRTValidationCount(target)
	}
	d.data.RT.Current = abFlag
	d.data.RT.hasPrev = true

	charsPerBlock := 4
	if gt.Version == VersionB {
		charsPerBlock = 2
	}
	addr := int(g.B.Value&0xF) * charsPerBlock

	var chars []byte
	if gt.Version == VersionA {
		chars = []byte{byte(g.C.Value >> 8), byte(g.C.Value & 0xFF), byte(g.D.Value >> 8), byte(g.D.Value & 0xFF)}
	} else {
		chars = []byte{byte(g.D.Value >> 8), byte(g.D.Value & 0xFF)}
	}

	if !d.cfg.AdvancedPSDecoding {
		rtWriteSimple(target, addr, chars)
		d.data.markValid(validBit)
	} else {
		for i, c := range chars {
			idx := addr + i
			if idx >= len(target.Display) {
				break
			}
			rtWriteAdvanced(target, idx, c)
		}
		d.data.markValid(validBit)
	}

	if gt.Version == VersionB {
		target.Display[32] = 0x0D
	}
}
