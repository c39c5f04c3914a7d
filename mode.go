package etc2

import "encoding/binary"

// Mode is the ETC2 color sub-format of a color codeword.
type Mode uint8

const (
	// ModeIndividual stores two 4-bit per channel colors (diff bit clear).
	ModeIndividual Mode = iota
	// ModeDifferential stores a 5-bit base color and a 3-bit signed delta.
	ModeDifferential
	// ModeT selects from a T-shaped palette (red delta overflow).
	ModeT
	// ModeH selects from an H-shaped palette (green delta overflow).
	ModeH
	// ModePlanar interpolates three corner colors (blue delta overflow).
	ModePlanar
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeIndividual:
		return "individual"
	case ModeDifferential:
		return "differential"
	case ModeT:
		return "T"
	case ModeH:
		return "H"
	case ModePlanar:
		return "planar"
	default:
		return "unknown"
	}
}

// RGB is an 8-bit per channel color.
type RGB [3]uint8

// ColorMode is a resolved color codeword.
type ColorMode struct {
	// Colors holds the base colors. Individual, Differential, T and H use the
	// first two entries; Planar uses all three as the O, H and V corners.
	Colors [3]RGB
	// Selectors is bytes 4..7 of the codeword read big endian. Pixel i (in
	// codeword scan order) takes its selector LSB from bit i and its MSB
	// from bit 16+i.
	Selectors uint32
	// Codes are the modifier table codes of subblocks 0 and 1.
	Codes [2]uint8
	// Distance is the distanceTable index for T and H modes.
	Distance uint8
	// Flip is false for 2x4 subblocks side by side, true for 4x2 stacked.
	Flip bool
	Mode Mode
}

// ResolveColorMode classifies an 8-byte color codeword and extracts its base
// colors. Every codeword resolves to exactly one mode.
func ResolveColorMode(cw [8]byte) ColorMode {
	m := ColorMode{Selectors: binary.BigEndian.Uint32(cw[4:])}

	if cw[3]&0x02 == 0 {
		m.resolveIndividual(cw)
		return m
	}

	r, dr := splitDelta(cw[0])
	g, dg := splitDelta(cw[1])
	b, db := splitDelta(cw[2])

	switch {
	case overflows(r, dr):
		m.resolveT(cw)
	case overflows(g, dg):
		m.resolveH(cw)
	case overflows(b, db):
		m.resolvePlanar(cw)
	default:
		m.resolveDifferential(cw)
	}

	return m
}

// ResolveETC1Mode resolves an ETC1 color codeword. ETC1 has only the
// Individual and Differential modes; a differential sum outside 5 bits wraps.
func ResolveETC1Mode(cw [8]byte) ColorMode {
	m := ColorMode{Selectors: binary.BigEndian.Uint32(cw[4:])}
	if cw[3]&0x02 == 0 {
		m.resolveIndividual(cw)
	} else {
		m.resolveDifferential(cw)
	}
	return m
}

func (m *ColorMode) resolveIndividual(cw [8]byte) {
	m.Mode = ModeIndividual
	m.Colors[0] = RGB{expand4(cw[0] >> 4), expand4(cw[1] >> 4), expand4(cw[2] >> 4)}
	m.Colors[1] = RGB{expand4(cw[0]), expand4(cw[1]), expand4(cw[2])}
	m.setSubblocks(cw[3])
}

func (m *ColorMode) resolveDifferential(cw [8]byte) {
	r, dr := splitDelta(cw[0])
	g, dg := splitDelta(cw[1])
	b, db := splitDelta(cw[2])

	m.Mode = ModeDifferential
	m.Colors[0] = RGB{expand5(r), expand5(g), expand5(b)}
	// #nosec G115 -- wraps within the aligned 5-bit field.
	m.Colors[1] = RGB{
		expand5(uint8(int(r) + dr)),
		expand5(uint8(int(g) + dg)),
		expand5(uint8(int(b) + db)),
	}
	m.setSubblocks(cw[3])
}

// setSubblocks reads the table codes and flip bit shared by Individual and
// Differential modes.
func (m *ColorMode) setSubblocks(v byte) {
	m.Codes = [2]uint8{v >> 5, (v >> 2) & 0x07}
	m.Flip = v&0x01 != 0
}

func (m *ColorMode) resolveT(cw [8]byte) {
	m.Mode = ModeT
	m.Colors[0] = RGB{
		expand4(((cw[0] >> 1) & 0x0c) | (cw[0] & 0x03)),
		expand4(cw[1] >> 4),
		expand4(cw[1]),
	}
	m.Colors[1] = RGB{expand4(cw[2] >> 4), expand4(cw[2]), expand4(cw[3] >> 4)}
	m.Distance = ((cw[3] >> 1) & 0x06) | (cw[3] & 0x01)
}

func (m *ColorMode) resolveH(cw [8]byte) {
	m.Mode = ModeH
	m.Colors[0] = RGB{
		expand4(cw[0] >> 3),
		expand4(((cw[0] & 0x07) << 1) | ((cw[1] >> 4) & 0x01)),
		expand4((cw[1] & 0x08) | ((cw[1] << 1) & 0x06) | (cw[2] >> 7)),
	}
	m.Colors[1] = RGB{
		expand4(cw[2] >> 3),
		expand4(((cw[2] & 0x07) << 1) | (cw[3] >> 7)),
		expand4(cw[3] >> 3),
	}

	// the lowest index bit is implied by the order of the two colors
	m.Distance = (cw[3] & 0x04) | ((cw[3] << 1) & 0x02)
	if !lessRGB(m.Colors[0], m.Colors[1]) {
		m.Distance++
	}
}

func (m *ColorMode) resolvePlanar(cw [8]byte) {
	m.Mode = ModePlanar
	m.Colors[0] = RGB{
		expand6(cw[0] >> 1),
		expand7(((cw[0] & 0x01) << 6) | ((cw[1] >> 1) & 0x3f)),
		expand6(((cw[1] & 0x01) << 5) | (((cw[2] >> 3) & 0x03) << 3) | ((cw[2] & 0x03) << 1) | (cw[3] >> 7)),
	}
	m.Colors[1] = RGB{
		expand6((((cw[3] >> 2) & 0x1f) << 1) | (cw[3] & 0x01)),
		expand7(cw[4] >> 1),
		expand6(((cw[4] & 0x01) << 5) | (cw[5] >> 3)),
	}
	m.Colors[2] = RGB{
		expand6(((cw[5] & 0x07) << 3) | (cw[6] >> 5)),
		expand7(((cw[6] & 0x1f) << 2) | (cw[7] >> 6)),
		expand6(cw[7]),
	}
}

// splitDelta returns the 5-bit base (aligned to the top of the byte) and the
// sign-extended 3-bit delta in the same units.
func splitDelta(v byte) (uint8, int) {
	d := int(v & 0x07)
	d -= (d & 0x04) * 2
	return v & 0xf8, d * 8
}

func overflows(base uint8, delta int) bool {
	v := int(base) + delta
	return v < 0 || v > 255
}

// lessRGB compares colors lexicographically by R, G, then B.
func lessRGB(a, b RGB) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// expand4 replicates the low nibble of v into a full byte.
func expand4(v uint8) uint8 {
	v &= 0x0f
	return v<<4 | v
}

// expand5 replicates a 5-bit value stored in the top bits of v.
func expand5(v uint8) uint8 {
	v &= 0xf8
	return v | v>>5
}

func expand6(v uint8) uint8 {
	v &= 0x3f
	return v<<2 | v>>4
}

func expand7(v uint8) uint8 {
	v &= 0x7f
	return v<<1 | v>>6
}
