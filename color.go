package etc2

import "image/color"

// Block is one decoded 4x4 block in row-major order.
type Block [16]color.NRGBA

// Synthesize writes the 16 pixel colors of m into blk with alpha 255.
func (m *ColorMode) Synthesize(blk *Block) {
	switch m.Mode {
	case ModeIndividual, ModeDifferential:
		m.synthesizeSubblocks(blk)
	case ModeT:
		d := int(distanceTable[m.Distance])
		m.synthesizePalette(blk, &[4]color.NRGBA{
			m.Colors[0].offset(0),
			m.Colors[1].offset(d),
			m.Colors[1].offset(0),
			m.Colors[1].offset(-d),
		})
	case ModeH:
		d := int(distanceTable[m.Distance])
		m.synthesizePalette(blk, &[4]color.NRGBA{
			m.Colors[0].offset(d),
			m.Colors[0].offset(-d),
			m.Colors[1].offset(d),
			m.Colors[1].offset(-d),
		})
	case ModePlanar:
		m.synthesizePlanar(blk)
	}
}

// selector returns the 2-bit selector of pixel i in codeword scan order.
func (m *ColorMode) selector(i int) uint32 {
	return (m.Selectors>>i)&0x01 | (m.Selectors>>(15+i))&0x02
}

func (m *ColorMode) synthesizeSubblocks(blk *Block) {
	table := &subblockTable[0]
	if m.Flip {
		table = &subblockTable[1]
	}

	for i := 0; i < 16; i++ {
		s := table[i]
		sel := m.selector(i)
		mod := int(modifierTable[m.Codes[s]][sel&0x01])
		if sel&0x02 != 0 {
			mod = -mod
		}
		blk[writeOrder[i]] = m.Colors[s].offset(mod)
	}
}

func (m *ColorMode) synthesizePalette(blk *Block, palette *[4]color.NRGBA) {
	for i := 0; i < 16; i++ {
		blk[writeOrder[i]] = palette[m.selector(i)]
	}
}

// synthesizePlanar interpolates the O, H and V corners. Planar blocks carry
// no selectors, so pixels are written in row-major order directly.
func (m *ColorMode) synthesizePlanar(blk *Block) {
	o, h, v := m.Colors[0], m.Colors[1], m.Colors[2]
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			var c [3]uint8
			for ch := range c {
				oc := int(o[ch])
				c[ch] = clamp((x*(int(h[ch])-oc) + y*(int(v[ch])-oc) + 4*oc + 2) >> 2)
			}
			blk[y*4+x] = color.NRGBA{R: c[0], G: c[1], B: c[2], A: 0xff}
		}
	}
}

// offset adds d to every channel of c and returns an opaque pixel.
func (c RGB) offset(d int) color.NRGBA {
	return color.NRGBA{
		R: clamp(int(c[0]) + d),
		G: clamp(int(c[1]) + d),
		B: clamp(int(c[2]) + d),
		A: 0xff,
	}
}

func clamp(v int) uint8 {
	// #nosec G115 -- clamped to byte range.
	return uint8(max(0, min(255, v)))
}
