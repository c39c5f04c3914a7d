package etc2

import (
	"encoding/binary"
	"image/color"
)

// Reference decoder reading fields by bit position of the big endian 64-bit
// codeword.

func refExpand(v uint64, bits uint) int {
	v &= (1 << bits) - 1
	v <<= 8 - bits
	return int(v | v>>bits)
}

func refClamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// refResolve returns the mode and base colors of a color codeword.
func refResolve(cw [8]byte) (Mode, [3][3]int, int) {
	v64 := binary.BigEndian.Uint64(cw[:])
	diffTbl := [8]int{0, 1, 2, 3, -4, -3, -2, -1}
	var c [3][3]int

	if (v64>>33)&1 == 0 {
		for i := uint(0); i < 3; i++ {
			c[0][i] = refExpand(v64>>(60-i*8), 4)
			c[1][i] = refExpand(v64>>(56-i*8), 4)
		}
		return ModeIndividual, c, 0
	}

	for i := uint(0); i < 3; i++ {
		a := (v64 >> (59 - i*8)) & 31
		d := (v64 >> (56 - i*8)) & 7
		b := int(a) + diffTbl[d]
		if b < 0 || b > 31 {
			switch i {
			case 0:
				c[0] = [3]int{refExpand(((v64>>57)&12)|(v64>>56)&3, 4), refExpand(v64>>52, 4), refExpand(v64>>48, 4)}
				c[1] = [3]int{refExpand(v64>>44, 4), refExpand(v64>>40, 4), refExpand(v64>>36, 4)}
				return ModeT, c, int(((v64 >> 33) & 6) | ((v64 >> 32) & 1))
			case 1:
				c[0] = [3]int{
					refExpand(v64>>59, 4),
					refExpand(((v64>>55)&14)|((v64>>52)&1), 4),
					refExpand(((v64>>48)&8)|((v64>>47)&7), 4),
				}
				c[1] = [3]int{refExpand(v64>>43, 4), refExpand(v64>>39, 4), refExpand(v64>>35, 4)}
				idx := int(((v64 >> 32) & 4) | ((v64 >> 31) & 2))
				if c[0][0]<<16+c[0][1]<<8+c[0][2] >= c[1][0]<<16+c[1][1]<<8+c[1][2] {
					idx++
				}
				return ModeH, c, idx
			default:
				c[0] = [3]int{
					refExpand(v64>>57, 6),
					refExpand(((v64>>50)&64)|((v64>>49)&63), 7),
					refExpand(((v64>>43)&32)|((v64>>40)&24)|((v64>>39)&7), 6),
				}
				c[1] = [3]int{refExpand(((v64>>33)&62)|((v64>>32)&1), 6), refExpand(v64>>25, 7), refExpand(v64>>19, 6)}
				c[2] = [3]int{refExpand(v64>>13, 6), refExpand(v64>>6, 7), refExpand(v64, 6)}
				return ModePlanar, c, 0
			}
		}
		c[0][i] = int(a<<3 | a>>2)
		c[1][i] = b<<3 | b>>2
	}

	return ModeDifferential, c, 0
}

// refDecodeColor decodes a color codeword into row-major pixels.
func refDecodeColor(cw [8]byte) [16]color.NRGBA {
	v64 := binary.BigEndian.Uint64(cw[:])
	mode, c, dist := refResolve(cw)
	var out [16]color.NRGBA

	set := func(x, y int, r, g, b int) {
		out[y*4+x] = color.NRGBA{R: refClamp(r), G: refClamp(g), B: refClamp(b), A: 255}
	}

	switch mode {
	case ModeIndividual, ModeDifferential:
		modTbl := [8][4]int{
			{2, 8, -2, -8}, {5, 17, -5, -17}, {9, 29, -9, -29}, {13, 42, -13, -42},
			{18, 60, -18, -60}, {24, 80, -24, -80}, {33, 106, -33, -106}, {47, 183, -47, -183},
		}
		codes := [2][4]int{modTbl[(v64>>37)&7], modTbl[(v64>>34)&7]}
		flip := (v64 >> 32) & 1
		for i := uint(0); i < 16; i++ {
			x, y := int(i/4), int(i%4)
			sub := 0
			if flip == 0 && x >= 2 || flip == 1 && y >= 2 {
				sub = 1
			}
			idx := ((v64 >> i) & 1) | ((v64 >> (15 + i)) & 2)
			shift := codes[sub][idx]
			set(x, y, c[sub][0]+shift, c[sub][1]+shift, c[sub][2]+shift)
		}

	case ModeT, ModeH:
		d := []int{3, 6, 11, 16, 23, 32, 41, 64}[dist]
		var p [4][3]int
		for ch := 0; ch < 3; ch++ {
			if mode == ModeT {
				p[0][ch], p[1][ch], p[2][ch], p[3][ch] = c[0][ch], c[1][ch]+d, c[1][ch], c[1][ch]-d
			} else {
				p[0][ch], p[1][ch], p[2][ch], p[3][ch] = c[0][ch]+d, c[0][ch]-d, c[1][ch]+d, c[1][ch]-d
			}
		}
		for i := uint(0); i < 16; i++ {
			idx := ((v64 >> i) & 1) | ((v64 >> (15 + i)) & 2)
			set(int(i/4), int(i%4), p[idx][0], p[idx][1], p[idx][2])
		}

	case ModePlanar:
		for x := 0; x < 4; x++ {
			for y := 0; y < 4; y++ {
				var v [3]int
				for ch := 0; ch < 3; ch++ {
					v[ch] = (x*(c[1][ch]-c[0][ch]) + y*(c[2][ch]-c[0][ch]) + 4*c[0][ch] + 2) >> 2
				}
				set(x, y, v[0], v[1], v[2])
			}
		}
	}

	return out
}

// refDecodeAlpha returns row-major alpha values of an alpha codeword.
func refDecodeAlpha(cw [8]byte) [16]uint8 {
	v64 := binary.BigEndian.Uint64(cw[:])
	base := int(v64 >> 56)
	mul := int((v64 >> 52) & 15)
	modTbl := alphaModTable[(v64>>48)&15]

	var out [16]uint8
	for i := uint(0); i < 16; i++ {
		scan := 15 - i
		x, y := int(scan/4), int(scan%4)
		out[y*4+x] = refClamp(base + int(modTbl[(v64>>(i*3))&7])*mul)
	}
	return out
}
