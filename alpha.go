package etc2

import "encoding/binary"

// ApplyAlpha decodes an 8-byte EAC alpha codeword into the alpha channel of
// blk. RGB channels are left untouched.
//
// Layout (big endian): base (8 bits), multiplier (4), table (4), then 16
// 3-bit indices with pixel 15 in the most significant position.
func ApplyAlpha(cw [8]byte, blk *Block) {
	base := cw[0]
	mul := int(cw[1] >> 4)

	// a zero multiplier makes every pixel the base value
	if mul == 0 {
		for i := range blk {
			blk[i].A = base
		}
		return
	}

	table := &alphaModTable[cw[1]&0x0f]
	bits := binary.BigEndian.Uint64(cw[:])
	for i := 0; i < 16; i++ {
		blk[reverseWriteOrder[i]].A = clamp(int(base) + mul*int(table[bits&0x07]))
		bits >>= 3
	}
}
