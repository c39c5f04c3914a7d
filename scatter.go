package etc2

// blockRun returns how many pixels of a block row at block column bx fall
// inside an image of the given width.
func blockRun(width, bx int) int {
	return min(4, width-bx*4)
}

// copyBlock writes blk into the RGBA8 pixel buffer pix at block (bx, by).
// Columns at or past width and rows at or past height are dropped.
func copyBlock(pix []byte, width, height, bx, by int, blk *Block) {
	x := bx * 4
	run := blockRun(width, bx)
	for row := 0; row < 4; row++ {
		y := by*4 + row
		if y >= height {
			return
		}

		off := (y*width + x) * 4
		dst := pix[off : off+run*4]
		src := blk[row*4 : row*4+run]
		for i, p := range src {
			dst[i*4+0] = p.R
			dst[i*4+1] = p.G
			dst[i*4+2] = p.B
			dst[i*4+3] = p.A
		}
	}
}
