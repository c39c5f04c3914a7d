package etc2

// writeOrder maps a codeword scan index (column-major) to a row-major pixel.
var writeOrder = [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}

// reverseWriteOrder is writeOrder for the alpha codeword, which is scanned
// from the last pixel backwards.
var reverseWriteOrder = [16]uint8{15, 11, 7, 3, 14, 10, 6, 2, 13, 9, 5, 1, 12, 8, 4, 0}

// distanceTable holds the T/H mode palette distances.
var distanceTable = [8]uint8{3, 6, 11, 16, 23, 32, 41, 64}

// alphaModTable holds the EAC alpha modifiers, one row per table selector.
var alphaModTable = [16][8]int8{
	{-3, -6, -9, -15, 2, 5, 8, 14},
	{-3, -7, -10, -13, 2, 6, 9, 12},
	{-2, -5, -8, -13, 1, 4, 7, 12},
	{-2, -4, -6, -13, 1, 3, 5, 12},
	{-3, -6, -8, -12, 2, 5, 7, 11},
	{-3, -7, -9, -11, 2, 6, 8, 10},
	{-4, -7, -8, -11, 3, 6, 7, 10},
	{-3, -5, -8, -11, 2, 4, 7, 10},
	{-2, -6, -8, -10, 1, 5, 7, 9},
	{-2, -5, -8, -10, 1, 4, 7, 9},
	{-2, -4, -8, -10, 1, 3, 7, 9},
	{-2, -5, -7, -10, 1, 4, 6, 9},
	{-3, -4, -7, -10, 2, 3, 6, 9},
	{-1, -2, -3, -10, 0, 1, 2, 9},
	{-4, -6, -8, -9, 3, 5, 7, 8},
	{-3, -5, -7, -9, 2, 4, 6, 8},
}

// modifierTable holds the ETC1 intensity modifiers indexed by table code and
// selector LSB. The selector MSB negates the value.
var modifierTable = [8][2]uint8{
	{2, 8},
	{5, 17},
	{9, 29},
	{13, 42},
	{18, 60},
	{24, 80},
	{33, 106},
	{47, 183},
}

// subblockTable maps a scan index to its subblock for flip=0 (2x4 halves
// side by side) and flip=1 (4x2 halves stacked).
var subblockTable = [2][16]uint8{
	{0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1},
	{0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1, 0, 0, 1, 1},
}
