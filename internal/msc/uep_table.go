package msc

// uepEntry is one row of the unequal-error-protection table indexed by
// the FIG 0/1 short-form table index: audio bitrate, protection level,
// sub-channel size and the four puncturing regions (L counts 128-symbol
// blocks; a zero L4 marks a three-region profile). Pad is the number of
// unused bits at the end of the sub-channel. Every row satisfies
//
//	sum(L)*32                      == 24*Bitrate
//	sum(4*L[i]*(8+PI[i])) + 12+Pad == 64*SizeCU
type uepEntry struct {
	Bitrate int
	Level   int
	SizeCU  int
	L       [4]int
	PI      [4]int
	Pad     int
}

var uepTable = [64]uepEntry{
	{Bitrate: 32, Level: 5, SizeCU: 16, L: [4]int{3, 4, 17, 0}, PI: [4]int{5, 3, 2, 0}, Pad: 0},
	{Bitrate: 32, Level: 4, SizeCU: 21, L: [4]int{3, 3, 18, 0}, PI: [4]int{11, 6, 5, 0}, Pad: 0},
	{Bitrate: 32, Level: 3, SizeCU: 24, L: [4]int{3, 4, 14, 3}, PI: [4]int{15, 9, 6, 8}, Pad: 0},
	{Bitrate: 32, Level: 2, SizeCU: 29, L: [4]int{3, 4, 14, 3}, PI: [4]int{22, 13, 8, 13}, Pad: 0},
	{Bitrate: 32, Level: 1, SizeCU: 35, L: [4]int{3, 5, 13, 3}, PI: [4]int{24, 17, 12, 17}, Pad: 4},
	{Bitrate: 48, Level: 5, SizeCU: 24, L: [4]int{4, 3, 26, 3}, PI: [4]int{5, 4, 2, 3}, Pad: 0},
	{Bitrate: 48, Level: 4, SizeCU: 29, L: [4]int{3, 4, 26, 3}, PI: [4]int{9, 6, 4, 6}, Pad: 0},
	{Bitrate: 48, Level: 3, SizeCU: 35, L: [4]int{3, 4, 26, 3}, PI: [4]int{15, 10, 6, 9}, Pad: 4},
	{Bitrate: 48, Level: 2, SizeCU: 42, L: [4]int{3, 4, 26, 3}, PI: [4]int{24, 14, 8, 15}, Pad: 0},
	{Bitrate: 48, Level: 1, SizeCU: 52, L: [4]int{3, 5, 25, 3}, PI: [4]int{24, 18, 13, 18}, Pad: 0},
	{Bitrate: 56, Level: 5, SizeCU: 29, L: [4]int{6, 10, 23, 3}, PI: [4]int{5, 4, 2, 3}, Pad: 0},
	{Bitrate: 56, Level: 4, SizeCU: 35, L: [4]int{6, 10, 23, 3}, PI: [4]int{9, 6, 4, 5}, Pad: 0},
	{Bitrate: 56, Level: 3, SizeCU: 42, L: [4]int{6, 12, 21, 3}, PI: [4]int{16, 7, 6, 9}, Pad: 0},
	{Bitrate: 56, Level: 2, SizeCU: 52, L: [4]int{6, 10, 23, 3}, PI: [4]int{23, 13, 8, 13}, Pad: 8},
	{Bitrate: 64, Level: 5, SizeCU: 32, L: [4]int{6, 9, 31, 2}, PI: [4]int{5, 3, 2, 3}, Pad: 0},
	{Bitrate: 64, Level: 4, SizeCU: 42, L: [4]int{6, 9, 33, 0}, PI: [4]int{11, 6, 5, 0}, Pad: 0},
	{Bitrate: 64, Level: 3, SizeCU: 48, L: [4]int{6, 12, 27, 3}, PI: [4]int{16, 8, 6, 9}, Pad: 0},
	{Bitrate: 64, Level: 2, SizeCU: 58, L: [4]int{6, 10, 29, 3}, PI: [4]int{23, 13, 8, 13}, Pad: 8},
	{Bitrate: 64, Level: 1, SizeCU: 70, L: [4]int{6, 11, 28, 3}, PI: [4]int{24, 18, 12, 18}, Pad: 4},
	{Bitrate: 80, Level: 5, SizeCU: 40, L: [4]int{6, 10, 41, 3}, PI: [4]int{6, 3, 2, 3}, Pad: 0},
	{Bitrate: 80, Level: 4, SizeCU: 52, L: [4]int{6, 10, 41, 3}, PI: [4]int{11, 6, 5, 6}, Pad: 0},
	{Bitrate: 80, Level: 3, SizeCU: 58, L: [4]int{6, 11, 42, 1}, PI: [4]int{16, 8, 6, 7}, Pad: 8},
	{Bitrate: 80, Level: 2, SizeCU: 70, L: [4]int{6, 10, 41, 3}, PI: [4]int{23, 13, 8, 13}, Pad: 8},
	{Bitrate: 80, Level: 1, SizeCU: 84, L: [4]int{6, 10, 41, 3}, PI: [4]int{24, 17, 12, 18}, Pad: 4},
	{Bitrate: 96, Level: 5, SizeCU: 48, L: [4]int{7, 9, 53, 3}, PI: [4]int{5, 4, 2, 4}, Pad: 0},
	{Bitrate: 96, Level: 4, SizeCU: 58, L: [4]int{7, 10, 52, 3}, PI: [4]int{9, 6, 4, 6}, Pad: 0},
	{Bitrate: 96, Level: 3, SizeCU: 70, L: [4]int{6, 12, 51, 3}, PI: [4]int{16, 9, 6, 10}, Pad: 4},
	{Bitrate: 96, Level: 2, SizeCU: 84, L: [4]int{6, 10, 53, 3}, PI: [4]int{22, 12, 9, 12}, Pad: 0},
	{Bitrate: 96, Level: 1, SizeCU: 104, L: [4]int{6, 13, 50, 3}, PI: [4]int{24, 18, 13, 19}, Pad: 0},
	{Bitrate: 112, Level: 5, SizeCU: 58, L: [4]int{14, 17, 50, 3}, PI: [4]int{5, 4, 2, 5}, Pad: 0},
	{Bitrate: 112, Level: 4, SizeCU: 70, L: [4]int{11, 21, 49, 3}, PI: [4]int{9, 6, 4, 8}, Pad: 0},
	{Bitrate: 112, Level: 3, SizeCU: 84, L: [4]int{11, 23, 47, 3}, PI: [4]int{16, 8, 6, 9}, Pad: 0},
	{Bitrate: 112, Level: 2, SizeCU: 104, L: [4]int{11, 21, 49, 3}, PI: [4]int{23, 12, 9, 14}, Pad: 4},
	{Bitrate: 128, Level: 5, SizeCU: 64, L: [4]int{12, 19, 62, 3}, PI: [4]int{5, 3, 2, 4}, Pad: 0},
	{Bitrate: 128, Level: 4, SizeCU: 84, L: [4]int{11, 21, 61, 3}, PI: [4]int{11, 6, 5, 7}, Pad: 0},
	{Bitrate: 128, Level: 3, SizeCU: 96, L: [4]int{11, 22, 60, 3}, PI: [4]int{16, 9, 6, 10}, Pad: 4},
	{Bitrate: 128, Level: 2, SizeCU: 116, L: [4]int{11, 21, 61, 3}, PI: [4]int{22, 12, 9, 14}, Pad: 0},
	{Bitrate: 128, Level: 1, SizeCU: 140, L: [4]int{11, 20, 62, 3}, PI: [4]int{24, 17, 13, 19}, Pad: 8},
	{Bitrate: 160, Level: 5, SizeCU: 80, L: [4]int{11, 19, 87, 3}, PI: [4]int{5, 4, 2, 4}, Pad: 0},
	{Bitrate: 160, Level: 4, SizeCU: 104, L: [4]int{11, 23, 83, 3}, PI: [4]int{11, 6, 5, 9}, Pad: 0},
	{Bitrate: 160, Level: 3, SizeCU: 116, L: [4]int{11, 24, 82, 3}, PI: [4]int{16, 8, 6, 11}, Pad: 0},
	{Bitrate: 160, Level: 2, SizeCU: 140, L: [4]int{11, 21, 85, 3}, PI: [4]int{22, 11, 9, 13}, Pad: 0},
	{Bitrate: 160, Level: 1, SizeCU: 168, L: [4]int{11, 22, 84, 3}, PI: [4]int{24, 18, 12, 19}, Pad: 0},
	{Bitrate: 192, Level: 5, SizeCU: 96, L: [4]int{11, 20, 110, 3}, PI: [4]int{6, 4, 2, 5}, Pad: 0},
	{Bitrate: 192, Level: 4, SizeCU: 116, L: [4]int{11, 22, 108, 3}, PI: [4]int{10, 6, 4, 9}, Pad: 0},
	{Bitrate: 192, Level: 3, SizeCU: 140, L: [4]int{11, 24, 106, 3}, PI: [4]int{16, 10, 6, 11}, Pad: 0},
	{Bitrate: 192, Level: 2, SizeCU: 168, L: [4]int{11, 27, 103, 3}, PI: [4]int{20, 13, 9, 11}, Pad: 8},
	{Bitrate: 192, Level: 1, SizeCU: 208, L: [4]int{11, 32, 98, 3}, PI: [4]int{24, 18, 13, 19}, Pad: 8},
	{Bitrate: 224, Level: 5, SizeCU: 116, L: [4]int{11, 26, 128, 3}, PI: [4]int{8, 6, 2, 3}, Pad: 0},
	{Bitrate: 224, Level: 4, SizeCU: 140, L: [4]int{11, 23, 131, 3}, PI: [4]int{12, 9, 4, 10}, Pad: 0},
	{Bitrate: 224, Level: 3, SizeCU: 168, L: [4]int{11, 20, 134, 3}, PI: [4]int{16, 10, 7, 9}, Pad: 0},
	{Bitrate: 224, Level: 2, SizeCU: 208, L: [4]int{11, 22, 132, 3}, PI: [4]int{24, 16, 10, 15}, Pad: 0},
	{Bitrate: 224, Level: 1, SizeCU: 232, L: [4]int{11, 24, 130, 3}, PI: [4]int{24, 20, 12, 20}, Pad: 4},
	{Bitrate: 256, Level: 5, SizeCU: 128, L: [4]int{11, 24, 154, 3}, PI: [4]int{6, 5, 2, 5}, Pad: 0},
	{Bitrate: 256, Level: 4, SizeCU: 168, L: [4]int{11, 24, 154, 3}, PI: [4]int{12, 9, 5, 10}, Pad: 4},
	{Bitrate: 256, Level: 3, SizeCU: 192, L: [4]int{11, 27, 151, 3}, PI: [4]int{16, 10, 7, 10}, Pad: 0},
	{Bitrate: 256, Level: 2, SizeCU: 232, L: [4]int{11, 22, 156, 3}, PI: [4]int{24, 14, 10, 13}, Pad: 8},
	{Bitrate: 256, Level: 1, SizeCU: 280, L: [4]int{11, 26, 152, 3}, PI: [4]int{24, 19, 14, 18}, Pad: 4},
	{Bitrate: 320, Level: 5, SizeCU: 160, L: [4]int{11, 26, 200, 3}, PI: [4]int{8, 5, 2, 6}, Pad: 4},
	{Bitrate: 320, Level: 4, SizeCU: 208, L: [4]int{11, 25, 201, 3}, PI: [4]int{13, 9, 5, 10}, Pad: 8},
	{Bitrate: 320, Level: 2, SizeCU: 280, L: [4]int{11, 26, 200, 3}, PI: [4]int{24, 17, 9, 17}, Pad: 0},
	{Bitrate: 384, Level: 5, SizeCU: 192, L: [4]int{11, 27, 247, 3}, PI: [4]int{8, 6, 2, 7}, Pad: 0},
	{Bitrate: 384, Level: 3, SizeCU: 280, L: [4]int{11, 24, 250, 3}, PI: [4]int{16, 9, 7, 10}, Pad: 4},
	{Bitrate: 384, Level: 1, SizeCU: 416, L: [4]int{12, 28, 245, 3}, PI: [4]int{24, 20, 14, 23}, Pad: 8},
}
