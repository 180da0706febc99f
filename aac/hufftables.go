package aac

// Spectral codebooks 1-11 and the scalefactor codebook, stored as
// parallel length/codeword/value arrays and compiled into decode trees
// at init (ISO/IEC 13818-7 §8.5). Codebooks 1-4 emit quads, 5-11 pairs;
// 3, 4 and 7-11 are unsigned with separate sign bits, and codebook 11
// carries the escape value 16.

// Codebook 1: dim 4, lav 1, signed, max 11 bits
var hcbLens1 = []uint8{
	11, 10, 11, 9, 7, 9, 11, 10, 11, 9, 7, 9, 7, 5, 7, 9, 7, 9,
	11, 10, 11, 9, 7, 9, 11, 10, 11, 9, 7, 9, 7, 5, 7, 9, 7, 9,
	7, 5, 7, 5, 1, 5, 7, 5, 7, 9, 7, 9, 7, 5, 7, 9, 7, 9,
	11, 10, 11, 9, 7, 9, 11, 10, 11, 9, 7, 9, 7, 5, 7, 9, 7, 9,
	11, 10, 11, 9, 7, 9, 11, 10, 11,
}
var hcbCodes1 = []uint32{
	0x7f0, 0x3f0, 0x7f1, 0x1e0, 0x61, 0x1e1, 0x7f2, 0x3f1, 0x7f3, 0x1e2, 0x62, 0x1e3,
	0x63, 0x11, 0x64, 0x1e4, 0x65, 0x1e5, 0x7f4, 0x3f2, 0x7f5, 0x1f0, 0x66, 0x1e6,
	0x7f6, 0x3f3, 0x7f7, 0x1e7, 0x67, 0x1e8, 0x68, 0x12, 0x69, 0x1e9, 0x6a, 0x1ea,
	0x6b, 0x13, 0x6c, 0x14, 0x0, 0x15, 0x6d, 0x16, 0x6e, 0x1eb, 0x6f, 0x1ec,
	0x70, 0x17, 0x71, 0x1ed, 0x72, 0x1ee, 0x7f8, 0x3f4, 0x7f9, 0x1ef, 0x60, 0x1f1,
	0x7fa, 0x3f5, 0x7fb, 0x1f2, 0x73, 0x1f3, 0x74, 0x10, 0x75, 0x1f4, 0x76, 0x1f5,
	0x7fc, 0x3f6, 0x7fd, 0x1f6, 0x77, 0x1f7, 0x7ff, 0x3f7, 0x7fe,
}
var hcbVals1 = []int8{
	-1, -1, -1, -1, -1, -1, -1, 0, -1, -1, -1, 1, -1, -1, 0, -1, -1, -1, 0, 0, -1, -1, 0, 1,
	-1, -1, 1, -1, -1, -1, 1, 0, -1, -1, 1, 1, -1, 0, -1, -1, -1, 0, -1, 0, -1, 0, -1, 1,
	-1, 0, 0, -1, -1, 0, 0, 0, -1, 0, 0, 1, -1, 0, 1, -1, -1, 0, 1, 0, -1, 0, 1, 1,
	-1, 1, -1, -1, -1, 1, -1, 0, -1, 1, -1, 1, -1, 1, 0, -1, -1, 1, 0, 0, -1, 1, 0, 1,
	-1, 1, 1, -1, -1, 1, 1, 0, -1, 1, 1, 1, 0, -1, -1, -1, 0, -1, -1, 0, 0, -1, -1, 1,
	0, -1, 0, -1, 0, -1, 0, 0, 0, -1, 0, 1, 0, -1, 1, -1, 0, -1, 1, 0, 0, -1, 1, 1,
	0, 0, -1, -1, 0, 0, -1, 0, 0, 0, -1, 1, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 1,
	0, 0, 1, -1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 1, -1, -1, 0, 1, -1, 0, 0, 1, -1, 1,
	0, 1, 0, -1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, -1, 0, 1, 1, 0, 0, 1, 1, 1,
	1, -1, -1, -1, 1, -1, -1, 0, 1, -1, -1, 1, 1, -1, 0, -1, 1, -1, 0, 0, 1, -1, 0, 1,
	1, -1, 1, -1, 1, -1, 1, 0, 1, -1, 1, 1, 1, 0, -1, -1, 1, 0, -1, 0, 1, 0, -1, 1,
	1, 0, 0, -1, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, -1, 1, 0, 1, 0, 1, 0, 1, 1,
	1, 1, -1, -1, 1, 1, -1, 0, 1, 1, -1, 1, 1, 1, 0, -1, 1, 1, 0, 0, 1, 1, 0, 1,
	1, 1, 1, -1, 1, 1, 1, 0, 1, 1, 1, 1,
}

// Codebook 2: dim 4, lav 1, signed, max 9 bits
var hcbLens2 = []uint8{
	9, 8, 9, 8, 6, 8, 9, 8, 9, 8, 6, 7, 6, 5, 6, 7, 6, 7,
	9, 8, 8, 8, 6, 8, 9, 8, 9, 7, 6, 7, 6, 5, 6, 7, 6, 7,
	6, 5, 6, 5, 3, 5, 6, 5, 6, 7, 6, 7, 6, 5, 6, 7, 6, 7,
	9, 8, 9, 8, 6, 8, 8, 8, 9, 7, 6, 7, 6, 4, 6, 7, 6, 7,
	9, 8, 9, 8, 6, 8, 9, 8, 9,
}
var hcbCodes2 = []uint32{
	0x1f3, 0xe8, 0x1f4, 0xe9, 0x1b, 0xea, 0x1f5, 0xeb, 0x1f6, 0xec, 0x1c, 0x65,
	0x1d, 0x6, 0x1e, 0x66, 0x1f, 0x67, 0x1f7, 0xed, 0xf8, 0xe7, 0x20, 0xee,
	0x1f8, 0xef, 0x1f9, 0x68, 0x21, 0x69, 0x22, 0x7, 0x23, 0x6a, 0x1a, 0x6b,
	0x24, 0x8, 0x25, 0x9, 0x0, 0xa, 0x26, 0xb, 0x27, 0x6c, 0x28, 0x64,
	0x29, 0xc, 0x2a, 0x6d, 0x2b, 0x6e, 0x1fa, 0xf0, 0x1f2, 0xf1, 0x2c, 0xe6,
	0xf7, 0xf2, 0x1fb, 0x6f, 0x2d, 0x70, 0x2e, 0x2, 0x2f, 0x71, 0x30, 0x72,
	0x1fc, 0xf3, 0x1fd, 0xf4, 0x31, 0xf5, 0x1ff, 0xf6, 0x1fe,
}
var hcbVals2 = []int8{
	-1, -1, -1, -1, -1, -1, -1, 0, -1, -1, -1, 1, -1, -1, 0, -1, -1, -1, 0, 0, -1, -1, 0, 1,
	-1, -1, 1, -1, -1, -1, 1, 0, -1, -1, 1, 1, -1, 0, -1, -1, -1, 0, -1, 0, -1, 0, -1, 1,
	-1, 0, 0, -1, -1, 0, 0, 0, -1, 0, 0, 1, -1, 0, 1, -1, -1, 0, 1, 0, -1, 0, 1, 1,
	-1, 1, -1, -1, -1, 1, -1, 0, -1, 1, -1, 1, -1, 1, 0, -1, -1, 1, 0, 0, -1, 1, 0, 1,
	-1, 1, 1, -1, -1, 1, 1, 0, -1, 1, 1, 1, 0, -1, -1, -1, 0, -1, -1, 0, 0, -1, -1, 1,
	0, -1, 0, -1, 0, -1, 0, 0, 0, -1, 0, 1, 0, -1, 1, -1, 0, -1, 1, 0, 0, -1, 1, 1,
	0, 0, -1, -1, 0, 0, -1, 0, 0, 0, -1, 1, 0, 0, 0, -1, 0, 0, 0, 0, 0, 0, 0, 1,
	0, 0, 1, -1, 0, 0, 1, 0, 0, 0, 1, 1, 0, 1, -1, -1, 0, 1, -1, 0, 0, 1, -1, 1,
	0, 1, 0, -1, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 1, -1, 0, 1, 1, 0, 0, 1, 1, 1,
	1, -1, -1, -1, 1, -1, -1, 0, 1, -1, -1, 1, 1, -1, 0, -1, 1, -1, 0, 0, 1, -1, 0, 1,
	1, -1, 1, -1, 1, -1, 1, 0, 1, -1, 1, 1, 1, 0, -1, -1, 1, 0, -1, 0, 1, 0, -1, 1,
	1, 0, 0, -1, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 1, -1, 1, 0, 1, 0, 1, 0, 1, 1,
	1, 1, -1, -1, 1, 1, -1, 0, 1, 1, -1, 1, 1, 1, 0, -1, 1, 1, 0, 0, 1, 1, 0, 1,
	1, 1, 1, -1, 1, 1, 1, 0, 1, 1, 1, 1,
}

// Codebook 3: dim 4, lav 2, unsigned, max 11 bits
var hcbLens3 = []uint8{
	1, 4, 6, 4, 6, 8, 6, 8, 10, 4, 6, 8, 6, 9, 10, 8, 10, 10,
	6, 8, 10, 8, 10, 10, 10, 10, 11, 4, 6, 8, 6, 9, 10, 8, 10, 10,
	6, 9, 10, 10, 10, 11, 9, 11, 11, 8, 10, 10, 10, 11, 11, 10, 11, 11,
	6, 8, 10, 8, 10, 10, 10, 10, 11, 8, 10, 10, 10, 11, 11, 10, 11, 11,
	10, 10, 11, 11, 11, 11, 11, 11, 11,
}
var hcbCodes3 = []uint32{
	0x0, 0x9, 0x30, 0xa, 0x34, 0xe8, 0x31, 0xe9, 0x3d9, 0xb, 0x35, 0xea,
	0x36, 0x1e8, 0x3df, 0xeb, 0x3e0, 0x3eb, 0x32, 0xec, 0x3da, 0xed, 0x3e1, 0x3ec,
	0x3db, 0x3ed, 0x7f1, 0x8, 0x37, 0xee, 0x38, 0x1e9, 0x3e2, 0xef, 0x3e3, 0x3ee,
	0x39, 0x1ea, 0x3e4, 0x3d8, 0x3ea, 0x7ed, 0x1eb, 0x7ee, 0x7f4, 0xf0, 0x3e5, 0x3ef,
	0x3e6, 0x7ef, 0x7f5, 0x3f0, 0x7f6, 0x7fa, 0x33, 0xf1, 0x3dc, 0xf2, 0x3e7, 0x3f1,
	0x3dd, 0x3f2, 0x7ff, 0xf3, 0x3e8, 0x3f3, 0x3e9, 0x7f0, 0x7f7, 0x3f4, 0x7f8, 0x7fb,
	0x3de, 0x3f5, 0x7f2, 0x7ec, 0x7f9, 0x7fc, 0x7f3, 0x7fd, 0x7fe,
}
var hcbVals3 = []int8{
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 2,
	0, 0, 2, 0, 0, 0, 2, 1, 0, 0, 2, 2, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 2,
	0, 1, 1, 0, 0, 1, 1, 1, 0, 1, 1, 2, 0, 1, 2, 0, 0, 1, 2, 1, 0, 1, 2, 2,
	0, 2, 0, 0, 0, 2, 0, 1, 0, 2, 0, 2, 0, 2, 1, 0, 0, 2, 1, 1, 0, 2, 1, 2,
	0, 2, 2, 0, 0, 2, 2, 1, 0, 2, 2, 2, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 2,
	1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 2, 1, 0, 2, 0, 1, 0, 2, 1, 1, 0, 2, 2,
	1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 2, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 2,
	1, 1, 2, 0, 1, 1, 2, 1, 1, 1, 2, 2, 1, 2, 0, 0, 1, 2, 0, 1, 1, 2, 0, 2,
	1, 2, 1, 0, 1, 2, 1, 1, 1, 2, 1, 2, 1, 2, 2, 0, 1, 2, 2, 1, 1, 2, 2, 2,
	2, 0, 0, 0, 2, 0, 0, 1, 2, 0, 0, 2, 2, 0, 1, 0, 2, 0, 1, 1, 2, 0, 1, 2,
	2, 0, 2, 0, 2, 0, 2, 1, 2, 0, 2, 2, 2, 1, 0, 0, 2, 1, 0, 1, 2, 1, 0, 2,
	2, 1, 1, 0, 2, 1, 1, 1, 2, 1, 1, 2, 2, 1, 2, 0, 2, 1, 2, 1, 2, 1, 2, 2,
	2, 2, 0, 0, 2, 2, 0, 1, 2, 2, 0, 2, 2, 2, 1, 0, 2, 2, 1, 1, 2, 2, 1, 2,
	2, 2, 2, 0, 2, 2, 2, 1, 2, 2, 2, 2,
}

// Codebook 4: dim 4, lav 2, unsigned, max 12 bits
var hcbLens4 = []uint8{
	4, 5, 9, 5, 4, 8, 9, 8, 9, 5, 4, 8, 4, 4, 7, 8, 7, 9,
	9, 8, 9, 8, 7, 9, 10, 9, 11, 5, 4, 8, 5, 4, 7, 8, 8, 9,
	5, 4, 8, 4, 4, 7, 8, 7, 9, 9, 8, 9, 8, 7, 9, 9, 9, 11,
	9, 9, 10, 9, 8, 9, 10, 9, 12, 9, 8, 9, 8, 7, 9, 9, 9, 11,
	10, 9, 12, 9, 9, 11, 11, 11, 11,
}
var hcbCodes4 = []uint32{
	0x7, 0x16, 0x1e4, 0x17, 0x5, 0xe8, 0x1ef, 0xe9, 0x1fa, 0x18, 0x6, 0xea,
	0x8, 0x1, 0x6c, 0xeb, 0x6d, 0x1eb, 0x1ee, 0xec, 0x1fb, 0xed, 0x6e, 0x1ec,
	0x3f8, 0x1ed, 0x7fc, 0x19, 0x9, 0xee, 0x14, 0x2, 0x6f, 0xef, 0xe0, 0x1f0,
	0x15, 0x3, 0xe1, 0x4, 0x0, 0x69, 0xe2, 0x6a, 0x1e6, 0x1e0, 0xe3, 0x1f1,
	0xe4, 0x6b, 0x1f4, 0x1f2, 0x1e7, 0x7f8, 0x1e5, 0x1e1, 0x3f9, 0x1e2, 0xe5, 0x1f3,
	0x3fa, 0x1f5, 0xfff, 0x1e3, 0xe6, 0x1f6, 0xe7, 0x68, 0x1e8, 0x1f7, 0x1e9, 0x7f9,
	0x3fb, 0x1f8, 0xffe, 0x1f9, 0x1ea, 0x7fa, 0x7fd, 0x7fb, 0x7fe,
}
var hcbVals4 = []int8{
	0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 1, 0, 0, 0, 1, 1, 0, 0, 1, 2,
	0, 0, 2, 0, 0, 0, 2, 1, 0, 0, 2, 2, 0, 1, 0, 0, 0, 1, 0, 1, 0, 1, 0, 2,
	0, 1, 1, 0, 0, 1, 1, 1, 0, 1, 1, 2, 0, 1, 2, 0, 0, 1, 2, 1, 0, 1, 2, 2,
	0, 2, 0, 0, 0, 2, 0, 1, 0, 2, 0, 2, 0, 2, 1, 0, 0, 2, 1, 1, 0, 2, 1, 2,
	0, 2, 2, 0, 0, 2, 2, 1, 0, 2, 2, 2, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0, 2,
	1, 0, 1, 0, 1, 0, 1, 1, 1, 0, 1, 2, 1, 0, 2, 0, 1, 0, 2, 1, 1, 0, 2, 2,
	1, 1, 0, 0, 1, 1, 0, 1, 1, 1, 0, 2, 1, 1, 1, 0, 1, 1, 1, 1, 1, 1, 1, 2,
	1, 1, 2, 0, 1, 1, 2, 1, 1, 1, 2, 2, 1, 2, 0, 0, 1, 2, 0, 1, 1, 2, 0, 2,
	1, 2, 1, 0, 1, 2, 1, 1, 1, 2, 1, 2, 1, 2, 2, 0, 1, 2, 2, 1, 1, 2, 2, 2,
	2, 0, 0, 0, 2, 0, 0, 1, 2, 0, 0, 2, 2, 0, 1, 0, 2, 0, 1, 1, 2, 0, 1, 2,
	2, 0, 2, 0, 2, 0, 2, 1, 2, 0, 2, 2, 2, 1, 0, 0, 2, 1, 0, 1, 2, 1, 0, 2,
	2, 1, 1, 0, 2, 1, 1, 1, 2, 1, 1, 2, 2, 1, 2, 0, 2, 1, 2, 1, 2, 1, 2, 2,
	2, 2, 0, 0, 2, 2, 0, 1, 2, 2, 0, 2, 2, 2, 1, 0, 2, 2, 1, 1, 2, 2, 1, 2,
	2, 2, 2, 0, 2, 2, 2, 1, 2, 2, 2, 2,
}

// Codebook 5: dim 2, lav 4, signed, max 14 bits
var hcbLens5 = []uint8{
	14, 13, 13, 12, 11, 12, 13, 13, 14, 13, 13, 12, 10, 9, 10, 12, 13, 13,
	13, 12, 9, 7, 7, 7, 9, 12, 13, 12, 10, 7, 5, 4, 5, 7, 10, 12,
	11, 9, 7, 4, 1, 4, 7, 9, 11, 13, 10, 7, 5, 4, 5, 7, 10, 13,
	13, 12, 9, 7, 7, 7, 9, 12, 13, 14, 13, 12, 10, 9, 10, 12, 13, 14,
	14, 14, 13, 13, 11, 13, 13, 14, 14,
}
var hcbCodes5 = []uint32{
	0x3fff, 0x1ff8, 0x1ff0, 0xff0, 0x7f0, 0xff1, 0x1ff1, 0x1ff9, 0x3ffc, 0x1ffa, 0x1fec, 0xfe8,
	0x3f0, 0x1f0, 0x3f1, 0xfe9, 0x1fed, 0x1ffb, 0x1ff2, 0xfea, 0x1f4, 0x74, 0x70, 0x75,
	0x1f5, 0xfeb, 0x1ff3, 0xff2, 0x3f2, 0x76, 0x1a, 0x8, 0x19, 0x77, 0x3f7, 0xff3,
	0x7f1, 0x1f1, 0x71, 0xb, 0x0, 0xa, 0x72, 0x1f2, 0x7f2, 0x1fe8, 0x3f3, 0x78,
	0x18, 0x9, 0x1b, 0x79, 0x3f4, 0x1fe9, 0x1ff4, 0xfec, 0x1f6, 0x7a, 0x73, 0x7b,
	0x1f7, 0xfed, 0x1ff5, 0x3ff8, 0x1fee, 0xfee, 0x3f5, 0x1f3, 0x3f6, 0xfef, 0x1fef, 0x3ff9,
	0x3ffd, 0x3ffa, 0x1ff6, 0x1fea, 0x7f3, 0x1feb, 0x1ff7, 0x3ffb, 0x3ffe,
}
var hcbVals5 = []int8{
	-4, -4, -4, -3, -4, -2, -4, -1, -4, 0, -4, 1, -4, 2, -4, 3, -4, 4, -3, -4, -3, -3, -3, -2,
	-3, -1, -3, 0, -3, 1, -3, 2, -3, 3, -3, 4, -2, -4, -2, -3, -2, -2, -2, -1, -2, 0, -2, 1,
	-2, 2, -2, 3, -2, 4, -1, -4, -1, -3, -1, -2, -1, -1, -1, 0, -1, 1, -1, 2, -1, 3, -1, 4,
	0, -4, 0, -3, 0, -2, 0, -1, 0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 1, -4, 1, -3, 1, -2,
	1, -1, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 2, -4, 2, -3, 2, -2, 2, -1, 2, 0, 2, 1,
	2, 2, 2, 3, 2, 4, 3, -4, 3, -3, 3, -2, 3, -1, 3, 0, 3, 1, 3, 2, 3, 3, 3, 4,
	4, -4, 4, -3, 4, -2, 4, -1, 4, 0, 4, 1, 4, 2, 4, 3, 4, 4,
}

// Codebook 6: dim 2, lav 4, signed, max 11 bits
var hcbLens6 = []uint8{
	11, 10, 9, 9, 9, 9, 9, 10, 11, 10, 9, 8, 7, 7, 7, 8, 9, 10,
	9, 8, 6, 6, 6, 6, 6, 8, 9, 9, 7, 6, 4, 4, 4, 6, 7, 9,
	9, 7, 6, 4, 4, 4, 6, 7, 9, 9, 7, 6, 4, 4, 4, 6, 7, 9,
	9, 8, 6, 6, 6, 6, 6, 8, 9, 10, 9, 8, 7, 7, 7, 7, 8, 10,
	11, 10, 9, 9, 9, 9, 9, 10, 11,
}
var hcbCodes6 = []uint32{
	0x7fe, 0x3f8, 0x1f2, 0x1e8, 0x1e5, 0x1e9, 0x1f0, 0x3f9, 0x7fd, 0x3f6, 0x1f3, 0xea,
	0x6d, 0x6a, 0x68, 0xf0, 0x1f4, 0x3f7, 0x1f5, 0xef, 0x30, 0x2b, 0x26, 0x2c,
	0x31, 0xeb, 0x1f6, 0x1ea, 0x6e, 0x2d, 0x8, 0x4, 0x6, 0x29, 0x6f, 0x1eb,
	0x1ef, 0x6b, 0x27, 0x2, 0x0, 0x3, 0x28, 0x73, 0x1e6, 0x1ec, 0x70, 0x2e,
	0x7, 0x1, 0x5, 0x2f, 0x71, 0x1ed, 0x1f7, 0xec, 0x32, 0x24, 0x2a, 0x25,
	0x33, 0xed, 0x1f8, 0x3fa, 0x1e4, 0xee, 0x72, 0x6c, 0x69, 0x74, 0xf1, 0x3fb,
	0x7ff, 0x3fc, 0x1f9, 0x1ee, 0x1e7, 0x1f1, 0x1fa, 0x3fd, 0x7fc,
}
var hcbVals6 = []int8{
	-4, -4, -4, -3, -4, -2, -4, -1, -4, 0, -4, 1, -4, 2, -4, 3, -4, 4, -3, -4, -3, -3, -3, -2,
	-3, -1, -3, 0, -3, 1, -3, 2, -3, 3, -3, 4, -2, -4, -2, -3, -2, -2, -2, -1, -2, 0, -2, 1,
	-2, 2, -2, 3, -2, 4, -1, -4, -1, -3, -1, -2, -1, -1, -1, 0, -1, 1, -1, 2, -1, 3, -1, 4,
	0, -4, 0, -3, 0, -2, 0, -1, 0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 1, -4, 1, -3, 1, -2,
	1, -1, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 2, -4, 2, -3, 2, -2, 2, -1, 2, 0, 2, 1,
	2, 2, 2, 3, 2, 4, 3, -4, 3, -3, 3, -2, 3, -1, 3, 0, 3, 1, 3, 2, 3, 3, 3, 4,
	4, -4, 4, -3, 4, -2, 4, -1, 4, 0, 4, 1, 4, 2, 4, 3, 4, 4,
}

// Codebook 7: dim 2, lav 7, unsigned, max 11 bits
var hcbLens7 = []uint8{
	1, 3, 6, 7, 8, 8, 9, 9, 3, 4, 6, 7, 8, 9, 9, 10, 6, 6,
	7, 8, 8, 9, 10, 10, 7, 7, 8, 8, 9, 10, 10, 10, 8, 8, 9, 9,
	10, 10, 10, 11, 8, 9, 9, 10, 10, 10, 11, 11, 9, 9, 10, 10, 10, 11,
	11, 11, 10, 10, 10, 10, 11, 11, 11, 11,
}
var hcbCodes7 = []uint32{
	0x0, 0x5, 0x36, 0x70, 0xea, 0xf1, 0x1eb, 0x1f3, 0x4, 0xc, 0x35, 0x73,
	0xee, 0x1e9, 0x1f1, 0x3ee, 0x37, 0x34, 0x72, 0xec, 0xf3, 0x1ef, 0x3ec, 0x3f5,
	0x71, 0x74, 0xed, 0xf0, 0x1ed, 0x3e9, 0x3f2, 0x3f9, 0xeb, 0xef, 0x1e8, 0x1ee,
	0x3eb, 0x3f0, 0x3f7, 0x7f8, 0xf2, 0x1ea, 0x1f0, 0x3ea, 0x3f1, 0x3f4, 0x7f6, 0x7fa,
	0x1ec, 0x1f2, 0x3ed, 0x3f3, 0x3f8, 0x7f7, 0x7fd, 0x7fc, 0x3e8, 0x3ef, 0x3f6, 0x3fa,
	0x7f9, 0x7fb, 0x7fe, 0x7ff,
}
var hcbVals7 = []int8{
	0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 1, 0, 1, 1, 1, 2, 1, 3,
	1, 4, 1, 5, 1, 6, 1, 7, 2, 0, 2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2, 7,
	3, 0, 3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7, 4, 0, 4, 1, 4, 2, 4, 3,
	4, 4, 4, 5, 4, 6, 4, 7, 5, 0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5, 6, 5, 7,
	6, 0, 6, 1, 6, 2, 6, 3, 6, 4, 6, 5, 6, 6, 6, 7, 7, 0, 7, 1, 7, 2, 7, 3,
	7, 4, 7, 5, 7, 6, 7, 7,
}

// Codebook 8: dim 2, lav 7, unsigned, max 10 bits
var hcbLens8 = []uint8{
	5, 4, 5, 6, 7, 8, 9, 10, 4, 3, 4, 5, 6, 7, 7, 8, 5, 4,
	4, 5, 6, 7, 7, 8, 6, 5, 5, 6, 6, 7, 8, 8, 7, 6, 6, 6,
	7, 7, 8, 9, 8, 7, 6, 7, 7, 8, 8, 10, 9, 7, 7, 8, 8, 8,
	9, 9, 10, 8, 8, 8, 9, 9, 9, 10,
}
var hcbCodes8 = []uint32{
	0xe, 0x5, 0x10, 0x30, 0x6f, 0xf1, 0x1fa, 0x3fe, 0x3, 0x0, 0x4, 0x12,
	0x2c, 0x6a, 0x75, 0xf8, 0xf, 0x2, 0x6, 0x14, 0x2e, 0x69, 0x72, 0xf5,
	0x2f, 0x11, 0x13, 0x2a, 0x32, 0x6c, 0xec, 0xfa, 0x71, 0x2b, 0x2d, 0x31,
	0x6d, 0x70, 0xf2, 0x1f9, 0xef, 0x68, 0x33, 0x6b, 0x6e, 0xee, 0xf9, 0x3fc,
	0x1f8, 0x74, 0x73, 0xed, 0xf0, 0xf6, 0x1f6, 0x1fd, 0x3fd, 0xf3, 0xf4, 0xf7,
	0x1f7, 0x1fb, 0x1fc, 0x3ff,
}
var hcbVals8 = []int8{
	0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 1, 0, 1, 1, 1, 2, 1, 3,
	1, 4, 1, 5, 1, 6, 1, 7, 2, 0, 2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2, 7,
	3, 0, 3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7, 4, 0, 4, 1, 4, 2, 4, 3,
	4, 4, 4, 5, 4, 6, 4, 7, 5, 0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5, 6, 5, 7,
	6, 0, 6, 1, 6, 2, 6, 3, 6, 4, 6, 5, 6, 6, 6, 7, 7, 0, 7, 1, 7, 2, 7, 3,
	7, 4, 7, 5, 7, 6, 7, 7,
}

// Codebook 9: dim 2, lav 12, unsigned, max 15 bits
var hcbLens9 = []uint8{
	1, 3, 4, 6, 9, 12, 13, 14, 14, 14, 14, 14, 14, 3, 4, 7, 8, 12,
	13, 13, 14, 14, 14, 14, 14, 15, 4, 7, 9, 11, 12, 13, 14, 14, 14, 14,
	14, 15, 15, 7, 8, 12, 12, 13, 14, 14, 14, 14, 14, 14, 15, 15, 9, 12,
	12, 13, 13, 14, 14, 14, 14, 14, 15, 15, 15, 12, 13, 13, 14, 14, 14, 14,
	14, 14, 15, 15, 15, 15, 13, 14, 14, 14, 14, 14, 14, 14, 15, 15, 15, 15,
	15, 14, 14, 14, 14, 14, 14, 14, 15, 15, 15, 15, 15, 15, 14, 14, 14, 14,
	14, 14, 15, 15, 15, 15, 15, 15, 15, 14, 14, 14, 14, 14, 15, 15, 15, 15,
	15, 15, 15, 15, 14, 14, 14, 14, 15, 15, 15, 15, 15, 15, 15, 15, 15, 14,
	14, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 14, 15, 15, 15, 15, 15,
	15, 15, 15, 15, 15, 15, 15,
}
var hcbCodes9 = []uint32{
	0x0, 0x5, 0xd, 0x3c, 0x1f8, 0xfdd, 0x1fc6, 0x3f9e, 0x3f9d, 0x3fb2, 0x3fbe, 0x3fca,
	0x3fd9, 0x4, 0xc, 0x7b, 0xfa, 0xfdb, 0x1fc4, 0x1fcc, 0x3fa5, 0x3fae, 0x3fba, 0x3fc6,
	0x3fd4, 0x7fc0, 0xe, 0x7a, 0x1f9, 0x7ec, 0xfe0, 0x1fca, 0x3fa3, 0x3fac, 0x3fb6, 0x3fc2,
	0x3fd0, 0x7fbc, 0x7fcc, 0x7c, 0xfb, 0xfda, 0xfdf, 0x1fc8, 0x3fa0, 0x3faa, 0x3fb4, 0x3fc0,
	0x3fcc, 0x3fdb, 0x7fc7, 0x7fd4, 0x1fa, 0xfdc, 0xfe1, 0x1fc9, 0x1fcd, 0x3fa7, 0x3fb0, 0x3fbc,
	0x3fc8, 0x3fd7, 0x7fc2, 0x7fd0, 0x7fdd, 0xfde, 0x1fc5, 0x1fcb, 0x3fa2, 0x3fa8, 0x3fa1, 0x3fb8,
	0x3fc4, 0x3fd2, 0x7fbe, 0x7fce, 0x7fd8, 0x7fe3, 0x1fc7, 0x3f9c, 0x3fa4, 0x3fab, 0x3fb1, 0x3fb9,
	0x3fd5, 0x3fce, 0x7fba, 0x7fca, 0x7fd6, 0x7fe1, 0x7fe9, 0x3f9f, 0x3fa6, 0x3fad, 0x3fb5, 0x3fbd,
	0x3fc5, 0x3fcf, 0x7fc9, 0x7fc5, 0x7fd2, 0x7fdf, 0x7fe7, 0x7fef, 0x3fa9, 0x3faf, 0x3fb7, 0x3fc1,
	0x3fc9, 0x3fd3, 0x7fbb, 0x7fc6, 0x7fc4, 0x7fda, 0x7fe5, 0x7fed, 0x7ff3, 0x3fb3, 0x3fbb, 0x3fc3,
	0x3fcd, 0x3fd8, 0x7fbf, 0x7fcb, 0x7fd3, 0x7fdc, 0x7fdb, 0x7feb, 0x7ff1, 0x7ff8, 0x3fbf, 0x3fc7,
	0x3fd1, 0x3fdc, 0x7fc3, 0x7fcf, 0x7fd7, 0x7fe0, 0x7fe6, 0x7fec, 0x7ff4, 0x7ff6, 0x7ffa, 0x3fcb,
	0x3fd6, 0x7fbd, 0x7fc8, 0x7fd1, 0x7fd9, 0x7fe2, 0x7fe8, 0x7fee, 0x7ff2, 0x7ff7, 0x7ffd, 0x7ffc,
	0x3fda, 0x7fc1, 0x7fcd, 0x7fd5, 0x7fde, 0x7fe4, 0x7fea, 0x7ff0, 0x7ff5, 0x7ff9, 0x7ffb, 0x7ffe,
	0x7fff,
}
var hcbVals9 = []int8{
	0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9, 0, 10, 0, 11,
	0, 12, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 1, 5, 1, 6, 1, 7, 1, 8, 1, 9, 1, 10,
	1, 11, 1, 12, 2, 0, 2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2, 7, 2, 8, 2, 9,
	2, 10, 2, 11, 2, 12, 3, 0, 3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7, 3, 8,
	3, 9, 3, 10, 3, 11, 3, 12, 4, 0, 4, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6, 4, 7,
	4, 8, 4, 9, 4, 10, 4, 11, 4, 12, 5, 0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5, 6,
	5, 7, 5, 8, 5, 9, 5, 10, 5, 11, 5, 12, 6, 0, 6, 1, 6, 2, 6, 3, 6, 4, 6, 5,
	6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6, 11, 6, 12, 7, 0, 7, 1, 7, 2, 7, 3, 7, 4,
	7, 5, 7, 6, 7, 7, 7, 8, 7, 9, 7, 10, 7, 11, 7, 12, 8, 0, 8, 1, 8, 2, 8, 3,
	8, 4, 8, 5, 8, 6, 8, 7, 8, 8, 8, 9, 8, 10, 8, 11, 8, 12, 9, 0, 9, 1, 9, 2,
	9, 3, 9, 4, 9, 5, 9, 6, 9, 7, 9, 8, 9, 9, 9, 10, 9, 11, 9, 12, 10, 0, 10, 1,
	10, 2, 10, 3, 10, 4, 10, 5, 10, 6, 10, 7, 10, 8, 10, 9, 10, 10, 10, 11, 10, 12, 11, 0,
	11, 1, 11, 2, 11, 3, 11, 4, 11, 5, 11, 6, 11, 7, 11, 8, 11, 9, 11, 10, 11, 11, 11, 12,
	12, 0, 12, 1, 12, 2, 12, 3, 12, 4, 12, 5, 12, 6, 12, 7, 12, 8, 12, 9, 12, 10, 12, 11,
	12, 12,
}

// Codebook 10: dim 2, lav 12, unsigned, max 12 bits
var hcbLens10 = []uint8{
	6, 5, 6, 6, 6, 6, 7, 10, 8, 8, 9, 9, 9, 5, 4, 4, 5, 6,
	7, 7, 8, 8, 8, 9, 9, 10, 6, 4, 5, 5, 6, 7, 7, 8, 8, 9,
	9, 10, 10, 6, 5, 5, 5, 7, 7, 8, 8, 9, 9, 10, 10, 10, 6, 6,
	6, 7, 7, 8, 7, 8, 8, 9, 10, 10, 10, 6, 7, 6, 7, 8, 8, 8,
	8, 9, 10, 10, 10, 11, 7, 7, 7, 8, 7, 8, 9, 9, 10, 9, 10, 11,
	11, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 9, 8, 8, 9,
	9, 9, 10, 10, 10, 10, 11, 11, 11, 8, 8, 9, 9, 9, 10, 9, 10, 10,
	10, 11, 11, 12, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 12, 9,
	9, 10, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 10, 10, 10, 10, 10, 11,
	10, 11, 11, 12, 12, 12, 12,
}
var hcbCodes10 = []uint32{
	0x1e, 0x8, 0x1d, 0x1f, 0x21, 0x25, 0x56, 0x3d0, 0xd1, 0xd8, 0x1ca, 0x1d4,
	0x1e4, 0x7, 0x0, 0x1, 0x9, 0x23, 0x54, 0x5b, 0xcd, 0xd6, 0xde, 0x1d1,
	0x1dc, 0x3d6, 0x1c, 0x2, 0x6, 0xc, 0x27, 0x5a, 0x61, 0xd4, 0xdb, 0x1cf,
	0x1d8, 0x3d2, 0x3de, 0x20, 0xb, 0xa, 0xd, 0x58, 0x5f, 0xd2, 0xcc, 0x1cc,
	0x1d6, 0x3cc, 0x3dc, 0x3e5, 0x22, 0x24, 0x28, 0x59, 0x5d, 0xcf, 0x64, 0xe2,
	0xdf, 0x1de, 0x3d8, 0x3e3, 0x3ed, 0x26, 0x55, 0x29, 0x60, 0xd0, 0xd5, 0xdd,
	0xe0, 0x1da, 0x3d4, 0x3e0, 0x3e9, 0x7e9, 0x57, 0x5c, 0x62, 0xd3, 0x63, 0xca,
	0x1ce, 0x1c7, 0x3ce, 0x1e0, 0x3e7, 0x7e7, 0x7ef, 0x5e, 0xce, 0xcb, 0xda, 0x1c9,
	0x1d0, 0x1c6, 0x1e3, 0x3da, 0x3ca, 0x3f1, 0x7ed, 0x7f3, 0x1e1, 0xd7, 0xdc, 0x1cd,
	0x1d3, 0x1db, 0x3d1, 0x3db, 0x3e2, 0x3eb, 0x7eb, 0x7f1, 0x7f8, 0xd9, 0xe1, 0x1c8,
	0x1d7, 0x1e2, 0x3d5, 0x1df, 0x3cf, 0x3ec, 0x3ef, 0x7e6, 0x7f6, 0xff9, 0x1cb, 0x1d2,
	0x1d9, 0x3cd, 0x3d9, 0x3e1, 0x3e8, 0x3f2, 0x7ec, 0x7f0, 0x7f5, 0x7fa, 0xffb, 0x1d5,
	0x1dd, 0x3d3, 0x3dd, 0x3e4, 0x3ea, 0x7e8, 0x7ee, 0x7f2, 0x7f7, 0x7fb, 0xffa, 0xffd,
	0x3cb, 0x3d7, 0x3df, 0x3e6, 0x3ee, 0x7ea, 0x3f0, 0x7f4, 0x7f9, 0xff8, 0xffc, 0xffe,
	0xfff,
}
var hcbVals10 = []int8{
	0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9, 0, 10, 0, 11,
	0, 12, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 1, 5, 1, 6, 1, 7, 1, 8, 1, 9, 1, 10,
	1, 11, 1, 12, 2, 0, 2, 1, 2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2, 7, 2, 8, 2, 9,
	2, 10, 2, 11, 2, 12, 3, 0, 3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7, 3, 8,
	3, 9, 3, 10, 3, 11, 3, 12, 4, 0, 4, 1, 4, 2, 4, 3, 4, 4, 4, 5, 4, 6, 4, 7,
	4, 8, 4, 9, 4, 10, 4, 11, 4, 12, 5, 0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5, 6,
	5, 7, 5, 8, 5, 9, 5, 10, 5, 11, 5, 12, 6, 0, 6, 1, 6, 2, 6, 3, 6, 4, 6, 5,
	6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6, 11, 6, 12, 7, 0, 7, 1, 7, 2, 7, 3, 7, 4,
	7, 5, 7, 6, 7, 7, 7, 8, 7, 9, 7, 10, 7, 11, 7, 12, 8, 0, 8, 1, 8, 2, 8, 3,
	8, 4, 8, 5, 8, 6, 8, 7, 8, 8, 8, 9, 8, 10, 8, 11, 8, 12, 9, 0, 9, 1, 9, 2,
	9, 3, 9, 4, 9, 5, 9, 6, 9, 7, 9, 8, 9, 9, 9, 10, 9, 11, 9, 12, 10, 0, 10, 1,
	10, 2, 10, 3, 10, 4, 10, 5, 10, 6, 10, 7, 10, 8, 10, 9, 10, 10, 10, 11, 10, 12, 11, 0,
	11, 1, 11, 2, 11, 3, 11, 4, 11, 5, 11, 6, 11, 7, 11, 8, 11, 9, 11, 10, 11, 11, 11, 12,
	12, 0, 12, 1, 12, 2, 12, 3, 12, 4, 12, 5, 12, 6, 12, 7, 12, 8, 12, 9, 12, 10, 12, 11,
	12, 12,
}

// Codebook 11: dim 2, lav 16, unsigned, max 12 bits
var hcbLens11 = []uint8{
	4, 5, 6, 7, 8, 8, 8, 8, 8, 10, 8, 8, 12, 9, 12, 12, 8, 5,
	4, 5, 6, 7, 7, 8, 8, 9, 8, 8, 8, 9, 9, 9, 9, 8, 6, 5,
	5, 6, 7, 7, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 8, 7, 6, 6,
	6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 8, 8, 7, 7, 7,
	7, 8, 8, 9, 9, 9, 10, 10, 10, 10, 10, 10, 8, 8, 7, 7, 7, 7,
	9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 8, 8, 8, 8, 8, 8, 9,
	9, 9, 10, 10, 9, 10, 10, 10, 10, 10, 8, 8, 8, 8, 8, 9, 9, 9,
	10, 10, 10, 10, 10, 10, 10, 10, 11, 8, 8, 8, 8, 9, 9, 9, 10, 10,
	10, 10, 10, 10, 10, 10, 11, 11, 8, 8, 8, 8, 9, 9, 10, 10, 10, 10,
	10, 10, 10, 10, 10, 11, 11, 9, 8, 8, 9, 9, 10, 10, 10, 10, 10, 10,
	10, 10, 11, 11, 11, 11, 9, 8, 10, 9, 9, 10, 10, 10, 10, 10, 10, 10,
	11, 11, 11, 11, 11, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 11, 11,
	11, 11, 11, 11, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11,
	11, 11, 11, 10, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11,
	11, 11, 10, 12, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 12,
	12, 10, 8, 8, 8, 8, 8, 8, 8, 8, 8, 9, 9, 9, 9, 10, 8, 9,
	5,
}
var hcbCodes11 = []uint32{
	0x0, 0x6, 0x19, 0x3d, 0x9b, 0x9d, 0x9e, 0xa3, 0xa7, 0x3df, 0xb4, 0xbc,
	0xffb, 0x1a2, 0xffa, 0xffe, 0x91, 0x5, 0x1, 0x8, 0x14, 0x37, 0x40, 0xa2,
	0xa5, 0x191, 0xad, 0xb6, 0xc2, 0x198, 0x1a6, 0x1b3, 0x1be, 0x97, 0x17, 0x7,
	0x9, 0x18, 0x39, 0x42, 0x8e, 0xae, 0xb7, 0xc3, 0x199, 0x1a7, 0x1b4, 0x1c1,
	0x394, 0x39e, 0x99, 0x3e, 0x15, 0x16, 0x1a, 0x3b, 0x44, 0xb3, 0xbd, 0x195,
	0x1a3, 0x1ad, 0x1ba, 0x3a1, 0x39b, 0x3aa, 0x3b4, 0x94, 0x9c, 0x36, 0x38, 0x3a,
	0x3c, 0x8c, 0xc5, 0x19c, 0x1aa, 0x1b7, 0x38d, 0x399, 0x3a7, 0x3b2, 0x3bd, 0x3c7,
	0x93, 0xbf, 0x3f, 0x41, 0x43, 0x45, 0x192, 0x1a0, 0x1ae, 0x1bb, 0x391, 0x39c,
	0x3ab, 0x3b5, 0x3bf, 0x3c9, 0x3d3, 0x9f, 0xa0, 0x8f, 0x8d, 0x90, 0xc6, 0x1a1,
	0x1af, 0x1c2, 0x395, 0x39f, 0x1bf, 0x3b8, 0x3c1, 0x3cb, 0x3d5, 0x3de, 0xaa, 0xa4,
	0xa6, 0xaf, 0xbe, 0x19d, 0x1b0, 0x1c3, 0x398, 0x3a5, 0x3af, 0x3ba, 0x3a4, 0x3cd,
	0x3d7, 0x3e2, 0x7d4, 0xb1, 0xa8, 0xa9, 0xb8, 0x196, 0x18e, 0x1bc, 0x396, 0x3a6,
	0x3b0, 0x3bb, 0x3c3, 0x3ce, 0x3d8, 0x3e3, 0x7d5, 0x7dc, 0xba, 0xac, 0xb0, 0xc4,
	0x1a4, 0x1b8, 0x392, 0x3a2, 0x3b1, 0x38b, 0x3c4, 0x3cf, 0x3d9, 0x3e4, 0x3e0, 0x7d2,
	0x7e3, 0x193, 0xb5, 0xb9, 0x19a, 0x1b1, 0x38e, 0x39d, 0x3ae, 0x3bc, 0x3c5, 0x3d0,
	0x3da, 0x3e5, 0x7d6, 0x7dd, 0x7e4, 0x7ea, 0x19e, 0xc1, 0x3a0, 0x1a8, 0x1bd, 0x38a,
	0x3ac, 0x3b9, 0x3c6, 0x3d1, 0x3db, 0x3e6, 0x7d7, 0x7de, 0x7e5, 0x7eb, 0x7f0, 0x1ab,
	0x197, 0x19b, 0x1b5, 0x393, 0x3a8, 0x3b6, 0x3c2, 0x3d2, 0x3dc, 0x3e7, 0x7d8, 0x7df,
	0x7e6, 0x7ec, 0x7f1, 0x7f5, 0x190, 0x1a5, 0x1a9, 0x1c4, 0x1c0, 0x3b3, 0x3c0, 0x3cc,
	0x3dd, 0x3e8, 0x7d9, 0x7e0, 0x7e7, 0x7ed, 0x7f2, 0x7f6, 0x7f9, 0x38f, 0x1b2, 0x1b6,
	0x397, 0x3ad, 0x3be, 0x3ca, 0x3d6, 0x7d3, 0x7da, 0x7e1, 0x7e8, 0x7ee, 0x7f3, 0x7f7,
	0x7fa, 0x7fc, 0x39a, 0xffd, 0x38c, 0x3a3, 0x3b7, 0x3c8, 0x3d4, 0x3e1, 0x7db, 0x7e2,
	0x7e9, 0x7ef, 0x7f4, 0x7f8, 0x7fb, 0xffc, 0xfff, 0x3a9, 0x92, 0x98, 0x9a, 0x96,
	0xa1, 0x95, 0xab, 0xb2, 0xbb, 0x194, 0x19f, 0x1ac, 0x1b9, 0x390, 0xc0, 0x18f,
	0x4,
}
var hcbVals11 = []int8{
	0, 0, 0, 1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0, 9, 0, 10, 0, 11,
	0, 12, 0, 13, 0, 14, 0, 15, 0, 16, 1, 0, 1, 1, 1, 2, 1, 3, 1, 4, 1, 5, 1, 6,
	1, 7, 1, 8, 1, 9, 1, 10, 1, 11, 1, 12, 1, 13, 1, 14, 1, 15, 1, 16, 2, 0, 2, 1,
	2, 2, 2, 3, 2, 4, 2, 5, 2, 6, 2, 7, 2, 8, 2, 9, 2, 10, 2, 11, 2, 12, 2, 13,
	2, 14, 2, 15, 2, 16, 3, 0, 3, 1, 3, 2, 3, 3, 3, 4, 3, 5, 3, 6, 3, 7, 3, 8,
	3, 9, 3, 10, 3, 11, 3, 12, 3, 13, 3, 14, 3, 15, 3, 16, 4, 0, 4, 1, 4, 2, 4, 3,
	4, 4, 4, 5, 4, 6, 4, 7, 4, 8, 4, 9, 4, 10, 4, 11, 4, 12, 4, 13, 4, 14, 4, 15,
	4, 16, 5, 0, 5, 1, 5, 2, 5, 3, 5, 4, 5, 5, 5, 6, 5, 7, 5, 8, 5, 9, 5, 10,
	5, 11, 5, 12, 5, 13, 5, 14, 5, 15, 5, 16, 6, 0, 6, 1, 6, 2, 6, 3, 6, 4, 6, 5,
	6, 6, 6, 7, 6, 8, 6, 9, 6, 10, 6, 11, 6, 12, 6, 13, 6, 14, 6, 15, 6, 16, 7, 0,
	7, 1, 7, 2, 7, 3, 7, 4, 7, 5, 7, 6, 7, 7, 7, 8, 7, 9, 7, 10, 7, 11, 7, 12,
	7, 13, 7, 14, 7, 15, 7, 16, 8, 0, 8, 1, 8, 2, 8, 3, 8, 4, 8, 5, 8, 6, 8, 7,
	8, 8, 8, 9, 8, 10, 8, 11, 8, 12, 8, 13, 8, 14, 8, 15, 8, 16, 9, 0, 9, 1, 9, 2,
	9, 3, 9, 4, 9, 5, 9, 6, 9, 7, 9, 8, 9, 9, 9, 10, 9, 11, 9, 12, 9, 13, 9, 14,
	9, 15, 9, 16, 10, 0, 10, 1, 10, 2, 10, 3, 10, 4, 10, 5, 10, 6, 10, 7, 10, 8, 10, 9,
	10, 10, 10, 11, 10, 12, 10, 13, 10, 14, 10, 15, 10, 16, 11, 0, 11, 1, 11, 2, 11, 3, 11, 4,
	11, 5, 11, 6, 11, 7, 11, 8, 11, 9, 11, 10, 11, 11, 11, 12, 11, 13, 11, 14, 11, 15, 11, 16,
	12, 0, 12, 1, 12, 2, 12, 3, 12, 4, 12, 5, 12, 6, 12, 7, 12, 8, 12, 9, 12, 10, 12, 11,
	12, 12, 12, 13, 12, 14, 12, 15, 12, 16, 13, 0, 13, 1, 13, 2, 13, 3, 13, 4, 13, 5, 13, 6,
	13, 7, 13, 8, 13, 9, 13, 10, 13, 11, 13, 12, 13, 13, 13, 14, 13, 15, 13, 16, 14, 0, 14, 1,
	14, 2, 14, 3, 14, 4, 14, 5, 14, 6, 14, 7, 14, 8, 14, 9, 14, 10, 14, 11, 14, 12, 14, 13,
	14, 14, 14, 15, 14, 16, 15, 0, 15, 1, 15, 2, 15, 3, 15, 4, 15, 5, 15, 6, 15, 7, 15, 8,
	15, 9, 15, 10, 15, 11, 15, 12, 15, 13, 15, 14, 15, 15, 15, 16, 16, 0, 16, 1, 16, 2, 16, 3,
	16, 4, 16, 5, 16, 6, 16, 7, 16, 8, 16, 9, 16, 10, 16, 11, 16, 12, 16, 13, 16, 14, 16, 15,
	16, 16,
}

// Scalefactor codebook: 121 deltas in [-60, 60], max 19 bits, delta 0 is a single bit
var hcbLensSF = []uint8{
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
	19, 19, 19, 19, 19, 19, 19, 16, 13, 12, 12, 11, 11, 10, 9, 9, 8, 7,
	7, 6, 5, 5, 4, 3, 1, 4, 4, 5, 6, 6, 7, 8, 8, 9, 10, 10,
	11, 12, 12, 13, 14, 18, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
	19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19, 19,
}
var hcbCodesSF = []uint32{
	0x7ffba, 0x7fffe, 0x7fffc, 0x7fffa, 0x7fff8, 0x7fff6, 0x7fff2, 0x7fff0, 0x7ffee, 0x7ffec, 0x7ffea, 0x7ffe8,
	0x7ffe6, 0x7ffff, 0x7ffe3, 0x7ffe1, 0x7ffdf, 0x7ffdd, 0x7ffdb, 0x7ffd9, 0x7ffd7, 0x7ffd5, 0x7ffd3, 0x7ffd1,
	0x7ffcf, 0x7ffcd, 0x7ffcb, 0x7ffc9, 0x7ffc7, 0x7ffc5, 0x7ffc3, 0x7ffc1, 0x7ffbf, 0x7ffbd, 0x7ffbb, 0x7ffb8,
	0x7ffb6, 0x7ffb4, 0x7ffb2, 0x7ffb0, 0x7ffae, 0x7ffac, 0x7ffaa, 0xfff4, 0x1ffd, 0xffd, 0xffb, 0x7fc,
	0x7fa, 0x3fb, 0x1fc, 0x1fa, 0xfb, 0x7c, 0x7a, 0x3b, 0x1c, 0x1a, 0xb, 0x4,
	0x0, 0xa, 0xc, 0x1b, 0x3a, 0x3c, 0x7b, 0xfa, 0xfc, 0x1fb, 0x3fa, 0x3fc,
	0x7fb, 0xffa, 0xffc, 0x1ffc, 0x3ffc, 0x3ffd4, 0x7ffab, 0x7ffad, 0x7ffaf, 0x7ffb1, 0x7ffb3, 0x7ffb5,
	0x7ffb7, 0x7ffb9, 0x7ffbc, 0x7ffbe, 0x7ffc0, 0x7ffc2, 0x7ffc4, 0x7ffc6, 0x7ffc8, 0x7ffca, 0x7ffcc, 0x7ffce,
	0x7ffd0, 0x7ffd2, 0x7ffd4, 0x7ffd6, 0x7ffd8, 0x7ffda, 0x7ffdc, 0x7ffde, 0x7ffe0, 0x7ffe2, 0x7ffe4, 0x7ffe5,
	0x7ffe7, 0x7ffe9, 0x7ffeb, 0x7ffed, 0x7ffef, 0x7fff1, 0x7fff5, 0x7fff7, 0x7fff9, 0x7fffb, 0x7fffd, 0x7fff4,
	0x7fff3,
}

