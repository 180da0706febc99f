package mp3

// Layer III spectral codebooks (ISO/IEC 11172-3 Annex B, Table B.7).
// Pair tables are stored row-major over (x, y); the two quadruple
// tables cover the count1 region. Tables sharing codes but differing
// in linbits (16-23 and 24-31) are registered once each in
// pairTables.

var (
	huffTable1  = huffTable{wide: 2, lens: huffLens1, codes: huffCodes1}
	huffTable2  = huffTable{wide: 3, lens: huffLens2, codes: huffCodes2}
	huffTable3  = huffTable{wide: 3, lens: huffLens3, codes: huffCodes3}
	huffTable5  = huffTable{wide: 4, lens: huffLens5, codes: huffCodes5}
	huffTable6  = huffTable{wide: 4, lens: huffLens6, codes: huffCodes6}
	huffTable7  = huffTable{wide: 6, lens: huffLens7, codes: huffCodes7}
	huffTable8  = huffTable{wide: 6, lens: huffLens8, codes: huffCodes8}
	huffTable9  = huffTable{wide: 6, lens: huffLens9, codes: huffCodes9}
	huffTable10 = huffTable{wide: 8, lens: huffLens10, codes: huffCodes10}
	huffTable11 = huffTable{wide: 8, lens: huffLens11, codes: huffCodes11}
	huffTable12 = huffTable{wide: 8, lens: huffLens12, codes: huffCodes12}
	huffTable13 = huffTable{wide: 16, lens: huffLens13, codes: huffCodes13}
	huffTable15 = huffTable{wide: 16, lens: huffLens15, codes: huffCodes15}
	huffTable16 = huffTable{wide: 16, lens: huffLens16, codes: huffCodes16}
	huffTable24 = huffTable{wide: 16, lens: huffLens24, codes: huffCodes24}

	huffTableQA = huffTable{lens: huffLens32, codes: huffCodes32}
	huffTableQB = huffTable{lens: huffLens33, codes: huffCodes33}
)

var huffLens1 = []uint8{
	1, 3,
	2, 3,
}
var huffCodes1 = []uint32{
	1, 1,
	1, 0,
}

var huffLens2 = []uint8{
	1, 3, 6,
	3, 3, 5,
	5, 5, 6,
}
var huffCodes2 = []uint32{
	1, 3, 1,
	2, 1, 3,
	2, 1, 0,
}

var huffLens3 = []uint8{
	2, 2, 6,
	3, 2, 5,
	5, 5, 6,
}
var huffCodes3 = []uint32{
	3, 2, 1,
	1, 1, 3,
	2, 1, 0,
}

var huffLens5 = []uint8{
	1, 3, 6, 7,
	3, 3, 6, 7,
	6, 6, 7, 8,
	7, 6, 7, 8,
}
var huffCodes5 = []uint32{
	1, 3, 7, 5,
	2, 1, 6, 4,
	5, 4, 3, 1,
	2, 3, 1, 0,
}

var huffLens6 = []uint8{
	3, 3, 5, 7,
	3, 2, 4, 5,
	4, 4, 5, 6,
	6, 5, 6, 7,
}
var huffCodes6 = []uint32{
	5, 4, 5, 1,
	3, 3, 5, 4,
	4, 3, 3, 3,
	2, 2, 1, 0,
}

var huffLens7 = []uint8{
	1, 3, 6, 8, 8, 9,
	3, 4, 6, 7, 7, 8,
	6, 5, 7, 8, 8, 9,
	7, 7, 8, 9, 9, 9,
	7, 7, 8, 9, 9, 10,
	8, 8, 9, 10, 10, 10,
}
var huffCodes7 = []uint32{
	1, 3, 9, 13, 12, 9,
	2, 3, 8, 13, 12, 11,
	7, 5, 11, 10, 9, 8,
	10, 9, 8, 7, 6, 5,
	8, 7, 7, 4, 3, 3,
	6, 5, 2, 2, 1, 0,
}

var huffLens8 = []uint8{
	2, 3, 6, 8, 8, 9,
	3, 2, 4, 8, 8, 8,
	6, 4, 6, 8, 8, 9,
	8, 8, 8, 9, 9, 10,
	8, 7, 8, 9, 10, 10,
	9, 8, 9, 10, 10, 10,
}
var huffCodes8 = []uint32{
	3, 3, 7, 17, 16, 9,
	2, 2, 3, 15, 14, 13,
	6, 2, 5, 12, 11, 8,
	10, 9, 8, 7, 6, 5,
	7, 9, 6, 5, 4, 3,
	4, 5, 3, 2, 1, 0,
}

var huffLens9 = []uint8{
	3, 3, 5, 6, 8, 9,
	3, 3, 4, 5, 6, 8,
	4, 4, 5, 6, 7, 8,
	6, 5, 6, 7, 7, 8,
	7, 6, 7, 7, 8, 9,
	8, 7, 8, 8, 9, 9,
}
var huffCodes9 = []uint32{
	7, 6, 9, 11, 9, 3,
	5, 4, 7, 8, 10, 8,
	6, 5, 7, 9, 11, 7,
	8, 6, 7, 10, 9, 6,
	8, 6, 7, 6, 5, 2,
	4, 5, 3, 2, 1, 0,
}

var huffLens10 = []uint8{
	1, 3, 6, 8, 9, 9, 9, 10,
	3, 4, 6, 7, 8, 9, 8, 8,
	6, 6, 7, 8, 9, 10, 9, 9,
	7, 7, 8, 9, 10, 10, 9, 10,
	8, 8, 9, 10, 10, 10, 10, 10,
	9, 9, 10, 10, 10, 10, 10, 10,
	8, 8, 9, 10, 10, 10, 10, 10,
	9, 9, 10, 10, 10, 10, 11, 11,
}
var huffCodes10 = []uint32{
	1, 3, 11, 23, 27, 26, 25, 25,
	2, 3, 10, 15, 22, 24, 21, 20,
	9, 8, 14, 19, 23, 24, 22, 21,
	13, 12, 18, 20, 23, 22, 19, 21,
	17, 16, 18, 20, 19, 18, 17, 16,
	17, 16, 15, 14, 13, 12, 11, 10,
	15, 14, 15, 9, 8, 7, 6, 5,
	14, 13, 4, 3, 2, 1, 1, 0,
}

var huffLens11 = []uint8{
	2, 3, 5, 7, 8, 9, 8, 9,
	3, 3, 4, 6, 8, 8, 7, 8,
	5, 5, 6, 7, 8, 9, 8, 8,
	7, 6, 7, 8, 8, 9, 8, 9,
	8, 8, 8, 9, 9, 9, 9, 9,
	8, 9, 9, 10, 10, 10, 10, 10,
	8, 7, 7, 8, 9, 10, 9, 9,
	8, 8, 9, 9, 10, 10, 10, 10,
}
var huffCodes11 = []uint32{
	3, 5, 9, 21, 29, 21, 28, 20,
	4, 3, 5, 13, 27, 26, 20, 25,
	8, 7, 12, 19, 24, 19, 23, 22,
	18, 11, 17, 21, 20, 18, 19, 17,
	18, 17, 16, 16, 15, 14, 13, 12,
	15, 11, 10, 9, 8, 7, 6, 5,
	14, 16, 15, 13, 9, 4, 8, 7,
	12, 11, 6, 5, 3, 2, 1, 0,
}

var huffLens12 = []uint8{
	4, 3, 5, 7, 8, 9, 9, 9,
	3, 3, 4, 5, 7, 7, 8, 8,
	5, 4, 5, 6, 7, 8, 7, 8,
	6, 5, 6, 6, 7, 8, 8, 8,
	7, 6, 7, 7, 8, 8, 8, 9,
	8, 7, 8, 8, 8, 9, 8, 9,
	8, 7, 7, 8, 8, 9, 9, 10,
	9, 8, 8, 9, 9, 9, 9, 10,
}
var huffCodes12 = []uint32{
	9, 7, 13, 25, 27, 13, 12, 11,
	6, 5, 8, 12, 24, 23, 26, 25,
	11, 7, 10, 17, 22, 24, 21, 23,
	16, 9, 15, 14, 20, 22, 21, 20,
	19, 13, 18, 17, 19, 18, 17, 10,
	16, 16, 15, 14, 13, 9, 12, 8,
	11, 15, 14, 10, 9, 7, 6, 1,
	5, 8, 7, 4, 3, 2, 1, 0,
}

var huffLens13 = []uint8{
	1, 4, 6, 7, 8, 9, 9, 10, 9, 10, 11, 11, 12, 12, 13, 13,
	3, 4, 6, 7, 8, 8, 9, 9, 9, 9, 10, 10, 11, 12, 12, 12,
	6, 6, 7, 8, 9, 9, 10, 10, 9, 10, 10, 11, 11, 12, 13, 13,
	7, 7, 8, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 13, 13,
	8, 7, 9, 9, 10, 10, 11, 11, 10, 11, 11, 12, 12, 13, 13, 14,
	9, 8, 9, 10, 10, 10, 11, 11, 11, 11, 12, 12, 13, 13, 14, 14,
	9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 13, 13, 14, 14,
	10, 9, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
	9, 8, 9, 10, 10, 11, 11, 12, 12, 12, 12, 13, 13, 14, 14, 14,
	10, 9, 10, 10, 11, 11, 11, 13, 12, 13, 13, 14, 14, 14, 14, 14,
	10, 10, 10, 11, 11, 12, 12, 13, 13, 13, 13, 13, 14, 13, 14, 14,
	11, 10, 10, 11, 12, 12, 12, 12, 13, 13, 13, 13, 14, 14, 14, 14,
	11, 11, 11, 12, 12, 13, 12, 13, 14, 14, 14, 15, 15, 15, 15, 15,
	12, 11, 12, 13, 13, 13, 14, 14, 14, 14, 15, 15, 15, 15, 15, 15,
	13, 12, 13, 13, 14, 14, 14, 14, 15, 15, 15, 15, 15, 15, 15, 15,
	13, 13, 14, 14, 14, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15,
}
var huffCodes13 = []uint32{
	1, 5, 15, 23, 35, 55, 54, 67, 53, 66, 71, 70, 67, 66, 65, 64,
	3, 4, 14, 22, 34, 33, 52, 51, 50, 49, 65, 64, 69, 65, 64, 63,
	13, 12, 21, 32, 48, 47, 63, 62, 46, 61, 60, 68, 67, 62, 63, 62,
	20, 19, 31, 45, 44, 59, 58, 57, 56, 66, 65, 64, 63, 61, 61, 60,
	30, 18, 43, 42, 55, 54, 62, 61, 53, 60, 59, 60, 59, 59, 58, 51,
	41, 29, 40, 52, 51, 50, 58, 57, 56, 55, 58, 57, 57, 56, 50, 49,
	39, 38, 49, 48, 54, 53, 52, 51, 50, 56, 55, 54, 55, 54, 48, 47,
	47, 37, 46, 49, 48, 47, 53, 52, 51, 50, 53, 52, 51, 46, 45, 44,
	36, 28, 35, 45, 44, 46, 45, 49, 48, 47, 46, 50, 49, 43, 42, 41,
	43, 34, 42, 41, 44, 43, 42, 48, 45, 47, 46, 40, 39, 38, 37, 36,
	40, 39, 38, 41, 40, 44, 43, 45, 44, 43, 42, 41, 35, 40, 34, 33,
	39, 37, 36, 38, 42, 41, 40, 39, 39, 38, 37, 36, 32, 31, 30, 29,
	37, 36, 35, 38, 37, 35, 36, 34, 28, 27, 26, 29, 28, 27, 26, 25,
	35, 34, 34, 33, 32, 31, 25, 24, 23, 22, 24, 23, 22, 21, 20, 19,
	30, 33, 29, 28, 21, 20, 19, 18, 18, 17, 16, 15, 14, 13, 12, 11,
	27, 26, 17, 16, 15, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
}

var huffLens15 = []uint8{
	3, 4, 5, 7, 7, 8, 9, 9, 9, 10, 10, 11, 11, 11, 11, 12,
	4, 3, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 10, 11, 11,
	5, 5, 5, 6, 7, 7, 8, 8, 8, 9, 9, 10, 10, 11, 11, 11,
	6, 6, 6, 7, 7, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11,
	7, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
	8, 7, 7, 8, 8, 8, 9, 9, 9, 10, 10, 10, 11, 11, 11, 12,
	9, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 12, 12,
	9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 12,
	9, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 11, 11, 12, 12, 12,
	9, 8, 9, 9, 9, 9, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12,
	10, 9, 9, 9, 10, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12,
	10, 9, 9, 9, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12,
	11, 10, 9, 10, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12,
	11, 10, 10, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12,
	12, 11, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	12, 12, 11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
}
var huffCodes15 = []uint32{
	7, 11, 19, 47, 46, 67, 89, 88, 87, 91, 90, 83, 82, 81, 80, 51,
	10, 6, 18, 29, 45, 44, 66, 65, 64, 86, 85, 89, 88, 87, 79, 78,
	17, 16, 15, 28, 43, 42, 63, 62, 61, 84, 83, 86, 85, 77, 76, 75,
	27, 26, 25, 41, 40, 60, 59, 82, 81, 80, 84, 83, 82, 74, 73, 72,
	39, 24, 38, 37, 58, 57, 79, 78, 77, 76, 81, 80, 79, 71, 70, 69,
	56, 36, 35, 55, 54, 53, 75, 74, 73, 78, 77, 76, 68, 67, 66, 50,
	72, 34, 52, 51, 50, 71, 70, 69, 68, 75, 74, 73, 65, 64, 49, 48,
	67, 49, 48, 66, 65, 64, 63, 72, 71, 70, 69, 68, 63, 62, 61, 47,
	62, 47, 46, 61, 60, 59, 58, 67, 66, 65, 64, 60, 59, 46, 45, 44,
	57, 45, 56, 55, 54, 53, 63, 62, 61, 58, 57, 56, 55, 43, 42, 41,
	60, 52, 51, 50, 59, 58, 57, 56, 55, 54, 53, 52, 51, 40, 39, 38,
	54, 49, 48, 47, 53, 52, 51, 50, 50, 49, 48, 47, 37, 36, 35, 34,
	46, 49, 46, 48, 47, 46, 45, 44, 43, 42, 41, 33, 32, 31, 30, 29,
	40, 45, 44, 43, 42, 39, 38, 37, 36, 28, 27, 26, 25, 24, 23, 22,
	21, 35, 34, 33, 32, 31, 30, 20, 19, 18, 17, 16, 15, 14, 13, 12,
	11, 10, 29, 28, 27, 26, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
}

var huffLens16 = []uint8{
	1, 4, 6, 8, 9, 9, 10, 10, 11, 11, 11, 12, 12, 12, 12, 9,
	3, 4, 6, 7, 8, 9, 9, 9, 10, 10, 10, 11, 12, 11, 12, 8,
	6, 6, 7, 8, 9, 9, 10, 10, 11, 10, 11, 11, 11, 12, 12, 9,
	8, 7, 8, 9, 9, 10, 10, 10, 11, 11, 12, 12, 12, 12, 12, 10,
	9, 8, 9, 9, 10, 10, 11, 11, 11, 11, 12, 12, 12, 12, 12, 9,
	9, 9, 10, 10, 11, 11, 11, 11, 11, 12, 12, 12, 12, 12, 12, 10,
	10, 9, 10, 11, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 10,
	10, 10, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 10,
	11, 10, 11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 10,
	11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 10,
	11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 11,
	11, 11, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 11,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 11,
	12, 12, 12, 12, 12, 12, 12, 13, 13, 13, 13, 13, 13, 13, 13, 11,
	12, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 11,
	8, 8, 8, 9, 9, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 8,
}
var huffCodes16 = []uint32{
	1, 5, 15, 41, 61, 60, 83, 82, 109, 108, 107, 127, 126, 125, 124, 59,
	3, 4, 14, 23, 40, 58, 57, 56, 81, 80, 79, 106, 123, 105, 122, 39,
	13, 12, 22, 38, 55, 54, 78, 77, 104, 76, 103, 102, 101, 121, 120, 53,
	37, 21, 36, 52, 51, 75, 74, 73, 100, 99, 119, 118, 117, 116, 115, 72,
	50, 35, 49, 48, 71, 70, 98, 97, 96, 95, 114, 113, 112, 111, 110, 47,
	46, 45, 69, 68, 94, 93, 92, 91, 90, 109, 108, 107, 106, 105, 104, 67,
	66, 44, 65, 89, 88, 87, 103, 102, 101, 100, 99, 98, 97, 96, 95, 64,
	63, 62, 86, 85, 94, 93, 92, 91, 90, 89, 88, 87, 86, 85, 84, 61,
	84, 60, 83, 82, 83, 82, 81, 80, 79, 78, 77, 76, 75, 74, 73, 59,
	81, 80, 72, 71, 70, 69, 68, 67, 66, 65, 64, 63, 62, 61, 60, 58,
	79, 78, 59, 58, 57, 56, 55, 54, 53, 52, 51, 50, 49, 48, 47, 77,
	76, 75, 46, 45, 44, 43, 42, 41, 40, 39, 38, 37, 36, 35, 34, 74,
	33, 32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 73,
	18, 17, 16, 15, 14, 13, 12, 21, 20, 19, 18, 17, 16, 15, 14, 72,
	11, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 71,
	34, 33, 32, 43, 42, 57, 56, 55, 70, 69, 68, 67, 66, 65, 64, 31,
}

var huffLens24 = []uint8{
	4, 4, 6, 7, 8, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 9,
	4, 4, 5, 6, 7, 8, 8, 9, 9, 9, 10, 10, 10, 10, 10, 8,
	6, 5, 6, 7, 7, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 7,
	7, 6, 7, 7, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 7,
	8, 7, 7, 8, 8, 8, 8, 9, 9, 9, 9, 10, 10, 10, 10, 7,
	9, 7, 8, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10, 7,
	9, 8, 8, 8, 8, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 7,
	10, 8, 9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 8,
	10, 9, 9, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 8,
	10, 9, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 8,
	10, 9, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 8,
	10, 10, 9, 9, 9, 9, 10, 10, 10, 10, 10, 10, 10, 10, 10, 8,
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 11, 8,
	11, 10, 10, 10, 10, 10, 10, 10, 11, 11, 11, 11, 11, 11, 11, 8,
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 8,
	8, 7, 7, 7, 7, 7, 7, 8, 8, 8, 8, 8, 8, 8, 8, 4,
}
var huffCodes24 = []uint32{
	15, 14, 39, 69, 97, 115, 114, 109, 108, 107, 106, 105, 104, 103, 102, 113,
	13, 12, 21, 38, 68, 96, 95, 112, 111, 110, 101, 100, 99, 98, 97, 94,
	37, 20, 36, 67, 66, 93, 92, 109, 108, 107, 106, 96, 95, 94, 93, 65,
	64, 35, 63, 62, 91, 90, 89, 105, 104, 103, 102, 92, 91, 90, 89, 61,
	88, 60, 59, 87, 86, 85, 84, 101, 100, 99, 98, 88, 87, 86, 85, 58,
	97, 57, 83, 82, 81, 80, 96, 95, 94, 93, 92, 84, 83, 82, 81, 56,
	91, 79, 78, 77, 76, 90, 89, 88, 87, 86, 80, 79, 78, 77, 76, 55,
	75, 75, 85, 84, 83, 82, 81, 80, 79, 78, 74, 73, 72, 71, 70, 74,
	69, 77, 76, 75, 74, 73, 72, 71, 70, 68, 67, 66, 65, 64, 63, 73,
	62, 69, 68, 67, 66, 65, 64, 61, 60, 59, 58, 57, 56, 55, 54, 72,
	53, 63, 62, 61, 60, 59, 52, 51, 50, 49, 48, 47, 46, 45, 44, 71,
	43, 42, 58, 57, 56, 55, 41, 40, 39, 38, 37, 36, 35, 34, 33, 70,
	32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 23, 69,
	22, 18, 17, 16, 15, 14, 13, 12, 21, 20, 19, 18, 17, 16, 15, 68,
	14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0, 67,
	66, 54, 53, 52, 51, 50, 49, 65, 64, 63, 62, 61, 60, 59, 58, 11,
}

var huffLens32 = []uint8{
	1, 4, 4, 5, 4, 6, 5, 6, 4, 5, 5, 6, 5, 6, 6, 6,
}
var huffCodes32 = []uint32{
	1, 7, 6, 7, 5, 5, 6, 4, 4, 5, 4, 3, 3, 2, 1, 0,
}

var huffLens33 = []uint8{
	4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4, 4,
}
var huffCodes33 = []uint32{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
}

