package opus

// Inverse-CDF tables for the SILK layer, 8-bit precision, strictly
// decreasing and zero-terminated as the range decoder requires.

// silkFrameTypeICDF selects (signalType, quantOffset), conditioned on
// the frame's VAD flag. Inactive frames only choose a quantization
// offset; active frames pick unvoiced/voiced crossed with low/high.
var silkFrameTypeICDF = [2][]uint8{
	{230, 0},
	{232, 158, 10, 0},
}

// silkGainHighICDF ranks the three most significant bits of an absolute
// gain index, per signal type.
var silkGainHighICDF = [3][]uint8{
	{224, 112, 44, 15, 3, 2, 1, 0},
	{254, 237, 192, 132, 70, 23, 4, 0},
	{255, 252, 226, 155, 61, 11, 2, 0},
}

// silkGainDeltaICDF ranks relative gain moves, centered on symbol 4.
var silkGainDeltaICDF = []uint8{
	250, 245, 234, 203, 71, 50, 42, 38, 35, 33, 31, 29, 27, 25, 23,
	21, 19, 17, 15, 13, 11, 9, 7, 5, 4, 3, 2, 1, 0,
}

// Flat rankings used for gain low bits, lag low parts, shell-split
// midpoints and the LCG seed.
var (
	silkUniform3ICDF = []uint8{171, 85, 0}
	silkUniform4ICDF = []uint8{192, 128, 64, 0}
	silkUniform5ICDF = []uint8{205, 154, 102, 51, 0}
	silkUniform6ICDF = []uint8{213, 171, 128, 85, 43, 0}
	silkUniform8ICDF = []uint8{224, 192, 160, 128, 96, 64, 32, 0}
)

// silkNLSFStage1NBICDF ranks the 32 first-stage line spectral
// frequency codebook entries, conditioned on the voiced flag.
var silkNLSFStage1NBICDF = [2][]uint8{
	{212, 178, 148, 129, 108, 96, 85, 82, 79, 77, 61, 59, 57, 56, 51,
		49, 48, 45, 42, 41, 40, 38, 36, 34, 31, 30, 21, 12, 10, 3,
		1, 0},
	{255, 245, 244, 220, 202, 201, 193, 161, 154, 150, 147, 138, 123,
		113, 112, 98, 88, 87, 85, 84, 81, 77, 72, 60, 52, 38, 36, 34,
		28, 27, 25, 0},
}

var silkNLSFStage1WBICDF = [2][]uint8{
	{225, 204, 201, 184, 183, 175, 158, 154, 153, 135, 119, 115, 113,
		110, 109, 99, 98, 95, 79, 68, 52, 50, 48, 45, 43, 32, 31, 27,
		18, 10, 3, 0},
	{255, 251, 235, 230, 212, 201, 196, 182, 167, 166, 163, 151, 138,
		124, 110, 104, 90, 78, 76, 70, 69, 57, 45, 34, 24, 21, 11, 6,
		5, 4, 3, 0},
}

// Second-stage residual rankings; the table is chosen by the top three
// bits of the stage-1 index. Symbol 4 is the zero residual, and the
// extreme symbols escape to the extension distribution.
var silkNLSFStage2NBICDF = [8][]uint8{
	{255, 254, 253, 238, 14, 3, 2, 1, 0},
	{255, 254, 252, 218, 35, 3, 2, 1, 0},
	{255, 254, 250, 208, 59, 4, 2, 1, 0},
	{255, 254, 246, 194, 83, 10, 2, 1, 0},
	{255, 252, 236, 183, 111, 30, 5, 1, 0},
	{255, 252, 235, 180, 118, 43, 10, 2, 0},
	{255, 248, 224, 173, 121, 61, 20, 4, 0},
	{255, 254, 237, 184, 107, 25, 6, 1, 0},
}

var silkNLSFStage2WBICDF = [8][]uint8{
	{255, 254, 253, 244, 12, 3, 2, 1, 0},
	{255, 254, 252, 224, 38, 3, 2, 1, 0},
	{255, 254, 251, 209, 57, 4, 2, 1, 0},
	{255, 254, 244, 195, 69, 4, 2, 1, 0},
	{255, 251, 232, 184, 100, 27, 2, 1, 0},
	{255, 254, 238, 172, 90, 24, 5, 1, 0},
	{255, 248, 221, 174, 102, 40, 10, 3, 0},
	{255, 253, 237, 185, 103, 25, 7, 2, 0},
}

// silkNLSFExtICDF extends a saturated stage-2 residual outward.
var silkNLSFExtICDF = []uint8{100, 40, 16, 7, 3, 1, 0}

// Backwards prediction weights between neighbouring stage-2 residuals,
// Q8.
var (
	silkNLSFPredNB = [9]uint8{179, 138, 140, 148, 151, 149, 153, 151, 163}
	silkNLSFPredWB = [15]uint8{175, 148, 160, 176, 178, 173, 174, 164,
		177, 174, 196, 182, 198, 192, 182}
)

// silkNLSFInterpICDF selects the interpolation weight for the first
// half of a 20 ms frame; symbol 4 disables interpolation.
var silkNLSFInterpICDF = []uint8{243, 221, 192, 181, 0}

// Stage-2 residual quantization step, Q16: 0.18 for NB/MB, 0.15 for WB.
const (
	silkNLSFStepNB = 11796
	silkNLSFStepWB = 9830
)

// First-stage codebooks, Q8 over (0, pi). 32 vectors per bandwidth
// class; every vector is strictly increasing inside (0, 256), which
// the reconstruction weights rely on.
var silkNLSFCodebookNB = [][]uint8{
	{12, 35, 60, 83, 108, 132, 157, 180, 206, 228},
	{15, 32, 55, 77, 101, 125, 151, 175, 201, 225},
	{19, 42, 66, 89, 114, 137, 162, 184, 209, 230},
	{12, 25, 50, 72, 97, 120, 147, 172, 200, 223},
	{26, 44, 69, 90, 114, 135, 159, 180, 205, 225},
	{13, 22, 53, 80, 106, 130, 156, 180, 205, 228},
	{15, 25, 44, 64, 90, 115, 142, 168, 196, 222},
	{19, 24, 62, 82, 100, 120, 145, 168, 190, 214},
	{22, 31, 50, 79, 103, 120, 151, 170, 203, 227},
	{21, 29, 45, 65, 106, 124, 150, 171, 196, 224},
	{30, 49, 75, 97, 121, 142, 165, 186, 209, 229},
	{19, 25, 52, 70, 93, 116, 143, 166, 192, 219},
	{26, 34, 62, 75, 97, 118, 145, 167, 194, 217},
	{25, 33, 56, 70, 91, 113, 143, 165, 196, 223},
	{21, 34, 51, 72, 97, 117, 145, 171, 196, 222},
	{20, 29, 50, 67, 90, 117, 144, 168, 197, 221},
	{22, 31, 48, 66, 95, 117, 146, 168, 196, 222},
	{24, 33, 51, 77, 116, 134, 158, 180, 200, 224},
	{21, 28, 70, 87, 106, 124, 149, 170, 194, 217},
	{26, 33, 53, 64, 83, 117, 152, 173, 204, 225},
	{27, 34, 65, 95, 108, 129, 155, 174, 210, 225},
	{20, 26, 72, 99, 113, 131, 154, 176, 200, 219},
	{34, 43, 61, 78, 93, 114, 155, 177, 205, 229},
	{23, 29, 54, 97, 124, 138, 163, 179, 209, 229},
	{30, 38, 56, 89, 118, 129, 158, 178, 200, 231},
	{21, 29, 49, 63, 85, 111, 142, 163, 193, 222},
	{27, 48, 77, 103, 133, 158, 179, 196, 215, 232},
	{29, 47, 74, 99, 124, 151, 176, 198, 220, 237},
	{33, 42, 61, 76, 93, 121, 155, 174, 207, 225},
	{29, 53, 87, 112, 136, 154, 170, 188, 208, 227},
	{24, 30, 52, 84, 131, 150, 166, 186, 203, 229},
	{37, 48, 64, 84, 104, 118, 156, 177, 201, 230},
}

var silkNLSFCodebookWB = [][]uint8{
	{7, 23, 38, 54, 69, 85, 100, 116, 131, 147, 162, 178, 193, 208, 223, 239},
	{13, 25, 41, 55, 69, 83, 98, 112, 127, 142, 157, 171, 187, 203, 220, 236},
	{15, 21, 34, 51, 61, 78, 92, 106, 126, 136, 152, 167, 185, 205, 225, 240},
	{10, 21, 36, 50, 63, 79, 95, 110, 126, 141, 157, 173, 189, 205, 221, 237},
	{17, 20, 37, 51, 59, 78, 89, 107, 123, 134, 150, 164, 184, 205, 224, 240},
	{10, 15, 32, 51, 67, 81, 96, 112, 129, 142, 158, 173, 189, 204, 220, 236},
	{8, 21, 37, 51, 65, 79, 98, 113, 126, 138, 155, 168, 179, 192, 209, 218},
	{12, 15, 34, 55, 63, 78, 87, 108, 118, 131, 148, 167, 185, 203, 219, 236},
	{16, 19, 32, 36, 56, 79, 91, 108, 118, 136, 154, 171, 186, 204, 220, 237},
	{11, 28, 43, 58, 74, 89, 105, 120, 135, 150, 165, 180, 196, 211, 226, 241},
	{6, 16, 33, 46, 60, 75, 92, 107, 123, 137, 156, 169, 185, 199, 214, 225},
	{11, 19, 30, 44, 57, 74, 89, 105, 121, 135, 152, 169, 186, 202, 218, 234},
	{12, 19, 29, 46, 57, 71, 88, 100, 120, 132, 148, 165, 182, 199, 216, 233},
	{17, 23, 35, 46, 56, 77, 92, 106, 123, 134, 152, 167, 185, 204, 222, 237},
	{14, 17, 45, 53, 63, 75, 89, 107, 115, 132, 151, 171, 188, 206, 221, 240},
	{9, 16, 29, 40, 56, 71, 88, 103, 119, 137, 154, 171, 189, 205, 222, 237},
	{16, 19, 36, 48, 57, 76, 87, 105, 118, 132, 150, 167, 185, 202, 218, 236},
	{12, 17, 29, 54, 71, 81, 94, 104, 126, 136, 149, 164, 182, 201, 221, 237},
	{15, 28, 47, 62, 79, 97, 115, 129, 142, 155, 168, 180, 194, 208, 223, 238},
	{8, 14, 30, 45, 62, 78, 94, 111, 127, 143, 159, 175, 192, 207, 223, 239},
	{17, 30, 49, 62, 79, 92, 107, 119, 132, 145, 160, 174, 190, 204, 220, 235},
	{14, 19, 36, 45, 61, 76, 91, 108, 121, 138, 154, 172, 189, 205, 222, 238},
	{12, 18, 31, 45, 60, 76, 91, 107, 123, 138, 154, 171, 187, 204, 221, 236},
	{13, 17, 31, 43, 53, 70, 83, 103, 114, 131, 149, 167, 185, 203, 220, 237},
	{17, 22, 35, 42, 58, 78, 93, 110, 125, 139, 155, 170, 188, 206, 224, 240},
	{8, 15, 34, 50, 67, 83, 99, 115, 131, 146, 162, 178, 193, 209, 224, 239},
	{13, 16, 41, 66, 73, 86, 95, 111, 128, 137, 150, 163, 183, 206, 225, 241},
	{17, 25, 37, 52, 63, 75, 92, 102, 119, 132, 144, 160, 175, 191, 212, 231},
	{19, 31, 49, 65, 83, 100, 117, 133, 147, 161, 174, 187, 200, 213, 227, 242},
	{18, 31, 52, 68, 88, 103, 117, 126, 138, 149, 163, 177, 192, 207, 223, 239},
	{16, 29, 47, 61, 76, 90, 106, 119, 133, 147, 161, 176, 193, 209, 224, 240},
	{15, 21, 35, 50, 61, 73, 86, 97, 110, 119, 129, 141, 175, 198, 218, 237},
}

// Minimum spacing between stabilized NLSFs, Q15, with the boundary
// terms at both ends.
var (
	silkNLSFMinSpacingNB = [11]int16{250, 3, 6, 3, 3, 3, 4, 3, 3, 3, 461}
	silkNLSFMinSpacingWB = [17]int16{100, 3, 40, 3, 3, 3, 5, 14, 14, 10, 11, 3, 8, 9, 7, 3, 347}
)

// silkCosQ12 is cos(pi*i/128) in Q12 for i = 0..128, used to convert
// line spectral frequencies into prediction coefficients.
var silkCosQ12 = [129]int16{
	4096, 4095, 4091, 4085, 4076, 4065, 4052, 4036, 4017, 3996, 3973, 3948,
	3920, 3889, 3857, 3822, 3784, 3745, 3703, 3659, 3612, 3564, 3513, 3461,
	3406, 3349, 3290, 3229, 3166, 3102, 3035, 2967, 2896, 2824, 2751, 2675,
	2598, 2520, 2440, 2359, 2276, 2191, 2106, 2019, 1931, 1842, 1751, 1660,
	1567, 1474, 1380, 1285, 1189, 1092, 995, 897, 799, 700, 601, 501,
	401, 301, 201, 101, 0, -101, -201, -301, -401, -501, -601, -700,
	-799, -897, -995, -1092, -1189, -1285, -1380, -1474, -1567, -1660, -1751, -1842,
	-1931, -2019, -2106, -2191, -2276, -2359, -2440, -2520, -2598, -2675, -2751, -2824,
	-2896, -2967, -3035, -3102, -3166, -3229, -3290, -3349, -3406, -3461, -3513, -3564,
	-3612, -3659, -3703, -3745, -3784, -3822, -3857, -3889, -3920, -3948, -3973, -3996,
	-4017, -4036, -4052, -4065, -4076, -4085, -4091, -4095, -4096,
}

// silkLagHighICDF ranks the pitch lag's high part; the low part is a
// flat per-bandwidth ranking.
var silkLagHighICDF = []uint8{
	253, 250, 244, 233, 212, 182, 150, 131, 120, 110, 98, 85, 72, 60,
	49, 40, 32, 25, 19, 15, 13, 11, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
}

// silkLagDeltaICDF codes a lag relative to the previous frame's; symbol
// 0 escapes to absolute coding and symbol d maps to prev + d - 9.
var silkLagDeltaICDF = []uint8{
	210, 208, 206, 203, 199, 193, 183, 168, 142, 104, 74, 53, 39, 30,
	23, 18, 13, 10, 7, 4, 0,
}

// Pitch contour rankings: one table for 10 ms frames (2 subframes) and
// one for 20 ms (4 subframes), per bandwidth group.
var silkContourNBICDF = [2][]uint8{
	{113, 63, 0},
	{188, 176, 155, 138, 119, 97, 67, 43, 26, 10, 0},
}

var silkContourMBWBICDF = [2][]uint8{
	{165, 119, 80, 61, 47, 35, 27, 20, 14, 9, 4, 0},
	{223, 201, 183, 167, 152, 138, 124, 111, 98, 88, 79, 70, 62, 56,
		50, 44, 39, 35, 31, 27, 24, 21, 18, 16, 14, 12, 10, 8, 6, 4,
		3, 2, 1, 0},
}

// Per-subframe lag offsets selected by the contour index.
var silkContourOffsetsNB = [2][][]int8{
	{
		{0, 0},
		{1, 0},
		{0, 1},
	},
	{
		{0, 0, 0, 0},
		{2, 1, 0, -1},
		{-1, 0, 1, 2},
		{-1, 0, 0, 1},
		{-1, 0, 0, 0},
		{0, 0, 0, 1},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, -1},
		{1, 0, 0, -1},
	},
}

var silkContourOffsetsMBWB = [2][][]int8{
	{
		{0, 0},
		{0, 1},
		{1, 0},
		{-1, 1},
		{1, -1},
		{-1, 2},
		{2, -1},
		{-2, 2},
		{2, -2},
		{-2, 3},
		{3, -2},
		{-3, 3},
	},
	{
		{0, 0, 0, 0},
		{0, 0, 1, 1},
		{1, 1, 0, 0},
		{-1, 0, 0, 0},
		{0, 0, 0, 1},
		{1, 0, 0, 0},
		{-1, 0, 0, 1},
		{0, 0, 0, -1},
		{-1, 0, 1, 2},
		{1, 0, 0, -1},
		{-2, -1, 1, 2},
		{2, 1, 0, -1},
		{-2, 0, 0, 2},
		{-2, 0, 1, 3},
		{2, 1, -1, -2},
		{-3, -1, 1, 3},
		{2, 0, 0, -2},
		{3, 1, 0, -2},
		{-3, -1, 2, 4},
		{-4, -1, 1, 4},
		{3, 1, -1, -3},
		{-4, -1, 2, 5},
		{4, 2, -1, -3},
		{4, 1, -1, -4},
		{-5, -1, 2, 6},
		{5, 2, -1, -4},
		{-6, -2, 2, 6},
		{-5, -2, 2, 5},
		{6, 2, -1, -5},
		{-7, -2, 3, 8},
		{6, 2, -2, -6},
		{5, 2, -2, -5},
		{8, 3, -2, -7},
		{-9, -3, 3, 9},
	},
}

// silkPerIndexICDF selects which LTP filter codebook applies.
var silkPerIndexICDF = []uint8{179, 99, 0}

// silkLTPFilterICDF ranks the filter within each periodicity codebook.
var silkLTPFilterICDF = [3][]uint8{
	{71, 56, 43, 30, 21, 12, 6, 0},
	{199, 165, 144, 124, 109, 96, 84, 71, 61, 51, 42, 32, 23, 15, 8, 0},
	{241, 225, 211, 199, 187, 175, 164, 153, 142, 132, 123, 114, 105,
		96, 88, 80, 72, 64, 57, 50, 44, 38, 33, 29, 24, 20, 16, 12, 9,
		5, 2, 0},
}

// silkLTPTaps are the 5-tap long-term prediction shapes in Q7, one
// codebook per periodicity class.
var silkLTPTaps = [3][][5]int8{
	{
		{4, 6, 24, 7, 5},
		{0, 0, 2, 0, 0},
		{12, 28, 41, 13, -4},
		{-9, 15, 42, 25, 14},
		{1, -2, 62, 41, -9},
		{-10, 37, 65, -4, 3},
		{-6, 4, 66, 7, -8},
		{16, 14, 38, -3, 33},
	},
	{
		{13, 22, 39, 23, 12},
		{-1, 36, 64, 27, -6},
		{-7, 10, 55, 43, 17},
		{1, 1, 8, 1, 1},
		{6, -11, 74, 53, -9},
		{-12, 55, 76, -12, 8},
		{-3, 3, 93, 27, -4},
		{26, 39, 59, 3, -8},
		{2, 0, 77, 11, 9},
		{-8, 22, 44, -6, 7},
		{40, 9, 26, 3, 9},
		{-7, 20, 101, -7, 4},
		{3, -8, 42, 26, 0},
		{-15, 33, 68, 2, 23},
		{-2, 55, 46, -2, 15},
		{3, -1, 21, 16, 41},
	},
	{
		{-6, 27, 61, 39, 5},
		{-11, 42, 88, 4, 1},
		{-2, 60, 65, 6, -4},
		{-1, -5, 73, 56, 1},
		{-9, 19, 94, 29, -9},
		{0, 12, 99, 6, 4},
		{8, -19, 102, 46, -13},
		{3, 2, 13, 3, 2},
		{9, -21, 84, 72, -18},
		{-11, 46, 104, -22, 8},
		{18, 38, 48, 23, 0},
		{-16, 70, 83, -21, 11},
		{5, -11, 117, 22, -8},
		{-6, 23, 117, -12, 3},
		{3, -8, 95, 28, 4},
		{-10, 15, 77, 60, -15},
		{-1, 4, 124, 2, -4},
		{3, 38, 84, 24, -25},
		{2, 13, 42, 13, 31},
		{21, -4, 56, 46, -1},
		{-1, 35, 79, -13, 19},
		{-7, 65, 88, -9, -14},
		{20, 4, 81, 49, -29},
		{20, 0, 75, 3, -17},
		{5, -9, 44, 92, -8},
		{1, -3, 22, 69, 31},
		{-6, 95, 41, -12, 5},
		{39, 67, 16, -4, 1},
		{0, -6, 120, 55, -36},
		{-13, 44, 122, 4, -24},
		{81, 5, 11, 3, 7},
		{2, 0, 9, 10, 88},
	},
}

// silkLTPScaleICDF selects the long-term rewhitening scale (Q14).
var silkLTPScaleICDF = []uint8{128, 64, 0}

var silkLTPScaleQ14 = [3]int32{15565, 12288, 8192}

// silkRateLevelICDF selects the excitation rate level.
var silkRateLevelICDF = [2][]uint8{
	{241, 190, 178, 132, 87, 74, 41, 14, 0},
	{223, 193, 157, 140, 106, 57, 39, 18, 0},
}

// silkPulseCountICDF ranks pulse totals per 16-sample shell block, one
// table per rate level; symbol 17 escalates to LSB coding through
// tables 9 and 10.
var silkPulseCountICDF = [11][]uint8{
	{125, 51, 26, 18, 15, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{198, 105, 45, 22, 15, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{213, 162, 116, 83, 59, 43, 32, 24, 18, 15, 12, 9, 7, 6, 5, 3, 2, 0},
	{239, 187, 116, 59, 28, 16, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	{250, 229, 188, 135, 86, 51, 30, 19, 13, 10, 8, 6, 5, 4, 3, 2, 1, 0},
	{249, 235, 213, 185, 156, 128, 103, 83, 66, 53, 42, 33, 26, 21, 17, 13, 10, 0},
	{254, 249, 235, 206, 164, 118, 77, 46, 27, 16, 10, 7, 5, 4, 3, 2, 1, 0},
	{255, 253, 249, 239, 220, 191, 156, 119, 85, 57, 37, 23, 15, 10, 6, 4, 2, 0},
	{255, 253, 251, 246, 237, 223, 203, 179, 152, 124, 98, 75, 55, 40, 29, 21, 15, 0},
	{255, 254, 253, 247, 220, 162, 106, 67, 42, 28, 18, 12, 9, 6, 4, 3, 2, 0},
	{254, 253, 247, 220, 162, 106, 67, 42, 28, 18, 12, 9, 6, 4, 3, 2, 0, 0},
}

// silkPulseLocationICDF splits a block's pulse total across halves,
// one level per binary split depth, indexed by pulses remaining - 1.
var silkPulseLocationICDF = [4][16][]uint8{
	{
		{130, 0},
		{200, 58, 0},
		{231, 130, 26, 0},
		{244, 184, 76, 12, 0},
		{249, 214, 130, 43, 6, 0},
		{252, 232, 173, 87, 24, 3, 0},
		{253, 241, 203, 131, 56, 14, 2, 0},
		{254, 246, 221, 167, 94, 35, 8, 1, 0},
		{254, 249, 232, 193, 130, 65, 23, 5, 1, 0},
		{255, 251, 239, 211, 162, 99, 45, 15, 4, 1, 0},
		{255, 251, 243, 223, 186, 131, 74, 33, 11, 3, 1, 0},
		{255, 252, 245, 230, 202, 158, 105, 57, 24, 8, 2, 1, 0},
		{255, 253, 247, 235, 214, 179, 132, 84, 44, 19, 7, 2, 1, 0},
		{255, 254, 250, 240, 223, 196, 159, 112, 69, 36, 15, 6, 2, 1, 0},
		{255, 254, 253, 245, 231, 209, 176, 136, 93, 55, 27, 11, 3, 2, 1, 0},
		{255, 254, 253, 252, 239, 221, 194, 158, 117, 76, 42, 18, 4, 3, 2, 1, 0},
	},
	{
		{129, 0},
		{203, 54, 0},
		{234, 129, 23, 0},
		{245, 184, 73, 10, 0},
		{250, 215, 129, 41, 5, 0},
		{252, 232, 173, 86, 24, 3, 0},
		{253, 240, 200, 129, 56, 15, 2, 0},
		{253, 244, 217, 164, 94, 38, 10, 1, 0},
		{253, 245, 226, 189, 132, 71, 27, 7, 1, 0},
		{253, 246, 231, 203, 159, 105, 56, 23, 6, 1, 0},
		{255, 248, 235, 213, 179, 133, 85, 47, 19, 5, 1, 0},
		{255, 254, 243, 221, 194, 159, 117, 70, 37, 12, 2, 1, 0},
		{255, 254, 248, 234, 208, 171, 128, 85, 48, 22, 8, 2, 1, 0},
		{255, 254, 250, 240, 220, 189, 149, 107, 67, 36, 16, 6, 2, 1, 0},
		{255, 254, 251, 243, 227, 201, 166, 128, 90, 55, 29, 13, 5, 2, 1, 0},
		{255, 254, 252, 246, 234, 213, 183, 147, 109, 73, 43, 22, 10, 4, 2, 1, 0},
	},
	{
		{129, 0},
		{207, 50, 0},
		{236, 129, 20, 0},
		{245, 185, 72, 10, 0},
		{249, 213, 129, 42, 6, 0},
		{250, 226, 169, 87, 27, 4, 0},
		{251, 233, 194, 130, 62, 20, 4, 0},
		{250, 236, 207, 160, 99, 47, 17, 3, 0},
		{255, 240, 217, 182, 131, 81, 41, 11, 1, 0},
		{255, 254, 233, 201, 159, 107, 61, 20, 2, 1, 0},
		{255, 249, 233, 206, 170, 128, 86, 50, 23, 7, 1, 0},
		{255, 250, 238, 217, 186, 148, 108, 70, 39, 18, 6, 1, 0},
		{255, 252, 243, 226, 200, 166, 128, 90, 56, 30, 13, 4, 1, 0},
		{255, 252, 245, 231, 209, 180, 146, 110, 76, 47, 25, 11, 4, 1, 0},
		{255, 253, 248, 237, 219, 194, 163, 128, 93, 62, 37, 19, 8, 3, 1, 0},
		{255, 254, 250, 241, 226, 205, 177, 145, 111, 79, 51, 30, 15, 6, 2, 1, 0},
	},
	{
		{128, 0},
		{214, 42, 0},
		{235, 128, 21, 0},
		{244, 184, 72, 11, 0},
		{248, 214, 128, 42, 7, 0},
		{248, 225, 170, 80, 25, 5, 0},
		{251, 236, 198, 126, 54, 18, 3, 0},
		{250, 238, 211, 159, 82, 35, 15, 5, 0},
		{250, 231, 203, 168, 128, 88, 53, 25, 6, 0},
		{252, 238, 216, 185, 148, 108, 71, 40, 18, 4, 0},
		{253, 243, 225, 199, 166, 128, 90, 57, 31, 13, 3, 0},
		{254, 246, 233, 212, 183, 147, 109, 73, 44, 23, 10, 2, 0},
		{255, 250, 240, 223, 198, 166, 128, 90, 58, 33, 16, 6, 1, 0},
		{255, 251, 244, 231, 210, 181, 146, 110, 75, 46, 25, 12, 5, 1, 0},
		{255, 253, 248, 238, 221, 196, 164, 128, 92, 60, 35, 18, 8, 3, 1, 0},
		{255, 253, 249, 242, 229, 208, 180, 146, 110, 76, 48, 27, 14, 7, 3, 1, 0},
	},
}

// silkLSBICDF codes one extra magnitude bit per sample after a pulse
// count escape.
var silkLSBICDF = []uint8{120, 0}

// silkSignICDF codes excitation signs, indexed by signal type, quant
// offset type, and min(pulse count, 6). Symbol 0 is negative.
var silkSignICDF = [3][2][7][]uint8{
	{
		{{254, 0}, {49, 0}, {67, 0}, {77, 0}, {82, 0}, {93, 0}, {99, 0}},
		{{198, 0}, {11, 0}, {18, 0}, {24, 0}, {31, 0}, {36, 0}, {45, 0}},
	},
	{
		{{255, 0}, {46, 0}, {66, 0}, {78, 0}, {87, 0}, {94, 0}, {104, 0}},
		{{208, 0}, {14, 0}, {21, 0}, {32, 0}, {42, 0}, {51, 0}, {66, 0}},
	},
	{
		{{255, 0}, {94, 0}, {104, 0}, {109, 0}, {112, 0}, {115, 0}, {118, 0}},
		{{248, 0}, {53, 0}, {69, 0}, {80, 0}, {88, 0}, {95, 0}, {102, 0}},
	},
}

// silkQuantOffset is the excitation offset in Q23/2^10 units, indexed
// by voiced flag then quant offset type.
var silkQuantOffset = [2][2]int32{
	{25, 60},
	{8, 25},
}

// silkStereoWeightICDF ranks the joint mid/side prediction weight
// index; the two weights are refined by uniform3/uniform5 stages.
var silkStereoWeightICDF = []uint8{
	249, 247, 246, 245, 244, 234, 210, 202, 201, 200, 197, 174,
	82, 59, 56, 55, 54, 46, 22, 12, 11, 10, 9, 7, 0,
}

// silkStereoWQ13 are the stereo prediction weight levels in Q13.
var silkStereoWQ13 = [16]int16{
	-13732, -10050, -8266, -7526, -6500, -5000, -2950, -820,
	820, 2950, 5000, 6500, 7526, 8266, 10050, 13732,
}

// silkMidOnlyICDF flags a frame where only the mid channel is coded.
var silkMidOnlyICDF = []uint8{64, 0}

// silkLBRRFlagICDF covers the per-frame redundancy flags of 40 and
// 60 ms packets (2 or 3 flag bits as a combined symbol).
var silkLBRRFlagICDF = [2][]uint8{
	{203, 150, 140, 0},
	{215, 195, 166, 125, 110, 82, 61, 0},
}
