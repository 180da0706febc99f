package mp3

import "math"

// Scalefactor band boundaries in frequency lines, indexed by h.sfreq
// (ISO/IEC 11172-3 Table B.8, ISO/IEC 13818-3 Table B.2).
var sfbLong = [6][23]int{
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
	{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 114, 136, 162, 194, 232, 278, 332, 394, 464, 540, 576},
	{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
}

var sfbShort = [6][14]int{
	{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
	{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
	{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
	{0, 4, 8, 12, 18, 24, 32, 42, 56, 74, 100, 132, 174, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
	{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
}

// pretab is the additional high-band scalefactor applied when preflag
// is set (ISO/IEC 11172-3 Table B.6).
var pretab = [22]int{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}

// Anti-alias butterfly coefficients derived from the eight ci values
// of ISO/IEC 11172-3 Table B.9.
var antialiasCS, antialiasCA [8]float32

// Intensity stereo ratios tan(pos * pi/12) for positions 0..6;
// position 7 means "leave the band as coded".
var intensityRatio [7]float32

// pow43tab caches |x|^(4/3) for every magnitude a codeword can carry
// (15 + 2^13 from the widest linbits escape).
var pow43tab [8208]float32

func init() {
	ci := [8]float64{-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037}
	for i, c := range ci {
		den := math.Sqrt(1 + c*c)
		antialiasCS[i] = float32(1 / den)
		antialiasCA[i] = float32(c / den)
	}
	for i := range intensityRatio {
		intensityRatio[i] = float32(math.Tan(float64(i) * math.Pi / 12))
	}
	for i := range pow43tab {
		pow43tab[i] = float32(math.Pow(float64(i), 4.0/3.0))
	}
}

func pow43(v int32) float32 {
	if v < 0 {
		return -pow43tab[-v]
	}
	return pow43tab[v]
}
