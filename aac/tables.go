package aac

// sampleRates maps the 4-bit sampling_frequency_index to Hz.
var sampleRates = [12]int{
	96000, 88200, 64000, 48000, 44100, 32000,
	24000, 22050, 16000, 12000, 11025, 8000,
}

// sampleRateIndex returns the index for a rate, -1 if the rate is not
// one of the twelve defined by ISO/IEC 14496-3.
func sampleRateIndex(rate int) int {
	for i, r := range sampleRates {
		if r == rate {
			return i
		}
	}
	return -1
}

// Scalefactor-band offsets for 1024-sample long windows, one table per
// group of sample rates (ISO/IEC 13818-7 tables 8.4-8.10). The final
// entry is the frame length.
var (
	swbLong96 = []int{
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56,
		64, 72, 80, 88, 96, 108, 120, 132, 144, 156, 172, 188, 212, 240,
		276, 320, 384, 448, 512, 576, 640, 704, 768, 832, 896, 960, 1024,
	}
	swbLong64 = []int{
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 48, 52, 56,
		64, 72, 80, 88, 100, 112, 124, 140, 156, 172, 192, 216, 240, 268,
		304, 344, 384, 424, 464, 504, 544, 584, 624, 664, 704, 744, 784, 824,
		864, 904, 944, 984, 1024,
	}
	swbLong48 = []int{
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72,
		80, 88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292,
		320, 352, 384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736,
		768, 800, 832, 864, 896, 928, 1024,
	}
	swbLong32 = []int{
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 48, 56, 64, 72,
		80, 88, 96, 108, 120, 132, 144, 160, 176, 196, 216, 240, 264, 292,
		320, 352, 384, 416, 448, 480, 512, 544, 576, 608, 640, 672, 704, 736,
		768, 800, 832, 864, 896, 928, 960, 992, 1024,
	}
	swbLong24 = []int{
		0, 4, 8, 12, 16, 20, 24, 28, 32, 36, 40, 44, 52, 60, 68,
		76, 84, 92, 100, 108, 116, 124, 136, 148, 160, 172, 188, 204, 220,
		240, 260, 284, 308, 336, 364, 396, 432, 468, 508, 552, 600, 652, 704,
		768, 832, 896, 960, 1024,
	}
	swbLong16 = []int{
		0, 8, 16, 24, 32, 40, 48, 56, 64, 72, 80, 88, 100, 112, 124,
		136, 148, 160, 172, 184, 196, 212, 228, 244, 260, 280, 300, 320, 344,
		368, 396, 424, 456, 492, 532, 572, 616, 664, 716, 772, 832, 896, 960, 1024,
	}
	swbLong8 = []int{
		0, 12, 24, 36, 48, 60, 72, 84, 96, 108, 120, 132, 144, 156, 172,
		188, 204, 220, 236, 252, 268, 288, 308, 328, 348, 372, 396, 420, 448,
		476, 508, 544, 580, 620, 664, 712, 764, 820, 880, 944, 1024,
	}
)

// swbOffsetsLong maps sample rate index to the long-window table.
var swbOffsetsLong = [12][]int{
	swbLong96, swbLong96, swbLong64, swbLong48, swbLong48, swbLong32,
	swbLong24, swbLong24, swbLong16, swbLong16, swbLong16, swbLong8,
}

// Scalefactor-band offsets for 128-sample short windows.
var (
	swbShort96 = []int{0, 4, 8, 12, 16, 20, 24, 32, 40, 48, 64, 92, 128}
	swbShort48 = []int{0, 4, 8, 12, 16, 20, 28, 36, 44, 56, 68, 80, 96, 112, 128}
	swbShort24 = []int{0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 64, 76, 92, 108, 128}
	swbShort16 = []int{0, 4, 8, 12, 16, 20, 24, 28, 32, 40, 48, 60, 72, 88, 108, 128}
	swbShort8  = []int{0, 4, 8, 12, 16, 20, 24, 28, 36, 44, 52, 60, 72, 88, 108, 128}
)

// swbOffsetsShort maps sample rate index to the short-window table.
var swbOffsetsShort = [12][]int{
	swbShort96, swbShort96, swbShort96, swbShort48, swbShort48, swbShort48,
	swbShort24, swbShort24, swbShort16, swbShort16, swbShort16, swbShort8,
}

// tnsMaxBands caps the TNS filter region per sample rate index,
// long and short windows (ISO/IEC 13818-7 table 8.9 for LC).
var tnsMaxBands = [12][2]int{
	{31, 9}, {31, 9}, {34, 10}, {40, 14}, {42, 14}, {51, 14},
	{46, 14}, {46, 14}, {42, 14}, {42, 14}, {42, 14}, {39, 14},
}
