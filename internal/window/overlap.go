package window

// Overlap is the per-channel overlap-add engine for the long/short
// window-sequence family (AAC layout: frame length L, short length L/8).
// It windows raw IMDCT output according to the frame's Sequence and
// adds it against the stored second half of the previous frame.
//
// Each decoder instance owns one Overlap; the tail buffers are the
// OverlapState of that instance and are never shared.
type Overlap struct {
	frameLen int
	shortLen int
	tails    [][]float32 // per channel, frameLen samples
	scratch  []float32   // eight-short assembly buffer, 2*frameLen
}

// NewOverlap sizes the engine for channels and frame length. shortLen is
// frameLen/8 following the eight-short grouping.
func NewOverlap(channels, frameLen int) *Overlap {
	o := &Overlap{
		frameLen: frameLen,
		shortLen: frameLen / 8,
		tails:    make([][]float32, channels),
		scratch:  make([]float32, 2*frameLen),
	}
	for i := range o.tails {
		o.tails[i] = make([]float32, frameLen)
	}
	return o
}

// Reset zeroes every stored tail without reallocating.
func (o *Overlap) Reset() {
	for _, t := range o.tails {
		for i := range t {
			t[i] = 0
		}
	}
}

// Tail exposes the stored overlap tail for a channel. Codecs that keep
// extra per-channel prediction state read it; they must not resize it.
func (o *Overlap) Tail(ch int) []float32 { return o.tails[ch] }

// ApplyAndOverlap windows block (raw IMDCT output) per seq and
// overlap-adds it with the channel's stored tail, writing frameLen
// output samples into out and storing the new tail.
//
// For OnlyLong/LongStart/LongStop, block holds 2*frameLen samples from
// one long IMDCT. For EightShort it holds eight consecutive 2*shortLen
// IMDCT outputs. prevShape windows the first half (continuity with the
// previous frame), curShape the second.
func (o *Overlap) ApplyAndOverlap(ch int, seq Sequence, prevShape, curShape Shape, block, out []float32) {
	L := o.frameLen
	S := o.shortLen
	tail := o.tails[ch]

	switch seq {
	case OnlyLong:
		prev := Table(prevShape, L)
		cur := Table(curShape, L)
		for i := 0; i < L; i++ {
			out[i] = tail[i] + block[i]*prev[i]
			tail[i] = block[L+i] * cur[L-1-i]
		}

	case LongStart:
		// Long left half, short right edge: the frame leads into an
		// eight-short frame so its tail must fall off over S samples.
		prev := Table(prevShape, L)
		short := Table(curShape, S)
		flat := (L - S) / 2
		for i := 0; i < L; i++ {
			out[i] = tail[i] + block[i]*prev[i]
		}
		for i := 0; i < flat; i++ {
			tail[i] = block[L+i]
		}
		for i := 0; i < S; i++ {
			tail[flat+i] = block[L+flat+i] * short[S-1-i]
		}
		for i := flat + S; i < L; i++ {
			tail[i] = 0
		}

	case LongStop:
		// Short left edge, long right half: mirrors LongStart.
		short := Table(prevShape, S)
		cur := Table(curShape, L)
		flat := (L - S) / 2
		for i := 0; i < flat; i++ {
			out[i] = tail[i]
		}
		for i := 0; i < S; i++ {
			out[flat+i] = tail[flat+i] + block[flat+i]*short[i]
		}
		for i := flat + S; i < L; i++ {
			out[i] = tail[i] + block[i]
		}
		for i := 0; i < L; i++ {
			tail[i] = block[L+i] * cur[L-1-i]
		}

	case EightShort:
		// Eight short transforms, internally overlapped, centered in
		// the frame. The assembled 2L buffer then overlap-adds like a
		// long block with flat skirts.
		prev := Table(prevShape, S)
		cur := Table(curShape, S)
		flat := (L - S) / 2
		buf := o.scratch
		for i := range buf {
			buf[i] = 0
		}
		for w := 0; w < 8; w++ {
			left := cur
			if w == 0 {
				left = prev
			}
			sub := block[w*2*S : (w+1)*2*S]
			base := flat + w*S
			for i := 0; i < S; i++ {
				buf[base+i] += sub[i] * left[i]
				buf[base+S+i] += sub[S+i] * cur[S-1-i]
			}
		}
		for i := 0; i < L; i++ {
			out[i] = tail[i] + buf[i]
			tail[i] = buf[L+i]
		}
	}
}
