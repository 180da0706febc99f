package vorbis

import (
	"math"

	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// A floor decodes one channel's spectral envelope from an audio packet
// and renders it as a linear curve over the half-spectrum. The bool
// result reports whether the channel carries audio this frame; an
// unused channel is rendered as silence.
type floor interface {
	decode(r *bits.LSBReader, books []*codebook, n int, out []float32) (bool, error)
}

// parseFloor reads one floor configuration from the setup header.
func parseFloor(r *bits.LSBReader, books []*codebook) (floor, error) {
	t, err := r.ReadBits(16)
	if err != nil {
		return nil, err
	}
	switch t {
	case 0:
		return parseFloor0(r, books)
	case 1:
		return parseFloor1(r, books)
	}
	return nil, audiodec.ErrCorruptSideInfo
}

// inverseDB maps a floor1 amplitude index to a linear gain: a geometric
// ramp between the reference endpoints 1.0649863e-07 and 0.82788260,
// one fixed dB step per index.
var inverseDB [256]float32

func init() {
	const top = 0.82788260
	const bottom = 1.0649863e-07
	step := math.Log(top/bottom) / 255
	for i := range inverseDB {
		inverseDB[i] = float32(top * math.Exp(step*float64(i-255)))
	}
}

// floor0 is the LSP floor (Vorbis I §6.2): line spectral pairs decoded
// through VQ codebooks and evaluated on a Bark-warped frequency map.
type floor0 struct {
	order       int
	rate        int
	barkMapSize int
	ampBits     uint
	ampOffset   int
	books       []int

	maps map[int][]int // half-spectrum size -> bark map
}

func parseFloor0(r *bits.LSBReader, books []*codebook) (*floor0, error) {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	f := &floor0{
		order:       read(8),
		rate:        read(16),
		barkMapSize: read(16),
		ampBits:     uint(read(6)),
		ampOffset:   read(8),
		maps:        make(map[int][]int),
	}
	numBooks := read(4) + 1
	for i := 0; i < numBooks; i++ {
		b := read(8)
		if err == nil && (b >= len(books) || books[b].vectors == nil) {
			return nil, audiodec.ErrCorruptSideInfo
		}
		f.books = append(f.books, b)
	}
	if err != nil {
		return nil, err
	}
	if f.order == 0 || f.rate == 0 || f.barkMapSize == 0 {
		return nil, audiodec.ErrCorruptSideInfo
	}
	return f, nil
}

func (f *floor0) decode(r *bits.LSBReader, books []*codebook, n int, out []float32) (bool, error) {
	amp, err := r.ReadBits(f.ampBits)
	if err != nil || amp == 0 {
		return false, nil
	}
	bookNum, err := r.ReadBits(uint(ilog(len(f.books) - 1)))
	if err != nil {
		return false, nil
	}
	if int(bookNum) >= len(f.books) {
		return false, audiodec.ErrCorruptSpectralData
	}
	book := books[f.books[bookNum]]

	coeffs := make([]float64, 0, f.order+book.dims)
	last := float64(0)
	for len(coeffs) < f.order {
		v, err := book.decodeVector(r)
		if err != nil {
			if err == audiodec.ErrBitstreamExhausted {
				return false, nil
			}
			return false, err
		}
		for _, e := range v {
			coeffs = append(coeffs, float64(e)+last)
		}
		last = coeffs[len(coeffs)-1]
	}
	coeffs = coeffs[:f.order]

	f.synthesize(float64(amp), coeffs, n, out)
	return true, nil
}

// synthesize evaluates the LSP polynomial on the bark map and converts
// the result to a linear curve (Vorbis I §6.2.3).
func (f *floor0) synthesize(amp float64, coeffs []float64, n int, out []float32) {
	m := f.barkMap(n)
	maxAmp := float64(int(1)<<f.ampBits - 1)

	cosC := make([]float64, len(coeffs))
	for i, c := range coeffs {
		cosC[i] = math.Cos(c)
	}

	for i := 0; i < n; {
		w := math.Pi * float64(m[i]) / float64(f.barkMapSize)
		cosW := math.Cos(w)

		var p, q float64
		if f.order&1 != 0 {
			p = 1 - cosW*cosW
			q = 0.25
			for j := 0; j+1 < f.order; j += 2 {
				d := cosC[j+1] - cosW
				p *= 4 * d * d
			}
			for j := 0; j < f.order; j += 2 {
				d := cosC[j] - cosW
				q *= 4 * d * d
			}
		} else {
			p = (1 - cosW) / 2
			q = (1 + cosW) / 2
			for j := 0; j < f.order; j += 2 {
				d := cosC[j+1] - cosW
				p *= 4 * d * d
				d = cosC[j] - cosW
				q *= 4 * d * d
			}
		}

		v := math.Exp(0.11512925 *
			(amp*float64(f.ampOffset)/(maxAmp*math.Sqrt(p+q)) - float64(f.ampOffset)))

		// The curve is flat across consecutive bins sharing a map value.
		out[i] = float32(v)
		for i++; i < n && m[i] == m[i-1]; i++ {
			out[i] = float32(v)
		}
	}
}

// barkMap returns (building on first use) the bin-to-bark mapping for a
// half-spectrum of n bins.
func (f *floor0) barkMap(n int) []int {
	if m, ok := f.maps[n]; ok {
		return m
	}
	bark := func(x float64) float64 {
		return 13.1*math.Atan(0.00074*x) +
			2.24*math.Atan(1.85e-8*x*x) +
			0.0001*x
	}
	scale := float64(f.barkMapSize) / bark(0.5*float64(f.rate))
	m := make([]int, n)
	for i := range m {
		v := int(math.Floor(bark(float64(f.rate)*float64(i)/(2*float64(n))) * scale))
		if v > f.barkMapSize-1 {
			v = f.barkMapSize - 1
		}
		m[i] = v
	}
	f.maps[n] = m
	return m
}

// floor1 is the piecewise-linear floor (Vorbis I §7): a fixed set of
// spectral anchor points whose amplitudes are coded differentially
// against the line through their already-decoded neighbors.
type floor1 struct {
	partitionClass []int
	classDims      []int
	classSubs      []uint
	masterbooks    []int
	subclassBooks  [][]int
	multiplier     int
	xlist          []int

	lowNbr, highNbr []int
	sortOrder       []int

	// scratch, sized to len(xlist)
	y      []int
	finalY []int
	step2  []bool
}

func parseFloor1(r *bits.LSBReader, books []*codebook) (*floor1, error) {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	f := &floor1{}
	partitions := read(5)
	maxClass := -1
	for i := 0; i < partitions; i++ {
		c := read(4)
		if c > maxClass {
			maxClass = c
		}
		f.partitionClass = append(f.partitionClass, c)
	}
	for c := 0; c <= maxClass; c++ {
		f.classDims = append(f.classDims, read(3)+1)
		sub := uint(read(2))
		f.classSubs = append(f.classSubs, sub)
		master := -1
		if sub != 0 {
			master = read(8)
			if err == nil && master >= len(books) {
				return nil, audiodec.ErrCorruptSideInfo
			}
		}
		f.masterbooks = append(f.masterbooks, master)
		sb := make([]int, 1<<sub)
		for k := range sb {
			sb[k] = read(8) - 1
			if err == nil && sb[k] >= len(books) {
				return nil, audiodec.ErrCorruptSideInfo
			}
		}
		f.subclassBooks = append(f.subclassBooks, sb)
	}
	f.multiplier = read(2) + 1
	rangeBits := uint(read(4))

	f.xlist = []int{0, 1 << rangeBits}
	for i := 0; i < partitions; i++ {
		for j := 0; j < f.classDims[f.partitionClass[i]]; j++ {
			f.xlist = append(f.xlist, read(rangeBits))
		}
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[int]bool, len(f.xlist))
	for _, x := range f.xlist {
		if seen[x] {
			return nil, audiodec.ErrCorruptSideInfo
		}
		seen[x] = true
	}

	f.precompute()
	return f, nil
}

// precompute fills the neighbor tables and the x-sorted render order.
func (f *floor1) precompute() {
	n := len(f.xlist)
	f.lowNbr = make([]int, n)
	f.highNbr = make([]int, n)
	for i := 2; i < n; i++ {
		low, high := 0, 1
		for j := 0; j < i; j++ {
			if f.xlist[j] < f.xlist[i] && f.xlist[j] > f.xlist[low] {
				low = j
			}
			if f.xlist[j] > f.xlist[i] && f.xlist[j] < f.xlist[high] {
				high = j
			}
		}
		f.lowNbr[i] = low
		f.highNbr[i] = high
	}

	f.sortOrder = make([]int, n)
	for i := range f.sortOrder {
		f.sortOrder[i] = i
	}
	for i := 1; i < n; i++ { // insertion sort by x
		for j := i; j > 0 && f.xlist[f.sortOrder[j-1]] > f.xlist[f.sortOrder[j]]; j-- {
			f.sortOrder[j-1], f.sortOrder[j] = f.sortOrder[j], f.sortOrder[j-1]
		}
	}

	f.y = make([]int, n)
	f.finalY = make([]int, n)
	f.step2 = make([]bool, n)
}

var floor1Ranges = [4]int{256, 128, 86, 64}

func (f *floor1) decode(r *bits.LSBReader, books []*codebook, n int, out []float32) (bool, error) {
	used, err := r.ReadFlag()
	if err != nil || !used {
		return false, nil
	}

	rng := floor1Ranges[f.multiplier-1]
	yBits := uint(ilog(rng - 1))

	readY := func() (int, error) {
		v, err := r.ReadBits(yBits)
		return int(v), err
	}
	if f.y[0], err = readY(); err != nil {
		return false, nil
	}
	if f.y[1], err = readY(); err != nil {
		return false, nil
	}

	offset := 2
	for _, c := range f.partitionClass {
		cdim := f.classDims[c]
		cbits := f.classSubs[c]
		csub := int(1)<<cbits - 1
		cval := 0
		if cbits > 0 {
			cval, err = books[f.masterbooks[c]].decodeScalar(r)
			if err != nil {
				if err == audiodec.ErrBitstreamExhausted {
					return false, nil
				}
				return false, err
			}
		}
		for j := 0; j < cdim; j++ {
			book := f.subclassBooks[c][cval&csub]
			cval >>= cbits
			f.y[offset+j] = 0
			if book >= 0 {
				v, err := books[book].decodeScalar(r)
				if err != nil {
					if err == audiodec.ErrBitstreamExhausted {
						return false, nil
					}
					return false, err
				}
				f.y[offset+j] = v
			}
		}
		offset += cdim
	}

	f.synthesize(rng, n, out)
	return true, nil
}

// synthesize runs the amplitude prediction cascade and renders the
// resulting line segments into a linear-gain curve.
func (f *floor1) synthesize(rng, n int, out []float32) {
	f.finalY[0] = clampInt(f.y[0], 0, rng-1)
	f.finalY[1] = clampInt(f.y[1], 0, rng-1)
	f.step2[0], f.step2[1] = true, true

	for i := 2; i < len(f.xlist); i++ {
		low, high := f.lowNbr[i], f.highNbr[i]
		predicted := renderPoint(f.xlist[low], f.finalY[low],
			f.xlist[high], f.finalY[high], f.xlist[i])
		val := f.y[i]
		highroom := rng - predicted
		lowroom := predicted
		room := 2 * highroom
		if lowroom < highroom {
			room = 2 * lowroom
		}
		if val == 0 {
			f.step2[i] = false
			f.finalY[i] = predicted
			continue
		}
		f.step2[low] = true
		f.step2[high] = true
		f.step2[i] = true
		switch {
		case val >= room:
			if highroom > lowroom {
				f.finalY[i] = val - lowroom + predicted
			} else {
				f.finalY[i] = predicted - val + highroom - 1
			}
		case val&1 != 0:
			f.finalY[i] = predicted - (val+1)/2
		default:
			f.finalY[i] = predicted + val/2
		}
		f.finalY[i] = clampInt(f.finalY[i], 0, rng-1)
	}

	// sortOrder[0] is always the x=0 anchor; it seeds the left endpoint.
	hx, hy := 0, f.finalY[0]*f.multiplier
	lx, ly := 0, hy
	for _, i := range f.sortOrder[1:] {
		if !f.step2[i] {
			continue
		}
		hx = f.xlist[i]
		hy = f.finalY[i] * f.multiplier
		renderLine(lx, ly, hx, hy, out)
		lx, ly = hx, hy
	}
	if hx < n {
		renderLine(hx, hy, n, hy, out)
	}
}

// renderPoint is the integer midpoint interpolation both the decode
// cascade and the encoder's prediction agree on.
func renderPoint(x0, y0, x1, y1, x int) int {
	dy := y1 - y0
	adx := x1 - x0
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	off := ady * (x - x0) / adx
	if dy < 0 {
		return y0 - off
	}
	return y0 + off
}

// renderLine draws [x0,x1) of the segment into out through the
// amplitude table, Bresenham-style.
func renderLine(x0, y0, x1, y1 int, out []float32) {
	dy := y1 - y0
	adx := x1 - x0
	ady := dy
	if ady < 0 {
		ady = -ady
	}
	base := dy / adx
	sy := base + 1
	if dy < 0 {
		sy = base - 1
	}
	abase := base
	if abase < 0 {
		abase = -abase
	}
	ady -= abase * adx

	if x0 < len(out) {
		out[x0] = inverseDB[clampInt(y0, 0, 255)]
	}
	y := y0
	errAcc := 0
	for x := x0 + 1; x < x1 && x < len(out); x++ {
		errAcc += ady
		if errAcc >= adx {
			errAcc -= adx
			y += sy
		} else {
			y += base
		}
		out[x] = inverseDB[clampInt(y, 0, 255)]
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
