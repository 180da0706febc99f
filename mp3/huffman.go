package mp3

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// huffTable is one Layer III codebook. Codewords are stored as
// (length, code) pairs; decoding walks a binary tree built once at
// package init.
type huffTable struct {
	wide  int // pair tables: symbol = x*wide + y; quad tables: 0
	lens  []uint8
	codes []uint32
	tree  []int32 // tree[2n+b]: >0 child node, <0 leaf -(sym+1)
}

func (t *huffTable) build() {
	t.tree = make([]int32, 2, 4*len(t.lens))
	for sym, l := range t.lens {
		code := t.codes[sym]
		n := int32(0)
		for k := int(l) - 1; k >= 0; k-- {
			b := code >> k & 1
			next := t.tree[2*n+int32(b)]
			if next == 0 {
				if k == 0 {
					t.tree[2*n+int32(b)] = int32(-(sym + 1))
					break
				}
				next = int32(len(t.tree) / 2)
				t.tree[2*n+int32(b)] = next
				t.tree = append(t.tree, 0, 0)
			}
			n = next
		}
	}
}

func (t *huffTable) decode(r *bits.Reader) (int, error) {
	n := int32(0)
	for {
		b, err := r.ReadBit()
		if err != nil {
			return 0, audiodec.ErrCorruptSpectralData
		}
		v := t.tree[2*n+int32(b)]
		if v < 0 {
			return int(-v - 1), nil
		}
		if v == 0 {
			return 0, audiodec.ErrCorruptSpectralData
		}
		n = v
	}
}

// pairEntry maps a table_select value onto a codebook and its linbits
// escape width (ISO/IEC 11172-3 Table B.7). Entries 4 and 14 are not
// assigned; a frame selecting them is corrupt.
type pairEntry struct {
	table   *huffTable
	linbits uint
	invalid bool
}

var pairTables [32]pairEntry

func init() {
	for _, t := range []*huffTable{
		&huffTable1, &huffTable2, &huffTable3, &huffTable5, &huffTable6,
		&huffTable7, &huffTable8, &huffTable9, &huffTable10, &huffTable11,
		&huffTable12, &huffTable13, &huffTable15, &huffTable16, &huffTable24,
		&huffTableQA, &huffTableQB,
	} {
		t.build()
	}

	pairTables[0] = pairEntry{} // no data coded
	pairTables[1] = pairEntry{table: &huffTable1}
	pairTables[2] = pairEntry{table: &huffTable2}
	pairTables[3] = pairEntry{table: &huffTable3}
	pairTables[4] = pairEntry{invalid: true}
	pairTables[5] = pairEntry{table: &huffTable5}
	pairTables[6] = pairEntry{table: &huffTable6}
	pairTables[7] = pairEntry{table: &huffTable7}
	pairTables[8] = pairEntry{table: &huffTable8}
	pairTables[9] = pairEntry{table: &huffTable9}
	pairTables[10] = pairEntry{table: &huffTable10}
	pairTables[11] = pairEntry{table: &huffTable11}
	pairTables[12] = pairEntry{table: &huffTable12}
	pairTables[13] = pairEntry{table: &huffTable13}
	pairTables[14] = pairEntry{invalid: true}
	pairTables[15] = pairEntry{table: &huffTable15}
	for i, lb := range [8]uint{1, 2, 3, 4, 6, 8, 10, 13} {
		pairTables[16+i] = pairEntry{table: &huffTable16, linbits: lb}
	}
	for i, lb := range [8]uint{4, 5, 6, 7, 8, 9, 11, 13} {
		pairTables[24+i] = pairEntry{table: &huffTable24, linbits: lb}
	}
}

func decodePair(r *bits.Reader, sel int) (int32, int32, error) {
	e := &pairTables[sel]
	if e.invalid {
		return 0, 0, audiodec.ErrCorruptSpectralData
	}
	if e.table == nil {
		return 0, 0, nil
	}
	sym, err := e.table.decode(r)
	if err != nil {
		return 0, 0, err
	}
	x := int32(sym / e.table.wide)
	y := int32(sym % e.table.wide)
	if x, err = finishValue(r, x, e.linbits); err != nil {
		return 0, 0, err
	}
	if y, err = finishValue(r, y, e.linbits); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

// finishValue appends the linbits escape to a saturated magnitude and
// reads the sign bit of any non-zero value.
func finishValue(r *bits.Reader, v int32, linbits uint) (int32, error) {
	if v == 15 && linbits > 0 {
		ext, err := r.ReadBits(linbits)
		if err != nil {
			return 0, audiodec.ErrCorruptSpectralData
		}
		v += int32(ext)
	}
	if v != 0 {
		s, err := r.ReadBit()
		if err != nil {
			return 0, audiodec.ErrCorruptSpectralData
		}
		if s == 1 {
			v = -v
		}
	}
	return v, nil
}

// readSpectral decodes the big-values and count1 regions of one
// granule into d.is and returns the count of coded lines (the zero
// region starts there). start is the reader position where the
// granule's side data began; the count1 region runs until
// part2_3_length bits from there are consumed.
func (d *Decoder) readSpectral(r *bits.Reader, g *granuleInfo, h header, start int) (int, error) {
	for i := range d.is {
		d.is[i] = 0
	}

	region1 := granuleSamples
	region2 := granuleSamples
	if g.windowSwitching && g.blockType == blockShort {
		region1 = 36
	} else {
		long := &sfbLong[h.sfreq]
		r0 := g.region0Count + 1
		r1 := r0 + g.region1Count + 1
		if r0 > 22 {
			r0 = 22
		}
		if r1 > 22 {
			r1 = 22
		}
		region1 = long[r0]
		region2 = long[r1]
	}

	limit := 2 * g.bigValues
	if limit > granuleSamples {
		return 0, audiodec.ErrCorruptSideInfo
	}
	for idx := 0; idx < limit; idx += 2 {
		sel := g.tableSelect[0]
		switch {
		case idx >= region2:
			sel = g.tableSelect[2]
		case idx >= region1:
			sel = g.tableSelect[1]
		}
		x, y, err := decodePair(r, sel)
		if err != nil {
			return 0, err
		}
		d.is[idx] = x
		d.is[idx+1] = y
	}

	quad := &huffTableQA
	if g.count1Table == 1 {
		quad = &huffTableQB
	}
	end := start + g.part23Length
	idx := limit
	for idx+4 <= granuleSamples && r.Position() < end {
		sym, err := quad.decode(r)
		if err != nil {
			return 0, err
		}
		for k := 0; k < 4; k++ {
			v := int32(sym >> (3 - k) & 1)
			if v, err = finishValue(r, v, 0); err != nil {
				return 0, err
			}
			d.is[idx+k] = v
		}
		if r.Position() > end {
			// The last quad straddled the granule boundary and
			// belongs to the ancillary bits. Drop it.
			d.is[idx] = 0
			d.is[idx+1] = 0
			d.is[idx+2] = 0
			d.is[idx+3] = 0
			break
		}
		idx += 4
	}
	return idx, nil
}
