package mp3

import "github.com/hvlib/audiodec/internal/bits"

// scaleFactors holds the decoded scalefactors for one granule of one
// channel; l indexed by long scalefactor band, s by [band][window].
type scaleFactors struct {
	l [23]int
	s [13][3]int
}

// slen bit widths per scalefac_compress (ISO/IEC 11172-3 Table B.6).
var (
	slen1 = [16]int{0, 0, 0, 0, 3, 1, 1, 1, 2, 2, 2, 3, 3, 3, 4, 4}
	slen2 = [16]int{0, 1, 2, 3, 0, 1, 2, 3, 1, 2, 3, 1, 2, 3, 2, 3}
)

// scfsi band groups over the long scalefactor bands.
var scfsiBands = [5]int{0, 6, 11, 16, 21}

func (d *Decoder) readScaleFactors(r *bits.Reader, g *granuleInfo, gr, ch int, si *sideInfo) error {
	sf := &d.sf[ch]
	*sf = scaleFactors{}
	s1 := slen1[g.scalefacCompress]
	s2 := slen2[g.scalefacCompress]

	var err error
	read := func(n int) int {
		var v uint32
		if err == nil && n > 0 {
			v, err = r.ReadBits(uint(n))
		}
		return int(v)
	}

	if g.shortBlocks() {
		if g.mixedBlock {
			for sfb := 0; sfb < 8; sfb++ {
				sf.l[sfb] = read(s1)
			}
			for sfb := 3; sfb < 6; sfb++ {
				for w := 0; w < 3; w++ {
					sf.s[sfb][w] = read(s1)
				}
			}
		} else {
			for sfb := 0; sfb < 6; sfb++ {
				for w := 0; w < 3; w++ {
					sf.s[sfb][w] = read(s1)
				}
			}
		}
		for sfb := 6; sfb < 12; sfb++ {
			for w := 0; w < 3; w++ {
				sf.s[sfb][w] = read(s2)
			}
		}
		return err
	}

	// Long blocks: four scfsi groups, each either freshly coded or,
	// in granule 1, inherited from granule 0.
	for grp := 0; grp < 4; grp++ {
		bitsN := s1
		if grp >= 2 {
			bitsN = s2
		}
		if gr == 1 && si.scfsi[ch][grp] == 1 {
			for sfb := scfsiBands[grp]; sfb < scfsiBands[grp+1]; sfb++ {
				sf.l[sfb] = d.prevSf[ch].l[sfb]
			}
			continue
		}
		for sfb := scfsiBands[grp]; sfb < scfsiBands[grp+1]; sfb++ {
			sf.l[sfb] = read(bitsN)
		}
	}
	if gr == 0 {
		d.prevSf[ch] = *sf
	}
	return err
}

// LSF scalefactor partitioning (ISO/IEC 13818-3 §2.4.3.4). The
// scalefac_compress field selects one of three partition layouts, or
// one of three intensity layouts on the right channel of an
// intensity-coded pair.
var nrOfSfb = [6][3][4]int{
	{{6, 5, 5, 5}, {9, 9, 9, 9}, {6, 9, 9, 9}},
	{{6, 5, 7, 3}, {9, 9, 12, 6}, {6, 9, 12, 6}},
	{{11, 10, 0, 0}, {18, 18, 0, 0}, {15, 18, 0, 0}},
	{{7, 7, 7, 0}, {12, 12, 12, 0}, {6, 15, 12, 0}},
	{{6, 6, 6, 3}, {12, 9, 9, 6}, {6, 12, 9, 6}},
	{{8, 8, 5, 0}, {15, 12, 9, 0}, {6, 18, 9, 0}},
}

func (d *Decoder) readScaleFactorsLSF(r *bits.Reader, g *granuleInfo, h header, ch int, si *sideInfo) error {
	sf := &d.sf[ch]
	*sf = scaleFactors{}

	var slen [4]int
	var blockNumber int
	sc := g.scalefacCompress
	g.preflag = false

	if h.intensityStereo() && ch == 1 {
		is := sc >> 1
		switch {
		case is < 180:
			slen = [4]int{is / 36, is % 36 / 6, is % 6, 0}
			blockNumber = 3
		case is < 244:
			is -= 180
			slen = [4]int{is & 63 >> 4, is & 15 >> 2, is & 3, 0}
			blockNumber = 4
		default:
			is -= 244
			slen = [4]int{is / 3, is % 3, 0, 0}
			blockNumber = 5
		}
	} else {
		switch {
		case sc < 400:
			slen = [4]int{sc >> 4 / 5, sc >> 4 % 5, sc & 15 >> 2, sc & 3}
			blockNumber = 0
		case sc < 500:
			sc -= 400
			slen = [4]int{sc >> 2 / 5, sc >> 2 % 5, sc & 3, 0}
			blockNumber = 1
		default:
			sc -= 500
			slen = [4]int{sc / 3, sc % 3, 0, 0}
			blockNumber = 2
			g.preflag = true
		}
	}

	blockType := 0
	if g.shortBlocks() {
		blockType = 1
		if g.mixedBlock {
			blockType = 2
		}
	}

	var err error
	read := func(n int) int {
		var v uint32
		if err == nil && n > 0 {
			v, err = r.ReadBits(uint(n))
		}
		return int(v)
	}

	if blockType == 0 {
		sfb := 0
		for p := 0; p < 4; p++ {
			for i := 0; i < nrOfSfb[blockNumber][0][p]; i++ {
				sf.l[sfb] = read(slen[p])
				sfb++
			}
		}
		return err
	}

	// Short and mixed layouts fill [band][window] in coding order.
	// Mixed blocks route the six leading scalefactors through the long
	// bands and start the short bands at band 3.
	longBands, firstShort := 0, 0
	if blockType == 2 {
		longBands, firstShort = 6, 3
	}
	n := 0
	for p := 0; p < 4; p++ {
		for i := 0; i < nrOfSfb[blockNumber][blockType][p]; i++ {
			if n < longBands {
				sf.l[n] = read(slen[p])
			} else {
				k := n - longBands
				sf.s[firstShort+k/3][k%3] = read(slen[p])
			}
			n++
		}
	}
	return err
}
