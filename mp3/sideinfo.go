package mp3

import (
	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

const (
	blockLong     = 0
	blockStart    = 1
	blockShort    = 2
	blockStop     = 3
	maxBigValues  = 288
)

// granuleInfo is the per-granule per-channel side information
// (ISO/IEC 11172-3 §2.4.1.7).
type granuleInfo struct {
	part23Length     int // scalefactor + Huffman bits
	bigValues        int
	globalGain       int
	scalefacCompress int
	windowSwitching  bool
	blockType        int
	mixedBlock       bool
	tableSelect      [3]int
	subblockGain     [3]int
	region0Count     int
	region1Count     int
	preflag          bool
	scalefacScale    int
	count1Table      int
}

func (g *granuleInfo) shortBlocks() bool {
	return g.windowSwitching && g.blockType == blockShort
}

type sideInfo struct {
	mainDataBegin int
	scfsi         [2][4]int
	gr            [2][2]granuleInfo
}

func parseSideInfo(buf []byte, h header) (*sideInfo, error) {
	r := bits.NewReader(buf)
	si := &sideInfo{}

	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	if h.LSF {
		si.mainDataBegin = read(8)
		read(uint(h.Channels)) // private_bits
	} else {
		si.mainDataBegin = read(9)
		if h.Channels == 1 {
			read(5)
		} else {
			read(3)
		}
		for ch := 0; ch < h.Channels; ch++ {
			for b := 0; b < 4; b++ {
				si.scfsi[ch][b] = read(1)
			}
		}
	}

	for gr := 0; gr < h.granules(); gr++ {
		for ch := 0; ch < h.Channels; ch++ {
			g := &si.gr[gr][ch]
			g.part23Length = read(12)
			g.bigValues = read(9)
			g.globalGain = read(8)
			if h.LSF {
				g.scalefacCompress = read(9)
			} else {
				g.scalefacCompress = read(4)
			}
			g.windowSwitching = read(1) == 1
			if g.windowSwitching {
				g.blockType = read(2)
				g.mixedBlock = read(1) == 1
				g.tableSelect[0] = read(5)
				g.tableSelect[1] = read(5)
				for w := 0; w < 3; w++ {
					g.subblockGain[w] = read(3)
				}
				// Implicit region split for switched blocks.
				if g.blockType == blockShort && !g.mixedBlock {
					g.region0Count = 8
				} else {
					g.region0Count = 7
				}
				g.region1Count = 20 - g.region0Count
			} else {
				for i := 0; i < 3; i++ {
					g.tableSelect[i] = read(5)
				}
				g.region0Count = read(4)
				g.region1Count = read(3)
			}
			if !h.LSF {
				g.preflag = read(1) == 1
			}
			g.scalefacScale = read(1)
			g.count1Table = read(1)

			if err != nil {
				return nil, err
			}
			if g.bigValues > maxBigValues {
				return nil, audiodec.ErrCorruptSideInfo
			}
			if g.windowSwitching && g.blockType == blockLong {
				// block_type 00 is forbidden when switching.
				return nil, audiodec.ErrCorruptSideInfo
			}
		}
	}
	return si, nil
}
