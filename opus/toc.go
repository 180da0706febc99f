package opus

import "github.com/hvlib/audiodec"

// layer identifies which decode path a packet's configuration selects.
type layer int

const (
	layerSILK layer = iota
	layerHybrid
	layerCELT
)

// bandwidth is the audio bandwidth signalled by the TOC configuration.
type bandwidth int

const (
	bandNarrow bandwidth = iota
	bandMedium
	bandWide
	bandSuperWide
	bandFull
)

// tocInfo is the decoded table-of-contents byte (RFC 6716 §3.1).
type tocInfo struct {
	config  int
	layer   layer
	band    bandwidth
	frame48 int // samples per frame per channel at 48 kHz
	stereo  bool
	code    int
}

var silkFrame48 = [4]int{480, 960, 1920, 2880}
var celtFrame48 = [4]int{120, 240, 480, 960}

func parseTOC(b byte) tocInfo {
	t := tocInfo{
		config: int(b >> 3),
		stereo: b>>2&1 != 0,
		code:   int(b & 3),
	}
	switch {
	case t.config < 12:
		t.layer = layerSILK
		t.band = bandwidth(t.config / 4) // NB, MB, WB
		t.frame48 = silkFrame48[t.config%4]
	case t.config < 16:
		t.layer = layerHybrid
		t.band = bandSuperWide + bandwidth((t.config-12)/2)
		t.frame48 = silkFrame48[(t.config-12)%2]
	default:
		t.layer = layerCELT
		bands := [4]bandwidth{bandNarrow, bandWide, bandSuperWide, bandFull}
		t.band = bands[(t.config-16)/4]
		t.frame48 = celtFrame48[(t.config-16)%4]
	}
	return t
}

// frameLen reads one frame length field: 0..251 directly, 252..255
// extended by a second byte in units of four (RFC 6716 §3.2.1).
func frameLen(data []byte) (n, used int, err error) {
	if len(data) < 1 {
		return 0, 0, audiodec.ErrCorruptSideInfo
	}
	b := int(data[0])
	if b < 252 {
		return b, 1, nil
	}
	if len(data) < 2 {
		return 0, 0, audiodec.ErrCorruptSideInfo
	}
	return int(data[1])*4 + b, 2, nil
}

// splitPacket parses the TOC byte and slices the packet into its frames
// per the four packet codes (RFC 6716 §3.2). A packet may carry at most
// 120 ms of audio.
func splitPacket(pkt []byte) (tocInfo, [][]byte, error) {
	if len(pkt) < 1 {
		return tocInfo{}, nil, audiodec.ErrCorruptSideInfo
	}
	toc := parseTOC(pkt[0])
	data := pkt[1:]

	var frames [][]byte
	switch toc.code {
	case 0:
		frames = [][]byte{data}

	case 1:
		if len(data)%2 != 0 {
			return toc, nil, audiodec.ErrCorruptSideInfo
		}
		half := len(data) / 2
		frames = [][]byte{data[:half], data[half:]}

	case 2:
		n1, used, err := frameLen(data)
		if err != nil {
			return toc, nil, err
		}
		if used+n1 > len(data) {
			return toc, nil, audiodec.ErrCorruptSideInfo
		}
		frames = [][]byte{data[used : used+n1], data[used+n1:]}

	case 3:
		if len(data) < 1 {
			return toc, nil, audiodec.ErrCorruptSideInfo
		}
		h := data[0]
		vbr := h&0x80 != 0
		padded := h&0x40 != 0
		count := int(h & 0x3F)
		data = data[1:]
		if count < 1 || count*toc.frame48 > 5760 {
			return toc, nil, audiodec.ErrCorruptSideInfo
		}

		if padded {
			pad := 0
			for {
				if len(data) < 1 {
					return toc, nil, audiodec.ErrCorruptSideInfo
				}
				b := int(data[0])
				data = data[1:]
				if b == 255 {
					pad += 254
					continue
				}
				pad += b
				break
			}
			if pad > len(data) {
				return toc, nil, audiodec.ErrCorruptSideInfo
			}
			data = data[:len(data)-pad]
		}

		if vbr {
			for i := 0; i < count-1; i++ {
				n, used, err := frameLen(data)
				if err != nil {
					return toc, nil, err
				}
				data = data[used:]
				if n > len(data) {
					return toc, nil, audiodec.ErrCorruptSideInfo
				}
				frames = append(frames, data[:n])
				data = data[n:]
			}
			frames = append(frames, data)
		} else {
			if len(data)%count != 0 {
				return toc, nil, audiodec.ErrCorruptSideInfo
			}
			size := len(data) / count
			for i := 0; i < count; i++ {
				frames = append(frames, data[i*size:(i+1)*size])
			}
		}
	}
	return toc, frames, nil
}
