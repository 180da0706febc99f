// Package vorbis decodes Vorbis I audio packets into interleaved
// float32 PCM.
//
// The caller hands NewDecoder the identification and setup headers the
// container delivered out of band (the comment header carries no decode
// state and is not needed), then feeds raw audio packets, with the Ogg
// framing already stripped, to DecodeFrame. Output lags input by one packet:
// the first packet primes the overlap buffer and produces no samples,
// and each later packet yields (previousBlockSize+currentBlockSize)/4
// samples per channel.
package vorbis

import (
	"bytes"

	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
	"github.com/hvlib/audiodec/internal/transform"
	"github.com/hvlib/audiodec/internal/window"
)

// Config carries the out-of-band stream headers. SampleRate and
// Channels are optional cross-checks against the identification header;
// zero means accept what the header says.
type Config struct {
	SampleRate int
	Channels   int

	IdentificationHeader []byte
	SetupHeader          []byte
}

// mapping is one channel-to-submap assignment with optional
// square-polar coupling (Vorbis I §4.3.4).
type mapping struct {
	submaps       int
	couplingMag   []int
	couplingAng   []int
	mux           []int
	submapFloor   []int
	submapResidue []int
}

// mode selects a block size and a mapping per audio packet.
type mode struct {
	blockFlag bool
	mapping   int
}

// Decoder decodes one Vorbis I logical stream. It owns the codebook
// set, the floor/residue/mapping configurations, and the lapping state,
// so instances are not safe for concurrent use.
type Decoder struct {
	channels   int
	sampleRate int
	blocksize  [2]int

	books    []*codebook
	floors   []floor
	residues []*residue
	mappings []*mapping
	modes    []*mode

	imdct [2]*transform.IMDCT

	// per-channel work buffers, sized for the long block
	floorCurve [][]float32
	spectrum   [][]float32
	block      []float32
	lap        [][]float32

	noResidue []bool
	doNotDec  []bool

	prevN    int // previous packet's block size; 0 before the first
	lapLen   int
	modeBits uint

	closed bool
}

var headerMagic = []byte("vorbis")

// NewDecoder parses the identification and setup headers and allocates
// all decode state.
func NewDecoder(cfg Config) (*Decoder, error) {
	d := &Decoder{}
	if err := d.parseIdentification(cfg.IdentificationHeader); err != nil {
		return nil, err
	}
	if cfg.SampleRate != 0 && cfg.SampleRate != d.sampleRate {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if cfg.Channels != 0 && cfg.Channels != d.channels {
		return nil, audiodec.ErrUnsupportedConfig
	}
	if err := d.parseSetup(cfg.SetupHeader); err != nil {
		return nil, err
	}

	eng := transform.NewEngine()
	for i, n := range d.blocksize {
		t, err := transform.NewIMDCT(eng, n)
		if err != nil {
			return nil, err
		}
		d.imdct[i] = t
	}

	half := d.blocksize[1] / 2
	for c := 0; c < d.channels; c++ {
		d.floorCurve = append(d.floorCurve, make([]float32, half))
		d.spectrum = append(d.spectrum, make([]float32, half))
		d.lap = append(d.lap, make([]float32, half))
	}
	d.block = make([]float32, d.blocksize[1])
	d.noResidue = make([]bool, d.channels)
	d.doNotDec = make([]bool, d.channels)
	d.modeBits = uint(ilog(len(d.modes) - 1))
	return d, nil
}

// parseIdentification checks the type-1 header (Vorbis I §4.2.2).
func (d *Decoder) parseIdentification(h []byte) error {
	if len(h) < 30 || h[0] != 1 || !bytes.Equal(h[1:7], headerMagic) {
		return audiodec.ErrUnsupportedConfig
	}
	r := bits.NewLSBReader(h[7:])
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	version := read(32)
	d.channels = read(8)
	d.sampleRate = read(32)
	read(32) // bitrate maximum
	read(32) // bitrate nominal
	read(32) // bitrate minimum
	d.blocksize[0] = 1 << uint(read(4))
	d.blocksize[1] = 1 << uint(read(4))
	framing := read(1)
	if err != nil {
		return err
	}

	switch {
	case version != 0, framing == 0:
		return audiodec.ErrUnsupportedConfig
	case d.channels < 1 || d.channels > 8:
		return audiodec.ErrUnsupportedConfig
	case d.sampleRate == 0:
		return audiodec.ErrUnsupportedConfig
	case d.blocksize[0] < 64 || d.blocksize[1] > 8192 ||
		d.blocksize[0] > d.blocksize[1]:
		return audiodec.ErrUnsupportedConfig
	}
	return nil
}

// parseSetup reads the type-5 header: codebooks, then the floor,
// residue, mapping, and mode configurations (Vorbis I §4.2.4).
func (d *Decoder) parseSetup(h []byte) error {
	if len(h) < 7 || h[0] != 5 || !bytes.Equal(h[1:7], headerMagic) {
		return audiodec.ErrUnsupportedConfig
	}
	r := bits.NewLSBReader(h[7:])
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	bookCount := read(8) + 1
	if err != nil {
		return err
	}
	for i := 0; i < bookCount; i++ {
		cb, err := parseCodebook(r)
		if err != nil {
			return err
		}
		d.books = append(d.books, cb)
	}

	// Time domain transforms: placeholders, must read as zero.
	timeCount := read(6) + 1
	for i := 0; i < timeCount; i++ {
		if read(16) != 0 && err == nil {
			return audiodec.ErrCorruptSideInfo
		}
	}
	if err != nil {
		return err
	}

	floorCount := read(6) + 1
	if err != nil {
		return err
	}
	for i := 0; i < floorCount; i++ {
		f, err := parseFloor(r, d.books)
		if err != nil {
			return err
		}
		d.floors = append(d.floors, f)
	}

	residueCount := read(6) + 1
	if err != nil {
		return err
	}
	for i := 0; i < residueCount; i++ {
		res, err := parseResidue(r, d.books)
		if err != nil {
			return err
		}
		d.residues = append(d.residues, res)
	}

	mappingCount := read(6) + 1
	if err != nil {
		return err
	}
	for i := 0; i < mappingCount; i++ {
		m, err := d.parseMapping(r)
		if err != nil {
			return err
		}
		d.mappings = append(d.mappings, m)
	}

	modeCount := read(6) + 1
	for i := 0; i < modeCount; i++ {
		m := &mode{blockFlag: read(1) != 0}
		windowType := read(16)
		transformType := read(16)
		m.mapping = read(8)
		if err != nil {
			return err
		}
		if windowType != 0 || transformType != 0 ||
			m.mapping >= len(d.mappings) {
			return audiodec.ErrCorruptSideInfo
		}
		d.modes = append(d.modes, m)
	}
	if read(1) == 0 { // framing bit
		if err != nil {
			return err
		}
		return audiodec.ErrCorruptSideInfo
	}
	return err
}

// parseMapping reads one type-0 mapping.
func (d *Decoder) parseMapping(r *bits.LSBReader) (*mapping, error) {
	var err error
	read := func(n uint) int {
		var v uint32
		if err == nil {
			v, err = r.ReadBits(n)
		}
		return int(v)
	}

	if read(16) != 0 {
		if err != nil {
			return nil, err
		}
		return nil, audiodec.ErrCorruptSideInfo
	}
	m := &mapping{submaps: 1}
	if read(1) != 0 {
		m.submaps = read(4) + 1
	}
	if read(1) != 0 {
		steps := read(8) + 1
		chBits := uint(ilog(d.channels - 1))
		for i := 0; i < steps; i++ {
			mag := read(chBits)
			ang := read(chBits)
			if err == nil && (mag == ang || mag >= d.channels || ang >= d.channels) {
				return nil, audiodec.ErrCorruptSideInfo
			}
			m.couplingMag = append(m.couplingMag, mag)
			m.couplingAng = append(m.couplingAng, ang)
		}
	}
	if read(2) != 0 { // reserved
		if err == nil {
			return nil, audiodec.ErrCorruptSideInfo
		}
	}
	m.mux = make([]int, d.channels)
	if m.submaps > 1 {
		for c := range m.mux {
			m.mux[c] = read(4)
			if err == nil && m.mux[c] >= m.submaps {
				return nil, audiodec.ErrCorruptSideInfo
			}
		}
	}
	for s := 0; s < m.submaps; s++ {
		read(8) // unused time configuration
		fl := read(8)
		res := read(8)
		if err != nil {
			return nil, err
		}
		if fl >= len(d.floors) || res >= len(d.residues) {
			return nil, audiodec.ErrCorruptSideInfo
		}
		m.submapFloor = append(m.submapFloor, fl)
		m.submapResidue = append(m.submapResidue, res)
	}
	return m, err
}

// Reset drops the lapping state so the decoder starts a fresh stream.
// The parsed setup is kept.
func (d *Decoder) Reset() {
	d.prevN = 0
	d.lapLen = 0
	for _, l := range d.lap {
		for i := range l {
			l[i] = 0
		}
	}
}

// Close releases the decoder. Further DecodeFrame calls fail.
func (d *Decoder) Close() error {
	d.closed = true
	return nil
}

// DecodeFrame decodes one audio packet into pcm as interleaved float32
// and returns the number of samples written: (prevN+curN)/4 per
// channel, 0 for the first packet after construction or Reset.
//
// A truncated packet decodes to the spectrum recovered so far, per the
// format's end-of-packet rule; a packet that is not an audio packet
// returns ErrCorruptSideInfo with the lapping state untouched.
func (d *Decoder) DecodeFrame(frame []byte, pcm []float32) (int, error) {
	if d.closed {
		return 0, audiodec.ErrUnsupportedConfig
	}
	r := bits.NewLSBReader(frame)

	t, err := r.ReadBit()
	if err != nil {
		return 0, audiodec.ErrCorruptSideInfo
	}
	if t != 0 { // header packet
		return 0, audiodec.ErrCorruptSideInfo
	}
	modeNum, err := r.ReadBits(d.modeBits)
	if err != nil || int(modeNum) >= len(d.modes) {
		return 0, audiodec.ErrCorruptSideInfo
	}
	md := d.modes[modeNum]

	bs := 0
	prevLong, nextLong := true, true
	if md.blockFlag {
		bs = 1
		// Neighbor flags: a clear bit narrows the matching slope to the
		// short-block width.
		p, err1 := r.ReadFlag()
		nx, err2 := r.ReadFlag()
		if err1 != nil || err2 != nil {
			return 0, audiodec.ErrCorruptSideInfo
		}
		prevLong, nextLong = p, nx
	}
	n := d.blocksize[bs]
	half := n / 2

	samples := 0
	if d.prevN > 0 {
		samples = (d.prevN + n) / 4
	}
	if len(pcm) < samples*d.channels {
		return 0, audiodec.ErrOutputBufferTooSmall
	}

	mp := d.mappings[md.mapping]
	if err := d.decodeSpectrum(r, mp, half); err != nil {
		return 0, err
	}

	for c := 0; c < d.channels; c++ {
		if err := d.imdct[bs].Transform(d.spectrum[c][:half], d.block); err != nil {
			return 0, err
		}
		d.applyWindow(n, prevLong, nextLong)
		d.overlap(c, n, samples, pcm)
	}

	d.prevN = n
	d.lapLen = half
	return samples * d.channels, nil
}

// decodeSpectrum runs floor decode, residue decode, inverse coupling,
// and the floor multiply for every channel, leaving half-spectra in
// d.spectrum.
func (d *Decoder) decodeSpectrum(r *bits.LSBReader, mp *mapping, half int) error {
	for c := 0; c < d.channels; c++ {
		f := d.floors[mp.submapFloor[mp.mux[c]]]
		used, err := f.decode(r, d.books, half, d.floorCurve[c])
		if err != nil {
			return err
		}
		d.noResidue[c] = !used
		for i := range d.spectrum[c] {
			d.spectrum[c][i] = 0
		}
	}

	// A coupled pair is decoded whenever either half carries audio.
	for i := range mp.couplingMag {
		mag, ang := mp.couplingMag[i], mp.couplingAng[i]
		if !d.noResidue[mag] || !d.noResidue[ang] {
			d.noResidue[mag] = false
			d.noResidue[ang] = false
		}
	}

	for s := 0; s < mp.submaps; s++ {
		var chans [][]float32
		d.doNotDec = d.doNotDec[:0]
		for c := 0; c < d.channels; c++ {
			if mp.mux[c] != s {
				continue
			}
			chans = append(chans, d.spectrum[c][:half])
			d.doNotDec = append(d.doNotDec, d.noResidue[c])
		}
		res := d.residues[mp.submapResidue[s]]
		if err := res.decode(r, d.books, d.doNotDec, half, chans); err != nil {
			return err
		}
	}

	// Inverse square-polar coupling, last step first.
	for i := len(mp.couplingMag) - 1; i >= 0; i-- {
		m := d.spectrum[mp.couplingMag[i]]
		a := d.spectrum[mp.couplingAng[i]]
		for k := 0; k < half; k++ {
			mv, av := m[k], a[k]
			switch {
			case mv > 0 && av > 0:
				m[k], a[k] = mv, mv-av
			case mv > 0:
				m[k], a[k] = mv+av, mv
			case av > 0:
				m[k], a[k] = mv, mv+av
			default:
				m[k], a[k] = mv-av, mv
			}
		}
	}

	for c := 0; c < d.channels; c++ {
		if d.noResidue[c] {
			for i := 0; i < half; i++ {
				d.spectrum[c][i] = 0
			}
			continue
		}
		for i := 0; i < half; i++ {
			d.spectrum[c][i] *= d.floorCurve[c][i]
		}
	}
	return nil
}

// applyWindow shapes d.block in place with the Vorbis window for a
// block of size n. A long block bordered by a short one narrows the
// matching slope to the short width and centers it on the quarter
// point, so the slopes of adjacent blocks always coincide in time.
func (d *Decoder) applyWindow(n int, prevLong, nextLong bool) {
	short := d.blocksize[0]

	lw := n / 2
	if !prevLong {
		lw = short / 2
	}
	slope := window.Table(window.Vorbis, lw)
	start := n/4 - lw/2
	for i := 0; i < start; i++ {
		d.block[i] = 0
	}
	for i := 0; i < lw; i++ {
		d.block[start+i] *= slope[i]
	}

	rw := n / 2
	if !nextLong {
		rw = short / 2
	}
	rSlope := window.Table(window.Vorbis, rw)
	rStart := 3*n/4 - rw/2
	for i := 0; i < rw; i++ {
		d.block[rStart+i] *= rSlope[rw-1-i]
	}
	for i := rStart + rw; i < n; i++ {
		d.block[i] = 0
	}
}

// overlap emits this channel's contribution to pcm (interleaved) and
// stores the new lap tail. Output spans the previous block's center to
// the current block's center.
func (d *Decoder) overlap(c, n, samples int, pcm []float32) {
	lap := d.lap[c]
	off := samples - n/2 // current block position relative to prev center

	for t := 0; t < samples; t++ {
		var v float32
		if t < d.lapLen {
			v = lap[t]
		}
		if j := t - off; j >= 0 && j < n {
			v += d.block[j]
		}
		pcm[t*d.channels+c] = v
	}
	copy(lap[:n/2], d.block[n/2:n])
}
