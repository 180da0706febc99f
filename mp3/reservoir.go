package mp3

import "github.com/hvlib/audiodec"

// maxReservoir is the largest backward reach main_data_begin can
// encode (9 bits, ISO/IEC 11172-3 §2.4.2.7), and therefore the only
// history the reservoir needs to keep.
const maxReservoir = 511

// reservoir assembles each frame's logical main data from the bytes
// that physically arrived in earlier frames plus the current frame's
// own payload.
type reservoir struct {
	store []byte
	full  []byte // assembly buffer, reused
}

func (r *reservoir) init() {
	r.store = make([]byte, 0, maxReservoir)
	r.full = make([]byte, 0, maxReservoir+2048)
}

func (r *reservoir) reset() {
	r.store = r.store[:0]
}

// assemble returns the main data for a frame whose side info points
// begin bytes back into the reservoir, then retires the frame's
// payload into the reservoir for its successors.
//
// When the reservoir cannot reach back begin bytes (stream start or a
// seek landed mid-stream), the payload is still retired so the next
// frame can resolve, and ErrReservoirUnderflow is returned.
func (r *reservoir) assemble(payload []byte, begin int) ([]byte, error) {
	var err error
	r.full = r.full[:0]
	if begin > len(r.store) {
		err = audiodec.ErrReservoirUnderflow
	} else {
		r.full = append(r.full, r.store[len(r.store)-begin:]...)
		r.full = append(r.full, payload...)
	}

	r.store = append(r.store, payload...)
	if len(r.store) > maxReservoir {
		r.store = append(r.store[:0], r.store[len(r.store)-maxReservoir:]...)
	}
	if err != nil {
		return nil, err
	}
	return r.full, nil
}
