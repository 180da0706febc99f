package mp3

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hvlib/audiodec"
)

func TestReservoir_Assemble(t *testing.T) {
	var res reservoir
	res.init()

	// Frame 0 cannot reach back: nothing has been retired yet.
	if _, err := res.assemble([]byte{1, 2, 3}, 2); !errors.Is(err, audiodec.ErrReservoirUnderflow) {
		t.Fatalf("err = %v, want ErrReservoirUnderflow", err)
	}

	// The payload was still retired, so frame 1 can reach 2 bytes back.
	got, err := res.assemble([]byte{4, 5}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{2, 3, 4, 5}) {
		t.Fatalf("main data = %v", got)
	}

	// Zero reach just forwards the payload.
	got, err = res.assemble([]byte{6}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, []byte{6}) {
		t.Fatalf("main data = %v", got)
	}
}

func TestReservoir_CapsHistory(t *testing.T) {
	var res reservoir
	res.init()

	big := make([]byte, 2*maxReservoir)
	for i := range big {
		big[i] = byte(i)
	}
	if _, err := res.assemble(big, 0); err != nil {
		t.Fatal(err)
	}
	if len(res.store) != maxReservoir {
		t.Fatalf("store holds %d bytes, cap is %d", len(res.store), maxReservoir)
	}

	// The newest maxReservoir bytes must have been kept.
	got, err := res.assemble(nil, maxReservoir)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, big[len(big)-maxReservoir:]) {
		t.Fatal("oldest bytes were kept instead of newest")
	}

	// Reaching one past the cap is an underflow even on a warm stream.
	if _, err := res.assemble(nil, maxReservoir+1); !errors.Is(err, audiodec.ErrReservoirUnderflow) {
		t.Fatalf("err = %v, want ErrReservoirUnderflow", err)
	}
}

func TestReservoir_Reset(t *testing.T) {
	var res reservoir
	res.init()
	if _, err := res.assemble([]byte{1, 2, 3, 4}, 0); err != nil {
		t.Fatal(err)
	}
	res.reset()
	if _, err := res.assemble(nil, 1); !errors.Is(err, audiodec.ErrReservoirUnderflow) {
		t.Fatal("reset must drop retired bytes")
	}
}
