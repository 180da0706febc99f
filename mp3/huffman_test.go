package mp3

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/icza/bitio"
	"github.com/stretchr/testify/require"

	"github.com/hvlib/audiodec"
	"github.com/hvlib/audiodec/internal/bits"
)

// allTables enumerates every registered codebook once.
func allTables() map[string]*huffTable {
	return map[string]*huffTable{
		"1": &huffTable1, "2": &huffTable2, "3": &huffTable3,
		"5": &huffTable5, "6": &huffTable6, "7": &huffTable7,
		"8": &huffTable8, "9": &huffTable9, "10": &huffTable10,
		"11": &huffTable11, "12": &huffTable12, "13": &huffTable13,
		"15": &huffTable15, "16": &huffTable16, "24": &huffTable24,
		"quadA": &huffTableQA, "quadB": &huffTableQB,
	}
}

func TestHuffTables_CompletePrefixCodes(t *testing.T) {
	// Every codebook must be a complete prefix code: the Kraft sum
	// over all codewords is exactly 1, so decoding can never dead-end
	// and never leaves unreachable bit patterns.
	for name, tbl := range allTables() {
		t.Run("table_"+name, func(t *testing.T) {
			require.Equal(t, len(tbl.lens), len(tbl.codes))

			var kraft uint64
			const unit = uint64(1) << 32
			for sym, l := range tbl.lens {
				require.GreaterOrEqual(t, int(l), 1)
				require.LessOrEqual(t, int(l), 19)
				require.Less(t, uint64(tbl.codes[sym]), uint64(1)<<l,
					"codeword wider than its length")
				kraft += unit >> l
			}
			require.Equal(t, unit, kraft, "Kraft sum must be exactly 1")

			for i, li := range tbl.lens {
				for j, lj := range tbl.lens {
					if i >= j {
						continue
					}
					m := li
					if lj < m {
						m = lj
					}
					pi := tbl.codes[i] >> (li - m)
					pj := tbl.codes[j] >> (lj - m)
					require.NotEqual(t, pi, pj,
						"symbols %d and %d share a prefix", i, j)
				}
			}
		})
	}
}

func TestHuffTables_TreeDecodesEverySymbol(t *testing.T) {
	for name, tbl := range allTables() {
		t.Run("table_"+name, func(t *testing.T) {
			for sym, l := range tbl.lens {
				var buf bytes.Buffer
				w := bitio.NewWriter(&buf)
				if err := w.WriteBits(uint64(tbl.codes[sym]), l); err != nil {
					t.Fatal(err)
				}
				if err := w.Close(); err != nil {
					t.Fatal(err)
				}

				got, err := tbl.decode(bits.NewReader(buf.Bytes()))
				if err != nil {
					t.Fatalf("symbol %d: %v", sym, err)
				}
				if got != sym {
					t.Errorf("symbol %d decoded as %d", sym, got)
				}
			}
		})
	}
}

func TestDecodePair_SignsAndValues(t *testing.T) {
	// Encode every (x, y) of table 5 with explicit sign bits and make
	// sure the pair decoder reproduces the signed values.
	tbl := &huffTable5
	for sym := range tbl.lens {
		x := sym / tbl.wide
		y := sym % tbl.wide
		for _, neg := range []bool{false, true} {
			var buf bytes.Buffer
			w := bitio.NewWriter(&buf)
			if err := w.WriteBits(uint64(tbl.codes[sym]), tbl.lens[sym]); err != nil {
				t.Fatal(err)
			}
			if x != 0 {
				w.WriteBool(neg)
			}
			if y != 0 {
				w.WriteBool(neg)
			}
			if err := w.Close(); err != nil {
				t.Fatal(err)
			}

			gx, gy, err := decodePair(bits.NewReader(buf.Bytes()), 5)
			if err != nil {
				t.Fatalf("pair (%d,%d): %v", x, y, err)
			}
			wantX, wantY := int32(x), int32(y)
			if neg {
				wantX, wantY = -wantX, -wantY
			}
			if gx != wantX || gy != wantY {
				t.Errorf("pair (%d,%d) neg=%v: got (%d,%d)", x, y, neg, gx, gy)
			}
		}
	}
}

func TestDecodePair_Linbits(t *testing.T) {
	// table_select 16 uses codebook 16 with 1 linbit: a magnitude of
	// 15 carries one extra bit, so 15 -> 15 or 16 before the sign.
	tbl := &huffTable16
	sym := 15*tbl.wide + 0 // x = 15, y = 0

	for ext := uint64(0); ext < 2; ext++ {
		var buf bytes.Buffer
		w := bitio.NewWriter(&buf)
		if err := w.WriteBits(uint64(tbl.codes[sym]), tbl.lens[sym]); err != nil {
			t.Fatal(err)
		}
		w.WriteBits(ext, 1)  // linbits
		w.WriteBits(1, 1)    // sign: negative
		if err := w.Close(); err != nil {
			t.Fatal(err)
		}

		gx, gy, err := decodePair(bits.NewReader(buf.Bytes()), 16)
		if err != nil {
			t.Fatal(err)
		}
		want := -(15 + int32(ext))
		if gx != want || gy != 0 {
			t.Errorf("ext=%d: got (%d,%d), want (%d,0)", ext, gx, gy, want)
		}
	}
}

func TestDecodePair_InvalidTableSelect(t *testing.T) {
	for _, sel := range []int{4, 14} {
		t.Run(fmt.Sprintf("table_%d", sel), func(t *testing.T) {
			_, _, err := decodePair(bits.NewReader([]byte{0xFF}), sel)
			if !errors.Is(err, audiodec.ErrCorruptSpectralData) {
				t.Fatalf("got %v, want ErrCorruptSpectralData", err)
			}
		})
	}
}

func TestDecodePair_TableZeroReadsNothing(t *testing.T) {
	r := bits.NewReader([]byte{0xAB})
	x, y, err := decodePair(r, 0)
	if err != nil || x != 0 || y != 0 {
		t.Fatalf("got (%d,%d,%v)", x, y, err)
	}
	if r.Position() != 0 {
		t.Fatalf("table 0 consumed %d bits", r.Position())
	}
}
