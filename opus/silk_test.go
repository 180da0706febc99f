package opus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSilkLog2Lin(t *testing.T) {
	tests := []struct{ val, want int }{
		{0, 1},
		{64, 1},      // fractional part below the Q7 grain of 2^0
		{896, 128},   // 2^7
		{960, 181},   // 2^7.5
		{1536, 4096}, // 2^12
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, silkLog2Lin(tc.val), "val=%d", tc.val)
	}
}

// checkSpacing asserts nlsfs is ascending with the band's minimum gaps,
// including the virtual endpoints at 0 and 32768.
func checkSpacing(t *testing.T, b *silkBand, nlsfs []int16) {
	t.Helper()
	prev := int32(0)
	for i := 0; i < b.order; i++ {
		require.GreaterOrEqual(t, int32(nlsfs[i]), prev+int32(b.minSpacing[i]),
			"coefficient %d", i)
		prev = int32(nlsfs[i])
	}
	require.LessOrEqual(t, prev, 32768-int32(b.minSpacing[b.order]))
}

func TestStabilize(t *testing.T) {
	band := &silkBandNB

	t.Run("already feasible", func(t *testing.T) {
		nlsfs := make([]int16, band.order)
		for i := range nlsfs {
			nlsfs[i] = int16(2000 + 2800*i)
		}
		want := append([]int16(nil), nlsfs...)
		band.stabilize(nlsfs)
		require.Equal(t, want, nlsfs, "feasible input must pass through")
	})

	t.Run("clustered", func(t *testing.T) {
		nlsfs := make([]int16, band.order)
		for i := range nlsfs {
			nlsfs[i] = 16000
		}
		band.stabilize(nlsfs)
		checkSpacing(t, band, nlsfs)
	})

	t.Run("reversed", func(t *testing.T) {
		nlsfs := make([]int16, band.order)
		for i := range nlsfs {
			nlsfs[i] = int16(30000 - 2800*i)
		}
		band.stabilize(nlsfs)
		checkSpacing(t, band, nlsfs)
	})

	t.Run("edge pinned", func(t *testing.T) {
		nlsfs := make([]int16, band.order)
		nlsfs[band.order-1] = 32700 // inside the top guard band
		band.stabilize(nlsfs)
		checkSpacing(t, band, nlsfs)
	})
}

func TestLSFToLPC(t *testing.T) {
	for name, band := range map[string]*silkBand{"nb": &silkBandNB, "wb": &silkBandWB} {
		t.Run(name, func(t *testing.T) {
			nlsfs := make([]int16, band.order)
			for i := range nlsfs {
				nlsfs[i] = int16(32768 * (i + 1) / (band.order + 1))
			}
			lpcs := make([]float32, band.order)
			band.lsfToLPC(lpcs, nlsfs)
			for i, c := range lpcs {
				require.False(t, math.IsNaN(float64(c)), "coefficient %d", i)
				require.LessOrEqual(t, math.Abs(float64(c)), 8.0,
					"coefficient %d exceeds the Q12 range", i)
			}
		})
	}
}

func TestDequantResiduals(t *testing.T) {
	band := &silkBandNB

	idx := make([]int32, band.order)
	idx[band.order-1] = 2
	require.Equal(t,
		[]int32{2, 3, 7, 14, 25, 44, 77, 130, 222, 350},
		band.dequantResiduals(idx))

	idx = make([]int32, band.order)
	idx[0] = -3
	require.Equal(t, int32(-535), band.dequantResiduals(idx)[0])
}

func TestNLSFWeightQ9(t *testing.T) {
	row := silkNLSFCodebookNB[0]
	require.Equal(t, int32(2897), nlsfWeightQ9(row, 0))
	require.Equal(t, int32(2314), nlsfWeightQ9(row, 1))
	require.Equal(t, int32(2287), nlsfWeightQ9(row, len(row)-1))
}

func TestNLSFCodebooks_StrictlyIncreasing(t *testing.T) {
	for name, cb := range map[string][][]uint8{
		"nb": silkNLSFCodebookNB,
		"wb": silkNLSFCodebookWB,
	} {
		require.Len(t, cb, 32, name)
		for r, row := range cb {
			require.Greater(t, row[0], uint8(0), "%s row %d", name, r)
			for i := 1; i < len(row); i++ {
				require.Greater(t, row[i], row[i-1], "%s row %d entry %d", name, r, i)
			}
		}
	}
}

func TestLPCStable(t *testing.T) {
	stable := make([]int16, 10)
	stable[0] = 2048 // single 0.5 tap
	require.True(t, lpcStable(stable))

	unstable := make([]int16, 10)
	unstable[0] = 8192 // single 2.0 tap
	require.False(t, lpcStable(unstable))

	marginal := make([]int16, 10)
	marginal[9] = 4096 // reflection coefficient at 1.0
	require.False(t, lpcStable(marginal))
}

func TestInternalRate(t *testing.T) {
	require.Equal(t, 8000, internalRate(bandNarrow))
	require.Equal(t, 12000, internalRate(bandMedium))
	require.Equal(t, 16000, internalRate(bandWide))
	require.Equal(t, 16000, internalRate(bandFull))
}

func TestSilkICDFs_Terminated(t *testing.T) {
	tables := map[string][]uint8{
		"frameTypeInactive": silkFrameTypeICDF[0],
		"frameTypeActive":   silkFrameTypeICDF[1],
		"gainDelta":         silkGainDeltaICDF,
		"nlsfStage1NB":      silkNLSFStage1NBICDF[0],
		"nlsfStage1NBv":     silkNLSFStage1NBICDF[1],
		"nlsfStage1WB":      silkNLSFStage1WBICDF[0],
		"nlsfStage1WBv":     silkNLSFStage1WBICDF[1],
		"nlsfExt":           silkNLSFExtICDF,
		"nlsfInterp":        silkNLSFInterpICDF,
		"lagDelta":          silkLagDeltaICDF,
		"perIndex":          silkPerIndexICDF,
		"ltpScale":          silkLTPScaleICDF,
		"rateLevel0":        silkRateLevelICDF[0],
		"rateLevel1":        silkRateLevelICDF[1],
	}
	for i := range silkNLSFStage2NBICDF {
		tables["nlsfStage2NB"+string(rune('a'+i))] = silkNLSFStage2NBICDF[i]
		tables["nlsfStage2WB"+string(rune('a'+i))] = silkNLSFStage2WBICDF[i]
	}
	for name, icdf := range tables {
		require.NotEmpty(t, icdf, name)
		require.Zero(t, icdf[len(icdf)-1], name)
		for i := 1; i < len(icdf); i++ {
			require.Greater(t, icdf[i-1], icdf[i], "%s entry %d", name, i)
		}
	}
}
