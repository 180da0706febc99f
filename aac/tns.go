package aac

// TNS reflection-coefficient dequantization tables, indexed by
// 2*compress + coefRes (ISO/IEC 13818-7 §14.3).
var tnsCoefTabs = [4][16]float32{
	{ // compress 0, 3-bit
		0.0, 0.4338837391, 0.7818314825, 0.9749279122,
		-0.9848077530, -0.8660254038, -0.6427876097, -0.3420201433,
		0.0, 0.4338837391, 0.7818314825, 0.9749279122,
		-0.9848077530, -0.8660254038, -0.6427876097, -0.3420201433,
	},
	{ // compress 0, 4-bit
		0.0, 0.2079116908, 0.4067366431, 0.5877852523,
		0.7431448255, 0.8660254038, 0.9510565163, 0.9945218954,
		-0.9957341763, -0.9618256432, -0.8951632914, -0.7980172273,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
	},
	{ // compress 1, 3-bit
		0.0, 0.4338837391, -0.6427876097, -0.3420201433,
		0.9749279122, 0.7818314825, -0.6427876097, -0.3420201433,
		0.0, 0.4338837391, -0.6427876097, -0.3420201433,
		0.9749279122, 0.7818314825, -0.6427876097, -0.3420201433,
	},
	{ // compress 1, 4-bit
		0.0, 0.2079116908, 0.4067366431, 0.5877852523,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
		0.0, 0.2079116908, 0.4067366431, 0.5877852523,
		-0.6736956436, -0.5264321629, -0.3612416662, -0.1837495178,
	},
}

// tnsLPC converts the transmitted reflection coefficients of one filter
// to direct-form LPC coefficients via the step-up recursion.
func tnsLPC(tns *tnsData, w, f int, lpc *[maxTNSOrder + 1]float32) int {
	order := tns.order[w][f]
	tab := &tnsCoefTabs[2*tns.compress[w][f]+tns.coefRes[w]]

	var b [maxTNSOrder + 1]float32
	lpc[0] = 1
	for m := 1; m <= order; m++ {
		k := tab[tns.coef[w][f][m-1]]
		lpc[m] = k
		for i := 1; i < m; i++ {
			b[i] = lpc[i] + k*lpc[m-i]
		}
		for i := 1; i < m; i++ {
			lpc[i] = b[i]
		}
	}
	return order
}

// applyTNS runs every transmitted filter as an all-pole IIR over its
// spectral region, forward or reversed per the direction flag
// (ISO/IEC 13818-7 §14.3). spec is in window-major transform order.
func (d *Decoder) applyTNS(ics *icStream, spec []float32) {
	info := &ics.info
	winLen := frameLen
	if info.short() {
		winLen = shortLen
	}
	maxBand := tnsMaxBands[d.srIdx][0]
	if info.short() {
		maxBand = tnsMaxBands[d.srIdx][1]
	}
	if maxBand > info.maxSfb {
		maxBand = info.maxSfb
	}

	var lpc [maxTNSOrder + 1]float32
	for w := 0; w < info.numWindows; w++ {
		bottom := info.numSwb
		for f := 0; f < ics.tns.nFilt[w]; f++ {
			top := bottom
			bottom = top - ics.tns.length[w][f]
			if bottom < 0 {
				bottom = 0
			}
			order := tnsLPC(&ics.tns, w, f, &lpc)
			if order == 0 {
				continue
			}

			lo := min(top, maxBand)
			hi := min(bottom, maxBand)
			start := info.swb[hi]
			end := info.swb[lo]
			if start >= end {
				continue
			}

			win := spec[w*winLen:]
			if ics.tns.direction[w][f] == 0 {
				tnsFilter(win[start:end], lpc[:order+1], false)
			} else {
				tnsFilter(win[start:end], lpc[:order+1], true)
			}
		}
	}
}

// tnsFilter is the in-place all-pole filter y[n] = x[n] - sum a[i]*y[n-i],
// run over x front-to-back or back-to-front.
func tnsFilter(x, lpc []float32, reversed bool) {
	order := len(lpc) - 1
	if reversed {
		for n := len(x) - 1; n >= 0; n-- {
			y := x[n]
			for i := 1; i <= order && n+i < len(x); i++ {
				y -= lpc[i] * x[n+i]
			}
			x[n] = y
		}
		return
	}
	for n := 0; n < len(x); n++ {
		y := x[n]
		for i := 1; i <= order && i <= n; i++ {
			y -= lpc[i] * x[n-i]
		}
		x[n] = y
	}
}
