// SPDX-License-Identifier: EPL-2.0

package sources

// ResampleLinear resizes src to exactly n samples using linear
// interpolation, mapping endpoints to endpoints. It is meant for adjusting
// one visualization frame's length, not for stream sample-rate conversion.
//
// n <= 0 returns nil; an empty src yields n zeros.
func ResampleLinear(src []float32, n int) []float32 {
	if n <= 0 {
		return nil
	}

	out := make([]float32, n)
	if len(src) == 0 {
		return out
	}
	if len(src) == n {
		copy(out, src)
		return out
	}
	if n == 1 {
		out[0] = src[0]
		return out
	}

	ratio := float64(len(src)-1) / float64(n-1)
	for i := range out {
		pos := float64(i) * ratio
		idx := int(pos)
		if idx >= len(src)-1 {
			out[i] = src[len(src)-1]
			continue
		}
		frac := float32(pos - float64(idx))
		out[i] = src[idx] + (src[idx+1]-src[idx])*frac
	}
	return out
}
