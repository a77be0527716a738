package graph

import "math"

// computeParams derives the BMSSP sizing constants k = floor((ln n)^(1/3))
// and t = floor((ln n)^(2/3)) from the vertex count n, both clamped to be
// >= 1 so tiny graphs (including n <= 1, where ln n <= 0) still produce
// usable recursion parameters.
func computeParams(n int) (k, t int) {
	ln := math.Log(float64(n))
	if ln < 0 {
		ln = 0
	}

	k = int(math.Floor(math.Cbrt(ln)))
	t = int(math.Floor(math.Pow(ln, 2.0/3.0)))

	if k < 1 {
		k = 1
	}
	if t < 1 {
		t = 1
	}

	return k, t
}
