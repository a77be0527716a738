package graph

import "testing"

func TestComputeParams_ClampedForSmallN(t *testing.T) {
	for _, n := range []int{0, 1, 2} {
		k, tt := computeParams(n)
		if k < 1 || tt < 1 {
			t.Fatalf("computeParams(%d) = (%d, %d), want both >= 1", n, k, tt)
		}
	}
}

func TestComputeParams_GrowsWithN(t *testing.T) {
	kSmall, tSmall := computeParams(10)
	kLarge, tLarge := computeParams(1_000_000)
	if kLarge < kSmall {
		t.Fatalf("expected k to be non-decreasing in n: k(10)=%d k(1e6)=%d", kSmall, kLarge)
	}
	if tLarge < tSmall {
		t.Fatalf("expected t to be non-decreasing in n: t(10)=%d t(1e6)=%d", tSmall, tLarge)
	}
}
