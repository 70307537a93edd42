package ui

import "math/rand"

// identityPerm returns 0..n-1 in order, the default browse order.
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}

// shuffledPerm returns a Fisher-Yates permutation of 0..n-1. The card slice
// itself is never reordered; views index through the permutation.
func shuffledPerm(n int, rng *rand.Rand) []int {
	p := identityPerm(n)
	for i := n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}
