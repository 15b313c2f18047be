// File: canonical.go
// Role: cycle canonicalization for face deduplication (spec.md §4.5).
// The face walk in faces.go already visits each face exactly once via
// half-edge marking, so CanonicalCycle is only needed when comparing
// faces across independent calls (e.g. golden-output tests, or a
// caller building its own visited-face set).
package pface

// CanonicalCycle rotates cycle so its minimum-index vertex is first,
// then returns whichever of the two resulting directions (forward or
// reversed) is lexicographically smaller.
func CanonicalCycle(cycle []int) []int {
	n := len(cycle)
	if n == 0 {
		return nil
	}

	minIdx := 0
	for i, v := range cycle {
		if v < cycle[minIdx] {
			minIdx = i
		}
	}

	forward := rotate(cycle, minIdx)
	reversed := reverseFrom(cycle, minIdx)

	if lexLess(reversed, forward) {
		return reversed
	}
	return forward
}

func rotate(cycle []int, start int) []int {
	n := len(cycle)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = cycle[(start+i)%n]
	}
	return out
}

// reverseFrom rotates cycle so it starts at minIdx, then reverses the
// direction, keeping the same start vertex first.
func reverseFrom(cycle []int, start int) []int {
	n := len(cycle)
	out := make([]int, n)
	for i := 0; i < n; i++ {
		out[i] = cycle[(start-i+n)%n]
	}
	return out
}

func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}
