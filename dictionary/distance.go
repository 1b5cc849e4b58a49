package dictionary

// Distance calculates the Damerau-Levenshtein distance between sequences.
//
// This distance is the number of additions, deletions, substitutions,
// and transpositions needed to transform a into b. Transpositions are
// exchanges of consecutive elements, and no substring is edited twice
// (optimal string alignment).
//
// Distance runs in O(len(a)*len(b)) time and O(len(b)) space.
func Distance[T comparable](a, b []T) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	// only the current and two previous rows of the matrix are needed
	twoago := make([]int, len(b)+1)
	oneago := make([]int, len(b)+1)
	thisrow := make([]int, len(b)+1)
	for y := range thisrow {
		thisrow[y] = y
	}
	for x := 1; x <= len(a); x++ {
		twoago, oneago, thisrow = oneago, thisrow, twoago
		thisrow[0] = x
		for y := 1; y <= len(b); y++ {
			cost := 1
			if a[x-1] == b[y-1] {
				cost = 0
			}
			thisrow[y] = min(oneago[y]+1, thisrow[y-1]+1, oneago[y-1]+cost)
			if x > 1 && y > 1 && a[x-1] == b[y-2] && a[x-2] == b[y-1] && a[x-1] != b[y-1] {
				thisrow[y] = min(thisrow[y], twoago[y-2]+1)
			}
		}
	}
	return thisrow[len(b)]
}

// StringDistance is Distance over the runes of a and b.
func StringDistance(a, b string) int {
	return Distance([]rune(a), []rune(b))
}
