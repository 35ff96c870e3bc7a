package quiz

// Distance returns the Levenshtein distance between a and b, counted in
// runes. Callers pass normalized strings.
//
// Only two rows sized to the shorter string are kept in memory.
func Distance(a, b string) int {
	long, short := []rune(a), []rune(b)
	if len(long) < len(short) {
		long, short = short, long
	}
	if len(short) == 0 {
		return len(long)
	}

	prev := make([]int, len(short)+1)
	curr := make([]int, len(short)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(long); i++ {
		curr[0] = i
		for j := 1; j <= len(short); j++ {
			cost := 1
			if long[i-1] == short[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(short)]
}
