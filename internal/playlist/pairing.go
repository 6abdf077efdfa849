package playlist

// Pair is one positional (top, bottom) video URL pairing.
type Pair struct {
	TopURL    string
	BottomURL string
}

// PairURLs pairs two URL lists positionally. The result is truncated to the
// shorter list; extra videos in the longer playlist are ignored.
func PairURLs(top, bottom []string) []Pair {
	n := len(top)
	if len(bottom) < n {
		n = len(bottom)
	}

	pairs := make([]Pair, 0, n)
	for i := 0; i < n; i++ {
		pairs = append(pairs, Pair{TopURL: top[i], BottomURL: bottom[i]})
	}
	return pairs
}
