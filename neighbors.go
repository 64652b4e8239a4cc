package go2vec

// DefaultTopN is the number of neighbors returned when the caller does
// not ask for a specific number.
const DefaultTopN = 10

// FindNeighbors returns the topN words of the table that are most
// similar to v by cosine similarity, ordered by descending similarity.
// The result never has more than topN elements, nor more elements than
// the table has words. A non-positive topN gives an empty result.
func FindNeighbors(t Table, v Vector, topN int) ([]WordSimilarity, error) {
	return t.Nearest(v, topN)
}
