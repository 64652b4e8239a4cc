package go2vec

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas32"
)

// WordSimilarity stores the similarity of a word compared to a query
// vector or word.
type WordSimilarity struct {
	Word       string
	Similarity float32
}

// Vector is a dense embedding or composite vector.
type Vector []float32

// Table is the lookup capability that vector combination and neighbor
// search need from an embedding table.
type Table interface {
	// Contains reports whether the word is in the vocabulary.
	Contains(word string) bool

	// Embedding returns the vector of a word. The error is a
	// *MissingVocabularyError when the word is unknown.
	Embedding(word string) (Vector, error)

	// Nearest returns at most limit words whose vectors have the
	// highest cosine similarity to v, ordered by descending similarity.
	Nearest(v Vector, limit int) ([]WordSimilarity, error)
}

// Embeddings is a table of word embeddings. Vectors are stored as rows
// of a dense row-major matrix in insertion order.
type Embeddings struct {
	dims    int
	words   []string
	indices map[string]int
	data    []float32
	norms   []float32
}

var _ Table = (*Embeddings)(nil)

// NewEmbeddings creates an empty table for vectors of the given
// dimensionality.
func NewEmbeddings(dims int) *Embeddings {
	return &Embeddings{
		dims:    dims,
		indices: make(map[string]int),
	}
}

// Put adds a word and its vector. If the word is already present, its
// vector is replaced and the word keeps its original position.
func (e *Embeddings) Put(word string, v []float32) error {
	if len(v) != e.dims {
		return errors.Errorf("vector for '%s' has %d dimensions, expected %d", word, len(v), e.dims)
	}

	norm := blas32.Nrm2(vector(v))

	if idx, ok := e.indices[word]; ok {
		copy(e.row(idx), v)
		e.norms[idx] = norm
		return nil
	}

	e.indices[word] = len(e.words)
	e.words = append(e.words, word)
	e.data = append(e.data, v...)
	e.norms = append(e.norms, norm)

	return nil
}

// Size returns the number of words in the table.
func (e *Embeddings) Size() int {
	return len(e.words)
}

// VectorSize returns the dimensionality of the vectors.
func (e *Embeddings) VectorSize() int {
	return e.dims
}

// Contains reports whether the word is in the vocabulary.
func (e *Embeddings) Contains(word string) bool {
	_, ok := e.indices[word]
	return ok
}

// Vector returns the vector of a word. The returned slice is backed by
// the table and must not be modified.
func (e *Embeddings) Vector(word string) (Vector, bool) {
	idx, ok := e.indices[word]
	if !ok {
		return nil, false
	}

	return e.row(idx), true
}

// Embedding returns the vector of a word, failing with a
// *MissingVocabularyError if the word is unknown.
func (e *Embeddings) Embedding(word string) (Vector, error) {
	v, ok := e.Vector(word)
	if !ok {
		return nil, &MissingVocabularyError{Words: []string{word}}
	}

	return v, nil
}

// Iterate calls f for every word in insertion order, until f returns
// false.
func (e *Embeddings) Iterate(f func(word string, v Vector) bool) {
	for idx, word := range e.words {
		if !f(word, e.row(idx)) {
			return
		}
	}
}

// Nearest returns the limit words with the highest cosine similarity
// to v. Words with equal similarity keep their insertion order.
func (e *Embeddings) Nearest(v Vector, limit int) ([]WordSimilarity, error) {
	return e.NearestExcluding(v, limit)
}

// NearestExcluding is Nearest with the given words left out of the
// result.
func (e *Embeddings) NearestExcluding(v Vector, limit int, skip ...string) ([]WordSimilarity, error) {
	if len(v) != e.dims {
		return nil, errDimensionMismatch(len(v), e.dims)
	}

	results := make([]WordSimilarity, 0)
	if limit <= 0 || len(e.words) == 0 || e.dims == 0 {
		return results, nil
	}

	skips := make(map[string]struct{}, len(skip))
	for _, word := range skip {
		skips[word] = struct{}{}
	}

	dots := make([]float32, len(e.words))
	blas32.Gemv(blas.NoTrans, 1, e.matrix(), vector(v), 0, vector(dots))

	queryNorm := blas32.Nrm2(vector(v))

	for idx, dot := range dots {
		word := e.words[idx]
		if _, ok := skips[word]; ok {
			continue
		}

		sim := cosine(dot, queryNorm, e.norms[idx])

		// Strict comparison: ties stay behind earlier rows.
		ip := sort.Search(len(results), func(i int) bool {
			return results[i].Similarity < sim
		})
		if ip < limit {
			results = insertWithLimit(results, limit, ip, WordSimilarity{word, sim})
		}
	}

	return results, nil
}

// Similarity finds the words that are most similar to the given word,
// excluding the word itself.
func (e *Embeddings) Similarity(word string, limit int) ([]WordSimilarity, error) {
	v, err := e.Embedding(word)
	if err != nil {
		return nil, err
	}

	return e.NearestExcluding(v, limit, word)
}

// Analogy answers 'word1 is to word2 as word3 is to ?' by searching
// for the nearest words to word2 - word1 + word3. The three input
// words are excluded from the result.
func (e *Embeddings) Analogy(word1, word2, word3 string, limit int) ([]WordSimilarity, error) {
	if missing := e.missing(word1, word2, word3); len(missing) != 0 {
		return nil, &MissingVocabularyError{Words: missing}
	}

	v1, _ := e.Vector(word1)
	v2, _ := e.Vector(word2)
	v3, _ := e.Vector(word3)

	v4 := make(Vector, e.dims)
	copy(v4, v2)
	blas32.Axpy(-1, vector(v1), vector(v4))
	blas32.Axpy(1, vector(v3), vector(v4))

	return e.NearestExcluding(v4, limit, word1, word2, word3)
}

// missing returns the words that are not in the vocabulary, in
// argument order and without duplicates.
func (e *Embeddings) missing(words ...string) []string {
	var missing []string
	seen := make(map[string]struct{})

	for _, word := range words {
		if e.Contains(word) {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		missing = append(missing, word)
	}

	return missing
}

func (e *Embeddings) row(idx int) Vector {
	start := idx * e.dims
	return e.data[start : start+e.dims : start+e.dims]
}

func (e *Embeddings) matrix() blas32.General {
	return blas32.General{
		Rows:   len(e.words),
		Cols:   e.dims,
		Stride: e.dims,
		Data:   e.data,
	}
}

func vector(v []float32) blas32.Vector {
	return blas32.Vector{N: len(v), Inc: 1, Data: v}
}

func cosine(dot, norm1, norm2 float32) float32 {
	if norm1 == 0 || norm2 == 0 {
		return 0
	}

	sim := dot / (norm1 * norm2)

	// NaN components rank below every real similarity.
	if math.IsNaN(float64(sim)) {
		return -1
	}

	// Rounding can push parallel vectors slightly past the bounds.
	if sim > 1 {
		return 1
	}
	if sim < -1 {
		return -1
	}

	return sim
}

func insertWithLimit(slice []WordSimilarity, limit, index int, value WordSimilarity) []WordSimilarity {
	if len(slice) < limit {
		slice = append(slice, WordSimilarity{})
	}

	copy(slice[index+1:], slice[index:len(slice)-1])
	slice[index] = value
	return slice
}
