package go2vec

import (
	"gonum.org/v1/gonum/blas/blas32"
)

// Method selects how two word vectors are combined.
type Method string

const (
	// MethodAdd sums the vectors element-wise.
	MethodAdd Method = "add"

	// MethodAverage takes the element-wise mean of the vectors.
	MethodAverage Method = "average"
)

// ParseMethod converts a method name to a Method.
func ParseMethod(name string) (Method, error) {
	m := Method(name)
	if !m.Valid() {
		return "", &InvalidMethodError{Method: name}
	}

	return m, nil
}

// Valid reports whether m is a known combination method.
func (m Method) Valid() bool {
	return m == MethodAdd || m == MethodAverage
}

// Combine looks up two words in the table and combines their vectors
// using the given method. The vectors in the table are not modified.
//
// An unknown method results in an *InvalidMethodError, even when the
// words are unknown as well. If one or both words are not in the table,
// the error is a *MissingVocabularyError that lists them.
func Combine(t Table, word1, word2 string, method Method) (Vector, error) {
	if !method.Valid() {
		return nil, &InvalidMethodError{Method: string(method)}
	}

	var missing []string
	if !t.Contains(word1) {
		missing = append(missing, word1)
	}
	if !t.Contains(word2) && word2 != word1 {
		missing = append(missing, word2)
	}
	if len(missing) != 0 {
		return nil, &MissingVocabularyError{Words: missing}
	}

	v1, err := t.Embedding(word1)
	if err != nil {
		return nil, err
	}

	v2, err := t.Embedding(word2)
	if err != nil {
		return nil, err
	}

	return CombineVectors(v1, v2, method)
}

// CombineVectors combines two vectors of equal length into a fresh
// vector.
func CombineVectors(v1, v2 Vector, method Method) (Vector, error) {
	if !method.Valid() {
		return nil, &InvalidMethodError{Method: string(method)}
	}

	if len(v1) != len(v2) {
		return nil, errDimensionMismatch(len(v1), len(v2))
	}

	result := make(Vector, len(v1))
	copy(result, v1)
	blas32.Axpy(1, vector(v2), vector(result))

	if method == MethodAverage {
		blas32.Scal(0.5, vector(result))
	}

	return result, nil
}
