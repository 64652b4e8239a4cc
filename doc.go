// Package go2vec loads word2vec embeddings and combines them.
//
// This package can load binary and text word2vec files. Two word
// vectors can be combined by summing or averaging them, after which the
// words nearest to the composite vector are found by cosine similarity.
// Similarity and analogy queries on single words are supported as well.
//
// Vector operations use gonum's blas32 package. It uses a pure Go BLAS
// implementation by default, which can be replaced with a C BLAS
// binding through blas32.Use, for instance OpenBLAS or Accelerate using
// gonum.org/v1/netlib/blas/netlib.
package go2vec
