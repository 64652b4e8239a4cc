package go2vec

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/blas/blas32"
)

// ReadWord2VecBinary reads word embeddings in the binary word2vec
// format: a header with the vocabulary size and vector size, followed
// by each word, terminated by a space, and its vector as little-endian
// 32-bit floats. If normalize is true, vectors are scaled to unit
// length.
func ReadWord2VecBinary(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	nWords, vSize, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	embeds := NewEmbeddings(vSize)
	vec := make([]float32, vSize)

	for w := 0; w < nWords; w++ {
		word, err := r.ReadString(' ')
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read word %d", w)
		}

		// Vectors may be followed by a newline, which ends up in front of
		// the next word.
		word = strings.TrimSpace(word)

		if err = binary.Read(r, binary.LittleEndian, vec); err != nil {
			return nil, errors.Wrapf(err, "cannot read vector of '%s'", word)
		}

		if normalize {
			normalizeVector(vec)
		}

		if err := embeds.Put(word, vec); err != nil {
			return nil, err
		}
	}

	return embeds, nil
}

// ReadWord2VecText reads word embeddings in the text word2vec format:
// a header with the vocabulary size and vector size, followed by one
// line per word with the word and its vector components.
func ReadWord2VecText(r *bufio.Reader, normalize bool) (*Embeddings, error) {
	nWords, vSize, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	embeds := NewEmbeddings(vSize)
	vec := make([]float32, vSize)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for w := 0; w < nWords; {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, errors.Wrapf(err, "cannot read word %d", w)
			}
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "cannot read word %d", w)
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if len(fields) != vSize+1 {
			return nil, errors.Errorf("line for '%s' has %d components, expected %d", fields[0], len(fields)-1, vSize)
		}

		for idx, field := range fields[1:] {
			val, err := strconv.ParseFloat(field, 32)
			if err != nil {
				return nil, errors.Wrapf(err, "cannot parse vector of '%s'", fields[0])
			}
			vec[idx] = float32(val)
		}

		if normalize {
			normalizeVector(vec)
		}

		if err := embeds.Put(fields[0], vec); err != nil {
			return nil, err
		}

		w++
	}

	return embeds, nil
}

// ReadWord2VecFile opens and reads an embeddings file, in the binary
// format when binaryFormat is true and in the text format otherwise.
func ReadWord2VecFile(path string, binaryFormat, normalize bool) (*Embeddings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open embeddings")
	}
	defer f.Close()

	read := ReadWord2VecText
	if binaryFormat {
		read = ReadWord2VecBinary
	}

	embeds, err := read(bufio.NewReader(f), normalize)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot read embeddings from %s", path)
	}

	return embeds, nil
}

// WriteWord2VecBinary writes the embeddings in the binary word2vec
// format, in insertion order.
func WriteWord2VecBinary(w *bufio.Writer, embeds *Embeddings) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", embeds.Size(), embeds.VectorSize()); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	var err error
	embeds.Iterate(func(word string, v Vector) bool {
		if _, err = w.WriteString(word + " "); err != nil {
			return false
		}
		if err = binary.Write(w, binary.LittleEndian, []float32(v)); err != nil {
			return false
		}
		err = w.WriteByte('\n')
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "cannot write embeddings")
	}

	return w.Flush()
}

// WriteWord2VecText writes the embeddings in the text word2vec format,
// in insertion order.
func WriteWord2VecText(w *bufio.Writer, embeds *Embeddings) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", embeds.Size(), embeds.VectorSize()); err != nil {
		return errors.Wrap(err, "cannot write header")
	}

	var err error
	embeds.Iterate(func(word string, v Vector) bool {
		_, err = fmt.Fprintln(w, word, floatSliceToString(v))
		return err == nil
	})
	if err != nil {
		return errors.Wrap(err, "cannot write embeddings")
	}

	return w.Flush()
}

// maxVectorSize bounds the vector size accepted from a file header, so
// that a corrupt header cannot request an impossible allocation.
const maxVectorSize = 1 << 20

func readHeader(r *bufio.Reader) (int, int, error) {
	var nWords, vSize int
	if _, err := fmt.Fscanf(r, "%d %d", &nWords, &vSize); err != nil {
		return 0, 0, errors.Wrap(err, "cannot read header")
	}

	if nWords < 0 || vSize <= 0 || vSize > maxVectorSize {
		return 0, 0, errors.Errorf("invalid header: %d words, vector size %d", nWords, vSize)
	}

	return nWords, vSize, nil
}

func normalizeVector(vec []float32) {
	norm := blas32.Nrm2(vector(vec))
	if norm == 0 {
		return
	}

	blas32.Scal(1/norm, vector(vec))
}

func floatSliceToString(floats []float32) string {
	stringFloats := make([]string, len(floats))

	for idx, float := range floats {
		stringFloats[idx] = strconv.FormatFloat(float64(float), 'f', 6, 32)
	}

	return strings.Join(stringFloats, " ")
}
