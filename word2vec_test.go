package go2vec

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBinary(t *testing.T, embeds *Embeddings) []byte {
	var buf bytes.Buffer
	require.NoError(t, WriteWord2VecBinary(bufio.NewWriter(&buf), embeds))
	return buf.Bytes()
}

func assertSameEmbeddings(t *testing.T, want, got *Embeddings) {
	t.Helper()

	require.Equal(t, want.Size(), got.Size())
	require.Equal(t, want.VectorSize(), got.VectorSize())

	var wantWords, gotWords []string
	want.Iterate(func(word string, v Vector) bool {
		wantWords = append(wantWords, word)
		gv, ok := got.Vector(word)
		if assert.True(t, ok, "missing word %s", word) {
			assert.InDeltaSlice(t, []float32(v), []float32(gv), 1e-5, "vector of %s", word)
		}
		return true
	})
	got.Iterate(func(word string, _ Vector) bool {
		gotWords = append(gotWords, word)
		return true
	})

	assert.Equal(t, wantWords, gotWords)
}

func TestBinaryRoundTrip(t *testing.T) {
	embeds := testEmbeddings(t)
	read, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(writeBinary(t, embeds))), false)
	require.NoError(t, err)
	assertSameEmbeddings(t, embeds, read)
}

func TestBinaryWithoutNewlines(t *testing.T) {
	var buf bytes.Buffer
	buf.WriteString("2 2\n")
	buf.WriteString("one ")
	buf.Write([]byte{0x00, 0x00, 0x80, 0x3f, 0x00, 0x00, 0x00, 0x00})
	buf.WriteString("two ")
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40})

	embeds, err := ReadWord2VecBinary(bufio.NewReader(&buf), false)
	require.NoError(t, err)

	one, ok := embeds.Vector("one")
	require.True(t, ok)
	assert.Equal(t, Vector{1, 0}, one)

	two, ok := embeds.Vector("two")
	require.True(t, ok)
	assert.Equal(t, Vector{0, 2}, two)
}

func TestBinaryNormalize(t *testing.T) {
	embeds := NewEmbeddings(2)
	require.NoError(t, embeds.Put("long", []float32{3, 4}))
	require.NoError(t, embeds.Put("zero", []float32{0, 0}))

	read, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(writeBinary(t, embeds))), true)
	require.NoError(t, err)

	v, _ := read.Vector("long")
	assert.InDeltaSlice(t, []float32{0.6, 0.8}, []float32(v), 1e-6)

	v, _ = read.Vector("zero")
	assert.Equal(t, Vector{0, 0}, v)
}

func TestBinaryTruncated(t *testing.T) {
	data := writeBinary(t, testEmbeddings(t))

	for _, n := range []int{0, 3, 10, len(data) / 2, len(data) - 2} {
		_, err := ReadWord2VecBinary(bufio.NewReader(bytes.NewReader(data[:n])), false)
		assert.Error(t, err, "reading %d of %d bytes should fail", n, len(data))
	}
}

func TestBinaryInvalidHeader(t *testing.T) {
	for _, header := range []string{"", "two 3\n", "2 0\n", "-1 3\n", "1 99999999999999999\nx "} {
		_, err := ReadWord2VecBinary(bufio.NewReader(strings.NewReader(header)), false)
		assert.Error(t, err, "header %q", header)
	}
}

func TestTextRoundTrip(t *testing.T) {
	embeds := testEmbeddings(t)

	var buf bytes.Buffer
	require.NoError(t, WriteWord2VecText(bufio.NewWriter(&buf), embeds))
	assert.True(t, strings.HasPrefix(buf.String(), "8 3\nBerlin 1.000000 0.000000 0.200000\n"))

	read, err := ReadWord2VecText(bufio.NewReader(&buf), false)
	require.NoError(t, err)
	assertSameEmbeddings(t, embeds, read)
}

func TestTextErrors(t *testing.T) {
	inputs := map[string]string{
		"too few words":      "2 2\napple 1 0\n",
		"too few components": "1 2\napple 1\n",
		"bad number":         "1 2\napple 1 x\n",
	}

	for name, input := range inputs {
		_, err := ReadWord2VecText(bufio.NewReader(strings.NewReader(input)), false)
		assert.Error(t, err, name)
	}
}

func TestReadWord2VecFile(t *testing.T) {
	embeds := testEmbeddings(t)
	path := filepath.Join(t.TempDir(), "vectors.bin")
	require.NoError(t, os.WriteFile(path, writeBinary(t, embeds), 0600))

	read, err := ReadWord2VecFile(path, true, false)
	require.NoError(t, err)
	assertSameEmbeddings(t, embeds, read)

	_, err = ReadWord2VecFile(filepath.Join(t.TempDir(), "missing.bin"), true, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
