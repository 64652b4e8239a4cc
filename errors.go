package go2vec

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissingVocabulary matches every *MissingVocabularyError.
	ErrMissingVocabulary = errors.New("missing vocabulary")

	// ErrInvalidMethod matches every *InvalidMethodError.
	ErrInvalidMethod = errors.New("invalid method")
)

// MissingVocabularyError is returned when query words are not in the
// embedding table.
type MissingVocabularyError struct {
	Words []string
}

func (e *MissingVocabularyError) Error() string {
	return "word(s) not in the model vocabulary: " + strings.Join(e.Words, ", ")
}

func (e *MissingVocabularyError) Is(target error) bool {
	return target == ErrMissingVocabulary
}

// InvalidMethodError is returned for an unknown combination method.
type InvalidMethodError struct {
	Method string
}

func (e *InvalidMethodError) Error() string {
	return fmt.Sprintf("invalid method %q: choose %q or %q", e.Method, MethodAdd, MethodAverage)
}

func (e *InvalidMethodError) Is(target error) bool {
	return target == ErrInvalidMethod
}

// IsValidationError reports whether err is caused by bad query input,
// as opposed to I/O or programming errors.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingVocabulary) || errors.Is(err, ErrInvalidMethod)
}

func errDimensionMismatch(got, expected int) error {
	return errors.Errorf("vector has %d dimensions, expected %d", got, expected)
}
