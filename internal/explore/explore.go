// Package explore combines two words and prints the nearest neighbors
// of their composite vector.
package explore

import (
	"fmt"
	"io"
	"strings"

	"github.com/danieldk/go2vec/v3"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const resultsHeader = "\nWords similar to the composite vector:"

// Explorer runs combination queries against a loaded table.
type Explorer struct {
	Table    go2vec.Table
	Prompter Prompter
	Out      io.Writer
	Logger   *zap.Logger

	// Method defaults to average, TopN to go2vec.DefaultTopN.
	Method go2vec.Method
	TopN   int
}

// Run combines the two words and prints their neighbors. Empty words
// are asked for through the prompter. Unknown words and methods are
// reported on the output and are not errors; all other failures are
// returned.
func (e *Explorer) Run(first, second string) error {
	var err error

	if first == "" {
		if first, err = e.prompt("Enter the first word: "); err != nil {
			return errors.Wrap(err, "cannot read first word")
		}
	}
	if second == "" {
		if second, err = e.prompt("Enter the second word: "); err != nil {
			return errors.Wrap(err, "cannot read second word")
		}
	}

	logger := e.logger().With(
		zap.String("first", first),
		zap.String("second", second),
		zap.String("method", string(e.method())))

	results, err := e.query(first, second)
	if go2vec.IsValidationError(err) {
		logger.Debug("invalid query", zap.Error(err))
		_, err = fmt.Fprintln(e.Out, err.Error())
		return err
	}
	if err != nil {
		return err
	}

	logger.Debug("found neighbors", zap.Int("count", len(results)))

	return e.print(results)
}

func (e *Explorer) prompt(label string) (string, error) {
	word, err := e.Prompter.Prompt(label)
	return strings.TrimSpace(word), err
}

func (e *Explorer) query(first, second string) ([]go2vec.WordSimilarity, error) {
	composite, err := go2vec.Combine(e.Table, first, second, e.method())
	if err != nil {
		return nil, err
	}

	return go2vec.FindNeighbors(e.Table, composite, e.topN())
}

func (e *Explorer) print(results []go2vec.WordSimilarity) error {
	if _, err := fmt.Fprintln(e.Out, resultsHeader); err != nil {
		return err
	}

	for _, wordSimilarity := range results {
		if _, err := fmt.Fprintf(e.Out, "%s: %.4f\n", wordSimilarity.Word, wordSimilarity.Similarity); err != nil {
			return err
		}
	}

	return nil
}

func (e *Explorer) method() go2vec.Method {
	if e.Method == "" {
		return go2vec.MethodAverage
	}
	return e.Method
}

func (e *Explorer) topN() int {
	if e.TopN == 0 {
		return go2vec.DefaultTopN
	}
	return e.TopN
}

func (e *Explorer) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
