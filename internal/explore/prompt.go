package explore

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks the user for a missing word.
type Prompter interface {
	Prompt(label string) (string, error)
}

// LinePrompter writes a label and reads one line of input.
type LinePrompter struct {
	r *bufio.Reader
	w io.Writer
}

// NewLinePrompter creates a prompter that writes labels to w and reads
// answers from r.
func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{r: bufio.NewReader(r), w: w}
}

// Prompt writes the label and returns the next input line without
// surrounding whitespace. A final line without a newline is accepted;
// an exhausted input gives io.EOF.
func (p *LinePrompter) Prompt(label string) (string, error) {
	if _, err := fmt.Fprint(p.w, label); err != nil {
		return "", err
	}

	line, err := p.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}
