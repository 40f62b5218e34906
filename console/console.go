// Package console prompts for typed values on a line-oriented text stream.
//
// Every Get* call writes a prompt, reads one line, and repeats until the line
// parses as the requested type and falls within the requested bounds. Format,
// overflow and bounds failures are reported on the output stream and retried;
// only stream failures (including end of input) are returned to the caller.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrEndOfInput is returned when the input stream is exhausted before a
// valid value was read. It wraps io.EOF.
var ErrEndOfInput = fmt.Errorf("console: end of input: %w", io.EOF)

// LineReader reads one line of text at a time.
type LineReader interface {
	// ReadLine blocks until a full line is available and returns it without
	// its line terminator. It returns io.EOF once the stream is exhausted.
	ReadLine() (string, error)
}

// LineWriter writes prompt and error text.
type LineWriter interface {
	Print(text string) error
	PrintLine(text string) error
}

type reader struct {
	r *bufio.Reader
}

// NewReader returns a LineReader over r. Lines may end in "\n" or "\r\n";
// a final line without a terminator is still returned.
func NewReader(r io.Reader) LineReader {
	return &reader{r: bufio.NewReader(r)}
}

func (r *reader) ReadLine() (string, error) {
	line, err := r.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSuffix(line, "\r"), nil
		}
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

type writer struct {
	w io.Writer
}

// NewWriter returns a LineWriter over w.
func NewWriter(w io.Writer) LineWriter {
	return &writer{w: w}
}

func (w *writer) Print(text string) error {
	_, err := io.WriteString(w.w, text)
	return err
}

func (w *writer) PrintLine(text string) error {
	_, err := io.WriteString(w.w, text+"\n")
	return err
}

// Console pairs a LineReader with a LineWriter. A Console is not safe for
// concurrent use; callers sharing one must serialize access.
type Console struct {
	in  LineReader
	out LineWriter
}

// New returns a Console reading lines from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return NewWithLines(NewReader(in), NewWriter(out))
}

// NewWithLines returns a Console over caller-supplied line primitives.
func NewWithLines(in LineReader, out LineWriter) *Console {
	return &Console{in: in, out: out}
}

// GetLine reads one raw line.
func (c *Console) GetLine() (string, error) {
	line, err := c.in.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", ErrEndOfInput
	}
	return line, err
}

// Print writes text without a trailing newline.
func (c *Console) Print(text string) error {
	return c.out.Print(text)
}

// PrintLine writes text followed by a newline.
func (c *Console) PrintLine(text string) error {
	return c.out.PrintLine(text)
}

func (c *Console) printError(err error) error {
	return c.out.PrintLine("Error: " + err.Error())
}
