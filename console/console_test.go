package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestReader_ReadLine(t *testing.T) {
	r := NewReader(strings.NewReader("one\r\ntwo\n\nlast"))

	for _, want := range []string{"one", "two", "", "last"} {
		got, err := r.ReadLine()
		if err != nil {
			t.Fatalf("ReadLine() error = %v, want %q", err, want)
		}
		if got != want {
			t.Errorf("ReadLine() = %q, want %q", got, want)
		}
	}

	if _, err := r.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() at end error = %v, want io.EOF", err)
	}
}

// failingReader fails every read.
type failingReader struct {
	err error
}

func (f *failingReader) Read(p []byte) (int, error) {
	return 0, f.err
}

func TestConsole_GetLine(t *testing.T) {
	t.Run("eof maps to ErrEndOfInput", func(t *testing.T) {
		c := New(strings.NewReader(""), io.Discard)
		if _, err := c.GetLine(); !errors.Is(err, ErrEndOfInput) {
			t.Errorf("GetLine() error = %v, want ErrEndOfInput", err)
		}
	})

	t.Run("other read errors pass through", func(t *testing.T) {
		readErr := errors.New("device gone")
		c := New(&failingReader{err: readErr}, io.Discard)
		_, err := c.GetLine()
		if !errors.Is(err, readErr) {
			t.Errorf("GetLine() error = %v, want %v", err, readErr)
		}
		if errors.Is(err, ErrEndOfInput) {
			t.Errorf("read failure must not look like end of input")
		}
	})
}

func TestConsole_Print(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader(""), &out)

	if err := c.Print("a"); err != nil {
		t.Fatal(err)
	}
	if err := c.PrintLine("b"); err != nil {
		t.Fatal(err)
	}
	if out.String() != "ab\n" {
		t.Errorf("output = %q, want %q", out.String(), "ab\n")
	}
}
