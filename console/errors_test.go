package console

import (
	"errors"
	"fmt"
	"testing"
)

func TestInputError(t *testing.T) {
	tests := []struct {
		name        string
		err         *InputError
		wantMessage string
		wantFormat  bool
		wantOver    bool
		wantBounds  bool
	}{
		{
			name:        "format",
			err:         formatError(Int32, "abc"),
			wantMessage: "Input string is not valid.",
			wantFormat:  true,
		},
		{
			name:        "overflow names the type",
			err:         overflowError(Int16, "99999"),
			wantMessage: "The parsed input value is too large for a(n) int16.",
			wantOver:    true,
		},
		{
			name:        "bounds names both ends",
			err:         &InputError{Kind: BoundsError, Type: Int32, Input: "200", Min: "0", Max: "120"},
			wantMessage: "Input needs to be between 0 and 120.",
			wantBounds:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMessage {
				t.Errorf("Error() = %q, want %q", got, tt.wantMessage)
			}

			// Classifiers must see through wrapping.
			wrapped := fmt.Errorf("question %q: %w", "age", tt.err)
			if got := IsFormatError(wrapped); got != tt.wantFormat {
				t.Errorf("IsFormatError() = %v, want %v", got, tt.wantFormat)
			}
			if got := IsOverflowError(wrapped); got != tt.wantOver {
				t.Errorf("IsOverflowError() = %v, want %v", got, tt.wantOver)
			}
			if got := IsBoundsError(wrapped); got != tt.wantBounds {
				t.Errorf("IsBoundsError() = %v, want %v", got, tt.wantBounds)
			}
		})
	}
}

func TestClassifiersRejectOtherErrors(t *testing.T) {
	for _, err := range []error{nil, errors.New("plain"), ErrEndOfInput, ErrInvalidBounds} {
		if IsFormatError(err) || IsOverflowError(err) || IsBoundsError(err) {
			t.Errorf("classifier matched %v", err)
		}
	}
}

func TestErrorKindString(t *testing.T) {
	for kind, want := range map[ErrorKind]string{
		FormatError:   "format",
		OverflowError: "overflow",
		BoundsError:   "bounds",
		ErrorKind(0):  "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", int(kind), got, want)
		}
	}
}
