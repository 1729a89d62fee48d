package writers

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"github.com/google/go-cmp/cmp"

	"advent/internal/output"
)

func TestBuiltinFormatsRegistered(t *testing.T) {
	want := []string{output.FormatJSON, output.FormatPretty, output.FormatText}
	if diff := cmp.Diff(want, Formats()); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
}

func TestWriteDispatch(t *testing.T) {
	var b bytes.Buffer
	if err := Write(output.FormatText, &b, output.Answer{Value: 42}); err != nil {
		t.Fatal(err)
	}
	if b.String() != "42\n" {
		t.Errorf("got %q", b.String())
	}
}

func TestUnknownFormatError(t *testing.T) {
	err := Write("nope-format", io.Discard, output.Answer{})
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want 'unknown output format' error, got: %v", err)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{errors.New("x"), false},
		{syscall.EPIPE, true},
		{io.ErrClosedPipe, true},
		{&wrapErr{syscall.EPIPE}, true},
	}
	for _, tc := range cases {
		if got := IsBrokenPipe(tc.err); got != tc.want {
			t.Errorf("IsBrokenPipe(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

type wrapErr struct{ err error }

func (w *wrapErr) Error() string { return "write: " + w.err.Error() }
func (w *wrapErr) Unwrap() error { return w.err }
