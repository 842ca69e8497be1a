package linescan

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
)

// readerFunc adapts a function to an io.Reader.
type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}

func scanAll(t *testing.T, s *Scanner) []string {
	t.Helper()
	records := make([]string, 0)
	for s.Scan() {
		records = append(records, s.Text())
	}

	return records
}

func TestScannerLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "no trailing newline", input: "a\nb\nc", want: []string{"a", "b", "c"}},
		{name: "trailing newline", input: "a\nb\n", want: []string{"a", "b"}},
		{name: "CRLF", input: "line1\r\nline2\r\n", want: []string{"line1", "line2"}},
		{name: "CR on last line", input: "line1\r", want: []string{"line1"}},
		{name: "inner CR is kept", input: "a\rb\n", want: []string{"a\rb"}},
		{name: "empty lines", input: "\n\nx\n", want: []string{"", "", "x"}},
		{name: "empty input", input: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScanner(strings.NewReader(tt.input))
			got := scanAll(t, s)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("records mismatch (-want +got):\n%s", diff)
			}

			if err := s.Err(); err != nil {
				t.Errorf("Err() = %v, want nil", err)
			}

			if s.Scan() {
				t.Errorf("Scan() returned true after the input was exhausted")
			}
		})
	}
}

func TestScannerOneByteReader(t *testing.T) {
	s := NewScanner(iotest.OneByteReader(strings.NewReader("text/html html htm\r\n# comment\nimage/png png")))

	want := []string{"text/html html htm", "# comment", "image/png png"}
	if diff := cmp.Diff(want, scanAll(t, s)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}
}

func TestScannerGrowsBuffer(t *testing.T) {
	long := strings.Repeat("x", 3*startBufSize+17)
	input := "first\n" + long + "\n" + long + "\nlast"

	s := NewScanner(iotest.HalfReader(strings.NewReader(input)))

	want := []string{"first", long, long, "last"}
	if diff := cmp.Diff(want, scanAll(t, s)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestScannerTooLong(t *testing.T) {
	s := NewScanner(strings.NewReader(strings.Repeat("x", MaxScanTokenSize+1)))

	if s.Scan() {
		t.Errorf("Scan() = true for a record larger than MaxScanTokenSize")
	}

	if !errors.Is(s.Err(), ErrTooLong) {
		t.Errorf("Err() = %v, want %v", s.Err(), ErrTooLong)
	}
}

func TestScannerBufferMax(t *testing.T) {
	s := NewScanner(strings.NewReader("short\n" + strings.Repeat("y", 200) + "\n"))
	s.Buffer(nil, 100)

	got := scanAll(t, s)
	if diff := cmp.Diff([]string{"short"}, got); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if !errors.Is(s.Err(), ErrTooLong) {
		t.Errorf("Err() = %v, want %v", s.Err(), ErrTooLong)
	}
}

func TestScannerBufferAfterScanPanics(t *testing.T) {
	s := NewScanner(strings.NewReader("a\n"))
	s.Scan()

	defer func() {
		if recover() == nil {
			t.Errorf("Buffer did not panic after Scan")
		}
	}()

	s.Buffer(make([]byte, 10), 10)
}

func TestScannerNoProgress(t *testing.T) {
	reads := 0
	s := NewScanner(readerFunc(func(p []byte) (int, error) {
		reads++
		return 0, nil
	}))

	if s.Scan() {
		t.Fatalf("Scan() = true for a reader that never returns data")
	}

	if !errors.Is(s.Err(), ErrNoProgress) {
		t.Errorf("Err() = %v, want %v", s.Err(), ErrNoProgress)
	}

	if reads != maxConsecutiveEmptyReads+1 {
		t.Errorf("reads = %d, want %d", reads, maxConsecutiveEmptyReads+1)
	}

	if s.Scan() {
		t.Errorf("Scan() = true after the error was latched")
	}

	if reads != maxConsecutiveEmptyReads+1 {
		t.Errorf("Scan() read from the source after the error was latched")
	}
}

func TestScannerEmptyReadsThenData(t *testing.T) {
	reads := 0
	s := NewScanner(readerFunc(func(p []byte) (int, error) {
		reads++
		switch {
		case reads < maxConsecutiveEmptyReads:
			return 0, nil
		case reads == maxConsecutiveEmptyReads:
			return copy(p, "ok\n"), nil
		default:
			return 0, io.EOF
		}
	}))

	if diff := cmp.Diff([]string{"ok"}, scanAll(t, s)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if err := s.Err(); err != nil {
		t.Errorf("Err() = %v, want nil", err)
	}
}

func TestScannerBadReadCount(t *testing.T) {
	test := func(name string, n int) {
		s := NewScanner(readerFunc(func(p []byte) (int, error) {
			if n > 0 {
				return len(p) + n, nil
			}
			return n, nil
		}))

		if s.Scan() {
			t.Errorf("%s: Scan() = true", name)
		}

		if !errors.Is(s.Err(), ErrBadReadCount) {
			t.Errorf("%s: Err() = %v, want %v", name, s.Err(), ErrBadReadCount)
		}
	}

	test("more than requested", 1)
	test("negative", -1)
}

func TestScannerReadError(t *testing.T) {
	errBoom := errors.New("boom")
	s := NewScanner(io.MultiReader(
		strings.NewReader("a\nb"),
		iotest.ErrReader(errBoom),
	))

	if diff := cmp.Diff([]string{"a", "b"}, scanAll(t, s)); diff != "" {
		t.Errorf("records mismatch (-want +got):\n%s", diff)
	}

	if !errors.Is(s.Err(), errBoom) {
		t.Errorf("Err() = %v, want %v", s.Err(), errBoom)
	}
}

func TestScannerSplitError(t *testing.T) {
	errSplit := errors.New("split failed")
	s := NewScanner(strings.NewReader("a\nb\n"))
	s.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		return 0, nil, errSplit
	})

	if s.Scan() {
		t.Errorf("Scan() = true")
	}

	if !errors.Is(s.Err(), errSplit) {
		t.Errorf("Err() = %v, want %v", s.Err(), errSplit)
	}
}

func TestScannerBadAdvance(t *testing.T) {
	test := func(advance int, want error) {
		t.Helper()
		s := NewScanner(strings.NewReader("abc"))
		s.Split(func(data []byte, atEOF bool) (int, []byte, error) {
			return advance, data, nil
		})

		if s.Scan() {
			t.Errorf("Scan() = true for advance %d", advance)
		}

		if !errors.Is(s.Err(), want) {
			t.Errorf("Err() = %v, want %v", s.Err(), want)
		}
	}

	test(-1, ErrNegativeAdvance)
	test(4, ErrAdvanceTooFar)
}

func TestScanLines(t *testing.T) {
	test := func(data string, atEOF bool, wantAdvance int, wantToken []byte) {
		t.Helper()
		advance, token, err := ScanLines([]byte(data), atEOF)
		if err != nil {
			t.Fatalf("ScanLines(%q, %t) returned error: %v", data, atEOF, err)
		}

		if advance != wantAdvance {
			t.Errorf("ScanLines(%q, %t) advance = %d, want %d", data, atEOF, advance, wantAdvance)
		}

		if diff := cmp.Diff(wantToken, token); diff != "" {
			t.Errorf("ScanLines(%q, %t) token mismatch (-want +got):\n%s", data, atEOF, diff)
		}
	}

	test("", true, 0, nil)
	test("abc", false, 0, nil)
	test("abc", true, 3, []byte("abc"))
	test("abc\r", true, 4, []byte("abc"))
	test("abc\ndef", false, 4, []byte("abc"))
	test("abc\r\ndef", false, 5, []byte("abc"))
	test("\n", false, 1, []byte{})
}
