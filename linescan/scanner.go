// Package linescan reads newline-delimited records from an [io.Reader].
// It is used to stream mime.types files without loading them in memory.
package linescan

import (
	"bytes"
	"errors"
	"io"
)

const (
	// MaxScanTokenSize is the default maximum size of a record.
	MaxScanTokenSize = 64 * 1024

	startBufSize = 4096

	// maxConsecutiveEmptyReads is the number of reads without data, and without error, that
	// are tolerated before the reader is considered stalled.
	maxConsecutiveEmptyReads = 100
)

var (
	ErrTooLong         = errors.New("linescan: token too long")
	ErrNegativeAdvance = errors.New("linescan: SplitFunc returns negative advance count")
	ErrAdvanceTooFar   = errors.New("linescan: SplitFunc returns advance count beyond input")
	ErrBadReadCount    = errors.New("linescan: Read returned impossible count")
	ErrNoProgress      = errors.New("linescan: too many consecutive empty reads")
)

// SplitFunc splits the buffered data into records.
// It returns the number of bytes to consume and the record, if any.
// A nil token together with a zero advance requests more data.
// When atEOF is true, no more data will follow.
type SplitFunc func(data []byte, atEOF bool) (advance int, token []byte, err error)

// Scanner reads records from an [io.Reader].
// Successive calls to [Scanner.Scan] step through the records.
// The first error, including [io.EOF], is latched and ends scanning for good.
type Scanner struct {
	r            io.Reader
	split        SplitFunc
	maxTokenSize int
	token        []byte
	buf          []byte
	start        int
	end          int
	err          error
	empties      int
	scanCalled   bool
	done         bool
}

// NewScanner returns a Scanner that splits r into lines using [ScanLines].
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:            r,
		split:        ScanLines,
		maxTokenSize: MaxScanTokenSize,
	}
}

// Err returns the first non-EOF error that was encountered by the Scanner.
func (s *Scanner) Err() error {
	if s.err == io.EOF {
		return nil
	}

	return s.err
}

// Bytes returns the most recent record.
// The underlying array may be overwritten by a subsequent call to Scan.
func (s *Scanner) Bytes() []byte {
	return s.token
}

// Text returns the most recent record as a string.
func (s *Scanner) Text() string {
	return string(s.token)
}

// Buffer sets the initial buffer and the maximum record size.
// The buffer grows up to max, or cap(buf) if that is larger.
// Buffer panics if it is called after scanning has started.
func (s *Scanner) Buffer(buf []byte, max int) {
	if s.scanCalled {
		panic("linescan: Buffer called after Scan")
	}

	s.buf = buf[0:cap(buf)]
	s.maxTokenSize = max
}

// Split sets the split function. It panics if it is called after scanning has started.
func (s *Scanner) Split(split SplitFunc) {
	if s.scanCalled {
		panic("linescan: Split called after Scan")
	}

	s.split = split
}

// Scan advances to the next record, which is then available through [Scanner.Bytes] or
// [Scanner.Text].
// It returns false when the input is exhausted or an error occurred, see [Scanner.Err].
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	s.scanCalled = true

	for {
		if s.end > s.start || s.err != nil {
			atEOF := s.err != nil
			advance, token, err := s.split(s.buf[s.start:s.end], atEOF)
			if err != nil {
				s.setErr(err)
				return s.stop()
			}

			if !s.advance(advance) {
				return s.stop()
			}

			s.token = token
			if token != nil {
				if !atEOF || advance > 0 {
					s.empties = 0
				} else {
					s.empties++
					if s.empties > maxConsecutiveEmptyReads {
						s.setErr(ErrNoProgress)
						return s.stop()
					}
				}

				return true
			}
		}

		if s.err != nil {
			s.start = 0
			s.end = 0
			return s.stop()
		}

		if !s.makeRoom() {
			return s.stop()
		}

		s.fill()
	}
}

// makeRoom shifts unread data to the start of the buffer and grows the buffer when it is full.
func (s *Scanner) makeRoom() bool {
	if s.start > 0 && (s.end == len(s.buf) || s.start > len(s.buf)/2) {
		copy(s.buf, s.buf[s.start:s.end])
		s.end -= s.start
		s.start = 0
	}

	if s.end < len(s.buf) {
		return true
	}

	if len(s.buf) >= s.maxTokenSize {
		s.setErr(ErrTooLong)
		return false
	}

	newSize := len(s.buf) * 2
	if newSize == 0 {
		newSize = startBufSize
	}
	newSize = min(newSize, s.maxTokenSize)

	newBuf := make([]byte, newSize)
	copy(newBuf, s.buf[s.start:s.end])
	s.buf = newBuf
	s.end -= s.start
	s.start = 0

	return true
}

// fill reads into the free part of the buffer until data arrives or an error is latched.
func (s *Scanner) fill() {
	for loop := 0; ; {
		free := len(s.buf) - s.end
		n, err := s.r.Read(s.buf[s.end:len(s.buf)])
		if n < 0 || n > free {
			s.setErr(ErrBadReadCount)
			return
		}

		s.end += n
		if err != nil {
			s.setErr(err)
			return
		}

		if n > 0 {
			s.empties = 0
			return
		}

		loop++
		if loop > maxConsecutiveEmptyReads {
			s.setErr(ErrNoProgress)
			return
		}
	}
}

func (s *Scanner) advance(n int) bool {
	switch {
	case n < 0:
		s.setErr(ErrNegativeAdvance)
		return false
	case n > s.end-s.start:
		s.setErr(ErrAdvanceTooFar)
		return false
	}

	s.start += n
	return true
}

// setErr records the first error. A later error replaces io.EOF.
func (s *Scanner) setErr(err error) {
	if s.err == nil || s.err == io.EOF {
		s.err = err
	}
}

func (s *Scanner) stop() bool {
	s.token = nil
	s.done = true
	return false
}

// ScanLines is a [SplitFunc] that returns each line of text with the trailing end-of-line
// marker removed. The end-of-line marker is one optional carriage return followed by one
// mandatory newline. The last line does not need a newline.
func ScanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, dropCR(data[0:i]), nil
	}

	if atEOF {
		return len(data), dropCR(data), nil
	}

	return 0, nil, nil
}

// dropCR drops a terminal \r from the data.
func dropCR(data []byte) []byte {
	if len(data) > 0 && data[len(data)-1] == '\r' {
		return data[0 : len(data)-1]
	}

	return data
}
