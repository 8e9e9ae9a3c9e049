package datefmt

import (
	"strconv"
	"strings"
)

// Sink receives formatted output. Implementations are expected to be
// infallible; buffered sinks satisfy this trivially.
type Sink interface {
	PutByte(c byte)
	PutString(s string)
	PutInt(v int)
}

// StringSink is a Sink that accumulates output in memory.
type StringSink struct {
	b strings.Builder
}

func (s *StringSink) PutByte(c byte)     { s.b.WriteByte(c) }
func (s *StringSink) PutString(v string) { s.b.WriteString(v) }
func (s *StringSink) PutInt(v int)       { s.b.WriteString(strconv.Itoa(v)) }

// String returns the accumulated output.
func (s *StringSink) String() string { return s.b.String() }

// Reset discards the accumulated output.
func (s *StringSink) Reset() { s.b.Reset() }

// pad2 writes v zero-padded to two digits. Values outside 0..99 are
// written unpadded.
func pad2(s Sink, v int) {
	if v >= 0 && v < 10 {
		s.PutByte('0')
	}
	s.PutInt(v)
}

// pad3 writes v zero-padded to three digits.
func pad3(s Sink, v int) {
	if v >= 0 {
		if v < 100 {
			s.PutByte('0')
		}
		if v < 10 {
			s.PutByte('0')
		}
	}
	s.PutInt(v)
}

// pad4 writes v zero-padded to four digits, with a leading '-' for
// negative values ("-0001" for year -1).
func pad4(s Sink, v int) {
	if v < 0 {
		s.PutByte('-')
		v = -v
	}
	if v < 1000 {
		s.PutByte('0')
	}
	if v < 100 {
		s.PutByte('0')
	}
	if v < 10 {
		s.PutByte('0')
	}
	s.PutInt(v)
}
