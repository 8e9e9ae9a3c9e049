package datefmt

// Variable-width digit parsers report both a value and a consumed length.
// The pair travels through one int64, the way a single temp slot would
// hold it: value in the low 32 bits, length in the high 32.

func encodeIntLen(value, length int) int64 {
	return int64(length)<<32 | int64(uint32(int32(value)))
}

func decodeInt(l int64) int { return int(int32(l)) }

func decodeLen(l int64) int { return int(l >> 32) }

// parseInt parses in[lo:hi] as an unsigned decimal integer. Every byte
// in the window must be a digit.
func parseInt(in string, lo, hi int) (int, error) {
	if lo >= hi {
		return 0, parseErr(ErrShortInput, lo)
	}
	v := 0
	for pos := lo; pos < hi; pos++ {
		c := in[pos]
		if c < '0' || c > '9' {
			return 0, parseErr(ErrBadDigit, pos)
		}
		v = v*10 + int(c-'0')
		if v > maxFieldValue {
			return 0, parseErr(ErrBadDigit, pos)
		}
	}
	return v, nil
}

// parseIntSafely consumes as many decimal digits as possible starting at
// lo, stopping at the first non-digit or at hi. An empty read is an
// error. The result packs (value, length).
func parseIntSafely(in string, lo, hi int) (int64, error) {
	v := 0
	pos := lo
	for pos < hi {
		c := in[pos]
		if c < '0' || c > '9' {
			break
		}
		v = v*10 + int(c-'0')
		if v > maxFieldValue {
			return 0, parseErr(ErrBadDigit, pos)
		}
		pos++
	}
	if pos == lo {
		return 0, parseErr(ErrBadDigit, lo)
	}
	return encodeIntLen(v, pos-lo), nil
}

// maxFieldValue bounds any single parsed field well below int32 overflow.
const maxFieldValue = 1 << 30
