package datefmt

import (
	"math"
	"time"

	"github.com/ardier/questdb/calendar"
	"github.com/ardier/questdb/locale"
)

// Hour interpretation recorded while parsing. Hour24 means the hour slot
// already holds a 0..23 value; HourAM/HourPM mean it holds 0..11 and the
// final computation reconciles it.
const (
	Hour24 = -1
	HourAM = 0
	HourPM = 1
)

// offsetSentinel marks "no numeric offset parsed".
const offsetSentinel = int64(math.MinInt64)

func assertRemaining(pos, hi int) error {
	if pos < hi {
		return nil
	}
	return parseErr(ErrShortInput, pos)
}

func assertNoTail(pos, hi int) error {
	if pos < hi {
		return parseErr(ErrTailGarbage, pos)
	}
	return nil
}

func assertChar(c byte, in string, pos, hi int) error {
	if pos >= hi {
		return parseErr(ErrShortInput, pos)
	}
	if in[pos] != c {
		return parseErr(ErrDelimiterMismatch, pos)
	}
	return nil
}

// assertString matches a multi-character delimiter and returns the new
// position past it.
func assertString(delim, in string, pos, hi int) (int, error) {
	if pos+len(delim) > hi {
		return 0, parseErr(ErrShortInput, pos)
	}
	if in[pos:pos+len(delim)] != delim {
		return 0, parseErr(ErrDelimiterMismatch, pos)
	}
	return pos + len(delim), nil
}

// Two-digit years land in a sliding window around a reference year: the
// window reaches 20 years past the reference and 80 years before it.
var (
	thisCenturyLimit int
	thisCenturyLow   int
	prevCenturyLow   int
)

func init() {
	SetReferenceYear(calendar.YearOf(time.Now().UnixMilli()))
}

// SetReferenceYear re-anchors the two-digit-year window. It defaults to
// the current year at start-up; call it explicitly for deterministic
// behavior in tests. Not safe to call concurrently with parsing.
func SetReferenceYear(year int) {
	centuryOffset := year / 100 * 100
	thisCenturyLimit = year%100 + 20
	if thisCenturyLimit > 100 {
		thisCenturyLimit -= 100
		thisCenturyLow = centuryOffset + 100
	} else {
		thisCenturyLow = centuryOffset
	}
	prevCenturyLow = thisCenturyLow - 100
}

func adjustYear(year int) int {
	if year < thisCenturyLimit {
		return thisCenturyLow + year
	}
	return prevCenturyLow + year
}

// parseYearGreedy reads a variable-width year; a two-digit read goes
// through the same pivot as the yy symbol. The result packs (year, len).
func parseYearGreedy(in string, lo, hi int) (int64, error) {
	l, err := parseIntSafely(in, lo, hi)
	if err != nil {
		return 0, err
	}
	v, n := decodeInt(l), decodeLen(l)
	if n == 2 {
		v = adjustYear(v)
	}
	return encodeIntLen(v, n), nil
}

// parseOffset recognizes a numeric zone offset: ±HH, ±HHMM or ±HH:MM
// with hours 0..23 and minutes 0..59. It returns packed (signed minutes,
// consumed length), or ok=false when the text is not a numeric offset.
func parseOffset(in string, lo, hi int) (int64, bool) {
	if hi-lo < 3 {
		return 0, false
	}
	sign := 1
	switch in[lo] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	hour, err := parseInt(in, lo+1, lo+3)
	if err != nil || hour > 23 {
		return 0, false
	}
	pos := lo + 3
	consumed := 3
	sep := 0
	if pos < hi && in[pos] == ':' {
		sep = 1
	}
	if pos+sep+2 <= hi {
		if min, err := parseInt(in, pos+sep, pos+sep+2); err == nil && min <= 59 {
			return encodeIntLen(sign*(hour*60+min), consumed+sep+2), true
		}
	}
	return encodeIntLen(sign*hour*60, consumed), true
}

// computeMillis reduces the parsed slots to a UTC instant. A matched
// zone name takes precedence over a numeric offset; a numeric offset is
// in milliseconds east of UTC.
func computeMillis(loc *locale.Locale, era, year, month, day, hour, minute, second, millis, timezone int, offset int64, hourType int) (int64, error) {
	if era == 0 {
		year = 1 - year
	}
	leap := calendar.IsLeapYear(year)
	if month < 1 || month > 12 {
		return 0, rangeErr("month", month)
	}
	if day < 1 || day > calendar.DaysInMonth(month, leap) {
		return 0, rangeErr("day", day)
	}
	if hourType == Hour24 {
		if hour < 0 || hour > 23 {
			return 0, rangeErr("hour", hour)
		}
	} else {
		if hour < 0 || hour > 11 {
			return 0, rangeErr("hour", hour)
		}
		if hourType == HourPM {
			hour += 12
		}
	}
	if minute < 0 || minute > 59 {
		return 0, rangeErr("minute", minute)
	}
	if second < 0 || second > 59 {
		return 0, rangeErr("second", second)
	}
	if millis < 0 || millis > 999 {
		return 0, rangeErr("millis", millis)
	}

	ms := calendar.DateMillis(year, month, day) +
		int64(hour)*calendar.HourMillis +
		int64(minute)*calendar.MinuteMillis +
		int64(second)*calendar.SecondMillis +
		int64(millis)

	if timezone > -1 {
		ms -= loc.ZoneOffset(timezone)
	} else if offset != offsetSentinel {
		ms -= offset
	}
	return ms, nil
}

// appendEra writes the era name for an astronomical year: year 0 and
// below are BC.
func appendEra(s Sink, year int, loc *locale.Locale) {
	if year <= 0 {
		s.PutString(loc.Era(0))
	} else {
		s.PutString(loc.Era(1))
	}
}

func appendAmPm(s Sink, hour int, loc *locale.Locale) {
	if hour < 12 {
		s.PutString(loc.AmPmName(0))
	} else {
		s.PutString(loc.AmPmName(1))
	}
}

// appendHour12 writes the 0..11 half-day hour.
func appendHour12(s Sink, hour int) { s.PutInt(hour % 12) }

func appendHour12Padded(s Sink, hour int) { pad2(s, hour%12) }

// appendHour121 writes the 1..12 clock hour (0 and 12 render as 12).
func appendHour121(s Sink, hour int) { s.PutInt(clockHour(hour)) }

func appendHour121Padded(s Sink, hour int) { pad2(s, clockHour(hour)) }

func clockHour(hour int) int {
	if h := hour % 12; h != 0 {
		return h
	}
	return 12
}
