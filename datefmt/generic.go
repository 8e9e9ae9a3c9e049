package datefmt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ardier/questdb/locale"
)

// GenericFormat is the interpreter fallback: it holds the op list and
// delimiter table and walks them at run time. It is the reference
// semantics; the specializing emitter is required to be observationally
// equivalent to it.
type GenericFormat struct {
	// Ops is the normalized op stream: positive field opcodes and
	// negative delimiter refs, greedy promotion already applied.
	Ops []Op

	// Delimiters is the literal table the negative ops refer to.
	Delimiters []string

	attrs int
}

var _ Format = (*GenericFormat)(nil)

// NewGenericFormat wraps an op stream in an interpreter. The caller
// hands over ownership of both slices.
func NewGenericFormat(ops []Op, delimiters []string) *GenericFormat {
	return &GenericFormat{
		Ops:        ops,
		Delimiters: delimiters,
		attrs:      formatAttributes(ops),
	}
}

func (g *GenericFormat) Parse(in string, lo, hi int, loc *locale.Locale) (int64, error) {
	st := parseState{
		in:       in,
		pos:      lo,
		hi:       hi,
		loc:      loc,
		day:      1,
		month:    1,
		year:     1970,
		era:      1,
		timezone: -1,
		offset:   offsetSentinel,
		hourType: Hour24,
	}
	for _, op := range g.Ops {
		if err := g.execParse(op, &st); err != nil {
			return 0, err
		}
	}
	if err := assertNoTail(st.pos, st.hi); err != nil {
		return 0, err
	}
	return computeMillis(loc, st.era, st.year, st.month, st.day,
		st.hour, st.minute, st.second, st.millis,
		st.timezone, st.offset, st.hourType)
}

func (g *GenericFormat) execParse(op Op, st *parseState) error {
	switch op {
	case OpEra:
		return eraOp(st)
	case OpYearOneDigit:
		return fixedDigits(st, 1, setYear)
	case OpYearTwoDigits:
		return fixedDigits(st, 2, setYearAdjusted)
	case OpYearFourDigits:
		return yearFourOp(st)
	case OpYearGreedy:
		return yearGreedyOp(st)
	case OpMonthOneDigit:
		return fixedDigits(st, 1, setMonth)
	case OpMonthTwoDigits:
		return fixedDigits(st, 2, setMonth)
	case OpMonthGreedy:
		return greedyDigits(st, setMonth)
	case OpMonthShortName, OpMonthLongName:
		return monthNameOp(st)
	case OpDayOneDigit:
		return fixedDigits(st, 1, setDay)
	case OpDayTwoDigits:
		return fixedDigits(st, 2, setDay)
	case OpDayGreedy:
		return greedyDigits(st, setDay)
	case OpDayNameShort, OpDayNameLong:
		return weekdayNameOp(st)
	case OpDayOfWeek:
		return dayOfWeekOp(st)
	case OpAMPM:
		return ampmOp(st)
	case OpHour24OneDigit:
		return fixedDigits(st, 1, setHour)
	case OpHour24TwoDigits:
		return fixedDigits(st, 2, setHour)
	case OpHour24Greedy:
		return greedyDigits(st, setHour)
	case OpHour24OneDigitOneBased:
		return fixedDigits(st, 1, setHourSub1)
	case OpHour24TwoDigitsOneBased:
		return fixedDigits(st, 2, setHourSub1)
	case OpHour24GreedyOneBased:
		return greedyDigits(st, setHourSub1)
	case OpHour12OneDigit:
		return hour12(st, fixedDigits(st, 1, setHour))
	case OpHour12TwoDigits:
		return hour12(st, fixedDigits(st, 2, setHour))
	case OpHour12Greedy:
		return hour12(st, greedyDigits(st, setHour))
	case OpHour12OneDigitOneBased:
		return hour12(st, fixedDigits(st, 1, setHourMod12))
	case OpHour12TwoDigitsOneBased:
		return hour12(st, fixedDigits(st, 2, setHourMod12))
	case OpHour12GreedyOneBased:
		return hour12(st, greedyDigits(st, setHourMod12))
	case OpMinuteOneDigit:
		return fixedDigits(st, 1, setMinute)
	case OpMinuteTwoDigits:
		return fixedDigits(st, 2, setMinute)
	case OpMinuteGreedy:
		return greedyDigits(st, setMinute)
	case OpSecondOneDigit:
		return fixedDigits(st, 1, setSecond)
	case OpSecondTwoDigits:
		return fixedDigits(st, 2, setSecond)
	case OpSecondGreedy:
		return greedyDigits(st, setSecond)
	case OpMillisOneDigit:
		return fixedDigits(st, 1, setMillis)
	case OpMillisThreeDigits:
		return fixedDigits(st, 3, setMillis)
	case OpMillisGreedy:
		return greedyDigits(st, setMillis)
	case OpTimeZoneShort, OpTimeZoneGMT, OpTimeZoneLong, OpTimeZoneRFC822,
		OpTimeZoneISO1, OpTimeZoneISO2, OpTimeZoneISO3:
		return zoneOp(st)
	}
	assert(op.IsDelimiter(), "unhandled op %s", op)
	d := g.Delimiters[op.DelimiterIndex()]
	if len(d) == 1 {
		if err := assertChar(d[0], st.in, st.pos, st.hi); err != nil {
			return err
		}
		st.pos++
		return nil
	}
	pos, err := assertString(d, st.in, st.pos, st.hi)
	if err != nil {
		return err
	}
	st.pos = pos
	return nil
}

// hour12 applies the conditional hour-type promotion after a 12-hour
// parse already ran.
func hour12(st *parseState, err error) error {
	if err != nil {
		return err
	}
	promoteHourType(st)
	return nil
}

func (g *GenericFormat) Format(millis int64, loc *locale.Locale, zoneLabel string, sink Sink) {
	f := formatState{loc: loc, zone: zoneLabel, sink: sink}
	fillFormatState(g.attrs, millis, &f)
	for _, op := range g.Ops {
		g.execFormat(op, &f)
	}
}

func (g *GenericFormat) execFormat(op Op, f *formatState) {
	switch op {
	case OpAMPM:
		appendAmPm(f.sink, f.hour, f.loc)
	case OpMillisOneDigit, OpMillisGreedy:
		f.sink.PutInt(f.millis)
	case OpMillisThreeDigits:
		pad3(f.sink, f.millis)
	case OpSecondOneDigit, OpSecondGreedy:
		f.sink.PutInt(f.second)
	case OpSecondTwoDigits:
		pad2(f.sink, f.second)
	case OpMinuteOneDigit, OpMinuteGreedy:
		f.sink.PutInt(f.minute)
	case OpMinuteTwoDigits:
		pad2(f.sink, f.minute)
	case OpHour12OneDigit, OpHour12Greedy:
		appendHour12(f.sink, f.hour)
	case OpHour12TwoDigits:
		appendHour12Padded(f.sink, f.hour)
	case OpHour12OneDigitOneBased, OpHour12GreedyOneBased:
		appendHour121(f.sink, f.hour)
	case OpHour12TwoDigitsOneBased:
		appendHour121Padded(f.sink, f.hour)
	case OpHour24OneDigit, OpHour24Greedy:
		f.sink.PutInt(f.hour)
	case OpHour24TwoDigits:
		pad2(f.sink, f.hour)
	case OpHour24OneDigitOneBased, OpHour24GreedyOneBased:
		f.sink.PutInt(f.hour + 1)
	case OpHour24TwoDigitsOneBased:
		pad2(f.sink, f.hour+1)
	case OpDayOneDigit, OpDayGreedy:
		f.sink.PutInt(f.day)
	case OpDayTwoDigits:
		pad2(f.sink, f.day)
	case OpDayNameLong:
		f.sink.PutString(f.loc.Weekday(f.dayOfWeek))
	case OpDayNameShort:
		f.sink.PutString(f.loc.ShortWeekday(f.dayOfWeek))
	case OpDayOfWeek:
		f.sink.PutInt(f.dayOfWeek)
	case OpMonthOneDigit, OpMonthGreedy:
		f.sink.PutInt(f.month)
	case OpMonthTwoDigits:
		pad2(f.sink, f.month)
	case OpMonthShortName:
		f.sink.PutString(f.loc.ShortMonth(f.month - 1))
	case OpMonthLongName:
		f.sink.PutString(f.loc.Month(f.month - 1))
	case OpYearOneDigit, OpYearGreedy:
		f.sink.PutInt(f.year)
	case OpYearTwoDigits:
		pad2(f.sink, f.year%100)
	case OpYearFourDigits:
		pad4(f.sink, f.year)
	case OpEra:
		appendEra(f.sink, f.year, f.loc)
	case OpTimeZoneShort, OpTimeZoneGMT, OpTimeZoneLong, OpTimeZoneRFC822,
		OpTimeZoneISO1, OpTimeZoneISO2, OpTimeZoneISO3:
		f.sink.PutString(f.zone)
	default:
		assert(op.IsDelimiter(), "unhandled op %s", op)
		d := g.Delimiters[op.DelimiterIndex()]
		if len(d) == 1 {
			f.sink.PutByte(d[0])
		} else {
			f.sink.PutString(d)
		}
	}
}

// Describe writes a disassembly-style listing of the op stream: one op
// per line, delimiters as quoted literals.
func (g *GenericFormat) Describe(w io.Writer) (int, error) {
	var buf bytes.Buffer
	for _, op := range g.Ops {
		if op.IsDelimiter() {
			fmt.Fprintf(&buf, "%q", g.Delimiters[op.DelimiterIndex()])
		} else {
			buf.WriteString(op.String())
		}
		buf.WriteByte('\n')
	}
	return w.Write(buf.Bytes())
}
