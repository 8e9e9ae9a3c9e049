package datefmt

import (
	"github.com/ardier/questdb/calendar"
	"github.com/ardier/questdb/locale"
)

// parseState is the frame of one parse call: the field slots, the input
// cursor and the zone bookkeeping. A fresh state is built per call, so
// compiled formats stay shareable.
type parseState struct {
	in  string
	pos int
	hi  int
	loc *locale.Locale

	day      int
	month    int
	year     int
	hour     int
	minute   int
	second   int
	millis   int
	era      int
	timezone int
	hourType int
	offset   int64
	temp     int64
}

// parseStep is one specialized unit of parse work. A compiled format is
// a flat list of these; running them in order is the whole routine.
type parseStep func(st *parseState) error

// setter stores a parsed value into its slot. Choosing the setter at
// compile time keeps the step bodies free of opcode dispatch.
type setter func(st *parseState, v int)

func setDay(st *parseState, v int)    { st.day = v }
func setMonth(st *parseState, v int)  { st.month = v }
func setYear(st *parseState, v int)   { st.year = v }
func setHour(st *parseState, v int)   { st.hour = v }
func setMinute(st *parseState, v int) { st.minute = v }
func setSecond(st *parseState, v int) { st.second = v }
func setMillis(st *parseState, v int) { st.millis = v }
func setEra(st *parseState, v int)    { st.era = v }

func setYearAdjusted(st *parseState, v int) { st.year = adjustYear(v) }

// setHourSub1 maps the one-based 1..24 clock onto 0..23.
func setHourSub1(st *parseState, v int) { st.hour = v - 1 }

// setHourMod12 maps the one-based 1..12 clock onto 0..11, collapsing 12
// to 0 so that 12:00AM parses as midnight.
func setHourMod12(st *parseState, v int) { st.hour = v % 12 }

// fixedDigits parses exactly n digits into a slot.
func fixedDigits(st *parseState, n int, set setter) error {
	if err := assertRemaining(st.pos+n-1, st.hi); err != nil {
		return err
	}
	v, err := parseInt(st.in, st.pos, st.pos+n)
	if err != nil {
		return err
	}
	st.pos += n
	set(st, v)
	return nil
}

// greedyDigits parses 1..n digits up to the next non-digit into a slot,
// routing the packed result through the temp slot.
func greedyDigits(st *parseState, set setter) error {
	l, err := parseIntSafely(st.in, st.pos, st.hi)
	if err != nil {
		return err
	}
	st.temp = l
	set(st, decodeInt(l))
	st.pos += decodeLen(l)
	return nil
}

// promoteHourType flips a still-default hour interpretation to AM. An
// explicit AM/PM op downstream overwrites it either way.
func promoteHourType(st *parseState) {
	if st.hourType == Hour24 {
		st.hourType = HourAM
	}
}

func eraOp(st *parseState) error {
	idx, n, ok := st.loc.MatchEra(st.in, st.pos, st.hi)
	if !ok {
		return parseErr(ErrNameLookup, st.pos)
	}
	st.temp = encodeIntLen(idx, n)
	st.era = idx
	st.pos += n
	return nil
}

func ampmOp(st *parseState) error {
	idx, n, ok := st.loc.MatchAMPM(st.in, st.pos, st.hi)
	if !ok {
		return parseErr(ErrNameLookup, st.pos)
	}
	st.temp = encodeIntLen(idx, n)
	st.hourType = idx
	st.pos += n
	return nil
}

func monthNameOp(st *parseState) error {
	idx, n, ok := st.loc.MatchMonth(st.in, st.pos, st.hi)
	if !ok {
		return parseErr(ErrNameLookup, st.pos)
	}
	st.temp = encodeIntLen(idx, n)
	st.month = idx + 1
	st.pos += n
	return nil
}

// weekdayNameOp matches a weekday name and discards the index; the
// weekday carries no information the date fields don't already have.
func weekdayNameOp(st *parseState) error {
	idx, n, ok := st.loc.MatchWeekday(st.in, st.pos, st.hi)
	if !ok {
		return parseErr(ErrNameLookup, st.pos)
	}
	st.temp = encodeIntLen(idx, n)
	st.pos += n
	return nil
}

// dayOfWeekOp parses and discards a single weekday digit.
func dayOfWeekOp(st *parseState) error {
	if err := assertRemaining(st.pos, st.hi); err != nil {
		return err
	}
	if _, err := parseInt(st.in, st.pos, st.pos+1); err != nil {
		return err
	}
	st.pos++
	return nil
}

// yearFourOp parses a four-digit year, optionally preceded by '-'. Both
// arms write the same slots, so the join needs no reconciliation.
func yearFourOp(st *parseState) error {
	if st.pos < st.hi && st.in[st.pos] == '-' {
		if err := assertRemaining(st.pos+4, st.hi); err != nil {
			return err
		}
		v, err := parseInt(st.in, st.pos+1, st.pos+5)
		if err != nil {
			return err
		}
		st.year = -v
		st.pos += 5
		return nil
	}
	if err := assertRemaining(st.pos+3, st.hi); err != nil {
		return err
	}
	v, err := parseInt(st.in, st.pos, st.pos+4)
	if err != nil {
		return err
	}
	st.year = v
	st.pos += 4
	return nil
}

func yearGreedyOp(st *parseState) error {
	l, err := parseYearGreedy(st.in, st.pos, st.hi)
	if err != nil {
		return err
	}
	st.temp = l
	st.year = decodeInt(l)
	st.pos += decodeLen(l)
	return nil
}

// zoneOp tries a numeric offset first and falls back to a zone-name
// match. The arms write different slots (offset vs timezone); the one
// not taken keeps its default, which is what the final computation
// expects.
func zoneOp(st *parseState) error {
	if l, ok := parseOffset(st.in, st.pos, st.hi); ok {
		st.temp = l
		st.offset = int64(decodeInt(l)) * calendar.MinuteMillis
		st.pos += decodeLen(l)
		return nil
	}
	idx, n, ok := st.loc.MatchZone(st.in, st.pos, st.hi)
	if !ok {
		return parseErr(ErrNameLookup, st.pos)
	}
	st.temp = encodeIntLen(idx, n)
	st.timezone = idx
	st.pos += n
	return nil
}

// Step constructors for the specializing emitter.

func stepFixedDigits(n int, set setter) parseStep {
	return func(st *parseState) error { return fixedDigits(st, n, set) }
}

func stepGreedyDigits(set setter) parseStep {
	return func(st *parseState) error { return greedyDigits(st, set) }
}

// withHourPromotion appends the conditional hour-type flip to a 12-hour
// parse step.
func withHourPromotion(step parseStep) parseStep {
	return func(st *parseState) error {
		if err := step(st); err != nil {
			return err
		}
		promoteHourType(st)
		return nil
	}
}

func stepDefault(set setter, v int) parseStep {
	return func(st *parseState) error {
		set(st, v)
		return nil
	}
}

func stepDelimChar(c byte) parseStep {
	return func(st *parseState) error {
		if err := assertChar(c, st.in, st.pos, st.hi); err != nil {
			return err
		}
		st.pos++
		return nil
	}
}

func stepDelimString(s string) parseStep {
	return func(st *parseState) error {
		pos, err := assertString(s, st.in, st.pos, st.hi)
		if err != nil {
			return err
		}
		st.pos = pos
		return nil
	}
}

// emitParse lowers an op list into the specialized step list. The
// prelude defaults only the slots no op writes; slots whose default is
// the zero value ride on the fresh parse state.
func emitParse(ops []Op, delimiters []string) []parseStep {
	slots := parseSlots(ops)
	steps := make([]parseStep, 0, len(ops)+4)

	if slots&slotDay == 0 {
		steps = append(steps, stepDefault(setDay, 1))
	}
	if slots&slotMonth == 0 {
		steps = append(steps, stepDefault(setMonth, 1))
	}
	if slots&slotYear == 0 {
		steps = append(steps, stepDefault(setYear, 1970))
	}
	if slots&slotEra == 0 {
		steps = append(steps, stepDefault(setEra, 1))
	}

	for _, op := range ops {
		steps = append(steps, emitParseOp(op, delimiters))
	}
	return steps
}

// emitParseOp chooses the specialized step for one op. All opcode
// dispatch happens here, once, at compile time.
func emitParseOp(op Op, delimiters []string) parseStep {
	switch op {
	case OpEra:
		return eraOp
	case OpYearOneDigit:
		return stepFixedDigits(1, setYear)
	case OpYearTwoDigits:
		return stepFixedDigits(2, setYearAdjusted)
	case OpYearFourDigits:
		return yearFourOp
	case OpYearGreedy:
		return yearGreedyOp
	case OpMonthOneDigit:
		return stepFixedDigits(1, setMonth)
	case OpMonthTwoDigits:
		return stepFixedDigits(2, setMonth)
	case OpMonthGreedy:
		return stepGreedyDigits(setMonth)
	case OpMonthShortName, OpMonthLongName:
		return monthNameOp
	case OpDayOneDigit:
		return stepFixedDigits(1, setDay)
	case OpDayTwoDigits:
		return stepFixedDigits(2, setDay)
	case OpDayGreedy:
		return stepGreedyDigits(setDay)
	case OpDayNameShort, OpDayNameLong:
		return weekdayNameOp
	case OpDayOfWeek:
		return dayOfWeekOp
	case OpAMPM:
		return ampmOp
	case OpHour24OneDigit:
		return stepFixedDigits(1, setHour)
	case OpHour24TwoDigits:
		return stepFixedDigits(2, setHour)
	case OpHour24Greedy:
		return stepGreedyDigits(setHour)
	case OpHour24OneDigitOneBased:
		return stepFixedDigits(1, setHourSub1)
	case OpHour24TwoDigitsOneBased:
		return stepFixedDigits(2, setHourSub1)
	case OpHour24GreedyOneBased:
		return stepGreedyDigits(setHourSub1)
	case OpHour12OneDigit:
		return withHourPromotion(stepFixedDigits(1, setHour))
	case OpHour12TwoDigits:
		return withHourPromotion(stepFixedDigits(2, setHour))
	case OpHour12Greedy:
		return withHourPromotion(stepGreedyDigits(setHour))
	case OpHour12OneDigitOneBased:
		return withHourPromotion(stepFixedDigits(1, setHourMod12))
	case OpHour12TwoDigitsOneBased:
		return withHourPromotion(stepFixedDigits(2, setHourMod12))
	case OpHour12GreedyOneBased:
		return withHourPromotion(stepGreedyDigits(setHourMod12))
	case OpMinuteOneDigit:
		return stepFixedDigits(1, setMinute)
	case OpMinuteTwoDigits:
		return stepFixedDigits(2, setMinute)
	case OpMinuteGreedy:
		return stepGreedyDigits(setMinute)
	case OpSecondOneDigit:
		return stepFixedDigits(1, setSecond)
	case OpSecondTwoDigits:
		return stepFixedDigits(2, setSecond)
	case OpSecondGreedy:
		return stepGreedyDigits(setSecond)
	case OpMillisOneDigit:
		return stepFixedDigits(1, setMillis)
	case OpMillisThreeDigits:
		return stepFixedDigits(3, setMillis)
	case OpMillisGreedy:
		return stepGreedyDigits(setMillis)
	case OpTimeZoneShort, OpTimeZoneGMT, OpTimeZoneLong, OpTimeZoneRFC822,
		OpTimeZoneISO1, OpTimeZoneISO2, OpTimeZoneISO3:
		return zoneOp
	}
	assert(op.IsDelimiter(), "unhandled op %s", op)
	d := delimiters[op.DelimiterIndex()]
	if len(d) == 1 {
		return stepDelimChar(d[0])
	}
	return stepDelimString(d)
}

// formatState is the frame of one format call: the materialized calendar
// fields plus the output collaborators.
type formatState struct {
	year      int
	month     int
	day       int
	hour      int
	minute    int
	second    int
	millis    int
	dayOfWeek int
	leap      bool

	loc  *locale.Locale
	zone string
	sink Sink
}

// formatStep is one specialized unit of format work.
type formatStep func(f *formatState)

// fillFormatState materializes exactly the fields in the attribute set,
// each with one calendar call, in dependency order.
func fillFormatState(attrs int, millis int64, f *formatState) {
	if attrs&faYear != 0 {
		f.year = calendar.YearOf(millis)
	}
	if attrs&faLeap != 0 {
		f.leap = calendar.IsLeapYear(f.year)
	}
	if attrs&faMonth != 0 {
		f.month = calendar.MonthOfYear(millis, f.year, f.leap)
	}
	if attrs&faDay != 0 {
		f.day = calendar.DayOfMonth(millis, f.year, f.month, f.leap)
	}
	if attrs&faHour != 0 {
		f.hour = calendar.HourOfDay(millis)
	}
	if attrs&faMinute != 0 {
		f.minute = calendar.MinuteOfHour(millis)
	}
	if attrs&faSecond != 0 {
		f.second = calendar.SecondOfMinute(millis)
	}
	if attrs&faMillis != 0 {
		f.millis = calendar.MillisOfSecond(millis)
	}
	if attrs&faDayOfWeek != 0 {
		f.dayOfWeek = calendar.DayOfWeekSundayFirst(millis)
	}
}

// emitFormat lowers an op list into the specialized format step list.
func emitFormat(ops []Op, delimiters []string) []formatStep {
	steps := make([]formatStep, 0, len(ops))
	for _, op := range ops {
		steps = append(steps, emitFormatOp(op, delimiters))
	}
	return steps
}

func emitFormatOp(op Op, delimiters []string) formatStep {
	switch op {
	case OpAMPM:
		return func(f *formatState) { appendAmPm(f.sink, f.hour, f.loc) }
	case OpMillisOneDigit, OpMillisGreedy:
		return func(f *formatState) { f.sink.PutInt(f.millis) }
	case OpMillisThreeDigits:
		return func(f *formatState) { pad3(f.sink, f.millis) }
	case OpSecondOneDigit, OpSecondGreedy:
		return func(f *formatState) { f.sink.PutInt(f.second) }
	case OpSecondTwoDigits:
		return func(f *formatState) { pad2(f.sink, f.second) }
	case OpMinuteOneDigit, OpMinuteGreedy:
		return func(f *formatState) { f.sink.PutInt(f.minute) }
	case OpMinuteTwoDigits:
		return func(f *formatState) { pad2(f.sink, f.minute) }
	case OpHour12OneDigit, OpHour12Greedy:
		return func(f *formatState) { appendHour12(f.sink, f.hour) }
	case OpHour12TwoDigits:
		return func(f *formatState) { appendHour12Padded(f.sink, f.hour) }
	case OpHour12OneDigitOneBased, OpHour12GreedyOneBased:
		return func(f *formatState) { appendHour121(f.sink, f.hour) }
	case OpHour12TwoDigitsOneBased:
		return func(f *formatState) { appendHour121Padded(f.sink, f.hour) }
	case OpHour24OneDigit, OpHour24Greedy:
		return func(f *formatState) { f.sink.PutInt(f.hour) }
	case OpHour24TwoDigits:
		return func(f *formatState) { pad2(f.sink, f.hour) }
	case OpHour24OneDigitOneBased, OpHour24GreedyOneBased:
		return func(f *formatState) { f.sink.PutInt(f.hour + 1) }
	case OpHour24TwoDigitsOneBased:
		return func(f *formatState) { pad2(f.sink, f.hour+1) }
	case OpDayOneDigit, OpDayGreedy:
		return func(f *formatState) { f.sink.PutInt(f.day) }
	case OpDayTwoDigits:
		return func(f *formatState) { pad2(f.sink, f.day) }
	case OpDayNameLong:
		return func(f *formatState) { f.sink.PutString(f.loc.Weekday(f.dayOfWeek)) }
	case OpDayNameShort:
		return func(f *formatState) { f.sink.PutString(f.loc.ShortWeekday(f.dayOfWeek)) }
	case OpDayOfWeek:
		return func(f *formatState) { f.sink.PutInt(f.dayOfWeek) }
	case OpMonthOneDigit, OpMonthGreedy:
		return func(f *formatState) { f.sink.PutInt(f.month) }
	case OpMonthTwoDigits:
		return func(f *formatState) { pad2(f.sink, f.month) }
	case OpMonthShortName:
		return func(f *formatState) { f.sink.PutString(f.loc.ShortMonth(f.month - 1)) }
	case OpMonthLongName:
		return func(f *formatState) { f.sink.PutString(f.loc.Month(f.month - 1)) }
	case OpYearOneDigit, OpYearGreedy:
		return func(f *formatState) { f.sink.PutInt(f.year) }
	case OpYearTwoDigits:
		return func(f *formatState) { pad2(f.sink, f.year%100) }
	case OpYearFourDigits:
		return func(f *formatState) { pad4(f.sink, f.year) }
	case OpEra:
		return func(f *formatState) { appendEra(f.sink, f.year, f.loc) }
	case OpTimeZoneShort, OpTimeZoneGMT, OpTimeZoneLong, OpTimeZoneRFC822,
		OpTimeZoneISO1, OpTimeZoneISO2, OpTimeZoneISO3:
		return func(f *formatState) { f.sink.PutString(f.zone) }
	}
	assert(op.IsDelimiter(), "unhandled op %s", op)
	d := delimiters[op.DelimiterIndex()]
	if len(d) == 1 {
		c := d[0]
		return func(f *formatState) { f.sink.PutByte(c) }
	}
	return func(f *formatState) { f.sink.PutString(d) }
}
