package datefmt

import "github.com/ardier/questdb/locale"

// Format is a compiled date/time pattern. Implementations are immutable
// and safe to share across goroutines; both operations take all state as
// arguments.
type Format interface {
	// Parse reads in[lo:hi] and returns the instant it denotes, in UTC
	// milliseconds since the Unix epoch. Errors carry the offending
	// byte position.
	Parse(in string, lo, hi int, loc *locale.Locale) (int64, error)

	// Format renders the instant into sink. zoneLabel is written
	// verbatim wherever the pattern has a time-zone symbol; the instant
	// itself is always interpreted as UTC.
	Format(millis int64, loc *locale.Locale, zoneLabel string, sink Sink)
}

// compiledFormat is the specialized executor: two flat step lists with
// all opcode dispatch already resolved.
type compiledFormat struct {
	attrs       int
	parseSteps  []parseStep
	formatSteps []formatStep
}

var _ Format = (*compiledFormat)(nil)

func (cf *compiledFormat) Parse(in string, lo, hi int, loc *locale.Locale) (int64, error) {
	st := parseState{
		in:       in,
		pos:      lo,
		hi:       hi,
		loc:      loc,
		timezone: -1,
		offset:   offsetSentinel,
		hourType: Hour24,
	}
	for _, step := range cf.parseSteps {
		if err := step(&st); err != nil {
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

func (cf *compiledFormat) Format(millis int64, loc *locale.Locale, zoneLabel string, sink Sink) {
	f := formatState{loc: loc, zone: zoneLabel, sink: sink}
	fillFormatState(cf.attrs, millis, &f)
	for _, step := range cf.formatSteps {
		step(&f)
	}
}
