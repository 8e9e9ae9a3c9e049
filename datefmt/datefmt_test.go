package datefmt

import (
	"errors"
	"sync"
	"testing"

	"github.com/ardier/questdb/calendar"
	"github.com/ardier/questdb/locale"
)

func compileBoth(t *testing.T, pattern string) (generic, compiled Format) {
	t.Helper()
	c := NewCompiler()
	return c.Compile(pattern, true), c.Compile(pattern, false)
}

func mustParse(t *testing.T, f Format, in string) int64 {
	t.Helper()
	ms, err := f.Parse(in, 0, len(in), locale.EnUS)
	if err != nil {
		t.Fatalf("Parse(%q): %v", in, err)
	}
	return ms
}

func render(f Format, millis int64, zone string) string {
	var sink StringSink
	f.Format(millis, locale.EnUS, zone, &sink)
	return sink.String()
}

func TestScenarios(t *testing.T) {
	SetReferenceYear(2017)

	type testrow struct {
		Pattern string
		Input   string
		Millis  int64

		// Zone is the label handed to Format; Output the expected
		// rendering of Millis, empty when it equals Input.
		Zone   string
		Output string
	}

	data := []testrow{
		testrow{
			Pattern: "yyyy-MM-ddTHH:mm:ss.SSSz",
			Input:   "2017-03-27T15:04:05.123UTC",
			Millis:  1490627045123,
			Zone:    "UTC",
		},
		testrow{
			Pattern: "d/M/y",
			Input:   "7/4/21",
			Millis:  1617753600000,
			Output:  "7/4/2021",
		},
		testrow{
			Pattern: "EEE, d MMM yyyy HH:mm:ss Z",
			Input:   "Mon, 27 Mar 2017 15:04:05 +0100",
			Millis:  1490623445000,
			Zone:    "GMT",
			Output:  "Mon, 27 Mar 2017 14:04:05 GMT",
		},
		testrow{
			Pattern: "h:mma",
			Input:   "12:00AM",
			Millis:  0,
		},
		testrow{
			Pattern: "h:mma",
			Input:   "12:00PM",
			Millis:  43200000,
		},
		testrow{
			Pattern: "h:mma",
			Input:   "1:05PM",
			Millis:  47100000,
		},
		testrow{
			Pattern: "yyyyMMdd",
			Input:   "20170327",
			Millis:  1490572800000,
		},
		testrow{
			Pattern: "kk",
			Input:   "24",
			Millis:  82800000,
		},
		testrow{
			Pattern: "kk",
			Input:   "01",
			Millis:  0,
		},
		testrow{
			Pattern: "K:mm a",
			Input:   "0:30 AM",
			Millis:  1800000,
		},
	}

	for i, row := range data {
		g, c := compileBoth(t, row.Pattern)
		for _, f := range []Format{g, c} {
			ms, err := f.Parse(row.Input, 0, len(row.Input), locale.EnUS)
			if err != nil {
				t.Errorf("%s/%03d: Parse(%q): %v", t.Name(), i, row.Input, err)
				continue
			}
			if ms != row.Millis {
				t.Errorf("%s/%03d: Parse(%q) = %d, want %d", t.Name(), i, row.Input, ms, row.Millis)
			}

			expected := row.Output
			if expected == "" {
				expected = row.Input
			}
			if got := render(f, row.Millis, row.Zone); got != expected {
				t.Errorf("%s/%03d: Format(%d) = %q, want %q", t.Name(), i, row.Millis, got, expected)
			}
		}
	}
}

func TestRoundTrip(t *testing.T) {
	SetReferenceYear(2017)

	patterns := []string{
		"yyyy-MM-ddTHH:mm:ss.SSSz",
		"yyyy-MM-dd HH:mm:ss.SSS",
		"d/M/y H:m:s.S",
		"yyyyMMddHHmmssSSS",
	}
	instants := []int64{
		0,
		1,
		-1,
		1490627045123,
		1617753600000,
		-446444669500,
	}

	for _, pattern := range patterns {
		g, c := compileBoth(t, pattern)
		for _, ms := range instants {
			text := render(c, ms, "UTC")
			if gotG := render(g, ms, "UTC"); gotG != text {
				t.Errorf("%q: generic format %q != compiled %q", pattern, gotG, text)
			}
			for _, f := range []Format{g, c} {
				back, err := f.Parse(text, 0, len(text), locale.EnUS)
				if err != nil {
					t.Errorf("%q: Parse(%q): %v", pattern, text, err)
					continue
				}
				if back != ms {
					t.Errorf("%q: Parse(Format(%d)) = %d via %q", pattern, ms, back, text)
				}
			}
		}
	}
}

func TestEmptyPattern(t *testing.T) {
	g, c := compileBoth(t, "")
	for _, f := range []Format{g, c} {
		if ms := mustParse(t, f, ""); ms != 0 {
			t.Errorf("empty pattern Parse(\"\") = %d, want 0", ms)
		}
		if got := render(f, 1490627045123, "UTC"); got != "" {
			t.Errorf("empty pattern Format wrote %q, want nothing", got)
		}
	}
}

func TestNegativeYear(t *testing.T) {
	g, c := compileBoth(t, "yyyy")
	want := calendar.DateMillis(-1, 1, 1)
	for _, f := range []Format{g, c} {
		ms := mustParse(t, f, "-0001")
		if ms != want {
			t.Errorf("Parse(-0001) = %d, want %d", ms, want)
		}
		if calendar.YearOf(ms) != -1 {
			t.Errorf("YearOf(Parse(-0001)) = %d, want -1", calendar.YearOf(ms))
		}
		if got := render(f, ms, ""); got != "-0001" {
			t.Errorf("Format(%d) = %q, want -0001", ms, got)
		}
	}
}

func TestHour12WithoutAmPm(t *testing.T) {
	// Without an AM/PM symbol the half-day hour behaves like a 24-hour
	// value: 3 means 03:00 and 12 means midnight.
	g, c := compileBoth(t, "h")
	for _, f := range []Format{g, c} {
		if ms := mustParse(t, f, "3"); ms != 3*calendar.HourMillis {
			t.Errorf("Parse(3) = %d, want 3h", ms)
		}
		if ms := mustParse(t, f, "12"); ms != 0 {
			t.Errorf("Parse(12) = %d, want midnight", ms)
		}
	}
}

func TestTwoDigitYearWindow(t *testing.T) {
	SetReferenceYear(2017)
	g, c := compileBoth(t, "yy")
	for _, f := range []Format{g, c} {
		// The window spans 20 years forward and 80 back from 2017.
		if ms := mustParse(t, f, "36"); calendar.YearOf(ms) != 2036 {
			t.Errorf("Parse(36) landed in %d, want 2036", calendar.YearOf(ms))
		}
		if ms := mustParse(t, f, "37"); calendar.YearOf(ms) != 1937 {
			t.Errorf("Parse(37) landed in %d, want 1937", calendar.YearOf(ms))
		}
		if ms := mustParse(t, f, "99"); calendar.YearOf(ms) != 1999 {
			t.Errorf("Parse(99) landed in %d, want 1999", calendar.YearOf(ms))
		}
	}

	// The greedy year applies the same pivot to two-digit reads only.
	g, c = compileBoth(t, "y")
	for _, f := range []Format{g, c} {
		if ms := mustParse(t, f, "21"); calendar.YearOf(ms) != 2021 {
			t.Errorf("greedy Parse(21) landed in %d, want 2021", calendar.YearOf(ms))
		}
		if ms := mustParse(t, f, "2021"); calendar.YearOf(ms) != 2021 {
			t.Errorf("greedy Parse(2021) landed in %d, want 2021", calendar.YearOf(ms))
		}
		if ms := mustParse(t, f, "5"); calendar.YearOf(ms) != 5 {
			t.Errorf("greedy Parse(5) landed in %d, want 5", calendar.YearOf(ms))
		}
	}
}

func TestEra(t *testing.T) {
	g, c := compileBoth(t, "G yyyy")
	for _, f := range []Format{g, c} {
		ms := mustParse(t, f, "AD 2017")
		if calendar.YearOf(ms) != 2017 {
			t.Errorf("Parse(AD 2017) landed in %d", calendar.YearOf(ms))
		}
		if got := render(f, ms, ""); got != "AD 2017" {
			t.Errorf("Format = %q, want AD 2017", got)
		}
		// BC year 44 is astronomical year -43.
		ms = mustParse(t, f, "BC 0044")
		if calendar.YearOf(ms) != -43 {
			t.Errorf("Parse(BC 0044) landed in %d, want -43", calendar.YearOf(ms))
		}
	}
}

func TestParseErrors(t *testing.T) {
	type testrow struct {
		Pattern string
		Input   string
		Err     error
		Pos     int
	}

	data := []testrow{
		// Greedy field at end of input: empty read.
		testrow{"y", "", ErrBadDigit, 0},
		testrow{"HH", "1", ErrShortInput, 1},
		testrow{"HH", "xx", ErrBadDigit, 0},
		testrow{"HH:mm", "12.30", ErrDelimiterMismatch, 2},
		testrow{"HH", "12x", ErrTailGarbage, 2},
		testrow{"MMM", "Xan", ErrNameLookup, 0},
		testrow{"h:mma", "1:05XX", ErrNameLookup, 4},
		testrow{"EEE, d MMM yyyy HH:mm:ss Z", "Mon; 27 Mar 2017 15:04:05 +0100", ErrDelimiterMismatch, 3},
		testrow{"z", "Mars", ErrNameLookup, 0},
	}

	for i, row := range data {
		g, c := compileBoth(t, row.Pattern)
		for _, f := range []Format{g, c} {
			_, err := f.Parse(row.Input, 0, len(row.Input), locale.EnUS)
			if err == nil {
				t.Errorf("%s/%03d: Parse(%q) succeeded, want %v", t.Name(), i, row.Input, row.Err)
				continue
			}
			if !errors.Is(err, row.Err) {
				t.Errorf("%s/%03d: Parse(%q) = %v, want %v", t.Name(), i, row.Input, err, row.Err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("%s/%03d: error %v carries no position", t.Name(), i, err)
			} else if pe.Pos != row.Pos {
				t.Errorf("%s/%03d: error position %d, want %d", t.Name(), i, pe.Pos, row.Pos)
			}
		}
	}
}

func TestOutOfRange(t *testing.T) {
	type testrow struct {
		Pattern string
		Input   string
	}

	data := []testrow{
		testrow{"yyyy-MM-dd", "2017-02-30"},
		testrow{"yyyy-MM-dd", "2017-13-01"},
		testrow{"HH:mm", "25:00"},
		testrow{"HH:mm", "12:61"},
		testrow{"kk", "25"},
	}

	for i, row := range data {
		g, c := compileBoth(t, row.Pattern)
		for _, f := range []Format{g, c} {
			_, err := f.Parse(row.Input, 0, len(row.Input), locale.EnUS)
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("%s/%03d: Parse(%q) = %v, want %v", t.Name(), i, row.Input, err, ErrOutOfRange)
			}
		}
	}
}

func TestLeapDay(t *testing.T) {
	g, c := compileBoth(t, "yyyy-MM-dd")
	for _, f := range []Format{g, c} {
		if ms := mustParse(t, f, "2016-02-29"); calendar.DayOfMonth(ms, 2016, 2, true) != 29 {
			t.Error("2016-02-29 did not survive the round trip")
		}
		if _, err := f.Parse("2017-02-29", 0, 10, locale.EnUS); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("2017-02-29 parsed, want %v", ErrOutOfRange)
		}
	}
}

func TestZoneOffsets(t *testing.T) {
	g, c := compileBoth(t, "HH:mm Z")
	type testrow struct {
		Input  string
		Millis int64
	}

	data := []testrow{
		testrow{"12:00 +0000", 12 * calendar.HourMillis},
		testrow{"12:00 +0130", 12*calendar.HourMillis - 90*calendar.MinuteMillis},
		testrow{"12:00 -05:00", 17 * calendar.HourMillis},
		testrow{"12:00 +01", 11 * calendar.HourMillis},
		testrow{"12:00 EST", 17 * calendar.HourMillis},
		testrow{"12:00 Z", 12 * calendar.HourMillis},
	}

	for i, row := range data {
		for _, f := range []Format{g, c} {
			ms, err := f.Parse(row.Input, 0, len(row.Input), locale.EnUS)
			if err != nil {
				t.Errorf("%s/%03d: Parse(%q): %v", t.Name(), i, row.Input, err)
				continue
			}
			if ms != row.Millis {
				t.Errorf("%s/%03d: Parse(%q) = %d, want %d", t.Name(), i, row.Input, ms, row.Millis)
			}
		}
	}
}

func TestCompileRange(t *testing.T) {
	// Compile a pattern embedded in a larger string.
	pattern := "xx[yyyy-MM-dd]xx"
	c := NewCompiler().CompileRange(pattern, 3, 13, false)
	if ms := mustParse(t, c, "2017-03-27"); ms != 1490572800000 {
		t.Errorf("CompileRange parse = %d, want 1490572800000", ms)
	}
}

func TestParseRange(t *testing.T) {
	// Parse a window of a larger input.
	g, c := compileBoth(t, "yyyy-MM-dd")
	in := ">>2017-03-27<<"
	for _, f := range []Format{g, c} {
		ms, err := f.Parse(in, 2, 12, locale.EnUS)
		if err != nil {
			t.Fatalf("Parse window: %v", err)
		}
		if ms != 1490572800000 {
			t.Errorf("Parse window = %d, want 1490572800000", ms)
		}
	}
}

func TestCompilerReuse(t *testing.T) {
	// One compiler, many compilations; earlier formats must not observe
	// later scratch state.
	c := NewCompiler()
	f1 := c.Compile("yyyy-MM-dd", false)
	f2 := c.Compile("HH:mm:ss", false)

	if ms := mustParse(t, f1, "2017-03-27"); ms != 1490572800000 {
		t.Errorf("first format broken after reuse: %d", ms)
	}
	if ms := mustParse(t, f2, "15:04:05"); ms != 54245000 {
		t.Errorf("second format broken: %d", ms)
	}
}

func TestConcurrentUse(t *testing.T) {
	// A compiled format is immutable; hammer it from several goroutines.
	f := NewCompiler().Compile("yyyy-MM-ddTHH:mm:ss.SSSz", false)

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				ms, err := f.Parse("2017-03-27T15:04:05.123UTC", 0, 26, locale.EnUS)
				if err != nil || ms != 1490627045123 {
					t.Errorf("concurrent parse = %d, %v", ms, err)
					return
				}
				if got := render(f, ms, "UTC"); got != "2017-03-27T15:04:05.123UTC" {
					t.Errorf("concurrent format = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}
