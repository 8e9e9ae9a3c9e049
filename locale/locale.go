// Package locale provides the name tables a date format needs: month,
// weekday, era and AM/PM names for rendering, and longest-prefix matchers
// over the same tables for parsing. Time-zone abbreviations map to fixed
// offsets; zone rule evaluation is out of scope.
//
// A Locale is immutable after construction and safe to share across
// goroutines.
package locale

// Locale is one set of name tables.
type Locale struct {
	// Months and ShortMonths are indexed 0..11, January first.
	Months      [12]string
	ShortMonths [12]string

	// Weekdays and ShortWeekdays are ordered Sunday first. The Weekday
	// and ShortWeekday accessors take the conventional 1-based index
	// (1 = Sunday .. 7 = Saturday).
	Weekdays      [7]string
	ShortWeekdays [7]string

	// Eras is {BC, AD}.
	Eras [2]string

	// AmPm is {AM, PM}.
	AmPm [2]string

	// ZoneNames and ZoneOffsets are parallel: ZoneOffsets[i] is the
	// fixed offset, in milliseconds east of UTC, of ZoneNames[i].
	ZoneNames   []string
	ZoneOffsets []int64
}

// EnUS is the default locale.
var EnUS = &Locale{
	Months: [12]string{
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	ShortMonths: [12]string{
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	Weekdays: [7]string{
		"Sunday", "Monday", "Tuesday", "Wednesday",
		"Thursday", "Friday", "Saturday",
	},
	ShortWeekdays: [7]string{
		"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat",
	},
	Eras: [2]string{"BC", "AD"},
	AmPm: [2]string{"AM", "PM"},
	ZoneNames: []string{
		"UTC", "UT", "GMT", "Z",
		"EST", "EDT", "CST", "CDT", "MST", "MDT", "PST", "PDT",
		"CET", "CEST",
	},
	ZoneOffsets: []int64{
		0, 0, 0, 0,
		-5 * hourMillis, -4 * hourMillis, -6 * hourMillis, -5 * hourMillis,
		-7 * hourMillis, -6 * hourMillis, -8 * hourMillis, -7 * hourMillis,
		1 * hourMillis, 2 * hourMillis,
	},
}

const hourMillis = 60 * 60 * 1000

// Month returns the long month name for a 0-based month index.
func (l *Locale) Month(i int) string { return l.Months[i] }

// ShortMonth returns the short month name for a 0-based month index.
func (l *Locale) ShortMonth(i int) string { return l.ShortMonths[i] }

// Weekday returns the long weekday name; i is 1-based, Sunday first.
func (l *Locale) Weekday(i int) string { return l.Weekdays[i-1] }

// ShortWeekday returns the short weekday name; i is 1-based, Sunday first.
func (l *Locale) ShortWeekday(i int) string { return l.ShortWeekdays[i-1] }

// Era returns the era name; 0 is BC, 1 is AD.
func (l *Locale) Era(i int) string { return l.Eras[i] }

// AmPmName returns the day-half name; 0 is AM, 1 is PM.
func (l *Locale) AmPmName(i int) string { return l.AmPm[i] }

// ZoneName returns the zone abbreviation at the given table index.
func (l *Locale) ZoneName(i int) string { return l.ZoneNames[i] }

// ZoneOffset returns the fixed offset, in milliseconds, of the zone at
// the given table index.
func (l *Locale) ZoneOffset(i int) int64 { return l.ZoneOffsets[i] }

// MatchMonth matches the longest month name, long or short, at in[pos:hi].
// It returns the 0-based month index and the number of bytes consumed.
func (l *Locale) MatchMonth(in string, pos, hi int) (index, n int, ok bool) {
	index, n = matchTables(in, pos, hi, l.Months[:], l.ShortMonths[:])
	return index, n, n > 0
}

// MatchWeekday matches the longest weekday name, long or short, at
// in[pos:hi]. It returns the 0-based index (Sunday first) and the number
// of bytes consumed.
func (l *Locale) MatchWeekday(in string, pos, hi int) (index, n int, ok bool) {
	index, n = matchTables(in, pos, hi, l.Weekdays[:], l.ShortWeekdays[:])
	return index, n, n > 0
}

// MatchAMPM matches an AM/PM name at in[pos:hi]; index 0 is AM, 1 is PM.
func (l *Locale) MatchAMPM(in string, pos, hi int) (index, n int, ok bool) {
	index, n = matchTables(in, pos, hi, l.AmPm[:])
	return index, n, n > 0
}

// MatchEra matches an era name at in[pos:hi]; index 0 is BC, 1 is AD.
func (l *Locale) MatchEra(in string, pos, hi int) (index, n int, ok bool) {
	index, n = matchTables(in, pos, hi, l.Eras[:])
	return index, n, n > 0
}

// MatchZone matches the longest zone abbreviation at in[pos:hi] and
// returns its table index and the number of bytes consumed.
func (l *Locale) MatchZone(in string, pos, hi int) (index, n int, ok bool) {
	index, n = matchTables(in, pos, hi, l.ZoneNames)
	return index, n, n > 0
}

// matchTables finds the longest name, across all tables, that is a prefix
// of in[pos:hi]. Ties between tables go to the earlier table. A miss is
// reported as a zero length.
func matchTables(in string, pos, hi int, tables ...[]string) (index, n int) {
	for _, names := range tables {
		for i, name := range names {
			if len(name) > n && hasPrefix(in, pos, hi, name) {
				index, n = i, len(name)
			}
		}
	}
	return index, n
}

func hasPrefix(in string, pos, hi int, name string) bool {
	if hi-pos < len(name) {
		return false
	}
	return in[pos:pos+len(name)] == name
}
