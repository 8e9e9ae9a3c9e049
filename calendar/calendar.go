// Package calendar implements civil-calendar arithmetic over instants
// expressed as milliseconds since the Unix epoch, UTC.
//
// The calendar is proleptic Gregorian with astronomical year numbering:
// year 0 exists and is 1 BC, year -1 is 2 BC, and so on. All functions
// are valid for negative instants and negative years.
//
// Field decomposition is split into one function per field, with the
// year/leap/month dependencies passed in explicitly. Callers that need
// several fields compute each one exactly once and thread the results
// through; this is what the format emitter in package datefmt does.
package calendar

// Millisecond spans of the fixed-length time units.
const (
	SecondMillis = 1000
	MinuteMillis = 60 * SecondMillis
	HourMillis   = 60 * MinuteMillis
	DayMillis    = 24 * HourMillis
)

var daysPerMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether the given astronomical year is a leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month (1..12).
func DaysInMonth(month int, leap bool) int {
	if month == 2 && leap {
		return 29
	}
	return daysPerMonth[month-1]
}

// EpochDay returns the day number of the given civil date, with
// 1970-01-01 as day zero. Dates before the epoch yield negative values.
func EpochDay(year, month, day int) int64 {
	y := int64(year)
	if month <= 2 {
		y--
	}
	era := y / 400
	if y < 0 && y%400 != 0 {
		era--
	}
	yoe := y - era*400
	mp := int64(month+9) % 12
	doy := (153*mp+2)/5 + int64(day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// civilFromDays is the inverse of EpochDay.
func civilFromDays(z int64) (year, month, day int) {
	z += 719468
	era := z / 146097
	if z < 0 && z%146097 != 0 {
		era--
	}
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	d := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return int(y), int(m), int(d)
}

// DateMillis returns the instant at midnight UTC of the given civil date.
func DateMillis(year, month, day int) int64 {
	return EpochDay(year, month, day) * DayMillis
}

// YearOf returns the civil year containing the instant.
func YearOf(millis int64) int {
	y, _, _ := civilFromDays(floorDiv(millis, DayMillis))
	return y
}

// MonthOfYear returns the month (1..12) containing the instant. The year
// and its leap flag must come from YearOf and IsLeapYear for the same
// instant.
func MonthOfYear(millis int64, year int, leap bool) int {
	doy := int(floorDiv(millis, DayMillis) - EpochDay(year, 1, 1))
	month := 1
	for doy >= DaysInMonth(month, leap) {
		doy -= DaysInMonth(month, leap)
		month++
	}
	return month
}

// DayOfMonth returns the day of the month (1..31) containing the instant.
func DayOfMonth(millis int64, year, month int, leap bool) int {
	return int(floorDiv(millis, DayMillis)-EpochDay(year, month, 1)) + 1
}

// HourOfDay returns the hour (0..23) of the instant.
func HourOfDay(millis int64) int {
	return int(floorMod(millis, DayMillis) / HourMillis)
}

// MinuteOfHour returns the minute (0..59) of the instant.
func MinuteOfHour(millis int64) int {
	return int(floorMod(millis, HourMillis) / MinuteMillis)
}

// SecondOfMinute returns the second (0..59) of the instant.
func SecondOfMinute(millis int64) int {
	return int(floorMod(millis, MinuteMillis) / SecondMillis)
}

// MillisOfSecond returns the millisecond (0..999) of the instant.
func MillisOfSecond(millis int64) int {
	return int(floorMod(millis, SecondMillis))
}

// DayOfWeekSundayFirst returns the day of the week of the instant, with
// Sunday as 1 and Saturday as 7.
func DayOfWeekSundayFirst(millis int64) int {
	// 1970-01-01 was a Thursday.
	return int(floorMod(floorDiv(millis, DayMillis)+4, 7)) + 1
}

// floorDiv rounds the quotient toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// floorMod returns a non-negative remainder for positive b.
func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
