package datefmt

// symbolOps is the process-wide symbol table: every pattern symbol the
// tokenizer recognizes, mapped to its opcode. It is built once at init
// and never mutated afterwards.
//
// E is the short weekday name and EE the long one. EEE is accepted as a
// second spelling of the short name so that RFC-1123-style patterns
// ("EEE, d MMM yyyy ...") resolve to a single weekday op instead of
// splitting into EE+E under longest-match.
var symbolOps = map[string]Op{
	"G":    OpEra,
	"y":    OpYearOneDigit,
	"yy":   OpYearTwoDigits,
	"yyyy": OpYearFourDigits,
	"M":    OpMonthOneDigit,
	"MM":   OpMonthTwoDigits,
	"MMM":  OpMonthShortName,
	"MMMM": OpMonthLongName,
	"d":    OpDayOneDigit,
	"dd":   OpDayTwoDigits,
	"E":    OpDayNameShort,
	"EE":   OpDayNameLong,
	"EEE":  OpDayNameShort,
	"u":    OpDayOfWeek,
	"a":    OpAMPM,
	"H":    OpHour24OneDigit,
	"HH":   OpHour24TwoDigits,
	"k":    OpHour24OneDigitOneBased,
	"kk":   OpHour24TwoDigitsOneBased,
	"K":    OpHour12OneDigit,
	"KK":   OpHour12TwoDigits,
	"h":    OpHour12OneDigitOneBased,
	"hh":   OpHour12TwoDigitsOneBased,
	"m":    OpMinuteOneDigit,
	"mm":   OpMinuteTwoDigits,
	"s":    OpSecondOneDigit,
	"ss":   OpSecondTwoDigits,
	"S":    OpMillisOneDigit,
	"SSS":  OpMillisThreeDigits,
	"z":    OpTimeZoneShort,
	"zz":   OpTimeZoneGMT,
	"zzz":  OpTimeZoneLong,
	"Z":    OpTimeZoneRFC822,
	"x":    OpTimeZoneISO1,
	"xx":   OpTimeZoneISO2,
	"xxx":  OpTimeZoneISO3,
}

// maxSymbolLen is the length of the longest registered symbol.
var maxSymbolLen int

func init() {
	for sym := range symbolOps {
		if len(sym) > maxSymbolLen {
			maxSymbolLen = len(sym)
		}
	}
}
