package datefmt

import "fmt"

// Op is a single unit of work in a compiled pattern. Positive values are
// field opcodes; a negative value -k refers to delimiter k-1 in the
// pattern's delimiter table.
type Op int

// Field opcodes. Greedy variants are never produced by symbol lookup;
// they are introduced by greedy promotion in the op-list builder.
const (
	OpEra Op = iota + 1
	OpYearOneDigit
	OpYearTwoDigits
	OpYearFourDigits
	OpMonthOneDigit
	OpMonthTwoDigits
	OpMonthShortName
	OpMonthLongName
	OpDayOneDigit
	OpDayTwoDigits
	OpDayNameShort
	OpDayNameLong
	OpDayOfWeek
	OpAMPM
	OpHour24OneDigit
	OpHour24TwoDigits
	OpHour24OneDigitOneBased
	OpHour24TwoDigitsOneBased
	OpHour12OneDigit
	OpHour12TwoDigits
	OpHour12OneDigitOneBased
	OpHour12TwoDigitsOneBased
	OpMinuteOneDigit
	OpMinuteTwoDigits
	OpSecondOneDigit
	OpSecondTwoDigits
	OpMillisOneDigit
	OpMillisThreeDigits
	OpTimeZoneShort
	OpTimeZoneGMT
	OpTimeZoneLong
	OpTimeZoneRFC822
	OpTimeZoneISO1
	OpTimeZoneISO2
	OpTimeZoneISO3
)

// Greedy opcodes: variable-width digit runs that read up to the next
// non-digit or the end of input.
const (
	OpYearGreedy Op = iota + 128
	OpMonthGreedy
	OpDayGreedy
	OpHour24Greedy
	OpHour24GreedyOneBased
	OpHour12Greedy
	OpHour12GreedyOneBased
	OpMinuteGreedy
	OpSecondGreedy
	OpMillisGreedy
)

var opNames = map[Op]string{
	OpEra:                     "ERA",
	OpYearOneDigit:            "YEAR_ONE_DIGIT",
	OpYearTwoDigits:           "YEAR_TWO_DIGITS",
	OpYearFourDigits:          "YEAR_FOUR_DIGITS",
	OpMonthOneDigit:           "MONTH_ONE_DIGIT",
	OpMonthTwoDigits:          "MONTH_TWO_DIGITS",
	OpMonthShortName:          "MONTH_SHORT_NAME",
	OpMonthLongName:           "MONTH_LONG_NAME",
	OpDayOneDigit:             "DAY_ONE_DIGIT",
	OpDayTwoDigits:            "DAY_TWO_DIGITS",
	OpDayNameShort:            "DAY_NAME_SHORT",
	OpDayNameLong:             "DAY_NAME_LONG",
	OpDayOfWeek:               "DAY_OF_WEEK",
	OpAMPM:                    "AM_PM",
	OpHour24OneDigit:          "HOUR_24_ONE_DIGIT",
	OpHour24TwoDigits:         "HOUR_24_TWO_DIGITS",
	OpHour24OneDigitOneBased:  "HOUR_24_ONE_DIGIT_ONE_BASED",
	OpHour24TwoDigitsOneBased: "HOUR_24_TWO_DIGITS_ONE_BASED",
	OpHour12OneDigit:          "HOUR_12_ONE_DIGIT",
	OpHour12TwoDigits:         "HOUR_12_TWO_DIGITS",
	OpHour12OneDigitOneBased:  "HOUR_12_ONE_DIGIT_ONE_BASED",
	OpHour12TwoDigitsOneBased: "HOUR_12_TWO_DIGITS_ONE_BASED",
	OpMinuteOneDigit:          "MINUTE_ONE_DIGIT",
	OpMinuteTwoDigits:         "MINUTE_TWO_DIGITS",
	OpSecondOneDigit:          "SECOND_ONE_DIGIT",
	OpSecondTwoDigits:         "SECOND_TWO_DIGITS",
	OpMillisOneDigit:          "MILLIS_ONE_DIGIT",
	OpMillisThreeDigits:       "MILLIS_THREE_DIGITS",
	OpTimeZoneShort:           "TIME_ZONE_SHORT",
	OpTimeZoneGMT:             "TIME_ZONE_GMT_BASED",
	OpTimeZoneLong:            "TIME_ZONE_LONG",
	OpTimeZoneRFC822:          "TIME_ZONE_RFC_822",
	OpTimeZoneISO1:            "TIME_ZONE_ISO_8601_1",
	OpTimeZoneISO2:            "TIME_ZONE_ISO_8601_2",
	OpTimeZoneISO3:            "TIME_ZONE_ISO_8601_3",
	OpYearGreedy:              "YEAR_GREEDY",
	OpMonthGreedy:             "MONTH_GREEDY",
	OpDayGreedy:               "DAY_GREEDY",
	OpHour24Greedy:            "HOUR_24_GREEDY",
	OpHour24GreedyOneBased:    "HOUR_24_GREEDY_ONE_BASED",
	OpHour12Greedy:            "HOUR_12_GREEDY",
	OpHour12GreedyOneBased:    "HOUR_12_GREEDY_ONE_BASED",
	OpMinuteGreedy:            "MINUTE_GREEDY",
	OpSecondGreedy:            "SECOND_GREEDY",
	OpMillisGreedy:            "MILLIS_GREEDY",
}

// greedyTwins maps each promotable one-digit opcode to its greedy twin.
// Fixed-width and name opcodes have no twin and are never promoted.
var greedyTwins = map[Op]Op{
	OpYearOneDigit:           OpYearGreedy,
	OpMonthOneDigit:          OpMonthGreedy,
	OpDayOneDigit:            OpDayGreedy,
	OpHour24OneDigit:         OpHour24Greedy,
	OpHour24OneDigitOneBased: OpHour24GreedyOneBased,
	OpHour12OneDigit:         OpHour12Greedy,
	OpHour12OneDigitOneBased: OpHour12GreedyOneBased,
	OpMinuteOneDigit:         OpMinuteGreedy,
	OpSecondOneDigit:         OpSecondGreedy,
	OpMillisOneDigit:         OpMillisGreedy,
}

// Greedy returns the greedy twin of op, or op itself when there is none.
func (op Op) Greedy() Op {
	if twin, ok := greedyTwins[op]; ok {
		return twin
	}
	return op
}

// IsDelimiter reports whether op refers to a delimiter-table entry.
func (op Op) IsDelimiter() bool { return op < 0 }

// DelimiterIndex returns the delimiter-table index op refers to.
// Only meaningful when IsDelimiter is true.
func (op Op) DelimiterIndex() int { return int(-op) - 1 }

// String provides a programmer-friendly debugging string for the Op.
func (op Op) String() string {
	if op < 0 {
		return fmt.Sprintf("DELIMITER[%d]", op.DelimiterIndex())
	}
	if name, ok := opNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(op))
}
