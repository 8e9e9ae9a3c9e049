package datefmt

// Format attribute bits: the derived calendar fields the format routine
// must materialize before walking the op body.
const (
	faMillis = 1 << iota
	faSecond
	faMinute
	faHour
	faDay
	faMonth
	faYear
	faLeap
	faDayOfWeek
)

// formatAttributes computes the attribute set for an op list. Month and
// day ops pull in year and leap because the month/day decomposition
// depends on them.
func formatAttributes(ops []Op) int {
	attrs := 0
	for _, op := range ops {
		switch op {
		case OpAMPM:
			attrs |= faHour
		case OpMillisOneDigit, OpMillisGreedy, OpMillisThreeDigits:
			attrs |= faMillis
		case OpSecondOneDigit, OpSecondGreedy, OpSecondTwoDigits:
			attrs |= faSecond
		case OpMinuteOneDigit, OpMinuteGreedy, OpMinuteTwoDigits:
			attrs |= faMinute
		case OpHour12OneDigit, OpHour12Greedy, OpHour12TwoDigits,
			OpHour12OneDigitOneBased, OpHour12GreedyOneBased, OpHour12TwoDigitsOneBased,
			OpHour24OneDigit, OpHour24Greedy, OpHour24TwoDigits,
			OpHour24OneDigitOneBased, OpHour24GreedyOneBased, OpHour24TwoDigitsOneBased:
			attrs |= faHour
		case OpDayOneDigit, OpDayGreedy, OpDayTwoDigits:
			attrs |= faDay | faMonth | faYear | faLeap
		case OpDayNameLong, OpDayNameShort, OpDayOfWeek:
			attrs |= faDayOfWeek
		case OpMonthOneDigit, OpMonthGreedy, OpMonthTwoDigits,
			OpMonthShortName, OpMonthLongName:
			attrs |= faMonth | faYear | faLeap
		case OpYearOneDigit, OpYearGreedy, OpYearTwoDigits, OpYearFourDigits:
			attrs |= faYear
		case OpEra:
			attrs |= faYear
		}
	}
	return attrs
}

// Parse slot bits: local slots of the parse routine that at least one op
// writes. Slots outside the set get default-initialized in the prelude.
const (
	slotDay = 1 << iota
	slotMonth
	slotYear
	slotHour
	slotMinute
	slotSecond
	slotMillis
	slotEra
	slotTemp
)

// parseSlots computes the written-slot set for an op list. Greedy ops
// route their packed (value, length) result through the temp slot, so
// they mark it in addition to their field slot; the same goes for the
// ops that call a locale matcher or the offset parser, except the era op,
// which marks only the era slot.
func parseSlots(ops []Op) int {
	slots := 0
	for _, op := range ops {
		switch op {
		case OpAMPM:
			slots |= slotTemp
		case OpMillisGreedy:
			slots |= slotTemp | slotMillis
		case OpMillisOneDigit, OpMillisThreeDigits:
			slots |= slotMillis
		case OpSecondGreedy:
			slots |= slotTemp | slotSecond
		case OpSecondOneDigit, OpSecondTwoDigits:
			slots |= slotSecond
		case OpMinuteGreedy:
			slots |= slotTemp | slotMinute
		case OpMinuteOneDigit, OpMinuteTwoDigits:
			slots |= slotMinute
		case OpHour12Greedy, OpHour12GreedyOneBased, OpHour24Greedy, OpHour24GreedyOneBased:
			slots |= slotTemp | slotHour
		case OpHour12OneDigit, OpHour12TwoDigits, OpHour12OneDigitOneBased, OpHour12TwoDigitsOneBased,
			OpHour24OneDigit, OpHour24TwoDigits, OpHour24OneDigitOneBased, OpHour24TwoDigitsOneBased:
			slots |= slotHour
		case OpDayGreedy:
			slots |= slotTemp | slotDay
		case OpDayOneDigit, OpDayTwoDigits:
			slots |= slotDay
		case OpDayNameLong, OpDayNameShort:
			slots |= slotTemp
		case OpMonthGreedy, OpMonthShortName, OpMonthLongName:
			slots |= slotTemp | slotMonth
		case OpMonthOneDigit, OpMonthTwoDigits:
			slots |= slotMonth
		case OpYearGreedy:
			slots |= slotTemp | slotYear
		case OpYearOneDigit, OpYearTwoDigits, OpYearFourDigits:
			slots |= slotYear
		case OpEra:
			slots |= slotEra
		case OpTimeZoneShort, OpTimeZoneGMT, OpTimeZoneLong, OpTimeZoneRFC822,
			OpTimeZoneISO1, OpTimeZoneISO2, OpTimeZoneISO3:
			slots |= slotTemp
		}
	}
	return slots
}
