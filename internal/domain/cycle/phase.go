// Package cycle implements the phase determinator: a pure, total mapping
// from a day within a menstrual cycle to one of four physiological phases,
// plus phase-indexed energy, mood and focus prediction tables.
//
// Both the prediction engine (as a physiological feature) and the schedule
// generator consume this package.
package cycle

import "time"

// Phase is one of the four physiological windows of a cycle, or
// PhaseUndetermined when the cycle parameters are unusable.
type Phase string

// Possible phase values
const (
	PhaseMenstrual    Phase = "menstrual"
	PhaseFollicular   Phase = "follicular"
	PhaseOvulation    Phase = "ovulation"
	PhaseLuteal       Phase = "luteal"
	PhaseUndetermined Phase = "undetermined"
)

// Phase boundary thresholds, in cycle days.
//
// NOTE: these are absolute day thresholds that do not scale with cycle
// length, so for cycles far from 28 days the follicular/ovulation boundary
// is likely misplaced (e.g. a 35-day cycle's ovulation window). Preserved
// for compatibility with the existing tracker data.
const (
	follicularEndDay = 13
	ovulationEndDay  = 16
)

// PhaseForDay maps a 1-based cycle day to its phase.
//
// The rule is: day <= periodLength is menstrual, day <= 13 is follicular,
// day <= 16 is ovulation, everything after is luteal. Every integer day in
// [1, cycleLength] maps to exactly one phase.
//
// A non-positive cycleLength yields PhaseUndetermined rather than an error:
// the caller holds user-entered data and must always get a usable phase.
func PhaseForDay(cycleDay, periodLength, cycleLength int) Phase {
	if cycleLength <= 0 {
		return PhaseUndetermined
	}

	switch {
	case cycleDay <= periodLength:
		return PhaseMenstrual
	case cycleDay <= follicularEndDay:
		return PhaseFollicular
	case cycleDay <= ovulationEndDay:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

// DayOf computes the 1-based cycle day for the given date relative to the
// cycle start. Dates before the start clamp to day 1; dates beyond one
// cycle wrap, since the user may not have logged the next cycle yet.
// Returns 0 when cycleLength is not positive.
func DayOf(cycleStart time.Time, date time.Time, cycleLength int) int {
	if cycleLength <= 0 {
		return 0
	}

	days := int(date.Sub(cycleStart).Hours() / 24)
	if days < 0 {
		return 1
	}

	return days%cycleLength + 1
}

// PhaseOn determines the phase for a calendar date given the cycle parameters.
func PhaseOn(cycleStart time.Time, date time.Time, periodLength, cycleLength int) Phase {
	day := DayOf(cycleStart, date, cycleLength)
	if day == 0 {
		return PhaseUndetermined
	}
	return PhaseForDay(day, periodLength, cycleLength)
}

// DayInPhase returns how many days the given cycle day sits past the start
// of its phase (0-based). Used by the forecast tables for their linear
// day-within-phase adjustments.
func DayInPhase(cycleDay, periodLength, cycleLength int) int {
	switch PhaseForDay(cycleDay, periodLength, cycleLength) {
	case PhaseMenstrual:
		return cycleDay - 1
	case PhaseFollicular:
		return cycleDay - periodLength - 1
	case PhaseOvulation:
		return cycleDay - follicularEndDay - 1
	case PhaseLuteal:
		return cycleDay - ovulationEndDay - 1
	default:
		return 0
	}
}
