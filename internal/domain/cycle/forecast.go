package cycle

import "time"

// Wellbeing holds predicted energy, mood and focus values for a day,
// each on a 1-10 scale.
type Wellbeing struct {
	Energy float64 `json:"energy"`
	Mood   float64 `json:"mood"`
	Focus  float64 `json:"focus"`
}

// phaseBaseline is the constant prediction table entry for one phase.
// Slope values are applied per day within the phase and the result is
// clamped back to [Min, Max] so a long phase never escapes its band.
type phaseBaseline struct {
	Base       Wellbeing
	Slope      Wellbeing
	Min, Max   float64
	Confidence float64
}

// Phase-indexed prediction tables. Values are on the 1-10 scale.
var baselines = map[Phase]phaseBaseline{
	PhaseMenstrual: {
		Base:       Wellbeing{Energy: 4, Mood: 4, Focus: 5},
		Slope:      Wellbeing{Energy: 0.4, Mood: 0.3, Focus: 0.2}, // recovers through the period
		Min:        3,
		Max:        6,
		Confidence: 0.8,
	},
	PhaseFollicular: {
		Base:       Wellbeing{Energy: 7, Mood: 7, Focus: 7},
		Slope:      Wellbeing{Energy: 0.25, Mood: 0.2, Focus: 0.25},
		Min:        6,
		Max:        9,
		Confidence: 0.75,
	},
	PhaseOvulation: {
		Base:       Wellbeing{Energy: 9, Mood: 9, Focus: 8},
		Slope:      Wellbeing{Energy: 0, Mood: -0.2, Focus: 0},
		Min:        7,
		Max:        10,
		Confidence: 0.7,
	},
	PhaseLuteal: {
		Base:       Wellbeing{Energy: 6, Mood: 5, Focus: 6},
		Slope:      Wellbeing{Energy: -0.2, Mood: -0.2, Focus: -0.15}, // tapers toward the next period
		Min:        3,
		Max:        7,
		Confidence: 0.65,
	},
}

// neutralBaseline is used for PhaseUndetermined: mid-scale values with
// low confidence, so a bad cycle record still yields a usable forecast.
var neutralBaseline = phaseBaseline{
	Base:       Wellbeing{Energy: 5, Mood: 5, Focus: 5},
	Min:        1,
	Max:        10,
	Confidence: 0.2,
}

// PredictWellbeing returns the energy/mood/focus prediction for a cycle day,
// along with the table's confidence for that phase. Values stay within the
// phase's declared band and within the 1-10 scale.
func PredictWellbeing(cycleDay, periodLength, cycleLength int) (Wellbeing, float64) {
	phase := PhaseForDay(cycleDay, periodLength, cycleLength)

	b, ok := baselines[phase]
	if !ok {
		return neutralBaseline.Base, neutralBaseline.Confidence
	}

	dayIn := float64(DayInPhase(cycleDay, periodLength, cycleLength))
	w := Wellbeing{
		Energy: clampTo(b.Base.Energy+b.Slope.Energy*dayIn, b.Min, b.Max),
		Mood:   clampTo(b.Base.Mood+b.Slope.Mood*dayIn, b.Min, b.Max),
		Focus:  clampTo(b.Base.Focus+b.Slope.Focus*dayIn, b.Min, b.Max),
	}

	return w, b.Confidence
}

// DayForecast is one entry of a multi-day wellbeing forecast.
type DayForecast struct {
	Date            time.Time `json:"date"`
	CycleDay        int       `json:"cycle_day"`
	CyclePhase      Phase     `json:"cycle_phase"`
	PredictedEnergy float64   `json:"predicted_energy"`
	PredictedMood   float64   `json:"predicted_mood"`
	PredictedFocus  float64   `json:"predicted_focus"`
	Confidence      float64   `json:"confidence"`
}

// Forecast produces an ordered wellbeing forecast for the next `days` days
// starting from `from`, given the latest cycle parameters. An invalid
// cycleLength produces undetermined entries rather than failing.
func Forecast(cycleStart time.Time, from time.Time, periodLength, cycleLength, days int) []DayForecast {
	out := make([]DayForecast, 0, days)
	for i := 0; i < days; i++ {
		date := from.AddDate(0, 0, i)
		day := DayOf(cycleStart, date, cycleLength)
		w, conf := PredictWellbeing(day, periodLength, cycleLength)

		out = append(out, DayForecast{
			Date:            date,
			CycleDay:        day,
			CyclePhase:      PhaseForDay(day, periodLength, cycleLength),
			PredictedEnergy: w.Energy,
			PredictedMood:   w.Mood,
			PredictedFocus:  w.Focus,
			Confidence:      conf,
		})
	}
	return out
}

// clampTo bounds v to [lo, hi].
func clampTo(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
