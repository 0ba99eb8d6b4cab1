// Package schedule implements the phase-based schedule optimizer: a
// template-driven generator of time-blocked study segments whose intensity,
// hour budget and subject mix follow the user's current cycle phase.
package schedule

import (
	"time"

	"github.com/phrazzld/prepwise-api/internal/domain/cycle"
)

// Intensity grades how demanding a study block is.
type Intensity string

// Possible intensity values
const (
	IntensityLight    Intensity = "light"
	IntensityModerate Intensity = "moderate"
	IntensityIntense  Intensity = "intense"
)

// Block is one time-boxed study segment of a generated day plan.
type Block struct {
	StartTime       time.Time `json:"start_time"`
	EndTime         time.Time `json:"end_time"`
	Subject         string    `json:"subject"`
	Topic           string    `json:"topic"`
	Intensity       Intensity `json:"intensity"`
	Type            string    `json:"type"` // "study" or "revision"
	DurationMinutes int       `json:"duration_minutes"`
}

// Plan is a full generated study day.
type Plan struct {
	Phase           cycle.Phase `json:"phase"`
	CycleDay        int         `json:"cycle_day"`
	Blocks          []Block     `json:"study_blocks"`
	DifficultyFocus string      `json:"difficulty_focus"`
	TotalStudyHours float64     `json:"total_study_hours"`
}

// template is the per-phase schedule shape.
type template struct {
	Intensity       Intensity
	TotalHours      float64
	Subjects        []string
	Topics          map[string]string
	BlockType       string
	DifficultyFocus string
}

// Minutes of rest between consecutive blocks.
const gapMinutes = 15

// Generated days start at 08:00 in the request's location.
const dayStartHour = 8

// Phase-indexed schedule templates. Menstrual days are deliberately light
// revision days; ovulation days carry the heaviest new-material load.
var templates = map[cycle.Phase]template{
	cycle.PhaseMenstrual: {
		Intensity:  IntensityLight,
		TotalHours: 4,
		Subjects:   []string{"Biology", "Chemistry"},
		Topics: map[string]string{
			"Biology":   "Flashcard revision and diagrams",
			"Chemistry": "Formula and reaction recap",
		},
		BlockType:       "revision",
		DifficultyFocus: "light revision",
	},
	cycle.PhaseFollicular: {
		Intensity:  IntensityIntense,
		TotalHours: 8,
		Subjects:   []string{"Physics", "Chemistry", "Biology"},
		Topics: map[string]string{
			"Physics":   "New chapters and derivations",
			"Chemistry": "Organic mechanisms",
			"Biology":   "New chapters with NCERT notes",
		},
		BlockType:       "study",
		DifficultyFocus: "new concepts",
	},
	cycle.PhaseOvulation: {
		Intensity:  IntensityIntense,
		TotalHours: 10,
		Subjects:   []string{"Physics", "Chemistry", "Botany", "Zoology"},
		Topics: map[string]string{
			"Physics":   "Hardest numericals and error log",
			"Chemistry": "Inorganic memorization sprints",
			"Botany":    "High-yield chapters",
			"Zoology":   "High-yield chapters",
		},
		BlockType:       "study",
		DifficultyFocus: "high-yield intensive",
	},
	cycle.PhaseLuteal: {
		Intensity:  IntensityModerate,
		TotalHours: 6,
		Subjects:   []string{"Biology", "Chemistry", "Physics"},
		Topics: map[string]string{
			"Biology":   "Question practice from past papers",
			"Chemistry": "Mixed problem sets",
			"Physics":   "Timed sectional practice",
		},
		BlockType:       "study",
		DifficultyFocus: "steady practice",
	},
}

// undeterminedTemplate keeps schedule generation total even when the cycle
// parameters are unusable: a moderate middle-of-the-road day.
var undeterminedTemplate = template{
	Intensity:  IntensityModerate,
	TotalHours: 6,
	Subjects:   []string{"Biology", "Chemistry", "Physics"},
	Topics: map[string]string{
		"Biology":   "Planned chapter work",
		"Chemistry": "Planned chapter work",
		"Physics":   "Planned chapter work",
	},
	BlockType:       "study",
	DifficultyFocus: "balanced",
}

// Generate produces the study plan for one day. The phase's hour budget is
// split evenly across its subject list; blocks are separated by 15-minute
// gaps and the day starts at 08:00 in date's location.
func Generate(phase cycle.Phase, cycleDay int, date time.Time) Plan {
	tmpl, ok := templates[phase]
	if !ok {
		tmpl = undeterminedTemplate
	}

	blockMinutes := int(tmpl.TotalHours * 60 / float64(len(tmpl.Subjects)))
	start := time.Date(date.Year(), date.Month(), date.Day(),
		dayStartHour, 0, 0, 0, date.Location())

	blocks := make([]Block, 0, len(tmpl.Subjects))
	for _, subject := range tmpl.Subjects {
		end := start.Add(time.Duration(blockMinutes) * time.Minute)
		blocks = append(blocks, Block{
			StartTime:       start,
			EndTime:         end,
			Subject:         subject,
			Topic:           tmpl.Topics[subject],
			Intensity:       tmpl.Intensity,
			Type:            tmpl.BlockType,
			DurationMinutes: blockMinutes,
		})
		start = end.Add(gapMinutes * time.Minute)
	}

	return Plan{
		Phase:           phase,
		CycleDay:        cycleDay,
		Blocks:          blocks,
		DifficultyFocus: tmpl.DifficultyFocus,
		TotalStudyHours: tmpl.TotalHours,
	}
}
