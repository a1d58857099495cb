package printprofile

// Recommendation thresholds on variant task counts.
const (
	MaxTasksSingle = 16
	AvgTasksSingle = 12
	LightTasks     = 10
)

// ReasonCode explains a recommendation in a machine-readable way; callers
// map codes to localized copy.
type ReasonCode string

const (
	ReasonNoData         ReasonCode = "NO_DATA"
	ReasonWorkTypeSingle ReasonCode = "WORK_TYPE_SINGLE"
	ReasonTooManyTasks   ReasonCode = "TOO_MANY_TASKS"
	ReasonHighAverage    ReasonCode = "HIGH_AVERAGE_TASKS"
	ReasonLightVariants  ReasonCode = "LIGHT_VARIANTS"
)

// RecommendInput is what the policy looks at.
type RecommendInput struct {
	WorkType          WorkType
	VariantTaskCounts []int
}

// Recommendation is the policy outcome.
type Recommendation struct {
	RecommendedLayout Layout       `json:"recommendedLayout"`
	CanUseTwoUp       bool         `json:"canUseTwoUp"`
	ReasonCodes       []ReasonCode `json:"reasonCodes"`
}

// Recommend picks a layout for a work from its variants' task counts.
//
// Rules:
//   - no variants: single, two-up allowed, NO_DATA
//   - max tasks >= 16 or average >= 12: single, two-up not allowed
//   - test and homework: single regardless, WORK_TYPE_SINGLE
//   - otherwise two; LIGHT_VARIANTS when max and average are both <= 10
func Recommend(in RecommendInput) Recommendation {
	if len(in.VariantTaskCounts) == 0 {
		return Recommendation{
			RecommendedLayout: LayoutSingle,
			CanUseTwoUp:       true,
			ReasonCodes:       []ReasonCode{ReasonNoData},
		}
	}

	maxTasks, sum := 0, 0
	for _, n := range in.VariantTaskCounts {
		maxTasks = max(maxTasks, n)
		sum += n
	}
	avg := float64(sum) / float64(len(in.VariantTaskCounts))

	rec := Recommendation{CanUseTwoUp: true, ReasonCodes: []ReasonCode{}}
	if maxTasks >= MaxTasksSingle {
		rec.CanUseTwoUp = false
		rec.ReasonCodes = append(rec.ReasonCodes, ReasonTooManyTasks)
	}
	if avg >= AvgTasksSingle {
		rec.CanUseTwoUp = false
		rec.ReasonCodes = append(rec.ReasonCodes, ReasonHighAverage)
	}

	switch {
	case in.WorkType.ForcesSingle():
		rec.RecommendedLayout = LayoutSingle
		rec.ReasonCodes = append(rec.ReasonCodes, ReasonWorkTypeSingle)
	case !rec.CanUseTwoUp:
		rec.RecommendedLayout = LayoutSingle
	default:
		rec.RecommendedLayout = LayoutTwo
		if maxTasks <= LightTasks && avg <= LightTasks {
			rec.ReasonCodes = append(rec.ReasonCodes, ReasonLightVariants)
		}
	}
	return rec
}
