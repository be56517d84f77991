package planner

// Score thresholds for the recommendation bands.
const (
	scoreExcellent = 85
	scoreGood      = 70
)

// Recommend maps the most recent weekly test score to a pair of study
// recommendations. It is a pure function of the score alone.
func Recommend(score float64) []string {
	switch {
	case score >= scoreExcellent:
		return []string{
			"Excellent performance! Consider advanced topics",
			"Start building portfolio projects",
		}
	case score >= scoreGood:
		return []string{
			"Good progress! Continue with current pace",
			"Focus on areas where you scored lower",
		}
	default:
		return []string{
			"Review fundamental concepts",
			"Practice more with coding exercises",
		}
	}
}
