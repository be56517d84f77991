package track

// Recommendation thresholds, shared with the score-band pairs the client
// shows after each test.
const (
	avgExcellent = 85
	avgGood      = 70

	velocityLow  = 30
	velocityHigh = 120

	consistencyWindow = 3
	consistencyHigh   = 80
	consistencyLow    = 60

	maxRecommendations = 5
)

// Analyze turns a user's score history into study recommendations. The
// average score picks one of three base pairs; learning velocity (minutes
// per completed lesson) and recent-score consistency add follow-ups. At
// most five recommendations are returned.
func Analyze(scores []float64, lessonsCompleted, timeSpent int) []string {
	recommendations := bandPair(mean(scores))

	if lessonsCompleted > 0 {
		velocity := float64(timeSpent) / float64(lessonsCompleted)
		if velocity < velocityLow {
			recommendations = append(recommendations, "Consider spending more time on each lesson")
		} else if velocity > velocityHigh {
			recommendations = append(recommendations, "Great dedication! Consider advanced challenges")
		}
	}

	if len(scores) >= consistencyWindow {
		recent := scores[len(scores)-consistencyWindow:]
		switch {
		case allAtLeast(recent, consistencyHigh):
			recommendations = append(recommendations, "Consistent high performance! Ready for next level")
		case anyBelow(recent, consistencyLow):
			recommendations = append(recommendations, "Focus on weak areas identified in recent tests")
		}
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func bandPair(average float64) []string {
	switch {
	case average >= avgExcellent:
		return []string{
			"Excellent performance! Consider advanced topics",
			"Start building portfolio projects",
		}
	case average >= avgGood:
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

func allAtLeast(scores []float64, threshold float64) bool {
	for _, s := range scores {
		if s < threshold {
			return false
		}
	}
	return true
}

func anyBelow(scores []float64, threshold float64) bool {
	for _, s := range scores {
		if s < threshold {
			return true
		}
	}
	return false
}
