package planner

// Progress is the cumulative summary of a user's learning activity across
// sessions. It lives for the lifetime of the controller and is never
// persisted. TimeSpent is in minutes.
type Progress struct {
	LessonsCompleted int
	AverageScore     float64
	TimeSpent        int
	CurrentWeek      int
	WeeklyScores     []float64
	Recommendations  []string
}

// recordTest applies one completed weekly test to the accumulator:
// the score joins WeeklyScores, the completed lessons and their fixed time
// cost are added, the week advances, and the average and recommendations
// are recomputed. Each counter only ever increases.
func (p *Progress) recordTest(score float64, lessonCount, lessonMinutes, testMinutes int) {
	p.WeeklyScores = append(p.WeeklyScores, score)
	p.LessonsCompleted += lessonCount
	p.TimeSpent += lessonMinutes*lessonCount + testMinutes
	p.CurrentWeek++
	p.AverageScore = meanOf(p.WeeklyScores)
	p.Recommendations = Recommend(score)
}

func (p Progress) clone() Progress {
	cp := p
	cp.WeeklyScores = append([]float64(nil), p.WeeklyScores...)
	cp.Recommendations = append([]string(nil), p.Recommendations...)
	return cp
}

// meanOf returns the arithmetic mean of scores, or 0 for an empty slice.
func meanOf(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}
