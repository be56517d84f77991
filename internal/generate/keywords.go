package generate

import "strings"

// Keyword extraction: the deterministic fallback path. Each helper scans the
// free-text request for known phrases and returns a canned value, so a plan
// can always be produced without an LLM.

func planTitle(userRequest string) string {
	r := strings.ToLower(userRequest)
	switch {
	case strings.Contains(r, "python"):
		return "Python Programming Mastery"
	case strings.Contains(r, "javascript"):
		return "JavaScript Development"
	case strings.Contains(r, "machine learning"):
		return "Machine Learning Journey"
	case strings.Contains(r, "web development"):
		return "Web Development Path"
	default:
		return "Personalized Learning Plan"
	}
}

func planSubject(userRequest string) string {
	r := strings.ToLower(userRequest)
	switch {
	case strings.Contains(r, "python"):
		return "Python"
	case strings.Contains(r, "javascript"):
		return "JavaScript"
	case strings.Contains(r, "machine learning"):
		return "Machine Learning"
	case strings.Contains(r, "web development"):
		return "Web Development"
	default:
		return "Programming"
	}
}

func planTimeline(userRequest string) string {
	r := strings.ToLower(userRequest)
	switch {
	case strings.Contains(r, "3 months"):
		return "3 months"
	case strings.Contains(r, "6 months"):
		return "6 months"
	case strings.Contains(r, "1 year"):
		return "1 year"
	case strings.Contains(r, "6 weeks"):
		return "6 weeks"
	default:
		return "3 months"
	}
}

// planLessonCount scales the total lesson count with the requested timeline.
func planLessonCount(userRequest string) int {
	switch planTimeline(userRequest) {
	case "6 months":
		return 20
	case "1 year":
		return 40
	case "6 weeks":
		return 8
	default:
		return 10
	}
}

func planGoals(userRequest string) []string {
	r := strings.ToLower(userRequest)
	goals := []string{"Master the subject", "Build practical skills"}
	if strings.Contains(r, "job") {
		goals = append(goals, "Prepare for job interviews")
	}
	if strings.Contains(r, "project") {
		goals = append(goals, "Build real-world projects")
	}
	if strings.Contains(r, "certification") {
		goals = append(goals, "Prepare for certification")
	}
	return goals
}

// TimelineWeeks converts a timeline label to its week count. Unknown labels
// fall back to 12 weeks (the "3 months" default).
func TimelineWeeks(timeline string) int {
	switch strings.ToLower(timeline) {
	case "6 months":
		return 24
	case "1 year":
		return 52
	case "6 weeks":
		return 6
	default:
		return 12
	}
}
