package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/client"
	"github.com/learnloop/learnloop/internal/generate"
	"github.com/learnloop/learnloop/internal/logging"
	"github.com/learnloop/learnloop/internal/planner"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted planning walkthrough without the TUI",
	Long: `Run the full planning loop headless: create a plan, then for each week
start a session, take the weekly test, and end the session, finishing with
the accumulated progress report.

Scores come from the deterministic generator, so the same seed replays the
same walkthrough.`,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().String("request", "I want to learn Python for 3 months with weekly tests", "Learning request to plan for")
	demoCmd.Flags().Int("weeks", 3, "Number of weekly cycles to run")
	demoCmd.Flags().Uint64("seed", 42, "Score generator seed")
}

func runDemo(cmd *cobra.Command, args []string) error {
	request, _ := cmd.Flags().GetString("request")
	weeks, _ := cmd.Flags().GetInt("weeks")
	seed, _ := cmd.Flags().GetUint64("seed")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log.Dir, cfg.LogLevel(), false)
	defer log.Sync()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// No LLM provider: the walkthrough must replay identically per seed.
	gen := generate.New(nil, log, generate.Config{
		LessonsPerWeek: cfg.Plan.LessonsPerWeek,
		Seed:           seed,
	})

	baseURL, err := startEmbeddedServer(ctx, gen, cfg, log)
	if err != nil {
		return fmt.Errorf("start embedded server: %w", err)
	}

	c := client.New(baseURL, cfg.Client.Timeout())
	ctrl := planner.New(c, planner.Config{
		LessonMinutes: cfg.Plan.LessonMinutes,
		TestMinutes:   cfg.Plan.TestMinutes,
	})
	ctrl.AddListener(demoPrinter{})

	fmt.Printf("Planning for %q\n\n", request)
	plan, err := ctrl.CreatePlan(ctx, request)
	if err != nil {
		return fmt.Errorf("create plan: %w", err)
	}

	for week := 1; week <= weeks; week++ {
		fmt.Printf("\n── Week %d ──\n", week)
		if _, err := ctrl.StartSession(ctx); err != nil {
			return fmt.Errorf("start session: %w", err)
		}
		if _, err := ctrl.TakeWeeklyTest(ctx); err != nil {
			return fmt.Errorf("take test: %w", err)
		}
		if err := c.EndSession(ctx, plan.UserID); err != nil {
			return fmt.Errorf("end session: %w", err)
		}
		if _, err := ctrl.EndSession(); err != nil {
			return fmt.Errorf("end session: %w", err)
		}
	}

	prog, err := c.Progress(ctx, plan.UserID)
	if err != nil {
		return fmt.Errorf("fetch progress: %w", err)
	}

	fmt.Println("\n── Progress ──")
	fmt.Printf("Lessons completed:  %d\n", prog.LessonsCompleted)
	fmt.Printf("Average score:      %.1f%%\n", prog.AverageScore)
	fmt.Printf("Time spent:         %d min\n", prog.TimeSpent)
	fmt.Printf("Current week:       %d\n", prog.CurrentWeek)
	fmt.Printf("Weekly scores:      %s\n", joinScores(prog.WeeklyScores))
	for _, rec := range prog.Recommendations {
		fmt.Printf("  ▸ %s\n", rec)
	}
	return nil
}

// demoPrinter narrates controller state changes on stdout.
type demoPrinter struct{}

func (demoPrinter) PlanCreated(p planner.Plan) {
	fmt.Printf("▸ Plan created: %s\n", p.Title)
	fmt.Printf("  %s, %d lessons\n", p.Timeline, p.LessonCount)
	for _, g := range p.Goals {
		fmt.Printf("  - %s\n", g)
	}
}

func (demoPrinter) SessionStarted(s planner.Session) {
	fmt.Printf("▸ Session %s started:\n", s.ID)
	for _, l := range s.Lessons {
		fmt.Printf("  - %s\n", l)
	}
}

func (demoPrinter) ProgressUpdated(pr planner.Progress) {
	last := 0.0
	if n := len(pr.WeeklyScores); n > 0 {
		last = pr.WeeklyScores[n-1]
	}
	fmt.Printf("▸ Weekly test: %.0f%% (average %.1f%%)\n", last, pr.AverageScore)
}

func (demoPrinter) SessionEnded(minutes int) {
	fmt.Printf("▸ Session ended after %d min\n", minutes)
}

func joinScores(scores []float64) string {
	if len(scores) == 0 {
		return "none"
	}
	parts := make([]string, 0, len(scores))
	for _, s := range scores {
		parts = append(parts, fmt.Sprintf("%.0f%%", s))
	}
	return strings.Join(parts, ", ")
}
