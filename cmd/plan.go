package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/logging"
)

var planCmd = &cobra.Command{
	Use:   "plan <request>",
	Short: "Generate a learning plan and print it (no server)",
	Long: `Generate a plan for a free-text learning request and print it.

This is a stateless preview — nothing is tracked and no backend is started.
With an LLM provider configured the plan comes from the model; otherwise the
deterministic keyword path is used.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	request := strings.Join(args, " ")

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := logging.New(cfg.Log.Dir, cfg.LogLevel(), false)
	defer log.Sync()

	plan := buildGenerator(cmd.Context(), cfg, log).PlanForRequest(cmd.Context(), request)

	sep := strings.Repeat("─", 60)
	fmt.Println(sep)
	fmt.Println(plan.Title)
	fmt.Println(sep)
	fmt.Printf("Subject:   %s\n", plan.Subject)
	fmt.Printf("Timeline:  %s\n", plan.Timeline)
	fmt.Printf("Lessons:   %d\n", plan.Lessons)
	fmt.Println("Goals:")
	for _, g := range plan.Goals {
		fmt.Printf("  - %s\n", g)
	}
	return nil
}
