package cmd

import (
	"github.com/spf13/cobra"

	"github.com/learnloop/learnloop/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "AI learning planner in your terminal",
	Long:  "Learnloop — terminal app that turns \"I want to learn X\" into a weekly learning plan with sessions, tests, and progress tracking.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Directory containing config.yaml (defaults to the working directory)")
	rootCmd.Flags().String("server", "", "Backend URL to connect to instead of starting an embedded one")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// loadConfig reads settings honoring the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}
