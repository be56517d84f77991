package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/learnloop/learnloop/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show the resolved LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		lcfg := providerConfig(cfg)
		if err := lcfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println("Set LEARNLOOP_LLM_PROVIDER or one of GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY.")
				fmt.Println("Plans fall back to deterministic generation.")
				return nil
			}
			lcfg = discovered
		}

		// Construct the provider so the printed model ID is the resolved
		// one, not the config shorthand.
		provider, err := llm.NewProvider(cmd.Context(), lcfg, zap.NewNop())
		if err != nil {
			return fmt.Errorf("initialize provider: %w", err)
		}

		model := provider.ModelID()
		fmt.Printf("Provider:  %s\n", lcfg.Provider)
		fmt.Printf("Model:     %s\n", model)
		if cost := llm.LookupCost(model); cost != nil {
			fmt.Printf("Pricing:   $%.2f in / $%.2f out per 1M tokens\n",
				cost.InputPerMTok, cost.OutputPerMTok)
		} else {
			fmt.Println("Pricing:   unknown")
		}
		fmt.Printf("Timeout:   %s\n", lcfg.Timeout)
		fmt.Printf("Retries:   %d\n", lcfg.Retry.MaxAttempts)
		return nil
	},
}
