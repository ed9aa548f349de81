package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/storefront/internal/config"
)

// Root command flags
var (
	configFlag          string
	langFlag            string
	strictFlag          bool
	resetOnboardingFlag bool
)

// rootCmd opens the store window
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "App store client",
	Long: `Open the storefront window.

On the first launch a short onboarding is shown before the main tabs. The
launch configuration is read from storefront.yaml (or --config) and
STOREFRONT_* environment variables.

Examples:
  storefront
  storefront --lang en
  storefront --reset-onboarding`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadLaunch(cmd)
		if err != nil {
			return err
		}
		return runApp(cfg, strictMode(cfg))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "launch config file (default ./storefront.yaml)")
	rootCmd.Flags().StringVar(&langFlag, "lang", "", "interface language (ru, en)")
	rootCmd.Flags().BoolVar(&strictFlag, "strict", false, "panic on programmer errors instead of clamping")
	rootCmd.Flags().BoolVar(&resetOnboardingFlag, "reset-onboarding", false, "show the onboarding again")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadLaunch reads the launch configuration and applies command line overrides
func loadLaunch(cmd *cobra.Command) (*config.Launch, error) {
	cfg, err := config.LoadLaunch(configFlag)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language = langFlag
	}
	if flags.Changed("strict") {
		cfg.Strict = strictFlag
	}
	if flags.Changed("reset-onboarding") {
		cfg.ResetOnboarding = resetOnboardingFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("command line: %w", err)
	}
	return cfg, nil
}

// strictMode reports whether guards panic. Development builds always do.
func strictMode(cfg *config.Launch) bool {
	return cfg.Strict || version == "dev"
}
