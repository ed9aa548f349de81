package cli

import (
	"github.com/spf13/cobra"

	"github.com/ytget/storefront/internal/config"
)

// resetOnboardingCmd clears the onboarding flag without opening a window
var resetOnboardingCmd = &cobra.Command{
	Use:   "reset-onboarding",
	Short: "Show the onboarding on the next launch",
	Long: `Remove the stored onboarding flag so that the next launch starts with
the onboarding pages again.

Examples:
  storefront reset-onboarding
  storefront reset-onboarding --config ./storefront.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadLaunch(configFlag)
		if err != nil {
			return err
		}

		a := newApp(cfg.AppID)
		defer a.Quit()

		settings := config.NewSettings(a.Preferences(), cfg.PrefsNamespace)
		settings.ResetOnboarding()
		cmd.Printf("onboarding will be shown on the next launch of %s\n", cfg.AppID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetOnboardingCmd)
}
