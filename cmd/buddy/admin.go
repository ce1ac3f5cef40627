package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rezaimia/buddypocket/internal/engine"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Administrative commands",
}

var adminGrantCmd = &cobra.Command{
	Use:   "grant <gems>",
	Short: "Credit a verified gem purchase",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		amount, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("amount must be a number: %w", err)
		}
		if amount <= 0 {
			return fmt.Errorf("amount must be positive")
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			svc.GrantGems(amount)
			fmt.Printf("💎 Credited %d gems (balance: %d)\n", amount, svc.State().Buddy.Gems)
			return nil
		})
	},
}

var adminCodeCmd = &cobra.Command{
	Use:   "code <code>",
	Short: "Redeem a special code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			if !svc.ActivateDevMode(args[0]) {
				return fmt.Errorf("unknown code")
			}
			fmt.Println("🔓 Developer mode activated")
			return nil
		})
	},
}

var adminCompletionCmd = &cobra.Command{
	Use:       "completion [bash|zsh|fish|powershell]",
	Short:     "Generate shell completion script",
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := cmd.Root()
		switch args[0] {
		case "bash":
			return root.GenBashCompletion(os.Stdout)
		case "zsh":
			return root.GenZshCompletion(os.Stdout)
		case "fish":
			return root.GenFishCompletion(os.Stdout, true)
		case "powershell":
			return root.GenPowerShellCompletion(os.Stdout)
		}
		return fmt.Errorf("unsupported shell: %s", args[0])
	},
}

var adminWidgetCmd = &cobra.Command{
	Use:   "widget",
	Short: "Print the widget snapshot line",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			b := svc.State().Buddy
			fmt.Printf("%s %s lv%d 🔥%d\n", b.MoodEmoji(), b.Name, b.Level, b.StreakDays)
			return nil
		})
	},
}

func init() {
	adminCmd.AddCommand(adminGrantCmd)
	adminCmd.AddCommand(adminCodeCmd)
	adminCmd.AddCommand(adminCompletionCmd)
	adminCmd.AddCommand(adminWidgetCmd)
}
