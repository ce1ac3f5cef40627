package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezaimia/buddypocket/internal/catalog"
	"github.com/rezaimia/buddypocket/internal/config"
	"github.com/rezaimia/buddypocket/internal/engine"
	"github.com/rezaimia/buddypocket/internal/pet"
	"github.com/rezaimia/buddypocket/internal/storage"
)

var (
	stateDir string
	registry = catalog.MustLoad()
)

const Version = "v1.0.0"

var buddyNames = []string{
	"Pixel",
	"Mochi",
	"Ziggy",
	"Nova",
	"Biscuit",
	"Clover",
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "buddy",
		Short: "BuddyPocket - a pocket buddy that lives in your terminal",
		Run: func(cmd *cobra.Command, args []string) {
			if version, _ := cmd.Flags().GetBool("version"); version {
				fmt.Println(Version)
				return
			}
			cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&stateDir, "dir", "", "Path to the state directory")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(careCmd(pet.ActionFeed, "feed", "Feed your buddy", "Fed"))
	rootCmd.AddCommand(careCmd(pet.ActionPet, "pet", "Pet your buddy", "Petted"))
	rootCmd.AddCommand(careCmd(pet.ActionSleep, "tuck", "Tuck your buddy into bed", "Tucked in"))
	rootCmd.AddCommand(careCmd(pet.ActionBathe, "bathe", "Give your buddy a bath", "Bathed"))
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(battleCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(passCmd)
	rootCmd.AddCommand(missionsCmd)
	rootCmd.AddCommand(achievementsCmd)
	rootCmd.AddCommand(buyCmd)
	rootCmd.AddCommand(customizeCmd)
	rootCmd.AddCommand(equipCmd)
	rootCmd.AddCommand(unequipCmd)
	rootCmd.AddCommand(decorCmd)
	rootCmd.AddCommand(messageCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(adminCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openStore resolves the state directory: the --dir flag wins, then the
// walk-up discovery, then the home fallback.
func openStore() (*storage.Store, error) {
	if stateDir != "" {
		return storage.Open(stateDir), nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("resolve working directory: %w", err)
	}
	store, _, err := storage.Discover(cwd)
	return store, err
}

// executeStatefulCommand loads state, applies the time-derived refresh,
// runs the command, and persists the result. Events raised along the
// way print as notifications after the command output.
func executeStatefulCommand(fn func(*engine.Service) error) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	st, err := store.Load()
	if err != nil {
		return err
	}
	cfg, err := config.Load(store.ConfigPath())
	if err != nil {
		return err
	}

	var notices []string
	svc := engine.New(registry, cfg, st, engine.WithSink(func(e engine.Event) {
		if n := formatEvent(e); n != "" {
			notices = append(notices, n)
		}
	}))
	svc.Refresh()

	if err := fn(svc); err != nil {
		return err
	}
	if err := store.Save(st); err != nil {
		return fmt.Errorf("save state: %w", err)
	}

	for _, n := range notices {
		fmt.Println(n)
	}
	return nil
}

func formatEvent(e engine.Event) string {
	switch e.Kind {
	case engine.EventLevelUp:
		msg := fmt.Sprintf("🎉 Level up! Now level %d", e.Level)
		for _, body := range e.Bodies {
			if b, ok := registry.Body(body); ok {
				msg += fmt.Sprintf("\n✨ New body unlocked: %s %s", b.Emoji, b.Name)
			}
		}
		return msg
	case engine.EventAchievementUnlocked:
		return fmt.Sprintf("🏆 Achievement unlocked: %s (+%d💎)", e.Achievement, e.Gems)
	case engine.EventStreakReward:
		return fmt.Sprintf("🔥 Day %d streak! +%d💎", e.Day, e.Gems)
	case engine.EventMissionCompleted:
		return fmt.Sprintf("✅ Mission complete: %s", e.MissionID)
	case engine.EventCriticalNeed:
		return fmt.Sprintf("⚠️  %s is critically low!", e.Need)
	case engine.EventPassLevelUp:
		return fmt.Sprintf("🚀 Battle pass tier %d reached", e.Level)
	case engine.EventShopRotated:
		return fmt.Sprintf("🛍️  New weekly shop (%s)", e.WeekID)
	}
	return ""
}

var initCmd = &cobra.Command{
	Use:   "init [name] [boy|girl]",
	Short: "Adopt a new buddy",
	Args:  cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		global, _ := cmd.Flags().GetBool("global")

		var store *storage.Store
		switch {
		case stateDir != "":
			store = storage.Open(stateDir)
		case global:
			store = storage.Open(storage.GlobalDir())
		default:
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("resolve working directory: %w", err)
			}
			store = storage.Open(filepath.Join(cwd, storage.DirName))
		}
		if store.Exists() {
			return fmt.Errorf("a buddy already lives here")
		}

		name := buddyNames[len(buddyNames)/2]
		if len(args) > 0 {
			name = args[0]
		}
		gender := catalog.GenderBoy
		if len(args) > 1 {
			switch args[1] {
			case "boy":
				gender = catalog.GenderBoy
			case "girl":
				gender = catalog.GenderGirl
			default:
				return fmt.Errorf("gender must be boy or girl, got %q", args[1])
			}
		}

		cfg, err := config.Load(store.ConfigPath())
		if err != nil {
			return err
		}
		st := engine.NewState(name, gender, time.Now())
		svc := engine.New(registry, cfg, st)
		svc.Refresh()
		if err := store.Save(st); err != nil {
			return err
		}

		fmt.Printf("Say hello to %s! 👋\n", name)
		return nil
	},
}

func init() {
	initCmd.Flags().Bool("global", false, "Adopt the buddy in your home directory")
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show your buddy's status card",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			fmt.Println(renderStatus(svc.State(), registry))
			return nil
		})
	},
}

func careCmd(action pet.Action, use, short, done string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			return executeStatefulCommand(func(svc *engine.Service) error {
				svc.Care(action)
				b := svc.State().Buddy
				fmt.Printf("%s %s! %s is feeling %s %s\n", done, b.Name, b.Name, moodWord(b.Mood()), b.MoodEmoji())
				return nil
			})
		},
	}
}

var playCmd = &cobra.Command{
	Use:   "play <game> <score>",
	Short: "Record a finished mini-game session",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("score must be a number: %w", err)
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			res := svc.FinishMiniGame(args[0], score)
			fmt.Printf("🎮 %s finished! +%d💎 +%d🪙 +%dxp\n", args[0], res.Gems, res.Coins, res.XP)
			if res.Gems == 0 {
				fmt.Println("(daily gem rewards are used up, come back tomorrow)")
			}
			if res.HighScore {
				fmt.Println("🏅 New high score!")
			}
			return nil
		})
	},
}

var battleCmd = &cobra.Command{
	Use:   "battle [opponent]",
	Short: "Battle another buddy over three rounds",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opponent := "wild buddy"
		if len(args) > 0 {
			opponent = args[0]
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			b := svc.SimulateBattle(opponent)
			for _, r := range b.Rounds {
				marker := "🔻"
				if r.PlayerValue > r.OpponentValue {
					marker = "🔺"
				}
				fmt.Printf("Round %d %s %s: you %d — %d them %s\n",
					r.Number, r.Kind.Emoji(), r.Kind, r.PlayerValue, r.OpponentValue, marker)
			}
			if b.Won {
				fmt.Printf("🏆 Victory %d-%d!\n", b.PlayerScore, b.OpponentScore)
			} else {
				fmt.Printf("💔 Defeat %d-%d. Better luck next time!\n", b.PlayerScore, b.OpponentScore)
			}
			return nil
		})
	},
}

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse this week's shop",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			fmt.Println(renderShop(svc.State(), registry))
			return nil
		})
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <slot>",
	Short: "Buy one shop slot by number",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("slot must be a number: %w", err)
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			if err := svc.PurchaseShopSlot(index - 1); err != nil {
				return err
			}
			slot := svc.State().Shop.Slots[index-1]
			if it, ok := registry.Item(slot.ItemID); ok {
				fmt.Printf("🛍️  Bought %s %s!\n", it.Emoji, it.Name)
			}
			return nil
		})
	},
}

func init() {
	shopCmd.AddCommand(shopBuyCmd)
}

var passCmd = &cobra.Command{
	Use:   "pass",
	Short: "Show the battle pass season",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			fmt.Println(renderPass(svc.State()))
			return nil
		})
	},
}

var passClaimCmd = &cobra.Command{
	Use:   "claim <level>",
	Short: "Claim a battle pass tier reward",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("level must be a number: %w", err)
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			r, err := svc.ClaimPassReward(level)
			if err != nil {
				return err
			}
			fmt.Printf("%s Claimed tier %d: %s\n", r.Emoji, r.Level, r.Name)
			return nil
		})
	},
}

var passUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Unlock the premium reward track",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			svc.UpgradePassPremium()
			fmt.Println("🚀 Premium track unlocked!")
			return nil
		})
	},
}

func init() {
	passCmd.AddCommand(passClaimCmd)
	passCmd.AddCommand(passUpgradeCmd)
}

var missionsCmd = &cobra.Command{
	Use:   "missions",
	Short: "Show today's missions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			for _, m := range svc.State().Missions.Missions {
				check := " "
				if m.Completed() {
					check = "x"
				}
				fmt.Printf("[%s] %s %s (%d/%d) — %d💎 %d🪙\n",
					check, m.Emoji, m.Description, m.Progress, m.Target, m.RewardGems, m.RewardCoins)
			}
			return nil
		})
	},
}

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show the achievement board",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			for _, a := range svc.State().Achievements {
				check := " "
				if a.Unlocked {
					check = "x"
				}
				fmt.Printf("[%s] %s %s — %s (+%d💎)\n", check, a.Emoji, a.Name, a.Description, a.RewardGems)
			}
			return nil
		})
	},
}

var buyCmd = &cobra.Command{
	Use:   "buy <id>",
	Short: "Buy a premium item, color, or eye style from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := args[0]
		return executeStatefulCommand(func(svc *engine.Service) error {
			if it, ok := registry.Item(id); ok {
				if err := svc.PurchaseItem(id); err != nil {
					return err
				}
				fmt.Printf("💎 Bought %s %s!\n", it.Emoji, it.Name)
				return nil
			}
			if c, ok := registry.Color(id); ok {
				if err := svc.PurchaseColor(id); err != nil {
					return err
				}
				fmt.Printf("🎨 Bought the %s color!\n", c.Name)
				return nil
			}
			if e, ok := registry.Eye(id); ok {
				if err := svc.PurchaseEyes(id); err != nil {
					return err
				}
				fmt.Printf("👀 Bought %s eyes!\n", e.Name)
				return nil
			}
			return fmt.Errorf("%w: %s", engine.ErrUnknownItem, id)
		})
	},
}

var customizeCmd = &cobra.Command{
	Use:   "customize <body|color|eyes> <id>",
	Short: "Change the buddy's body, color, or eye style",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			switch args[0] {
			case "body":
				if err := svc.SetBody(args[1]); err != nil {
					return err
				}
				if b, ok := registry.Body(args[1]); ok {
					fmt.Printf("%s Now a %s!\n", b.Emoji, b.Name)
				}
			case "color":
				if err := svc.SetColor(args[1]); err != nil {
					return err
				}
				if c, ok := registry.Color(args[1]); ok {
					fmt.Printf("🎨 Painted %s (%s)\n", c.Name, c.Hex)
				}
			case "eyes":
				if err := svc.SetEyes(args[1]); err != nil {
					return err
				}
				if e, ok := registry.Eye(args[1]); ok {
					fmt.Printf("👀 Switched to %s eyes\n", e.Name)
				}
			default:
				return fmt.Errorf("unknown appearance slot %q", args[0])
			}
			return nil
		})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip <item-id>",
	Short: "Equip an unlocked item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			if err := svc.Equip(args[0]); err != nil {
				return err
			}
			if it, ok := registry.Item(args[0]); ok {
				fmt.Printf("%s Equipped %s!\n", it.Emoji, it.Name)
			}
			return nil
		})
	},
}

var unequipCmd = &cobra.Command{
	Use:   "unequip <head|top|bottom|costume|theme>",
	Short: "Take off one cosmetic slot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat := catalog.Category(args[0])
		switch cat {
		case catalog.CategoryHead, catalog.CategoryTop, catalog.CategoryBottom,
			catalog.CategoryCostume, catalog.CategoryTheme:
		default:
			return fmt.Errorf("unknown slot %q", args[0])
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			svc.Unequip(cat)
			fmt.Printf("Took off the %s slot\n", cat)
			return nil
		})
	},
}

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Record a message sent to a friend",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			svc.RecordMessageSent()
			fmt.Println("💬 Message recorded")
			return nil
		})
	},
}

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show your shareable player profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			p := svc.Profile()
			fmt.Printf("%s %s\n", p.MoodEmoji, p.Username)
			fmt.Printf("Friend code: %s\n", p.FriendCode)
			fmt.Printf("Level %d %s (%s)\n", p.Level, p.BodyType, p.BodyColor)
			return nil
		})
	},
}
