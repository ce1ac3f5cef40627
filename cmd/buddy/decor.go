package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rezaimia/buddypocket/internal/engine"
)

var decorCmd = &cobra.Command{
	Use:   "decor",
	Short: "Arrange the buddy's room",
}

var decorAddCmd = &cobra.Command{
	Use:   "add <id> <emoji> <x> <y>",
	Short: "Place a decoration at normalized coordinates",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		wall, _ := cmd.Flags().GetBool("wall")
		x, y, err := parseCoords(args[2], args[3])
		if err != nil {
			return err
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			p := svc.PlaceDecor(args[0], args[1], x, y, wall)
			fmt.Printf("%s placed (%s)\n", p.Emoji, p.ID)
			return nil
		})
	},
}

var decorMoveCmd = &cobra.Command{
	Use:   "move <placement-id> <x> <y>",
	Short: "Move a placed decoration",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, y, err := parseCoords(args[1], args[2])
		if err != nil {
			return err
		}
		return executeStatefulCommand(func(svc *engine.Service) error {
			if err := svc.MoveDecor(args[0], x, y); err != nil {
				return err
			}
			fmt.Println("Moved")
			return nil
		})
	},
}

var decorRemoveCmd = &cobra.Command{
	Use:   "remove <placement-id>",
	Short: "Remove a placed decoration",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			if err := svc.RemoveDecor(args[0]); err != nil {
				return err
			}
			fmt.Println("Removed")
			return nil
		})
	},
}

var decorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List placed decorations",
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeStatefulCommand(func(svc *engine.Service) error {
			decor := svc.State().Buddy.Decor
			if len(decor) == 0 {
				fmt.Println("The room is empty")
				return nil
			}
			for _, d := range decor {
				surface := "floor"
				if d.Wall {
					surface = "wall"
				}
				fmt.Printf("%s %s at (%.2f, %.2f) on the %s — %s\n", d.Emoji, d.DecorID, d.X, d.Y, surface, d.ID)
			}
			return nil
		})
	},
}

func parseCoords(xs, ys string) (float64, float64, error) {
	x, err := strconv.ParseFloat(xs, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("x must be a number: %w", err)
	}
	y, err := strconv.ParseFloat(ys, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("y must be a number: %w", err)
	}
	if x < 0 || x > 1 || y < 0 || y > 1 {
		return 0, 0, fmt.Errorf("coordinates must be within [0,1]")
	}
	return x, y, nil
}

func init() {
	decorAddCmd.Flags().Bool("wall", false, "Hang the decoration on the wall")
	decorCmd.AddCommand(decorAddCmd)
	decorCmd.AddCommand(decorMoveCmd)
	decorCmd.AddCommand(decorRemoveCmd)
	decorCmd.AddCommand(decorListCmd)
}
