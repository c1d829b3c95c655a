package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shank/internal/shank"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the levels",
	Long: `Shows every level with its apple target, speed multiplier and
obstacle count. The interval column is the starting move interval when
the level is reached with a perfect run (every earlier target met
exactly).`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	rules, err := loadRules()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Levels:")
	fmt.Println()
	fmt.Printf("  %-3s  %-16s  %-6s  %-5s  %-9s  %s\n", "#", "Name", "Apples", "Speed", "Obstacles", "Interval")
	fmt.Printf("  %-3s  %-16s  %-6s  %-5s  %-9s  %s\n", "-", "----", "------", "-----", "---------", "--------")

	score := 0
	for _, level := range shank.Levels {
		interval := rules.InitialInterval
		if level.Index > 1 {
			interval = shank.LevelInterval(score, level, rules)
		}
		fmt.Printf("  %-3d  %-16s  %-6d  x%-4.1f  %-9d  %dms\n",
			level.Index, level.Name, level.TargetFood, level.SpeedMultiplier,
			len(level.Obstacles), interval.Milliseconds())
		score += level.TargetFood * rules.FoodReward
	}
}
