package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/core"
)

var loveCmd = &cobra.Command{
	Use:   "love [query]",
	Short: "Love the current item",
	Long: `Mark an item as loved. With no argument, rates the item currently
playing; with a query, rates the best search match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRate(args, 1)
	},
}

var dislikeCmd = &cobra.Command{
	Use:   "dislike [query]",
	Short: "Dislike the current item",
	Long: `Mark an item as disliked. With no argument, rates the item currently
playing; with a query, rates the best search match.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRate(args, -1)
	},
}

func init() {
	rootCmd.AddCommand(loveCmd)
	rootCmd.AddCommand(dislikeCmd)
}

func runRate(args []string, value int) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctx := context.Background()

	var item *core.MediaItem
	if len(args) > 0 {
		results, err := s.API().SearchItems(ctx, args[0], 1)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		if len(results) == 0 {
			return fmt.Errorf("no items found for '%s'", args[0])
		}
		item = &results[0]
	} else {
		item = s.State().NowPlaying()
		if item == nil {
			return fmt.Errorf("nothing is playing")
		}
	}

	if err := s.API().Rate(ctx, *item, value); err != nil {
		return fmt.Errorf("failed to rate: %w", err)
	}

	icon, verb := "❤️", "Loved"
	if value < 0 {
		icon, verb = "👎", "Disliked"
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"rating": value,
			"id":     item.ID,
			"title":  item.Title,
		})
	} else {
		fmt.Printf("%s %s: %s — %s\n", icon, verb, item.Title, item.Artist)
	}

	return nil
}
