package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/core"
)

var libraryLimit int

var libraryCmd = &cobra.Command{
	Use:   "library",
	Short: "Browse your library",
	Long:  `Commands for browsing library and listening history on the service.`,
}

var libraryRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show recently played items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList("recently played", func(s *cliSession) ([]core.MediaItem, error) {
			return s.API().RecentlyPlayed(context.Background(), libraryLimit)
		})
	},
}

var libraryAddedCmd = &cobra.Command{
	Use:   "added",
	Short: "Show recently added items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList("recently added", func(s *cliSession) ([]core.MediaItem, error) {
			return s.API().RecentlyAdded(context.Background(), libraryLimit)
		})
	},
}

var libraryHeavyCmd = &cobra.Command{
	Use:   "heavy",
	Short: "Show heavy rotation items",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList("heavy rotation", func(s *cliSession) ([]core.MediaItem, error) {
			return s.API().HeavyRotation(context.Background(), libraryLimit)
		})
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the catalog",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList("search results", func(s *cliSession) ([]core.MediaItem, error) {
			return s.API().SearchItems(context.Background(), args[0], libraryLimit)
		})
	},
}

func init() {
	libraryCmd.PersistentFlags().IntVarP(&libraryLimit, "limit", "l", 10, "Maximum number of items")
	searchCmd.Flags().IntVarP(&libraryLimit, "limit", "l", 10, "Maximum number of items")

	libraryCmd.AddCommand(libraryRecentCmd)
	libraryCmd.AddCommand(libraryAddedCmd)
	libraryCmd.AddCommand(libraryHeavyCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(searchCmd)
}

func runLibraryList(label string, fetch func(*cliSession) ([]core.MediaItem, error)) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	items, err := fetch(s)
	if err != nil {
		return fmt.Errorf("failed to fetch %s: %w", label, err)
	}

	if JSONOutput() {
		output := make([]map[string]interface{}, len(items))
		for i, item := range items {
			output[i] = map[string]interface{}{
				"id":       item.ID,
				"title":    item.Title,
				"artist":   item.Artist,
				"album":    item.Album,
				"duration": item.Duration,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"items": output,
			"total": len(items),
		})
	}

	if len(items) == 0 {
		fmt.Printf("No %s\n", label)
		return nil
	}

	table := NewTable("#", "TITLE", "ARTIST", "ALBUM", "TIME")
	for i, item := range items {
		table.Row(
			fmt.Sprintf("%d", i+1),
			TruncateString(item.Title, 40),
			TruncateString(item.Artist, 30),
			TruncateString(item.Album, 30),
			FormatDuration(item.Duration),
		)
	}
	table.Flush()
	fmt.Printf("\n%s %s\n", humanize.Comma(int64(len(items))), label)

	return nil
}
