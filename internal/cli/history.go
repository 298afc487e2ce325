package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show playback history",
	Long:  `Shows recently played items, most recent first.`,
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", 20, "Maximum number of items to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	items, err := s.RecentHistory(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to fetch history: %w", err)
	}

	if JSONOutput() {
		output := make([]map[string]interface{}, len(items))
		for i, item := range items {
			output[i] = map[string]interface{}{
				"id":     item.ID,
				"title":  item.Title,
				"artist": item.Artist,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{"history": output})
	}

	if len(items) == 0 {
		fmt.Println("No playback history yet")
		return nil
	}

	for i, item := range items {
		fmt.Printf("%2d. %s — %s\n", i+1, item.Title, item.Artist)
	}

	return nil
}
