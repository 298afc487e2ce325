package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/core"
)

var queueLimit int

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Manage the playback queue",
	Long:  `View and manage the playback queue.`,
	RunE:  runQueueList,
}

var queueSetCmd = &cobra.Command{
	Use:   "set <query>",
	Short: "Replace the queue",
	Long: `Search for items and replace the queue with the results.

Examples:
  cadence queue set "bohemian rhapsody"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runQueueSet,
}

var queueNextCmd = &cobra.Command{
	Use:   "next <query>",
	Short: "Play an item next",
	Long:  `Search for an item and insert it after the current one.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQueueNext,
}

var queueLaterCmd = &cobra.Command{
	Use:   "later <query>",
	Short: "Add an item to the end of the queue",
	Long:  `Search for an item and append it to the queue.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runQueueLater,
}

var queueGotoCmd = &cobra.Command{
	Use:   "goto <index>",
	Short: "Jump to a queue position",
	Long:  `Start playing the item at the given queue position (1-based).`,
	Args:  cobra.ExactArgs(1),
	RunE:  runQueueGoto,
}

func init() {
	queueCmd.Flags().IntVarP(&queueLimit, "limit", "l", 20, "Maximum number of items to show")

	queueCmd.AddCommand(queueSetCmd)
	queueCmd.AddCommand(queueNextCmd)
	queueCmd.AddCommand(queueLaterCmd)
	queueCmd.AddCommand(queueGotoCmd)
	rootCmd.AddCommand(queueCmd)
}

func runQueueList(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	queue := s.State().Queue()

	if queue.IsEmpty() {
		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
				"queue":   []interface{}{},
				"message": "Queue is empty",
			})
		} else {
			fmt.Println("Queue is empty")
		}
		return nil
	}

	items := queue.Items
	if queueLimit > 0 && len(items) > queueLimit {
		items = items[:queueLimit]
	}

	if JSONOutput() {
		output := make([]map[string]interface{}, len(items))
		for i, item := range items {
			output[i] = map[string]interface{}{
				"position": i,
				"id":       item.ID,
				"title":    item.Title,
				"artist":   item.Artist,
				"album":    item.Album,
				"duration": item.Duration,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"queue":    output,
			"total":    queue.Len(),
			"position": queue.Position,
		})
	}

	fmt.Println("Queue:")
	for i, item := range items {
		prefix := "  "
		if i == queue.Position {
			prefix = "▶ "
		}
		fmt.Printf("%s%d. %s — %s (%s)\n", prefix, i+1, item.Title, item.Artist, FormatDuration(item.Duration))
	}

	if queue.Len() > len(items) {
		fmt.Printf("\n... and %d more items\n", queue.Len()-len(items))
	}

	return nil
}

func runQueueSet(cmd *cobra.Command, args []string) error {
	return queueMutation(args[0], "queue", func(s *cliSession, items []core.MediaItem) error {
		return s.Control().SetQueue(context.Background(), items)
	})
}

func runQueueNext(cmd *cobra.Command, args []string) error {
	return queueMutation(args[0], "playing next", func(s *cliSession, items []core.MediaItem) error {
		return s.Control().PlayNext(context.Background(), items)
	})
}

func runQueueLater(cmd *cobra.Command, args []string) error {
	return queueMutation(args[0], "added to queue", func(s *cliSession, items []core.MediaItem) error {
		return s.Control().PlayLater(context.Background(), items)
	})
}

// queueMutation searches for the query's best match and hands it to op.
func queueMutation(query, verb string, op func(*cliSession, []core.MediaItem) error) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	results, err := s.API().SearchItems(context.Background(), query, 1)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("no items found for '%s'", query)
	}

	item := results[0]
	if err := op(s, []core.MediaItem{item}); err != nil {
		return fmt.Errorf("failed to update queue: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
			"status": verb,
			"id":     item.ID,
			"title":  item.Title,
			"artist": item.Artist,
		})
	} else {
		fmt.Printf("%s: %s — %s\n", verb, item.Title, item.Artist)
	}

	return nil
}

func runQueueGoto(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[0])
	if err != nil || index < 1 {
		return fmt.Errorf("invalid queue position: %s", args[0])
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	queue := s.State().Queue()
	if index > queue.Len() {
		return fmt.Errorf("queue has only %d items", queue.Len())
	}

	if err := s.Control().ChangeTo(context.Background(), index-1); err != nil {
		return fmt.Errorf("failed to change position: %w", err)
	}

	item := queue.Items[index-1]
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"position": index - 1,
			"title":    item.Title,
		})
	} else {
		fmt.Printf("▶ %s — %s\n", item.Title, item.Artist)
	}

	return nil
}
