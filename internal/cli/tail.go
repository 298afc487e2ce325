package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/state"
)

var (
	tailNoEmoji   bool
	tailTimestamp bool
	tailInterval  time.Duration
)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Follow playback changes in real-time",
	Long: `Watch for playback state changes and print them as they happen.

Changes tracked:
  - Item changes (new song started)
  - Pause/Resume
  - Volume changes
  - Shuffle and repeat changes`,
	RunE: runTail,
}

func init() {
	tailCmd.Flags().BoolVar(&tailNoEmoji, "no-emoji", false, "disable emoji output")
	tailCmd.Flags().BoolVarP(&tailTimestamp, "timestamp", "t", false, "show timestamps")
	tailCmd.Flags().DurationVarP(&tailInterval, "interval", "i", time.Second, "refresh interval")

	rootCmd.AddCommand(tailCmd)
}

func runTail(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	// The bridge feeds the synchronizer; we render from the state snapshot.
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.bridge.Watch(ctx)
	}()

	prev := s.State().Snapshot()
	if prev.NowPlaying != nil {
		printTailLine(tailIcon("🎵"), fmt.Sprintf("%s — %s", prev.NowPlaying.Artist, prev.NowPlaying.Title))
	}

	ticker := time.NewTicker(tailInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			curr := s.State().Snapshot()
			printTailChanges(prev, curr)
			prev = curr

		case err := <-errCh:
			if err == context.Canceled {
				return nil
			}
			return err
		}
	}
}

func printTailChanges(prev, curr state.Snapshot) {
	if itemID(curr.NowPlaying) != itemID(prev.NowPlaying) && curr.NowPlaying != nil {
		printTailLine(tailIcon("🎵"), fmt.Sprintf("%s — %s", curr.NowPlaying.Artist, curr.NowPlaying.Title))
	}

	if prev.Status != curr.Status {
		switch curr.Status {
		case core.StatusPlaying:
			printTailLine(tailIcon("▶"), "Resumed")
		case core.StatusPaused:
			printTailLine(tailIcon("⏸"), "Paused")
		case core.StatusEnded:
			printTailLine(tailIcon("⏹"), "Ended")
		case core.StatusError:
			printTailLine(tailIcon("⚠"), "Playback error")
		}
	}

	if prev.Volume != curr.Volume {
		printTailLine(tailIcon("🔊"), fmt.Sprintf("Volume %d%%", toPercent(curr.Volume)))
	}
	if prev.Shuffle != curr.Shuffle {
		printTailLine(tailIcon("🔀"), fmt.Sprintf("Shuffle %s", onOff(curr.Shuffle == core.ShuffleOn)))
	}
	if prev.Repeat != curr.Repeat {
		printTailLine(tailIcon("🔁"), fmt.Sprintf("Repeat %s", curr.Repeat))
	}
}

func printTailLine(icon, text string) {
	timestamp := ""
	if tailTimestamp {
		timestamp = time.Now().Format("15:04:05") + " "
	}
	fmt.Printf("%s%s%s\n", timestamp, icon, text)
}

func tailIcon(icon string) string {
	if tailNoEmoji {
		return ""
	}
	return icon + " "
}

func itemID(item *core.MediaItem) string {
	if item == nil {
		return ""
	}
	return item.ID
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
