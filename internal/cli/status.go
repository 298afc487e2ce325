package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/core"
	"github.com/tessro/cadence/internal/state"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show current playback status",
	Long:  `Shows the player's current item, progress, queue position, and settings.`,
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	snap := s.State().Snapshot()

	if JSONOutput() {
		return outputStatusJSON(snap)
	}
	return outputStatusText(snap)
}

func outputStatusJSON(snap state.Snapshot) error {
	out := map[string]interface{}{
		"status":     snap.Status.String(),
		"authorized": snap.Authorized,
		"volume":     toPercent(snap.Volume),
		"shuffle":    snap.Shuffle == core.ShuffleOn,
		"repeat":     snap.Repeat.String(),
		"bitrate":    snap.Bitrate.String(),
	}

	if snap.NowPlaying != nil {
		out["item"] = map[string]interface{}{
			"id":       snap.NowPlaying.ID,
			"title":    snap.NowPlaying.Title,
			"artist":   snap.NowPlaying.Artist,
			"album":    snap.NowPlaying.Album,
			"duration": snap.NowPlaying.Duration,
		}
		out["position"] = snap.Time.CurrentTime
	}

	if !snap.Queue.IsEmpty() {
		out["queue"] = map[string]interface{}{
			"length":   snap.Queue.Len(),
			"position": snap.Queue.Position,
		}
	}

	return json.NewEncoder(os.Stdout).Encode(out)
}

func outputStatusText(snap state.Snapshot) error {
	if snap.NowPlaying == nil {
		fmt.Println("No item playing")
		return nil
	}

	playIcon := "▶"
	if snap.Status != core.StatusPlaying {
		playIcon = "⏸"
	}

	fmt.Printf("%s %s\n", playIcon, snap.NowPlaying.Title)
	fmt.Printf("  %s — %s\n", snap.NowPlaying.Artist, snap.NowPlaying.Album)

	progressBar := FormatProgress(snap.Time.CurrentTime, snap.Time.Duration, 30)
	fmt.Printf("  %s %s / %s\n",
		progressBar,
		FormatDuration(snap.Time.CurrentTime),
		FormatDuration(snap.Time.Duration))

	var settings []string
	settings = append(settings, fmt.Sprintf("🔊 %d%%", toPercent(snap.Volume)))
	if snap.Shuffle == core.ShuffleOn {
		settings = append(settings, "🔀 shuffle")
	}
	if snap.Repeat != core.RepeatOff {
		settings = append(settings, fmt.Sprintf("🔁 %s", snap.Repeat))
	}
	fmt.Printf("  %s\n", strings.Join(settings, "  "))

	if !snap.Queue.IsEmpty() && snap.Queue.Position >= 0 {
		fmt.Printf("  %s of %d in queue\n", humanize.Ordinal(snap.Queue.Position+1), snap.Queue.Len())
	}

	return nil
}
