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

var pauseCmd = &cobra.Command{
	Use:   "pause",
	Short: "Pause playback",
	Long:  `Pause the current playback.`,
	RunE:  runPause,
}

var resumeCmd = &cobra.Command{
	Use:     "resume",
	Aliases: []string{"play"},
	Short:   "Resume playback",
	Long:    `Resume paused playback.`,
	RunE:    runResume,
}

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Skip to next item",
	Long:  `Skip to the next item in the queue.`,
	RunE:  runNext,
}

var prevCmd = &cobra.Command{
	Use:   "prev",
	Short: "Go to previous item",
	Long:  `Go back to the previous item.`,
	RunE:  runPrev,
}

var seekCmd = &cobra.Command{
	Use:   "seek <seconds>",
	Short: "Seek within the current item",
	Long: `Seek to a position in the current item, in seconds.

Examples:
  cadence seek 0     # Restart the item
  cadence seek 90    # Jump to 1:30`,
	Args: cobra.ExactArgs(1),
	RunE: runSeek,
}

var (
	volumeUp   bool
	volumeDown bool
)

var volumeCmd = &cobra.Command{
	Use:   "volume [level]",
	Short: "Set or adjust volume",
	Long: `Set the playback volume (0-100) or adjust it up/down.

Examples:
  cadence volume 50      # Set volume to 50%
  cadence volume --up    # Increase volume by 10%
  cadence volume --down  # Decrease volume by 10%`,
	RunE: runVolume,
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle [on|off]",
	Short: "Set or toggle shuffle",
	Long:  `Toggle shuffle, or set it explicitly with on/off.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShuffle,
}

var repeatCmd = &cobra.Command{
	Use:   "repeat [off|one|all]",
	Short: "Set or cycle repeat mode",
	Long:  `Cycle the repeat mode (off, all, one), or set it explicitly.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRepeat,
}

var bitrateCmd = &cobra.Command{
	Use:   "bitrate [standard|high]",
	Short: "Show or set streaming quality",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBitrate,
}

func init() {
	volumeCmd.Flags().BoolVar(&volumeUp, "up", false, "Increase volume by 10%")
	volumeCmd.Flags().BoolVar(&volumeDown, "down", false, "Decrease volume by 10%")

	rootCmd.AddCommand(pauseCmd)
	rootCmd.AddCommand(resumeCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(prevCmd)
	rootCmd.AddCommand(seekCmd)
	rootCmd.AddCommand(volumeCmd)
	rootCmd.AddCommand(shuffleCmd)
	rootCmd.AddCommand(repeatCmd)
	rootCmd.AddCommand(bitrateCmd)
}

func runPause(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.Control().Pause(context.Background()); err != nil {
		return fmt.Errorf("failed to pause: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "paused"})
	} else {
		fmt.Println("⏸ Paused")
	}

	return nil
}

func runResume(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.Control().Play(context.Background()); err != nil {
		return fmt.Errorf("failed to resume: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "playing"})
	} else {
		fmt.Println("▶ Resumed")
	}

	return nil
}

func runNext(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.Control().Next(context.Background()); err != nil {
		return fmt.Errorf("failed to skip: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "skipped"})
	} else {
		fmt.Println("⏭ Skipped to next item")
	}

	return nil
}

func runPrev(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.Control().Previous(context.Background()); err != nil {
		return fmt.Errorf("failed to go back: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"status": "previous"})
	} else {
		fmt.Println("⏮ Previous item")
	}

	return nil
}

func runSeek(cmd *cobra.Command, args []string) error {
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return fmt.Errorf("invalid position: %s", args[0])
	}
	if seconds < 0 {
		return fmt.Errorf("position must not be negative")
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.Control().Seek(context.Background(), seconds); err != nil {
		return fmt.Errorf("failed to seek: %w", err)
	}

	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]float64{"position": seconds})
	} else {
		fmt.Printf("⏩ Seeked to %s\n", FormatDuration(seconds))
	}

	return nil
}

func runVolume(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	current := s.State().Volume()

	// No argument or flag: just show the current volume.
	if !volumeUp && !volumeDown && len(args) == 0 {
		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]int{"volume": toPercent(current)})
		} else {
			fmt.Printf("🔊 Volume: %d%%\n", toPercent(current))
		}
		return nil
	}

	target := current
	switch {
	case volumeUp:
		target = current + 0.1
	case volumeDown:
		target = current - 0.1
	default:
		val, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid volume level: %s", args[0])
		}
		if val < 0 || val > 100 {
			return fmt.Errorf("volume must be between 0 and 100")
		}
		target = float64(val) / 100
	}

	s.Control().SetVolume(target)

	// The player may clamp; report the value it settled on.
	effective := s.State().Volume()
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]int{
			"volume":   toPercent(effective),
			"previous": toPercent(current),
		})
	} else {
		fmt.Printf("🔊 Volume: %d%% (was %d%%)\n", toPercent(effective), toPercent(current))
	}

	return nil
}

func runShuffle(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctl := s.Control()
	if len(args) == 0 {
		ctl.ToggleShuffle()
	} else {
		switch args[0] {
		case "on":
			ctl.SetShuffle(true)
		case "off":
			ctl.SetShuffle(false)
		default:
			return fmt.Errorf("invalid shuffle state: %s (want on or off)", args[0])
		}
	}

	mode := s.State().ShuffleMode()
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]bool{"shuffle": mode == core.ShuffleOn})
	} else if mode == core.ShuffleOn {
		fmt.Println("🔀 Shuffle on")
	} else {
		fmt.Println("➡ Shuffle off")
	}

	return nil
}

func runRepeat(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	ctl := s.Control()
	if len(args) == 0 {
		ctl.ToggleRepeat()
	} else {
		switch args[0] {
		case "off":
			ctl.SetRepeat(core.RepeatOff)
		case "one":
			ctl.SetRepeat(core.RepeatOne)
		case "all":
			ctl.SetRepeat(core.RepeatAll)
		default:
			return fmt.Errorf("invalid repeat mode: %s (want off, one, or all)", args[0])
		}
	}

	mode := s.State().RepeatMode()
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]string{"repeat": mode.String()})
	} else {
		fmt.Printf("🔁 Repeat: %s\n", mode)
	}

	return nil
}

func runBitrate(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	if len(args) > 0 {
		br, ok := core.ParseBitrate(args[0])
		if !ok {
			return fmt.Errorf("invalid bitrate: %s (want standard or high)", args[0])
		}
		s.Control().SetBitrate(br)
	}

	br := s.State().Bitrate()
	if JSONOutput() {
		_ = json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"bitrate": br.String(),
			"kbps":    int(br),
		})
	} else {
		fmt.Printf("🎚 Bitrate: %s (%d kbps)\n", br, int(br))
	}

	return nil
}

func toPercent(v float64) int {
	return int(v*100 + 0.5)
}
