package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessro/cadence/internal/browser"
)

var artworkPrint bool

var artworkCmd = &cobra.Command{
	Use:   "artwork",
	Short: "Open the current item's artwork",
	Long:  `Open the artwork of the item currently playing in your browser.`,
	RunE:  runArtwork,
}

func init() {
	artworkCmd.Flags().BoolVarP(&artworkPrint, "print", "p", false, "print the URL instead of opening it")
	rootCmd.AddCommand(artworkCmd)
}

func runArtwork(cmd *cobra.Command, args []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.close()

	item := s.State().NowPlaying()
	if item == nil {
		return fmt.Errorf("nothing is playing")
	}
	if item.ArtworkURL == "" {
		return fmt.Errorf("no artwork for %s", item.Title)
	}

	if JSONOutput() {
		return json.NewEncoder(os.Stdout).Encode(map[string]string{"url": item.ArtworkURL})
	}

	if artworkPrint {
		fmt.Println(item.ArtworkURL)
		return nil
	}

	if err := browser.Open(item.ArtworkURL); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}

	fmt.Printf("🖼 Opened artwork for %s\n", item.Title)
	return nil
}
