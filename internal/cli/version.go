package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at release time; development builds fall back
// to the module version recorded in the binary's build info.
var Version = ""

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		version, revision := buildVersion()

		if JSONOutput() {
			_ = json.NewEncoder(os.Stdout).Encode(map[string]string{
				"version":  version,
				"revision": revision,
				"go":       runtime.Version(),
				"platform": runtime.GOOS + "/" + runtime.GOARCH,
			})
			return
		}

		fmt.Printf("cadence %s", version)
		if revision != "" {
			fmt.Printf(" (%s)", revision)
		}
		fmt.Println()
		if Verbose() {
			fmt.Printf("  %s, %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// buildVersion resolves the version and VCS revision, preferring the
// ldflags-injected Version over the binary's embedded build info.
func buildVersion() (version, revision string) {
	version = Version

	info, ok := debug.ReadBuildInfo()
	if !ok {
		if version == "" {
			version = "dev"
		}
		return version, ""
	}

	if version == "" {
		version = info.Main.Version
		if version == "" || version == "(devel)" {
			version = "dev"
		}
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 7 {
			revision = setting.Value[:7]
		}
	}
	return version, revision
}
