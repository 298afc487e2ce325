package cli

import "testing"

func TestBuildVersion(t *testing.T) {
	old := Version
	defer func() { Version = old }()

	Version = "1.2.3"
	if v, _ := buildVersion(); v != "1.2.3" {
		t.Errorf("buildVersion() = %q, want injected 1.2.3", v)
	}

	// Without ldflags the binary's build info (or "dev") answers; it must
	// never be empty.
	Version = ""
	if v, _ := buildVersion(); v == "" {
		t.Error("buildVersion() returned empty version")
	}
}
